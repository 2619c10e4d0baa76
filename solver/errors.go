// SPDX-License-Identifier: MIT

package solver

import "errors"

var (
	// ErrInvalidMethod is returned for a method name outside lagrange|matrix|gauss.
	ErrInvalidMethod = errors.New("solver: invalid method")

	// ErrSingularSystem indicates a zero pivot or a zero Lagrange denominator,
	// i.e. duplicate x-values. Kernel errors keep matrix.ErrSingular in the chain.
	ErrSingularSystem = errors.New("solver: singular system")

	// ErrDomainContradiction indicates the normalized secret is zero.
	ErrDomainContradiction = errors.New("solver: result is zero, which contradicts the problem constraints")

	// ErrEmptyPointSet indicates a solver was handed no points.
	ErrEmptyPointSet = errors.New("solver: empty point set")

	// ErrInvalidPoint indicates a point with a nil coordinate.
	ErrInvalidPoint = errors.New("solver: invalid point")
)
