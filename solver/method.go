// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"strings"
)

// Method selects the reconstruction strategy. The zero value is Lagrange.
type Method int

const (
	// Lagrange evaluates the Lagrange interpolation formula at x = 0.
	Lagrange Method = iota

	// Matrix solves the Vandermonde system by exact LU decomposition.
	Matrix

	// Gauss solves the Vandermonde system by partial-pivoted Gaussian elimination.
	Gauss
)

// methodNames maps each Method to its configuration name.
var methodNames = [...]string{
	Lagrange: "lagrange",
	Matrix:   "matrix",
	Gauss:    "gauss",
}

// Methods returns every strategy in declaration order.
func Methods() []Method {
	return []Method{Lagrange, Matrix, Gauss}
}

// ParseMethod maps a configuration name (case-insensitive, surrounding
// spaces ignored) to its Method.
//
// Errors:
//   - ErrInvalidMethod for any other name.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}

	return Lagrange, fmt.Errorf("%w: %q (want one of %s)", ErrInvalidMethod, s, strings.Join(methodNames[:], ", "))
}

// Valid reports whether m is one of the declared strategies.
func (m Method) Valid() bool {
	return m >= Lagrange && int(m) < len(methodNames)
}

// String returns the configuration name of m.
func (m Method) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// Set parses s into m; together with String and Type it lets a *Method be
// bound directly as a command-line flag value.
func (m *Method) Set(s string) error {
	v, err := ParseMethod(s)
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// Type names the flag value type in help output.
func (m *Method) Type() string { return "method" }
