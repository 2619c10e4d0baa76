// SPDX-License-Identifier: MIT

package shares

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
)

// keysField is the reserved member carrying {n, k}; every other member of a
// test case is a share index.
const keysField = "keys"

// Decode reads a JSON object of named test cases from r, preserving the
// document order of the names.
//
// A test case whose own object is unreadable is still returned, with Err
// set, so one bad case never hides the others.
//
// Errors:
//   - ErrMalformedInput when the document itself is not a JSON object or is
//     not valid JSON.
func Decode(r io.Reader) (Collection, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var out Collection
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode: %v: %w", err, ErrMalformedInput)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decode: unexpected token %v: %w", tok, ErrMalformedInput)
		}
		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode %q: %v: %w", name, err, ErrMalformedInput)
		}
		tc, err := DecodeCase(name, raw)
		if err != nil {
			tc = TestCase{Name: name, Err: err}
		}
		out = append(out, tc)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}

	return out, nil
}

// DecodeCase parses a single test-case object.
//
// Share members are looked up by their canonical decimal key ("1", "2", ...);
// any other member name ("01", "+1", "one") is ignored, as is a share whose
// value is null.
//
// Errors:
//   - ErrMalformedInput for a non-object case, a missing or unreadable
//     "keys" member, or an unreadable share.
func DecodeCase(name string, data []byte) (TestCase, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return TestCase{}, fmt.Errorf("test case %q: %v: %w", name, err, ErrMalformedInput)
	}
	if members == nil {
		return TestCase{}, fmt.Errorf("test case %q: null: %w", name, ErrMalformedInput)
	}

	tc := TestCase{Name: name, Shares: make(map[int]Share, len(members))}
	rawKeys, ok := members[keysField]
	if !ok {
		return TestCase{}, fmt.Errorf("test case %q: missing %q: %w", name, keysField, ErrMalformedInput)
	}
	if err := json.Unmarshal(rawKeys, &tc.Keys); err != nil {
		return TestCase{}, fmt.Errorf("test case %q: keys: %v: %w", name, err, ErrMalformedInput)
	}

	for _, key := range slices.Sorted(maps.Keys(members)) {
		idx, ok := shareIndex(key)
		if !ok {
			continue
		}
		raw := members[key]
		if string(bytes.TrimSpace(raw)) == "null" {
			continue
		}
		var sh Share
		if err := json.Unmarshal(raw, &sh); err != nil {
			return TestCase{}, fmt.Errorf("test case %q: share %d: %v: %w", name, idx, err, ErrMalformedInput)
		}
		tc.Shares[idx] = sh
	}

	return tc, nil
}

// shareIndex maps a canonical decimal member name to its share index.
func shareIndex(key string) (int, bool) {
	idx, err := strconv.Atoi(key)
	if err != nil || strconv.Itoa(idx) != key {
		return 0, false
	}

	return idx, true
}

// Load reads and decodes the collection stored at path.
func Load(path string) (Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	c, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return c, nil
}

// expectDelim consumes the next token and checks it is the delimiter d.
func expectDelim(dec *json.Decoder, d json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode: %v: %w", err, ErrMalformedInput)
	}
	if got, ok := tok.(json.Delim); !ok || got != d {
		return fmt.Errorf("decode: want %q, got %v: %w", d, tok, ErrMalformedInput)
	}

	return nil
}
