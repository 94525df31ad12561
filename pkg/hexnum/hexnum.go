// Package hexnum implements the 0x-prefixed hexadecimal integer encoding the
// node RPC uses for every numeric scalar (heights, timestamps, epoch values).
package hexnum

import (
	"fmt"
	"strconv"
)

// Uint64 is a uint64 that marshals to and from a quoted 0x-hex JSON string.
type Uint64 uint64

// Parse decodes a 0x-prefixed hexadecimal string into a uint64.
func Parse(s string) (uint64, error) {
	if len(s) < 3 || s[0] != '0' || s[1] != 'x' {
		return 0, fmt.Errorf("hexnum: %q is not a 0x-prefixed hex number", s)
	}
	v, err := strconv.ParseUint(s[2:], 16, 64)
	if err != nil {
		return 0, fmt.Errorf("hexnum: parse %q: %w", s, err)
	}
	return v, nil
}

// Format encodes a uint64 as a minimal 0x-prefixed hexadecimal string.
func Format(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

// Hex returns the wire representation of n.
func (n Uint64) Hex() string {
	return Format(uint64(n))
}

// MarshalJSON encodes n as a quoted 0x-hex string.
func (n Uint64) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(n.Hex())), nil
}

// UnmarshalJSON decodes a quoted 0x-hex string into n.
func (n *Uint64) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("hexnum: expected a quoted hex string, got %s", data)
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*n = Uint64(v)
	return nil
}
