// SPDX-License-Identifier: MIT

// Package canon packs integer and string sequences into comparable strings.
//
// Go map keys must be comparable, so sequence-valued basis keys (simplices,
// tuples of simplices, words of necklaces) are stored in packed form.
// Every item in a packed sequence is self-delimiting, therefore the
// concatenation of two packed sequences is the packed concatenation:
//
//	Ints(a) + Ints(b) == Ints(append(a, b...))
//	Join(p...) + Join(q...) == Join(append(p, q...)...)
//
// Packed strings never leave this module; a malformed input is a bug and
// panics with ErrCorrupt.
package canon

import (
	"encoding/binary"
	"errors"
)

// ErrCorrupt reports a packed string that was not produced by this package.
var ErrCorrupt = errors.New("canon: corrupt packed sequence")

// Ints packs vs as a run of zig-zag varints.
// Complexity: O(len(vs)).
func Ints(vs []int) string {
	buf := make([]byte, 0, 2*len(vs))
	for _, v := range vs {
		buf = binary.AppendVarint(buf, int64(v))
	}

	return string(buf)
}

// DecodeInts unpacks a string produced by Ints.
func DecodeInts(s string) []int {
	out := make([]int, 0, CountInts(s))
	b := []byte(s)
	for len(b) > 0 {
		v, n := binary.Varint(b)
		if n <= 0 {
			panic(ErrCorrupt)
		}
		out = append(out, int(v))
		b = b[n:]
	}

	return out
}

// CountInts returns the number of integers packed in s without decoding them.
// Each varint ends with the only byte of its run whose high bit is clear.
func CountInts(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < 0x80 {
			n++
		}
	}

	return n
}

// Join packs parts, each prefixed by its uvarint length.
// Complexity: O(total length).
func Join(parts ...string) string {
	size := 0
	for _, p := range parts {
		size += len(p) + binary.MaxVarintLen16
	}
	buf := make([]byte, 0, size)
	for _, p := range parts {
		buf = binary.AppendUvarint(buf, uint64(len(p)))
		buf = append(buf, p...)
	}

	return string(buf)
}

// Split unpacks a string produced by Join.
func Split(s string) []string {
	var out []string
	for len(s) > 0 {
		p, rest := next(s)
		out = append(out, p)
		s = rest
	}

	return out
}

// Count returns the number of parts packed in s.
func Count(s string) int {
	n := 0
	for len(s) > 0 {
		_, s = next(s)
		n++
	}

	return n
}

// next splits the first length-prefixed part off s.
func next(s string) (part, rest string) {
	size, n := binary.Uvarint([]byte(s[:min(len(s), binary.MaxVarintLen64)]))
	if n <= 0 || uint64(len(s)-n) < size {
		panic(ErrCorrupt)
	}
	end := n + int(size)

	return s[n:end], s[end:]
}
