// SPDX-License-Identifier: MIT

package simplicial

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/freemod/internal/canon"
)

// Simplex is an immutable sequence of vertices.
// The zero value is the empty simplex (length 0, dimension -1).
type Simplex struct {
	v string // canon.Ints of the vertices
}

// NewSimplex returns the simplex with the given vertices, in order.
func NewSimplex(vertices ...int) Simplex {
	return Simplex{v: canon.Ints(vertices)}
}

// Vertices returns a fresh copy of the vertex sequence.
func (s Simplex) Vertices() []int { return canon.DecodeInts(s.v) }

// Len returns the number of vertices.
func (s Simplex) Len() int { return canon.CountInts(s.v) }

// Dimension returns Len() - 1.
func (s Simplex) Dimension() int { return s.Len() - 1 }

// Concat returns the simplex whose vertices are those of s followed by those of o.
func (s Simplex) Concat(o Simplex) Simplex { return Simplex{v: s.v + o.v} }

// String renders the vertices as "(0,1,2)".
func (s Simplex) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range s.Vertices() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(')')

	return sb.String()
}
