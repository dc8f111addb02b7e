// SPDX-License-Identifier: MIT

package module

import (
	"fmt"
	"strings"
)

// String renders e in the usual notation for free module elements, in key
// iteration order:
//
//	{a:1, b:-1}  → "a - b"
//	{a:2, b:1}   → "2a + b"
//	{a:-3}       → "- 3a"
//	{}           → "0"
//
// Keys render through fmt, so a key type may implement fmt.Stringer.
func (e *Element[K]) String() string {
	if e == nil || len(e.order) == 0 {
		return "0"
	}
	var sb strings.Builder
	for _, k := range e.order {
		c := e.coeffs[k]
		switch {
		case c < -1:
			fmt.Fprintf(&sb, "- %d%v ", -c, k)
		case c == -1:
			fmt.Fprintf(&sb, "- %v ", k)
		case c == 1:
			fmt.Fprintf(&sb, "+ %v ", k)
		default:
			fmt.Fprintf(&sb, "+ %d%v ", c, k)
		}
	}
	out := sb.String()
	out = strings.TrimPrefix(out, "+ ")

	return out[:len(out)-1]
}
