// Package typeconv converts between TypeScript-style type annotations and
// JSON Schema. The forward direction (ParseType) turns an annotation string
// into a schema tree; the reverse direction (GenerateType, TypeExpr) renders
// a schema tree back into readable annotation text.
//
// Both directions are pure and allocate per call, so they are safe for
// concurrent use without locking.
package typeconv

import "strings"

// splitTopLevel splits s on sep, ignoring separators that appear inside
// angle brackets, braces, parentheses, or quoted strings. Segments are
// trimmed and empty segments are dropped; a trailing remainder is emitted
// even without a final separator.
func splitTopLevel(s string, sep byte) []string {
	return splitDepthAware(s, sep, false)
}

// splitObjectFields splits an object-literal interior on sep. Unlike
// splitTopLevel it also counts square brackets toward nesting depth, since
// property values may be array types.
func splitObjectFields(s string, sep byte) []string {
	return splitDepthAware(s, sep, true)
}

func splitDepthAware(s string, sep byte, countSquare bool) []string {
	var parts []string
	var quote byte // opening quote char, 0 when outside a string
	depth := 0
	start := 0

	emit := func(end int) {
		if seg := strings.TrimSpace(s[start:end]); seg != "" {
			parts = append(parts, seg)
		}
	}

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if quote != 0 {
			if ch == '\\' {
				i++ // escaped char never closes the string
				continue
			}
			if ch == quote {
				quote = 0
			}
			continue
		}

		switch ch {
		case '"', '\'':
			quote = ch
		case '<', '{', '(':
			depth++
		case '[':
			if countSquare {
				depth++
			}
		case '>', '}', ')':
			// Floor at zero: a stray closing bracket must not suppress
			// later legitimate splits.
			if depth > 0 {
				depth--
			}
		case ']':
			if countSquare && depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				emit(i)
				start = i + 1
			}
		}
	}

	emit(len(s))
	return parts
}
