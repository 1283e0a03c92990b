package typeconv

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
)

// ParseType converts a TypeScript-style type annotation into a JSON Schema.
//
// Supported constructs:
//   - primitives: string, number, boolean, null, undefined, void, object
//   - any/unknown (empty schema) and never (not: {})
//   - unions (|) and intersections (&)
//   - arrays: T[] and Array<T>
//   - Record<string, V> (additionalProperties)
//   - Promise<T> (unwrapped to T)
//   - inline object literals: { name: T; other?: U }
//   - string and integer literal types
//
// ParseType is total: it never fails for any input. Anything outside the
// supported grammar degrades to the empty schema, which matches any value.
// The converter sits in an interactive editing loop where partial input is
// the common case, so permissiveness here is deliberate.
func ParseType(typeStr string) *jsonschema.Schema {
	s := strings.TrimSpace(typeStr)

	// Unions before everything else: "A | B" must not be mistaken for the
	// array or object rules matching its last segment.
	if parts := splitTopLevel(s, '|'); len(parts) >= 2 {
		return parseUnion(parts)
	} else if len(parts) == 1 && parts[0] != s {
		// Dangling separator; collapse to the sole member.
		return ParseType(parts[0])
	}

	if parts := splitTopLevel(s, '&'); len(parts) >= 2 {
		members := make([]*jsonschema.Schema, 0, len(parts))
		for _, p := range parts {
			members = append(members, ParseType(p))
		}
		return &jsonschema.Schema{AllOf: members}
	} else if len(parts) == 1 && parts[0] != s {
		return ParseType(parts[0])
	}

	if strings.HasSuffix(s, "[]") {
		return &jsonschema.Schema{
			Type:  "array",
			Items: ParseType(strings.TrimSuffix(s, "[]")),
		}
	}
	if inner, ok := genericArg(s, "Array"); ok {
		return &jsonschema.Schema{Type: "array", Items: ParseType(inner)}
	}

	if inner, ok := genericArg(s, "Record"); ok {
		args := splitTopLevel(inner, ',')
		// Only string keys map onto a JSON object; anything else is
		// outside the supported grammar.
		if len(args) == 2 && args[0] == "string" {
			return &jsonschema.Schema{
				Type:                 "object",
				AdditionalProperties: ParseType(args[1]),
			}
		}
		return &jsonschema.Schema{}
	}

	// The awaited value, not the promise wrapper, is the semantic shape.
	if inner, ok := genericArg(s, "Promise"); ok {
		return ParseType(inner)
	}

	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		return parseObjectLiteral(s)
	}

	if lit, ok := parseLiteral(s); ok {
		return lit
	}

	switch s {
	case "string", "number", "boolean", "null":
		return &jsonschema.Schema{Type: s}
	case "undefined", "void":
		// JSON Schema has no undefined.
		return &jsonschema.Schema{Type: "null"}
	case "any", "unknown":
		return &jsonschema.Schema{}
	case "never":
		return &jsonschema.Schema{Not: &jsonschema.Schema{}}
	case "object":
		return &jsonschema.Schema{Type: "object"}
	}

	return &jsonschema.Schema{}
}

// parseUnion classifies a top-level union. A union with exactly one
// non-nullish member plus at least one null/undefined member becomes the
// two-member nullable form; all nullish segments collapse into a single
// null arm. A union of string literals collapses to one enum node.
// Everything else is a generic anyOf in original member order.
func parseUnion(parts []string) *jsonschema.Schema {
	var concrete []string
	nullish := 0
	for _, p := range parts {
		if p == "null" || p == "undefined" {
			nullish++
		} else {
			concrete = append(concrete, p)
		}
	}

	if nullish > 0 && len(concrete) == 1 {
		return &jsonschema.Schema{AnyOf: []*jsonschema.Schema{
			ParseType(concrete[0]),
			{Type: "null"},
		}}
	}

	if enum, ok := parseStringEnum(parts); ok {
		return enum
	}

	members := make([]*jsonschema.Schema, 0, len(parts))
	for _, p := range parts {
		members = append(members, ParseType(p))
	}
	return &jsonschema.Schema{AnyOf: members}
}

// parseStringEnum collapses a union whose members are all string literals
// ("a" | "b" | "c") into a single string schema with an enum list. Mixed
// literal unions stay generic.
func parseStringEnum(parts []string) (*jsonschema.Schema, bool) {
	values := make([]any, 0, len(parts))
	for _, p := range parts {
		v, ok := unquote(p)
		if !ok {
			return nil, false
		}
		values = append(values, v)
	}
	return &jsonschema.Schema{Type: "string", Enum: values}, true
}

// genericArg matches name<arg> and returns the raw argument text.
func genericArg(s, name string) (string, bool) {
	if strings.HasPrefix(s, name+"<") && strings.HasSuffix(s, ">") {
		return strings.TrimSpace(s[len(name)+1 : len(s)-1]), true
	}
	return "", false
}

// parseLiteral handles string and integer literal types.
func parseLiteral(s string) (*jsonschema.Schema, bool) {
	if v, ok := unquote(s); ok {
		return &jsonschema.Schema{Type: "string", Enum: []any{v}}, true
	}
	if integerToken.MatchString(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, false
		}
		return &jsonschema.Schema{Type: "number", Enum: []any{n}}, true
	}
	return nil, false
}

var integerToken = regexp.MustCompile(`^-?\d+$`)

// unquote strips matching single or double quotes from a literal token.
func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	q := s[0]
	if (q != '"' && q != '\'') || s[len(s)-1] != q {
		return "", false
	}
	inner := s[1 : len(s)-1]
	// A quote of the delimiting kind inside the value means the token is
	// not a single literal ("a" | "b" reaches here as one string when the
	// union split saw it inside brackets).
	if strings.ContainsRune(inner, rune(q)) {
		return "", false
	}
	return inner, true
}

// fieldPattern matches one object-literal field: a plain or quoted name,
// an optional ? marker, a colon, then the value type. (?s) lets the value
// span lines, since nested object values are written multiline.
var fieldPattern = regexp.MustCompile(`(?s)^(\w+|"[^"]*"|'[^']*')\s*(\?)?\s*:\s*(.+)$`)

// blockComment matches a leading /** ... */ comment on a field segment.
var blockComment = regexp.MustCompile(`(?s)^/\*\*?(.*?)\*/\s*`)

// parseObjectLiteral parses an inline object type body. Fields are split
// on top-level semicolons; segments that do not look like a field are
// skipped without discarding their siblings. A leading block comment on a
// field becomes the property description.
func parseObjectLiteral(s string) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: jsonschema.NewProperties(),
	}

	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return schema
	}

	for _, field := range splitObjectFields(body, ';') {
		desc := ""
		if m := blockComment.FindStringSubmatch(field); m != nil {
			desc = collapseComment(m[1])
			field = field[len(m[0]):]
		}

		m := fieldPattern.FindStringSubmatch(field)
		if m == nil {
			continue
		}

		name := m[1]
		if v, ok := unquote(name); ok {
			name = v
		}

		prop := ParseType(m[3])
		if desc != "" {
			prop.Description = desc
		}
		schema.Properties.Set(name, prop)

		if m[2] == "" {
			schema.Required = append(schema.Required, name)
		}
	}

	return schema
}

// collapseComment flattens a block comment body to a single line,
// dropping leading asterisks from continuation lines.
func collapseComment(s string) string {
	lines := strings.Split(s, "\n")
	var words []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		if line != "" {
			words = append(words, line)
		}
	}
	return strings.Join(words, " ")
}
