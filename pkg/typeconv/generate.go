package typeconv

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
)

// DefaultRootName is the declaration name used when GenerateType is called
// with an empty root name.
const DefaultRootName = "Output"

// GenerateType renders a JSON Schema as a named TypeScript declaration.
// Object schemas become an interface; everything else becomes a type alias.
//
// Rendering is deterministic: property order is the schema's insertion
// order and union/intersection members keep their original order, so the
// same tree always yields character-identical output.
func GenerateType(schema *jsonschema.Schema, rootName string) string {
	if rootName == "" {
		rootName = DefaultRootName
	}
	expr := TypeExpr(schema)
	if strings.HasPrefix(expr, "{") {
		return "interface " + rootName + " " + expr
	}
	return "type " + rootName + " = " + expr + ";"
}

// TypeExpr renders a JSON Schema as a bare TypeScript type expression,
// without a surrounding declaration. Every schema shape has a rendering;
// unrecognized nodes fall back to "unknown".
func TypeExpr(schema *jsonschema.Schema) string {
	return renderType(schema, 0)
}

func renderType(s *jsonschema.Schema, indent int) string {
	if s == nil {
		return "unknown"
	}

	// The uninhabited type carries a not: {} marker.
	if s.Not != nil {
		return "never"
	}

	if len(s.AnyOf) > 0 {
		return joinMembers(s.AnyOf, " | ", indent)
	}
	if len(s.AllOf) > 0 {
		return joinMembers(s.AllOf, " & ", indent)
	}

	if len(s.Enum) > 0 {
		values := make([]string, 0, len(s.Enum))
		for _, v := range s.Enum {
			values = append(values, literalExpr(v))
		}
		return strings.Join(values, " | ")
	}

	switch s.Type {
	case "string", "number", "boolean", "null":
		return s.Type
	case "integer":
		// Inferred and hand-written schemas distinguish integers;
		// TypeScript does not.
		return "number"
	case "array":
		return renderType(s.Items, indent) + "[]"
	case "object":
		return renderObject(s, indent)
	}

	return "unknown"
}

func joinMembers(members []*jsonschema.Schema, sep string, indent int) string {
	rendered := make([]string, 0, len(members))
	for _, m := range members {
		rendered = append(rendered, renderType(m, indent))
	}
	return strings.Join(rendered, sep)
}

// renderObject renders an object schema as a multiline literal. An object
// with no known properties renders as a Record type instead, using the
// additionalProperties schema as the value type when one is present.
func renderObject(s *jsonschema.Schema, indent int) string {
	if s.Properties == nil || s.Properties.Len() == 0 {
		if s.AdditionalProperties != nil {
			return "Record<string, " + renderType(s.AdditionalProperties, indent) + ">"
		}
		return "Record<string, unknown>"
	}

	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}

	pad := strings.Repeat("  ", indent+1)
	var b strings.Builder
	b.WriteString("{\n")
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value != nil && pair.Value.Description != "" {
			b.WriteString(pad)
			b.WriteString("/** ")
			b.WriteString(pair.Value.Description)
			b.WriteString(" */\n")
		}
		b.WriteString(pad)
		b.WriteString(pair.Key)
		if !required[pair.Key] {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(renderType(pair.Value, indent+1))
		b.WriteString(";\n")
	}
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString("}")
	return b.String()
}

// literalExpr renders one enum value as a TypeScript literal. Schemas that
// arrive through JSON decoding carry numbers as float64 or json.Number, so
// all numeric shapes are handled.
func literalExpr(v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
