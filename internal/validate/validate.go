// Package validate compiles converter-produced schemas and checks JSON
// samples against them.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/usestring/typebridge-mcp/pkg/typeconv"
)

// Result contains the outcome of validating one value.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validator validates JSON data against a compiled schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator parses a type annotation and compiles the resulting schema.
// ParseType itself never fails; compilation can, for schema shapes the
// validator rejects.
func NewValidator(typeStr string) (*Validator, error) {
	return FromSchema(typeconv.ParseType(typeStr))
}

// FromSchema compiles an already-built schema tree.
func FromSchema(schema *invopop.Schema) (*Validator, error) {
	// Round-trip through JSON to hand the compiler a plain value.
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return &Validator{schema: compiled}, nil
}

// Validate checks a raw JSON document against the schema.
func (v *Validator) Validate(data []byte) *Result {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return &Result{
			Valid:  false,
			Errors: []string{fmt.Sprintf("invalid JSON: %s", err.Error())},
		}
	}
	return v.ValidateValue(value)
}

// ValidateValue checks an already-decoded value against the schema.
func (v *Validator) ValidateValue(value any) *Result {
	err := v.schema.Validate(value)
	if err == nil {
		return &Result{Valid: true}
	}
	return &Result{Valid: false, Errors: extractErrors(err)}
}

// printer renders validation errors as English text.
var printer = message.NewPrinter(language.English)

// extractErrors flattens a validation error into deduplicated per-path
// messages.
func extractErrors(err error) []string {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return []string{err.Error()}
	}

	byPath := make(map[string][]string)
	var order []string
	collectLeaves(validationErr, byPath, &order)

	var result []string
	for _, path := range order {
		seen := make(map[string]bool)
		for _, msg := range byPath[path] {
			if seen[msg] {
				continue
			}
			seen[msg] = true
			if path != "" {
				result = append(result, path+": "+msg)
			} else {
				result = append(result, msg)
			}
		}
	}
	return result
}

// collectLeaves gathers leaf causes; schema-reference bookkeeping messages
// are noise, not errors, and are dropped.
func collectLeaves(err *jsonschema.ValidationError, byPath map[string][]string, order *[]string) {
	path := ""
	if len(err.InstanceLocation) > 0 {
		path = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil && len(err.Causes) == 0 {
		msg := err.ErrorKind.LocalizedString(printer)
		if !strings.HasPrefix(msg, "$ref ") && !strings.HasPrefix(msg, "doesn't validate with") {
			if _, exists := byPath[path]; !exists {
				*order = append(*order, path)
			}
			byPath[path] = append(byPath[path], msg)
		}
	}

	for _, cause := range err.Causes {
		collectLeaves(cause, byPath, order)
	}
}
