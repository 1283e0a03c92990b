// Package infer derives a JSON Schema from sample JSON values, so an
// editor can propose a type annotation from example output instead of
// asking the user to write one.
package infer

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/invopop/jsonschema"
)

// Result contains the schema inferred from one or more samples.
type Result struct {
	Schema      *jsonschema.Schema `json:"schema"`
	SampleCount int                `json:"sample_count"`
	AllMatch    bool               `json:"all_match"` // all samples produced an identical schema
}

// Infer builds a merged JSON Schema from raw JSON samples. Samples that do
// not parse as JSON are rejected; at least one valid sample is required.
// Object properties present in every sample with a non-null value become
// required.
func Infer(samples ...[]byte) (*Result, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("at least one sample is required")
	}

	values := make([]any, 0, len(samples))
	for i, data := range samples {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("sample %d is not valid JSON: %w", i, err)
		}
		values = append(values, v)
	}

	schemas := make([]*jsonschema.Schema, 0, len(values))
	for _, v := range values {
		schemas = append(schemas, FromValue(v))
	}

	allMatch := true
	first, _ := json.Marshal(schemas[0])
	for _, s := range schemas[1:] {
		other, _ := json.Marshal(s)
		if string(first) != string(other) {
			allMatch = false
			break
		}
	}

	merged := merge(schemas)
	if merged.Type == "object" {
		markRequired(merged, values)
	}

	return &Result{
		Schema:      merged,
		SampleCount: len(values),
		AllMatch:    allMatch,
	}, nil
}

// FromValue infers a schema for a single decoded JSON value.
func FromValue(v any) *jsonschema.Schema {
	switch val := v.(type) {
	case nil:
		return &jsonschema.Schema{Type: "null"}
	case bool:
		return &jsonschema.Schema{Type: "boolean"}
	case float64:
		// encoding/json decodes every number as float64; report whole
		// values as integers so the distinction survives merging.
		if math.Trunc(val) == val && !math.IsInf(val, 0) {
			return &jsonschema.Schema{Type: "integer"}
		}
		return &jsonschema.Schema{Type: "number"}
	case string:
		return &jsonschema.Schema{Type: "string"}
	case []any:
		schema := &jsonschema.Schema{Type: "array"}
		if len(val) > 0 {
			items := make([]*jsonschema.Schema, 0, len(val))
			for _, item := range val {
				items = append(items, FromValue(item))
			}
			schema.Items = merge(items)
		}
		return schema
	case map[string]any:
		schema := &jsonschema.Schema{
			Type:       "object",
			Properties: jsonschema.NewProperties(),
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			schema.Properties.Set(k, FromValue(val[k]))
		}
		return schema
	default:
		return &jsonschema.Schema{}
	}
}

// merge combines per-sample schemas into one. Same-typed schemas merge
// recursively; mixed types become an anyOf with one arm per type.
func merge(schemas []*jsonschema.Schema) *jsonschema.Schema {
	if len(schemas) == 0 {
		return &jsonschema.Schema{}
	}
	if len(schemas) == 1 {
		return schemas[0]
	}

	byType := make(map[string][]*jsonschema.Schema)
	var order []string
	for _, s := range schemas {
		if s.Type == "" {
			continue
		}
		if _, seen := byType[s.Type]; !seen {
			order = append(order, s.Type)
		}
		byType[s.Type] = append(byType[s.Type], s)
	}

	// integer is a refinement of number; a mix of the two is number.
	if len(byType) == 2 && byType["integer"] != nil && byType["number"] != nil {
		return &jsonschema.Schema{Type: "number"}
	}

	if len(byType) == 1 {
		t := order[0]
		switch t {
		case "object":
			return mergeObjects(byType[t])
		case "array":
			return mergeArrays(byType[t])
		default:
			return &jsonschema.Schema{Type: t}
		}
	}

	arms := make([]*jsonschema.Schema, 0, len(order))
	for _, t := range order {
		switch t {
		case "object":
			arms = append(arms, mergeObjects(byType[t]))
		case "array":
			arms = append(arms, mergeArrays(byType[t]))
		default:
			arms = append(arms, &jsonschema.Schema{Type: t})
		}
	}
	if len(arms) == 0 {
		return &jsonschema.Schema{}
	}
	if len(arms) == 1 {
		return arms[0]
	}
	return &jsonschema.Schema{AnyOf: arms}
}

func mergeObjects(schemas []*jsonschema.Schema) *jsonschema.Schema {
	if len(schemas) == 1 {
		return schemas[0]
	}

	grouped := make(map[string][]*jsonschema.Schema)
	for _, s := range schemas {
		if s.Properties == nil {
			continue
		}
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			grouped[pair.Key] = append(grouped[pair.Key], pair.Value)
		}
	}

	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	merged := &jsonschema.Schema{
		Type:       "object",
		Properties: jsonschema.NewProperties(),
	}
	for _, k := range keys {
		merged.Properties.Set(k, merge(grouped[k]))
	}
	return merged
}

func mergeArrays(schemas []*jsonschema.Schema) *jsonschema.Schema {
	var items []*jsonschema.Schema
	for _, s := range schemas {
		if s.Items != nil {
			items = append(items, s.Items)
		}
	}
	merged := &jsonschema.Schema{Type: "array"}
	if len(items) > 0 {
		merged.Items = merge(items)
	}
	return merged
}

// markRequired walks the merged object schema and records which properties
// appear, non-null, in every sample. Properties that can be null stay
// optional so generated annotations lean permissive.
func markRequired(schema *jsonschema.Schema, samples []any) {
	if schema.Type != "object" || schema.Properties == nil {
		return
	}

	counts := make(map[string]int)
	nullable := make(map[string]bool)
	total := 0
	for _, sample := range samples {
		obj, ok := sample.(map[string]any)
		if !ok {
			continue
		}
		total++
		for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if v, present := obj[pair.Key]; present {
				counts[pair.Key]++
				if v == nil {
					nullable[pair.Key] = true
				}
			}
		}
	}
	if total == 0 {
		return
	}

	var required []string
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		if counts[pair.Key] == total && !nullable[pair.Key] {
			required = append(required, pair.Key)
		}
	}
	schema.Required = required

	// Recurse with the nested sample slices so deep objects get required
	// sets too.
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		prop := pair.Value
		switch prop.Type {
		case "object":
			var nested []any
			for _, sample := range samples {
				if obj, ok := sample.(map[string]any); ok {
					if v, present := obj[pair.Key]; present && v != nil {
						nested = append(nested, v)
					}
				}
			}
			if len(nested) > 0 {
				markRequired(prop, nested)
			}
		case "array":
			if prop.Items == nil || prop.Items.Type != "object" {
				continue
			}
			var nested []any
			for _, sample := range samples {
				obj, ok := sample.(map[string]any)
				if !ok {
					continue
				}
				arr, ok := obj[pair.Key].([]any)
				if !ok {
					continue
				}
				for _, item := range arr {
					if item != nil {
						nested = append(nested, item)
					}
				}
			}
			if len(nested) > 0 {
				markRequired(prop.Items, nested)
			}
		}
	}
}
