package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/typebridge-mcp/pkg/infer"
	"github.com/usestring/typebridge-mcp/pkg/typeconv"
)

// InferTypeInput is the input for typebridge_infer_type.
type InferTypeInput struct {
	Samples  []string `json:"samples" jsonschema:"required,JSON documents to infer a shape from"`
	Selector string   `json:"selector,omitempty" jsonschema:"Optional jq expression applied to each sample first (e.g. .data.items[])"`
	RootName string   `json:"root_name,omitempty" jsonschema:"Declaration name (default: Output)"`
}

// InferTypeOutput is the output for typebridge_infer_type.
type InferTypeOutput struct {
	Schema      any    `json:"schema"`
	TypeScript  string `json:"typescript"`
	SampleCount int    `json:"sample_count"`
	AllMatch    bool   `json:"all_match"`
}

// ToolInferType infers a schema from JSON samples and renders it as a type
// annotation. A jq selector can narrow each sample to the subtree of
// interest before inference; every value the selector emits counts as one
// sample.
func ToolInferType(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferTypeInput) (*sdkmcp.CallToolResult, InferTypeOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferTypeInput) (*sdkmcp.CallToolResult, InferTypeOutput, error) {
		if len(input.Samples) == 0 {
			return nil, InferTypeOutput{}, ErrInvalidInput("at least one sample is required")
		}

		samples := make([][]byte, 0, len(input.Samples))
		for _, s := range input.Samples {
			samples = append(samples, []byte(s))
		}
		if len(samples) > d.Config.MaxSamples {
			samples = samples[:d.Config.MaxSamples]
		}

		if input.Selector != "" {
			selected, err := applySelector(samples, input.Selector)
			if err != nil {
				return nil, InferTypeOutput{}, ErrInvalidInput(err.Error())
			}
			if len(selected) == 0 {
				return nil, InferTypeOutput{}, ErrInvalidInput("selector matched no values")
			}
			samples = selected
		}

		result, err := infer.Infer(samples...)
		if err != nil {
			return nil, InferTypeOutput{}, ErrInvalidInput(err.Error())
		}

		rootName := input.RootName
		if rootName == "" {
			rootName = d.Config.DefaultRootName
		}

		return nil, InferTypeOutput{
			Schema:      result.Schema,
			TypeScript:  typeconv.GenerateType(result.Schema, rootName),
			SampleCount: result.SampleCount,
			AllMatch:    result.AllMatch,
		}, nil
	}
}

// applySelector runs a jq expression over each sample and re-encodes every
// emitted value as its own sample.
func applySelector(samples [][]byte, selector string) ([][]byte, error) {
	query, err := gojq.Parse(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jq selector: %s", err.Error())
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq selector: %s", err.Error())
	}

	var selected [][]byte
	for i, sample := range samples {
		var value any
		if err := json.Unmarshal(sample, &value); err != nil {
			return nil, fmt.Errorf("sample %d is not valid JSON: %s", i, err.Error())
		}

		iter := code.Run(value)
		for {
			v, ok := iter.Next()
			if !ok {
				break
			}
			if err, isErr := v.(error); isErr {
				return nil, fmt.Errorf("jq selector failed on sample %d: %s", i, err.Error())
			}
			data, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("re-encoding selected value: %s", err.Error())
			}
			selected = append(selected, data)
		}
	}
	return selected, nil
}
