package tools

import (
	"context"
	"encoding/json"

	"github.com/invopop/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/typebridge-mcp/pkg/typeconv"
)

// ParseTypeInput is the input for typebridge_parse_type.
type ParseTypeInput struct {
	Type     string `json:"type" jsonschema:"required,TypeScript-style type annotation to convert"`
	RootName string `json:"root_name,omitempty" jsonschema:"Declaration name for the echoed preview (default: Output)"`
}

// ParseTypeOutput is the output for typebridge_parse_type.
type ParseTypeOutput struct {
	Schema     any    `json:"schema"`
	TypeScript string `json:"typescript"`
}

// ToolParseType converts a type annotation into a JSON Schema. The schema
// is echoed back as a regenerated declaration so the caller can preview
// what actually parsed; unsupported constructs degrade to unknown rather
// than erroring.
func ToolParseType(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ParseTypeInput) (*sdkmcp.CallToolResult, ParseTypeOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ParseTypeInput) (*sdkmcp.CallToolResult, ParseTypeOutput, error) {
		if input.Type == "" {
			return nil, ParseTypeOutput{}, ErrInvalidInput("type is required")
		}

		rootName := input.RootName
		if rootName == "" {
			rootName = d.Config.DefaultRootName
		}

		schema := typeconv.ParseType(input.Type)
		return nil, ParseTypeOutput{
			Schema:     schema,
			TypeScript: typeconv.GenerateType(schema, rootName),
		}, nil
	}
}

// GenerateTypeInput is the input for typebridge_generate_type.
type GenerateTypeInput struct {
	Schema   string `json:"schema" jsonschema:"required,JSON Schema document to render as a type annotation"`
	RootName string `json:"root_name,omitempty" jsonschema:"Declaration name (default: Output)"`
}

// GenerateTypeOutput is the output for typebridge_generate_type.
type GenerateTypeOutput struct {
	TypeScript string `json:"typescript"`
	Expression string `json:"expression"`
}

// ToolGenerateType renders a stored JSON Schema as a named declaration plus
// the bare type expression for inline display. The schema arrives as a JSON
// document string so property order survives decoding.
func ToolGenerateType(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateTypeInput) (*sdkmcp.CallToolResult, GenerateTypeOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateTypeInput) (*sdkmcp.CallToolResult, GenerateTypeOutput, error) {
		if input.Schema == "" {
			return nil, GenerateTypeOutput{}, ErrInvalidInput("schema is required")
		}

		var schema jsonschema.Schema
		if err := json.Unmarshal([]byte(input.Schema), &schema); err != nil {
			return nil, GenerateTypeOutput{}, ErrSchema("decoding schema", err)
		}

		rootName := input.RootName
		if rootName == "" {
			rootName = d.Config.DefaultRootName
		}

		return nil, GenerateTypeOutput{
			TypeScript: typeconv.GenerateType(&schema, rootName),
			Expression: typeconv.TypeExpr(&schema),
		}, nil
	}
}
