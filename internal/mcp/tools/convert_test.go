package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/typebridge-mcp/internal/cache"
	"github.com/usestring/typebridge-mcp/internal/config"
)

func testDeps(t *testing.T) *Deps {
	t.Helper()
	validators, err := cache.NewValidatorCache(16)
	require.NoError(t, err)
	return &Deps{
		Config: &config.Config{
			DefaultRootName: "Output",
			MaxSamples:      10,
		},
		Validators: validators,
	}
}

func TestToolParseType_ObjectAnnotation(t *testing.T) {
	handler := ToolParseType(testDeps(t))

	_, out, err := handler(context.Background(), nil, ParseTypeInput{
		Type: "{ id: string; count?: number }",
	})
	require.NoError(t, err)

	data, err := json.Marshal(out.Schema)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, []any{"id"}, doc["required"])
	assert.Equal(t, "interface Output {\n  id: string;\n  count?: number;\n}", out.TypeScript)
}

func TestToolParseType_RootNameOverride(t *testing.T) {
	handler := ToolParseType(testDeps(t))

	_, out, err := handler(context.Background(), nil, ParseTypeInput{
		Type:     "string[]",
		RootName: "Tags",
	})
	require.NoError(t, err)
	assert.Equal(t, "type Tags = string[];", out.TypeScript)
}

func TestToolParseType_EmptyTypeRejected(t *testing.T) {
	handler := ToolParseType(testDeps(t))

	_, _, err := handler(context.Background(), nil, ParseTypeInput{})
	require.Error(t, err)

	var coded *CodedError
	require.True(t, errors.As(err, &coded))
	assert.Equal(t, ErrCodeInvalidInput, coded.Code)
}

func TestToolParseType_MalformedInputDegrades(t *testing.T) {
	handler := ToolParseType(testDeps(t))

	// Garbage never errors; it degrades to an unconstrained schema.
	_, out, err := handler(context.Background(), nil, ParseTypeInput{
		Type: "<<<not a type>>>",
	})
	require.NoError(t, err)
	assert.Equal(t, "type Output = unknown;", out.TypeScript)
}

func TestToolGenerateType_PreservesPropertyOrder(t *testing.T) {
	handler := ToolGenerateType(testDeps(t))

	doc := `{
		"type": "object",
		"properties": {
			"zebra": {"type": "string"},
			"apple": {"type": "number"}
		},
		"required": ["zebra", "apple"]
	}`

	_, out, err := handler(context.Background(), nil, GenerateTypeInput{Schema: doc})
	require.NoError(t, err)
	assert.Equal(t, "interface Output {\n  zebra: string;\n  apple: number;\n}", out.TypeScript)
	assert.Equal(t, "{\n  zebra: string;\n  apple: number;\n}", out.Expression)
}

func TestToolGenerateType_AliasForNonObject(t *testing.T) {
	handler := ToolGenerateType(testDeps(t))

	_, out, err := handler(context.Background(), nil, GenerateTypeInput{
		Schema:   `{"anyOf": [{"type": "string"}, {"type": "null"}]}`,
		RootName: "MaybeName",
	})
	require.NoError(t, err)
	assert.Equal(t, "type MaybeName = string | null;", out.TypeScript)
	assert.Equal(t, "string | null", out.Expression)
}

func TestToolGenerateType_InvalidDocument(t *testing.T) {
	handler := ToolGenerateType(testDeps(t))

	_, _, err := handler(context.Background(), nil, GenerateTypeInput{Schema: "{not json"})
	require.Error(t, err)

	var coded *CodedError
	require.True(t, errors.As(err, &coded))
	assert.Equal(t, ErrCodeSchemaError, coded.Code)
}

func TestToolGenerateType_EmptySchemaRejected(t *testing.T) {
	handler := ToolGenerateType(testDeps(t))

	_, _, err := handler(context.Background(), nil, GenerateTypeInput{})
	assert.Error(t, err)
}
