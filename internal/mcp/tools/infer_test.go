package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolInferType_MergesSamples(t *testing.T) {
	handler := ToolInferType(testDeps(t))

	_, out, err := handler(context.Background(), nil, InferTypeInput{
		Samples: []string{
			`{"id": 1, "name": "a"}`,
			`{"id": 2, "name": "b", "note": "extra"}`,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.SampleCount)
	assert.False(t, out.AllMatch)
	assert.Equal(t, "interface Output {\n  id: number;\n  name: string;\n  note?: string;\n}", out.TypeScript)
}

func TestToolInferType_SelectorNarrowsSamples(t *testing.T) {
	handler := ToolInferType(testDeps(t))

	_, out, err := handler(context.Background(), nil, InferTypeInput{
		Samples: []string{
			`{"data": {"items": [{"sku": "a", "qty": 1}, {"sku": "b", "qty": 2}]}}`,
		},
		Selector: ".data.items[]",
		RootName: "Item",
	})
	require.NoError(t, err)

	// Each emitted array element counts as one sample.
	assert.Equal(t, 2, out.SampleCount)
	assert.True(t, out.AllMatch)
	assert.Equal(t, "interface Item {\n  qty: number;\n  sku: string;\n}", out.TypeScript)
}

func TestToolInferType_SelectorMatchesNothing(t *testing.T) {
	handler := ToolInferType(testDeps(t))

	_, _, err := handler(context.Background(), nil, InferTypeInput{
		Samples:  []string{`{"a": 1}`},
		Selector: ".missing.path[]?",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selector matched no values")
}

func TestToolInferType_InvalidSelector(t *testing.T) {
	handler := ToolInferType(testDeps(t))

	_, _, err := handler(context.Background(), nil, InferTypeInput{
		Samples:  []string{`{"a": 1}`},
		Selector: ".[broken",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid jq selector")
}

func TestToolInferType_InvalidSample(t *testing.T) {
	handler := ToolInferType(testDeps(t))

	_, _, err := handler(context.Background(), nil, InferTypeInput{
		Samples: []string{`{nope`},
	})
	assert.Error(t, err)
}

func TestToolInferType_NoSamples(t *testing.T) {
	handler := ToolInferType(testDeps(t))

	_, _, err := handler(context.Background(), nil, InferTypeInput{})
	assert.Error(t, err)
}
