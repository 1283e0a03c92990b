package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ObjectAnnotation(t *testing.T) {
	v, err := NewValidator("{ id: string; count?: number }")
	require.NoError(t, err)

	assert.True(t, v.Validate([]byte(`{"id": "a", "count": 3}`)).Valid)
	assert.True(t, v.Validate([]byte(`{"id": "a"}`)).Valid)

	missing := v.Validate([]byte(`{"count": 3}`))
	assert.False(t, missing.Valid)
	assert.NotEmpty(t, missing.Errors)

	wrongType := v.Validate([]byte(`{"id": 1}`))
	assert.False(t, wrongType.Valid)
}

func TestValidator_NullableUnion(t *testing.T) {
	v, err := NewValidator("string | null")
	require.NoError(t, err)

	assert.True(t, v.Validate([]byte(`"hello"`)).Valid)
	assert.True(t, v.Validate([]byte(`null`)).Valid)
	assert.False(t, v.Validate([]byte(`42`)).Valid)
}

func TestValidator_StringEnum(t *testing.T) {
	v, err := NewValidator(`"pending" | "done"`)
	require.NoError(t, err)

	assert.True(t, v.Validate([]byte(`"pending"`)).Valid)
	assert.False(t, v.Validate([]byte(`"other"`)).Valid)
}

func TestValidator_ArrayOfObjects(t *testing.T) {
	v, err := NewValidator("{ id: number }[]")
	require.NoError(t, err)

	assert.True(t, v.Validate([]byte(`[{"id": 1}, {"id": 2}]`)).Valid)
	assert.False(t, v.Validate([]byte(`[{"id": "x"}]`)).Valid)
}

func TestValidator_Record(t *testing.T) {
	v, err := NewValidator("Record<string, number>")
	require.NoError(t, err)

	assert.True(t, v.Validate([]byte(`{"a": 1, "b": 2}`)).Valid)
	assert.False(t, v.Validate([]byte(`{"a": "x"}`)).Valid)
}

func TestValidator_UnknownMatchesAnything(t *testing.T) {
	v, err := NewValidator("Frobnicate<X>")
	require.NoError(t, err)

	for _, doc := range []string{`"s"`, `1`, `null`, `[1, 2]`, `{"any": true}`} {
		assert.True(t, v.Validate([]byte(doc)).Valid, "doc %s", doc)
	}
}

func TestValidator_NeverMatchesNothing(t *testing.T) {
	v, err := NewValidator("never")
	require.NoError(t, err)

	for _, doc := range []string{`"s"`, `1`, `null`, `{}`} {
		assert.False(t, v.Validate([]byte(doc)).Valid, "doc %s", doc)
	}
}

func TestValidator_InvalidJSONSample(t *testing.T) {
	v, err := NewValidator("string")
	require.NoError(t, err)

	result := v.Validate([]byte(`{not json`))
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "invalid JSON")
}

func TestValidator_ValidateValue(t *testing.T) {
	v, err := NewValidator("number[]")
	require.NoError(t, err)

	assert.True(t, v.ValidateValue([]any{1.0, 2.0}).Valid)
	assert.False(t, v.ValidateValue("nope").Valid)
}
