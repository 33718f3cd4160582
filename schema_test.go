package geminicli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFor(t *testing.T) {
	type args struct {
		Path    string   `json:"path" desc:"File path" required:"true"`
		Limit   int      `json:"limit" desc:"Max bytes"`
		Verbose bool     `json:"verbose"`
		Tags    []string `json:"tags" desc:"Labels"`
		hidden  string
	}
	_ = args{}.hidden

	raw, err := SchemaFor[args]()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(raw, &schema))

	assert.Equal(t, "object", schema["type"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	require.Len(t, props, 4)

	path := props["path"].(map[string]any)
	assert.Equal(t, "string", path["type"])
	assert.Equal(t, "File path", path["description"])

	limit := props["limit"].(map[string]any)
	assert.Equal(t, "integer", limit["type"])

	verbose := props["verbose"].(map[string]any)
	assert.Equal(t, "boolean", verbose["type"])

	tags := props["tags"].(map[string]any)
	assert.Equal(t, "array", tags["type"])
	items := tags["items"].(map[string]any)
	assert.Equal(t, "string", items["type"])

	required, ok := schema["required"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"path"}, required)
}

func TestSchemaForNested(t *testing.T) {
	type inner struct {
		Name string `json:"name" required:"true"`
	}
	type outer struct {
		Item inner `json:"item" desc:"Nested object"`
	}

	raw, err := SchemaFor[outer]()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(raw, &schema))

	props := schema["properties"].(map[string]any)
	item := props["item"].(map[string]any)
	assert.Equal(t, "object", item["type"])

	itemProps := item["properties"].(map[string]any)
	name := itemProps["name"].(map[string]any)
	assert.Equal(t, "string", name["type"])
}

func TestMustSchemaFor(t *testing.T) {
	type ok struct {
		Field string `json:"field"`
	}
	assert.NotPanics(t, func() {
		raw := MustSchemaFor[ok]()
		assert.NotEmpty(t, raw)
	})
}
