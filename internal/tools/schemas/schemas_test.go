package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestSchema() *Schema {
	return NewSchema("test_tool", "A test tool").
		AddParam("query", "string", "The query", true).
		AddParamWithEnum("depth", "string", "The depth", []string{"basic", "advanced"}, false).
		AddArrayParam("domains", "Domain filters", nil, false).
		AddArrayParam("categories", "Category filters", []string{"Blog", "Docs"}, false).
		Build()
}

func TestSchemaBuilder(t *testing.T) {
	schema := buildTestSchema()

	assert.Equal(t, "test_tool", schema.Name)
	assert.Equal(t, "A test tool", schema.Description)
	assert.Equal(t, []string{"query"}, schema.Required())

	props := schema.Properties()
	require.Contains(t, props, "query")
	require.Contains(t, props, "depth")
	require.Contains(t, props, "domains")

	depth := props["depth"].(map[string]interface{})
	assert.Equal(t, "string", depth["type"])
	assert.Equal(t, []string{"basic", "advanced"}, depth["enum"])

	domains := props["domains"].(map[string]interface{})
	assert.Equal(t, "array", domains["type"])
	items := domains["items"].(map[string]interface{})
	assert.Equal(t, "string", items["type"])
	_, hasEnum := items["enum"]
	assert.False(t, hasEnum)

	categories := props["categories"].(map[string]interface{})
	catItems := categories["items"].(map[string]interface{})
	assert.Equal(t, []string{"Blog", "Docs"}, catItems["enum"])
}

func TestRegistryFormats(t *testing.T) {
	reg := NewRegistry()
	reg.Register(buildTestSchema())

	got, ok := reg.Get("test_tool")
	require.True(t, ok)
	assert.Equal(t, "test_tool", got.Name)
	assert.Equal(t, []string{"test_tool"}, reg.List())

	openai := reg.ToOpenAIFormat()
	require.Len(t, openai, 1)
	assert.Equal(t, "function", openai[0]["type"])
	assert.Equal(t, got, openai[0]["function"])

	anthropic := reg.ToAnthropicFormat()
	require.Len(t, anthropic, 1)
	assert.Equal(t, "test_tool", anthropic[0]["name"])
	assert.Equal(t, got.Parameters, anthropic[0]["input_schema"])
}
