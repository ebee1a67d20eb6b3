package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-ai/scout/internal/config"
	"github.com/scout-ai/scout/internal/errors"
)

func TestMapTransmitsOperationDefaults(t *testing.T) {
	svc, client := newFakeService(t)

	tool := &MapSite{Client: client}
	_, err := tool.Execute(context.Background(), map[string]any{
		"url": "https://example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "/map", svc.lastPath)
	assert.Equal(t, "https://example.com", svc.lastBody["url"])
	assert.Equal(t, float64(1), svc.lastBody["max_depth"])
	assert.Equal(t, float64(20), svc.lastBody["max_breadth"])
	assert.Equal(t, float64(50), svc.lastBody["limit"])
	assert.Equal(t, "basic", svc.lastBody["extract_depth"])
	assert.Equal(t, false, svc.lastBody["allow_external"])
}

func TestMapCallParamsWin(t *testing.T) {
	svc, client := newFakeService(t)

	tool := &MapSite{
		Client:   client,
		Defaults: config.MapDefaults{MaxDepth: 2, Categories: []string{"Blog"}},
	}
	_, err := tool.Execute(context.Background(), map[string]any{
		"url":        "https://example.com",
		"max_depth":  3,
		"categories": []any{"Documentation"},
	})
	require.NoError(t, err)

	assert.Equal(t, float64(3), svc.lastBody["max_depth"])
	assert.Equal(t, []any{"Documentation"}, svc.lastBody["categories"])
}

func TestMapMissingURL(t *testing.T) {
	_, client := newFakeService(t)

	tool := &MapSite{Client: client}
	_, err := tool.Execute(context.Background(), map[string]any{})

	appErr := requireStructured(t, err)
	assert.Equal(t, errors.CodeToolInvalidParams, appErr.Code)
}

func TestMapEmptyResultAccumulatesSuggestions(t *testing.T) {
	svc, client := newFakeService(t)
	svc.body = `{"results": []}`

	tool := &MapSite{Client: client}
	_, err := tool.Execute(context.Background(), map[string]any{
		"url":          "https://example.com",
		"instructions": "map the docs",
		"categories":   []any{"Documentation"},
	})

	appErr := requireStructured(t, err)
	assert.Contains(t, appErr.Message, "No map results found for 'https://example.com'")
	assert.Equal(t, []string{
		"Try more concise instructions",
		"Remove categories argument",
	}, appErr.Suggestions)
}
