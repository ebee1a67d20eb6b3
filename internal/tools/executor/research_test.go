package executor

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-ai/scout/internal/config"
	"github.com/scout-ai/scout/internal/errors"
	"github.com/scout-ai/scout/internal/history"
	"github.com/scout-ai/scout/internal/tavily"
)

func newTestLedger(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestResearchTransmitsDefaults(t *testing.T) {
	svc, client := newFakeService(t)
	svc.body = `{"request_id": "req-1", "status": "pending"}`

	tool := &Research{Client: client}
	result, err := tool.Execute(context.Background(), map[string]any{
		"input": "history of the transistor",
	})
	require.NoError(t, err)

	assert.Equal(t, "/research", svc.lastPath)
	assert.Equal(t, "history of the transistor", svc.lastBody["input"])
	assert.Equal(t, "auto", svc.lastBody["model"])
	assert.Equal(t, "numbered", svc.lastBody["citation_format"])
	assert.Equal(t, false, svc.lastBody["stream"])

	data := result.Data.(map[string]any)
	assert.Equal(t, "req-1", data["request_id"])
}

func TestResearchEmptyStatusPayloadIsNotAnError(t *testing.T) {
	svc, client := newFakeService(t)
	svc.body = `{"request_id": "req-1", "status": "pending", "results": []}`

	tool := &Research{Client: client}
	result, err := tool.Execute(context.Background(), map[string]any{"input": "x"})
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestResearchExtensionFieldsPassThrough(t *testing.T) {
	svc, client := newFakeService(t)
	svc.body = `{"request_id": "req-1", "status": "pending"}`

	tool := &Research{Client: client}
	_, err := tool.Execute(context.Background(), map[string]any{
		"input":      "topic",
		"max_tokens": float64(2048),
		"model":      "pro",
		"nilfield":   nil,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(2048), svc.lastBody["max_tokens"])
	assert.Equal(t, "pro", svc.lastBody["model"])
	_, ok := svc.lastBody["nilfield"]
	assert.False(t, ok)
}

func TestResearchRecordsHistory(t *testing.T) {
	svc, client := newFakeService(t)
	svc.body = `{"request_id": "req-42", "status": "pending"}`

	ledger := newTestLedger(t)
	tool := &Research{Client: client, History: ledger, Defaults: config.ResearchDefaults{Model: "mini"}}
	_, err := tool.Execute(context.Background(), map[string]any{"input": "deep topic"})
	require.NoError(t, err)

	entry, err := ledger.Get("req-42")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "deep topic", entry.Input)
	assert.Equal(t, "mini", entry.Model)
	assert.Equal(t, "pending", entry.Status)
}

func TestResearchMissingInput(t *testing.T) {
	_, client := newFakeService(t)

	tool := &Research{Client: client}
	_, err := tool.Execute(context.Background(), map[string]any{})

	appErr := requireStructured(t, err)
	assert.Equal(t, errors.CodeToolInvalidParams, appErr.Code)
}

func TestResearchStreamingReturnsStream(t *testing.T) {
	svc, client := newFakeService(t)
	svc.body = `{"partial": "chunk"}`

	tool := &Research{Client: client}
	result, err := tool.Execute(context.Background(), map[string]any{
		"input":  "topic",
		"stream": true,
	})
	require.NoError(t, err)
	assert.Equal(t, true, svc.lastBody["stream"])

	stream, ok := result.Data.(*tavily.Stream)
	require.True(t, ok)
	defer stream.Close()

	var collected []byte
	for {
		chunk, err := stream.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		collected = append(collected, chunk...)
	}
	assert.Equal(t, `{"partial": "chunk"}`, string(collected))
}

func TestResearchStreamingAlwaysRaisesErrors(t *testing.T) {
	svc, client := newFakeService(t)
	svc.status = 503
	svc.body = `{"detail": {"error": "overloaded"}}`

	tool := &Research{Client: client, Defaults: config.ResearchDefaults{Stream: true}}
	result, err := tool.Execute(context.Background(), map[string]any{"input": "topic"})

	require.Error(t, err)
	assert.Nil(t, result)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 503, appErr.StatusCode)
}

func TestGetResearchFetchesByID(t *testing.T) {
	svc, client := newFakeService(t)
	svc.body = `{"request_id": "req-7", "status": "completed", "content": "report text"}`

	tool := &GetResearch{Client: client}
	result, err := tool.Execute(context.Background(), map[string]any{"request_id": "req-7"})
	require.NoError(t, err)

	assert.Equal(t, "/research/req-7", svc.lastPath)
	data := result.Data.(map[string]any)
	assert.Equal(t, "report text", data["content"])
}

func TestGetResearchUpdatesHistoryStatus(t *testing.T) {
	svc, client := newFakeService(t)
	svc.body = `{"request_id": "req-7", "status": "completed"}`

	ledger := newTestLedger(t)
	require.NoError(t, ledger.RecordCreate("req-7", "topic", "auto", "pending"))

	tool := &GetResearch{Client: client, History: ledger}
	_, err := tool.Execute(context.Background(), map[string]any{"request_id": "req-7"})
	require.NoError(t, err)

	entry, err := ledger.Get("req-7")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "completed", entry.Status)
}

func TestGetResearchMissingIDWithoutLedger(t *testing.T) {
	_, client := newFakeService(t)

	tool := &GetResearch{Client: client}
	_, err := tool.Execute(context.Background(), map[string]any{})

	appErr := requireStructured(t, err)
	assert.Equal(t, errors.CodeToolInvalidParams, appErr.Code)
}

func TestGetResearchMissingIDListsRecent(t *testing.T) {
	svc, client := newFakeService(t)

	ledger := newTestLedger(t)
	require.NoError(t, ledger.RecordCreate("req-1", "first topic", "auto", "pending"))
	require.NoError(t, ledger.RecordCreate("req-2", "second topic", "auto", "completed"))

	tool := &GetResearch{Client: client, History: ledger}
	result, err := tool.Execute(context.Background(), map[string]any{})
	require.NoError(t, err)

	// No network round trip happens for a ledger listing.
	assert.Zero(t, svc.calls)

	data := result.Data.(map[string]any)
	entries := data["recent_requests"].([]history.Entry)
	assert.Len(t, entries, 2)
}
