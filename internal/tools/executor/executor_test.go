package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-ai/scout/internal/config"
	"github.com/scout-ai/scout/internal/errors"
	"github.com/scout-ai/scout/internal/tavily"
	"github.com/scout-ai/scout/pkg/protocol"
)

// fakeService is an in-process stand-in for the remote API. Each test sets
// the response; the service captures the request path and decoded payload.
type fakeService struct {
	status   int
	body     string
	lastPath string
	lastBody map[string]any
	calls    int
}

func newFakeService(t *testing.T) (*fakeService, *tavily.Client) {
	t.Helper()
	svc := &fakeService{status: http.StatusOK, body: `{"results": [{"title": "ok"}]}`}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		svc.calls++
		svc.lastPath = r.URL.Path
		svc.lastBody = nil
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&svc.lastBody)
		}
		w.WriteHeader(svc.status)
		fmt.Fprint(w, svc.body)
	}))
	t.Cleanup(srv.Close)

	httpClient := &http.Client{}
	t.Cleanup(httpClient.CloseIdleConnections)

	key, err := config.ResolveAPIKey("test-key")
	require.NoError(t, err)

	client := tavily.NewClient(tavily.ClientConfig{
		Key:        key,
		BaseURL:    srv.URL,
		HTTPClient: httpClient,
	})
	return svc, client
}

func requireStructured(t *testing.T, err error) *errors.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr
}

func TestRegistryExecuteUnknownTool(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Execute(context.Background(), "no_such_tool", nil)
	appErr := requireStructured(t, err)
	assert.Equal(t, errors.CodeToolNotFound, appErr.Code)
	assert.Contains(t, appErr.Message, "no_such_tool")
}

func TestRegistryRegisterAndList(t *testing.T) {
	_, client := newFakeService(t)

	reg := NewRegistry()
	reg.Register(&Search{Client: client})
	reg.Register(&Extract{Client: client})

	assert.ElementsMatch(t, []string{"tavily_search", "tavily_extract"}, reg.List())
	tool, ok := reg.Get("tavily_search")
	require.True(t, ok)
	assert.Equal(t, "tavily_search", tool.Name())
	assert.Len(t, reg.All(), 2)
}

func TestClassifyStructuredErrorsRaise(t *testing.T) {
	svc, client := newFakeService(t)
	svc.status = http.StatusNotFound
	svc.body = `{"detail": {"error": "not found"}}`

	tool := &Search{Client: client}
	_, err := tool.Execute(context.Background(), map[string]any{"query": "anything"})

	appErr := requireStructured(t, err)
	assert.Contains(t, appErr.Message, "404")
	assert.Contains(t, appErr.Message, "not found")
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestClassifyUnexpectedErrorsInBand(t *testing.T) {
	svc, client := newFakeService(t)
	svc.body = `not json at all`

	tool := &Search{Client: client}
	result, err := tool.Execute(context.Background(), map[string]any{"query": "anything"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)

	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, result.Error, data["error"])
}

func TestUsageStripping(t *testing.T) {
	svc, client := newFakeService(t)
	svc.body = `{"results": [{"title": "ok"}], "usage": {"credits": 2}}`

	tool := &Search{Client: client}
	result, err := tool.Execute(context.Background(), map[string]any{"query": "q"})
	require.NoError(t, err)

	data := result.Data.(map[string]any)
	_, hasUsage := data["usage"]
	assert.False(t, hasUsage)
	// The flag is not transmitted when off.
	_, sent := svc.lastBody["include_usage"]
	assert.False(t, sent)
}

func TestUsageSurfacedWhenEnabled(t *testing.T) {
	svc, client := newFakeService(t)
	svc.body = `{"results": [{"title": "ok"}], "usage": {"credits": 2}}`

	tool := &Search{Client: client, IncludeUsage: true}
	result, err := tool.Execute(context.Background(), map[string]any{"query": "q"})
	require.NoError(t, err)

	data := result.Data.(map[string]any)
	assert.Equal(t, map[string]any{"credits": float64(2)}, data["usage"])
	assert.Equal(t, true, svc.lastBody["include_usage"])
}

func TestResultCrossesPackageBoundaryUnconverted(t *testing.T) {
	_, client := newFakeService(t)

	tool := &Search{Client: client}
	result, err := tool.Execute(context.Background(), map[string]any{"query": "q"})
	require.NoError(t, err)

	// Execution results are the shared host-facing type; no mapping layer.
	var hostResult *protocol.ToolResult = result
	assert.True(t, hostResult.Success)
}

func TestResultDurationRecorded(t *testing.T) {
	_, client := newFakeService(t)

	tool := &Search{Client: client}
	result, err := tool.Execute(context.Background(), map[string]any{"query": "q"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.DurationMs, int64(0))
	assert.True(t, result.Success)
}
