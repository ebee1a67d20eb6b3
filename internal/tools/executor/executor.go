// Package executor provides the tool execution interface and the six
// web-intelligence tool facades.
package executor

import (
	"context"
	"time"

	"github.com/scout-ai/scout/internal/errors"
	"github.com/scout-ai/scout/pkg/protocol"
)

// Tool represents a callable tool.
type Tool interface {
	// Name returns the tool's identifier.
	Name() string

	// Description returns what the tool does.
	Description() string

	// Execute runs the tool with the given input. Structured failures
	// (classified HTTP errors, empty-result diagnostics, invalid input) are
	// returned as errors; unexpected failures come back in-band as a Result
	// carrying an error payload.
	Execute(ctx context.Context, input map[string]any) (*Result, error)
}

// Result is the outcome of a tool execution, in the shared host-facing
// shape so results cross package boundaries without conversion.
type Result = protocol.ToolResult

// NewSuccessResult creates a successful result.
func NewSuccessResult(data any) *Result {
	return &Result{
		Success: true,
		Data:    data,
	}
}

// NewErrorResult creates an in-band error result.
func NewErrorResult(err error) *Result {
	return &Result{
		Success: false,
		Data:    map[string]any{"error": err.Error()},
		Error:   err.Error(),
	}
}

// TimedResult wraps a result with duration.
func TimedResult(result *Result, start time.Time) *Result {
	result.DurationMs = time.Since(start).Milliseconds()
	return result
}

// classify routes a request-wrapper failure per the facade contract:
// structured errors surface to the caller, anything else degrades to an
// in-band error payload. Streaming callers always get the error raised
// since no in-band result can exist mid-stream.
func classify(start time.Time, err error, streaming bool) (*Result, error) {
	if streaming || errors.IsStructured(err) {
		return nil, err
	}
	return TimedResult(NewErrorResult(err), start), nil
}

// hasResults reports whether a raw result carries at least one entry under
// its results key. A missing or non-list results field counts as empty.
func hasResults(raw map[string]any) bool {
	results, ok := raw["results"].([]any)
	return ok && len(results) > 0
}

// stripUsage removes usage-accounting metadata from a raw result unless the
// tool instance surfaces it.
func stripUsage(raw map[string]any, includeUsage bool) map[string]any {
	if includeUsage {
		return raw
	}
	delete(raw, "usage")
	return raw
}

// Registry manages available tools for execution.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates a new tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// List returns all registered tool names.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

// All returns all registered tools.
func (r *Registry) All() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		tools = append(tools, t)
	}
	return tools
}

// Execute runs a tool by name with the given input.
func (r *Registry) Execute(ctx context.Context, name string, input map[string]any) (*Result, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, errors.User(errors.CodeToolNotFound, "tool not found: "+name)
	}
	return tool.Execute(ctx, input)
}
