// Package protocol provides shared data structures used across scout
// components. These types can be imported by external tools and hosts.
package protocol

// ToolCall represents a request to execute a tool.
type ToolCall struct {
	Name    string         `json:"name"`
	Input   map[string]any `json:"input"`
	Timeout int            `json:"timeout"` // Timeout in seconds
}

// ToolResult represents the result of a tool execution.
type ToolResult struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// ToolDefinition describes a tool's invocation surface.
type ToolDefinition struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Parameters  map[string]Parameter `json:"parameters"`
	Timeout     int                  `json:"timeout"` // Default timeout in seconds
}

// Parameter describes a tool parameter.
type Parameter struct {
	Type        string   `json:"type"` // string, number, boolean, array, object
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Default     any      `json:"default,omitempty"`
	Enum        []string `json:"enum,omitempty"` // For string enums
}
