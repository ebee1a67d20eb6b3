// Package server exposes the web-intelligence tools over the Model Context
// Protocol so any MCP host can call them.
package server

import (
	"context"
	"encoding/json"
	"io"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scout-ai/scout/internal/errors"
	"github.com/scout-ai/scout/internal/tavily"
	"github.com/scout-ai/scout/internal/tools"
	"github.com/scout-ai/scout/internal/tools/schemas"
)

const serverName = "scout"

// New builds an MCP server exposing every registered tool.
func New(reg *tools.Registry, version string) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)

	for _, name := range reg.Executors().List() {
		tool, _ := reg.Executors().Get(name)
		schema, ok := reg.Schemas().Get(name)
		if !ok {
			continue
		}
		srv.AddTool(&mcp.Tool{
			Name:        name,
			Description: tool.Description(),
			InputSchema: toJSONSchema(schema),
		}, handler(reg, name))
	}

	return srv
}

// Run serves the registry over stdio until the context is cancelled.
func Run(ctx context.Context, reg *tools.Registry, version string) error {
	return New(reg, version).Run(ctx, &mcp.StdioTransport{})
}

// handler adapts one registered tool to the MCP call contract. Structured
// failures come back as in-protocol error results so the host sees the
// diagnostic text; anything else is a protocol-level error.
func handler(reg *tools.Registry, name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var input map[string]any
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &input); err != nil {
				return errorResult("invalid arguments: " + err.Error()), nil
			}
		}

		result, err := reg.Execute(ctx, name, input)
		if err != nil {
			if errors.IsStructured(err) {
				return errorResult(errors.FormatUserMessage(err)), nil
			}
			return nil, err
		}
		if !result.Success {
			return errorResult(result.Error), nil
		}

		// Streaming payloads are drained here: MCP tool calls are
		// request/response, so the chunks collapse into one text block.
		if stream, ok := result.Data.(*tavily.Stream); ok {
			text, err := drain(stream)
			if err != nil {
				return nil, err
			}
			return textResult(text), nil
		}

		data, err := json.Marshal(result.Data)
		if err != nil {
			return nil, err
		}
		return textResult(string(data)), nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// drain consumes a stream to completion and returns the concatenated chunks.
func drain(stream *tavily.Stream) (string, error) {
	defer stream.Close()

	var out []byte
	for {
		chunk, err := stream.Next()
		if err == io.EOF {
			return string(out), nil
		}
		if err != nil {
			return "", err
		}
		out = append(out, chunk...)
	}
}

// toJSONSchema converts a tool schema into the SDK's schema representation.
func toJSONSchema(schema *schemas.Schema) *jsonschema.Schema {
	out := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema),
		Required:   schema.Required(),
	}

	for name, def := range schema.Properties() {
		prop, ok := def.(map[string]any)
		if !ok {
			continue
		}
		out.Properties[name] = toProperty(prop)
	}

	return out
}

func toProperty(prop map[string]any) *jsonschema.Schema {
	s := &jsonschema.Schema{}
	if t, ok := prop["type"].(string); ok {
		s.Type = t
	}
	if d, ok := prop["description"].(string); ok {
		s.Description = d
	}
	if enum, ok := prop["enum"].([]string); ok {
		for _, v := range enum {
			s.Enum = append(s.Enum, v)
		}
	}
	if items, ok := prop["items"].(map[string]any); ok {
		s.Items = toProperty(items)
	}
	return s
}
