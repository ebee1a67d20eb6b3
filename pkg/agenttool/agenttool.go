// Package agenttool exposes the web-intelligence tools as fantasy agent
// tools, so an LLM agent loop can call them directly.
package agenttool

import (
	"context"
	"encoding/json"
	"fmt"

	"charm.land/fantasy"

	"github.com/scout-ai/scout/internal/errors"
	"github.com/scout-ai/scout/internal/tools"
)

// SearchParams is the agent-facing surface of the search tool.
type SearchParams struct {
	Query          string   `json:"query" description:"Search query to look up"`
	IncludeDomains []string `json:"include_domains,omitempty" description:"A list of domains to specifically include in the search results"`
	ExcludeDomains []string `json:"exclude_domains,omitempty" description:"A list of domains to specifically exclude from the search results"`
	SearchDepth    string   `json:"search_depth,omitempty" description:"The depth of the search, either 'basic' or 'advanced'"`
	IncludeImages  bool     `json:"include_images,omitempty" description:"Include a list of query related images in the response"`
	TimeRange      string   `json:"time_range,omitempty" description:"The time range back from the current date: day, week, month or year"`
}

// ExtractParams is the agent-facing surface of the extract tool.
type ExtractParams struct {
	URLs          []string `json:"urls" description:"The URLs to extract content from"`
	ExtractDepth  string   `json:"extract_depth,omitempty" description:"Extraction depth, either 'basic' or 'advanced'"`
	IncludeImages bool     `json:"include_images,omitempty" description:"Whether to include images in the extract results"`
}

// CrawlParams is the agent-facing surface of the crawl tool. It carries the
// reduced schema; fine-grained crawl control stays on instance defaults.
type CrawlParams struct {
	URL          string `json:"url" description:"The root URL to begin the crawl"`
	Instructions string `json:"instructions,omitempty" description:"Natural language instructions to guide the crawl"`
	CrawlDepth   string `json:"crawl_depth,omitempty" description:"The scope of the crawl: fast, basic or deep"`
}

// MapParams is the agent-facing surface of the map tool.
type MapParams struct {
	URL           string   `json:"url" description:"The root URL to begin the mapping"`
	MaxDepth      int      `json:"max_depth,omitempty" description:"Max depth of the mapping"`
	Instructions  string   `json:"instructions,omitempty" description:"Natural language instructions for the crawler"`
	SelectPaths   []string `json:"select_paths,omitempty" description:"Regex patterns to select only URLs with specific path patterns"`
	SelectDomains []string `json:"select_domains,omitempty" description:"Regex patterns to select only URLs from specific domains or subdomains"`
	Categories    []string `json:"categories,omitempty" description:"Direct the crawler to specific categories of a website"`
}

// ResearchParams is the agent-facing surface of the research tool. Streaming
// is a host-level concern and is not exposed to the agent.
type ResearchParams struct {
	Input          string         `json:"input" description:"The research task description"`
	Model          string         `json:"model,omitempty" description:"Controls the depth of the research: mini, pro or auto"`
	OutputSchema   map[string]any `json:"output_schema,omitempty" description:"JSON Schema for structured output format"`
	CitationFormat string         `json:"citation_format,omitempty" description:"Citation format for sources in the research report"`
}

// GetResearchParams is the agent-facing surface of the research fetch tool.
type GetResearchParams struct {
	RequestID string `json:"request_id" description:"The research request ID returned from creating a research task"`
}

// NewSearchTool wraps the registered search tool as a fantasy agent tool.
func NewSearchTool(reg *tools.Registry) fantasy.AgentTool {
	return newAgentTool[SearchParams](reg, "tavily_search")
}

// NewExtractTool wraps the registered extract tool as a fantasy agent tool.
func NewExtractTool(reg *tools.Registry) fantasy.AgentTool {
	return newAgentTool[ExtractParams](reg, "tavily_extract")
}

// NewCrawlTool wraps the registered crawl tool as a fantasy agent tool.
func NewCrawlTool(reg *tools.Registry) fantasy.AgentTool {
	return newAgentTool[CrawlParams](reg, "tavily_crawl")
}

// NewMapTool wraps the registered map tool as a fantasy agent tool.
func NewMapTool(reg *tools.Registry) fantasy.AgentTool {
	return newAgentTool[MapParams](reg, "tavily_map")
}

// NewResearchTool wraps the registered research tool as a fantasy agent tool.
func NewResearchTool(reg *tools.Registry) fantasy.AgentTool {
	return newAgentTool[ResearchParams](reg, "tavily_research")
}

// NewGetResearchTool wraps the registered research fetch tool as a fantasy
// agent tool.
func NewGetResearchTool(reg *tools.Registry) fantasy.AgentTool {
	return newAgentTool[GetResearchParams](reg, "tavily_get_research")
}

// All returns the full agent tool set in a stable order.
func All(reg *tools.Registry) []fantasy.AgentTool {
	return []fantasy.AgentTool{
		NewSearchTool(reg),
		NewExtractTool(reg),
		NewCrawlTool(reg),
		NewMapTool(reg),
		NewResearchTool(reg),
		NewGetResearchTool(reg),
	}
}

// newAgentTool bridges a registered executor tool into the fantasy agent
// tool contract. All tools are network-bound and safe to run in parallel.
func newAgentTool[P any](reg *tools.Registry, name string) fantasy.AgentTool {
	tool, ok := reg.Executors().Get(name)
	if !ok {
		panic("agenttool: tool not registered: " + name)
	}
	return fantasy.NewParallelAgentTool(
		name,
		tool.Description(),
		func(ctx context.Context, params P, call fantasy.ToolCall) (fantasy.ToolResponse, error) {
			input, err := toInput(params)
			if err != nil {
				return fantasy.ToolResponse{}, fmt.Errorf("encoding %s params: %w", name, err)
			}

			result, err := tool.Execute(ctx, input)
			if err != nil {
				if errors.IsStructured(err) {
					// Diagnostic failures go back to the model as text so it
					// can adjust its call instead of aborting the loop.
					return fantasy.NewTextErrorResponse(errors.FormatUserMessage(err)), nil
				}
				return fantasy.ToolResponse{}, err
			}
			if !result.Success {
				return fantasy.NewTextErrorResponse(result.Error), nil
			}

			text, err := json.Marshal(result.Data)
			if err != nil {
				return fantasy.ToolResponse{}, fmt.Errorf("encoding %s result: %w", name, err)
			}
			return fantasy.WithResponseMetadata(
				fantasy.NewTextResponse(string(text)),
				map[string]any{"duration_ms": result.DurationMs},
			), nil
		})
}

// toInput converts a typed params struct into the loose input map the
// executor layer consumes. omitempty tags keep unset fields out of the map,
// which is what lets instance and operation defaults apply.
func toInput(params any) (map[string]any, error) {
	b, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	var input map[string]any
	if err := json.Unmarshal(b, &input); err != nil {
		return nil, err
	}
	return input, nil
}
