// Package tools provides a unified tool registry with schemas and executors.
package tools

import (
	"context"
	"time"

	"github.com/scout-ai/scout/internal/config"
	"github.com/scout-ai/scout/internal/history"
	"github.com/scout-ai/scout/internal/stats"
	"github.com/scout-ai/scout/internal/tavily"
	"github.com/scout-ai/scout/internal/tools/executor"
	"github.com/scout-ai/scout/internal/tools/schemas"
	"github.com/scout-ai/scout/pkg/protocol"
)

// searchDepths and the other enum sets mirror the remote wire contract.
var (
	searchDepths    = []string{"basic", "advanced"}
	timeRanges      = []string{"day", "week", "month", "year"}
	crawlDepths     = []string{"fast", "basic", "deep"}
	researchModels  = []string{"mini", "pro", "auto"}
	citationFormats = []string{"numbered", "mla", "apa", "chicago"}
	siteCategories  = []string{
		"Careers", "Blog", "Documentation", "About", "Pricing",
		"Community", "Developers", "Contact", "Media",
	}
)

// Deps carries the shared collaborators every tool is built from.
type Deps struct {
	Client  *tavily.Client
	Config  *config.Config
	Stats   *stats.Collector
	History *history.Store
}

// Registry combines schemas and executors for complete tool management.
type Registry struct {
	schemas   *schemas.Registry
	executors *executor.Registry
}

// NewRegistry creates a new unified tool registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas:   schemas.NewRegistry(),
		executors: executor.NewRegistry(),
	}
}

// Schemas returns the schema registry.
func (r *Registry) Schemas() *schemas.Registry {
	return r.schemas
}

// Executors returns the executor registry.
func (r *Registry) Executors() *executor.Registry {
	return r.executors
}

// Register registers both a schema and executor for a tool.
func (r *Registry) Register(tool executor.Tool, schema *schemas.Schema) {
	r.executors.Register(tool)
	r.schemas.Register(schema)
}

// ToOpenAIFormat returns all schemas in OpenAI function calling format.
func (r *Registry) ToOpenAIFormat() []map[string]interface{} {
	return r.schemas.ToOpenAIFormat()
}

// ToAnthropicFormat returns all schemas in Anthropic tool use format.
func (r *Registry) ToAnthropicFormat() []map[string]interface{} {
	return r.schemas.ToAnthropicFormat()
}

// Definitions returns every registered tool as a protocol definition, for
// hosts that bind tools through the shared wire types rather than a
// vendor-specific schema dump.
func (r *Registry) Definitions() []protocol.ToolDefinition {
	names := r.executors.List()
	defs := make([]protocol.ToolDefinition, 0, len(names))
	for _, name := range names {
		schema, ok := r.schemas.Get(name)
		if !ok {
			continue
		}
		defs = append(defs, toDefinition(schema))
	}
	return defs
}

// toDefinition converts a declared schema into the protocol shape.
func toDefinition(schema *schemas.Schema) protocol.ToolDefinition {
	required := make(map[string]bool)
	for _, name := range schema.Required() {
		required[name] = true
	}

	def := protocol.ToolDefinition{
		Name:        schema.Name,
		Description: schema.Description,
		Parameters:  make(map[string]protocol.Parameter),
	}
	for name, raw := range schema.Properties() {
		prop, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		param := protocol.Parameter{Required: required[name]}
		if t, ok := prop["type"].(string); ok {
			param.Type = t
		}
		if d, ok := prop["description"].(string); ok {
			param.Description = d
		}
		if enum, ok := prop["enum"].([]string); ok {
			param.Enum = enum
		}
		// Array parameters surface their element enum, if any.
		if items, ok := prop["items"].(map[string]interface{}); ok {
			if enum, ok := items["enum"].([]string); ok {
				param.Enum = enum
			}
		}
		def.Parameters[name] = param
	}
	return def
}

// Execute runs a tool by name.
func (r *Registry) Execute(ctx context.Context, name string, input map[string]any) (*executor.Result, error) {
	return r.executors.Execute(ctx, name, input)
}

// Dispatch executes a protocol tool call, honoring its per-call timeout.
func (r *Registry) Dispatch(ctx context.Context, call protocol.ToolCall) (*executor.Result, error) {
	if call.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(call.Timeout)*time.Second)
		defer cancel()
	}
	return r.executors.Execute(ctx, call.Name, call.Input)
}

// Initialize registers the six web-intelligence tools with their schemas.
func (r *Registry) Initialize(d Deps) {
	cfg := d.Config
	includeUsage := cfg.API.IncludeUsage

	search := &executor.Search{
		Client:       d.Client,
		Stats:        d.Stats,
		Defaults:     cfg.Search,
		IncludeUsage: includeUsage,
	}
	r.Register(search, schemas.NewSchema(search.Name(), search.Description()).
		AddParam("query", "string", "Search query to look up", true).
		AddArrayParam("include_domains", "A list of domains to specifically include in the search results", nil, false).
		AddArrayParam("exclude_domains", "A list of domains to specifically exclude from the search results", nil, false).
		AddParamWithEnum("search_depth", "string", "The depth of the search. It can be 'basic' or 'advanced'", searchDepths, false).
		AddParam("include_images", "boolean", "Include a list of query related images in the response", false).
		AddParamWithEnum("time_range", "string", "The time range back from the current date to filter results", timeRanges, false).
		Build())

	extract := &executor.Extract{
		Client:       d.Client,
		Stats:        d.Stats,
		Defaults:     cfg.Extract,
		IncludeUsage: includeUsage,
	}
	r.Register(extract, schemas.NewSchema(extract.Name(), extract.Description()).
		AddArrayParam("urls", "The URLs to extract content from", nil, true).
		AddParamWithEnum("extract_depth", "string", "Advanced extraction retrieves more data, including tables and embedded content, with higher success but may increase latency", searchDepths, false).
		AddParam("include_images", "boolean", "Whether to include images in the extract results", false).
		Build())

	crawl := &executor.Crawl{
		Client:       d.Client,
		Stats:        d.Stats,
		Defaults:     cfg.Crawl,
		IncludeUsage: includeUsage,
	}
	r.Register(crawl, crawlSchema(crawl))

	mapSite := &executor.MapSite{
		Client:       d.Client,
		Stats:        d.Stats,
		Defaults:     cfg.Map,
		IncludeUsage: includeUsage,
	}
	r.Register(mapSite, schemas.NewSchema(mapSite.Name(), mapSite.Description()).
		AddParam("url", "string", "The root URL to begin the mapping", true).
		AddParam("max_depth", "integer", "Max depth of the mapping; how far from the base URL the crawler can explore", false).
		AddParam("max_breadth", "integer", "Max number of links to follow per page", false).
		AddParam("limit", "integer", "Total number of links the crawler will process before stopping", false).
		AddParam("instructions", "string", "Natural language instructions for the crawler", false).
		AddArrayParam("select_paths", "Regex patterns to select only URLs with specific path patterns", nil, false).
		AddArrayParam("select_domains", "Regex patterns to select only URLs from specific domains or subdomains", nil, false).
		AddParam("allow_external", "boolean", "Allow the crawler to follow external links", false).
		AddArrayParam("categories", "Direct the crawler to specific categories of a website", siteCategories, false).
		AddParamWithEnum("extract_depth", "string", "Advanced extraction retrieves more data with higher success but may increase latency", searchDepths, false).
		Build())

	research := &executor.Research{
		Client:       d.Client,
		Stats:        d.Stats,
		History:      d.History,
		Defaults:     cfg.Research,
		IncludeUsage: includeUsage,
	}
	r.Register(research, schemas.NewSchema(research.Name(), research.Description()).
		AddParam("input", "string", "The research task description; the main query describing what to research", true).
		AddParamWithEnum("model", "string", "Controls the depth and thoroughness of the research", researchModels, false).
		AddParam("output_schema", "object", "JSON Schema for structured output format", false).
		AddParam("stream", "boolean", "Whether to stream the research task results", false).
		AddParamWithEnum("citation_format", "string", "Citation format for sources in the research report", citationFormats, false).
		AddParam("mcps", "array", "MCP server descriptors the research task may use as extra tools and data sources", false).
		Build())

	getResearch := &executor.GetResearch{
		Client:       d.Client,
		Stats:        d.Stats,
		History:      d.History,
		IncludeUsage: includeUsage,
	}
	r.Register(getResearch, schemas.NewSchema(getResearch.Name(), getResearch.Description()).
		AddParam("request_id", "string", "The research request ID returned from creating a research task", false).
		AddParam("limit", "integer", "How many recent request ids to list when no request_id is given", false).
		Build())
}

// crawlSchema declares the schema variant matching the crawl tool's active
// invocation mode.
func crawlSchema(crawl *executor.Crawl) *schemas.Schema {
	if !crawl.Defaults.FullSchema {
		return schemas.NewSchema(crawl.Name(), crawl.Description()).
			AddParam("url", "string", "The root URL to begin the crawl", true).
			AddParam("instructions", "string", "Natural language instructions to guide the crawl", false).
			AddParamWithEnum("crawl_depth", "string", "The scope of the crawl: fast crawls few pages quickly, basic balances speed and completeness, deep optimizes for completeness", crawlDepths, false).
			Build()
	}

	return schemas.NewSchema(crawl.Name(), crawl.Description()).
		AddParam("url", "string", "The root URL to begin the crawl", true).
		AddParam("max_depth", "integer", "Max depth of the crawl; how many hops the crawler can make from the root URL (1-5)", false).
		AddParam("max_breadth", "integer", "Max number of links to follow per page (1-100)", false).
		AddParam("limit", "integer", "Maximum number of links the crawler will return (1-500)", false).
		AddParam("instructions", "string", "Natural language instructions for the crawler", false).
		AddArrayParam("select_paths", "Regex patterns to select only URLs with specific path patterns", nil, false).
		AddArrayParam("select_domains", "Regex patterns to select only URLs from specific domains or subdomains", nil, false).
		AddArrayParam("exclude_paths", "Regex patterns to exclude URLs with specific path patterns", nil, false).
		AddArrayParam("exclude_domains", "Regex patterns to exclude specific domains or subdomains from crawling", nil, false).
		AddParam("allow_external", "boolean", "Whether to allow following links that go to external domains", false).
		AddParam("include_images", "boolean", "Whether to include images in the crawl results", false).
		AddParamWithEnum("extract_depth", "string", "Advanced extraction retrieves more data with higher success but may increase latency", searchDepths, false).
		AddParam("include_favicon", "boolean", "Whether to include the favicon URL for each result", false).
		AddParam("chunks_per_source", "integer", "Number of content chunks to extract from each page (1-10)", false).
		Build()
}
