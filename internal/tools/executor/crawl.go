package executor

import (
	"context"
	"time"

	"github.com/scout-ai/scout/internal/config"
	"github.com/scout-ai/scout/internal/diagnose"
	"github.com/scout-ai/scout/internal/errors"
	"github.com/scout-ai/scout/internal/params"
	"github.com/scout-ai/scout/internal/stats"
	"github.com/scout-ai/scout/internal/tavily"
)

// crawlTier expands a coarse crawl_depth value into concrete parameters.
type crawlTier struct {
	maxDepth   int
	maxBreadth int
	limit      int
}

// crawlTiers is the fixed three-tier lookup table for the agent schema.
var crawlTiers = map[string]crawlTier{
	"fast":  {maxDepth: 1, maxBreadth: 20, limit: 20},
	"basic": {maxDepth: 3, maxBreadth: 50, limit: 100},
	"deep":  {maxDepth: 5, maxBreadth: 50, limit: 200},
}

// Crawl starts a structured crawl from a root URL via the Tavily Crawl API.
//
// The tool carries one of two invocation schemas, selected at construction:
// the reduced agent schema (url, instructions, crawl_depth) expanded through
// the tier table, or the full schema exposing every parameter. Each
// invocation routes to the handler matching the active schema.
type Crawl struct {
	Client       *tavily.Client
	Stats        *stats.Collector
	Defaults     config.CrawlDefaults
	IncludeUsage bool
}

func (t *Crawl) Name() string { return "tavily_crawl" }

func (t *Crawl) Description() string {
	if t.Defaults.FullSchema {
		return "An intelligent web crawler that initiates a structured web crawl starting " +
			"from a specified base URL, with full control over depth, breadth, limits, " +
			"path and domain selectors, and extraction options."
	}
	return "An intelligent web crawler that initiates a structured web crawl starting " +
		"from a specified base URL. Provide natural language instructions to guide " +
		"the crawler and pick a crawl_depth of fast, basic, or deep."
}

func (t *Crawl) Execute(ctx context.Context, input map[string]any) (*Result, error) {
	if t.Defaults.FullSchema {
		return t.runFull(ctx, input)
	}
	return t.runAgent(ctx, input)
}

// runAgent handles the reduced schema: crawl_depth picks a tier, instance
// defaults still win over tier values.
func (t *Crawl) runAgent(ctx context.Context, input map[string]any) (*Result, error) {
	start := time.Now()

	url := params.StringArg(input, "url")
	if url == "" {
		return nil, errors.User(errors.CodeToolInvalidParams, "url is required")
	}

	depth := params.FirstString(params.StringArg(input, "crawl_depth"), "basic")
	tier, ok := crawlTiers[depth]
	if !ok {
		return nil, errors.User(errors.CodeToolInvalidParams, "crawl_depth must be fast, basic or deep")
	}

	instructions := params.FirstString(params.StringArg(input, "instructions"), t.Defaults.Instructions)

	p := t.payload(url, crawlValues{
		maxDepth:        params.FirstInt(t.Defaults.MaxDepth, tier.maxDepth),
		maxBreadth:      params.FirstInt(t.Defaults.MaxBreadth, tier.maxBreadth),
		limit:           params.FirstInt(t.Defaults.Limit, tier.limit),
		instructions:    instructions,
		selectPaths:     t.Defaults.SelectPaths,
		selectDomains:   t.Defaults.SelectDomains,
		excludePaths:    t.Defaults.ExcludePaths,
		excludeDomains:  t.Defaults.ExcludeDomains,
		allowExternal:   t.Defaults.AllowExternal,
		includeImages:   t.Defaults.IncludeImages,
		extractDepth:    params.FirstString(t.Defaults.ExtractDepth, "basic"),
		format:          params.FirstString(t.Defaults.Format, "markdown"),
		includeFavicon:  t.Defaults.IncludeFavicon,
		chunksPerSource: params.FirstInt(t.Defaults.ChunksPerSource, 3),
		categories:      t.Defaults.Categories,
	})

	return t.call(ctx, start, url, p, diagnose.CrawlParams{
		Instructions:   instructions,
		SelectPaths:    t.Defaults.SelectPaths,
		SelectDomains:  t.Defaults.SelectDomains,
		ExcludePaths:   t.Defaults.ExcludePaths,
		ExcludeDomains: t.Defaults.ExcludeDomains,
	})
}

// runFull handles the full schema: every parameter is call-settable with
// instance defaults as the fallback layer.
func (t *Crawl) runFull(ctx context.Context, input map[string]any) (*Result, error) {
	start := time.Now()

	url := params.StringArg(input, "url")
	if url == "" {
		return nil, errors.User(errors.CodeToolInvalidParams, "url is required")
	}

	instructions := params.FirstString(params.StringArg(input, "instructions"), t.Defaults.Instructions)
	selectPaths := params.FirstStrings(params.StringsArg(input, "select_paths"), t.Defaults.SelectPaths)
	selectDomains := params.FirstStrings(params.StringsArg(input, "select_domains"), t.Defaults.SelectDomains)
	excludePaths := params.FirstStrings(params.StringsArg(input, "exclude_paths"), t.Defaults.ExcludePaths)
	excludeDomains := params.FirstStrings(params.StringsArg(input, "exclude_domains"), t.Defaults.ExcludeDomains)

	p := t.payload(url, crawlValues{
		maxDepth:        params.FirstInt(params.IntArg(input, "max_depth"), t.Defaults.MaxDepth, 3),
		maxBreadth:      params.FirstInt(params.IntArg(input, "max_breadth"), t.Defaults.MaxBreadth, 20),
		limit:           params.FirstInt(params.IntArg(input, "limit"), t.Defaults.Limit, 50),
		instructions:    instructions,
		selectPaths:     selectPaths,
		selectDomains:   selectDomains,
		excludePaths:    excludePaths,
		excludeDomains:  excludeDomains,
		allowExternal:   params.FirstBool(params.BoolArg(input, "allow_external"), t.Defaults.AllowExternal),
		includeImages:   params.FirstBool(params.BoolArg(input, "include_images"), t.Defaults.IncludeImages),
		extractDepth:    params.FirstString(params.StringArg(input, "extract_depth"), t.Defaults.ExtractDepth, "basic"),
		format:          params.FirstString(t.Defaults.Format, "markdown"),
		includeFavicon:  params.FirstBool(params.BoolArg(input, "include_favicon"), t.Defaults.IncludeFavicon),
		chunksPerSource: params.FirstInt(params.IntArg(input, "chunks_per_source"), t.Defaults.ChunksPerSource),
		categories:      params.FirstStrings(params.StringsArg(input, "categories"), t.Defaults.Categories),
	})

	return t.call(ctx, start, url, p, diagnose.CrawlParams{
		Instructions:   instructions,
		SelectPaths:    selectPaths,
		SelectDomains:  selectDomains,
		ExcludePaths:   excludePaths,
		ExcludeDomains: excludeDomains,
	})
}

// crawlValues is the resolved parameter set shared by both handlers.
type crawlValues struct {
	maxDepth        int
	maxBreadth      int
	limit           int
	instructions    string
	selectPaths     []string
	selectDomains   []string
	excludePaths    []string
	excludeDomains  []string
	allowExternal   bool
	includeImages   bool
	extractDepth    string
	format          string
	includeFavicon  bool
	chunksPerSource int
	categories      []string
}

func (t *Crawl) payload(url string, v crawlValues) params.Payload {
	p := params.New()
	p.PutString("url", url)
	p.PutInt("max_depth", v.maxDepth)
	p.PutInt("max_breadth", v.maxBreadth)
	p.PutInt("limit", v.limit)
	p.PutString("instructions", v.instructions)
	p.PutStrings("select_paths", v.selectPaths)
	p.PutStrings("select_domains", v.selectDomains)
	p.PutStrings("exclude_paths", v.excludePaths)
	p.PutStrings("exclude_domains", v.excludeDomains)
	p.PutBool("allow_external", v.allowExternal)
	p.PutBool("include_images", v.includeImages)
	p.PutString("extract_depth", v.extractDepth)
	p.PutString("format", v.format)
	p.PutBool("include_favicon", v.includeFavicon)
	p.PutInt("chunks_per_source", v.chunksPerSource)
	p.PutStrings("categories", v.categories)
	if t.IncludeUsage {
		p.PutBool("include_usage", true)
	}
	return p
}

func (t *Crawl) call(ctx context.Context, start time.Time, url string, p params.Payload, dp diagnose.CrawlParams) (*Result, error) {
	raw, err := t.Client.Post(ctx, "crawl", p)
	t.Stats.Record("crawl", stats.Usage(raw), err)
	if err != nil {
		return classify(start, err, false)
	}

	if !hasResults(raw) {
		return nil, errors.NoResults("crawl", url, diagnose.Crawl(dp))
	}

	return TimedResult(NewSuccessResult(stripUsage(raw, t.IncludeUsage)), start), nil
}
