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

// MapSite discovers the URL structure of a website via the Tavily Map API.
type MapSite struct {
	Client       *tavily.Client
	Stats        *stats.Collector
	Defaults     config.MapDefaults
	IncludeUsage bool
}

func (t *MapSite) Name() string { return "tavily_map" }

func (t *MapSite) Description() string {
	return "A powerful web mapping tool that creates a structured map of website URLs, " +
		"allowing you to discover and analyze site structure, content organization, " +
		"and navigation paths. Perfect for site audits, content discovery, and " +
		"understanding website architecture."
}

func (t *MapSite) Execute(ctx context.Context, input map[string]any) (*Result, error) {
	start := time.Now()

	url := params.StringArg(input, "url")
	if url == "" {
		return nil, errors.User(errors.CodeToolInvalidParams, "url is required")
	}

	instructions := params.FirstString(params.StringArg(input, "instructions"), t.Defaults.Instructions)
	selectPaths := params.FirstStrings(params.StringsArg(input, "select_paths"), t.Defaults.SelectPaths)
	selectDomains := params.FirstStrings(params.StringsArg(input, "select_domains"), t.Defaults.SelectDomains)
	categories := params.FirstStrings(params.StringsArg(input, "categories"), t.Defaults.Categories)

	p := params.New()
	p.PutString("url", url)
	p.PutInt("max_depth", params.FirstInt(params.IntArg(input, "max_depth"), t.Defaults.MaxDepth, 1))
	p.PutInt("max_breadth", params.FirstInt(params.IntArg(input, "max_breadth"), t.Defaults.MaxBreadth, 20))
	p.PutInt("limit", params.FirstInt(params.IntArg(input, "limit"), t.Defaults.Limit, 50))
	p.PutString("instructions", instructions)
	p.PutStrings("select_paths", selectPaths)
	p.PutStrings("select_domains", selectDomains)
	p.PutBool("allow_external", params.FirstBool(params.BoolArg(input, "allow_external"), t.Defaults.AllowExternal))
	p.PutStrings("categories", categories)
	p.PutString("extract_depth", params.FirstString(params.StringArg(input, "extract_depth"), t.Defaults.ExtractDepth, "basic"))
	if t.IncludeUsage {
		p.PutBool("include_usage", true)
	}

	raw, err := t.Client.Post(ctx, "map", p)
	t.Stats.Record("map", stats.Usage(raw), err)
	if err != nil {
		return classify(start, err, false)
	}

	if !hasResults(raw) {
		suggestions := diagnose.Map(diagnose.MapParams{
			Instructions:  instructions,
			SelectPaths:   selectPaths,
			SelectDomains: selectDomains,
			Categories:    categories,
		})
		return nil, errors.NoResults("map", url, suggestions)
	}

	return TimedResult(NewSuccessResult(stripUsage(raw, t.IncludeUsage)), start), nil
}
