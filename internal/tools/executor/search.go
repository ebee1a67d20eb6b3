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

// Search queries the Tavily Search API.
type Search struct {
	Client       *tavily.Client
	Stats        *stats.Collector
	Defaults     config.SearchDefaults
	IncludeUsage bool
}

func (t *Search) Name() string { return "tavily_search" }

func (t *Search) Description() string {
	return "A search engine optimized for comprehensive, accurate, and trusted results. " +
		"Useful for when you need to answer questions about current events. " +
		"It not only retrieves URLs and snippets, but offers advanced search depths, " +
		"domain management, time range filters, and image search. " +
		"Input should be a search query."
}

func (t *Search) Execute(ctx context.Context, input map[string]any) (*Result, error) {
	start := time.Now()

	query := params.StringArg(input, "query")
	if query == "" {
		return nil, errors.User(errors.CodeToolInvalidParams, "query is required")
	}

	searchDepth := params.FirstString(params.StringArg(input, "search_depth"), t.Defaults.SearchDepth, "advanced")
	timeRange := params.FirstString(params.StringArg(input, "time_range"), t.Defaults.TimeRange)
	includeDomains := params.FirstStrings(params.StringsArg(input, "include_domains"), t.Defaults.IncludeDomains)
	excludeDomains := params.FirstStrings(params.StringsArg(input, "exclude_domains"), t.Defaults.ExcludeDomains)
	includeImages := params.FirstBool(params.BoolArg(input, "include_images"), t.Defaults.IncludeImages)

	p := params.New()
	p.PutString("query", query)
	p.PutInt("max_results", params.FirstInt(t.Defaults.MaxResults, 5))
	p.PutString("search_depth", searchDepth)
	p.PutStrings("include_domains", includeDomains)
	p.PutStrings("exclude_domains", excludeDomains)
	p.PutBool("include_answer", t.Defaults.IncludeAnswer)
	p.PutBool("include_raw_content", t.Defaults.IncludeRawContent)
	p.PutBool("include_images", includeImages)
	p.PutBool("include_image_descriptions", t.Defaults.IncludeImageDescriptions)
	p.PutString("topic", params.FirstString(t.Defaults.Topic, "general"))
	p.PutString("time_range", timeRange)
	p.PutString("country", t.Defaults.Country)
	p.PutString("start_date", t.Defaults.StartDate)
	p.PutString("end_date", t.Defaults.EndDate)
	if t.Defaults.AutoParameters {
		p.PutBool("auto_parameters", true)
	}
	if t.Defaults.IncludeFavicon {
		p.PutBool("include_favicon", true)
	}
	if t.IncludeUsage {
		p.PutBool("include_usage", true)
	}

	raw, err := t.Client.Post(ctx, "search", p)
	t.Stats.Record("search", stats.Usage(raw), err)
	if err != nil {
		return classify(start, err, false)
	}

	if !hasResults(raw) {
		suggestions := diagnose.Search(diagnose.SearchParams{
			TimeRange:      timeRange,
			IncludeDomains: includeDomains,
			ExcludeDomains: excludeDomains,
			SearchDepth:    searchDepth,
		})
		return nil, errors.NoResults("search", query, suggestions)
	}

	return TimedResult(NewSuccessResult(stripUsage(raw, t.IncludeUsage)), start), nil
}
