package executor

import (
	"context"
	"strings"
	"time"

	"github.com/scout-ai/scout/internal/config"
	"github.com/scout-ai/scout/internal/errors"
	"github.com/scout-ai/scout/internal/params"
	"github.com/scout-ai/scout/internal/stats"
	"github.com/scout-ai/scout/internal/tavily"
)

// Extract retrieves page content for a set of URLs via the Tavily Extract API.
type Extract struct {
	Client       *tavily.Client
	Stats        *stats.Collector
	Defaults     config.ExtractDefaults
	IncludeUsage bool
}

func (t *Extract) Name() string { return "tavily_extract" }

func (t *Extract) Description() string {
	return "Extracts the content of one or more web pages. Returns the cleaned page " +
		"content for each URL, with optional images and favicons. Use advanced " +
		"extract_depth for pages with tables or embedded content. " +
		"Input should be a list of URLs."
}

func (t *Extract) Execute(ctx context.Context, input map[string]any) (*Result, error) {
	start := time.Now()

	urls := params.StringsArg(input, "urls")
	if len(urls) == 0 {
		// A single url string is accepted for convenience.
		if url := params.StringArg(input, "urls"); url != "" {
			urls = []string{url}
		}
	}
	if len(urls) == 0 {
		return nil, errors.User(errors.CodeToolInvalidParams, "urls is required")
	}

	extractDepth := params.FirstString(params.StringArg(input, "extract_depth"), t.Defaults.ExtractDepth, "advanced")
	includeImages := params.FirstBool(params.BoolArg(input, "include_images"), t.Defaults.IncludeImages)

	p := params.New()
	p.PutStrings("urls", urls)
	p.PutString("extract_depth", extractDepth)
	p.PutBool("include_images", includeImages)
	p.PutString("format", t.Defaults.Format)
	if t.Defaults.IncludeFavicon {
		p.PutBool("include_favicon", true)
	}
	if t.IncludeUsage {
		p.PutBool("include_usage", true)
	}

	raw, err := t.Client.Post(ctx, "extract", p)
	t.Stats.Record("extract", stats.Usage(raw), err)
	if err != nil {
		return classify(start, err, false)
	}

	if !hasResults(raw) {
		suggestions := []string{"Verify the URLs are reachable"}
		if extractDepth == "basic" {
			suggestions = append(suggestions, "Try a more thorough extraction using 'advanced' extract_depth")
		}
		return nil, errors.NoResults("extract", strings.Join(urls, ", "), suggestions)
	}

	return TimedResult(NewSuccessResult(stripUsage(raw, t.IncludeUsage)), start), nil
}
