package executor

import (
	"context"
	"time"

	"github.com/scout-ai/scout/internal/config"
	"github.com/scout-ai/scout/internal/errors"
	"github.com/scout-ai/scout/internal/history"
	"github.com/scout-ai/scout/internal/params"
	"github.com/scout-ai/scout/internal/stats"
	"github.com/scout-ai/scout/internal/tavily"
)

// researchFixedFields are the declared research parameters; anything else in
// the input is an open extension field passed through to the service.
var researchFixedFields = map[string]bool{
	"input":           true,
	"model":           true,
	"output_schema":   true,
	"stream":          true,
	"citation_format": true,
	"mcps":            true,
}

// Research creates an asynchronous research task via the Tavily Research API.
//
// The task runs remotely; the response is a status payload carrying the
// request id to fetch the report with later. With stream=true the result is
// a *tavily.Stream of raw byte chunks instead of a parsed payload.
type Research struct {
	Client       *tavily.Client
	Stats        *stats.Collector
	History      *history.Store
	Defaults     config.ResearchDefaults
	IncludeUsage bool
}

func (t *Research) Name() string { return "tavily_research" }

func (t *Research) Description() string {
	return "Creates comprehensive research reports on any topic with automatic source " +
		"gathering, analysis, and structured output. The research task is asynchronous: " +
		"you'll receive a request_id to retrieve the results with once the research is " +
		"complete. Input should be a research task description."
}

func (t *Research) Execute(ctx context.Context, input map[string]any) (*Result, error) {
	start := time.Now()

	task := params.StringArg(input, "input")
	if task == "" {
		return nil, errors.User(errors.CodeToolInvalidParams, "input is required")
	}

	model := params.FirstString(params.StringArg(input, "model"), t.Defaults.Model, "auto")
	streaming := params.FirstBool(params.BoolArg(input, "stream"), t.Defaults.Stream)

	p := params.New()
	p.PutString("input", task)
	p.PutString("model", model)
	p.PutAny("output_schema", params.MapArg(input, "output_schema"))
	p.PutBool("stream", streaming)
	p.PutString("citation_format", params.FirstString(params.StringArg(input, "citation_format"), t.Defaults.CitationFormat, "numbered"))
	p.PutAny("mcps", input["mcps"])
	if t.IncludeUsage {
		p.PutBool("include_usage", true)
	}

	// Forward-compatibility: unknown caller fields ride along unchanged.
	extra := make(map[string]any)
	for k, v := range input {
		if !researchFixedFields[k] {
			extra[k] = v
		}
	}
	p.Extend(extra)

	if streaming {
		stream, err := t.Client.PostStream(ctx, "research", p)
		// Usage arrives inside the stream body, which belongs to the
		// caller; only the request itself can be accounted here.
		t.Stats.Record("research", nil, err)
		if err != nil {
			// A streaming caller cannot receive an in-band payload.
			return nil, err
		}
		return TimedResult(NewSuccessResult(stream), start), nil
	}

	raw, err := t.Client.Post(ctx, "research", p)
	t.Stats.Record("research", stats.Usage(raw), err)
	if err != nil {
		return classify(start, err, false)
	}

	t.record(raw, task, model)

	// Task-status payload: no results key applies, no empty-result check.
	return TimedResult(NewSuccessResult(stripUsage(raw, t.IncludeUsage)), start), nil
}

// record stores the created request in the ledger when one is configured.
func (t *Research) record(raw map[string]any, task, model string) {
	if t.History == nil {
		return
	}
	requestID, _ := raw["request_id"].(string)
	if requestID == "" {
		return
	}
	status, _ := raw["status"].(string)
	// Ledger failures never fail the call; the raw result is already in hand.
	_ = t.History.RecordCreate(requestID, task, model, status)
}

// GetResearch fetches a research task's results by request id. Called
// without a request id, it lists recent requests from the ledger instead, so
// a session that lost an id can recover it.
type GetResearch struct {
	Client       *tavily.Client
	Stats        *stats.Collector
	History      *history.Store
	IncludeUsage bool
}

func (t *GetResearch) Name() string { return "tavily_get_research" }

func (t *GetResearch) Description() string {
	return "Retrieves the results of a research task by its request_id. Use this tool " +
		"after creating a research task to get the completed research report, including " +
		"the content, sources, and status. Input should be a request_id from a " +
		"previously created research task; without one, recent request ids are listed."
}

func (t *GetResearch) Execute(ctx context.Context, input map[string]any) (*Result, error) {
	start := time.Now()

	requestID := params.StringArg(input, "request_id")
	if requestID == "" {
		if t.History == nil {
			return nil, errors.User(errors.CodeToolInvalidParams, "request_id is required")
		}
		entries, err := t.History.Recent(params.IntArg(input, "limit"))
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeHistoryUnavailable, "failed to list research requests", errors.CategoryTemporary)
		}
		return TimedResult(NewSuccessResult(map[string]any{"recent_requests": entries}), start), nil
	}

	raw, err := t.Client.Get(ctx, "research/"+requestID)
	t.Stats.Record("get_research", stats.Usage(raw), err)
	if err != nil {
		return classify(start, err, false)
	}

	if t.History != nil {
		if status, ok := raw["status"].(string); ok && status != "" {
			_ = t.History.UpdateStatus(requestID, status)
		}
	}

	// Task-status payload: returned regardless of content.
	return TimedResult(NewSuccessResult(stripUsage(raw, t.IncludeUsage)), start), nil
}
