// Package config provides configuration types for Scout.
package config

// Config represents the main Scout configuration. Tool sections hold
// instance-level defaults; a zero value means "unset" and the operation's
// built-in default applies.
type Config struct {
	API      APIConfig        `toml:"api"`
	Search   SearchDefaults   `toml:"search"`
	Extract  ExtractDefaults  `toml:"extract"`
	Crawl    CrawlDefaults    `toml:"crawl"`
	Map      MapDefaults      `toml:"map"`
	Research ResearchDefaults `toml:"research"`
	History  HistoryConfig    `toml:"history"`
}

// APIConfig contains remote-service settings shared by every tool.
type APIConfig struct {
	// Key is the explicit Tavily API key. When empty, TAVILY_API_KEY is used.
	Key string `toml:"key"`

	// BaseURL overrides the canonical service address.
	BaseURL string `toml:"base_url"`

	// IncludeUsage surfaces usage-accounting metadata in results.
	IncludeUsage bool `toml:"include_usage"`
}

// SearchDefaults are instance defaults for the search tool.
type SearchDefaults struct {
	MaxResults               int      `toml:"max_results"`
	SearchDepth              string   `toml:"search_depth"` // basic, advanced
	Topic                    string   `toml:"topic"`        // general, news
	TimeRange                string   `toml:"time_range"`   // day, week, month, year
	IncludeDomains           []string `toml:"include_domains"`
	ExcludeDomains           []string `toml:"exclude_domains"`
	IncludeAnswer            bool     `toml:"include_answer"`
	IncludeRawContent        bool     `toml:"include_raw_content"`
	IncludeImages            bool     `toml:"include_images"`
	IncludeImageDescriptions bool     `toml:"include_image_descriptions"`
	IncludeFavicon           bool     `toml:"include_favicon"`
	AutoParameters           bool     `toml:"auto_parameters"`
	Country                  string   `toml:"country"`
	StartDate                string   `toml:"start_date"`
	EndDate                  string   `toml:"end_date"`
}

// ExtractDefaults are instance defaults for the extract tool.
type ExtractDefaults struct {
	ExtractDepth   string `toml:"extract_depth"` // basic, advanced
	Format         string `toml:"format"`        // markdown, text
	IncludeImages  bool   `toml:"include_images"`
	IncludeFavicon bool   `toml:"include_favicon"`
}

// CrawlDefaults are instance defaults for the crawl tool.
type CrawlDefaults struct {
	// FullSchema exposes every crawl parameter to the caller instead of the
	// reduced agent schema (url, instructions, crawl_depth).
	FullSchema bool `toml:"full_schema"`

	MaxDepth        int      `toml:"max_depth"`
	MaxBreadth      int      `toml:"max_breadth"`
	Limit           int      `toml:"limit"`
	Instructions    string   `toml:"instructions"`
	SelectPaths     []string `toml:"select_paths"`
	SelectDomains   []string `toml:"select_domains"`
	ExcludePaths    []string `toml:"exclude_paths"`
	ExcludeDomains  []string `toml:"exclude_domains"`
	AllowExternal   bool     `toml:"allow_external"`
	IncludeImages   bool     `toml:"include_images"`
	ExtractDepth    string   `toml:"extract_depth"`
	Format          string   `toml:"format"`
	IncludeFavicon  bool     `toml:"include_favicon"`
	ChunksPerSource int      `toml:"chunks_per_source"`
	Categories      []string `toml:"categories"`
}

// MapDefaults are instance defaults for the map tool.
type MapDefaults struct {
	MaxDepth      int      `toml:"max_depth"`
	MaxBreadth    int      `toml:"max_breadth"`
	Limit         int      `toml:"limit"`
	Instructions  string   `toml:"instructions"`
	SelectPaths   []string `toml:"select_paths"`
	SelectDomains []string `toml:"select_domains"`
	AllowExternal bool     `toml:"allow_external"`
	Categories    []string `toml:"categories"`
	ExtractDepth  string   `toml:"extract_depth"`
}

// ResearchDefaults are instance defaults for the research tool.
type ResearchDefaults struct {
	Model          string `toml:"model"`           // mini, pro, auto
	CitationFormat string `toml:"citation_format"` // numbered, mla, apa, chicago
	Stream         bool   `toml:"stream"`
}

// HistoryConfig configures the research request ledger.
type HistoryConfig struct {
	// Path is the sqlite database location. Empty disables the ledger.
	Path string `toml:"path"`
}
