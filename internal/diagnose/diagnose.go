// Package diagnose synthesizes remediation suggestions for calls that
// succeeded but returned zero results.
//
// Each operation owns a fixed checklist evaluated in a fixed order. The
// policies intentionally diverge: search stops at the first suspect
// parameter and falls back to a generic hint, while crawl and map collect
// every suspect parameter. Keep them separate; do not unify.
package diagnose

// SearchParams are the suspect parameters checked after an empty search.
type SearchParams struct {
	TimeRange      string
	IncludeDomains []string
	ExcludeDomains []string
	SearchDepth    string
}

// Search returns suggestions for an empty search result. First match wins.
func Search(p SearchParams) []string {
	switch {
	case p.TimeRange != "":
		return []string{"Remove time_range argument"}
	case len(p.IncludeDomains) > 0:
		return []string{"Remove include_domains argument"}
	case len(p.ExcludeDomains) > 0:
		return []string{"Remove exclude_domains argument"}
	case p.SearchDepth == "basic":
		return []string{"Try a more detailed search using 'advanced' search_depth"}
	default:
		return []string{"Try alternative search terms"}
	}
}

// CrawlParams are the suspect parameters checked after an empty crawl.
type CrawlParams struct {
	Instructions   string
	SelectPaths    []string
	SelectDomains  []string
	ExcludePaths   []string
	ExcludeDomains []string
}

// Crawl returns suggestions for an empty crawl result. All matches accumulate.
func Crawl(p CrawlParams) []string {
	var suggestions []string

	if p.Instructions != "" {
		suggestions = append(suggestions, "Try more concise instructions")
	}
	if len(p.SelectPaths) > 0 {
		suggestions = append(suggestions, "Remove select_paths argument")
	}
	if len(p.SelectDomains) > 0 {
		suggestions = append(suggestions, "Remove select_domains argument")
	}
	if len(p.ExcludePaths) > 0 {
		suggestions = append(suggestions, "Remove exclude_paths argument")
	}
	if len(p.ExcludeDomains) > 0 {
		suggestions = append(suggestions, "Remove exclude_domains argument")
	}

	return suggestions
}

// MapParams are the suspect parameters checked after an empty map.
type MapParams struct {
	Instructions  string
	SelectPaths   []string
	SelectDomains []string
	Categories    []string
}

// Map returns suggestions for an empty map result. All matches accumulate.
func Map(p MapParams) []string {
	var suggestions []string

	if p.Instructions != "" {
		suggestions = append(suggestions, "Try more concise instructions")
	}
	if len(p.SelectPaths) > 0 {
		suggestions = append(suggestions, "Remove select_paths argument")
	}
	if len(p.SelectDomains) > 0 {
		suggestions = append(suggestions, "Remove select_domains argument")
	}
	if len(p.Categories) > 0 {
		suggestions = append(suggestions, "Remove categories argument")
	}

	return suggestions
}
