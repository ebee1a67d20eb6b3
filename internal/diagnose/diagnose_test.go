package diagnose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchFirstMatchWins(t *testing.T) {
	cases := []struct {
		name   string
		params SearchParams
		want   []string
	}{
		{
			name:   "time range checked first",
			params: SearchParams{TimeRange: "week", IncludeDomains: []string{"a.com"}, SearchDepth: "basic"},
			want:   []string{"Remove time_range argument"},
		},
		{
			name:   "include domains",
			params: SearchParams{IncludeDomains: []string{"a.com"}, ExcludeDomains: []string{"b.com"}},
			want:   []string{"Remove include_domains argument"},
		},
		{
			name:   "exclude domains",
			params: SearchParams{ExcludeDomains: []string{"b.com"}},
			want:   []string{"Remove exclude_domains argument"},
		},
		{
			name:   "basic depth",
			params: SearchParams{SearchDepth: "basic"},
			want:   []string{"Try a more detailed search using 'advanced' search_depth"},
		},
		{
			name:   "fallback",
			params: SearchParams{SearchDepth: "advanced"},
			want:   []string{"Try alternative search terms"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Search(c.params))
		})
	}
}

func TestCrawlAccumulatesInOrder(t *testing.T) {
	got := Crawl(CrawlParams{
		Instructions:   "find docs",
		SelectPaths:    []string{"/docs/.*"},
		SelectDomains:  []string{"docs\\..*"},
		ExcludePaths:   []string{"/private/.*"},
		ExcludeDomains: []string{"ads\\..*"},
	})
	assert.Equal(t, []string{
		"Try more concise instructions",
		"Remove select_paths argument",
		"Remove select_domains argument",
		"Remove exclude_paths argument",
		"Remove exclude_domains argument",
	}, got)
}

func TestCrawlEmptyWhenNothingSuspect(t *testing.T) {
	assert.Empty(t, Crawl(CrawlParams{}))
}

func TestMapAccumulatesInOrder(t *testing.T) {
	got := Map(MapParams{
		Instructions: "map the blog",
		SelectPaths:  []string{"/blog/.*"},
		Categories:   []string{"Blog"},
	})
	assert.Equal(t, []string{
		"Try more concise instructions",
		"Remove select_paths argument",
		"Remove categories argument",
	}, got)
}

func TestMapEmptyWhenNothingSuspect(t *testing.T) {
	assert.Empty(t, Map(MapParams{}))
}
