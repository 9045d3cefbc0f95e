// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/KomalGangwar/pubmed-pharma-finder/pkg/types"
)

// Fetcher provides PubMed search and record retrieval. Implemented by
// pubmed.Client; tests substitute mocks.
type Fetcher interface {
	Search(ctx context.Context, query string, max int) ([]string, error)
	Fetch(ctx context.Context, pmids []string) ([]types.Article, error)
}

// Cache stores fetched articles between runs so repeated queries skip
// EFetch for records already on disk. A nil Cache disables caching.
type Cache interface {
	Get(ctx context.Context, pmids []string) (map[string]types.Article, error)
	Put(ctx context.Context, articles []types.Article) error
}

// Summary holds the counts of a pipeline run.
type Summary struct {
	Found   int // PMIDs returned by the search
	Cached  int // records served from the cache
	Fetched int // records fetched from EFetch
	Matched int // articles with a company-affiliated author
	Dropped int // articles without one
}

// Run executes one query end to end: search PubMed, retrieve records
// (cache first, then EFetch for misses), and normalize each article.
// Rows come back in search-result order regardless of which records were
// cached. Progress and the final summary are written to w.
func Run(ctx context.Context, f Fetcher, cache Cache, n *Normalizer, query string, max int, w io.Writer) ([]types.ReportRow, Summary, error) {
	if strings.TrimSpace(query) == "" {
		return nil, Summary{}, fmt.Errorf("query is empty")
	}

	pmids, err := f.Search(ctx, query, max)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("searching PubMed: %w", err)
	}

	summary := Summary{Found: len(pmids)}
	if len(pmids) == 0 {
		fmt.Fprintln(w, "no articles matched the query")
		return nil, summary, nil
	}
	fmt.Fprintf(w, "found %d articles\n", len(pmids))

	byID := make(map[string]types.Article, len(pmids))
	missing := pmids

	if cache != nil {
		cached, err := cache.Get(ctx, pmids)
		if err != nil {
			fmt.Fprintf(w, "warning: cache lookup failed: %v\n", err)
		} else {
			missing = missing[:0:0]
			for _, id := range pmids {
				if art, ok := cached[id]; ok {
					byID[id] = art
				} else {
					missing = append(missing, id)
				}
			}
			summary.Cached = len(byID)
			if summary.Cached > 0 {
				fmt.Fprintf(w, "%d records served from cache\n", summary.Cached)
			}
		}
	}

	if len(missing) > 0 {
		fmt.Fprintf(w, "fetching %d records\n", len(missing))
		articles, err := f.Fetch(ctx, missing)
		if err != nil {
			return nil, summary, fmt.Errorf("fetching records: %w", err)
		}
		summary.Fetched = len(articles)
		for _, art := range articles {
			byID[art.PMID] = art
		}
		if cache != nil {
			if err := cache.Put(ctx, articles); err != nil {
				fmt.Fprintf(w, "warning: cache store failed: %v\n", err)
			}
		}
	}

	var rows []types.ReportRow
	for _, id := range pmids {
		art, ok := byID[id]
		if !ok {
			// EFetch silently omits withdrawn or malformed records.
			fmt.Fprintf(w, "warning: no record returned for PMID %s\n", id)
			continue
		}
		row, ok := n.Normalize(art)
		if !ok {
			summary.Dropped++
			continue
		}
		summary.Matched++
		fmt.Fprintf(w, "match: %s (%s)\n", row.PMID, strings.Join(row.CompanyAffiliations, "; "))
		rows = append(rows, row)
	}

	fmt.Fprintf(w, "\n%d of %d articles have company-affiliated authors (%d cached, %d fetched)\n",
		summary.Matched, summary.Found, summary.Cached, summary.Fetched)

	return rows, summary, nil
}
