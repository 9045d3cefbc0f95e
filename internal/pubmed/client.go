// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed fetches article records from the NCBI E-utilities API.
// Search wraps ESearch (JSON), Fetch wraps EFetch (PubMed XML); both honor
// the E-utilities usage policy via User-Agent, tool/email parameters, and
// retry-with-backoff on throttled responses.
package pubmed

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KomalGangwar/pubmed-pharma-finder/internal/httputil"
	"github.com/KomalGangwar/pubmed-pharma-finder/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// toolName identifies this client to NCBI in the tool parameter.
const toolName = "pharma-finder"

// Client queries PubMed through ESearch and EFetch.
type Client struct {
	HTTP   *http.Client
	Config types.FetchConfig
}

// NewClient builds a Client from the fetch configuration.
func NewClient(cfg types.FetchConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		HTTP:   &http.Client{Timeout: timeout},
		Config: cfg,
	}
}

// Search runs an ESearch query and returns matching PMIDs sorted by
// relevance. The query supports full PubMed query syntax.
func (c *Client) Search(ctx context.Context, query string, max int) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty PubMed query")
	}
	if max <= 0 {
		max = c.Config.MaxResults
	}
	if max <= 0 {
		max = 100
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmax":  {fmt.Sprintf("%d", max)},
		"retmode": {"json"},
		"sort":    {"relevance"},
	}
	c.addIdentity(params)

	resp, err := c.get(ctx, esearchBase+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("ESearch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ESearch returned HTTP %d", resp.StatusCode)
	}

	var er esearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, fmt.Errorf("parsing ESearch response: %w", err)
	}
	return er.Result.IDList, nil
}

// Fetch retrieves full article records for the given PMIDs via EFetch,
// batching requests and pausing between batches. Results are returned in
// response order; callers that need search order must reorder by PMID.
func (c *Client) Fetch(ctx context.Context, pmids []string) ([]types.Article, error) {
	if len(pmids) == 0 {
		return nil, nil
	}

	batchSize := c.Config.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}

	var articles []types.Article
	for start := 0; start < len(pmids); start += batchSize {
		if start > 0 && c.Config.RequestDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.Config.RequestDelay):
			}
		}

		end := start + batchSize
		if end > len(pmids) {
			end = len(pmids)
		}

		batch, err := c.fetchBatch(ctx, pmids[start:end])
		if err != nil {
			return nil, err
		}
		articles = append(articles, batch...)
	}
	return articles, nil
}

func (c *Client) fetchBatch(ctx context.Context, pmids []string) ([]types.Article, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(pmids, ",")},
		"retmode": {"xml"},
	}
	c.addIdentity(params)

	resp, err := c.get(ctx, efetchBase+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("EFetch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("EFetch returned HTTP %d", resp.StatusCode)
	}

	var set pubmedArticleSet
	if err := xml.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing EFetch response: %w", err)
	}

	articles := make([]types.Article, 0, len(set.Articles))
	for _, pa := range set.Articles {
		articles = append(articles, pa.toArticle())
	}
	return articles, nil
}

func (c *Client) get(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)
	return httputil.DoWithRetry(ctx, c.HTTP, req, 0)
}

// addIdentity attaches the tool, email, and api_key parameters NCBI asks
// heavy users to send.
func (c *Client) addIdentity(params url.Values) {
	params.Set("tool", toolName)
	if c.Config.Email != "" {
		params.Set("email", c.Config.Email)
	}
	if c.Config.APIKey != "" {
		params.Set("api_key", c.Config.APIKey)
	}
}

// ESearch JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}

// EFetch PubMed XML structures. Only the fields the pipeline consumes are
// mapped; everything else in the record is ignored by the decoder.
type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    string      `xml:"PMID"`
	Article articleNode `xml:"Article"`
}

type articleNode struct {
	Title   string       `xml:"ArticleTitle"`
	Journal journalNode  `xml:"Journal"`
	Authors []authorNode `xml:"AuthorList>Author"`
}

type journalNode struct {
	Issue journalIssue `xml:"JournalIssue"`
}

type journalIssue struct {
	PubDate pubDateNode `xml:"PubDate"`
}

type pubDateNode struct {
	Year        string `xml:"Year"`
	Month       string `xml:"Month"`
	Day         string `xml:"Day"`
	MedlineDate string `xml:"MedlineDate"`
}

type authorNode struct {
	LastName       string   `xml:"LastName"`
	ForeName       string   `xml:"ForeName"`
	Initials       string   `xml:"Initials"`
	CollectiveName string   `xml:"CollectiveName"`
	Affiliations   []string `xml:"AffiliationInfo>Affiliation"`
}

func (pa pubmedArticle) toArticle() types.Article {
	art := types.Article{
		PMID:    strings.TrimSpace(pa.Citation.PMID),
		Title:   strings.TrimSpace(pa.Citation.Article.Title),
		PubDate: formatPubDate(pa.Citation.Article.Journal.Issue.PubDate),
	}
	for _, an := range pa.Citation.Article.Authors {
		author := types.Author{
			LastName:       strings.TrimSpace(an.LastName),
			ForeName:       strings.TrimSpace(an.ForeName),
			Initials:       strings.TrimSpace(an.Initials),
			CollectiveName: strings.TrimSpace(an.CollectiveName),
		}
		for _, aff := range an.Affiliations {
			if aff = strings.TrimSpace(aff); aff != "" {
				author.Affiliations = append(author.Affiliations, aff)
			}
		}
		art.Authors = append(art.Authors, author)
	}
	return art
}

// formatPubDate joins the structured date parts ("2022", "Mar", "4") with
// spaces. Records without structured parts sometimes carry a MedlineDate
// range ("2021 Nov-Dec") instead; that is used as-is. Returns "" when the
// record has no date at all.
func formatPubDate(d pubDateNode) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{d.Year, d.Month, d.Day} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return strings.TrimSpace(d.MedlineDate)
}
