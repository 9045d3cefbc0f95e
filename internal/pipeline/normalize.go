// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline turns raw PubMed records into report rows. The
// normalizer applies the affiliation classifier and email extractor to each
// author and keeps only articles with at least one company-affiliated
// author; Run drives the search → fetch → normalize loop.
package pipeline

import (
	"strings"

	"github.com/KomalGangwar/pubmed-pharma-finder/internal/classify"
	"github.com/KomalGangwar/pubmed-pharma-finder/pkg/types"
)

// unknownDate is substituted when a record carries no publication date.
const unknownDate = "Unknown"

// Normalizer converts one Article into at most one ReportRow.
type Normalizer struct {
	classifier *classify.Classifier
}

// NewNormalizer builds a Normalizer around the given classifier.
func NewNormalizer(c *classify.Classifier) *Normalizer {
	return &Normalizer{classifier: c}
}

// Normalize classifies every author of the article and returns a report row
// when at least one author is company-affiliated. The second return value is
// false when the article has no company-affiliated author and is dropped.
//
// Author names are collected unique in first-seen order, as are extracted
// company names. An author with several affiliations counts as
// company-affiliated if any one of them classifies as a company; the first
// company hit decides the extracted name. The corresponding email is the
// first address found scanning authors (and their affiliations) in order;
// once found, later authors are still classified but not searched.
func (n *Normalizer) Normalize(article types.Article) (types.ReportRow, bool) {
	row := types.ReportRow{
		PMID:    article.PMID,
		Title:   article.Title,
		PubDate: article.PubDate,
	}
	if strings.TrimSpace(row.PubDate) == "" {
		row.PubDate = unknownDate
	}

	seenAuthors := make(map[string]bool)
	seenCompanies := make(map[string]bool)
	found := false

	for _, author := range article.Authors {
		for _, aff := range author.Affiliations {
			out := n.classifier.Classify(aff)
			if !out.IsCompany {
				continue
			}
			found = true
			if name := author.Name(); name != "" && !seenAuthors[name] {
				seenAuthors[name] = true
				row.CompanyAuthors = append(row.CompanyAuthors, name)
			}
			if out.CompanyName != "" && !seenCompanies[out.CompanyName] {
				seenCompanies[out.CompanyName] = true
				row.CompanyAffiliations = append(row.CompanyAffiliations, out.CompanyName)
			}
			break
		}

		if row.CorrespondingEmail == "" {
			for _, aff := range author.Affiliations {
				if email := classify.ExtractEmail(aff); email != "" {
					row.CorrespondingEmail = email
					break
				}
			}
		}
	}

	if !found {
		return types.ReportRow{}, false
	}
	return row, true
}
