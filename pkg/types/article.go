// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pharma-finder pipeline.
package types

import "strings"

// Author is one entry of a PubMed article's author list. PubMed delivers
// zero or more AffiliationInfo elements per author, so Affiliations is a
// slice; each element is treated as one free-text unit.
type Author struct {
	// LastName is the author's surname.
	LastName string `json:"last_name" yaml:"last_name"`

	// ForeName is the author's given name as recorded by PubMed.
	ForeName string `json:"fore_name,omitempty" yaml:"fore_name,omitempty"`

	// Initials is the abbreviated given name (e.g. "JA").
	Initials string `json:"initials,omitempty" yaml:"initials,omitempty"`

	// CollectiveName is set for group authorships (consortia, working groups)
	// instead of the personal name fields.
	CollectiveName string `json:"collective_name,omitempty" yaml:"collective_name,omitempty"`

	// Affiliations lists the author's affiliation strings in source order.
	Affiliations []string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
}

// Name renders the author as "LastName, ForeName" the way the report expects.
// It falls back to initials when the forename is missing, to the bare surname,
// and finally to the collective name for group authorships.
func (a Author) Name() string {
	switch {
	case a.LastName != "" && a.ForeName != "":
		return a.LastName + ", " + a.ForeName
	case a.LastName != "" && a.Initials != "":
		return a.LastName + ", " + a.Initials
	case a.LastName != "":
		return a.LastName
	default:
		return strings.TrimSpace(a.CollectiveName)
	}
}

// Article is a raw PubMed record as fetched from EFetch, before
// classification.
type Article struct {
	// PMID is the PubMed identifier as text.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// PubDate is the publication date as a display string (e.g. "2022 Mar 4").
	// Empty when the source record carries no date.
	PubDate string `json:"pub_date,omitempty" yaml:"pub_date,omitempty"`

	// Authors lists the article authors in source order.
	Authors []Author `json:"authors,omitempty" yaml:"authors,omitempty"`
}

// ReportRow is one line of the final report: an article with at least one
// company-affiliated author.
type ReportRow struct {
	// PMID is the PubMed identifier of the article.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// PubDate is the publication date, or the literal "Unknown" when the
	// source record has none.
	PubDate string `json:"pub_date" yaml:"pub_date"`

	// CompanyAuthors lists non-academic author names, unique, in order of
	// first appearance.
	CompanyAuthors []string `json:"company_authors" yaml:"company_authors"`

	// CompanyAffiliations lists distinct extracted company names, in order
	// of first appearance.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is the first email found scanning authors in order,
	// empty when none was found.
	CorrespondingEmail string `json:"corresponding_email,omitempty" yaml:"corresponding_email,omitempty"`
}
