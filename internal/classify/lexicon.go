// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Lexicon holds the keyword sets the classifier matches against. It is an
// immutable configuration value: build one with DefaultLexicon or LoadLexicon
// and pass it to NewClassifier. Tests substitute small fixtures.
type Lexicon struct {
	// KnownCompanies are pharmaceutical/biotech company names matched as
	// case-insensitive substrings. A hit here wins over everything else.
	KnownCompanies []string `yaml:"known_companies"`

	// AcademicKeywords mark an affiliation as academic. They take precedence
	// over IndustryKeywords so hybrid names like "University Biotech Center"
	// stay academic.
	AcademicKeywords []string `yaml:"academic_keywords"`

	// IndustryKeywords are generic pharma/biotech markers matched as
	// substrings (e.g. "therapeutics", "biologics").
	IndustryKeywords []string `yaml:"industry_keywords"`

	// CorporateSuffixes are legal-form markers matched on word boundaries
	// only; a raw substring match on "inc" would classify "clinic" or
	// "Vincent" as companies.
	CorporateSuffixes []string `yaml:"corporate_suffixes"`
}

// DefaultLexicon returns the curated keyword sets. All entries are lowercase;
// matching lowercases the affiliation, never the lexicon.
func DefaultLexicon() Lexicon {
	return Lexicon{
		KnownCompanies: []string{
			"pfizer", "merck", "novartis", "roche", "sanofi", "gsk",
			"glaxosmithkline", "astrazeneca", "johnson & johnson", "j&j",
			"janssen", "eli lilly", "lilly", "abbvie", "bristol myers squibb",
			"bms", "gilead", "amgen", "biogen", "regeneron", "moderna",
			"vertex", "bayer", "boehringer ingelheim", "genentech", "takeda",
			"novo nordisk", "astellas", "daiichi sankyo", "celgene", "servier",
			"teva", "otsuka", "eisai", "alexion", "biomarin", "incyte",
			"illumina", "iqvia", "medimmune", "grail", "23andme",
			"beam therapeutics", "editas", "crispr therapeutics", "intellia",
			"allogene", "sarepta", "bluebird bio", "sage therapeutics",
			"alnylam", "mirati", "seagen", "blueprint medicines", "acceleron",
			"exelixis", "guardant health", "applied therapeutics",
		},
		AcademicKeywords: []string{
			"university", "college", "institute", "school of medicine",
			"academy", "hospital", "medical center", "medical centre",
			"clinic", "medical school", "faculty", "dept", "department of",
			"center for", "centre for", "research center", "research centre",
			"national institute", "foundation", "laboratory of",
			"health system",
		},
		IndustryKeywords: []string{
			"pharma", "pharmaceutical", "therapeutics", "biopharm", "biotech",
			"biologics", "laboratories", "medicines", "vaccines",
			"health products", "bioscience", "life science", "biopharma",
			"genomics", "diagnostics", "medical technology", "biotechnology",
		},
		CorporateSuffixes: []string{
			"inc", "ltd", "llc", "corp", "gmbh", "s.a.", "b.v.", "co.",
			"ag", "plc",
		},
	}
}

// LoadLexicon reads keyword overrides from a YAML file. Any set left empty
// in the file keeps its default, so a file can replace just one set.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("reading lexicon file: %w", err)
	}

	var loaded Lexicon
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Lexicon{}, fmt.Errorf("parsing lexicon file %s: %w", path, err)
	}

	lex := DefaultLexicon()
	if len(loaded.KnownCompanies) > 0 {
		lex.KnownCompanies = lowercase(loaded.KnownCompanies)
	}
	if len(loaded.AcademicKeywords) > 0 {
		lex.AcademicKeywords = lowercase(loaded.AcademicKeywords)
	}
	if len(loaded.IndustryKeywords) > 0 {
		lex.IndustryKeywords = lowercase(loaded.IndustryKeywords)
	}
	if len(loaded.CorporateSuffixes) > 0 {
		lex.CorporateSuffixes = lowercase(loaded.CorporateSuffixes)
	}
	return lex, nil
}

func lowercase(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
