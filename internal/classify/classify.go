// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether an affiliation string belongs to a
// pharmaceutical/biotech company and extracts a readable company name.
// Classification is a pure function of the affiliation string: an ordered
// list of rules is evaluated first-match-wins, so precedence between the
// keyword sets is explicit rather than buried in branching.
package classify

import "strings"

// Outcome is the classifier's verdict for one affiliation string.
type Outcome struct {
	// IsCompany is true when the affiliation is company-affiliated.
	IsCompany bool

	// CompanyName is the smallest comma/semicolon-delimited fragment of the
	// original affiliation containing the match, trimmed, original casing.
	// Empty when IsCompany is false.
	CompanyName string

	// Rule names the rule that decided the outcome ("blank", "known-company",
	// "academic", "industry", "default").
	Rule string
}

type rule struct {
	name  string
	apply func(original, lower string) (Outcome, bool)
}

// Classifier evaluates affiliation strings against a Lexicon.
type Classifier struct {
	rules []rule
}

// NewClassifier builds the rule pipeline for the given lexicon. Rule order
// encodes precedence: known companies beat academic keywords, academic
// keywords beat generic industry markers.
func NewClassifier(lex Lexicon) *Classifier {
	return &Classifier{rules: []rule{
		{name: "blank", apply: func(original, lower string) (Outcome, bool) {
			if strings.TrimSpace(original) == "" {
				return Outcome{}, true
			}
			return Outcome{}, false
		}},
		{name: "known-company", apply: func(original, lower string) (Outcome, bool) {
			for _, company := range lex.KnownCompanies {
				if strings.Contains(lower, company) {
					name := fragmentMatching(original, func(frag string) bool {
						return strings.Contains(frag, company)
					})
					return Outcome{IsCompany: true, CompanyName: name}, true
				}
			}
			return Outcome{}, false
		}},
		{name: "academic", apply: func(original, lower string) (Outcome, bool) {
			for _, kw := range lex.AcademicKeywords {
				if strings.Contains(lower, kw) {
					return Outcome{}, true
				}
			}
			return Outcome{}, false
		}},
		{name: "industry", apply: func(original, lower string) (Outcome, bool) {
			match := func(frag string) bool {
				for _, kw := range lex.IndustryKeywords {
					if strings.Contains(frag, kw) {
						return true
					}
				}
				for _, sfx := range lex.CorporateSuffixes {
					if containsWord(frag, sfx) {
						return true
					}
				}
				return false
			}
			if match(lower) {
				return Outcome{IsCompany: true, CompanyName: fragmentMatching(original, match)}, true
			}
			return Outcome{}, false
		}},
	}}
}

// Classify runs the rule pipeline over one affiliation string. Matching is
// case-insensitive; the extracted company name keeps the original casing.
func (c *Classifier) Classify(affiliation string) Outcome {
	lower := strings.ToLower(affiliation)
	for _, r := range c.rules {
		if out, ok := r.apply(affiliation, lower); ok {
			out.Rule = r.name
			return out
		}
	}
	return Outcome{Rule: "default"}
}

// fragmentMatching splits the affiliation on commas and semicolons and
// returns the first trimmed fragment whose lowercase form satisfies match.
// Falling back to the whole string only happens when the match spans a
// delimiter (e.g. a company name containing a comma).
func fragmentMatching(affiliation string, match func(lowerFragment string) bool) string {
	for _, frag := range strings.FieldsFunc(affiliation, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		if match(strings.ToLower(frag)) {
			return strings.TrimSpace(frag)
		}
	}
	return strings.TrimSpace(affiliation)
}

// containsWord reports whether word occurs in text delimited by non-word
// characters on both sides. Both arguments are expected lowercase.
func containsWord(text, word string) bool {
	if word == "" {
		return false
	}
	for from := 0; ; {
		idx := strings.Index(text[from:], word)
		if idx < 0 {
			return false
		}
		idx += from
		end := idx + len(word)
		beforeOK := idx == 0 || !isWordByte(text[idx-1])
		afterOK := end == len(text) || !isWordByte(text[end])
		if beforeOK && afterOK {
			return true
		}
		from = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
