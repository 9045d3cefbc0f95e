package classify

import "testing"

func defaultClassifier() *Classifier {
	return NewClassifier(DefaultLexicon())
}

func TestClassifyKnownCompanies(t *testing.T) {
	c := defaultClassifier()

	tests := []struct {
		name        string
		affiliation string
		wantCompany string
	}{
		{
			name:        "known company with legal suffix",
			affiliation: "Pfizer Inc, New York, NY, USA",
			wantCompany: "Pfizer Inc",
		},
		{
			name:        "case-insensitive match preserves original casing",
			affiliation: "PFIZER Worldwide Research, Groton, CT",
			wantCompany: "PFIZER Worldwide Research",
		},
		{
			name:        "known company beats academic keyword",
			affiliation: "Genentech, University Partnerships Group, South San Francisco",
			wantCompany: "Genentech",
		},
		{
			name:        "semicolon-delimited fragment",
			affiliation: "Department of Oncology; Novartis Institutes for BioMedical Research; Basel",
			wantCompany: "Novartis Institutes for BioMedical Research",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := c.Classify(tt.affiliation)
			if !out.IsCompany {
				t.Fatalf("Classify(%q).IsCompany = false, want true", tt.affiliation)
			}
			if out.CompanyName != tt.wantCompany {
				t.Errorf("CompanyName = %q, want %q", out.CompanyName, tt.wantCompany)
			}
		})
	}
}

func TestClassifyAcademicPrecedence(t *testing.T) {
	c := defaultClassifier()

	// Academic keywords win over generic industry keywords, so hybrid names
	// stay academic.
	tests := []string{
		"University Biotech Institute",
		"Dept. of Medicine, Harvard University",
		"School of Medicine, Johns Hopkins",
		"CHU de Toulouse, Clinique des Maladies Rares",
		"National Institute of Diabetes and Digestive and Kidney Diseases",
		"Laboratory of Molecular Genomics, NIH",
	}
	for _, aff := range tests {
		t.Run(aff, func(t *testing.T) {
			out := c.Classify(aff)
			if out.IsCompany {
				t.Errorf("Classify(%q).IsCompany = true, want false", aff)
			}
			if out.CompanyName != "" {
				t.Errorf("CompanyName = %q, want empty", out.CompanyName)
			}
		})
	}
}

func TestClassifyIndustryKeywords(t *testing.T) {
	c := defaultClassifier()

	tests := []struct {
		affiliation string
		wantCompany string
	}{
		{"CEINGE Advanced Biotech", "CEINGE Advanced Biotech"},
		{"Arcus Biosciences, Hayward, CA", "Arcus Biosciences"},
		{"Oncology Unit, Redwood Therapeutics, Cambridge, MA", "Redwood Therapeutics"},
		{"Grünenthal GmbH, Aachen, Germany", "Grünenthal GmbH"},
	}
	for _, tt := range tests {
		t.Run(tt.affiliation, func(t *testing.T) {
			out := c.Classify(tt.affiliation)
			if !out.IsCompany {
				t.Fatalf("Classify(%q).IsCompany = false, want true", tt.affiliation)
			}
			if out.CompanyName != tt.wantCompany {
				t.Errorf("CompanyName = %q, want %q", out.CompanyName, tt.wantCompany)
			}
		})
	}
}

func TestClassifyCorporateSuffixBoundaries(t *testing.T) {
	c := defaultClassifier()

	if out := c.Classify("Acme Oncology Inc, Boston"); !out.IsCompany {
		t.Error("suffix on a word boundary should classify as company")
	}
	// "inc" appears mid-word here; no rule should fire.
	if out := c.Classify("Vincent Street Research Group"); out.IsCompany {
		t.Errorf("mid-word suffix matched: %+v", out)
	}
	if out := c.Classify("Le Principe, Paris"); out.IsCompany {
		t.Errorf("mid-word suffix matched: %+v", out)
	}
}

func TestClassifyEmptyAndUnmatched(t *testing.T) {
	c := defaultClassifier()

	for _, aff := range []string{"", "   ", "\t\n"} {
		out := c.Classify(aff)
		if out.IsCompany || out.CompanyName != "" {
			t.Errorf("Classify(%q) = %+v, want academic with no name", aff, out)
		}
	}

	out := c.Classify("Unaffiliated Independent Researcher")
	if out.IsCompany {
		t.Errorf("unmatched text classified as company: %+v", out)
	}
	if out.Rule != "default" {
		t.Errorf("Rule = %q, want %q", out.Rule, "default")
	}
}

func TestClassifyWithFixtureLexicon(t *testing.T) {
	c := NewClassifier(Lexicon{
		KnownCompanies:   []string{"initech"},
		AcademicKeywords: []string{"academy"},
		IndustryKeywords: []string{"widgets"},
	})

	out := c.Classify("Initech Research Campus, Austin")
	if !out.IsCompany || out.CompanyName != "Initech Research Campus" {
		t.Errorf("fixture known company: got %+v", out)
	}
	if out := c.Classify("Widgets Academy"); out.IsCompany {
		t.Errorf("fixture academic keyword should win: %+v", out)
	}
	if out := c.Classify("Global Widgets, Springfield"); !out.IsCompany {
		t.Errorf("fixture industry keyword should match: %+v", out)
	}
	// Default-lexicon entries must not leak into a fixture classifier.
	if out := c.Classify("Pfizer Inc"); out.IsCompany {
		t.Errorf("fixture classifier matched default lexicon entry: %+v", out)
	}
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		text, word string
		want       bool
	}{
		{"acme inc", "inc", true},
		{"acme inc.", "inc", true},
		{"acme, inc, boston", "inc", true},
		{"vincent", "inc", false},
		{"principe", "inc", false},
		{"acme s.a., paris", "s.a.", true},
		{"usa", "s.a.", false},
		{"", "inc", false},
		{"inc", "inc", true},
	}
	for _, tt := range tests {
		if got := containsWord(tt.text, tt.word); got != tt.want {
			t.Errorf("containsWord(%q, %q) = %v, want %v", tt.text, tt.word, got, tt.want)
		}
	}
}
