// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/KomalGangwar/pubmed-pharma-finder/pkg/types"
)

// ResultFile is the on-disk representation of one query run. A run can be
// saved to a file and reloaded later without re-querying PubMed.
type ResultFile struct {
	Query   string            `yaml:"query"`
	Config  ResultFileConfig  `yaml:"config"`
	Rows    []types.ReportRow `yaml:"rows"`
	Summary ResultSummary     `yaml:"summary"`
}

// ResultFileConfig stores the parameters that produced the rows.
type ResultFileConfig struct {
	MaxResults int `yaml:"max_results"`
}

// ResultSummary stores run statistics and a timestamp.
type ResultSummary struct {
	Found     int       `yaml:"found"`
	Matched   int       `yaml:"matched"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultFile saves a query run to a YAML file.
func WriteResultFile(path, query string, max int, rows []types.ReportRow, found int) error {
	rf := ResultFile{
		Query:  query,
		Config: ResultFileConfig{MaxResults: max},
		Rows:   rows,
		Summary: ResultSummary{
			Found:     found,
			Matched:   len(rows),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved run from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file %s: %w", path, err)
	}
	return &rf, nil
}
