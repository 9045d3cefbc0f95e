// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders pipeline rows as CSV, a console table, JSON, or a
// reloadable YAML result file.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/KomalGangwar/pubmed-pharma-finder/pkg/types"
)

// Columns is the fixed report column order.
var Columns = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// joinSep separates multiple authors or affiliations inside one CSV cell.
const joinSep = "; "

// WriteCSV writes the header and one record per row to w.
func WriteCSV(rows []types.ReportRow, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(record(row)); err != nil {
			return fmt.Errorf("writing CSV row %s: %w", row.PMID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func record(r types.ReportRow) []string {
	return []string{
		r.PMID,
		r.Title,
		r.PubDate,
		strings.Join(r.CompanyAuthors, joinSep),
		strings.Join(r.CompanyAffiliations, joinSep),
		r.CorrespondingEmail,
	}
}

// maxTitleWidth caps the title column in table output.
const maxTitleWidth = 60

// FormatTable writes rows as a human-readable table to w. Cells are padded
// by display width so records with CJK or combining characters still line up.
func FormatTable(rows []types.ReportRow, w io.Writer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No papers with pharmaceutical/biotech company affiliations found.")
		return
	}

	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, Columns)
	for _, row := range rows {
		rec := record(row)
		rec[1] = runewidth.Truncate(rec[1], maxTitleWidth, "...")
		cells = append(cells, rec)
	}

	widths := make([]int, len(Columns))
	for _, rec := range cells {
		for i, cell := range rec {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for i, rec := range cells {
		var sb strings.Builder
		for j, cell := range rec {
			sb.WriteString(cell)
			if j < len(rec)-1 {
				sb.WriteString(strings.Repeat(" ", widths[j]-runewidth.StringWidth(cell)+2))
			}
		}
		fmt.Fprintln(w, sb.String())
		if i == 0 {
			total := 0
			for _, wd := range widths {
				total += wd + 2
			}
			fmt.Fprintln(w, strings.Repeat("-", total-2))
		}
	}

	fmt.Fprintf(w, "\n%d papers with pharmaceutical/biotech company affiliations\n", len(rows))
}

// FormatJSON writes rows as indented JSON to w.
func FormatJSON(rows []types.ReportRow, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
