package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jszwec/csvutil"

	"github.com/shoji1021/classroom/internal/change"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatCSV  OutputFormat = "csv"
)

// OutputResult represents one check run for output
type OutputResult struct {
	CheckedAt   time.Time                   `json:"checkedAt"`
	FormTitle   string                      `json:"formTitle"`
	NewRecords  []*change.Record            `json:"newRecords"`
	RecordCount int                         `json:"recordCount"`
	ByClass     map[string][]*change.Record `json:"byClass,omitempty"`
	ShowAll     bool                        `json:"-"`
}

// WriteOutput writes the result in the requested format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatCSV:
		return writeCSV(w, result)
	default:
		return writeText(w, result, verbose)
	}
}

func writeJSON(w io.Writer, result *OutputResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, result *OutputResult) error {
	records := result.NewRecords
	if records == nil {
		records = []*change.Record{}
	}
	b, err := csvutil.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding CSV output: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("writing CSV output: %w", err)
	}
	return nil
}

func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.RecordCount == 0 {
		if result.ShowAll {
			fmt.Fprintln(w, "No schedule changes found.")
		} else {
			fmt.Fprintln(w, "No new schedule changes.")
		}
		return nil
	}

	label := "new "
	if result.ShowAll {
		label = ""
	}
	fmt.Fprintf(w, "%s: %d %sschedule change(s)\n\n", result.FormTitle, result.RecordCount, label)

	classes := make([]string, 0, len(result.ByClass))
	for class := range result.ByClass {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	for _, class := range classes {
		records := result.ByClass[class]
		change.SortRecords(records)

		fmt.Fprintf(w, "[%s]\n", class)
		for _, r := range records {
			fmt.Fprintf(w, "  %s  %s  %s\n", r.Date, periodLabel(r.Period), r.NewSubject)
			if verbose && r.Description != "" {
				fmt.Fprintf(w, "      %s\n", r.Description)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Checked at %s\n", result.CheckedAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}

func periodLabel(period int) string {
	if period <= 0 {
		return "終日"
	}
	return fmt.Sprintf("%d限", period)
}
