package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shoji1021/classroom/internal/change"
	"github.com/shoji1021/classroom/internal/config"
	"github.com/shoji1021/classroom/internal/filter"
	"github.com/shoji1021/classroom/internal/form"
	"github.com/shoji1021/classroom/internal/parser"
	"github.com/shoji1021/classroom/internal/storage"
)

const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitNewChanges = 2
)

var (
	flagFormURL string
	flagDataDir string
	flagYear    int
	flagFormat  string
	flagClass   string
	flagDate    string
	flagAll     bool
	flagRefresh bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classroom",
		Short: "Check the announcement form for new schedule changes",
		Long: `A CLI tool to scrape the public announcement form, extract schedule-change
records, and report changes that are new since the last check.`,
		RunE: runCheck,
	}

	cmd.Flags().StringVar(&flagFormURL, "form-url", "", "Form URL (default from FORM_URL / built-in)")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Data directory for snapshots (default from OUTPUT_DIR / ./data)")
	cmd.Flags().IntVar(&flagYear, "year", 0, "Reference year for announcement dates (default from REFERENCE_YEAR)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json, or csv")
	cmd.Flags().StringVar(&flagClass, "class", "", "Only report these class years, comma-separated (e.g. 1F,2M)")
	cmd.Flags().StringVar(&flagDate, "date", "", "Only report this date range (e.g. 2月18日 or 2月1日-15日)")
	cmd.Flags().BoolVar(&flagAll, "all", false, "Report every extracted record, not only new ones")
	cmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Refresh snapshot without showing new changes")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runCheck is the main command logic
func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if flagFormURL != "" {
		cfg.FormURL = flagFormURL
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagYear != 0 {
		cfg.ReferenceYear = flagYear
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON && format != FormatCSV {
		return fmt.Errorf("invalid format: %s (must be 'text', 'json', or 'csv')", flagFormat)
	}

	f, err := buildFilter(cfg.ReferenceYear)
	if err != nil {
		return err
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Form URL: %s\n", cfg.FormURL)
		fmt.Fprintf(os.Stderr, "Data directory: %s\n", cfg.DataDir)
		fmt.Fprintf(os.Stderr, "Filter: %s\n", f.String())
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	fetcher := form.New(cfg.FormURL)
	doc, err := fetcher.Fetch()
	if err != nil {
		return fmt.Errorf("fetching form: %w", err)
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Fetched %d announcements from %q\n", len(doc.Announcements), doc.Title)
	}

	pipeline := parser.New(cfg.ReferenceYear)
	records := pipeline.Run(doc.Announcements)

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Extracted %d records\n", len(records))
	}

	var previous *change.Snapshot
	if !flagRefresh {
		previous, err = store.LoadLatest()
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}

		if flagVerbose {
			fmt.Fprintf(os.Stderr, "Loaded previous snapshot with %d records\n", len(previous.Changes))
		}
	}

	diff := change.Diff(previous, records)

	// The snapshot always stores the full, unfiltered run
	fetchedAt := time.Now().UTC().Format(time.RFC3339)
	snapshot := change.CreateSnapshot(doc.Title, records, doc.Announcements, fetchedAt)
	if err := store.SaveSnapshot(snapshot); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Saved snapshot\n")
	}

	reported := diff.NewRecords
	if flagAll {
		reported = records
	}
	reported = f.Apply(reported)

	result := &OutputResult{
		CheckedAt:   time.Now().UTC(),
		FormTitle:   doc.Title,
		NewRecords:  reported,
		RecordCount: len(reported),
		ByClass:     groupByClass(reported),
		ShowAll:     flagAll,
	}

	// In refresh mode, don't output new changes
	if flagRefresh {
		if format == FormatText {
			fmt.Println("Snapshot refreshed successfully.")
		} else {
			result.NewRecords = nil
			result.RecordCount = 0
			result.ByClass = nil
			WriteOutput(os.Stdout, result, format, flagVerbose)
		}
		os.Exit(ExitSuccess)
		return nil
	}

	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if len(diff.NewRecords) > 0 {
		os.Exit(ExitNewChanges)
	} else {
		os.Exit(ExitSuccess)
	}

	return nil
}

// buildFilter maps the --class and --date flags onto a record filter
func buildFilter(referenceYear int) (*filter.Filter, error) {
	f := filter.New()

	if flagClass != "" {
		for _, class := range strings.Split(flagClass, ",") {
			f.Classes = append(f.Classes, strings.TrimSpace(class))
		}
	}
	if flagDate != "" {
		from, to, err := filter.ParseDateRange(parser.NormalizeText(flagDate), referenceYear)
		if err != nil {
			return nil, fmt.Errorf("invalid --date: %w", err)
		}
		f.DateFrom, f.DateTo = from, to
	}

	return f, nil
}

// groupByClass groups records by classYear for the text report
func groupByClass(records []*change.Record) map[string][]*change.Record {
	if len(records) == 0 {
		return nil
	}
	byClass := make(map[string][]*change.Record)
	for _, r := range records {
		byClass[r.ClassYear] = append(byClass[r.ClassYear], r)
	}
	return byClass
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
