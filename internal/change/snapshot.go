package change

import (
	"sort"
)

// Snapshot represents the full result of one fetch-and-parse run
type Snapshot struct {
	Title     string    `json:"title"`
	FetchedAt string    `json:"fetchedAt"` // RFC3339 timestamp
	Changes   []*Record `json:"changes"`
	RawItems  []string  `json:"rawItems,omitempty"` // source announcement texts, kept for auditing
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Changes:  make([]*Record, 0),
		RawItems: make([]string, 0),
	}
}

// CreateSnapshot creates a snapshot from one run's records
func CreateSnapshot(title string, records []*Record, rawItems []string, fetchedAt string) *Snapshot {
	return &Snapshot{
		Title:     title,
		FetchedAt: fetchedAt,
		Changes:   records,
		RawItems:  rawItems,
	}
}

// Index returns the snapshot's records keyed by Record.Key
func (s *Snapshot) Index() map[string]*Record {
	idx := make(map[string]*Record, len(s.Changes))
	for _, r := range s.Changes {
		idx[r.Key()] = r
	}
	return idx
}

// DiffResult contains the results of comparing a run against a previous snapshot
type DiffResult struct {
	NewRecords []*Record
	ByClass    map[string][]*Record // new records grouped by classYear
}

// Diff compares current records against a previous snapshot and returns
// records not present in the previous run
func Diff(previous *Snapshot, current []*Record) *DiffResult {
	result := &DiffResult{
		NewRecords: make([]*Record, 0),
		ByClass:    make(map[string][]*Record),
	}

	if previous == nil {
		previous = NewSnapshot()
	}
	seen := previous.Index()

	for _, r := range current {
		if _, exists := seen[r.Key()]; exists {
			continue
		}
		result.NewRecords = append(result.NewRecords, r)
		result.ByClass[r.ClassYear] = append(result.ByClass[r.ClassYear], r)
	}

	// Sort new records for consistent output
	SortRecords(result.NewRecords)
	for class := range result.ByClass {
		SortRecords(result.ByClass[class])
	}

	return result
}

// SortRecords orders records by date, then classYear, then period
func SortRecords(records []*Record) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		if records[i].ClassYear != records[j].ClassYear {
			return records[i].ClassYear < records[j].ClassYear
		}
		return records[i].Period < records[j].Period
	})
}
