// Package filter provides record filtering for the change pipeline output.
//
// Callers can narrow the emitted change records by various criteria:
//   - Date range (inclusive, YYYY-MM-DD strings)
//   - Class years (exact match, case-insensitive, e.g. "1F")
//   - Periods
//   - Subjects (substring matching, case-insensitive)
//
// The CLI maps flags onto a Filter and the HTTP API maps query parameters
// onto one, so a student can view only their own class.
package filter

import (
	"fmt"
	"strings"

	"github.com/shoji1021/classroom/internal/change"
)

// Filter represents record filtering criteria
type Filter struct {
	// Date range filtering; YYYY-MM-DD strings compare lexicographically
	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`

	// Class year filtering (exact, case-insensitive)
	Classes []string `json:"classes,omitempty"`

	// Period filtering
	Periods []int `json:"periods,omitempty"`

	// Subject filtering (case-insensitive substring match)
	Subjects []string `json:"subjects,omitempty"`
}

// New creates a new empty filter with no active criteria.
// The filter will match all records until criteria are added.
func New() *Filter {
	return &Filter{
		Classes:  []string{},
		Periods:  []int{},
		Subjects: []string{},
	}
}

// IsEmpty checks if the filter has any active criteria.
// Returns true if the filter would match all records.
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == "" &&
		f.DateTo == "" &&
		len(f.Classes) == 0 &&
		len(f.Periods) == 0 &&
		len(f.Subjects) == 0
}

// Matches checks if a record passes all active filter criteria.
// An empty filter matches all records.
func (f *Filter) Matches(r *change.Record) bool {
	if f.IsEmpty() {
		return true
	}

	if f.DateFrom != "" && r.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && r.Date > f.DateTo {
		return false
	}

	if len(f.Classes) > 0 {
		matched := false
		for _, class := range f.Classes {
			if strings.EqualFold(r.ClassYear, class) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Periods) > 0 {
		matched := false
		for _, p := range f.Periods {
			if r.Period == p {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Subjects) > 0 {
		matched := false
		subjectLower := strings.ToLower(r.NewSubject)
		for _, s := range f.Subjects {
			if strings.Contains(subjectLower, strings.ToLower(s)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// Apply applies the filter to records and returns only matching ones.
// An empty filter returns the original slice unchanged.
func (f *Filter) Apply(records []*change.Record) []*change.Record {
	if f.IsEmpty() {
		return records
	}

	var filtered []*change.Record
	for _, r := range records {
		if f.Matches(r) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// String returns a human-readable description of the active criteria
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string
	if f.DateFrom != "" {
		parts = append(parts, fmt.Sprintf("From: %s", f.DateFrom))
	}
	if f.DateTo != "" {
		parts = append(parts, fmt.Sprintf("To: %s", f.DateTo))
	}
	if len(f.Classes) > 0 {
		parts = append(parts, fmt.Sprintf("Classes: %s", strings.Join(f.Classes, ", ")))
	}
	if len(f.Periods) > 0 {
		periods := make([]string, 0, len(f.Periods))
		for _, p := range f.Periods {
			periods = append(periods, fmt.Sprintf("%d", p))
		}
		parts = append(parts, fmt.Sprintf("Periods: %s", strings.Join(periods, ", ")))
	}
	if len(f.Subjects) > 0 {
		parts = append(parts, fmt.Sprintf("Subjects: %s", strings.Join(f.Subjects, ", ")))
	}

	return strings.Join(parts, " | ")
}
