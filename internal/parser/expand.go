package parser

import (
	"fmt"

	"github.com/shoji1021/classroom/internal/change"
)

// Expander converts resolved class/period tuples into flat change records.
// Historical revisions of the upstream parser disagreed on whether the
// matched period digit is emitted as-is or shifted; the conversion happens
// here exactly once, nowhere else.
type Expander struct {
	// PeriodOffset is added to every matched period digit at expansion time.
	// 0 keeps the 1-indexed convention of the period markers themselves.
	PeriodOffset int

	// FullDayPeriods is what a segment with no period marker expands to.
	// Values are emitted as-is, without PeriodOffset applied.
	FullDayPeriods []int
}

// NewExpander returns an expander with the canonical convention: periods
// emitted 1-indexed, full-day changes covering periods 1 through 6.
func NewExpander() Expander {
	return Expander{
		PeriodOffset:   0,
		FullDayPeriods: []int{1, 2, 3, 4, 5, 6},
	}
}

// Expand emits one record per (class, period) combination for a single
// announcement. When overlapping segments produce the same class and period,
// the record from the last segment processed overwrites the earlier one.
func (e Expander) Expand(date string, resolved []Resolved, description string) []*change.Record {
	records := make([]*change.Record, 0, len(resolved))
	index := make(map[string]int) // classYear|period → position in records

	for _, res := range resolved {
		classYear := res.Class.ClassYear()

		periods := res.Periods
		offset := e.PeriodOffset
		if len(periods) == 0 {
			periods = e.FullDayPeriods
			offset = 0
		}

		for _, p := range periods {
			rec := &change.Record{
				Date:        date,
				ClassYear:   classYear,
				Period:      p + offset,
				NewSubject:  res.Subject,
				Description: description,
			}

			key := fmt.Sprintf("%s|%d", classYear, rec.Period)
			if pos, exists := index[key]; exists {
				records[pos] = rec
				continue
			}
			index[key] = len(records)
			records = append(records, rec)
		}
	}

	return records
}
