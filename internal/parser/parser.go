package parser

import "github.com/shoji1021/classroom/internal/change"

// DefaultReferenceYear anchors "<month>月<day>日" announcements, which never
// carry a year of their own
const DefaultReferenceYear = 2026

// Pipeline orchestrates normalization, field extraction, segment resolution,
// and record expansion over a batch of announcements
type Pipeline struct {
	ReferenceYear int
	Expander      Expander
}

// New creates a Pipeline with the canonical expansion convention
func New(referenceYear int) *Pipeline {
	if referenceYear == 0 {
		referenceYear = DefaultReferenceYear
	}
	return &Pipeline{
		ReferenceYear: referenceYear,
		Expander:      NewExpander(),
	}
}

// Run processes announcements in source order and returns the accumulated
// change records. An announcement without a date contributes zero records;
// a malformed announcement never fails the run.
func (p *Pipeline) Run(announcements []string) []*change.Record {
	records := make([]*change.Record, 0)

	for _, text := range announcements {
		normalized := NormalizeText(text)

		date := ParseDate(normalized, p.ReferenceYear)
		if date == "" {
			continue
		}

		resolved := ResolveSegments(normalized)
		records = append(records, p.Expander.Expand(date, resolved, text)...)
	}

	return records
}
