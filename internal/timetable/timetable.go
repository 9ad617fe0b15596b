// Package timetable models the static base timetable and overlays change
// records onto it.
//
// The base grid maps a class year to its weekday schedules; Merge applies one
// day's change records on top without mutating the base, so a viewer can
// render the effective schedule with changed slots marked.
package timetable

import (
	"strings"

	"github.com/shoji1021/classroom/internal/change"
)

// Slot is one period of the base timetable
type Slot struct {
	Period   int    `json:"period"`
	Subject  string `json:"subject"`
	Location string `json:"location,omitempty"`
}

// DaySchedule maps a weekday name to its ordered slots
type DaySchedule map[string][]Slot

// ClassSchedule maps a class year to its weekly schedule
type ClassSchedule map[string]DaySchedule

// MergedSlot is a base slot with any change applied
type MergedSlot struct {
	Slot
	Changed         bool   `json:"changed"`
	OriginalSubject string `json:"originalSubject,omitempty"`
	Description     string `json:"description,omitempty"`
}

// Merge overlays the change records for one class and date onto a day's base
// slots. The base is not mutated. Records for other classes or dates are
// ignored, as are records whose period has no slot in the base grid.
func Merge(base []Slot, classYear, date string, records []*change.Record) []MergedSlot {
	merged := make([]MergedSlot, len(base))
	index := make(map[int]int, len(base))
	for i, slot := range base {
		merged[i] = MergedSlot{Slot: slot}
		index[slot.Period] = i
	}

	for _, rec := range records {
		if rec.Date != date || !strings.EqualFold(rec.ClassYear, classYear) {
			continue
		}
		i, ok := index[rec.Period]
		if !ok {
			continue
		}
		if !merged[i].Changed {
			merged[i].OriginalSubject = merged[i].Subject
		}
		merged[i].Subject = rec.NewSubject
		merged[i].Changed = true
		merged[i].Description = rec.Description
	}

	return merged
}
