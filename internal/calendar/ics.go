package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/shoji1021/classroom/internal/change"
)

// Bell schedule: period 1 starts at 08:50, periods are 50 minutes on a
// one-hour stride
const (
	firstPeriodHour   = 8
	firstPeriodMinute = 50
	periodLength      = 50 * time.Minute
	periodStride      = time.Hour
)

// GenerateICS renders change records as an iCalendar feed, one VEVENT per
// record. Records whose date cannot be parsed are skipped; records with a
// period outside the bell schedule become all-day events.
func GenerateICS(records []*change.Record) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//classroom//schedule-changes//JA\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	now := time.Now().UTC()
	for _, rec := range records {
		day, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			continue
		}
		writeEvent(&ics, rec, day, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// writeEvent renders one record as a VEVENT
func writeEvent(ics *strings.Builder, rec *change.Record, day, stamp time.Time) {
	ics.WriteString("BEGIN:VEVENT\r\n")

	fmt.Fprintf(ics, "UID:%s@classroom\r\n", rec.Key())
	fmt.Fprintf(ics, "DTSTAMP:%s\r\n", formatICSTime(stamp))

	if rec.Period >= 1 && rec.Period <= 6 {
		start := time.Date(day.Year(), day.Month(), day.Day(), firstPeriodHour, firstPeriodMinute, 0, 0, time.UTC).
			Add(time.Duration(rec.Period-1) * periodStride)
		fmt.Fprintf(ics, "DTSTART:%s\r\n", formatICSTime(start))
		fmt.Fprintf(ics, "DTEND:%s\r\n", formatICSTime(start.Add(periodLength)))
	} else {
		fmt.Fprintf(ics, "DTSTART;VALUE=DATE:%s\r\n", day.Format("20060102"))
	}

	summary := fmt.Sprintf("%s %d限 %s", rec.ClassYear, rec.Period, rec.NewSubject)
	fmt.Fprintf(ics, "SUMMARY:%s\r\n", escapeICS(summary))

	if rec.Description != "" {
		fmt.Fprintf(ics, "DESCRIPTION:%s\r\n", escapeICS(rec.Description))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
