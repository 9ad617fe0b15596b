package calendar

import (
	"strings"
	"testing"

	"github.com/shoji1021/classroom/internal/change"
)

func TestGenerateICS(t *testing.T) {
	rec := &change.Record{
		Date:        "2026-02-18",
		ClassYear:   "1F",
		Period:      3,
		NewSubject:  "自宅学習",
		Description: "2月18日 1F 3h 自宅学習",
	}

	ics := GenerateICS([]*change.Record{rec})

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//classroom//schedule-changes//JA",
		"BEGIN:VEVENT",
		"UID:" + rec.Key() + "@classroom",
		"DTSTAMP:",
		"DTSTART:20260218T105000Z", // period 3 on the bell schedule
		"DTEND:20260218T114000Z",
		"SUMMARY:1F 3限 自宅学習",
		"DESCRIPTION:2月18日 1F 3h 自宅学習",
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	for _, field := range requiredFields {
		if !strings.Contains(ics, field) {
			t.Errorf("ICS output missing %q", field)
		}
	}
}

func TestGenerateICSMultipleEvents(t *testing.T) {
	records := []*change.Record{
		{Date: "2026-02-18", ClassYear: "1F", Period: 1, NewSubject: "数学"},
		{Date: "2026-02-18", ClassYear: "2M", Period: 2, NewSubject: "英語"},
	}

	ics := GenerateICS(records)

	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("expected 2 VEVENTs, got %d", got)
	}
	if got := strings.Count(ics, "BEGIN:VCALENDAR"); got != 1 {
		t.Errorf("expected a single VCALENDAR, got %d", got)
	}
}

func TestGenerateICSSkipsMalformedDates(t *testing.T) {
	records := []*change.Record{
		{Date: "2026-13-40", ClassYear: "1F", Period: 1, NewSubject: "数学"},
	}

	ics := GenerateICS(records)

	if strings.Contains(ics, "BEGIN:VEVENT") {
		t.Error("malformed date should not produce a VEVENT")
	}
	if !strings.Contains(ics, "END:VCALENDAR") {
		t.Error("feed should still be a valid calendar")
	}
}

func TestGenerateICSAllDayEvent(t *testing.T) {
	records := []*change.Record{
		{Date: "2026-02-18", ClassYear: "1F", Period: 0, NewSubject: "行事等"},
	}

	ics := GenerateICS(records)

	if !strings.Contains(ics, "DTSTART;VALUE=DATE:20260218") {
		t.Error("out-of-schedule period should become an all-day event")
	}
	if strings.Contains(ics, "DTEND:") {
		t.Error("all-day events should not carry DTEND")
	}
}

func TestEscapeICS(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a,b", "a\\,b"},
		{"a;b", "a\\;b"},
		{"a\\b", "a\\\\b"},
		{"a\nb", "a\\nb"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := escapeICS(tt.input); got != tt.expected {
			t.Errorf("escapeICS(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
