package timetable

import (
	"testing"

	"github.com/shoji1021/classroom/internal/change"
)

func baseDay() []Slot {
	return []Slot{
		{Period: 1, Subject: "国語", Location: "101"},
		{Period: 2, Subject: "数学", Location: "101"},
		{Period: 3, Subject: "英語", Location: "102"},
		{Period: 4, Subject: "体育", Location: "体育館"},
	}
}

func TestMergeAppliesMatchingRecord(t *testing.T) {
	records := []*change.Record{
		{Date: "2026-02-18", ClassYear: "1F", Period: 3, NewSubject: "自宅学習", Description: "src"},
	}

	merged := Merge(baseDay(), "1F", "2026-02-18", records)

	if len(merged) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(merged))
	}
	slot := merged[2]
	if !slot.Changed {
		t.Error("period 3 should be marked changed")
	}
	if slot.Subject != "自宅学習" || slot.OriginalSubject != "英語" {
		t.Errorf("period 3 = %q (was %q), expected 自宅学習 over 英語", slot.Subject, slot.OriginalSubject)
	}
	if slot.Description != "src" {
		t.Errorf("description = %q, expected source text", slot.Description)
	}

	for _, i := range []int{0, 1, 3} {
		if merged[i].Changed {
			t.Errorf("slot %d should be untouched", i)
		}
	}
}

func TestMergeIgnoresOtherClassesAndDates(t *testing.T) {
	records := []*change.Record{
		{Date: "2026-02-18", ClassYear: "2M", Period: 1, NewSubject: "a"},
		{Date: "2026-02-19", ClassYear: "1F", Period: 2, NewSubject: "b"},
	}

	merged := Merge(baseDay(), "1F", "2026-02-18", records)

	for i, slot := range merged {
		if slot.Changed {
			t.Errorf("slot %d should not have changed", i)
		}
	}
}

func TestMergeIgnoresUnknownPeriod(t *testing.T) {
	records := []*change.Record{
		{Date: "2026-02-18", ClassYear: "1F", Period: 6, NewSubject: "a"},
	}

	merged := Merge(baseDay(), "1F", "2026-02-18", records)

	if len(merged) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(merged))
	}
	for i, slot := range merged {
		if slot.Changed {
			t.Errorf("slot %d should not have changed", i)
		}
	}
}

func TestMergeKeepsOriginalSubjectAcrossOverwrites(t *testing.T) {
	records := []*change.Record{
		{Date: "2026-02-18", ClassYear: "1F", Period: 2, NewSubject: "first"},
		{Date: "2026-02-18", ClassYear: "1F", Period: 2, NewSubject: "second"},
	}

	merged := Merge(baseDay(), "1F", "2026-02-18", records)

	slot := merged[1]
	if slot.Subject != "second" {
		t.Errorf("subject = %q, expected the later record to win", slot.Subject)
	}
	if slot.OriginalSubject != "数学" {
		t.Errorf("originalSubject = %q, expected the base subject", slot.OriginalSubject)
	}
}

func TestMergeDoesNotMutateBase(t *testing.T) {
	base := baseDay()
	records := []*change.Record{
		{Date: "2026-02-18", ClassYear: "1F", Period: 1, NewSubject: "a"},
	}

	Merge(base, "1F", "2026-02-18", records)

	if base[0].Subject != "国語" {
		t.Errorf("base slot mutated: %q", base[0].Subject)
	}
}

func TestMergeCaseInsensitiveClass(t *testing.T) {
	records := []*change.Record{
		{Date: "2026-02-18", ClassYear: "1F", Period: 1, NewSubject: "a"},
	}

	merged := Merge(baseDay(), "1f", "2026-02-18", records)

	if !merged[0].Changed {
		t.Error("class matching should be case-insensitive")
	}
}
