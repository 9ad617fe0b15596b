package parser

import (
	"testing"

	"github.com/shoji1021/classroom/internal/change"
)

func TestResolveSegmentsSingleClass(t *testing.T) {
	resolved := ResolveSegments("2月18日 1F 3h 自宅学習")

	if len(resolved) != 1 {
		t.Fatalf("expected 1 resolved segment, got %d", len(resolved))
	}
	r := resolved[0]
	if r.Class != (change.ClassInfo{Year: 1, Track: "F"}) {
		t.Errorf("expected class 1F, got %+v", r.Class)
	}
	if len(r.Periods) != 1 || r.Periods[0] != 3 {
		t.Errorf("expected periods [3], got %v", r.Periods)
	}
	if r.Subject != "自宅学習" {
		t.Errorf("expected subject 自宅学習, got %q", r.Subject)
	}
}

func TestResolveSegmentsMultipleClasses(t *testing.T) {
	resolved := ResolveSegments("2月20日 1F 2h 数学,2M 3h 英語")

	if len(resolved) != 2 {
		t.Fatalf("expected 2 resolved segments, got %d", len(resolved))
	}

	if resolved[0].Class.ClassYear() != "1F" || resolved[0].Subject != "数学" {
		t.Errorf("first segment = %+v, expected 1F 数学", resolved[0])
	}
	if resolved[1].Class.ClassYear() != "2M" || resolved[1].Subject != "英語" {
		t.Errorf("second segment = %+v, expected 2M 英語", resolved[1])
	}
	// Neither subject contaminates the other
	if resolved[0].Subject == resolved[1].Subject {
		t.Error("segments should carry distinct subjects")
	}
}

func TestResolveSegmentsContextPersists(t *testing.T) {
	// Two period/subject pairs under a single class context
	resolved := ResolveSegments("2月20日 1F 2h 数学 と 4h 英語")

	if len(resolved) != 2 {
		t.Fatalf("expected 2 resolved segments, got %d", len(resolved))
	}
	for _, r := range resolved {
		if r.Class.ClassYear() != "1F" {
			t.Errorf("expected class 1F for all segments, got %s", r.Class.ClassYear())
		}
	}
	if resolved[0].Periods[0] != 2 || resolved[1].Periods[0] != 4 {
		t.Errorf("expected periods 2 and 4, got %v and %v", resolved[0].Periods, resolved[1].Periods)
	}
}

func TestResolveSegmentsNoContextSkipped(t *testing.T) {
	// Period markers before any class marker cannot be attributed
	resolved := ResolveSegments("2月20日 3h 数学")

	if len(resolved) != 0 {
		t.Errorf("expected no resolved segments without class context, got %d", len(resolved))
	}
}

func TestResolveSegmentsFallbackAllPeriods(t *testing.T) {
	// Residual text with a class context but no period marker applies all day
	resolved := ResolveSegments("2月20日 1F 清掃")

	if len(resolved) != 1 {
		t.Fatalf("expected 1 resolved segment, got %d", len(resolved))
	}
	if len(resolved[0].Periods) != 0 {
		t.Errorf("expected empty periods (all-day), got %v", resolved[0].Periods)
	}
	if resolved[0].Subject != "清掃" {
		t.Errorf("expected subject 清掃, got %q", resolved[0].Subject)
	}
}

func TestResolveSegmentsWholeSchool(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		subject string
	}{
		{"home study", "2月18日 全学年 自宅学習", "自宅学習"},
		{"generic event", "2月18日 全校集会", EventSubject},
		{"whole school wins over class markers", "2月18日 全学年 1F 3h 数学", EventSubject},
		{"classless event keyword", "2月25日 卒業式", "卒業式"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := ResolveSegments(tt.text)

			if len(resolved) != 6 {
				t.Fatalf("expected all 6 classes, got %d segments", len(resolved))
			}

			seen := make(map[string]bool)
			for _, r := range resolved {
				seen[r.Class.ClassYear()] = true
				if len(r.Periods) != 0 {
					t.Errorf("whole-school segments should cover all periods, got %v", r.Periods)
				}
				if r.Subject != tt.subject {
					t.Errorf("expected subject %q, got %q", tt.subject, r.Subject)
				}
			}
			for _, c := range change.AllClasses() {
				if !seen[c.ClassYear()] {
					t.Errorf("class %s missing from whole-school resolution", c.ClassYear())
				}
			}
		})
	}
}
