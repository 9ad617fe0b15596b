package parser

import (
	"strconv"
	"strings"

	"github.com/shoji1021/classroom/internal/change"
)

// Resolved associates one class with the periods and subject extracted from a
// class-scoped portion of an announcement. An empty Periods slice means the
// change applies to every period of the day.
type Resolved struct {
	Class   change.ClassInfo
	Periods []int
	Subject string
}

// Announcements containing these keywords affect every class regardless of
// any explicit grade/track markers also present.
var wholeSchoolKeywords = []string{"全学年", "全校"}

// Event keywords that imply a whole-school change when the announcement names
// no class at all.
var eventKeywords = []string{"卒業式", "進路", "式典", "行事"}

// EventSubject labels whole-school changes with no recognizable subject
const EventSubject = "行事等"

// ResolveSegments splits a normalized announcement into class-scoped segments
// and attributes each segment's periods and subject to the active class
// context. Class markers switch the context; prose between markers belongs to
// the most recent one. Text before the first marker cannot be attributed and
// is skipped.
func ResolveSegments(normalized string) []Resolved {
	classes := FindClasses(normalized)

	if isWholeSchool(normalized, len(classes)) {
		return resolveWholeSchool(normalized)
	}

	resolved := make([]Resolved, 0, len(classes))
	marks := classPattern.FindAllStringIndex(normalized, -1)

	for i, mark := range marks {
		active, ok := ParseClass(normalized[mark[0]:mark[1]])
		if !ok {
			continue
		}

		end := len(normalized)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		segment := normalized[mark[1]:end]

		resolved = append(resolved, resolveSegment(active, segment)...)
	}

	return resolved
}

// resolveSegment extracts (period, subject) pairs from one class-scoped
// segment. A segment with residual text but no period marker degrades to
// "all periods" instead of being dropped: a false positive is less harmful
// here than silently hiding a real change.
func resolveSegment(active change.ClassInfo, segment string) []Resolved {
	pairs := periodSubjectPattern.FindAllStringSubmatch(segment, -1)
	if len(pairs) > 0 {
		resolved := make([]Resolved, 0, len(pairs))
		for _, pair := range pairs {
			period, _ := strconv.Atoi(pair[1])
			resolved = append(resolved, Resolved{
				Class:   active,
				Periods: []int{period},
				Subject: pairSubject(pair[2]),
			})
		}
		return resolved
	}

	if strings.TrimFunc(segment, isSeparator) == "" {
		return nil
	}
	return []Resolved{{Class: active, Subject: ParseSubject(segment)}}
}

// pairSubject extracts the subject from the text a period marker introduces
func pairSubject(text string) string {
	if s, ok := knownSubjectIn(text); ok {
		return s
	}
	if tok := firstToken(text); tok != "" {
		return tok
	}
	return FallbackSubject
}

// isWholeSchool reports whether the announcement bypasses per-class
// segmentation. Whole-school keywords always win; event keywords only count
// when the text names no class.
func isWholeSchool(normalized string, classCount int) bool {
	for _, kw := range wholeSchoolKeywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	if classCount > 0 {
		return false
	}
	for _, kw := range eventKeywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// resolveWholeSchool forces the active class set to all six grade/track
// combinations, all periods
func resolveWholeSchool(normalized string) []Resolved {
	subject := EventSubject
	if s, ok := knownSubjectIn(normalized); ok {
		subject = s
	}

	all := change.AllClasses()
	resolved := make([]Resolved, 0, len(all))
	for _, c := range all {
		resolved = append(resolved, Resolved{Class: c, Subject: subject})
	}
	return resolved
}
