package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shoji1021/classroom/internal/change"
)

var (
	// Grade digit optionally separated from the track letter, e.g. "1F", "2/m", "3 F"
	classPattern = regexp.MustCompile(`(?i)([1-3])[/\s]?([FM])`)

	// "<month>月<day>日" with 1-2 digit fields
	datePattern = regexp.MustCompile(`(\d{1,2})月(\d{1,2})日`)

	// Period markers like "3h" or "3 h"
	periodPattern = regexp.MustCompile(`(?i)([1-6])\s*h`)

	// A period marker followed by the text it introduces, e.g. "1h 英語"
	periodSubjectPattern = regexp.MustCompile(`(?i)([1-6])\s*h\s*([^1-6]*)`)
)

// FallbackSubject labels a segment where no subject text could be recognized
const FallbackSubject = "授業変更"

// knownSubjects are matched as whole keywords before falling back to
// positional extraction. Order matters: 卒業式予行 must be checked before 卒業式.
var knownSubjects = []string{"自宅学習", "進路ガイダンス", "卒業式予行", "卒業式", "LHR"}

// ParseClass returns the first grade/track marker in text.
// The second return value is false when no marker is present.
func ParseClass(text string) (change.ClassInfo, bool) {
	m := classPattern.FindStringSubmatch(text)
	if m == nil {
		return change.ClassInfo{}, false
	}
	year, _ := strconv.Atoi(m[1])
	return change.ClassInfo{Year: year, Track: strings.ToUpper(m[2])}, true
}

// FindClasses returns all distinct grade/track markers in text, in order of
// first appearance, deduplicated by (year, track).
func FindClasses(text string) []change.ClassInfo {
	classes := make([]change.ClassInfo, 0)
	seen := make(map[change.ClassInfo]bool)
	for _, m := range classPattern.FindAllStringSubmatch(text, -1) {
		year, _ := strconv.Atoi(m[1])
		c := change.ClassInfo{Year: year, Track: strings.ToUpper(m[2])}
		if !seen[c] {
			seen[c] = true
			classes = append(classes, c)
		}
	}
	return classes
}

// ParseDate extracts a "<month>月<day>日" pattern and combines it with the
// reference year into a YYYY-MM-DD string. Returns "" when no pattern matches.
// Month and day are treated as plain two-digit fields with no calendar
// validation: "13月40日" yields "<year>-13-40".
func ParseDate(text string, referenceYear int) string {
	m := datePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%d-%02d-%02d", referenceYear, month, day)
}

// ParsePeriods collects the distinct period digits from all "<digit>h"
// markers, ascending. Returns an empty slice when no marker is present;
// the caller decides whether that means "all periods".
func ParsePeriods(text string) []int {
	seen := make(map[int]bool)
	periods := make([]int, 0)
	for _, m := range periodPattern.FindAllStringSubmatch(text, -1) {
		p, _ := strconv.Atoi(m[1])
		if !seen[p] {
			seen[p] = true
			periods = append(periods, p)
		}
	}
	sort.Ints(periods)
	return periods
}

// ParseSubject extracts the replacement subject from a segment. Known subject
// keywords win over positional extraction; otherwise the first word after the
// last period marker is used, and FallbackSubject when nothing remains.
func ParseSubject(segment string) string {
	if s, ok := knownSubjectIn(segment); ok {
		return s
	}

	rest := segment
	if locs := periodPattern.FindAllStringIndex(segment, -1); len(locs) > 0 {
		rest = segment[locs[len(locs)-1][1]:]
	}
	if tok := firstToken(rest); tok != "" {
		return tok
	}
	return FallbackSubject
}

// knownSubjectIn reports the first known subject keyword contained in text
func knownSubjectIn(text string) (string, bool) {
	for _, s := range knownSubjects {
		if strings.Contains(text, s) {
			return s, true
		}
	}
	return "", false
}

// firstToken returns the first run of text up to a whitespace or comma
// boundary, or "" when the text is all separators
func firstToken(text string) string {
	for _, tok := range strings.FieldsFunc(text, isSeparator) {
		return tok
	}
	return ""
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '　' || r == '\t' || r == '\n' || r == '\r'
}
