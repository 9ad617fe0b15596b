package change

import (
	"crypto/sha1"
	"fmt"
	"strconv"
)

// ClassInfo identifies a grade/track combination
type ClassInfo struct {
	Year  int    `json:"year"`  // 1, 2, or 3
	Track string `json:"track"` // "F" or "M"
}

// ClassYear returns the concatenated grade/track identifier, e.g. "1F"
func (c ClassInfo) ClassYear() string {
	return strconv.Itoa(c.Year) + c.Track
}

// AllClasses returns the six valid grade/track combinations in display order
func AllClasses() []ClassInfo {
	classes := make([]ClassInfo, 0, 6)
	for year := 1; year <= 3; year++ {
		for _, track := range []string{"F", "M"} {
			classes = append(classes, ClassInfo{Year: year, Track: track})
		}
	}
	return classes
}

// Record represents one (date, class, period) schedule override
type Record struct {
	Date        string `json:"date" csv:"date"`
	ClassYear   string `json:"classYear" csv:"class_year"`
	Period      int    `json:"period" csv:"period"`
	Day         string `json:"day" csv:"day"` // reserved for the viewer; always empty here
	NewSubject  string `json:"newSubject" csv:"new_subject"`
	Description string `json:"description" csv:"description"`
}

// Key creates a deterministic identifier for a record based on stable fields.
// The description is excluded so that rewording an announcement does not
// register every record it produced as new.
func (r *Record) Key() string {
	h := sha1.New()
	fmt.Fprintf(h, "%s|%s|%d|%s", r.Date, r.ClassYear, r.Period, r.NewSubject)
	return fmt.Sprintf("%x", h.Sum(nil))
}
