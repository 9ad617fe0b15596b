package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	sameMonthRange  = regexp.MustCompile(`^(\d{1,2})月(\d{1,2})日-(\d{1,2})日$`)
	crossMonthRange = regexp.MustCompile(`^(\d{1,2})月(\d{1,2})日-(\d{1,2})月(\d{1,2})日$`)
	wholeMonth      = regexp.MustCompile(`^(\d{1,2})月$`)
	singleDay       = regexp.MustCompile(`^(\d{1,2})月(\d{1,2})日$`)
)

// ParseDateRange parses a compact date-range expression into inclusive
// from/to bounds in YYYY-MM-DD form, anchored to the reference year.
//
// Supported formats:
//   - "2月1日-15日" - same month, different days
//   - "2月28日-3月2日" - different months (end month before start rolls into the next year)
//   - "2月" - entire month
//   - "2月18日" - single day
//
// The input must already be normalized to ASCII digits.
// Unlike announcement dates, range bounds are user-entered query syntax and
// are validated: months must be 1-12 and days 1-31.
func ParseDateRange(input string, referenceYear int) (string, string, error) {
	if input == "" {
		return "", "", fmt.Errorf("date range cannot be empty")
	}

	if m := sameMonthRange.FindStringSubmatch(input); m != nil {
		month, err := parseMonth(m[1])
		if err != nil {
			return "", "", err
		}
		day1, err := parseDay(m[2])
		if err != nil {
			return "", "", err
		}
		day2, err := parseDay(m[3])
		if err != nil {
			return "", "", err
		}
		if day1 > day2 {
			return "", "", fmt.Errorf("start date must be before end date")
		}
		return formatDate(referenceYear, month, day1), formatDate(referenceYear, month, day2), nil
	}

	if m := crossMonthRange.FindStringSubmatch(input); m != nil {
		month1, err := parseMonth(m[1])
		if err != nil {
			return "", "", err
		}
		day1, err := parseDay(m[2])
		if err != nil {
			return "", "", err
		}
		month2, err := parseMonth(m[3])
		if err != nil {
			return "", "", err
		}
		day2, err := parseDay(m[4])
		if err != nil {
			return "", "", err
		}

		// An end month before the start month rolls into the next year
		year2 := referenceYear
		if month2 < month1 {
			year2++
		}

		from := formatDate(referenceYear, month1, day1)
		to := formatDate(year2, month2, day2)
		if from > to {
			return "", "", fmt.Errorf("start date must be before end date")
		}
		return from, to, nil
	}

	if m := wholeMonth.FindStringSubmatch(input); m != nil {
		month, err := parseMonth(m[1])
		if err != nil {
			return "", "", err
		}
		lastDay := time.Date(referenceYear, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
		return formatDate(referenceYear, month, 1), formatDate(referenceYear, month, lastDay), nil
	}

	if m := singleDay.FindStringSubmatch(input); m != nil {
		month, err := parseMonth(m[1])
		if err != nil {
			return "", "", err
		}
		day, err := parseDay(m[2])
		if err != nil {
			return "", "", err
		}
		date := formatDate(referenceYear, month, day)
		return date, date, nil
	}

	return "", "", fmt.Errorf("invalid date range format. Use '2月1日-15日', '2月28日-3月2日', '2月18日', or '2月'")
}

func parseMonth(s string) (int, error) {
	month, err := strconv.Atoi(s)
	if err != nil || month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid month: %s", s)
	}
	return month, nil
}

func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil || day < 1 || day > 31 {
		return 0, fmt.Errorf("invalid day: %s", s)
	}
	return day, nil
}

func formatDate(year, month, day int) string {
	return fmt.Sprintf("%d-%02d-%02d", year, month, day)
}
