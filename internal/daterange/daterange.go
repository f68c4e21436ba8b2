// Package daterange parses calendar dates and times of day strictly and
// enforces the nesting rules of the trip hierarchy: a city's interval lies
// inside its trip's, and an activity's date lies inside its city's.
//
// Dates compare as calendar days. No timezone arithmetic is involved.
package daterange

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

var (
	datePattern  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	clockPattern = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?$`)
)

// ParseDate parses a canonical YYYY-MM-DD string. Surrounding whitespace
// and calendar-invalid dates such as 2026-02-31 are rejected.
func ParseDate(field, s string) (model.Date, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return model.Date{}, apperr.Invalid("%s must be a date in YYYY-MM-DD form", field)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if year < 1 || month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) {
		return model.Date{}, apperr.Invalid("%s is not a valid calendar date: %q", field, s)
	}
	return model.NewDate(year, time.Month(month), day), nil
}

// ParseClock parses HH:MM or HH:MM:SS on a 24-hour clock.
func ParseClock(field, s string) (model.Clock, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return model.Clock{}, apperr.Invalid("%s must be a time in HH:MM form", field)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second := 0
	if m[3] != "" {
		second, _ = strconv.Atoi(m[3])
	}
	if hour > 23 || minute > 59 || second > 59 {
		return model.Clock{}, apperr.Invalid("%s is not a valid time of day: %q", field, s)
	}
	return model.Clock{Hour: hour, Minute: minute, Second: second}, nil
}

// ParseOptionalClock parses s when present. Nil or blank yields nil.
func ParseOptionalClock(field string, s *string) (*model.Clock, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	c, err := ParseClock(field, *s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// AssertOrdered fails with InvalidRange when start is after end.
func AssertOrdered(what string, start, end model.Date) error {
	if start.After(end) {
		return apperr.Range("%s start date %s is after end date %s", what, start, end)
	}
	return nil
}

// AssertNested fails with InvalidRange when the child interval is inverted
// or not fully inside the parent interval. Bounds are inclusive.
func AssertNested(childStart, childEnd, parentStart, parentEnd model.Date) error {
	if err := AssertOrdered("child", childStart, childEnd); err != nil {
		return err
	}
	if childStart.Before(parentStart) || childEnd.After(parentEnd) {
		return apperr.Range(
			"range %s to %s is outside %s to %s",
			childStart, childEnd, parentStart, parentEnd,
		)
	}
	return nil
}

// AssertWithin fails with InvalidRange when day lies outside [start, end].
func AssertWithin(day, start, end model.Date) error {
	return AssertNested(day, day, start, end)
}

// AssertTimeOrder fails with InvalidRange when both times are present and
// start is not strictly before end.
func AssertTimeOrder(start, end *model.Clock) error {
	if start == nil || end == nil {
		return nil
	}
	if start.Compare(*end) >= 0 {
		return apperr.Range("start time %s must be before end time %s", start, end)
	}
	return nil
}

// MonthBounds returns the first day of the month and the first day of the
// following month, rolling December over into January of the next year.
func MonthBounds(year int, month time.Month) (first, next model.Date) {
	first = model.NewDate(year, month, 1)
	if month == time.December {
		return first, model.NewDate(year+1, time.January, 1)
	}
	return first, model.NewDate(year, month+1, 1)
}

func daysIn(year int, month time.Month) int {
	first, next := MonthBounds(year, month)
	return int(next.Time().Sub(first.Time()).Hours() / 24)
}
