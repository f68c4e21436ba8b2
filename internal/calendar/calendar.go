// Package calendar groups a trip's activities by calendar date for month,
// day and range views.
package calendar

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/daterange"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/itinerary"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

// Entry is one activity on a calendar day. Cost and Notes are only filled
// for day-level queries.
type Entry struct {
	ActivityID      string           `json:"activity_id"`
	Name            string           `json:"name"`
	Category        model.Category   `json:"category"`
	CityID          string           `json:"city_id"`
	CityName        string           `json:"city_name"`
	StartTime       *model.Clock     `json:"start_time"`
	EndTime         *model.Clock     `json:"end_time"`
	DurationMinutes *int             `json:"duration_minutes"`
	Cost            *decimal.Decimal `json:"cost,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// Day is every activity on one date.
type Day struct {
	Date       model.Date `json:"date"`
	Activities []Entry    `json:"activities"`
}

// Window is an inclusive date range.
type Window struct {
	From model.Date
	To   model.Date
}

// Contains reports whether d lies inside the window.
func (w Window) Contains(d model.Date) bool {
	return !d.Before(w.From) && !d.After(w.To)
}

// MonthWindow returns the window covering one calendar month.
func MonthWindow(year int, month int) (Window, error) {
	if month < 1 || month > 12 {
		return Window{}, apperr.Invalid("month must be between 1 and 12, got %d", month)
	}
	if year < 1 || year > 9999 {
		return Window{}, apperr.Invalid("year %d is out of range", year)
	}
	first, next := daterange.MonthBounds(year, time.Month(month))
	return Window{From: first, To: next.AddDays(-1)}, nil
}

// RangeWindow validates an explicit inclusive range.
func RangeWindow(from, to model.Date) (Window, error) {
	if err := daterange.AssertOrdered("calendar", from, to); err != nil {
		return Window{}, err
	}
	return Window{From: from, To: to}, nil
}

// Duration returns end minus start in whole minutes when both are present
// and end is not before start.
func Duration(start, end *model.Clock) *int {
	if start == nil || end == nil || end.Compare(*start) < 0 {
		return nil
	}
	minutes := (end.Seconds() - start.Seconds()) / 60
	return &minutes
}

// Group buckets activities inside w by date, ascending. Within a day,
// activities keep itinerary order. detailed adds cost and notes.
func Group(w Window, cities []model.City, activities []model.Activity, detailed bool) []Day {
	names := make(map[string]string, len(cities))
	for _, c := range cities {
		names[c.ID] = c.Name
	}

	inWindow := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if w.Contains(a.Date) {
			inWindow = append(inWindow, a)
		}
	}
	itinerary.SortActivities(inWindow)

	var days []Day
	for _, a := range inWindow {
		if len(days) == 0 || !days[len(days)-1].Date.Equal(a.Date) {
			days = append(days, Day{Date: a.Date})
		}
		e := Entry{
			ActivityID:      a.ID,
			Name:            a.Name,
			Category:        a.Category,
			CityID:          a.CityID,
			CityName:        names[a.CityID],
			StartTime:       a.StartTime,
			EndTime:         a.EndTime,
			DurationMinutes: Duration(a.StartTime, a.EndTime),
		}
		if detailed {
			cost := a.Cost
			e.Cost = &cost
			e.Notes = a.Notes
		}
		last := &days[len(days)-1]
		last.Activities = append(last.Activities, e)
	}
	if days == nil {
		days = []Day{}
	}
	return days
}
