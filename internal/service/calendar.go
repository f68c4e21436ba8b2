package service

import (
	"context"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/calendar"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/daterange"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/store"
)

// CalendarMonth returns the trip's activities in the given month, grouped
// by day. Cost and notes are omitted.
func (p *Planner) CalendarMonth(ctx context.Context, userID, tripID string, year, month int) ([]calendar.Day, error) {
	w, err := calendar.MonthWindow(year, month)
	if err != nil {
		return nil, err
	}
	return p.calendar(ctx, userID, tripID, w, false)
}

// CalendarDay returns the activities of a single day with cost and notes.
func (p *Planner) CalendarDay(ctx context.Context, userID, tripID, date string) ([]calendar.Day, error) {
	d, err := daterange.ParseDate("date", date)
	if err != nil {
		return nil, err
	}
	return p.calendar(ctx, userID, tripID, calendar.Window{From: d, To: d}, true)
}

// CalendarRange returns the activities between from and to inclusive,
// grouped by day.
func (p *Planner) CalendarRange(ctx context.Context, userID, tripID, from, to string) ([]calendar.Day, error) {
	start, err := daterange.ParseDate("from", from)
	if err != nil {
		return nil, err
	}
	end, err := daterange.ParseDate("to", to)
	if err != nil {
		return nil, err
	}
	w, err := calendar.RangeWindow(start, end)
	if err != nil {
		return nil, err
	}
	return p.calendar(ctx, userID, tripID, w, false)
}

func (p *Planner) calendar(ctx context.Context, userID, tripID string, w calendar.Window, detailed bool) ([]calendar.Day, error) {
	if _, err := p.ownedTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}
	cities, err := p.store.ListCities(ctx, tripID)
	if err != nil {
		return nil, err
	}
	activities, err := p.store.ListActivities(ctx, tripID, store.ActivityFilter{From: &w.From, To: &w.To})
	if err != nil {
		return nil, err
	}
	return calendar.Group(w, cities, activities, detailed), nil
}
