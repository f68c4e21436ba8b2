// Package itinerary projects the flat city ⟕ activity join of a trip into
// the city-wise and day-wise read models.
//
// City-wise is city-driven: every city appears, in order_index order, even
// with no activities. Day-wise is activity-driven: one group per
// (activity date, city), so a day spent in two cities yields two groups.
package itinerary

import (
	"sort"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

// Options controls how activities are surfaced.
type Options struct {
	// ReadOnly marks every activity non-editable, as for shared trips.
	ReadOnly bool
}

// Full computes both views from the same rows.
func Full(rows []model.ItineraryRow, opts Options) model.Itinerary {
	return model.Itinerary{
		DayWise:  DayWise(rows),
		CityWise: CityWise(rows, opts),
	}
}

type cityBucket struct {
	city       model.City
	activities []model.Activity
}

// bucket groups rows by city, dropping duplicate activity rows and keeping
// cities in order_index order.
func bucket(rows []model.ItineraryRow) []*cityBucket {
	byID := make(map[string]*cityBucket)
	var order []*cityBucket
	seen := make(map[string]bool)

	for _, r := range rows {
		b, ok := byID[r.City.ID]
		if !ok {
			b = &cityBucket{city: r.City}
			byID[r.City.ID] = b
			order = append(order, b)
		}
		if r.Activity == nil || seen[r.Activity.ID] {
			continue
		}
		seen[r.Activity.ID] = true
		b.activities = append(b.activities, *r.Activity)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].city.OrderIndex < order[j].city.OrderIndex
	})
	for _, b := range order {
		SortActivities(b.activities)
	}
	return order
}

// SortActivities orders by date, then start time with untimed activities
// last, then creation time.
func SortActivities(activities []model.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		a, b := activities[i], activities[j]
		if c := a.Date.Compare(b.Date); c != 0 {
			return c < 0
		}
		if c := model.CompareOptionalClocks(a.StartTime, b.StartTime); c != 0 {
			return c < 0
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

// CityWise groups activities under their city.
func CityWise(rows []model.ItineraryRow, opts Options) []model.CityGroup {
	buckets := bucket(rows)
	out := make([]model.CityGroup, 0, len(buckets))
	for _, b := range buckets {
		views := make([]model.ActivityView, 0, len(b.activities))
		for _, a := range b.activities {
			views = append(views, model.NewActivityView(a, !opts.ReadOnly))
		}
		out = append(out, model.CityGroup{
			CityID:     b.city.ID,
			CityName:   b.city.Name,
			Country:    b.city.Country,
			DateRange:  b.city.StartDate.String() + " to " + b.city.EndDate.String(),
			Activities: views,
		})
	}
	return out
}

// DayWise groups activities by (date, city), sorted by date and then by
// the city's order_index.
func DayWise(rows []model.ItineraryRow) []model.DayGroup {
	type key struct {
		date   string
		cityID string
	}
	type dayBucket struct {
		group      model.DayGroup
		orderIndex int
	}

	groups := make(map[key]*dayBucket)
	var order []*dayBucket
	for _, b := range bucket(rows) {
		for _, a := range b.activities {
			k := key{date: a.Date.String(), cityID: b.city.ID}
			g, ok := groups[k]
			if !ok {
				g = &dayBucket{
					group: model.DayGroup{
						Date:   a.Date,
						CityID: b.city.ID,
						City:   b.city.Name,
					},
					orderIndex: b.city.OrderIndex,
				}
				groups[k] = g
				order = append(order, g)
			}
			g.group.Activities = append(g.group.Activities, model.DayEntry{
				ActivityID:   a.ID,
				ActivityName: a.Name,
				StartTime:    a.StartTime,
				EndTime:      a.EndTime,
				Cost:         a.Cost,
			})
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if c := order[i].group.Date.Compare(order[j].group.Date); c != 0 {
			return c < 0
		}
		return order[i].orderIndex < order[j].orderIndex
	})

	out := make([]model.DayGroup, 0, len(order))
	for _, g := range order {
		out = append(out, g.group)
	}
	return out
}
