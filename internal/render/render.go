// Package render formats trips, itineraries, budgets and calendars as
// styled terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/budget"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/calendar"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/theme"
)

func money(d decimal.Decimal, currency string) string {
	return d.StringFixed(2) + " " + currency
}

func timeSpan(start, end *model.Clock) string {
	switch {
	case start != nil && end != nil:
		return start.String() + "-" + end.String()
	case start != nil:
		return start.String()
	case end != nil:
		return "-" + end.String()
	default:
		return "--:--"
	}
}

func field(label, value string) string {
	return theme.LabelStyle.Render(label) + value
}

// Trips renders a table of trips.
func Trips(trips []model.Trip) string {
	if len(trips) == 0 {
		return theme.MutedStyle.Render("No trips yet.")
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.ColorBorder)).
		Headers("ID", "NAME", "DATES", "STATUS", "SHARED")
	for _, trip := range trips {
		shared := "no"
		if trip.IsPublic {
			shared = "yes"
		}
		t.Row(trip.ID, trip.Name, trip.StartDate.String()+" to "+trip.EndDate.String(), string(trip.Status), shared)
	}
	return t.String()
}

// Trip renders a trip header followed by its cities.
func Trip(trip model.Trip, cities []model.City) string {
	var sections []string

	badges := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.HeaderStyle.Render(trip.Name),
		" ",
		theme.TripStatusStyle(trip.Status).Render(string(trip.Status)),
	)
	if trip.IsPublic {
		badges = lipgloss.JoinHorizontal(lipgloss.Top, badges, theme.ShareStyle(true).Render("public"))
	}
	sections = append(sections, badges, "")

	if trip.ID != "" {
		sections = append(sections, field("ID:", trip.ID))
	}
	sections = append(sections, field("Dates:", trip.StartDate.String()+" to "+trip.EndDate.String()))
	if trip.Description != nil {
		sections = append(sections, field("About:", *trip.Description))
	}
	if trip.BudgetTotal != nil {
		sections = append(sections, field("Budget:", money(*trip.BudgetTotal, trip.Currency)))
	}
	if trip.ShareToken != nil {
		sections = append(sections, field("Token:", *trip.ShareToken))
	}

	if len(cities) > 0 {
		sections = append(sections, "", Cities(cities))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Cities renders cities in visit order.
func Cities(cities []model.City) string {
	if len(cities) == 0 {
		return theme.MutedStyle.Render("No cities yet.")
	}
	lines := make([]string, 0, len(cities))
	for _, c := range cities {
		place := c.Name
		if c.Country != "" {
			place += ", " + c.Country
		}
		lines = append(lines, theme.ItemStyle.Render(fmt.Sprintf("%d. %s  %s  %s",
			c.OrderIndex,
			theme.SectionStyle.Render(place),
			theme.MutedStyle.Render(c.StartDate.String()+" to "+c.EndDate.String()),
			theme.MutedStyle.Render(c.ID),
		)))
	}
	return strings.Join(lines, "\n")
}

// Activities renders a flat activity list. cityNames maps city ids to names.
func Activities(activities []model.Activity, cityNames map[string]string) string {
	if len(activities) == 0 {
		return theme.MutedStyle.Render("No activities.")
	}
	lines := make([]string, 0, len(activities))
	for _, a := range activities {
		lines = append(lines, theme.ItemStyle.Render(fmt.Sprintf("%s %s  %s  %s  %s  %s",
			a.Date,
			timeSpan(a.StartTime, a.EndTime),
			a.Name,
			theme.CategoryStyle(a.Category).Render(string(a.Category)),
			a.Cost.StringFixed(2),
			theme.MutedStyle.Render(cityNames[a.CityID]+" "+a.ID),
		)))
	}
	return strings.Join(lines, "\n")
}

// CityWise renders the city-wise itinerary.
func CityWise(groups []model.CityGroup) string {
	if len(groups) == 0 {
		return theme.MutedStyle.Render("Itinerary is empty.")
	}
	blocks := make([]string, 0, len(groups))
	for _, g := range groups {
		lines := []string{
			theme.SectionStyle.Render(g.CityName) + "  " + theme.MutedStyle.Render(g.DateRange),
		}
		if len(g.Activities) == 0 {
			lines = append(lines, theme.ItemStyle.Render(theme.MutedStyle.Render("nothing planned")))
		}
		for _, a := range g.Activities {
			line := fmt.Sprintf("%s %s  %s  %s  %s",
				a.Date, timeSpan(a.StartTime, a.EndTime), a.Name,
				theme.CategoryStyle(a.Category).Render(string(a.Category)),
				a.Cost.StringFixed(2))
			if a.Notes != nil {
				line += "  " + theme.MutedStyle.Render(*a.Notes)
			}
			lines = append(lines, theme.ItemStyle.Render(line))
		}
		blocks = append(blocks, theme.PanelStyle.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// DayWise renders the day-wise itinerary.
func DayWise(groups []model.DayGroup) string {
	if len(groups) == 0 {
		return theme.MutedStyle.Render("No activities planned.")
	}
	var lines []string
	for _, g := range groups {
		lines = append(lines, theme.SectionStyle.Render(g.Date.String()+"  "+g.City))
		for _, a := range g.Activities {
			lines = append(lines, theme.ItemStyle.Render(fmt.Sprintf("%s  %s  %s",
				timeSpan(a.StartTime, a.EndTime), a.ActivityName, a.Cost.StringFixed(2))))
		}
	}
	return strings.Join(lines, "\n")
}

// Budget renders a budget summary with per-category and per-city totals.
func Budget(s budget.Summary) string {
	var sections []string

	total := theme.MutedStyle.Render("unset")
	remaining := theme.MutedStyle.Render("n/a")
	if s.BudgetTotal != nil {
		total = money(*s.BudgetTotal, s.Currency)
	}
	if s.Remaining != nil {
		style := theme.UnderBudgetStyle
		if s.OverBudget {
			style = theme.OverBudgetStyle
		}
		remaining = style.Render(money(*s.Remaining, s.Currency))
	}
	sections = append(sections,
		field("Budget:", total),
		field("Spent:", money(s.TotalSpent, s.Currency)),
		field("Remaining:", remaining),
	)
	if s.OverBudget {
		sections = append(sections, theme.OverBudgetStyle.Render("Over budget"))
	}

	cats := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.ColorBorder)).
		Headers("CATEGORY", "TOTAL")
	for _, c := range model.Categories {
		cats.Row(string(c), s.ByCategory[c].StringFixed(2))
	}
	sections = append(sections, "", cats.String())

	if len(s.ByCity) > 0 {
		cities := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(theme.ColorBorder)).
			Headers("CITY", "TOTAL")
		for _, c := range s.ByCity {
			cities.Row(c.CityName, c.Total.StringFixed(2))
		}
		sections = append(sections, cities.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Calendar renders calendar days. Cost and notes appear when present.
func Calendar(days []calendar.Day) string {
	if len(days) == 0 {
		return theme.MutedStyle.Render("Nothing on the calendar.")
	}
	var lines []string
	for _, d := range days {
		lines = append(lines, theme.SectionStyle.Render(d.Date.String()))
		for _, e := range d.Activities {
			line := fmt.Sprintf("%s  %s  %s", timeSpan(e.StartTime, e.EndTime), e.Name,
				theme.MutedStyle.Render(e.CityName))
			if e.DurationMinutes != nil {
				line += fmt.Sprintf("  (%d min)", *e.DurationMinutes)
			}
			if e.Cost != nil {
				line += "  " + e.Cost.StringFixed(2)
			}
			if e.Notes != nil {
				line += "  " + theme.MutedStyle.Render(*e.Notes)
			}
			lines = append(lines, theme.ItemStyle.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

// Share renders the sharing state of a trip.
func Share(s model.ShareState) string {
	if !s.IsPublic || s.ShareToken == nil {
		return theme.ShareStyle(false).Render("private")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.ShareStyle(true).Render("public"),
		field("Token:", *s.ShareToken),
	)
}

// PublicTrip renders the read-only view of a shared trip.
func PublicTrip(v model.PublicTrip) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		Trip(v.Trip, nil),
		"",
		CityWise(v.Itinerary.CityWise),
	)
}
