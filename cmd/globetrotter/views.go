package main

import (
	"github.com/spf13/cobra"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/render"
)

func newItineraryCmd(a *app) *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "itinerary TRIP_ID",
		Short: "Show the trip itinerary by city or by day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			switch view {
			case "citywise":
				groups, err := a.planner.CityWiseItinerary(cmd.Context(), user, args[0])
				if err != nil {
					return err
				}
				return a.print(groups, render.CityWise(groups))
			case "daywise":
				groups, err := a.planner.DayWiseItinerary(cmd.Context(), user, args[0])
				if err != nil {
					return err
				}
				return a.print(groups, render.DayWise(groups))
			default:
				return apperr.Invalid("--view must be citywise or daywise, got %q", view)
			}
		},
	}
	cmd.Flags().StringVar(&view, "view", "citywise", "citywise or daywise")
	return cmd
}

func newCalendarCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show trip activities on a calendar",
	}

	var year, month int
	monthCmd := &cobra.Command{
		Use:   "month TRIP_ID",
		Short: "Activities in one month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			days, err := a.planner.CalendarMonth(cmd.Context(), user, args[0], year, month)
			if err != nil {
				return err
			}
			return a.print(days, render.Calendar(days))
		},
	}
	monthCmd.Flags().IntVar(&year, "year", 0, "year, e.g. 2026")
	monthCmd.Flags().IntVar(&month, "month", 0, "month 1-12")

	dayCmd := &cobra.Command{
		Use:   "day TRIP_ID DATE",
		Short: "Activities on one day, with cost and notes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			days, err := a.planner.CalendarDay(cmd.Context(), user, args[0], args[1])
			if err != nil {
				return err
			}
			return a.print(days, render.Calendar(days))
		},
	}

	rangeCmd := &cobra.Command{
		Use:   "range TRIP_ID FROM TO",
		Short: "Activities between two dates inclusive",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			days, err := a.planner.CalendarRange(cmd.Context(), user, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return a.print(days, render.Calendar(days))
		},
	}

	cmd.AddCommand(monthCmd, dayCmd, rangeCmd)
	return cmd
}
