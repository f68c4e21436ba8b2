package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/render"
)

func newActivityCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"act"},
		Short:   "Manage activities inside a trip's cities",
	}
	cmd.AddCommand(
		newActivityAddCmd(a),
		newActivityListCmd(a),
		newActivityUpdateCmd(a),
		newActivityDeleteCmd(a),
	)
	return cmd
}

// cityNames maps each city of the trip to its name for list output.
func (a *app) cityNames(ctx context.Context, user, tripID string) (map[string]string, error) {
	cities, err := a.planner.ListCities(ctx, user, tripID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cities))
	for _, c := range cities {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (a *app) printActivities(ctx context.Context, user, tripID string, acts []model.Activity) error {
	names, err := a.cityNames(ctx, user, tripID)
	if err != nil {
		return err
	}
	return a.print(acts, render.Activities(acts, names))
}

func addActivityFlags(cmd *cobra.Command) {
	cmd.Flags().String("city", "", "city id")
	cmd.Flags().String("name", "", "activity name")
	cmd.Flags().String("category", "", "sightseeing, food, travel, stay or other")
	cmd.Flags().String("date", "", "activity date (YYYY-MM-DD)")
	cmd.Flags().String("start-time", "", "start time (HH:MM)")
	cmd.Flags().String("end-time", "", "end time (HH:MM)")
	cmd.Flags().String("cost", "", "cost in the trip currency")
	cmd.Flags().String("notes", "", "notes")
}

func newActivityAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add TRIP_ID",
		Short: "Schedule an activity in a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			in := model.ActivityInput{
				StartTime: optionalFlag(cmd, "start-time"),
				EndTime:   optionalFlag(cmd, "end-time"),
				Cost:      optionalFlag(cmd, "cost"),
				Notes:     optionalFlag(cmd, "notes"),
			}
			in.CityID, _ = cmd.Flags().GetString("city")
			in.Name, _ = cmd.Flags().GetString("name")
			in.Category, _ = cmd.Flags().GetString("category")
			in.Date, _ = cmd.Flags().GetString("date")

			act, err := a.planner.AddActivity(cmd.Context(), user, args[0], in)
			if err != nil {
				return err
			}
			return a.printActivities(cmd.Context(), user, args[0], []model.Activity{act})
		},
	}
	addActivityFlags(cmd)
	return cmd
}

func newActivityListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list TRIP_ID",
		Short: "List activities in itinerary order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			acts, err := a.planner.ListActivities(cmd.Context(), user, args[0], optionalFlag(cmd, "city"))
			if err != nil {
				return err
			}
			return a.printActivities(cmd.Context(), user, args[0], acts)
		},
	}
	cmd.Flags().String("city", "", "only this city")
	return cmd
}

func newActivityUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update TRIP_ID ACTIVITY_ID",
		Short: "Change an activity or move it to another city",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			patch := model.ActivityPatch{
				CityID:    optionalFlag(cmd, "city"),
				Name:      optionalFlag(cmd, "name"),
				Category:  optionalFlag(cmd, "category"),
				Date:      optionalFlag(cmd, "date"),
				StartTime: optionalFlag(cmd, "start-time"),
				EndTime:   optionalFlag(cmd, "end-time"),
				Cost:      optionalFlag(cmd, "cost"),
				Notes:     optionalFlag(cmd, "notes"),
			}
			act, err := a.planner.UpdateActivity(cmd.Context(), user, args[0], args[1], patch)
			if err != nil {
				return err
			}
			return a.printActivities(cmd.Context(), user, args[0], []model.Activity{act})
		},
	}
	addActivityFlags(cmd)
	return cmd
}

func newActivityDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete TRIP_ID ACTIVITY_ID",
		Short: "Remove an activity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			if err := a.planner.DeleteActivity(cmd.Context(), user, args[0], args[1]); err != nil {
				return err
			}
			return a.print(map[string]string{"deleted": args[1]}, "Deleted activity "+args[1])
		},
	}
}
