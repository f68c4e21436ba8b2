package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/render"
)

func parseAmountFlag(name, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, apperr.Invalid("--%s: %q is not a number", name, raw)
	}
	return d, nil
}

func newTripCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Create, list and edit trips",
	}
	cmd.AddCommand(
		newTripCreateCmd(a),
		newTripListCmd(a),
		newTripShowCmd(a),
		newTripUpdateCmd(a),
		newTripDeleteCmd(a),
	)
	return cmd
}

func newTripCreateCmd(a *app) *cobra.Command {
	var in model.TripInput
	var budget string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			in.Name = args[0]
			in.Description = optionalFlag(cmd, "description")
			in.CoverImageURL = optionalFlag(cmd, "cover")
			if cmd.Flags().Changed("budget") {
				d, err := parseAmountFlag("budget", budget)
				if err != nil {
					return err
				}
				in.BudgetTotal = &d
			}
			trip, err := a.planner.CreateTrip(cmd.Context(), user, in)
			if err != nil {
				return err
			}
			return a.print(trip, render.Trip(trip, nil))
		},
	}
	cmd.Flags().StringVar(&in.StartDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.EndDate, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Currency, "currency", "", "ISO currency code (defaults.currency when empty)")
	cmd.Flags().StringVar(&budget, "budget", "", "total budget")
	cmd.Flags().String("description", "", "free-form description")
	cmd.Flags().String("cover", "", "cover image URL")
	return cmd
}

func newTripListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your trips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			trips, err := a.planner.ListTrips(cmd.Context(), user)
			if err != nil {
				return err
			}
			return a.print(trips, render.Trips(trips))
		},
	}
}

func newTripShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show TRIP_ID",
		Short: "Show a trip and its cities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			trip, err := a.planner.GetTrip(cmd.Context(), user, args[0])
			if err != nil {
				return err
			}
			cities, err := a.planner.ListCities(cmd.Context(), user, trip.ID)
			if err != nil {
				return err
			}
			return a.print(struct {
				Trip   model.Trip   `json:"trip"`
				Cities []model.City `json:"cities"`
			}{trip, cities}, render.Trip(trip, cities))
		},
	}
}

func newTripUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update TRIP_ID",
		Short: "Change trip details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			patch := model.TripPatch{
				Name:          optionalFlag(cmd, "name"),
				Description:   optionalFlag(cmd, "description"),
				StartDate:     optionalFlag(cmd, "start"),
				EndDate:       optionalFlag(cmd, "end"),
				CoverImageURL: optionalFlag(cmd, "cover"),
			}
			trip, err := a.planner.UpdateTrip(cmd.Context(), user, args[0], patch)
			if err != nil {
				return err
			}
			return a.print(trip, render.Trip(trip, nil))
		},
	}
	cmd.Flags().String("name", "", "trip name")
	cmd.Flags().String("description", "", "description (empty clears)")
	cmd.Flags().String("start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().String("cover", "", "cover image URL (empty clears)")
	return cmd
}

func newTripDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete TRIP_ID",
		Short: "Delete a trip with its cities and activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			if err := a.planner.DeleteTrip(cmd.Context(), user, args[0]); err != nil {
				return err
			}
			return a.print(map[string]string{"deleted": args[0]}, "Deleted trip "+args[0])
		},
	}
}
