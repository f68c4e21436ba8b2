package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/render"
)

func newCityCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "city",
		Short: "Manage the cities of a trip",
	}
	cmd.AddCommand(
		newCityAddCmd(a),
		newCityListCmd(a),
		newCityUpdateCmd(a),
		newCityDeleteCmd(a),
		newCityReorderCmd(a),
	)
	return cmd
}

func newCityAddCmd(a *app) *cobra.Command {
	var in model.CityInput

	cmd := &cobra.Command{
		Use:   "add TRIP_ID NAME",
		Short: "Append a city to a trip",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			in.Name = args[1]
			city, err := a.planner.AddCity(cmd.Context(), user, args[0], in)
			if err != nil {
				return err
			}
			return a.print(city, render.Cities([]model.City{city}))
		},
	}
	cmd.Flags().StringVar(&in.Country, "country", "", "country")
	cmd.Flags().StringVar(&in.StartDate, "start", "", "arrival date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.EndDate, "end", "", "departure date (YYYY-MM-DD)")
	return cmd
}

func newCityListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list TRIP_ID",
		Short: "List cities in visit order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			cities, err := a.planner.ListCities(cmd.Context(), user, args[0])
			if err != nil {
				return err
			}
			return a.print(cities, render.Cities(cities))
		},
	}
}

func newCityUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update TRIP_ID CITY_ID",
		Short: "Change a city's name, country or dates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			patch := model.CityPatch{
				Name:      optionalFlag(cmd, "name"),
				Country:   optionalFlag(cmd, "country"),
				StartDate: optionalFlag(cmd, "start"),
				EndDate:   optionalFlag(cmd, "end"),
			}
			city, err := a.planner.UpdateCity(cmd.Context(), user, args[0], args[1], patch)
			if err != nil {
				return err
			}
			return a.print(city, render.Cities([]model.City{city}))
		},
	}
	cmd.Flags().String("name", "", "city name")
	cmd.Flags().String("country", "", "country")
	cmd.Flags().String("start", "", "arrival date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "departure date (YYYY-MM-DD)")
	return cmd
}

func newCityDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete TRIP_ID CITY_ID",
		Short: "Remove a city and its activities",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			if err := a.planner.DeleteCity(cmd.Context(), user, args[0], args[1]); err != nil {
				return err
			}
			return a.print(map[string]string{"deleted": args[1]}, "Deleted city "+args[1])
		},
	}
}

func newCityReorderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder TRIP_ID CITY_ID=INDEX...",
		Short: "Assign new positions to every city of a trip",
		Example: "  globetrotter city reorder 7c1e... paris-id=2 rome-id=1",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			assignments, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			cities, err := a.planner.ReorderCities(cmd.Context(), user, args[0], assignments)
			if err != nil {
				return err
			}
			return a.print(cities, render.Cities(cities))
		},
	}
}

// parseAssignments reads CITY_ID=INDEX pairs.
func parseAssignments(args []string) ([]model.ReorderAssignment, error) {
	out := make([]model.ReorderAssignment, 0, len(args))
	for _, arg := range args {
		id, idx, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, apperr.Invalid("assignment %q must look like CITY_ID=INDEX", arg)
		}
		n, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil {
			return nil, apperr.Invalid("assignment %q: index must be an integer", arg)
		}
		out = append(out, model.ReorderAssignment{CityID: id, OrderIndex: n})
	}
	return out, nil
}
