package main

import (
	"github.com/spf13/cobra"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/render"
)

func newShareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Publish trips and browse or copy public ones",
	}

	enable := &cobra.Command{
		Use:   "enable TRIP_ID",
		Short: "Make a trip public and print its share token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			state, err := a.planner.EnableSharing(cmd.Context(), user, args[0])
			if err != nil {
				return err
			}
			return a.print(state, render.Share(state))
		},
	}

	disable := &cobra.Command{
		Use:   "disable TRIP_ID",
		Short: "Make a trip private and revoke its token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			state, err := a.planner.DisableSharing(cmd.Context(), user, args[0])
			if err != nil {
				return err
			}
			return a.print(state, render.Share(state))
		},
	}

	view := &cobra.Command{
		Use:   "view TOKEN",
		Short: "Show a shared trip read-only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.planner.ViewByToken(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(v, render.PublicTrip(v))
		},
	}

	clone := &cobra.Command{
		Use:   "clone TOKEN",
		Short: "Copy a shared trip into your own trips",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			trip, err := a.planner.CloneToUser(cmd.Context(), args[0], user)
			if err != nil {
				return err
			}
			return a.print(trip, render.Trip(trip, nil))
		},
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List public trips, most recently updated first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := a.planner.ListPublic(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return a.print(trips, render.Trips(trips))
		},
	}
	list.Flags().IntVar(&limit, "limit", 0, "page size (share.public_limit when 0)")

	cmd.AddCommand(enable, disable, view, clone, list)
	return cmd
}
