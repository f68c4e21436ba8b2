package main

import (
	"github.com/spf13/cobra"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/render"
)

func newBudgetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show or set a trip budget",
	}

	show := &cobra.Command{
		Use:   "show TRIP_ID",
		Short: "Show spending against the budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			summary, err := a.planner.GetBudgetSummary(cmd.Context(), user, args[0])
			if err != nil {
				return err
			}
			return a.print(summary, render.Budget(summary))
		},
	}

	set := &cobra.Command{
		Use:   "set TRIP_ID",
		Short: "Set the budget total or currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.user()
			if err != nil {
				return err
			}
			patch := model.BudgetPatch{Currency: optionalFlag(cmd, "currency")}
			if raw := optionalFlag(cmd, "total"); raw != nil {
				d, err := parseAmountFlag("total", *raw)
				if err != nil {
					return err
				}
				patch.BudgetTotal = &d
			}
			trip, err := a.planner.UpdateBudget(cmd.Context(), user, args[0], patch)
			if err != nil {
				return err
			}
			return a.print(trip, render.Trip(trip, nil))
		},
	}
	set.Flags().String("total", "", "budget total")
	set.Flags().String("currency", "", "ISO currency code")

	cmd.AddCommand(show, set)
	return cmd
}
