package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a config file with the current settings",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipStore": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return apperr.Conflict("%s already exists; pass --force to overwrite", a.configPath)
			}
			cfg := *a.cfg
			if a.userFlag != "" {
				cfg.User.ID = a.userFlag
			}
			if err := model.SaveConfig(a.configPath, &cfg); err != nil {
				return err
			}
			return a.print(cfg, fmt.Sprintf("Wrote %s", a.configPath))
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
