package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/service"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/store"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/theme"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	out        io.Writer
	configPath string
	userFlag   string
	asJSON     bool

	cfg     *model.AppConfig
	store   *store.SQLiteStore
	planner *service.Planner
}

// user returns the acting user id: --user, then user.id from config.
func (a *app) user() (string, error) {
	if id := strings.TrimSpace(a.userFlag); id != "" {
		return id, nil
	}
	if id := strings.TrimSpace(a.cfg.User.ID); id != "" {
		return id, nil
	}
	return "", apperr.Invalid("no user configured; pass --user or set user.id")
}

// print writes v as JSON with --json, otherwise the rendered text.
func (a *app) print(v any, text string) error {
	if a.asJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(a.out, text)
	return err
}

func (a *app) open() error {
	cfg, err := model.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	theme.Apply(cfg.Display.Theme)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}
	s, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return err
	}
	a.store = s
	a.planner = service.NewPlanner(s, service.Options{
		DefaultCurrency: cfg.Defaults.Currency,
		PublicLimit:     cfg.Share.PublicLimit,
		Logger:          log.Default(),
	})
	return nil
}

func (a *app) close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		log.Printf("closing store: %v", err)
	}
	a.store = nil
}

// execute runs one command line against a. The store opened for the
// command is closed on every return path, including failed commands.
func execute(a *app, args []string) error {
	defer a.close()
	root := newRootCmd(a)
	root.SetArgs(args)
	return root.Execute()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "globetrotter",
		Short:         "Plan multi-city trips",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["skipStore"] == "true" {
				cfg, err := model.LoadConfig(a.configPath)
				if err != nil {
					return err
				}
				a.cfg = cfg
				return nil
			}
			return a.open()
		},
	}
	root.SetOut(a.out)

	root.PersistentFlags().StringVar(&a.configPath, "config", model.DefaultConfigPath(), "path to config file")
	root.PersistentFlags().StringVar(&a.userFlag, "user", "", "act as this user id (overrides user.id)")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print JSON instead of text")

	root.AddCommand(
		newTripCmd(a),
		newCityCmd(a),
		newActivityCmd(a),
		newBudgetCmd(a),
		newItineraryCmd(a),
		newCalendarCmd(a),
		newShareCmd(a),
		newConfigCmd(a),
	)
	return root
}

// exitCode maps failure kinds to distinct process exit codes.
func exitCode(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindInvalidInput, apperr.KindInvalidRange:
		return 2
	case apperr.KindNotFound:
		return 3
	case apperr.KindForbidden:
		return 4
	case apperr.KindConflict:
		return 5
	default:
		return 1
	}
}

// optionalFlag returns the flag's value when it was set on the command line.
func optionalFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}
