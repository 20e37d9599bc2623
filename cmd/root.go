package cmd

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/trialiris/iris/internal/config"
	"github.com/trialiris/iris/internal/database"
	"github.com/trialiris/iris/internal/logging"
	"github.com/trialiris/iris/internal/services/criterion"
	"github.com/trialiris/iris/internal/tui"
	"github.com/trialiris/iris/internal/tui/components"
	"github.com/trialiris/iris/internal/tui/theme"
)

var rootCmd = &cobra.Command{
	Use:   "iris",
	Short: "Iris - a terminal workbench for curated trial eligibility criteria",
	Long: `Iris is a terminal grid for reviewing curated clinical-trial
eligibility criteria. Import curated trials, review their rules, and
shape the grid's columns with the built-in column selector.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		theme.Init(cfg.ColorScheme)
		components.InitStyles()

		model := tui.InitialModel(cfg, svc)
		p := tea.NewProgram(model)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// setup initializes logging, the database, and the criterion service shared
// by every command. The returned cleanup closes the database.
func setup() (criterion.Service, func(), error) {
	if err := logging.Init(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := database.InitDB(context.Background())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing db", "error", err)
		}
	}

	return criterion.NewService(database.NewTrialRepo(db)), cleanup, nil
}
