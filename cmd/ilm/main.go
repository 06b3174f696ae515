// Package main provides the ilm CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/glabrego/ilm-cli/internal/app"
	"github.com/glabrego/ilm-cli/internal/bundle"
	"github.com/glabrego/ilm-cli/internal/config"
	"github.com/glabrego/ilm-cli/internal/content"
	"github.com/glabrego/ilm-cli/internal/feed"
	"github.com/glabrego/ilm-cli/internal/logging"
	"github.com/glabrego/ilm-cli/internal/storage"
	"github.com/glabrego/ilm-cli/internal/tui"
)

var version = "0.1.0"

const setupTimeout = 15 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ilm",
		Short:   "A shuffled feed of verses, insights and themes",
		Long:    "ilm shows key verses, insights, themes and surah overviews as a randomized full-page feed.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			program := tea.NewProgram(tui.NewModel(env.service, feed.State{Focus: feed.NoFocus}), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("tui error: %w", err)
			}
			return nil
		},
	}

	rootCmd.SetVersionTemplate("ilm version {{.Version}}\n")
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(newFeedCmd())
	rootCmd.AddCommand(newGroupsCmd())
	rootCmd.AddCommand(newSeedCmd())

	return rootCmd
}

func newFeedCmd() *cobra.Command {
	var limit int
	var width int

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Print a freshly shuffled feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
			defer cancel()
			state, err := env.service.Regenerate(ctx)
			if err != nil {
				return err
			}
			printFeed(cmd.OutOrStdout(), state, limit, width)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of entries to print (0 for all)")
	cmd.Flags().IntVarP(&width, "width", "w", 80, "Wrap width")

	return cmd
}

func newGroupsCmd() *cobra.Command {
	var category string
	var width int

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List content grouped by category and source",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
			defer cancel()

			var collections []content.Collection
			if category != "" {
				c, err := env.service.Category(ctx, category)
				if err != nil {
					return err
				}
				collections = []content.Collection{c}
			} else {
				collections, err = env.service.Collections(ctx)
				if err != nil {
					return err
				}
			}
			printGroups(cmd.OutOrStdout(), collections, width)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list this category (e.g. \"Key Verses\")")
	cmd.Flags().IntVarP(&width, "width", "w", 80, "Wrap width")

	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace stored content with the bundled collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
			defer cancel()
			n, err := env.service.Seed(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d items into %s\n", n, env.cfg.DBPath)
			return nil
		},
	}
}

type environment struct {
	cfg     config.Config
	repo    *storage.Repository
	service *app.Service
}

func (e *environment) close() {
	_ = e.repo.Close()
	logging.Close()
}

// setup loads config, opens logging and storage, and seeds according to
// ILM_SEED.
func setup(parent context.Context) (*environment, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if err := logging.Init(cfg.LogDir, cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("logging init error: %w", err)
	}

	repo, err := storage.NewRepository(cfg.DBPath)
	if err != nil {
		logging.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	env := &environment{cfg: cfg, repo: repo, service: app.NewService(bundle.Collections, repo, nil)}

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, setupTimeout)
	defer cancel()

	if err := repo.Init(ctx); err != nil {
		env.close()
		return nil, fmt.Errorf("storage schema error: %w", err)
	}
	if err := repo.CheckWritable(ctx); err != nil {
		env.close()
		return nil, fmt.Errorf("storage write check failed (%v). Verify ILM_DB_PATH is writable: %s", err, cfg.DBPath)
	}

	switch cfg.SeedMode {
	case config.SeedAlways:
		n, err := env.service.Seed(ctx)
		if err != nil {
			env.close()
			return nil, err
		}
		logging.Info("seeded content", "items", n)
	case config.SeedAuto:
		seeded, err := env.service.EnsureSeeded(ctx)
		if err != nil {
			env.close()
			return nil, err
		}
		if seeded {
			logging.Info("seeded empty database", "path", cfg.DBPath)
		}
	}
	return env, nil
}
