package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mindset_backend/internal/app"
	"mindset_backend/internal/config"
	"mindset_backend/internal/repository"
	"mindset_backend/internal/service"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	configDir  string
	outputFile string
	resetAll   bool
	confirmed  bool
	jsonOutput bool

	rootCmd = &cobra.Command{
		Use:           "mindsetctl",
		Short:         "Operate the local mindset journeys state",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Print streaks, XP, level and active journeys",
		RunE:  runStats,
	}

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Write a backup file (stdout by default)",
		RunE:  runExport,
	}

	importCmd = &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the whole state with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}

	resetCmd = &cobra.Command{
		Use:   "reset [module]",
		Short: "Reset one module's progress, or everything with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runReset,
	}

	goalsCmd = &cobra.Command{
		Use:   "goals",
		Short: "List daily goals and today's status",
		RunE:  runGoals,
	}

	goalsToggleCmd = &cobra.Command{
		Use:   "toggle [goal-id]",
		Short: "Toggle today's completion of a goal",
		Args:  cobra.ExactArgs(1),
		RunE:  runGoalToggle,
	}

	tokenCmd = &cobra.Command{
		Use:   "token [device]",
		Short: "Issue a device token without a passcode",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runToken,
	}

	hashCmd = &cobra.Command{
		Use:   "hash-passcode [passcode]",
		Short: "Print the bcrypt hash for auth.passcode_hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hashed, err := service.HashPasscode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hashed)
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "configs", "directory containing config.yaml")

	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write to file instead of stdout")
	statsCmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON")
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "wipe the whole state")
	resetCmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "confirm the reset")
	importCmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "confirm overwriting the current state")

	goalsCmd.AddCommand(goalsToggleCmd)
	rootCmd.AddCommand(statsCmd, exportCmd, importCmd, resetCmd, goalsCmd, tokenCmd, hashCmd)
}

// env 命令执行期间使用的服务
type env struct {
	cfg      *config.Config
	store    repository.KeyValueStore
	progress *service.ProgressService
	stats    *service.StatsService
	export   *service.ExportService
}

func openEnv() (*env, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	catalog, err := service.NewCatalogService(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	store, err := app.OpenStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store (is the server running?): %w", cfg.Storage.Driver, err)
	}
	repo := repository.NewStateRepository(store, cfg.Storage.StateKey)
	return &env{
		cfg:      cfg,
		store:    store,
		progress: service.NewProgressService(repo, catalog, loc),
		stats:    service.NewStatsService(repo, catalog, loc),
		export:   service.NewExportService(repo, service.NewStorageService(cfg), loc),
	}, nil
}

func withEnv(fn func(ctx context.Context, e *env) error) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.store.Close()
	return fn(context.Background(), e)
}

func runStats(cmd *cobra.Command, args []string) error {
	return withEnv(func(ctx context.Context, e *env) error {
		sum := e.stats.Summary(ctx)
		out := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(sum)
		}

		fmt.Fprintf(out, "Level:          %d %s (%d XP, %d to next)\n", sum.Level.Level, sum.Level.Title, sum.XP.Total, sum.Level.XPToNext)
		fmt.Fprintf(out, "Current streak: %d days\n", sum.CurrentStreak)
		fmt.Fprintf(out, "Longest streak: %d days\n", sum.LongestStreak)
		fmt.Fprintf(out, "Time spent:     %dm reading / %dm total\n", sum.TimeSpent.ReadingSeconds/60, sum.TimeSpent.TotalSeconds/60)

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "\nMODULE\tDAYS\tPERCENT\tNEXT")
		for _, j := range sum.ActiveJourneys {
			fmt.Fprintf(w, "%s\t%d/%d\t%d%%\t%d\n", j.ModuleID, j.CompletedDays, j.TotalDays, j.Percent, j.NextDay)
		}
		for _, j := range sum.CompletedJourneys {
			fmt.Fprintf(w, "%s\t%d/%d\t%d%%\tdone\n", j.ModuleID, j.CompletedDays, j.TotalDays, j.Percent)
		}
		return w.Flush()
	})
}

func runExport(cmd *cobra.Command, args []string) error {
	return withEnv(func(ctx context.Context, e *env) error {
		raw, filename, err := e.export.ExportJSON(ctx)
		if err != nil {
			return err
		}
		if outputFile == "" {
			_, err = cmd.OutOrStdout().Write(append(raw, '\n'))
			return err
		}
		if outputFile == "." {
			outputFile = filename
		}
		if err := os.WriteFile(outputFile, raw, 0644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outputFile)
		return nil
	})
}

func runImport(cmd *cobra.Command, args []string) error {
	if !confirmed {
		return errors.New("import overwrites everything, re-run with --yes")
	}
	var raw []byte
	var err error
	if args[0] == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}
	return withEnv(func(ctx context.Context, e *env) error {
		state, err := e.export.Import(ctx, raw)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported, %d modules, revision %d\n", len(state.Progress), state.Revision)
		return nil
	})
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetAll && len(args) == 0 {
		return errors.New("name a module or pass --all")
	}
	if !confirmed {
		return errors.New("reset cannot be undone, re-run with --yes")
	}
	return withEnv(func(ctx context.Context, e *env) error {
		if resetAll {
			if err := e.progress.ResetApp(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "all data cleared")
			return nil
		}
		if _, err := e.progress.ResetModule(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "module %s reset\n", args[0])
		return nil
	})
}

func runGoals(cmd *cobra.Command, args []string) error {
	return withEnv(func(ctx context.Context, e *env) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTODAY\tTEXT")
		for _, g := range e.stats.TodayGoals(ctx) {
			mark := " "
			if g.DoneToday {
				mark = "x"
			}
			fmt.Fprintf(w, "%s\t[%s]\t%s\n", g.ID, mark, g.Text)
		}
		return w.Flush()
	})
}

func runGoalToggle(cmd *cobra.Command, args []string) error {
	return withEnv(func(ctx context.Context, e *env) error {
		done, _, err := e.progress.ToggleGoal(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "goal %s done today: %t\n", args[0], done)
		return nil
	})
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return err
	}
	if !cfg.Auth.Enabled {
		return errors.New("auth is disabled in config")
	}
	device := ""
	if len(args) == 1 {
		device = args[0]
	}
	token, expiresAt, err := service.NewAuthService(cfg).IssueToken(device)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expiresAt.Format("2006-01-02 15:04"))
	return nil
}
