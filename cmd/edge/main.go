// Package main provides the edge detection CLI and long-running service.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/engine"
	"github.com/yourusername/gridiron-edge/internal/health"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/positions"
	"github.com/yourusername/gridiron-edge/internal/ratings"
	"github.com/yourusername/gridiron-edge/internal/repository"
	"github.com/yourusername/gridiron-edge/internal/scheduler"
	"github.com/yourusername/gridiron-edge/internal/staking"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile    string
	snapshotsFile string
	persist       bool
	appLogger     *logrus.Logger
	cfg           *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")

	evaluateCmd.Flags().StringVarP(&snapshotsFile, "snapshots", "s", "", "Path to game snapshots JSON file")
	evaluateCmd.Flags().BoolVar(&persist, "persist", false, "Persist evaluations to the database")
	evaluateCmd.MarkFlagRequired("snapshots")

	serveCmd.Flags().StringVarP(&snapshotsFile, "snapshots", "s", "", "Path to game snapshots JSON file, re-read each cycle")
	serveCmd.MarkFlagRequired("snapshots")

	rootCmd.AddCommand(evaluateCmd, serveCmd, versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "edge",
	Short: "Football spread edge detection engine",
	Long: `Evaluates upcoming NFL and NCAAF games against the betting market:
injury and weather impacts adjust power-rating predictions, the gap to the
market line is bucketed by confidence, and fractional Kelly sizes the stake.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = loadConfigWithSecrets(configFile)
		if err != nil {
			return err
		}

		appLogger = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("edge %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a slate of game snapshots once and print the results",
	RunE:  runEvaluate,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a long-lived service with scheduled evaluation cycles",
	RunE:  runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfigWithSecrets(path string) (*config.Config, error) {
	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return nil, fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return nil, fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadSnapshots(path string) ([]engine.GameSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshots file: %w", err)
	}

	var snaps []engine.GameSnapshot
	if err := json.Unmarshal(data, &snaps); err != nil {
		return nil, fmt.Errorf("failed to parse snapshots file: %w", err)
	}
	return snaps, nil
}

func buildEngine(store *ratings.Store) (*engine.Engine, error) {
	overrides, err := positions.ParseOverrides(cfg.Engine.PositionValues)
	if err != nil {
		return nil, err
	}

	return engine.New(engine.Config{
		Workers:        cfg.Engine.Workers,
		InjuryCacheTTL: time.Duration(cfg.Engine.InjuryCacheTTLSeconds) * time.Second,
		StakeConfig: staking.Config{
			KellyMultiplier: cfg.Staking.KellyMultiplier,
			MaxStakePercent: cfg.Staking.MaxStakePercent,
			AmericanOdds:    cfg.Staking.AmericanOdds,
		},
		PositionOverride: overrides,
	}, store, appLogger), nil
}

// seedStoreFromDB warms the rating store from persisted ratings so replay
// does not restart from the 0.0 seed on every process start.
func seedStoreFromDB(ctx context.Context, store *ratings.Store, repos *repository.Repositories) error {
	for _, sport := range []models.Sport{models.SportNFL, models.SportNCAAF} {
		persisted, err := repos.Rating.GetBySport(ctx, sport)
		if err != nil {
			return fmt.Errorf("failed to load %s ratings: %w", sport, err)
		}
		for _, r := range persisted {
			if err := store.Seed(*r); err != nil {
				return err
			}
		}
	}
	return nil
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	metrics.InitRegistry()

	snaps, err := loadSnapshots(snapshotsFile)
	if err != nil {
		return err
	}

	store := ratings.NewStore(appLogger)
	eng, err := buildEngine(store)
	if err != nil {
		return err
	}

	var repos *repository.Repositories
	if persist {
		db, err := database.NewDB(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		repos, err = repository.NewRepositories(db)
		if err != nil {
			return err
		}
		if err := seedStoreFromDB(ctx, store, repos); err != nil {
			return err
		}
	}

	bankroll := decimal.NewFromFloat(cfg.Staking.InitialBankroll)
	evals := eng.EvaluateAll(ctx, snaps, bankroll)

	appLogger.WithFields(logrus.Fields{
		"snapshots":   len(snaps),
		"evaluations": len(evals),
	}).Info("Slate evaluation complete")

	if repos != nil {
		for i := range evals {
			if err := repos.Edge.Insert(ctx, &evals[i].Edge); err != nil {
				return err
			}
			if err := repos.Stake.Insert(ctx, &evals[i].Stake); err != nil {
				return err
			}
		}
	}

	out, err := json.MarshalIndent(evals, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal evaluations: %w", err)
	}
	fmt.Println(string(out))

	return nil
}

// cycleService adapts the engine and repositories to the scheduler's
// job interfaces for serve mode.
type cycleService struct {
	eng      *engine.Engine
	repos    *repository.Repositories
	bankroll decimal.Decimal
	logger   *logrus.Logger
}

func (c *cycleService) RunCycle(ctx context.Context) error {
	snaps, err := loadSnapshots(snapshotsFile)
	if err != nil {
		return err
	}

	evals := c.eng.EvaluateAll(ctx, snaps, c.bankroll)
	for i := range evals {
		if err := c.repos.Edge.Insert(ctx, &evals[i].Edge); err != nil {
			return err
		}
		if err := c.repos.Stake.Insert(ctx, &evals[i].Stake); err != nil {
			return err
		}
	}

	metrics.TrackedTeams.Set(float64(c.eng.Store().TeamCount()))
	bankroll, _ := c.bankroll.Float64()
	metrics.CurrentBankroll.Set(bankroll)
	c.logger.WithField("evaluations", len(evals)).Info("Evaluation cycle persisted")
	return nil
}

func (c *cycleService) SyncRatings(ctx context.Context) error {
	all := c.eng.Store().All()
	refs := make([]*models.TeamRating, len(all))
	for i := range all {
		refs[i] = &all[i]
	}
	return c.repos.Rating.UpsertBatch(ctx, refs)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics.InitRegistry()

	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	repos, err := repository.NewRepositories(db)
	if err != nil {
		return err
	}

	store := ratings.NewStore(appLogger)
	if err := seedStoreFromDB(ctx, store, repos); err != nil {
		return err
	}
	eng, err := buildEngine(store)
	if err != nil {
		return err
	}

	svc := &cycleService{
		eng:      eng,
		repos:    repos,
		bankroll: decimal.NewFromFloat(cfg.Staking.InitialBankroll),
		logger:   appLogger,
	}

	if !cfg.Scheduler.Enabled {
		return fmt.Errorf("serve mode requires scheduler.enabled in configuration")
	}

	sched := scheduler.NewScheduler(svc, svc, appLogger)
	if err := sched.ScheduleEvaluations(cfg.Scheduler.EvaluationCron); err != nil {
		return err
	}
	if cfg.Scheduler.RatingSyncCron != "" {
		if err := sched.ScheduleRatingSync(cfg.Scheduler.RatingSyncCron); err != nil {
			return err
		}
	}
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Version:     Version,
		Commit:      GitCommit,
		Port:        cfg.Health.Port,
		Logger:      appLogger,
		DB:          db,
		Ratings:     store,
	})
	if err := healthServer.Start(ctx); err != nil {
		return err
	}
	healthServer.SetReady(true)

	if cfg.Metrics.Enabled {
		go func() {
			addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
			mux := http.NewServeMux()
			mux.Handle(cfg.Metrics.Path, metrics.Handler())
			appLogger.WithField("addr", addr).Info("Metrics server starting")
			if err := http.ListenAndServe(addr, mux); err != nil {
				appLogger.WithError(err).Error("Metrics server error")
			}
		}()
	}

	appLogger.WithFields(logrus.Fields{
		"version":  Version,
		"next_run": sched.GetNextRun().Format(time.RFC3339),
	}).Info("Edge service started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	appLogger.Info("Shutdown signal received")
	healthServer.SetReady(false)

	// Flush ratings before exit so the next start resumes cleanly.
	flushCtx, flushCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer flushCancel()
	if err := svc.SyncRatings(flushCtx); err != nil {
		appLogger.WithError(err).Error("Final rating sync failed")
	}

	return nil
}
