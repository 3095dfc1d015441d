// Package main provides the power rating replay CLI. It consumes a
// chronological results feed, folds each game into the rating store, and
// optionally persists the final snapshot.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/ratings"
	"github.com/yourusername/gridiron-edge/internal/repository"
)

// replayEntry pairs a completed game with the injury impacts both teams
// carried into it, so replay reproduces the injury differential the live
// update path applies.
type replayEntry struct {
	models.GameResult
	HomeInjuryImpact float64 `json:"home_injury_impact"`
	AwayInjuryImpact float64 `json:"away_injury_impact"`
}

func main() {
	var (
		configPath  = flag.String("config", "config/config.yaml", "Path to config file")
		resultsPath = flag.String("results", "", "Path to chronological results JSON file")
		persist     = flag.Bool("persist", false, "Persist final ratings to the database")
		resume      = flag.Bool("resume", false, "Seed the store from persisted ratings before replay")
	)
	flag.Parse()

	logger := newLogger()
	ctx := context.Background()

	if *resultsPath == "" {
		logger.Fatal("results file is required")
	}

	cfg := loadConfigWithSecrets(*configPath, logger)
	metrics.InitRegistry()

	entries := loadResults(*resultsPath, logger)
	store := ratings.NewStore(logger)

	var repos *repository.Repositories
	if *persist || *resume {
		db, err := database.NewDB(ctx, &cfg.Database)
		if err != nil {
			logger.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()

		repos, err = repository.NewRepositories(db)
		if err != nil {
			logger.Fatalf("Failed to initialize repositories: %v", err)
		}
	}

	if *resume {
		seedStore(ctx, store, repos, logger)
	}

	applied, rejected := replay(store, entries, logger)
	logger.WithFields(logrus.Fields{
		"applied":  applied,
		"rejected": rejected,
		"teams":    store.TeamCount(),
	}).Info("Replay complete")

	if *persist {
		persistRatings(ctx, store, repos, logger)
	}

	printRatings(store)
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}

func loadConfigWithSecrets(path string, logger *logrus.Logger) *config.Config {
	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			logger.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			logger.Fatalf("Failed to load secrets: %v", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func loadResults(path string, logger *logrus.Logger) []replayEntry {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatalf("Failed to read results file: %v", err)
	}

	var entries []replayEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Fatalf("Failed to parse results file: %v", err)
	}

	// The store enforces per-scope ordering; sorting here keeps a feed
	// that was assembled out of order from being rejected wholesale.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Sequence < entries[j].Sequence
	})

	return entries
}

func seedStore(ctx context.Context, store *ratings.Store, repos *repository.Repositories, logger *logrus.Logger) {
	for _, sport := range []models.Sport{models.SportNFL, models.SportNCAAF} {
		persisted, err := repos.Rating.GetBySport(ctx, sport)
		if err != nil {
			logger.Fatalf("Failed to load persisted %s ratings: %v", sport, err)
		}
		for _, r := range persisted {
			if err := store.Seed(*r); err != nil {
				logger.Fatalf("Failed to seed rating for %s: %v", r.Team, err)
			}
		}
	}
}

func replay(store *ratings.Store, entries []replayEntry, logger *logrus.Logger) (applied, rejected int) {
	for _, entry := range entries {
		_, err := store.ApplyResult(entry.GameResult, entry.HomeInjuryImpact, entry.AwayInjuryImpact)
		if err != nil {
			if errors.Is(err, models.ErrStaleSequence) {
				rejected++
				metrics.RatingUpdatesRejectedTotal.Inc()
				continue
			}
			logger.Fatalf("Replay failed at sequence %d: %v", entry.Sequence, err)
		}
		applied++
		metrics.RatingUpdatesTotal.Inc()
	}

	metrics.TrackedTeams.Set(float64(store.TeamCount()))
	return applied, rejected
}

func persistRatings(ctx context.Context, store *ratings.Store, repos *repository.Repositories, logger *logrus.Logger) {
	persistCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	all := store.All()
	refs := make([]*models.TeamRating, len(all))
	for i := range all {
		refs[i] = &all[i]
	}

	if err := repos.Rating.UpsertBatch(persistCtx, refs); err != nil {
		logger.Fatalf("Failed to persist ratings: %v", err)
	}
	logger.WithField("teams", len(refs)).Info("Ratings persisted")
}

func printRatings(store *ratings.Store) {
	all := store.All()
	sort.Slice(all, func(i, j int) bool {
		if all[i].Sport != all[j].Sport {
			return all[i].Sport < all[j].Sport
		}
		return all[i].Rating > all[j].Rating
	})

	for _, r := range all {
		fmt.Printf("%-6s %-24s %8.2f  (%d games)\n", r.Sport, r.Team, r.Rating, r.GamesPlayed)
	}
}
