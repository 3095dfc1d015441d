// Package engine orchestrates the edge detection pipeline: injury and
// weather impacts feed the market edge calculator, whose output feeds the
// stake sizer. Games are independent and evaluated data-parallel; the power
// rating store is the only shared state and is read-only during evaluation.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	cache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/edge"
	"github.com/yourusername/gridiron-edge/internal/injury"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/positions"
	"github.com/yourusername/gridiron-edge/internal/ratings"
	"github.com/yourusername/gridiron-edge/internal/staking"
	"github.com/yourusername/gridiron-edge/internal/weather"
)

const injurySummaryTTL = 15 * time.Minute

// Engine wires the calculators together over one rating store
type Engine struct {
	teamInjuries *injury.TeamCalculator
	weatherCalc  *weather.Calculator
	edgeCalc     *edge.Calculator
	sizer        *staking.Sizer
	store        *ratings.Store
	validate     *validator.Validate
	summaryCache *cache.Cache
	workers      int
	logger       *logrus.Logger
}

// Config holds engine construction parameters
type Config struct {
	Workers          int
	InjuryCacheTTL   time.Duration
	StakeConfig      staking.Config
	PositionOverride map[positions.Key]float64
	InjuryOverride   map[injury.Type]injury.Profile
}

// New creates an engine around an existing rating store
func New(cfg Config, store *ratings.Store, logger *logrus.Logger) *Engine {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.InjuryCacheTTL <= 0 {
		cfg.InjuryCacheTTL = injurySummaryTTL
	}
	table := positions.NewTable(cfg.PositionOverride)
	calc := injury.NewCalculator(injury.NewProfileTable(cfg.InjuryOverride), logger)

	return &Engine{
		teamInjuries: injury.NewTeamCalculator(calc, table, logger),
		weatherCalc:  weather.NewCalculator(logger),
		edgeCalc:     edge.NewCalculator(store, logger),
		sizer:        staking.NewSizer(cfg.StakeConfig, logger),
		store:        store,
		validate:     newSnapshotValidator(),
		summaryCache: cache.New(cfg.InjuryCacheTTL, 2*cfg.InjuryCacheTTL),
		workers:      cfg.Workers,
		logger:       logger,
	}
}

// Store exposes the engine's rating store for replay and persistence
func (e *Engine) Store() *ratings.Store {
	return e.store
}

// EvaluateGame runs the full pipeline for one game snapshot. Degraded inputs
// (missing weather, unknown injuries, unrated teams) contribute neutrally;
// the only hard failure is a snapshot missing required numeric fields.
func (e *Engine) EvaluateGame(snap GameSnapshot, bankroll decimal.Decimal) (Evaluation, error) {
	if err := validateSnapshot(e.validate, snap); err != nil {
		metrics.SnapshotsRejectedTotal.Inc()
		return Evaluation{}, err
	}

	game := snap.Game
	homeSummary := e.teamSummary(game, game.HomeTeam, snap.HomeInjuries)
	awaySummary := e.teamSummary(game, game.AwayTeam, snap.AwayInjuries)

	obs := snap.Weather
	obs.Indoor = obs.Indoor || game.Indoor
	impact := e.weatherCalc.CalculateImpact(obs, game.KickoffTime, snap.Alerts)

	gameEdge := e.edgeCalc.Evaluate(edge.Input{
		Game:          game,
		HomeInjuries:  homeSummary,
		AwayInjuries:  awaySummary,
		WeatherImpact: impact,
	})
	stake := e.sizer.Recommend(gameEdge, bankroll)

	metrics.GamesEvaluatedTotal.Inc()
	metrics.EdgesByBucket.WithLabelValues(string(gameEdge.Confidence)).Inc()
	if stake.IsPlayable() {
		metrics.RecommendationsTotal.Inc()
	}

	return Evaluation{Edge: gameEdge, Stake: stake}, nil
}

// EvaluateAll evaluates a batch of independent games with a bounded worker
// pool. Failed snapshots are logged and skipped; one malformed record never
// fails the batch.
func (e *Engine) EvaluateAll(ctx context.Context, snaps []GameSnapshot, bankroll decimal.Decimal) []Evaluation {
	start := time.Now()
	defer func() {
		metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
	}()

	jobs := make(chan GameSnapshot)
	results := make(chan Evaluation, len(snaps))

	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for snap := range jobs {
				eval, err := e.EvaluateGame(snap, bankroll)
				if err != nil {
					if e.logger != nil {
						e.logger.WithError(err).WithField("game", snap.Game.ID).Warn("Skipping game snapshot")
					}
					continue
				}
				results <- eval
			}
		}()
	}

	for _, snap := range snaps {
		select {
		case <-ctx.Done():
			if e.logger != nil {
				e.logger.Warn("Evaluation batch cancelled")
			}
			close(jobs)
			wg.Wait()
			close(results)
			return drain(results)
		case jobs <- snap:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	return drain(results)
}

func drain(results chan Evaluation) []Evaluation {
	out := make([]Evaluation, 0, len(results))
	for eval := range results {
		out = append(out, eval)
	}
	return out
}

// teamSummary computes (or reuses) a team's injury summary. The cache keys
// on the record content, not just the count, so a same-day status flip
// (QUESTIONABLE to OUT) or a DaysSince tick invalidates the cached summary.
func (e *Engine) teamSummary(game models.Game, team string, records []models.InjuryRecord) models.TeamInjurySummary {
	key := summaryCacheKey(game, team, records)
	if cached, ok := e.summaryCache.Get(key); ok {
		if summary, ok := cached.(models.TeamInjurySummary); ok {
			return summary
		}
	}
	summary := e.teamInjuries.CalculateTeamImpact(game.Sport, team, records)
	e.summaryCache.Set(key, summary, cache.DefaultExpiration)
	return summary
}

func summaryCacheKey(game models.Game, team string, records []models.InjuryRecord) string {
	h := fnv.New64a()
	if data, err := json.Marshal(records); err == nil {
		h.Write(data)
	}
	return fmt.Sprintf("%s:%s:%s:%x", game.Sport, team, game.KickoffTime.Format("2006-01-02"), h.Sum64())
}
