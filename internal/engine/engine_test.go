package engine

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/ratings"
	"github.com/yourusername/gridiron-edge/internal/staking"
)

func newTestEngine() *Engine {
	return New(Config{Workers: 2, StakeConfig: staking.DefaultConfig()}, ratings.NewStore(nil), nil)
}

func snapshot(marketSpread float64) GameSnapshot {
	spread := marketSpread
	return GameSnapshot{
		Game: models.Game{
			ID:           uuid.New(),
			Sport:        models.SportNFL,
			Season:       2025,
			HomeTeam:     "KC",
			AwayTeam:     "LV",
			MarketSpread: &spread,
			KickoffTime:  time.Date(2025, 11, 30, 18, 0, 0, 0, time.UTC),
		},
	}
}

func TestEvaluateGameEndToEnd(t *testing.T) {
	eng := newTestEngine()

	snap := snapshot(-6.5)
	snap.AwayInjuries = []models.InjuryRecord{
		{PlayerName: "QB1", Team: "LV", Position: "QB", Tier: 1, StatusText: "Out", DaysSince: 2},
	}

	eval, err := eng.EvaluateGame(snap, decimal.NewFromInt(10000))
	require.NoError(t, err)

	// Cold-start ratings: margin = 0 + 2.5 + 7.0 = 9.5 -> line -9.5,
	// edge = -6.5 - (-9.5) = 3.0, with key crossings on 7: effective STRONG
	assert.InDelta(t, -9.5, eval.Edge.PredictedSpread, 1e-9)
	assert.InDelta(t, 3.0, eval.Edge.Edge, 1e-9)
	assert.Equal(t, models.SideHome, eval.Edge.Side)
	assert.False(t, eval.Stake.Pass)
	assert.Greater(t, eval.Stake.StakePercent, 0.0)
}

func TestMissingMarketSpreadIsHardFailure(t *testing.T) {
	eng := newTestEngine()

	snap := snapshot(-3.0)
	snap.Game.MarketSpread = nil

	_, err := eng.EvaluateGame(snap, decimal.NewFromInt(1000))
	assert.ErrorIs(t, err, models.ErrMissingMarketSpread)
}

func TestIndoorGameFlagPropagates(t *testing.T) {
	eng := newTestEngine()

	snap := snapshot(-3.0)
	snap.Game.Indoor = true
	temp := -5.0
	snap.Weather.Temperature = &temp

	eval, err := eng.EvaluateGame(snap, decimal.NewFromInt(1000))
	require.NoError(t, err)
	// Venue indoor flag zeroes weather even when the observation has data:
	// margin = 2.5 -> line -2.5, edge -0.5
	assert.InDelta(t, -2.5, eval.Edge.PredictedSpread, 1e-9)
}

func TestStatusChangeInvalidatesCachedSummary(t *testing.T) {
	eng := newTestEngine()

	snap := snapshot(-6.5)
	snap.AwayInjuries = []models.InjuryRecord{
		{PlayerName: "QB1", Team: "LV", Position: "QB", Tier: 1, StatusText: "Questionable", DaysSince: 2},
	}
	first, err := eng.EvaluateGame(snap, decimal.NewFromInt(10000))
	require.NoError(t, err)

	// Same game, same record count, but the status flipped to OUT. The
	// cached summary must not be reused.
	snap.AwayInjuries[0].StatusText = "Out"
	second, err := eng.EvaluateGame(snap, decimal.NewFromInt(10000))
	require.NoError(t, err)

	assert.NotEqual(t, first.Edge.PredictedSpread, second.Edge.PredictedSpread,
		"an OUT starter must move the line more than a QUESTIONABLE one")
	assert.InDelta(t, -9.5, second.Edge.PredictedSpread, 1e-9)
}

func TestDaysSinceTickInvalidatesCachedSummary(t *testing.T) {
	eng := newTestEngine()

	snap := snapshot(-3.0)
	snap.HomeInjuries = []models.InjuryRecord{
		{PlayerName: "WR1", Team: "KC", Position: "WR", Tier: 1, StatusText: "Questionable", Description: "ankle sprain", DaysSince: 2},
	}
	first, err := eng.EvaluateGame(snap, decimal.NewFromInt(10000))
	require.NoError(t, err)

	snap.HomeInjuries[0].DaysSince = 8
	second, err := eng.EvaluateGame(snap, decimal.NewFromInt(10000))
	require.NoError(t, err)

	assert.NotEqual(t, first.Edge.PredictedSpread, second.Edge.PredictedSpread,
		"recovery progress must recompute the injury summary")
}

func TestEvaluateAllSkipsMalformed(t *testing.T) {
	eng := newTestEngine()

	good := snapshot(-3.5)
	bad := snapshot(-1.0)
	bad.Game.MarketSpread = nil

	evals := eng.EvaluateAll(context.Background(), []GameSnapshot{good, bad, snapshot(-7.5)}, decimal.NewFromInt(5000))
	assert.Len(t, evals, 2)
}

func TestEvaluateAllParallelSafe(t *testing.T) {
	eng := New(Config{Workers: 8, StakeConfig: staking.DefaultConfig()}, ratings.NewStore(nil), nil)

	snaps := make([]GameSnapshot, 50)
	for i := range snaps {
		snaps[i] = snapshot(-3.5)
	}

	evals := eng.EvaluateAll(context.Background(), snaps, decimal.NewFromInt(10000))
	assert.Len(t, evals, 50)
	for _, eval := range evals {
		assert.Equal(t, evals[0].Edge.Edge, eval.Edge.Edge)
	}
}
