package engine

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// GameSnapshot is the fully materialized per-game input the engine runs on.
// The ingestion layer is expected to have completed before the core runs;
// the engine never fetches, retries or times out.
type GameSnapshot struct {
	Game         models.Game               `json:"game" validate:"required"`
	HomeInjuries []models.InjuryRecord     `json:"home_injuries"`
	AwayInjuries []models.InjuryRecord     `json:"away_injuries"`
	Weather      models.WeatherObservation `json:"weather"`
	Alerts       []models.WeatherAlert     `json:"alerts"`
}

// Evaluation pairs the two outputs for one game
type Evaluation struct {
	Edge  models.GameEdge            `json:"edge"`
	Stake models.StakeRecommendation `json:"stake"`
}

// newSnapshotValidator builds the validator used to reject malformed input
// records. A missing market spread is the one hard failure the core has.
func newSnapshotValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("sport", func(fl validator.FieldLevel) bool {
		switch models.Sport(fl.Field().String()) {
		case models.SportNFL, models.SportNCAAF:
			return true
		}
		return false
	})
	return v
}

// validateSnapshot rejects snapshots missing required numeric fields
func validateSnapshot(v *validator.Validate, snap GameSnapshot) error {
	if snap.Game.MarketSpread == nil {
		return fmt.Errorf("game %s: %w", snap.Game.ID, models.ErrMissingMarketSpread)
	}
	if snap.Game.HomeTeam == "" || snap.Game.AwayTeam == "" {
		return fmt.Errorf("game %s: %w", snap.Game.ID, models.ErrMissingTeam)
	}
	if err := v.Struct(snap.Game); err != nil {
		return fmt.Errorf("game %s failed validation: %w", snap.Game.ID, err)
	}
	return nil
}
