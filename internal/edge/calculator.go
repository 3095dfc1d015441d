// Package edge combines power ratings, injury and weather adjustments into a
// predicted line and compares it to the published market line.
package edge

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/ratings"
)

// RatingSource provides current team power ratings. Unrated teams return
// 0.0, so a cold-start team degrades to zero rating signal by construction.
type RatingSource interface {
	Rating(sport models.Sport, team string) float64
}

// Input is the fully materialized per-game snapshot the calculator consumes
type Input struct {
	Game          models.Game
	HomeInjuries  models.TeamInjurySummary
	AwayInjuries  models.TeamInjurySummary
	WeatherImpact models.WeatherImpact
}

// Calculator evaluates market edges. Pure computation over the rating source.
type Calculator struct {
	ratings RatingSource
	logger  *logrus.Logger
}

// NewCalculator creates a market edge calculator
func NewCalculator(source RatingSource, logger *logrus.Logger) *Calculator {
	return &Calculator{ratings: source, logger: logger}
}

// Evaluate computes the edge for one game.
//
// Spread convention: negative means the home team is favored. The predicted
// spread is built home-minus-away, then negated into line convention so it
// compares directly to the market number. A positive edge means the market
// line is too high on the home side (value on HOME); negative means value on
// AWAY.
func (c *Calculator) Evaluate(in Input) models.GameEdge {
	game := in.Game

	homeRating := c.ratings.Rating(game.Sport, game.HomeTeam)
	awayRating := c.ratings.Rating(game.Sport, game.AwayTeam)

	// Net adjustments from the home team's perspective: home injuries hurt
	// the home margin, away injuries help it.
	netInjury := in.AwayInjuries.TotalImpact - in.HomeInjuries.TotalImpact
	netWeather := in.WeatherImpact.SpreadAdjustment

	predictedMargin := (homeRating - awayRating) + ratings.HomeField(game.Sport) + netInjury + netWeather
	predictedSpread := -predictedMargin

	marketSpread := 0.0
	if game.MarketSpread != nil {
		marketSpread = *game.MarketSpread
	}

	rawEdge := marketSpread - predictedSpread
	keyAlerts := scanKeyNumbers(marketSpread, predictedSpread)

	absEdge := rawEdge
	if absEdge < 0 {
		absEdge = -absEdge
	}
	// Key-number crossings raise confidence without altering the raw edge
	bucket, winProb := ClassifyEdge(absEdge + totalBonus(keyAlerts))

	side := models.SideNone
	if bucket != models.BucketNoPlay {
		if rawEdge > 0 {
			side = models.SideHome
		} else {
			side = models.SideAway
		}
	}

	gameEdge := models.GameEdge{
		GameID:          game.ID,
		HomeTeam:        game.HomeTeam,
		AwayTeam:        game.AwayTeam,
		MarketSpread:    marketSpread,
		PredictedSpread: predictedSpread,
		Edge:            rawEdge,
		KeyNumbers:      keyAlerts,
		Confidence:      bucket,
		WinProbability:  winProb,
		Side:            side,
		EvaluatedAt:     time.Now().UTC(),
	}

	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"game":      game.ID,
			"market":    marketSpread,
			"predicted": predictedSpread,
			"edge":      rawEdge,
			"bucket":    bucket,
			"side":      side,
		}).Debug("Edge evaluated")
	}
	return gameEdge
}
