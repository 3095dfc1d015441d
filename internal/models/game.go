package models

import (
	"time"

	"github.com/google/uuid"
)

// Sport identifies the league a game belongs to
type Sport string

const (
	SportNFL   Sport = "NFL"
	SportNCAAF Sport = "NCAAF"
)

// Game represents a normalized upcoming game record from the ingestion layer
type Game struct {
	ID           uuid.UUID `db:"id" json:"id" validate:"required"`
	Sport        Sport     `db:"sport" json:"sport" validate:"required,sport"`
	Season       int       `db:"season" json:"season" validate:"required,gt=0"`
	HomeTeam     string    `db:"home_team" json:"home_team" validate:"required"`
	AwayTeam     string    `db:"away_team" json:"away_team" validate:"required"`
	MarketSpread *float64  `db:"market_spread" json:"market_spread" validate:"required"`
	MarketTotal  *float64  `db:"market_total" json:"market_total"`
	KickoffTime  time.Time `db:"kickoff_time" json:"kickoff_time" validate:"required"`
	Venue        string    `db:"venue" json:"venue"`
	Indoor       bool      `db:"indoor" json:"indoor"`
}

// GameResult represents a completed game from the historical results feed.
// Results must be consumed strictly in chronological order.
type GameResult struct {
	Sport     Sport     `db:"sport" json:"sport" validate:"required,sport"`
	Season    int       `db:"season" json:"season" validate:"required,gt=0"`
	Week      int       `db:"week" json:"week" validate:"required,gt=0"`
	HomeTeam  string    `db:"home_team" json:"home_team" validate:"required"`
	AwayTeam  string    `db:"away_team" json:"away_team" validate:"required"`
	HomeScore int       `db:"home_score" json:"home_score" validate:"gte=0"`
	AwayScore int       `db:"away_score" json:"away_score" validate:"gte=0"`
	PlayedAt  time.Time `db:"played_at" json:"played_at"`
	// Sequence is the monotonically increasing token per (sport, season)
	// scope that the rating store uses to reject replays.
	Sequence int64 `db:"sequence" json:"sequence" validate:"gte=0"`
}

// ScoreDifferential returns the home-perspective margin of victory
func (r *GameResult) ScoreDifferential() float64 {
	return float64(r.HomeScore - r.AwayScore)
}
