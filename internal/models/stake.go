package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StakeRecommendation maps an edge to a capped fractional-Kelly wager.
// StakeAmount is always recomputed against the current bankroll.
type StakeRecommendation struct {
	ID             uuid.UUID        `json:"id"`
	GameID         uuid.UUID        `json:"game_id"`
	Edge           float64          `json:"edge"`
	Confidence     ConfidenceBucket `json:"confidence"`
	WinProbability float64          `json:"win_probability"`
	KellyFraction  float64          `json:"kelly_fraction"`
	StakePercent   float64          `json:"stake_percent"`
	StakeAmount    decimal.Decimal  `json:"stake_amount"`
	Bankroll       decimal.Decimal  `json:"bankroll"`
	Pass           bool             `json:"pass"`
	Reasoning      string           `json:"reasoning"`
	CreatedAt      time.Time        `json:"created_at"`
}

// IsPlayable reports whether the recommendation carries a non-zero stake
func (s *StakeRecommendation) IsPlayable() bool {
	return !s.Pass && s.StakePercent > 0
}
