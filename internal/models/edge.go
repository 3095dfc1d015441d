package models

import (
	"time"

	"github.com/google/uuid"
)

// ConfidenceBucket classifies an edge by magnitude. Each bucket carries a
// calibrated win-probability estimate consumed by the stake sizer.
type ConfidenceBucket string

const (
	BucketNoPlay     ConfidenceBucket = "NO_PLAY"
	BucketLean       ConfidenceBucket = "LEAN"
	BucketModerate   ConfidenceBucket = "MODERATE"
	BucketStrong     ConfidenceBucket = "STRONG"
	BucketVeryStrong ConfidenceBucket = "VERY_STRONG"
)

// BetSide indicates which side of the spread the edge favors
type BetSide string

const (
	SideHome BetSide = "HOME"
	SideAway BetSide = "AWAY"
	SideNone BetSide = "NONE"
)

// KeyNumberAlert flags a key margin the market/predicted interval crosses
type KeyNumberAlert struct {
	Number int     `json:"number"`
	Bonus  float64 `json:"bonus"`
}

// GameEdge is the derived, transient edge evaluation for one game
type GameEdge struct {
	GameID          uuid.UUID        `json:"game_id"`
	HomeTeam        string           `json:"home_team"`
	AwayTeam        string           `json:"away_team"`
	MarketSpread    float64          `json:"market_spread"`
	PredictedSpread float64          `json:"predicted_spread"`
	Edge            float64          `json:"edge"`
	KeyNumbers      []KeyNumberAlert `json:"key_numbers,omitempty"`
	Confidence      ConfidenceBucket `json:"confidence"`
	WinProbability  float64          `json:"win_probability"`
	Side            BetSide          `json:"side"`
	EvaluatedAt     time.Time        `json:"evaluated_at"`
}

// AbsEdge returns the edge magnitude used for bucket classification
func (e *GameEdge) AbsEdge() float64 {
	if e.Edge < 0 {
		return -e.Edge
	}
	return e.Edge
}
