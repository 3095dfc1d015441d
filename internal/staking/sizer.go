package staking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/edge"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// Config holds the stake sizing parameters
type Config struct {
	// KellyMultiplier scales the raw Kelly fraction for variance control,
	// typically 0.25 to 0.5
	KellyMultiplier float64
	// MaxStakePercent caps the stake as a fraction of bankroll (0.03 = 3%)
	MaxStakePercent float64
	// AmericanOdds is the assumed price for spread bets, typically -110
	AmericanOdds int
}

// DefaultConfig returns the standard fractional-Kelly parameters
func DefaultConfig() Config {
	return Config{
		KellyMultiplier: 0.25,
		MaxStakePercent: 0.03,
		AmericanOdds:    -110,
	}
}

// Sizer converts game edges into stake recommendations
type Sizer struct {
	config Config
	logger *logrus.Logger
}

// NewSizer creates a stake sizer
func NewSizer(config Config, logger *logrus.Logger) *Sizer {
	if config.KellyMultiplier <= 0 {
		config.KellyMultiplier = 0.25
	}
	if config.MaxStakePercent <= 0 {
		config.MaxStakePercent = 0.03
	}
	return &Sizer{config: config, logger: logger}
}

// Recommend maps (edge, confidence bucket, bankroll) to a stake. The amount
// is always recomputed against the bankroll passed in, never cached. Below
// the NO_PLAY threshold an explicit pass is returned rather than a
// zero-amount bet. Malformed buckets degrade to NO_PLAY; the result never
// carries NaN or negative values.
func (s *Sizer) Recommend(gameEdge models.GameEdge, bankroll decimal.Decimal) models.StakeRecommendation {
	rec := models.StakeRecommendation{
		ID:         uuid.New(),
		GameID:     gameEdge.GameID,
		Edge:       gameEdge.Edge,
		Confidence: gameEdge.Confidence,
		Bankroll:   bankroll,
		CreatedAt:  time.Now().UTC(),
	}

	winProb := edge.WinProbability(gameEdge.Confidence)
	rec.WinProbability = winProb

	if gameEdge.Confidence == models.BucketNoPlay || !knownBucket(gameEdge.Confidence) {
		rec.Pass = true
		rec.StakeAmount = decimal.Zero
		rec.Reasoning = "Edge below playable threshold"
		return rec
	}

	kelly := KellyFraction(winProb, DecimalOdds(s.config.AmericanOdds))
	rec.KellyFraction = kelly

	stakePct := kelly * s.config.KellyMultiplier
	if stakePct > s.config.MaxStakePercent {
		stakePct = s.config.MaxStakePercent
	}
	if stakePct <= 0 || bankroll.Sign() <= 0 {
		rec.Pass = true
		rec.StakeAmount = decimal.Zero
		rec.Reasoning = "No positive-expectation stake available"
		return rec
	}

	rec.StakePercent = stakePct
	rec.StakeAmount = bankroll.Mul(decimal.NewFromFloat(stakePct)).Round(2)
	rec.Reasoning = fmt.Sprintf("%s edge %.1f, fractional Kelly %.2f%% of bankroll",
		gameEdge.Confidence, gameEdge.AbsEdge(), stakePct*100)

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"game":          gameEdge.GameID,
			"bucket":        gameEdge.Confidence,
			"win_prob":      winProb,
			"kelly":         kelly,
			"stake_percent": stakePct,
			"stake_amount":  rec.StakeAmount,
		}).Debug("Stake recommendation calculated")
	}
	return rec
}

func knownBucket(b models.ConfidenceBucket) bool {
	switch b {
	case models.BucketNoPlay, models.BucketLean, models.BucketModerate,
		models.BucketStrong, models.BucketVeryStrong:
		return true
	}
	return false
}
