package staking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/yourusername/gridiron-edge/internal/models"
)

func edgeWith(bucket models.ConfidenceBucket, rawEdge float64) models.GameEdge {
	return models.GameEdge{
		GameID:     uuid.New(),
		Edge:       rawEdge,
		Confidence: bucket,
		Side:       models.SideHome,
	}
}

func TestDecimalOdds(t *testing.T) {
	assert.InDelta(t, 1.9090909, DecimalOdds(-110), 1e-6)
	assert.InDelta(t, 2.5, DecimalOdds(150), 1e-9)
	assert.InDelta(t, DecimalOdds(-110), DecimalOdds(0), 1e-9)
}

func TestKellyFraction(t *testing.T) {
	// p=0.58 at -110: b=10/11, f = (0.58*b - 0.42)/b
	b := 10.0 / 11.0
	expected := (0.58*b - 0.42) / b
	assert.InDelta(t, expected, KellyFraction(0.58, DecimalOdds(-110)), 1e-9)

	// Negative-expectation inputs return zero
	assert.Equal(t, 0.0, KellyFraction(0.50, DecimalOdds(-110)))
	assert.Equal(t, 0.0, KellyFraction(0, 1.91))
	assert.Equal(t, 0.0, KellyFraction(0.6, 1.0))
}

func TestNoPlayReturnsExplicitPass(t *testing.T) {
	sizer := NewSizer(DefaultConfig(), nil)

	rec := sizer.Recommend(edgeWith(models.BucketNoPlay, 0.5), decimal.NewFromInt(10000))
	assert.True(t, rec.Pass)
	assert.Equal(t, 0.0, rec.StakePercent)
	assert.True(t, rec.StakeAmount.IsZero())
}

func TestMalformedBucketMapsToPass(t *testing.T) {
	sizer := NewSizer(DefaultConfig(), nil)

	rec := sizer.Recommend(edgeWith(models.ConfidenceBucket("WAT"), 3.0), decimal.NewFromInt(10000))
	assert.True(t, rec.Pass)
	assert.GreaterOrEqual(t, rec.StakePercent, 0.0)
}

func TestStakeWithinCap(t *testing.T) {
	sizer := NewSizer(DefaultConfig(), nil)
	bankroll := decimal.NewFromInt(10000)

	for _, bucket := range []models.ConfidenceBucket{
		models.BucketLean, models.BucketModerate, models.BucketStrong, models.BucketVeryStrong,
	} {
		rec := sizer.Recommend(edgeWith(bucket, 5.0), bankroll)
		assert.False(t, rec.Pass, "bucket %s", bucket)
		assert.Greater(t, rec.StakePercent, 0.0)
		assert.LessOrEqual(t, rec.StakePercent, 0.03)
	}
}

func TestVeryStrongHitsCap(t *testing.T) {
	sizer := NewSizer(DefaultConfig(), nil)

	// p=0.77 at -110 full Kelly is ~51.7%, quarter Kelly ~12.9%: capped at 3%
	rec := sizer.Recommend(edgeWith(models.BucketVeryStrong, 8.0), decimal.NewFromInt(10000))
	assert.InDelta(t, 0.03, rec.StakePercent, 1e-9)
	assert.True(t, rec.StakeAmount.Equal(decimal.NewFromInt(300)))
}

func TestStakeNonDecreasingInEdge(t *testing.T) {
	sizer := NewSizer(DefaultConfig(), nil)
	bankroll := decimal.NewFromInt(10000)

	buckets := []models.ConfidenceBucket{
		models.BucketNoPlay, models.BucketLean, models.BucketModerate,
		models.BucketStrong, models.BucketVeryStrong,
	}
	prev := -1.0
	for _, bucket := range buckets {
		rec := sizer.Recommend(edgeWith(bucket, 1.0), bankroll)
		assert.GreaterOrEqual(t, rec.StakePercent, prev, "bucket %s", bucket)
		prev = rec.StakePercent
	}
}

func TestAmountRecomputedFromCurrentBankroll(t *testing.T) {
	sizer := NewSizer(DefaultConfig(), nil)
	gameEdge := edgeWith(models.BucketModerate, 3.0)

	first := sizer.Recommend(gameEdge, decimal.NewFromInt(10000))
	second := sizer.Recommend(gameEdge, decimal.NewFromInt(5000))

	assert.Equal(t, first.StakePercent, second.StakePercent)
	assert.True(t, second.StakeAmount.Equal(first.StakeAmount.Div(decimal.NewFromInt(2)).Round(2)))
}

func TestZeroBankrollPasses(t *testing.T) {
	sizer := NewSizer(DefaultConfig(), nil)

	rec := sizer.Recommend(edgeWith(models.BucketStrong, 5.0), decimal.Zero)
	assert.True(t, rec.Pass)
	assert.True(t, rec.StakeAmount.IsZero())
}
