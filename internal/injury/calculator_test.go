package injury

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnkleSprainMidRecovery(t *testing.T) {
	calc := NewCalculator(nil, nil)

	// Day 5 of a 10-day recovery from 80% immediate capacity: halfway up
	// the ramp, so capacity 0.90.
	adjusted, impact, _ := calc.CalculateImpact(4.5, TypeAnkleSprain, 5)
	assert.InDelta(t, 4.05, adjusted, 1e-9)
	assert.InDelta(t, 0.45, impact, 1e-9)
}

func TestOutPlayerFullImpact(t *testing.T) {
	calc := NewCalculator(nil, nil)

	adjusted, impact, _ := calc.CalculateImpact(1.2, TypeOut, 0)
	assert.Equal(t, 0.0, adjusted)
	assert.Equal(t, 1.2, impact)
}

func TestCapacityEndpoints(t *testing.T) {
	calc := NewCalculator(nil, nil)
	table := NewProfileTable(nil)

	for injuryType, profile := range table.profiles {
		if profile.SeasonEnding {
			continue
		}
		assert.InDelta(t, profile.ImmediateCapacity, calc.Capacity(injuryType, 0), 1e-9,
			"capacity at day 0 for %s", injuryType)
		assert.InDelta(t, 1.0, calc.Capacity(injuryType, profile.RecoveryDays), 1e-9,
			"capacity at recovery horizon for %s", injuryType)
	}
}

func TestImpactBounded(t *testing.T) {
	calc := NewCalculator(nil, nil)
	table := NewProfileTable(nil)

	baseValues := []float64{0, 0.25, 1.2, 4.5, 7.0}
	days := []int{0, 1, 5, 10, 30, 120, 400}
	for injuryType := range table.profiles {
		for _, base := range baseValues {
			for _, d := range days {
				adjusted, impact, _ := calc.CalculateImpact(base, injuryType, d)
				assert.GreaterOrEqual(t, impact, 0.0)
				assert.LessOrEqual(t, impact, base)
				assert.GreaterOrEqual(t, adjusted, 0.0)
				assert.LessOrEqual(t, adjusted, base)
			}
		}
	}
}

func TestFullRecoveryAfterLingerWindow(t *testing.T) {
	calc := NewCalculator(nil, nil)

	// Inside the lingering window the adjusted value carries a flat discount
	adjusted, impact, explanation := calc.CalculateImpact(4.0, TypeHamstring, 20)
	assert.InDelta(t, 4.0*0.95, adjusted, 1e-9)
	assert.Greater(t, impact, 0.0)
	assert.Contains(t, explanation, "lingering")

	// Past it the player is at full value
	adjusted, impact, explanation = calc.CalculateImpact(4.0, TypeHamstring, 29)
	assert.Equal(t, 4.0, adjusted)
	assert.Equal(t, 0.0, impact)
	assert.Equal(t, "Fully recovered", explanation)
}

func TestSeasonEndingReturnsAfterRecovery(t *testing.T) {
	calc := NewCalculator(nil, nil)

	profile, ok := NewProfileTable(nil).Get(TypeACLTear)
	require.True(t, ok)

	adjusted, impact, _ := calc.CalculateImpact(7.0, TypeACLTear, profile.RecoveryDays-1)
	assert.Equal(t, 0.0, adjusted)
	assert.Equal(t, 7.0, impact)

	// Back on the field but still inside the lingering window
	adjusted, _, _ = calc.CalculateImpact(7.0, TypeACLTear, profile.RecoveryDays)
	assert.InDelta(t, 7.0*0.90, adjusted, 1e-9)

	adjusted, impact, _ = calc.CalculateImpact(7.0, TypeACLTear, profile.RecoveryDays+profile.LingerDays)
	assert.Equal(t, 7.0, adjusted)
	assert.Equal(t, 0.0, impact)
}

func TestUnknownTypeUsesFallback(t *testing.T) {
	calc := NewCalculator(nil, nil)

	adjusted, impact, _ := calc.CalculateImpact(2.0, Type("MYSTERY"), 0)
	assert.InDelta(t, 2.0*fallbackProfile.ImmediateCapacity, adjusted, 1e-9)
	assert.InDelta(t, 2.0*(1-fallbackProfile.ImmediateCapacity), impact, 1e-9)
}

func TestNegativeInputsClamped(t *testing.T) {
	calc := NewCalculator(nil, nil)

	adjusted, impact, _ := calc.CalculateImpact(-3.0, TypeAnkleSprain, -5)
	assert.Equal(t, 0.0, adjusted)
	assert.Equal(t, 0.0, impact)
}
