package injury

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Calculator converts (base value, injury type, days since injury) into an
// adjusted point value. It is a pure computation over the profile table and
// never returns an error: unknown types degrade to the conservative fallback.
type Calculator struct {
	profiles *ProfileTable
	logger   *logrus.Logger
}

// NewCalculator creates an injury impact calculator
func NewCalculator(profiles *ProfileTable, logger *logrus.Logger) *Calculator {
	if profiles == nil {
		profiles = NewProfileTable(nil)
	}
	return &Calculator{profiles: profiles, logger: logger}
}

// Capacity returns the expected fraction of normal contribution for an
// injury type after the given number of elapsed days. Season-ending types
// hold at zero for the full recovery window; all others ramp linearly from
// the immediate post-injury capacity to 1.0 at the recovery horizon.
func (c *Calculator) Capacity(injuryType Type, daysSince int) float64 {
	profile, _ := c.profiles.Get(injuryType)
	return capacity(profile, daysSince)
}

func capacity(p Profile, daysSince int) float64 {
	if daysSince < 0 {
		daysSince = 0
	}
	if p.SeasonEnding {
		if daysSince < p.RecoveryDays {
			return 0.0
		}
		return 1.0
	}
	if p.RecoveryDays <= 0 || daysSince >= p.RecoveryDays {
		return 1.0
	}
	progress := float64(daysSince) / float64(p.RecoveryDays)
	return p.ImmediateCapacity + (1.0-p.ImmediateCapacity)*progress
}

// CalculateImpact returns the adjusted value, the point impact and a short
// explanation for a player with the given healthy base value. The impact is
// guaranteed to lie in [0, baseValue].
func (c *Calculator) CalculateImpact(baseValue float64, injuryType Type, daysSince int) (adjusted, impact float64, explanation string) {
	if baseValue < 0 {
		baseValue = 0
	}
	if daysSince < 0 {
		daysSince = 0
	}

	profile, known := c.profiles.Get(injuryType)
	if !known && c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"injury_type": injuryType,
		}).Debug("Unknown injury type, using conservative fallback profile")
	}

	// Lingering window: the recovery ramp is complete but reduced snaps and
	// re-injury risk keep the player slightly below full value.
	if daysSince >= profile.RecoveryDays {
		lingerEnd := profile.RecoveryDays + profile.LingerDays
		if profile.LingerDays > 0 && daysSince < lingerEnd {
			adjusted = clamp(baseValue*profile.LingerFactor, 0, baseValue)
			return adjusted, baseValue - adjusted,
				fmt.Sprintf("Recovered from %s; lingering effects through day %d", injuryType, lingerEnd)
		}
		return baseValue, 0, "Fully recovered"
	}

	cap := capacity(profile, daysSince)
	adjusted = clamp(baseValue*cap, 0, baseValue)
	impact = baseValue - adjusted

	if profile.SeasonEnding {
		explanation = fmt.Sprintf("%s: out until day %d", injuryType, profile.RecoveryDays)
	} else {
		explanation = fmt.Sprintf("%s: day %d of %d, capacity %.0f%%",
			injuryType, daysSince, profile.RecoveryDays, cap*100)
	}
	return adjusted, impact, explanation
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
