package weather

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// Calculator reconciles condition-based and alert-based weather estimates
// into a single impact. Pure computation; missing data degrades to a neutral
// zero-adjustment result rather than failing.
type Calculator struct {
	logger *logrus.Logger
}

// NewCalculator creates a weather impact calculator
func NewCalculator(logger *logrus.Logger) *Calculator {
	return &Calculator{logger: logger}
}

// CalculateImpact computes the weather point adjustment for a game. The
// final adjustment is the more severe of the condition-based and alert-based
// estimates, never their sum: alerts are issued because of conditions
// similar to those measured, so summing double-counts one physical event.
func (c *Calculator) CalculateImpact(obs models.WeatherObservation, kickoff time.Time, alerts []models.WeatherAlert) models.WeatherImpact {
	// Indoor venues short-circuit unconditionally
	if obs.Indoor {
		return models.WeatherImpact{
			Indoor:      true,
			Source:      models.WeatherSourceIndoor,
			Explanation: "Indoor venue, no weather impact",
		}
	}

	if !obs.HasData() && len(alerts) == 0 {
		return models.WeatherImpact{
			Source:      models.WeatherSourceNone,
			Explanation: "Weather data unavailable",
		}
	}

	condTotal, condSpread, condDetail := conditionAdjustment(obs)

	alertTotal, alertSpread := 0.0, 0.0
	alertDetail := ""
	if active := activeAlerts(alerts, kickoff); len(active) > 0 {
		alert, entry, ok := mostSevereAlert(active)
		if ok {
			alertTotal, alertSpread = entry.totalAdj, entry.spreadAdj
			alertDetail = alert.Event
		}
	}

	impact := reconcile(condTotal, condSpread, condDetail, alertTotal, alertSpread, alertDetail)

	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"condition_total": condTotal,
			"alert_total":     alertTotal,
			"final_total":     impact.TotalAdjustment,
			"source":          impact.Source,
		}).Debug("Weather impact calculated")
	}
	return impact
}

// conditionAdjustment combines the temperature, wind and precipitation bands
// additively and reports which factors contributed
func conditionAdjustment(obs models.WeatherObservation) (total, spread float64, detail string) {
	if obs.Temperature != nil {
		t, s := temperatureAdjustment(*obs.Temperature)
		total += t
		spread += s
		if t != 0 {
			detail += fmt.Sprintf("temp %.0fF ", *obs.Temperature)
		}
	}
	if obs.WindSpeed != nil {
		t, s := windAdjustment(*obs.WindSpeed)
		total += t
		spread += s
		if t != 0 {
			detail += fmt.Sprintf("wind %.0fmph ", *obs.WindSpeed)
		}
	}
	if obs.Precipitation != nil {
		t, s := precipitationAdjustment(*obs.Precipitation)
		total += t
		spread += s
		if t != 0 {
			detail += fmt.Sprintf("precip %.0f%% ", *obs.Precipitation*100)
		}
	}
	return total, spread, detail
}

// reconcile keeps the more severe (more negative total) of the two
// independent estimates and records which source won
func reconcile(condTotal, condSpread float64, condDetail string, alertTotal, alertSpread float64, alertDetail string) models.WeatherImpact {
	if alertTotal < condTotal {
		return models.WeatherImpact{
			TotalAdjustment:  alertTotal,
			SpreadAdjustment: alertSpread,
			Source:           models.WeatherSourceAlert,
			Explanation:      fmt.Sprintf("Active alert: %s", alertDetail),
		}
	}
	if condTotal == 0 {
		return models.WeatherImpact{
			Source:      models.WeatherSourceNone,
			Explanation: "Conditions within normal bands",
		}
	}
	return models.WeatherImpact{
		TotalAdjustment:  condTotal,
		SpreadAdjustment: condSpread,
		Source:           models.WeatherSourceConditions,
		Explanation:      fmt.Sprintf("Measured conditions: %s", condDetail),
	}
}
