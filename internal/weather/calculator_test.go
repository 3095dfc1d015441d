package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yourusername/gridiron-edge/internal/models"
)

func f(v float64) *float64 { return &v }

var kickoff = time.Date(2025, 12, 14, 18, 0, 0, 0, time.UTC)

func TestConditionOnlyAdjustment(t *testing.T) {
	calc := NewCalculator(nil)

	// 25F (-2.0/-0.75) plus 18mph wind (-3.0/-0.75), no precipitation
	impact := calc.CalculateImpact(models.WeatherObservation{
		Temperature: f(25),
		WindSpeed:   f(18),
	}, kickoff, nil)

	assert.InDelta(t, -5.0, impact.TotalAdjustment, 1e-9)
	assert.InDelta(t, -1.5, impact.SpreadAdjustment, 1e-9)
	assert.Equal(t, models.WeatherSourceConditions, impact.Source)
}

func TestIndoorShortCircuits(t *testing.T) {
	calc := NewCalculator(nil)

	impact := calc.CalculateImpact(models.WeatherObservation{
		Temperature:   f(-10),
		WindSpeed:     f(40),
		Precipitation: f(1.0),
		Indoor:        true,
	}, kickoff, []models.WeatherAlert{
		{Event: "Blizzard Warning", Starts: kickoff.Add(-time.Hour), Ends: kickoff.Add(4 * time.Hour)},
	})

	assert.Equal(t, 0.0, impact.TotalAdjustment)
	assert.Equal(t, 0.0, impact.SpreadAdjustment)
	assert.True(t, impact.Indoor)
	assert.Equal(t, models.WeatherSourceIndoor, impact.Source)
}

func TestMissingDataNeutral(t *testing.T) {
	calc := NewCalculator(nil)

	impact := calc.CalculateImpact(models.WeatherObservation{}, kickoff, nil)
	assert.Equal(t, 0.0, impact.TotalAdjustment)
	assert.Equal(t, models.WeatherSourceNone, impact.Source)
	assert.Contains(t, impact.Explanation, "unavailable")
}

func TestAlertWinsWhenMoreSevere(t *testing.T) {
	calc := NewCalculator(nil)

	obs := models.WeatherObservation{Temperature: f(35), WindSpeed: f(12)} // -1.0 + -1.5 = -2.5
	alerts := []models.WeatherAlert{
		{Event: "Blizzard Warning", Starts: kickoff, Ends: kickoff.Add(2 * time.Hour)},
	}

	impact := calc.CalculateImpact(obs, kickoff, alerts)
	assert.InDelta(t, -8.0, impact.TotalAdjustment, 1e-9)
	assert.Equal(t, models.WeatherSourceAlert, impact.Source)
}

func TestConditionsWinWhenMoreSevere(t *testing.T) {
	calc := NewCalculator(nil)

	obs := models.WeatherObservation{Temperature: f(15), WindSpeed: f(25), Precipitation: f(0.9)} // -4.0 -4.5 -3.0 = -11.5
	alerts := []models.WeatherAlert{
		{Event: "Wind Advisory", Starts: kickoff, Ends: kickoff.Add(2 * time.Hour)},
	}

	impact := calc.CalculateImpact(obs, kickoff, alerts)
	assert.InDelta(t, -11.5, impact.TotalAdjustment, 1e-9)
	assert.Equal(t, models.WeatherSourceConditions, impact.Source)
}

// Regression guard: the final adjustment is min(condition, alert), never sum
func TestNeverSumsEstimates(t *testing.T) {
	calc := NewCalculator(nil)

	obs := models.WeatherObservation{Temperature: f(22)} // -3.0
	alerts := []models.WeatherAlert{
		{Event: "Wind Chill Warning", Starts: kickoff, Ends: kickoff.Add(time.Hour)}, // -3.0
	}

	impact := calc.CalculateImpact(obs, kickoff, alerts)
	assert.InDelta(t, -3.0, impact.TotalAdjustment, 1e-9)
}

func TestExpiredAlertsIgnored(t *testing.T) {
	calc := NewCalculator(nil)

	alerts := []models.WeatherAlert{
		{Event: "Blizzard Warning", Starts: kickoff.Add(-10 * time.Hour), Ends: kickoff.Add(-5 * time.Hour)},
		{Event: "Blizzard Warning", Starts: kickoff.Add(4 * time.Hour), Ends: kickoff.Add(8 * time.Hour)},
	}

	impact := calc.CalculateImpact(models.WeatherObservation{Temperature: f(45)}, kickoff, alerts)
	assert.Equal(t, 0.0, impact.TotalAdjustment)
	assert.Equal(t, models.WeatherSourceNone, impact.Source)
}

func TestMultipleAlertsTakeSingleMostSevere(t *testing.T) {
	calc := NewCalculator(nil)

	alerts := []models.WeatherAlert{
		{Event: "Wind Advisory", Starts: kickoff, Ends: kickoff.Add(time.Hour)},
		{Event: "Winter Storm Warning", Starts: kickoff, Ends: kickoff.Add(time.Hour)},
		{Event: "Winter Weather Advisory", Starts: kickoff, Ends: kickoff.Add(time.Hour)},
	}

	impact := calc.CalculateImpact(models.WeatherObservation{}, kickoff, alerts)
	assert.InDelta(t, -6.0, impact.TotalAdjustment, 1e-9)
	assert.Contains(t, impact.Explanation, "Winter Storm Warning")
}

func TestUnknownAlertMapsToGenericAdvisory(t *testing.T) {
	calc := NewCalculator(nil)

	alerts := []models.WeatherAlert{
		{Event: "Volcanic Ash Advisory", Starts: kickoff, Ends: kickoff.Add(time.Hour)},
	}

	impact := calc.CalculateImpact(models.WeatherObservation{}, kickoff, alerts)
	assert.InDelta(t, -1.0, impact.TotalAdjustment, 1e-9)
	assert.Equal(t, models.WeatherSourceAlert, impact.Source)
}

func TestSpreadNeverExceedsTotalMagnitude(t *testing.T) {
	calc := NewCalculator(nil)

	temps := []float64{10, 22, 28, 35, 60}
	winds := []float64{5, 12, 18, 25}
	precips := []float64{0, 0.4, 0.6, 0.9}
	for _, temp := range temps {
		for _, wind := range winds {
			for _, precip := range precips {
				impact := calc.CalculateImpact(models.WeatherObservation{
					Temperature: f(temp), WindSpeed: f(wind), Precipitation: f(precip),
				}, kickoff, nil)
				assert.LessOrEqual(t, -impact.SpreadAdjustment, -impact.TotalAdjustment,
					"temp=%v wind=%v precip=%v", temp, wind, precip)
			}
		}
	}
}
