package injury

import (
	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/positions"
)

// Severity breakpoints over total team point impact. These double as
// calibrated win-rate proxies consumed by the stake sizer; changing them
// requires re-validating the confidence bucket table.
const (
	criticalThreshold = 7.0
	majorThreshold    = 4.0
	moderateThreshold = 2.0
	minorThreshold    = 1.0
)

// TeamCalculator aggregates per-player injury impacts for one team
type TeamCalculator struct {
	calculator *Calculator
	table      *positions.Table
	logger     *logrus.Logger
}

// NewTeamCalculator creates a team-level injury aggregator
func NewTeamCalculator(calculator *Calculator, table *positions.Table, logger *logrus.Logger) *TeamCalculator {
	return &TeamCalculator{calculator: calculator, table: table, logger: logger}
}

// CalculateTeamImpact sums per-player impacts and classifies the total.
// It accepts the raw feed records and owns the status/description parsing.
func (tc *TeamCalculator) CalculateTeamImpact(sport models.Sport, team string, records []models.InjuryRecord) models.TeamInjurySummary {
	summary := models.TeamInjurySummary{
		Team:       team,
		Severity:   models.SeverityNegligible,
		Confidence: models.ConfidenceLow,
	}

	for _, rec := range records {
		injuryType := Classify(rec.StatusText, rec.Description)
		baseValue := tc.table.Lookup(sport, rec.Position, rec.Tier)
		adjusted, impact, explanation := tc.calculator.CalculateImpact(baseValue, injuryType, rec.DaysSince)

		summary.TotalImpact += impact
		summary.Players = append(summary.Players, models.PlayerImpact{
			PlayerName:    rec.PlayerName,
			Position:      rec.Position,
			InjuryType:    string(injuryType),
			BaseValue:     baseValue,
			AdjustedValue: adjusted,
			Impact:        impact,
			Explanation:   explanation,
		})
	}

	summary.Severity, summary.Confidence = classifyImpact(summary.TotalImpact)

	if tc.logger != nil {
		tc.logger.WithFields(logrus.Fields{
			"team":         team,
			"players":      len(records),
			"total_impact": summary.TotalImpact,
			"severity":     summary.Severity,
		}).Debug("Team injury impact calculated")
	}
	return summary
}

// classifyImpact maps a total point impact onto the severity/confidence scale
func classifyImpact(totalImpact float64) (models.InjurySeverity, models.InjuryConfidence) {
	switch {
	case totalImpact >= criticalThreshold:
		return models.SeverityCritical, models.ConfidenceHigh
	case totalImpact >= majorThreshold:
		return models.SeverityMajor, models.ConfidenceHigh
	case totalImpact >= moderateThreshold:
		return models.SeverityModerate, models.ConfidenceMedium
	case totalImpact >= minorThreshold:
		return models.SeverityMinor, models.ConfidenceMedium
	default:
		return models.SeverityNegligible, models.ConfidenceLow
	}
}
