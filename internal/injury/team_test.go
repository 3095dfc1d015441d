package injury

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/positions"
)

func newTeamCalculator() *TeamCalculator {
	return NewTeamCalculator(NewCalculator(nil, nil), positions.NewTable(nil), nil)
}

func TestSinglePlayerOutMinorSeverity(t *testing.T) {
	tc := newTeamCalculator()

	// A tier-1 tight end (base 1.5 would be MINOR too, but the scenario uses
	// a 1.2-point player: tier-2 EDGE rusher fits at 1.25).
	table := positions.NewTable(map[positions.Key]float64{
		{Sport: models.SportNFL, Position: "TE", Tier: 2}: 1.2,
	})
	tc.table = table

	summary := tc.CalculateTeamImpact(models.SportNFL, "NYJ", []models.InjuryRecord{
		{PlayerName: "T. Smith", Team: "NYJ", Position: "TE", Tier: 2, StatusText: "Out", DaysSince: 1},
	})

	assert.InDelta(t, 1.2, summary.TotalImpact, 1e-9)
	assert.Equal(t, models.SeverityMinor, summary.Severity)
	assert.Equal(t, models.ConfidenceMedium, summary.Confidence)
	assert.Len(t, summary.Players, 1)
	assert.Equal(t, 0.0, summary.Players[0].AdjustedValue)
}

func TestEmptyReportNegligible(t *testing.T) {
	tc := newTeamCalculator()
	summary := tc.CalculateTeamImpact(models.SportNFL, "GB", nil)

	assert.Equal(t, 0.0, summary.TotalImpact)
	assert.Equal(t, models.SeverityNegligible, summary.Severity)
	assert.Equal(t, models.ConfidenceLow, summary.Confidence)
}

func TestClassifyImpactBreakpoints(t *testing.T) {
	tests := []struct {
		impact     float64
		severity   models.InjurySeverity
		confidence models.InjuryConfidence
	}{
		{0.0, models.SeverityNegligible, models.ConfidenceLow},
		{0.9, models.SeverityNegligible, models.ConfidenceLow},
		{1.0, models.SeverityMinor, models.ConfidenceMedium},
		{2.0, models.SeverityModerate, models.ConfidenceMedium},
		{4.0, models.SeverityMajor, models.ConfidenceHigh},
		{7.0, models.SeverityCritical, models.ConfidenceHigh},
		{12.5, models.SeverityCritical, models.ConfidenceHigh},
	}
	for _, tt := range tests {
		severity, confidence := classifyImpact(tt.impact)
		assert.Equal(t, tt.severity, severity, "impact %.1f", tt.impact)
		assert.Equal(t, tt.confidence, confidence, "impact %.1f", tt.impact)
	}
}

func TestQuarterbackOutIsCritical(t *testing.T) {
	tc := newTeamCalculator()

	summary := tc.CalculateTeamImpact(models.SportNFL, "CIN", []models.InjuryRecord{
		{PlayerName: "J. Burrow", Team: "CIN", Position: "QB", Tier: 1, StatusText: "Out", Description: "wrist", DaysSince: 2},
	})
	assert.Equal(t, models.SeverityCritical, summary.Severity)
	assert.Equal(t, models.ConfidenceHigh, summary.Confidence)
}
