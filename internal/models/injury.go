package models

// InjurySeverity classifies the aggregate point impact of a team's injuries
type InjurySeverity string

const (
	SeverityNegligible InjurySeverity = "NEGLIGIBLE"
	SeverityMinor      InjurySeverity = "MINOR"
	SeverityModerate   InjurySeverity = "MODERATE"
	SeverityMajor      InjurySeverity = "MAJOR"
	SeverityCritical   InjurySeverity = "CRITICAL"
)

// InjuryConfidence expresses how much trust the severity classification carries
type InjuryConfidence string

const (
	ConfidenceLow    InjuryConfidence = "LOW"
	ConfidenceMedium InjuryConfidence = "MEDIUM"
	ConfidenceHigh   InjuryConfidence = "HIGH"
)

// InjuryRecord represents one player's injury status from the normalized feed
type InjuryRecord struct {
	PlayerName  string `db:"player_name" json:"player_name" validate:"required"`
	Team        string `db:"team" json:"team" validate:"required"`
	Position    string `db:"position" json:"position" validate:"required"`
	Tier        int    `db:"tier" json:"tier" validate:"gte=1,lte=3"`
	StatusText  string `db:"status_text" json:"status_text"`
	Description string `db:"description" json:"description"`
	// DaysSince is days elapsed since the injury occurred, never negative.
	DaysSince int `db:"days_since" json:"days_since" validate:"gte=0"`
}

// PlayerImpact is the per-player output of the injury impact calculator
type PlayerImpact struct {
	PlayerName    string  `json:"player_name"`
	Position      string  `json:"position"`
	InjuryType    string  `json:"injury_type"`
	BaseValue     float64 `json:"base_value"`
	AdjustedValue float64 `json:"adjusted_value"`
	Impact        float64 `json:"impact"`
	Explanation   string  `json:"explanation"`
}

// TeamInjurySummary aggregates player impacts into a team-level classification
type TeamInjurySummary struct {
	Team        string           `json:"team"`
	TotalImpact float64          `json:"total_impact"`
	Severity    InjurySeverity   `json:"severity"`
	Confidence  InjuryConfidence `json:"confidence"`
	Players     []PlayerImpact   `json:"players"`
}
