package weather

import (
	"strings"
	"time"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// gameWindow is how much play time an alert must overlap to count
const gameWindow = 3 * time.Hour

// alertEntry maps an alert event name to its calibrated adjustment
type alertEntry struct {
	totalAdj  float64
	spreadAdj float64
	severity  int
}

// alertTable is keyed by the lowercase NWS event name. Warnings outrank
// watches and advisories; blizzard, ice storm and extreme wind are the most
// severe events a game is realistically played through.
var alertTable = map[string]alertEntry{
	"blizzard warning":         {-8.0, -2.5, 5},
	"ice storm warning":        {-8.0, -2.5, 5},
	"extreme wind warning":     {-7.0, -2.0, 5},
	"winter storm warning":     {-6.0, -2.0, 4},
	"high wind warning":        {-5.0, -1.5, 4},
	"severe thunderstorm warning": {-4.0, -1.25, 3},
	"winter storm watch":       {-3.0, -1.0, 2},
	"high wind watch":          {-2.5, -0.75, 2},
	"wind chill warning":       {-3.0, -1.0, 3},
	"winter weather advisory":  {-2.0, -0.5, 1},
	"wind advisory":            {-1.5, -0.5, 1},
	"wind chill advisory":      {-1.5, -0.5, 1},
	"dense fog advisory":       {-1.0, -0.25, 1},
}

// genericAdvisory is used when an alert's event name has no table row.
// Mildest severity: an unknown alert still signals something is happening.
var genericAdvisory = alertEntry{-1.0, -0.25, 1}

// activeAlerts filters alerts to those overlapping [kickoff, kickoff+3h]
func activeAlerts(alerts []models.WeatherAlert, kickoff time.Time) []models.WeatherAlert {
	end := kickoff.Add(gameWindow)
	var active []models.WeatherAlert
	for _, a := range alerts {
		if a.Overlaps(kickoff, end) {
			active = append(active, a)
		}
	}
	return active
}

// mostSevereAlert picks the single most severe active alert. Multiple alerts
// are usually issued for one physical event, so they are never summed.
func mostSevereAlert(alerts []models.WeatherAlert) (models.WeatherAlert, alertEntry, bool) {
	var (
		best      models.WeatherAlert
		bestEntry alertEntry
		found     bool
	)
	for _, a := range alerts {
		entry, ok := alertTable[strings.ToLower(strings.TrimSpace(a.Event))]
		if !ok {
			entry = genericAdvisory
		}
		if !found || entry.severity > bestEntry.severity ||
			(entry.severity == bestEntry.severity && entry.totalAdj < bestEntry.totalAdj) {
			best, bestEntry, found = a, entry, true
		}
	}
	return best, bestEntry, found
}
