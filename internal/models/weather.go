package models

import "time"

// WeatherObservation represents measured conditions at the venue
type WeatherObservation struct {
	Temperature   *float64 `json:"temperature"`    // Fahrenheit
	WindSpeed     *float64 `json:"wind_speed"`     // mph
	Precipitation *float64 `json:"precipitation"`  // probability 0-1
	Indoor        bool     `json:"indoor"`
}

// HasData reports whether any measured field is present
func (o *WeatherObservation) HasData() bool {
	return o.Temperature != nil || o.WindSpeed != nil || o.Precipitation != nil
}

// WeatherAlert represents a raw published alert (e.g. NWS) for the venue area
type WeatherAlert struct {
	Event  string    `json:"event"`
	Starts time.Time `json:"starts"`
	Ends   time.Time `json:"ends"`
	Source string    `json:"source"`
}

// Overlaps reports whether the alert window intersects [start, end]
func (a *WeatherAlert) Overlaps(start, end time.Time) bool {
	return !a.Starts.After(end) && !a.Ends.Before(start)
}

// WeatherSource identifies which estimate determined the final adjustment
type WeatherSource string

const (
	WeatherSourceNone       WeatherSource = "none"
	WeatherSourceConditions WeatherSource = "conditions"
	WeatherSourceAlert      WeatherSource = "alert"
	WeatherSourceIndoor     WeatherSource = "indoor"
)

// WeatherImpact is the derived point adjustment for a game
type WeatherImpact struct {
	TotalAdjustment  float64       `json:"total_adjustment"`
	SpreadAdjustment float64       `json:"spread_adjustment"`
	Indoor           bool          `json:"indoor"`
	Source           WeatherSource `json:"source"`
	Explanation      string        `json:"explanation"`
}
