// Package positions provides the static position value table: the baseline
// point value a healthy player contributes, keyed by sport, position and tier.
package positions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// Key identifies one row of the position value table
type Key struct {
	Sport    models.Sport
	Position string
	Tier     int
}

// Table is an immutable lookup of baseline point values. It is loaded once
// at startup and may be freely shared across goroutines.
type Table struct {
	values map[Key]float64
}

// nflDefaults maps position -> per-tier baseline point values (tier 1-3).
// Values are points on the spread a full absence of the player is worth.
var nflDefaults = map[string][3]float64{
	"QB":   {7.0, 4.5, 2.5},
	"RB":   {2.5, 1.5, 0.75},
	"WR":   {2.5, 1.5, 0.75},
	"TE":   {1.5, 1.0, 0.5},
	"OT":   {1.5, 1.0, 0.5},
	"OG":   {1.0, 0.75, 0.4},
	"C":    {1.0, 0.75, 0.4},
	"EDGE": {2.0, 1.25, 0.6},
	"DE":   {2.0, 1.25, 0.6},
	"DT":   {1.25, 0.75, 0.4},
	"LB":   {1.5, 1.0, 0.5},
	"CB":   {2.0, 1.25, 0.6},
	"S":    {1.25, 0.75, 0.4},
	"K":    {0.75, 0.5, 0.25},
	"P":    {0.25, 0.15, 0.1},
}

// NewTable builds the default table. Overrides replace or add individual
// rows, so new positions are data additions rather than code changes.
func NewTable(overrides map[Key]float64) *Table {
	values := make(map[Key]float64, len(nflDefaults)*3+len(overrides))
	for pos, tiers := range nflDefaults {
		for i, v := range tiers {
			values[Key{Sport: models.SportNFL, Position: pos, Tier: i + 1}] = v
		}
	}
	for k, v := range overrides {
		k.Position = strings.ToUpper(k.Position)
		values[k] = v
	}
	return &Table{values: values}
}

// Lookup returns the baseline point value for a player. Sports without
// their own rows share the NFL baselines; unknown positions or tiers fall
// back to a conservative depth-player value rather than failing.
func (t *Table) Lookup(sport models.Sport, position string, tier int) float64 {
	pos := strings.ToUpper(strings.TrimSpace(position))
	for _, s := range []models.Sport{sport, models.SportNFL} {
		if v, ok := t.values[Key{Sport: s, Position: pos, Tier: tier}]; ok {
			return v
		}
	}
	// Unknown tier: try the deepest known tier for the position
	for _, s := range []models.Sport{sport, models.SportNFL} {
		if v, ok := t.values[Key{Sport: s, Position: pos, Tier: 3}]; ok {
			return v
		}
	}
	return 0.25
}

// ParseOverrides converts config-file override keys ("SPORT.POSITION.TIER")
// into table keys.
func ParseOverrides(raw map[string]float64) (map[Key]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	out := make(map[Key]float64, len(raw))
	for k, v := range raw {
		parts := strings.Split(k, ".")
		if len(parts) != 3 {
			return nil, fmt.Errorf("position override %q: want SPORT.POSITION.TIER", k)
		}
		tier, err := strconv.Atoi(parts[2])
		if err != nil || tier < 1 {
			return nil, fmt.Errorf("position override %q: invalid tier", k)
		}
		out[Key{
			Sport:    models.Sport(strings.ToUpper(parts[0])),
			Position: strings.ToUpper(parts[1]),
			Tier:     tier,
		}] = v
	}
	return out, nil
}
