package models

import (
	"fmt"
	"time"
)

// TeamRating holds the exponentially smoothed power rating for one team.
// Ratings are mutated only by the rating store, strictly in chronological
// game order. RatingHistory always starts with the 0.0 seed, so its length
// must equal GamesPlayed + 1.
type TeamRating struct {
	Team        string  `db:"team" json:"team" validate:"required"`
	Sport       Sport   `db:"sport" json:"sport" validate:"required"`
	Rating      float64 `db:"rating" json:"rating"`
	GamesPlayed int     `db:"games_played" json:"games_played"`
	// Season and LastSequence together record the ordering watermark of the
	// last applied result, so a store seeded from persistence resumes its
	// replay-rejection scope instead of restarting it.
	Season        int       `db:"season" json:"season"`
	RatingHistory []float64 `db:"rating_history" json:"rating_history"`
	LastSequence  int64     `db:"last_sequence" json:"last_sequence"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// NewTeamRating seeds a rating record for a previously unseen team
func NewTeamRating(sport Sport, team string) *TeamRating {
	return &TeamRating{
		Team:          team,
		Sport:         sport,
		Rating:        0.0,
		GamesPlayed:   0,
		RatingHistory: []float64{0.0},
		LastSequence:  -1,
	}
}

// Validate checks the history-length invariant
func (r *TeamRating) Validate() error {
	if len(r.RatingHistory) != r.GamesPlayed+1 {
		return fmt.Errorf("rating history length %d does not match games played %d + seed",
			len(r.RatingHistory), r.GamesPlayed)
	}
	return nil
}
