package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamRatingRoundTrip(t *testing.T) {
	rating := &TeamRating{
		Team:          "KC",
		Sport:         SportNFL,
		Rating:        3.172,
		GamesPlayed:   3,
		Season:        2025,
		RatingHistory: []float64{0.0, 1.05, 2.4815, 3.172},
		LastSequence:  3,
	}
	require.NoError(t, rating.Validate())

	data, err := json.Marshal(rating)
	require.NoError(t, err)

	var decoded TeamRating
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, rating.RatingHistory, decoded.RatingHistory)
	assert.Equal(t, rating.GamesPlayed, decoded.GamesPlayed)
	assert.Equal(t, rating.Season, decoded.Season)
	assert.Equal(t, rating.LastSequence, decoded.LastSequence)
	assert.NoError(t, decoded.Validate())
}

func TestTeamRatingValidateRejectsBrokenHistory(t *testing.T) {
	rating := &TeamRating{
		Team:          "BUF",
		Sport:         SportNFL,
		GamesPlayed:   2,
		RatingHistory: []float64{0.0, 1.0},
	}
	assert.Error(t, rating.Validate())
}

func TestNewTeamRatingSeedsHistory(t *testing.T) {
	rating := NewTeamRating(SportNFL, "DET")
	assert.Equal(t, 0.0, rating.Rating)
	assert.Equal(t, []float64{0.0}, rating.RatingHistory)
	assert.NoError(t, rating.Validate())
}
