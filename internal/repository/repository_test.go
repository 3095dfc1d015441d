package repository

import (
	"testing"

	"github.com/yourusername/gridiron-edge/internal/models"
)

const skipIntegrationMsg = "Integration test - requires database setup"

// TestRatingRepositoryRoundTrip tests rating upsert and retrieval
func TestRatingRepositoryRoundTrip(t *testing.T) {
	// ctx := context.Background()
	// db, err := database.NewDB(ctx, testDatabaseConfig())
	// if err != nil {
	// 	t.Fatalf("failed to connect: %v", err)
	// }
	// defer db.Close()

	// repos, err := NewRepositories(db)
	// if err != nil {
	// 	t.Fatalf("failed to create repositories: %v", err)
	// }

	// rating := models.NewTeamRating(models.SportNFL, "KC")
	// if err := repos.Rating.Upsert(ctx, rating); err != nil {
	// 	t.Fatalf("failed to upsert rating: %v", err)
	// }

	// retrieved, err := repos.Rating.GetByTeam(ctx, models.SportNFL, "KC")
	// if err != nil {
	// 	t.Fatalf("failed to retrieve rating: %v", err)
	// }

	// if retrieved.LastSequence != rating.LastSequence {
	// 	t.Errorf("expected sequence %d, got %d", rating.LastSequence, retrieved.LastSequence)
	// }
	t.Skip(skipIntegrationMsg)
}

// TestNewRepositoriesRequiresDB tests the nil guard
func TestNewRepositoriesRequiresDB(t *testing.T) {
	_, err := NewRepositories(nil)
	if err == nil {
		t.Fatal("expected error for nil database")
	}
}

// TestUpsertRejectsInvalidHistory tests the history invariant guard
func TestUpsertRejectsInvalidHistory(t *testing.T) {
	rating := &models.TeamRating{
		Team:          "KC",
		Sport:         models.SportNFL,
		GamesPlayed:   3,
		RatingHistory: []float64{0.0},
	}
	if err := rating.Validate(); err == nil {
		t.Fatal("expected validation error for mismatched history length")
	}
}
