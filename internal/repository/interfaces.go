package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// RatingRepository defines the interface for power rating persistence
type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.TeamRating) error
	UpsertBatch(ctx context.Context, ratings []*models.TeamRating) error
	GetByTeam(ctx context.Context, sport models.Sport, team string) (*models.TeamRating, error)
	GetBySport(ctx context.Context, sport models.Sport) ([]*models.TeamRating, error)
}

// EdgeRepository defines the interface for edge evaluation persistence
type EdgeRepository interface {
	Insert(ctx context.Context, edge *models.GameEdge) error
	GetByGameID(ctx context.Context, gameID uuid.UUID) ([]*models.GameEdge, error)
	GetPlayable(ctx context.Context, since time.Time) ([]*models.GameEdge, error)
}

// StakeRepository defines the interface for stake recommendation persistence
type StakeRepository interface {
	Insert(ctx context.Context, rec *models.StakeRecommendation) error
	GetByGameID(ctx context.Context, gameID uuid.UUID) ([]*models.StakeRecommendation, error)
	GetSince(ctx context.Context, since time.Time) ([]*models.StakeRecommendation, error)
}
