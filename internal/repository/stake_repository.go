package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// PostgresStakeRepository implements StakeRepository for PostgreSQL
type PostgresStakeRepository struct {
	db *database.DB
}

// NewPostgresStakeRepository creates a new stake repository
func NewPostgresStakeRepository(db *database.DB) StakeRepository {
	return &PostgresStakeRepository{db: db}
}

// Insert records a stake recommendation
func (s *PostgresStakeRepository) Insert(ctx context.Context, rec *models.StakeRecommendation) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	query := `
		INSERT INTO stake_recommendations (id, game_id, edge, confidence, win_probability,
		                                   kelly_fraction, stake_percent, stake_amount, bankroll,
		                                   pass, reasoning, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := s.db.GetPool().Exec(ctx, query,
		rec.ID, rec.GameID, rec.Edge, rec.Confidence, rec.WinProbability,
		rec.KellyFraction, rec.StakePercent, rec.StakeAmount, rec.Bankroll,
		rec.Pass, rec.Reasoning, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert stake recommendation: %w", err)
	}

	return nil
}

// GetByGameID retrieves recommendations for a game, newest first
func (s *PostgresStakeRepository) GetByGameID(ctx context.Context, gameID uuid.UUID) ([]*models.StakeRecommendation, error) {
	query := `
		SELECT id, game_id, edge, confidence, win_probability, kelly_fraction,
		       stake_percent, stake_amount, bankroll, pass, reasoning, created_at
		FROM stake_recommendations
		WHERE game_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.GetPool().Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stakes by game: %w", err)
	}
	defer rows.Close()

	return scanStakes(rows)
}

// GetSince retrieves recommendations created at or after the cutoff
func (s *PostgresStakeRepository) GetSince(ctx context.Context, since time.Time) ([]*models.StakeRecommendation, error) {
	query := `
		SELECT id, game_id, edge, confidence, win_probability, kelly_fraction,
		       stake_percent, stake_amount, bankroll, pass, reasoning, created_at
		FROM stake_recommendations
		WHERE created_at >= $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.GetPool().Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query stakes: %w", err)
	}
	defer rows.Close()

	return scanStakes(rows)
}

func scanStakes(rows pgx.Rows) ([]*models.StakeRecommendation, error) {
	var recs []*models.StakeRecommendation
	for rows.Next() {
		rec := &models.StakeRecommendation{}
		if err := rows.Scan(
			&rec.ID, &rec.GameID, &rec.Edge, &rec.Confidence, &rec.WinProbability,
			&rec.KellyFraction, &rec.StakePercent, &rec.StakeAmount, &rec.Bankroll,
			&rec.Pass, &rec.Reasoning, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stake recommendation: %w", err)
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}
