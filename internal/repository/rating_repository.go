package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// PostgresRatingRepository implements RatingRepository for PostgreSQL
type PostgresRatingRepository struct {
	db *database.DB
}

// NewPostgresRatingRepository creates a new rating repository
func NewPostgresRatingRepository(db *database.DB) RatingRepository {
	return &PostgresRatingRepository{db: db}
}

// Upsert inserts or updates a team rating keyed by (sport, team)
func (r *PostgresRatingRepository) Upsert(ctx context.Context, rating *models.TeamRating) error {
	if err := rating.Validate(); err != nil {
		return fmt.Errorf("invalid rating for %s: %w", rating.Team, err)
	}

	query := `
		INSERT INTO team_ratings (sport, team, rating, games_played, season, rating_history, last_sequence, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (sport, team) DO UPDATE SET
			rating = EXCLUDED.rating,
			games_played = EXCLUDED.games_played,
			season = EXCLUDED.season,
			rating_history = EXCLUDED.rating_history,
			last_sequence = EXCLUDED.last_sequence,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		rating.Sport, rating.Team, rating.Rating, rating.GamesPlayed,
		rating.Season, rating.RatingHistory, rating.LastSequence, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}

	return nil
}

// UpsertBatch persists a full rating snapshot in one transaction
func (r *PostgresRatingRepository) UpsertBatch(ctx context.Context, ratings []*models.TeamRating) error {
	tx, err := r.db.GetPool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO team_ratings (sport, team, rating, games_played, season, rating_history, last_sequence, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (sport, team) DO UPDATE SET
			rating = EXCLUDED.rating,
			games_played = EXCLUDED.games_played,
			season = EXCLUDED.season,
			rating_history = EXCLUDED.rating_history,
			last_sequence = EXCLUDED.last_sequence,
			updated_at = EXCLUDED.updated_at
	`

	now := time.Now().UTC()
	for _, rating := range ratings {
		if err := rating.Validate(); err != nil {
			return fmt.Errorf("invalid rating for %s: %w", rating.Team, err)
		}
		if _, err := tx.Exec(ctx, query,
			rating.Sport, rating.Team, rating.Rating, rating.GamesPlayed,
			rating.Season, rating.RatingHistory, rating.LastSequence, now,
		); err != nil {
			return fmt.Errorf("failed to upsert rating for %s: %w", rating.Team, err)
		}
	}

	return tx.Commit(ctx)
}

// GetByTeam retrieves the rating for one team
func (r *PostgresRatingRepository) GetByTeam(ctx context.Context, sport models.Sport, team string) (*models.TeamRating, error) {
	query := `
		SELECT sport, team, rating, games_played, season, rating_history, last_sequence, updated_at
		FROM team_ratings
		WHERE sport = $1 AND team = $2
	`

	rating := &models.TeamRating{}
	err := r.db.GetPool().QueryRow(ctx, query, sport, team).Scan(
		&rating.Sport, &rating.Team, &rating.Rating, &rating.GamesPlayed,
		&rating.Season, &rating.RatingHistory, &rating.LastSequence, &rating.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	return rating, nil
}

// GetBySport retrieves all ratings for a sport, strongest first
func (r *PostgresRatingRepository) GetBySport(ctx context.Context, sport models.Sport) ([]*models.TeamRating, error) {
	query := `
		SELECT sport, team, rating, games_played, season, rating_history, last_sequence, updated_at
		FROM team_ratings
		WHERE sport = $1
		ORDER BY rating DESC
	`

	rows, err := r.db.GetPool().Query(ctx, query, sport)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*models.TeamRating
	for rows.Next() {
		rating := &models.TeamRating{}
		if err := rows.Scan(
			&rating.Sport, &rating.Team, &rating.Rating, &rating.GamesPlayed,
			&rating.Season, &rating.RatingHistory, &rating.LastSequence, &rating.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}

	return ratings, rows.Err()
}
