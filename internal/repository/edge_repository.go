package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// PostgresEdgeRepository implements EdgeRepository for PostgreSQL
type PostgresEdgeRepository struct {
	db *database.DB
}

// NewPostgresEdgeRepository creates a new edge repository
func NewPostgresEdgeRepository(db *database.DB) EdgeRepository {
	return &PostgresEdgeRepository{db: db}
}

// Insert records one edge evaluation. Key numbers are stored as JSONB.
func (e *PostgresEdgeRepository) Insert(ctx context.Context, edge *models.GameEdge) error {
	keyNumbers, err := json.Marshal(edge.KeyNumbers)
	if err != nil {
		return fmt.Errorf("failed to marshal key numbers: %w", err)
	}

	query := `
		INSERT INTO game_edges (game_id, home_team, away_team, market_spread, predicted_spread,
		                        edge, key_numbers, confidence, win_probability, side, evaluated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = e.db.GetPool().Exec(ctx, query,
		edge.GameID, edge.HomeTeam, edge.AwayTeam, edge.MarketSpread, edge.PredictedSpread,
		edge.Edge, keyNumbers, edge.Confidence, edge.WinProbability, edge.Side, edge.EvaluatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert edge: %w", err)
	}

	return nil
}

// GetByGameID retrieves all evaluations recorded for a game, newest first
func (e *PostgresEdgeRepository) GetByGameID(ctx context.Context, gameID uuid.UUID) ([]*models.GameEdge, error) {
	query := `
		SELECT game_id, home_team, away_team, market_spread, predicted_spread,
		       edge, key_numbers, confidence, win_probability, side, evaluated_at
		FROM game_edges
		WHERE game_id = $1
		ORDER BY evaluated_at DESC
	`

	rows, err := e.db.GetPool().Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges by game: %w", err)
	}
	defer rows.Close()

	return scanEdges(rows)
}

// GetPlayable retrieves evaluations since the cutoff that cleared NO_PLAY
func (e *PostgresEdgeRepository) GetPlayable(ctx context.Context, since time.Time) ([]*models.GameEdge, error) {
	query := `
		SELECT game_id, home_team, away_team, market_spread, predicted_spread,
		       edge, key_numbers, confidence, win_probability, side, evaluated_at
		FROM game_edges
		WHERE evaluated_at >= $1 AND confidence != $2
		ORDER BY evaluated_at DESC
	`

	rows, err := e.db.GetPool().Query(ctx, query, since, models.BucketNoPlay)
	if err != nil {
		return nil, fmt.Errorf("failed to query playable edges: %w", err)
	}
	defer rows.Close()

	return scanEdges(rows)
}

func scanEdges(rows pgx.Rows) ([]*models.GameEdge, error) {
	var edges []*models.GameEdge
	for rows.Next() {
		edge := &models.GameEdge{}
		var keyNumbers []byte
		if err := rows.Scan(
			&edge.GameID, &edge.HomeTeam, &edge.AwayTeam, &edge.MarketSpread, &edge.PredictedSpread,
			&edge.Edge, &keyNumbers, &edge.Confidence, &edge.WinProbability, &edge.Side, &edge.EvaluatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan edge: %w", err)
		}
		if len(keyNumbers) > 0 {
			if err := json.Unmarshal(keyNumbers, &edge.KeyNumbers); err != nil {
				return nil, fmt.Errorf("failed to unmarshal key numbers: %w", err)
			}
		}
		edges = append(edges, edge)
	}

	return edges, rows.Err()
}
