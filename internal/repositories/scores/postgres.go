package scores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cubihealth/internal/common"
	"github.com/dmitrijs2005/cubihealth/internal/dbx"
)

// PostgresRepository keeps the score in the risk_scores table, one row per
// key, over dbx.DBTX (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Store(ctx context.Context, score int) error {
	if err := checkRange(score); err != nil {
		return err
	}
	query := `
		INSERT INTO risk_scores (key, score, recorded_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET score = EXCLUDED.score, recorded_at = EXCLUDED.recorded_at
	`
	if _, err := r.db.ExecContext(ctx, query, common.RiskScoreKey, score); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Retrieve(ctx context.Context) (int, bool, error) {
	query := `
		SELECT score
		FROM risk_scores
		WHERE key = $1
	`
	var score int
	if err := r.db.QueryRowContext(ctx, query, common.RiskScoreKey).Scan(&score); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("db error: %w", err)
	}
	return score, true, nil
}
