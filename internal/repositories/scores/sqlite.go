package scores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/cubihealth/internal/common"
	"github.com/dmitrijs2005/cubihealth/internal/dbx"
	"github.com/dmitrijs2005/cubihealth/internal/repositories/metadata"
)

// SQLiteRepository keeps the score as a decimal string under
// common.RiskScoreKey in the metadata table.
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Store(ctx context.Context, score int) error {
	if err := checkRange(score); err != nil {
		return err
	}
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Put(ctx, common.RiskScoreKey, []byte(strconv.Itoa(score)), r.now())
	})
}

func (r *SQLiteRepository) Retrieve(ctx context.Context) (int, bool, error) {
	e, err := metadata.NewSQLiteRepository(r.db).Get(ctx, common.RiskScoreKey)
	if errors.Is(err, common.ErrorNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	score, err := strconv.Atoi(string(e.Value))
	if err != nil {
		return 0, false, fmt.Errorf("corrupt risk score %q: %w", e.Value, err)
	}
	if err := checkRange(score); err != nil {
		return 0, false, err
	}
	return score, true, nil
}
