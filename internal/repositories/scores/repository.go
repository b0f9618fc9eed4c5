// Package scores persists the patient risk score computed when onboarding
// completes, and reads it back for the dashboard.
package scores

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cubihealth/internal/common"
)

// Repository is the risk score sink.
//
// Contract:
//   - Store: overwrite the stored score; scores outside 0..100 are rejected.
//   - Retrieve: return the stored score, or ok=false when none was stored.
type Repository interface {
	Store(ctx context.Context, score int) error
	Retrieve(ctx context.Context) (score int, ok bool, err error)
}

func checkRange(score int) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("%w: risk score %d outside 0..100", common.ErrInvariantViolation, score)
	}
	return nil
}
