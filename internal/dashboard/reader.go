// Package dashboard reads the stored risk assessment for the signed-in
// patient.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cubihealth/internal/auth"
	"github.com/dmitrijs2005/cubihealth/internal/common"
	"github.com/dmitrijs2005/cubihealth/internal/models"
	"github.com/dmitrijs2005/cubihealth/internal/risk"
)

// ScoreSource is the read side of the risk score sink.
type ScoreSource interface {
	Retrieve(ctx context.Context) (int, bool, error)
}

// Assessment is what the patient dashboard shows. When Available is false
// no intake has been completed yet and only Patient is set.
type Assessment struct {
	Patient   models.Identity
	Available bool
	Score     int
	Band      risk.Band
	Advice    string
}

// NoAssessment is shown when no score is on file.
const NoAssessment = "No risk assessment on file. Complete the patient intake to get one."

type Reader struct {
	scores    ScoreSource
	secretKey []byte
}

func NewReader(scores ScoreSource, secretKey []byte) *Reader {
	return &Reader{scores: scores, secretKey: secretKey}
}

// RiskAssessment authorizes token and returns the stored assessment. Only
// patients have one; any other role gets common.ErrUnauthorized.
func (r *Reader) RiskAssessment(ctx context.Context, token string) (*Assessment, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: not signed in", common.ErrUnauthorized)
	}
	claims, err := auth.ParseToken(token, r.secretKey)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: session expired, sign in again", common.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrUnauthorized, err)
	}
	if claims.Role != models.RolePatient {
		return nil, fmt.Errorf("%w: risk assessment is only available to patients", common.ErrUnauthorized)
	}

	a := &Assessment{Patient: claims.Identity()}

	score, ok, err := r.scores.Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("retrieve risk score: %w", err)
	}
	if !ok {
		return a, nil
	}

	a.Available = true
	a.Score = score
	a.Band = risk.BandFor(score)
	a.Advice = a.Band.DashboardAdvice()
	return a, nil
}
