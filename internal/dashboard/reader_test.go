package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/cubihealth/internal/auth"
	"github.com/dmitrijs2005/cubihealth/internal/common"
	"github.com/dmitrijs2005/cubihealth/internal/models"
	"github.com/dmitrijs2005/cubihealth/internal/repositories/scores"
	"github.com/dmitrijs2005/cubihealth/internal/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("dash-secret")

func token(t *testing.T, role models.Role, validity time.Duration) string {
	t.Helper()
	tok, err := auth.GenerateToken(models.Identity{ID: "u1", DisplayName: "Jane Smith", Email: "jane@example.com", Role: role}, secret, validity)
	require.NoError(t, err)
	return tok
}

type failingSource struct{}

func (failingSource) Retrieve(context.Context) (int, bool, error) {
	return 0, false, errors.New("disk error")
}

func TestRiskAssessment_Stored(t *testing.T) {
	ctx := context.Background()
	store := scores.NewMemoryRepository()
	require.NoError(t, store.Store(ctx, 95))

	a, err := NewReader(store, secret).RiskAssessment(ctx, token(t, models.RolePatient, time.Hour))
	require.NoError(t, err)

	assert.True(t, a.Available)
	assert.Equal(t, 95, a.Score)
	assert.Equal(t, risk.BandHigh, a.Band)
	assert.Equal(t, risk.BandHigh.DashboardAdvice(), a.Advice)
	assert.Equal(t, "Jane Smith", a.Patient.DisplayName)
}

func TestRiskAssessment_NothingOnFile(t *testing.T) {
	a, err := NewReader(scores.NewMemoryRepository(), secret).
		RiskAssessment(context.Background(), token(t, models.RolePatient, time.Hour))
	require.NoError(t, err)
	assert.False(t, a.Available)
	assert.Zero(t, a.Score)
	assert.Equal(t, "u1", a.Patient.ID)
}

func TestRiskAssessment_Unauthorized(t *testing.T) {
	r := NewReader(scores.NewMemoryRepository(), secret)
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
	}{
		{"anonymous", ""},
		{"doctor", token(t, models.RoleDoctor, time.Hour)},
		{"expired", token(t, models.RolePatient, -time.Second)},
		{"garbage", "not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.RiskAssessment(ctx, tt.token)
			require.ErrorIs(t, err, common.ErrUnauthorized)
		})
	}
}

func TestRiskAssessment_SourceError(t *testing.T) {
	_, err := NewReader(failingSource{}, secret).
		RiskAssessment(context.Background(), token(t, models.RolePatient, time.Hour))
	require.ErrorContains(t, err, "disk error")
}
