package onboarding

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/cubihealth/internal/logging"
	"github.com/dmitrijs2005/cubihealth/internal/models"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

// fakeSigner records Signup calls. When block is non-nil, Signup announces
// itself on entered and waits for block to be closed.
type fakeSigner struct {
	mu sync.Mutex

	err     error
	calls   int
	email   string
	pass    []byte
	name    string
	role    models.Role
	entered chan struct{}
	block   chan struct{}
}

func (f *fakeSigner) Signup(ctx context.Context, email string, password []byte, displayName string, role models.Role) (*models.Identity, error) {
	if f.block != nil {
		f.entered <- struct{}{}
		<-f.block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.email, f.pass, f.name, f.role = email, append([]byte(nil), password...), displayName, role
	if f.err != nil {
		return nil, f.err
	}
	return &models.Identity{ID: "user-1", DisplayName: displayName, Email: email, Role: role}, nil
}

type fakeSink struct {
	err    error
	stored []int
}

func (f *fakeSink) Store(ctx context.Context, score int) error {
	if f.err != nil {
		return f.err
	}
	f.stored = append(f.stored, score)
	return nil
}

func newPatientWizard(t *testing.T, signer Signer, sink ScoreSink) *Wizard {
	t.Helper()
	w, err := New(models.RolePatient, signer, sink, logging.Discard(), WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return w
}

func newDoctorWizard(t *testing.T, signer Signer) *Wizard {
	t.Helper()
	w, err := New(models.RoleDoctor, signer, nil, logging.Discard(), WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return w
}

func setAll(t *testing.T, w *Wizard, values [][2]string) {
	t.Helper()
	for _, kv := range values {
		require.NoError(t, w.Set(Field(kv[0]), kv[1]), "set %s", kv[0])
	}
}

func fillBasic(t *testing.T, w *Wizard) {
	t.Helper()
	setAll(t, w, [][2]string{
		{"fullName", "Jane Smith"},
		{"email", "jane@example.com"},
		{"password", "s3cret"},
		{"confirmPassword", "s3cret"},
	})
	if w.Role() == models.RolePatient {
		require.NoError(t, w.Set(FieldDateOfBirth, "1990-04-12"))
	}
}

// patientToReview drives a patient wizard to the review step with only HPV
// answered "yes".
func patientToReview(t *testing.T, w *Wizard) {
	t.Helper()
	ctx := context.Background()

	fillBasic(t, w)
	require.NoError(t, w.Advance(ctx))

	setAll(t, w, [][2]string{
		{"smoking", "no"},
		{"contraceptiveUse", "no"},
		{"hasChildren", "no"},
	})
	require.NoError(t, w.Advance(ctx))

	setAll(t, w, [][2]string{
		{"hpvStatus", "yes"},
		{"cancerHistory", "no"},
		{"utiHistory", "no"},
		{"stdHistory", "no"},
		{"familyCancerHistory", "no"},
	})
	require.NoError(t, w.Advance(ctx))
	require.Equal(t, 4, w.Progress().CurrentStep)
}

func doctorToReview(t *testing.T, w *Wizard) {
	t.Helper()
	ctx := context.Background()

	setAll(t, w, [][2]string{
		{"fullName", "Dr. John Doe"},
		{"email", "doctor@example.com"},
		{"password", "pw"},
		{"confirmPassword", "pw"},
	})
	require.NoError(t, w.Advance(ctx))

	setAll(t, w, [][2]string{
		{"specialization", "oncology"},
		{"licenseNumber", "MD12345678"},
		{"yearsOfExperience", "10"},
	})
	require.NoError(t, w.Advance(ctx))
	require.Equal(t, 3, w.Progress().CurrentStep)
}
