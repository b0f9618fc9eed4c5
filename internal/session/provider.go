// Package session holds the identity of the single signed-in user and talks
// to the identity provider on its behalf.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/cubihealth/internal/common"
	"github.com/dmitrijs2005/cubihealth/internal/models"
	"github.com/google/uuid"
)

// Provider authenticates users and creates accounts.
//
// Contract:
//   - Login: authenticate an existing account for the given role.
//   - Signup: create an account carrying the given display name.
//
// Both calls are the only suspend points of a session transition and must
// honor context cancellation. Failures are reported as *ProviderError.
type Provider interface {
	Login(ctx context.Context, email string, password []byte, role models.Role) (*models.Identity, error)
	Signup(ctx context.Context, email string, password []byte, displayName string, role models.Role) (*models.Identity, error)
}

// ProviderError is a failed identity provider call. It matches both
// common.ErrIdentityProvider and the underlying cause.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	return []error{common.ErrIdentityProvider, e.Err}
}

// Display names the simulated provider hands out on login, when it has no
// profile to look up.
const (
	PatientPlaceholderName = "Jane Smith"
	DoctorPlaceholderName  = "Dr. Sarah Johnson"
)

// Simulated is an in-process provider that accepts every credential. It can
// be slowed down or made to fail for exercising the callers.
type Simulated struct {
	latency time.Duration
	fail    error
	newID   func() string
}

type SimulatedOption func(*Simulated)

// WithLatency delays every call by d, or until the context is done.
func WithLatency(d time.Duration) SimulatedOption {
	return func(s *Simulated) { s.latency = d }
}

// WithFailure makes every call fail with err.
func WithFailure(err error) SimulatedOption {
	return func(s *Simulated) { s.fail = err }
}

func NewSimulated(opts ...SimulatedOption) *Simulated {
	s := &Simulated{newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulated) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Simulated) call(ctx context.Context, op, email string) error {
	if err := s.wait(ctx); err != nil {
		return &ProviderError{Op: op, Err: err}
	}
	if s.fail != nil {
		return &ProviderError{Op: op, Err: s.fail}
	}
	if strings.TrimSpace(email) == "" {
		return &ProviderError{Op: op, Err: common.ErrUnauthorized}
	}
	return nil
}

func (s *Simulated) Login(ctx context.Context, email string, password []byte, role models.Role) (*models.Identity, error) {
	if err := s.call(ctx, "login", email); err != nil {
		return nil, err
	}

	name := PatientPlaceholderName
	if role == models.RoleDoctor {
		name = DoctorPlaceholderName
	}
	return &models.Identity{ID: s.newID(), DisplayName: name, Email: email, Role: role}, nil
}

func (s *Simulated) Signup(ctx context.Context, email string, password []byte, displayName string, role models.Role) (*models.Identity, error) {
	if err := s.call(ctx, "signup", email); err != nil {
		return nil, err
	}
	return &models.Identity{ID: s.newID(), DisplayName: displayName, Email: email, Role: role}, nil
}
