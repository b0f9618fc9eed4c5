package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/cubihealth/internal/auth"
	"github.com/dmitrijs2005/cubihealth/internal/common"
	"github.com/dmitrijs2005/cubihealth/internal/logging"
	"github.com/dmitrijs2005/cubihealth/internal/models"
)

const (
	DefaultTokenValidity   = time.Hour
	DefaultIdentityTimeout = 10 * time.Second
)

// Store is the session container: Anonymous until a login or signup
// succeeds, then Authenticated with exactly one identity until Logout.
// A transition waiting on the provider blocks every other transition, which
// fails with common.ErrBusy instead of queueing.
type Store struct {
	mu sync.Mutex

	identity *models.Identity
	token    string
	pending  bool

	provider      Provider
	logger        logging.Logger
	secretKey     []byte
	tokenValidity time.Duration
	timeout       time.Duration
}

type Option func(*Store)

// WithTokenSecret sets the HS256 key used to sign access tokens.
func WithTokenSecret(secret []byte) Option {
	return func(s *Store) { s.secretKey = secret }
}

func WithTokenValidity(d time.Duration) Option {
	return func(s *Store) { s.tokenValidity = d }
}

// WithIdentityTimeout bounds each provider call. Zero disables the bound.
func WithIdentityTimeout(d time.Duration) Option {
	return func(s *Store) { s.timeout = d }
}

// NewStore returns an anonymous store. Without WithTokenSecret a random
// per-process key is generated, so tokens do not outlive the process.
func NewStore(provider Provider, logger logging.Logger, opts ...Option) (*Store, error) {
	if provider == nil {
		return nil, errors.New("session store requires an identity provider")
	}
	s := &Store{
		provider:      provider,
		logger:        logger.With("component", "session"),
		tokenValidity: DefaultTokenValidity,
		timeout:       DefaultIdentityTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.secretKey) == 0 {
		secret, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("generate token secret: %w", err)
		}
		s.secretKey = []byte(secret)
	}
	return s, nil
}

// SecretKey returns the key access tokens are signed with.
func (s *Store) SecretKey() []byte { return s.secretKey }

// begin reserves the store for a provider call.
func (s *Store) begin(op string, role models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending {
		return fmt.Errorf("%w: %s while another session call is pending", common.ErrBusy, op)
	}
	if s.identity != nil {
		return fmt.Errorf("%w: %s while signed in as %s", common.ErrInvariantViolation, op, s.identity.Email)
	}
	if _, err := models.ParseRole(string(role)); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvariantViolation, err)
	}
	s.pending = true
	return nil
}

// end commits the outcome of a provider call begun with begin.
func (s *Store) end(ctx context.Context, op string, identity *models.Identity, err error) (*models.Identity, error) {
	var token string
	if err == nil && identity == nil {
		err = &ProviderError{Op: op, Err: errors.New("no identity returned")}
	}
	if err == nil {
		token, err = auth.GenerateToken(*identity, s.secretKey, s.tokenValidity)
		if err != nil {
			err = fmt.Errorf("issue access token: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false

	if err != nil {
		s.logger.Warn(ctx, op+" failed", "error", err)
		return nil, err
	}

	s.identity = identity
	s.token = token
	s.logger.Info(ctx, op+" succeeded", "user_id", identity.ID, "role", string(identity.Role))

	out := *identity
	return &out, nil
}

func (s *Store) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func providerErr(op string, err error) error {
	if errors.Is(err, common.ErrIdentityProvider) {
		return err
	}
	return &ProviderError{Op: op, Err: err}
}

// Login authenticates through the provider and, on success, makes the
// returned identity current.
func (s *Store) Login(ctx context.Context, email string, password []byte, role models.Role) (*models.Identity, error) {
	if err := s.begin("login", role); err != nil {
		return nil, err
	}

	callCtx, cancel := s.callCtx(ctx)
	defer cancel()

	identity, err := s.provider.Login(callCtx, email, password, role)
	if err != nil {
		err = providerErr("login", err)
	}
	return s.end(ctx, "login", identity, err)
}

// Signup creates the account and signs it in. The onboarding wizard calls it
// once the intake answers validate.
func (s *Store) Signup(ctx context.Context, email string, password []byte, displayName string, role models.Role) (*models.Identity, error) {
	if err := s.begin("signup", role); err != nil {
		return nil, err
	}

	callCtx, cancel := s.callCtx(ctx)
	defer cancel()

	identity, err := s.provider.Signup(callCtx, email, password, displayName, role)
	if err != nil {
		err = providerErr("signup", err)
	}
	return s.end(ctx, "signup", identity, err)
}

// Logout discards the identity and its token. Signing out while anonymous is
// a no-op; signing out while a provider call is pending fails with
// common.ErrBusy.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending {
		return fmt.Errorf("%w: logout while a session call is pending", common.ErrBusy)
	}
	if s.identity != nil {
		s.logger.Info(ctx, "logged out", "user_id", s.identity.ID)
	}
	s.identity = nil
	s.token = ""
	return nil
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil
}

// Current returns a copy of the signed-in identity.
func (s *Store) Current() (models.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return models.Identity{}, false
	}
	return *s.identity, true
}

// Token returns the access token issued for the current identity.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.identity != nil
}
