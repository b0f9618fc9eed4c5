package onboarding

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/cubihealth/internal/common"
	"github.com/dmitrijs2005/cubihealth/internal/logging"
	"github.com/dmitrijs2005/cubihealth/internal/models"
	"github.com/dmitrijs2005/cubihealth/internal/risk"
)

// State is the lifecycle state of a Wizard.
type State int

const (
	StateInProgress State = iota
	StateCompleted
	StateAbandoned
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in-progress"
	case StateCompleted:
		return "completed"
	case StateAbandoned:
		return "abandoned"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Signer establishes the session once the intake succeeds. The session
// store implements it.
type Signer interface {
	Signup(ctx context.Context, email string, password []byte, displayName string, role models.Role) (*models.Identity, error)
}

// ScoreSink receives the patient risk score computed on completion.
type ScoreSink interface {
	Store(ctx context.Context, score int) error
}

// Result is what a completed wizard hands back to its caller.
type Result struct {
	Identity models.Identity

	// RiskScore is meaningful only when Scored is true (patient intake).
	RiskScore int
	Scored    bool

	// ScorePersisted reports whether the score sink accepted the score.
	ScorePersisted bool
}

// SummaryLine is one answered field as shown on a review step.
type SummaryLine struct {
	Field Field
	Label string
	Value string
}

// Option customizes a Wizard.
type Option func(*Wizard)

// WithClock overrides the time source used by date validation.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) { w.now = now }
}

// Wizard is the onboarding state machine for one role.
type Wizard struct {
	mu sync.Mutex

	form    form
	step    int
	state   State
	pending bool

	signer Signer
	scores ScoreSink
	logger logging.Logger
	now    func() time.Time
}

// New creates a wizard positioned on step 1. A patient wizard needs a score
// sink; a doctor wizard ignores it.
func New(role models.Role, signer Signer, scores ScoreSink, logger logging.Logger, opts ...Option) (*Wizard, error) {
	var f form
	switch role {
	case models.RolePatient:
		if scores == nil {
			return nil, fmt.Errorf("patient wizard requires a score sink")
		}
		f = &patientForm{}
	case models.RoleDoctor:
		f = &doctorForm{}
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}
	if signer == nil {
		return nil, fmt.Errorf("wizard requires a signer")
	}

	w := &Wizard{
		form:   f,
		step:   1,
		state:  StateInProgress,
		signer: signer,
		scores: scores,
		logger: logger.With("component", "wizard", "role", string(role)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

func (w *Wizard) total() int { return len(w.form.steps()) }

// checkMutable must be called with mu held.
func (w *Wizard) checkMutable(op string) error {
	if w.pending {
		return fmt.Errorf("%w: %s while submission is pending", common.ErrBusy, op)
	}
	if w.state != StateInProgress {
		return fmt.Errorf("%w: %s on %s wizard", common.ErrInvariantViolation, op, w.state)
	}
	return nil
}

// Role returns the role the wizard signs up.
func (w *Wizard) Role() models.Role { return w.form.role() }

// Steps returns the step layout of the wizard's role.
func (w *Wizard) Steps() []Step { return w.form.steps() }

// State returns the lifecycle state.
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Progress returns the current step and completion fraction.
func (w *Wizard) Progress() Progress {
	w.mu.Lock()
	defer w.mu.Unlock()
	return newProgress(w.step, w.total())
}

// CurrentStep returns the layout of the step the wizard is on.
func (w *Wizard) CurrentStep() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form.steps()[w.step-1]
}

// Value returns the display value of f; passwords are masked.
func (w *Wizard) Value(f Field) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form.value(f)
}

// Set records an answer for a field of the current step. Answering a
// governing question with "no" clears the answers that depend on it.
func (w *Wizard) Set(f Field, v string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkMutable("set"); err != nil {
		return err
	}
	if !stepHas(w.form.steps()[w.step-1], f) {
		return fmt.Errorf("%w: %s is not asked on step %d", common.ErrInvariantViolation, f, w.step)
	}
	if err := w.form.set(f, v); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			ve.Step = w.step
		}
		return err
	}
	return nil
}

// Validate runs the rules of one step and returns a *ValidationError when
// any of them is violated.
func (w *Wizard) Validate(step int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if step < 1 || step > w.total() {
		return fmt.Errorf("%w: no step %d", common.ErrInvariantViolation, step)
	}
	if v := w.form.validate(step, w.now()); len(v) > 0 {
		return &ValidationError{Step: step, Violations: v}
	}
	return nil
}

// validateAll is the final validator; mu must be held.
func (w *Wizard) validateAll() []Violation {
	now := w.now()
	var all []Violation
	for step := 1; step <= w.total(); step++ {
		all = append(all, w.form.validate(step, now)...)
	}
	return all
}

// Advance moves to the next step if the current one validates. On failure
// the wizard stays where it is and the error lists every violation.
func (w *Wizard) Advance(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkMutable("advance"); err != nil {
		return err
	}
	if w.step == w.total() {
		return fmt.Errorf("%w: advance past the last step", common.ErrInvariantViolation)
	}
	if v := w.form.validate(w.step, w.now()); len(v) > 0 {
		w.logger.Debug(ctx, "step rejected", "step", w.step, "violations", len(v))
		return &ValidationError{Step: w.step, Violations: v}
	}

	w.step++
	w.logger.Debug(ctx, "advanced", "step", w.step)
	return nil
}

// Retreat moves back one step, keeping every answer.
func (w *Wizard) Retreat(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkMutable("retreat"); err != nil {
		return err
	}
	if w.step == 1 {
		return fmt.Errorf("%w: retreat from the first step", common.ErrInvariantViolation)
	}

	w.step--
	w.logger.Debug(ctx, "retreated", "step", w.step)
	return nil
}

// Abandon discards the in-progress answers. It never touches the session.
func (w *Wizard) Abandon(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkMutable("abandon"); err != nil {
		return err
	}

	w.form.wipe()
	w.state = StateAbandoned
	w.logger.Info(ctx, "wizard abandoned", "step", w.step)
	return nil
}

// PreviewScore returns the risk score the current answers would produce.
// It reports false for doctor wizards.
func (w *Wizard) PreviewScore() (int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.score()
}

// score must be called with mu held.
func (w *Wizard) score() (int, bool) {
	p, ok := w.form.(*patientForm)
	if !ok {
		return 0, false
	}
	return risk.Score(p.a), true
}

// Summary lists the answered fields in step order.
func (w *Wizard) Summary() []SummaryLine {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []SummaryLine
	for _, s := range w.form.steps() {
		for _, spec := range s.Fields {
			v := w.form.value(spec.Name)
			if v == "" {
				continue
			}
			out = append(out, SummaryLine{Field: spec.Name, Label: spec.Label, Value: v})
		}
	}
	return out
}

// Submit finishes the intake from the review step. It runs every step's
// rules, computes the risk score for patients, signs the user up and stores
// the score. Signup is the only suspend point: while it is in flight every
// other mutating call fails with common.ErrBusy. If signup fails the wizard
// stays on the review step and Submit can simply be called again.
func (w *Wizard) Submit(ctx context.Context) (*Result, error) {
	w.mu.Lock()
	if err := w.checkMutable("submit"); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	if w.step != w.total() {
		step := w.step
		w.mu.Unlock()
		return nil, fmt.Errorf("%w: submit called at step %d of %d", common.ErrInvariantViolation, step, w.total())
	}
	if v := w.validateAll(); len(v) > 0 {
		w.mu.Unlock()
		return nil, &ValidationError{Violations: v}
	}

	email, password, displayName := w.form.credentials()
	password = bytes.Clone(password)
	score, scored := w.score()
	role := w.form.role()
	w.pending = true
	w.mu.Unlock()

	res, err := w.finish(ctx, email, password, displayName, role, score, scored)
	common.WipeByteArray(password)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = false
	if err != nil {
		return nil, err
	}

	w.form.wipe()
	w.state = StateCompleted
	w.logger.Info(ctx, "wizard completed", "user_id", res.Identity.ID, "scored", res.Scored)
	return res, nil
}

// finish runs without mu held.
func (w *Wizard) finish(ctx context.Context, email string, password []byte, displayName string, role models.Role, score int, scored bool) (*Result, error) {
	identity, err := w.signer.Signup(ctx, email, password, displayName, role)
	if err != nil {
		w.logger.Warn(ctx, "signup failed", "error", err)
		return nil, fmt.Errorf("signup: %w", err)
	}

	res := &Result{Identity: *identity, RiskScore: score, Scored: scored}
	if !scored {
		return res, nil
	}

	if err := w.scores.Store(ctx, score); err != nil {
		w.logger.Error(ctx, "risk score not persisted", "error", err)
		return res, nil
	}
	res.ScorePersisted = true
	return res, nil
}
