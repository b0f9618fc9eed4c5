package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cubihealth/internal/common"
	"github.com/dmitrijs2005/cubihealth/internal/models"
	"github.com/dmitrijs2005/cubihealth/internal/onboarding"
	"github.com/dmitrijs2005/cubihealth/internal/risk"
)

var errAbandoned = errors.New("sign-up abandoned")

type action int

const (
	actionNext action = iota
	actionBack
	actionSubmit
	actionAbandon
)

// Signup runs the intake wizard for role and, once it is submitted, leaves
// the user signed in. Running out of input abandons the wizard so that the
// answers given so far are wiped.
func (a *App) Signup(ctx context.Context, role models.Role) error {
	if a.isLoggedIn() {
		return fmt.Errorf("already signed in, log out first")
	}

	w, err := onboarding.New(role, a.sessions, a.scores, a.logger)
	if err != nil {
		return err
	}

	res, err := a.runWizard(ctx, w)
	if errors.Is(err, errAbandoned) {
		fmt.Fprintln(a.out, "Sign-up abandoned, nothing was saved.")
		return nil
	}
	if err != nil {
		_ = w.Abandon(ctx)
		return err
	}

	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", res.Identity.DisplayName)
	if res.Scored {
		if res.ScorePersisted {
			fmt.Fprintf(a.out, "Your risk score of %d has been saved to your dashboard.\n", res.RiskScore)
		} else {
			fmt.Fprintf(a.out, "Your risk score is %d, but it could not be saved.\n", res.RiskScore)
		}
	}
	return nil
}

func (a *App) runWizard(ctx context.Context, w *onboarding.Wizard) (*onboarding.Result, error) {
	for {
		step := w.CurrentStep()
		p := w.Progress()
		fmt.Fprintf(a.out, "\nStep %d of %d: %s (%d%% complete)\n", p.CurrentStep, p.TotalSteps, step.Title, p.CompletionFraction)

		if step.Review {
			a.printReview(w)
		} else if err := a.askStep(w, step); err != nil {
			return nil, err
		}

		act, err := a.askAction(step.Review, p.CurrentStep > 1)
		if err != nil {
			return nil, err
		}

		switch act {
		case actionBack:
			if err := w.Retreat(ctx); err != nil {
				return nil, err
			}

		case actionAbandon:
			if err := w.Abandon(ctx); err != nil {
				return nil, err
			}
			return nil, errAbandoned

		case actionNext:
			if err := w.Advance(ctx); err != nil && !a.reportViolations(err) {
				return nil, err
			}

		case actionSubmit:
			res, err := w.Submit(ctx)
			switch {
			case err == nil:
				return res, nil
			case a.reportViolations(err):
			case errors.Is(err, common.ErrIdentityProvider):
				fmt.Fprintf(a.out, "Sign-up failed: %v\nYour answers are kept, submit again to retry.\n", err)
			default:
				return nil, err
			}
		}
	}
}

// askStep prompts for every field of step. Dependent fields are skipped
// unless their governing question is currently answered yes.
func (a *App) askStep(w *onboarding.Wizard, step onboarding.Step) error {
	for _, f := range step.Fields {
		if f.GovernedBy != "" && w.Value(f.GovernedBy) != string(models.Yes) {
			continue
		}
		for {
			v, keep, err := a.askField(f, w.Value(f.Name))
			if err != nil {
				return err
			}
			if keep {
				break
			}
			err = w.Set(f.Name, v)
			if err == nil {
				break
			}
			if !a.reportViolations(err) {
				return err
			}
		}
	}
	return nil
}

// askField reads one answer. keep is true when the user pressed Enter on a
// field that already has a value.
func (a *App) askField(f onboarding.FieldSpec, current string) (v string, keep bool, err error) {
	prompt := f.Label
	switch f.Kind {
	case onboarding.KindYesNo:
		prompt += " (yes/no)"
	case onboarding.KindChoice:
		prompt += " [" + strings.Join(f.Choices, ", ") + "]"
	}
	if f.Placeholder != "" {
		prompt += " (" + f.Placeholder + ")"
	}
	if f.Optional {
		prompt += " (optional)"
	}
	if current != "" {
		prompt += " [Enter keeps: " + current + "]"
	}

	switch f.Kind {
	case onboarding.KindPassword:
		pw, err := getPassword(a.reader, prompt, a.out)
		if err != nil {
			return "", false, err
		}
		v = string(pw)
		common.WipeByteArray(pw)
	case onboarding.KindMultiline:
		v, err = getMultiline(a.reader, prompt, a.out)
	default:
		v, err = getSimpleText(a.reader, prompt, a.out)
	}
	if err != nil {
		return "", false, err
	}

	if v == "" && current != "" {
		return "", true, nil
	}
	return v, false, nil
}

func (a *App) askAction(review, canGoBack bool) (action, error) {
	choices := []string{"next"}
	if review {
		choices[0] = "submit"
	}
	if canGoBack {
		choices = append(choices, "back")
	}
	choices = append(choices, "abandon")
	prompt := strings.Join(choices, ", ") + "?"

	for {
		in, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
		switch strings.ToLower(in) {
		case "n", "next":
			if !review {
				return actionNext, nil
			}
		case "s", "submit":
			if review {
				return actionSubmit, nil
			}
		case "b", "back":
			if canGoBack {
				return actionBack, nil
			}
		case "a", "abandon":
			return actionAbandon, nil
		}
		fmt.Fprintf(a.out, "Please answer %s\n", strings.Join(choices, ", "))
	}
}

// reportViolations prints a *onboarding.ValidationError and reports whether
// err was one.
func (a *App) reportViolations(err error) bool {
	var ve *onboarding.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	fmt.Fprintln(a.out, "Please fix the following:")
	for _, v := range ve.Violations {
		fmt.Fprintf(a.out, "  - %s\n", v)
	}
	return true
}

func (a *App) printReview(w *onboarding.Wizard) {
	if score, ok := w.PreviewScore(); ok {
		band := risk.BandFor(score)
		fmt.Fprintf(a.out, "Your risk score: %d/100 (%s, %s)\n", score, band.Label(), band.Color())
		fmt.Fprintln(a.out, band.ReviewAdvice())
		fmt.Fprintln(a.out, risk.Disclaimer)
		return
	}

	for _, l := range w.Summary() {
		fmt.Fprintf(a.out, "  %s: %s\n", l.Label, l.Value)
	}
}
