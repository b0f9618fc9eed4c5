package onboarding

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/cubihealth/internal/common"
	"github.com/dmitrijs2005/cubihealth/internal/models"
)

// Plausible range for the patient's age at first birth.
const (
	MinAgeAtFirstBirth = 10
	MaxAgeAtFirstBirth = 70
)

const dateLayout = "2006-01-02"

// Violation is one broken rule on one field.
type Violation struct {
	Field  Field
	Reason string
}

func (v Violation) String() string {
	return Label(v.Field) + " " + v.Reason
}

// ValidationError carries every violation found on a step. Step is 0 for
// violations reported by the final, all-steps validator.
type ValidationError struct {
	Step       int
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	if e.Step == 0 {
		return "validation failed: " + strings.Join(parts, "; ")
	}
	return fmt.Sprintf("step %d: %s", e.Step, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return common.ErrValidation }

// Fields returns the names of the violated fields, in report order.
func (e *ValidationError) Fields() []Field {
	out := make([]Field, 0, len(e.Violations))
	for _, v := range e.Violations {
		out = append(out, v.Field)
	}
	return out
}

func invalid(f Field, reason string) *ValidationError {
	return &ValidationError{Violations: []Violation{{Field: f, Reason: reason}}}
}

// rules accumulates violations; each check is independent of the others.
type rules struct {
	violations []Violation
}

func (r *rules) add(f Field, reason string) {
	r.violations = append(r.violations, Violation{Field: f, Reason: reason})
}

func (r *rules) required(f Field, value string) bool {
	if strings.TrimSpace(value) == "" {
		r.add(f, "is required")
		return false
	}
	return true
}

func (r *rules) answered(f Field, a models.YesNo) bool {
	if a == models.Unanswered {
		r.add(f, "must be answered yes or no")
		return false
	}
	return true
}

func (r *rules) passwordsMatch(password, confirm []byte) {
	if len(password) == 0 || len(confirm) == 0 {
		return
	}
	if string(password) != string(confirm) {
		r.add(FieldConfirmPassword, "does not match the password")
	}
}

func (r *rules) email(f Field, value string) {
	if !r.required(f, value) {
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		r.add(f, "must be a valid email address")
	}
}

func (r *rules) pastDate(f Field, value string, now time.Time) {
	if !r.required(f, value) {
		return
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		r.add(f, "must be a date in YYYY-MM-DD format")
		return
	}
	if d.After(now) {
		r.add(f, "must not be in the future")
	}
}

// wholeNumber requires value to be an integer in [lo, hi]; hi < lo means
// there is no upper bound.
func (r *rules) wholeNumber(f Field, value string, lo, hi int) {
	if !r.required(f, value) {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		r.add(f, "must be a whole number")
		return
	}
	switch {
	case hi >= lo && (n < lo || n > hi):
		r.add(f, fmt.Sprintf("must be between %d and %d", lo, hi))
	case n < lo:
		r.add(f, fmt.Sprintf("must be at least %d", lo))
	}
}

func (r *rules) result() []Violation {
	return r.violations
}

func validatePatient(a *models.PatientAnswers, step int, now time.Time) []Violation {
	var r rules

	switch step {
	case 1:
		r.required(FieldFullName, a.FullName)
		r.email(FieldEmail, a.Email)
		r.required(FieldPassword, string(a.Password))
		r.required(FieldConfirmPassword, string(a.ConfirmPassword))
		r.passwordsMatch(a.Password, a.ConfirmPassword)
		r.pastDate(FieldDateOfBirth, a.DateOfBirth, now)

	case 2:
		r.answered(FieldSmoking, a.Smoking)
		if r.answered(FieldContraceptiveUse, a.Contraceptives.Answer()) {
			if d, ok := a.Contraceptives.Detail(); ok {
				r.required(FieldContraceptiveType, d.Type)
				r.wholeNumber(FieldContraceptiveDurationYears, d.DurationYears, 0, -1)
			}
		}
		if r.answered(FieldHasChildren, a.Children.Answer()) {
			if d, ok := a.Children.Detail(); ok {
				r.wholeNumber(FieldChildrenCount, d.Count, 1, -1)
				r.wholeNumber(FieldAgeAtFirstBirth, d.AgeAtFirstBirth, MinAgeAtFirstBirth, MaxAgeAtFirstBirth)
			}
		}

	case 3:
		r.answered(FieldHPVStatus, a.HPV)
		history(&r, FieldCancerHistory, FieldCancerTypes, a.Cancer)
		history(&r, FieldUTIHistory, FieldUTITypes, a.UTI)
		history(&r, FieldSTDHistory, FieldSTDTypes, a.STD)
		r.answered(FieldFamilyCancerHistory, a.FamilyCancer)
	}

	return r.result()
}

func history(r *rules, governing, dependent Field, c models.Conditional[models.HistoryDetail]) {
	if !r.answered(governing, c.Answer()) {
		return
	}
	if d, ok := c.Detail(); ok {
		r.required(dependent, d.Types)
	}
}

func validateDoctor(a *models.DoctorAnswers, step int, _ time.Time) []Violation {
	var r rules

	switch step {
	case 1:
		r.required(FieldFullName, a.FullName)
		r.email(FieldEmail, a.Email)
		r.required(FieldPassword, string(a.Password))
		r.required(FieldConfirmPassword, string(a.ConfirmPassword))
		r.passwordsMatch(a.Password, a.ConfirmPassword)

	case 2:
		r.required(FieldSpecialization, string(a.Specialization))
		r.required(FieldLicenseNumber, a.LicenseNumber)
		r.wholeNumber(FieldYearsOfExperience, a.YearsOfExperience, 0, -1)
	}

	return r.result()
}
