// Package onboarding implements the patient and doctor intake wizards.
//
// A Wizard walks a role-specific sequence of steps. Every forward move is
// gated by the current step's validator; the last step is a review screen
// from which Submit runs the union of all step rules, computes the patient
// risk score, signs the user up through the session store and hands the
// score to the injected score sink.
//
// # Step layout
//
//	patient: Basic Information → Lifestyle Factors → Medical History → Risk Assessment
//	doctor:  Basic Information → Professional Details → Review & Confirm
//
// # Errors
//
// Rule violations are reported as *ValidationError (matching
// common.ErrValidation); misuse of the state machine, such as submitting
// before the review step, matches common.ErrInvariantViolation; mutating a
// wizard while its submission is in flight matches common.ErrBusy.
//
// A Wizard is safe for concurrent use, but only one submission can be in
// flight at a time.
package onboarding
