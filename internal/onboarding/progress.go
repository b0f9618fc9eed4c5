package onboarding

import "math"

// Progress is the position of a wizard within its steps.
type Progress struct {
	CurrentStep int
	TotalSteps  int

	// CompletionFraction is a percentage in [0, 100].
	CompletionFraction int
}

// CompletionFraction returns round(100*step/total), clamped to [0, 100].
// It depends on nothing but its arguments, so the fraction shown for a step
// is the same whichever direction the user arrived from.
func CompletionFraction(step, total int) int {
	if total <= 0 || step <= 0 {
		return 0
	}
	if step >= total {
		return 100
	}
	return int(math.Round(100 * float64(step) / float64(total)))
}

func newProgress(step, total int) Progress {
	return Progress{CurrentStep: step, TotalSteps: total, CompletionFraction: CompletionFraction(step, total)}
}
