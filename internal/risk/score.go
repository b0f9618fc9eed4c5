// Package risk computes the patient risk score from finished intake answers
// and maps scores to display bands.
//
// The model is additive: each self-reported factor contributes a fixed
// weight and the sum is clamped to [MinScore, MaxScore]. UTI history,
// children and contraceptive type are collected by the intake but carry no
// weight in the current model.
package risk

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/cubihealth/internal/models"
)

const (
	MinScore = 0
	MaxScore = 100
)

// Factor weights.
const (
	WeightSmoking        = 10
	WeightHPV            = 30
	WeightCancerHistory  = 20
	WeightSTDHistory     = 15
	WeightFamilyCancer   = 15
	WeightContraceptives = 5

	// ContraceptiveYearsThreshold is the number of years of use that must be
	// exceeded before contraceptives add WeightContraceptives.
	ContraceptiveYearsThreshold = 5
)

// Score returns the risk score for a over [MinScore, MaxScore]. It has no
// side effects and the same answers always produce the same score.
func Score(a models.PatientAnswers) int {
	score := 0

	if a.Smoking == models.Yes {
		score += WeightSmoking
	}
	if a.HPV == models.Yes {
		score += WeightHPV
	}
	if a.Cancer.IsYes() {
		score += WeightCancerHistory
	}
	if a.STD.IsYes() {
		score += WeightSTDHistory
	}
	if a.FamilyCancer == models.Yes {
		score += WeightFamilyCancer
	}
	if d, ok := a.Contraceptives.Detail(); ok && years(d.DurationYears) > ContraceptiveYearsThreshold {
		score += WeightContraceptives
	}

	return clamp(score, MinScore, MaxScore)
}

// years parses a duration entry; anything that is not a whole number counts
// as zero years.
func years(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
