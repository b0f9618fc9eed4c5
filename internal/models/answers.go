package models

import "strings"

// YesNo is the answer to a yes/no intake question. The zero value means the
// question has not been answered yet.
type YesNo string

const (
	Unanswered YesNo = ""
	Yes        YesNo = "yes"
	No         YesNo = "no"
)

// ParseYesNo accepts yes/y/no/n in any case.
func ParseYesNo(s string) (YesNo, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return Yes, true
	case "no", "n":
		return No, true
	}
	return Unanswered, false
}

// Conditional is a yes/no answer governing a detail record of type T. The
// detail only exists while the answer is Yes: switching the answer to No (or
// back to Unanswered) drops whatever detail had been entered.
type Conditional[T any] struct {
	answer YesNo
	detail T
}

// NewConditional builds a Conditional; detail is discarded unless answer is Yes.
func NewConditional[T any](answer YesNo, detail T) Conditional[T] {
	c := Conditional[T]{}
	c.SetAnswer(answer)
	if answer == Yes {
		c.detail = detail
	}
	return c
}

// Answer returns the governing answer.
func (c Conditional[T]) Answer() YesNo { return c.answer }

// IsYes reports whether the governing answer is Yes.
func (c Conditional[T]) IsYes() bool { return c.answer == Yes }

// Detail returns the detail record and true when the answer is Yes.
func (c Conditional[T]) Detail() (T, bool) {
	if c.answer != Yes {
		var zero T
		return zero, false
	}
	return c.detail, true
}

// SetAnswer records the governing answer, clearing the detail unless it is Yes.
func (c *Conditional[T]) SetAnswer(a YesNo) {
	c.answer = a
	if a != Yes {
		var zero T
		c.detail = zero
	}
}

// UpdateDetail applies fn to the detail record. It reports false, without
// calling fn, when the answer is not Yes.
func (c *Conditional[T]) UpdateDetail(fn func(*T)) bool {
	if c.answer != Yes {
		return false
	}
	fn(&c.detail)
	return true
}

// ContraceptiveDetail is collected when the patient uses contraceptives.
type ContraceptiveDetail struct {
	Type          string
	DurationYears string
}

// ChildrenDetail is collected when the patient has children.
type ChildrenDetail struct {
	Count           string
	AgeAtFirstBirth string
}

// HistoryDetail lists the specific conditions of a medical history answer.
type HistoryDetail struct {
	Types string
}

// PatientAnswers is the full patient intake. Numeric sub-fields keep the
// text the user typed; the validators check that they parse.
type PatientAnswers struct {
	FullName        string
	Email           string
	Password        []byte
	ConfirmPassword []byte
	DateOfBirth     string

	Smoking        YesNo
	Contraceptives Conditional[ContraceptiveDetail]
	Children       Conditional[ChildrenDetail]

	HPV          YesNo
	Cancer       Conditional[HistoryDetail]
	UTI          Conditional[HistoryDetail]
	STD          Conditional[HistoryDetail]
	FamilyCancer YesNo
}

// Specialization is a doctor's declared field of practice.
type Specialization string

const (
	SpecializationGynecology          Specialization = "gynecology"
	SpecializationOncology            Specialization = "oncology"
	SpecializationGynecologicOncology Specialization = "gynecologic-oncology"
	SpecializationGeneralPractitioner Specialization = "general-practitioner"
	SpecializationOther               Specialization = "other"
)

// Specializations lists the accepted values in display order.
var Specializations = []Specialization{
	SpecializationGynecology,
	SpecializationOncology,
	SpecializationGynecologicOncology,
	SpecializationGeneralPractitioner,
	SpecializationOther,
}

// ParseSpecialization matches s against Specializations, ignoring case.
func ParseSpecialization(s string) (Specialization, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, sp := range Specializations {
		if string(sp) == s {
			return sp, true
		}
	}
	return "", false
}

// DoctorAnswers is the full doctor intake. HospitalAffiliation, Education
// and Bio are optional.
type DoctorAnswers struct {
	FullName        string
	Email           string
	Password        []byte
	ConfirmPassword []byte

	Specialization      Specialization
	LicenseNumber       string
	YearsOfExperience   string
	HospitalAffiliation string
	Education           string
	Bio                 string
}
