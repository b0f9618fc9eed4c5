package onboarding

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/cubihealth/internal/common"
	"github.com/dmitrijs2005/cubihealth/internal/models"
)

// form binds field names to a role's typed answers.
type form interface {
	role() models.Role
	steps() []Step
	set(f Field, v string) error
	value(f Field) string
	validate(step int, now time.Time) []Violation
	credentials() (email string, password []byte, displayName string)
	wipe()
}

const maskedPassword = "********"

func specializationChoices() []string {
	out := make([]string, len(models.Specializations))
	for i, s := range models.Specializations {
		out[i] = string(s)
	}
	return out
}

func yesNo(f Field, v string) (models.YesNo, error) {
	a, ok := models.ParseYesNo(v)
	if !ok {
		return models.Unanswered, invalid(f, "must be answered yes or no")
	}
	return a, nil
}

func notAsked(f, governing Field) error {
	return fmt.Errorf("%w: %s is only asked when %s is yes", common.ErrInvariantViolation, f, governing)
}

func unknownField(f Field, r models.Role) error {
	return fmt.Errorf("%w: %s is not a %s intake field", common.ErrInvariantViolation, f, r)
}

func setPassword(dst *[]byte, v string) {
	common.WipeByteArray(*dst)
	*dst = []byte(v)
}

func maskPassword(p []byte) string {
	if len(p) == 0 {
		return ""
	}
	return maskedPassword
}

type patientForm struct {
	a models.PatientAnswers
}

func (p *patientForm) role() models.Role { return models.RolePatient }

func (p *patientForm) steps() []Step { return patientSteps }

func (p *patientForm) set(f Field, v string) error {
	a := &p.a
	text := strings.TrimSpace(v)

	switch f {
	case FieldFullName:
		a.FullName = text
	case FieldEmail:
		a.Email = text
	case FieldPassword:
		setPassword(&a.Password, v)
	case FieldConfirmPassword:
		setPassword(&a.ConfirmPassword, v)
	case FieldDateOfBirth:
		a.DateOfBirth = text

	case FieldSmoking, FieldHPVStatus, FieldFamilyCancerHistory,
		FieldContraceptiveUse, FieldHasChildren,
		FieldCancerHistory, FieldUTIHistory, FieldSTDHistory:
		yn, err := yesNo(f, v)
		if err != nil {
			return err
		}
		p.setGoverning(f, yn)

	case FieldContraceptiveType:
		if !a.Contraceptives.UpdateDetail(func(d *models.ContraceptiveDetail) { d.Type = text }) {
			return notAsked(f, FieldContraceptiveUse)
		}
	case FieldContraceptiveDurationYears:
		if !a.Contraceptives.UpdateDetail(func(d *models.ContraceptiveDetail) { d.DurationYears = text }) {
			return notAsked(f, FieldContraceptiveUse)
		}
	case FieldChildrenCount:
		if !a.Children.UpdateDetail(func(d *models.ChildrenDetail) { d.Count = text }) {
			return notAsked(f, FieldHasChildren)
		}
	case FieldAgeAtFirstBirth:
		if !a.Children.UpdateDetail(func(d *models.ChildrenDetail) { d.AgeAtFirstBirth = text }) {
			return notAsked(f, FieldHasChildren)
		}
	case FieldCancerTypes:
		if !a.Cancer.UpdateDetail(func(d *models.HistoryDetail) { d.Types = text }) {
			return notAsked(f, FieldCancerHistory)
		}
	case FieldUTITypes:
		if !a.UTI.UpdateDetail(func(d *models.HistoryDetail) { d.Types = text }) {
			return notAsked(f, FieldUTIHistory)
		}
	case FieldSTDTypes:
		if !a.STD.UpdateDetail(func(d *models.HistoryDetail) { d.Types = text }) {
			return notAsked(f, FieldSTDHistory)
		}

	default:
		return unknownField(f, models.RolePatient)
	}
	return nil
}

func (p *patientForm) setGoverning(f Field, yn models.YesNo) {
	a := &p.a
	switch f {
	case FieldSmoking:
		a.Smoking = yn
	case FieldHPVStatus:
		a.HPV = yn
	case FieldFamilyCancerHistory:
		a.FamilyCancer = yn
	case FieldContraceptiveUse:
		a.Contraceptives.SetAnswer(yn)
	case FieldHasChildren:
		a.Children.SetAnswer(yn)
	case FieldCancerHistory:
		a.Cancer.SetAnswer(yn)
	case FieldUTIHistory:
		a.UTI.SetAnswer(yn)
	case FieldSTDHistory:
		a.STD.SetAnswer(yn)
	}
}

func (p *patientForm) value(f Field) string {
	a := &p.a
	contraceptives, _ := a.Contraceptives.Detail()
	children, _ := a.Children.Detail()
	cancer, _ := a.Cancer.Detail()
	uti, _ := a.UTI.Detail()
	std, _ := a.STD.Detail()

	switch f {
	case FieldFullName:
		return a.FullName
	case FieldEmail:
		return a.Email
	case FieldPassword:
		return maskPassword(a.Password)
	case FieldConfirmPassword:
		return maskPassword(a.ConfirmPassword)
	case FieldDateOfBirth:
		return a.DateOfBirth
	case FieldSmoking:
		return string(a.Smoking)
	case FieldContraceptiveUse:
		return string(a.Contraceptives.Answer())
	case FieldContraceptiveType:
		return contraceptives.Type
	case FieldContraceptiveDurationYears:
		return contraceptives.DurationYears
	case FieldHasChildren:
		return string(a.Children.Answer())
	case FieldChildrenCount:
		return children.Count
	case FieldAgeAtFirstBirth:
		return children.AgeAtFirstBirth
	case FieldHPVStatus:
		return string(a.HPV)
	case FieldCancerHistory:
		return string(a.Cancer.Answer())
	case FieldCancerTypes:
		return cancer.Types
	case FieldUTIHistory:
		return string(a.UTI.Answer())
	case FieldUTITypes:
		return uti.Types
	case FieldSTDHistory:
		return string(a.STD.Answer())
	case FieldSTDTypes:
		return std.Types
	case FieldFamilyCancerHistory:
		return string(a.FamilyCancer)
	}
	return ""
}

func (p *patientForm) validate(step int, now time.Time) []Violation {
	return validatePatient(&p.a, step, now)
}

func (p *patientForm) credentials() (string, []byte, string) {
	return p.a.Email, p.a.Password, p.a.FullName
}

func (p *patientForm) wipe() {
	common.WipeByteArray(p.a.Password)
	common.WipeByteArray(p.a.ConfirmPassword)
	p.a = models.PatientAnswers{}
}

type doctorForm struct {
	a models.DoctorAnswers
}

func (d *doctorForm) role() models.Role { return models.RoleDoctor }

func (d *doctorForm) steps() []Step { return doctorSteps }

func (d *doctorForm) set(f Field, v string) error {
	a := &d.a
	text := strings.TrimSpace(v)

	switch f {
	case FieldFullName:
		a.FullName = text
	case FieldEmail:
		a.Email = text
	case FieldPassword:
		setPassword(&a.Password, v)
	case FieldConfirmPassword:
		setPassword(&a.ConfirmPassword, v)
	case FieldSpecialization:
		if text == "" {
			a.Specialization = ""
			return nil
		}
		sp, ok := models.ParseSpecialization(text)
		if !ok {
			return invalid(f, "must be one of: "+strings.Join(specializationChoices(), ", "))
		}
		a.Specialization = sp
	case FieldLicenseNumber:
		a.LicenseNumber = text
	case FieldYearsOfExperience:
		a.YearsOfExperience = text
	case FieldHospitalAffiliation:
		a.HospitalAffiliation = text
	case FieldEducation:
		a.Education = text
	case FieldBio:
		a.Bio = text
	default:
		return unknownField(f, models.RoleDoctor)
	}
	return nil
}

func (d *doctorForm) value(f Field) string {
	a := &d.a
	switch f {
	case FieldFullName:
		return a.FullName
	case FieldEmail:
		return a.Email
	case FieldPassword:
		return maskPassword(a.Password)
	case FieldConfirmPassword:
		return maskPassword(a.ConfirmPassword)
	case FieldSpecialization:
		return string(a.Specialization)
	case FieldLicenseNumber:
		return a.LicenseNumber
	case FieldYearsOfExperience:
		return a.YearsOfExperience
	case FieldHospitalAffiliation:
		return a.HospitalAffiliation
	case FieldEducation:
		return a.Education
	case FieldBio:
		return a.Bio
	}
	return ""
}

func (d *doctorForm) validate(step int, now time.Time) []Violation {
	return validateDoctor(&d.a, step, now)
}

func (d *doctorForm) credentials() (string, []byte, string) {
	return d.a.Email, d.a.Password, d.a.FullName
}

func (d *doctorForm) wipe() {
	common.WipeByteArray(d.a.Password)
	common.WipeByteArray(d.a.ConfirmPassword)
	d.a = models.DoctorAnswers{}
}
