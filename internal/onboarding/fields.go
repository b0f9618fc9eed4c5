package onboarding

// Field names an intake answer.
type Field string

const (
	FieldFullName        Field = "fullName"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"

	FieldDateOfBirth                Field = "dateOfBirth"
	FieldSmoking                    Field = "smoking"
	FieldContraceptiveUse           Field = "contraceptiveUse"
	FieldContraceptiveType          Field = "contraceptiveType"
	FieldContraceptiveDurationYears Field = "contraceptiveDurationYears"
	FieldHasChildren                Field = "hasChildren"
	FieldChildrenCount              Field = "childrenCount"
	FieldAgeAtFirstBirth            Field = "ageAtFirstBirth"
	FieldHPVStatus                  Field = "hpvStatus"
	FieldCancerHistory              Field = "cancerHistory"
	FieldCancerTypes                Field = "cancerTypes"
	FieldUTIHistory                 Field = "utiHistory"
	FieldUTITypes                   Field = "utiTypes"
	FieldSTDHistory                 Field = "stdHistory"
	FieldSTDTypes                   Field = "stdTypes"
	FieldFamilyCancerHistory        Field = "familyCancerHistory"

	FieldSpecialization      Field = "specialization"
	FieldLicenseNumber       Field = "licenseNumber"
	FieldYearsOfExperience   Field = "yearsOfExperience"
	FieldHospitalAffiliation Field = "hospitalAffiliation"
	FieldEducation           Field = "education"
	FieldBio                 Field = "bio"
)

// FieldKind tells a front end how to prompt for a field.
type FieldKind int

const (
	KindText FieldKind = iota
	KindPassword
	KindDate
	KindNumber
	KindYesNo
	KindChoice
	KindMultiline
)

// FieldSpec describes one prompt of a step.
type FieldSpec struct {
	Name        Field
	Label       string
	Kind        FieldKind
	Placeholder string
	Optional    bool

	// Choices lists the accepted values of a KindChoice field.
	Choices []string

	// GovernedBy is set on dependent fields: the yes/no field that must be
	// "yes" for this field to be asked at all.
	GovernedBy Field
}

// Step is one screen of a wizard. A review step collects nothing.
type Step struct {
	Number int
	Title  string
	Fields []FieldSpec
	Review bool
}

var basicFields = []FieldSpec{
	{Name: FieldFullName, Label: "Full Name", Kind: KindText},
	{Name: FieldEmail, Label: "Email Address", Kind: KindText, Placeholder: "name@example.com"},
	{Name: FieldPassword, Label: "Password", Kind: KindPassword},
	{Name: FieldConfirmPassword, Label: "Confirm Password", Kind: KindPassword},
}

func withFields(base []FieldSpec, extra ...FieldSpec) []FieldSpec {
	out := make([]FieldSpec, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

var patientSteps = []Step{
	{
		Number: 1,
		Title:  "Basic Information",
		Fields: withFields(basicFields,
			FieldSpec{Name: FieldDateOfBirth, Label: "Date of Birth", Kind: KindDate, Placeholder: "YYYY-MM-DD"},
		),
	},
	{
		Number: 2,
		Title:  "Lifestyle Factors",
		Fields: []FieldSpec{
			{Name: FieldSmoking, Label: "Do you smoke?", Kind: KindYesNo},
			{Name: FieldContraceptiveUse, Label: "Do you use contraceptives?", Kind: KindYesNo},
			{Name: FieldContraceptiveType, Label: "Type of Contraceptive", Kind: KindText, Placeholder: "e.g., Pill, IUD, etc.", GovernedBy: FieldContraceptiveUse},
			{Name: FieldContraceptiveDurationYears, Label: "Years of Use", Kind: KindNumber, GovernedBy: FieldContraceptiveUse},
			{Name: FieldHasChildren, Label: "Do you have children?", Kind: KindYesNo},
			{Name: FieldChildrenCount, Label: "Number of Children", Kind: KindNumber, GovernedBy: FieldHasChildren},
			{Name: FieldAgeAtFirstBirth, Label: "Age at First Birth", Kind: KindNumber, GovernedBy: FieldHasChildren},
		},
	},
	{
		Number: 3,
		Title:  "Medical History",
		Fields: []FieldSpec{
			{Name: FieldHPVStatus, Label: "Do you have HPV?", Kind: KindYesNo},
			{Name: FieldCancerHistory, Label: "Have you ever had cancer?", Kind: KindYesNo},
			{Name: FieldCancerTypes, Label: "Which cancer types?", Kind: KindText, GovernedBy: FieldCancerHistory},
			{Name: FieldUTIHistory, Label: "Do you have a history of UTIs?", Kind: KindYesNo},
			{Name: FieldUTITypes, Label: "Which UTI types?", Kind: KindText, GovernedBy: FieldUTIHistory},
			{Name: FieldSTDHistory, Label: "Do you have a history of STDs?", Kind: KindYesNo},
			{Name: FieldSTDTypes, Label: "Which STD types?", Kind: KindText, GovernedBy: FieldSTDHistory},
			{Name: FieldFamilyCancerHistory, Label: "Is there a family history of cancer?", Kind: KindYesNo},
		},
	},
	{Number: 4, Title: "Risk Assessment", Review: true},
}

var doctorSteps = []Step{
	{Number: 1, Title: "Basic Information", Fields: basicFields},
	{
		Number: 2,
		Title:  "Professional Details",
		Fields: []FieldSpec{
			{Name: FieldSpecialization, Label: "Specialization", Kind: KindChoice, Choices: specializationChoices()},
			{Name: FieldLicenseNumber, Label: "Medical License Number", Kind: KindText, Placeholder: "e.g., MD12345678"},
			{Name: FieldYearsOfExperience, Label: "Years of Experience", Kind: KindNumber, Placeholder: "e.g., 10"},
			{Name: FieldHospitalAffiliation, Label: "Hospital Affiliation", Kind: KindText, Optional: true, Placeholder: "e.g., University Medical Center"},
			{Name: FieldEducation, Label: "Education", Kind: KindText, Optional: true, Placeholder: "e.g., MD, Harvard Medical School"},
			{Name: FieldBio, Label: "Bio", Kind: KindMultiline, Optional: true, Placeholder: "Brief professional introduction"},
		},
	},
	{Number: 3, Title: "Review & Confirm", Review: true},
}

var labels = func() map[Field]string {
	m := make(map[Field]string)
	for _, steps := range [][]Step{patientSteps, doctorSteps} {
		for _, s := range steps {
			for _, f := range s.Fields {
				m[f.Name] = f.Label
			}
		}
	}
	return m
}()

// Label returns the display label of f, or its name if it has none.
func Label(f Field) string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}

func stepHas(s Step, f Field) bool {
	for _, spec := range s.Fields {
		if spec.Name == f {
			return true
		}
	}
	return false
}
