package risk

// Band is the display category of a score. Bands drive presentation only;
// the stored value is always the raw score.
type Band string

const (
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
)

const (
	mediumFrom = 30
	highFrom   = 60
)

// BandFor maps a score to its band: below 30 low, below 60 medium, else high.
func BandFor(score int) Band {
	switch {
	case score < mediumFrom:
		return BandLow
	case score < highFrom:
		return BandMedium
	default:
		return BandHigh
	}
}

// Label is the band name as shown to users.
func (b Band) Label() string {
	switch b {
	case BandLow:
		return "Low Risk"
	case BandMedium:
		return "Medium Risk"
	default:
		return "High Risk"
	}
}

// Color is the indicator color used for the band.
func (b Band) Color() string {
	switch b {
	case BandLow:
		return "green"
	case BandMedium:
		return "yellow"
	default:
		return "red"
	}
}

// ReviewAdvice is shown on the last step of the patient intake.
func (b Band) ReviewAdvice() string {
	switch b {
	case BandLow:
		return "Your risk factors indicate a lower risk profile. Continue regular checkups and screenings."
	case BandMedium:
		return "You have some moderate risk factors. Regular screenings and consultations are recommended."
	default:
		return "Your profile shows elevated risk factors. We recommend more frequent screenings and close monitoring."
	}
}

// DashboardAdvice is shown next to a stored score on the patient dashboard.
func (b Band) DashboardAdvice() string {
	switch b {
	case BandLow:
		return "Your risk assessment indicates a lower risk profile. Continue regular screenings and maintain your health practices."
	case BandMedium:
		return "You have some moderate risk factors. Regular screenings are important for early detection."
	default:
		return "Your assessment shows elevated risk factors. Please follow the recommended screening schedule closely."
	}
}

// Disclaimer accompanies every displayed score.
const Disclaimer = "Note: This is an initial assessment based on self-reported information. " +
	"It is not a medical diagnosis. Please consult with healthcare professionals for proper evaluation."
