package common

// RiskScoreKey is the key-value key under which the latest patient risk
// score is kept by key-value backed score sinks.
const RiskScoreKey = "patient_risk_score"

// AppName is shown in CLI banners and used as the JWT issuer.
const AppName = "CubiHealth"
