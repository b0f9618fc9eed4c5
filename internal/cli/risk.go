package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cubihealth/internal/dashboard"
	"github.com/dmitrijs2005/cubihealth/internal/risk"
)

// Risk prints the stored risk assessment of the signed-in patient.
func (a *App) Risk(ctx context.Context) error {
	token, _ := a.sessions.Token()

	as, err := a.dashboard.RiskAssessment(ctx, token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Risk assessment for %s\n", as.Patient.DisplayName)
	if !as.Available {
		fmt.Fprintln(a.out, dashboard.NoAssessment)
		return nil
	}
	fmt.Fprintf(a.out, "Score: %d (%s, %s)\n", as.Score, as.Band.Label(), as.Band.Color())
	fmt.Fprintln(a.out, as.Advice)
	fmt.Fprintln(a.out, risk.Disclaimer)
	return nil
}
