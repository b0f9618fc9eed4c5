// Package cli provides the interactive CubiHealth command-line front end.
//
// It wires configuration, the risk score store, the session store and the
// dashboard reader behind a small REPL. Sign-up runs the onboarding wizard
// one step at a time, rendering each step from the wizard's field schema:
// dependent questions are only asked when their governing question was
// answered "yes", and a rejected step is shown with every violation before
// its questions are asked again.
//
// Commands
//
//	signup patient|doctor   run the intake wizard and sign up
//	login patient|doctor    sign in
//	logout                  sign out
//	whoami                  show the signed-in identity
//	risk                    show the stored risk assessment (patients)
//	help                    list commands
//	exit | quit             leave the program
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
