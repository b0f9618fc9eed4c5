package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cubihealth/internal/common"
	"github.com/dmitrijs2005/cubihealth/internal/models"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Login prompts for credentials and signs in with the given role. The
// password is wiped before returning.
func (a *App) Login(ctx context.Context, role models.Role) error {
	if a.isLoggedIn() {
		return fmt.Errorf("already signed in, log out first")
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.sessions.Login(ctx, email, password, role)
	if err != nil {
		a.logger.Warn(ctx, "login unsuccessful", "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", id.DisplayName)
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// Whoami prints the signed-in identity.
func (a *App) Whoami(ctx context.Context) error {
	id, ok := a.sessions.Current()
	if !ok {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>, %s (id %s)\n", id.DisplayName, id.Email, id.Role, id.ID)
	return nil
}
