package cli

import (
	"context"
	"fmt"

	"github.com/ssolovjova/recipebox/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Demo user credentials preconfigured on the backend, mirroring the "Try
// Demo User" shortcut of the landing page.
const (
	demoEmail    = "user@recipebox.local"
	demoPassword = "password"
)

// Login prompts for credentials and attempts to authenticate. On failure the
// session stays signed out and a notification is shown; the user can simply
// retry. The password bytes are wiped before returning.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already signed in.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.login(ctx, email, string(password))
}

func (a *App) login(ctx context.Context, email, password string) error {
	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "error", err)
		fmt.Fprintln(a.out, "Login failed. Please check your credentials.")
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)
	return nil
}

// Signup prompts for name, email and password, creates the account, and logs
// in with the same credentials as one logical operation.
func (a *App) Signup(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already signed in.")
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Signup(ctx, name, email, string(password))
	if err != nil {
		a.log.Warn(ctx, "signup failed", "error", err)
		fmt.Fprintln(a.out, "Signup failed. The email might already be in use.")
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)
	return nil
}

// Demo signs in with the well-known demo account.
func (a *App) Demo(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already signed in.")
		return nil
	}
	return a.login(ctx, demoEmail, demoPassword)
}

// Whoami shows the signed-in user.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	return nil
}

// Logout invalidates the session. Local state is cleared even when the
// remote call fails.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
