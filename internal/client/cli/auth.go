package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/scripto/internal/client/client"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, full name and password, creates the account and
// logs in with the same credentials. The password bytes are wiped before
// returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	if _, err := a.session.Register(ctx, email, fullName, string(password)); err != nil {
		a.report(err)
		return err
	}

	a.printf("Registered and logged in as %s\n", email)
	return nil
}

// Login prompts for credentials and installs the issued token. The password
// bytes are wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	if _, err := a.session.Login(ctx, email, string(password)); err != nil {
		a.report(err)
		return err
	}

	a.printf("Login successful\n")
	return nil
}

// Logout forgets the session token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.report(err)
		return err
	}
	a.printf("Logged out\n")
	return nil
}

// report prints err for the user. An expired or missing session gets a
// re-login hint instead of the raw error.
func (a *App) report(err error) {
	a.printf("%s\n", describe(err))
}

func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "Not logged in or session expired. Please log in again."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
