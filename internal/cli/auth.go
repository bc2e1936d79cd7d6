package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/meetly/meetly/internal/common"
	"github.com/meetly/meetly/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the store. On
// success the account becomes the session's current account. The password
// byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter your username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter your password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, err := a.auth.Login(ctx, username, password)
	if err != nil {
		printlnFn("Wrong username or password.")
		return err
	}

	a.current = account
	// All records from here on carry the logged-in username.
	a.log = a.log.With("username", account.Username)
	a.log.Info(ctx, "session started")
	printlnFn(fmt.Sprintf("Login successful. Hello, %s!", account.Username))
	return nil
}

// CreateAccount prompts for the new account's details and persists it.
// The fresh account is not logged in: the session ends afterwards and the
// user starts the program again to sign in.
//
// Plan-tier input is matched case-insensitively; unrecognized text abandons
// the flow with a generic message.
func (a *App) CreateAccount(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter the new username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter the password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	planText, err := getSimpleText(a.reader, "Select the plan tier (BASE/PREMIUM)", os.Stdout)
	if err != nil {
		return err
	}
	plan, err := models.ParsePlan(strings.ToUpper(planText))
	if err != nil {
		printlnFn("Could not create the account. Make sure the plan tier is valid.")
		return err
	}

	if _, err := a.auth.Register(ctx, username, password, plan); err != nil {
		printlnFn("Could not create the account.")
		return err
	}

	printlnFn("Account created successfully. Run the program again to log in.")
	return nil
}
