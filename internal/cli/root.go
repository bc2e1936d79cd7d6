package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// Run loads the account store and drives one interactive session.
//
// The top level offers exactly two choices: log in or create an account.
// A failed login, an invalid choice, or account creation all end the
// session; only a successful login enters the menu loop. There is no retry
// loop at the top level.
//
// All input comes through a.reader, shared with the flow prompts, so
// piped input buffered ahead of the current prompt is never lost.
//
// Load errors (unknown plan tier in the store file) are fatal and returned
// to the caller; a corrupt store is not self-healing.
func (a *App) Run(ctx context.Context) error {
	if err := a.store.Load(ctx); err != nil {
		return err
	}

	printlnFn("Welcome to the Meetly meeting scheduler!")
	printlnFn("Select an option:")
	printlnFn("1. Log in")
	printlnFn("2. Create account")

	choice, ok := readChoice(a.reader)
	if !ok {
		return nil
	}

	switch choice {
	case 1:
		if err := a.Login(ctx); err != nil {
			printlnFn("Login failed. Exiting.")
			return nil
		}
		runMenu(ctx, a, a.reader)
	case 2:
		_ = a.CreateAccount(ctx)
	default:
		printlnFn("Invalid option. Exiting.")
	}
	return nil
}

// readChoice reads one menu line from r. ok is false once the input is
// exhausted; a final unterminated line still counts as a choice.
func readChoice(r *bufio.Reader) (int, bool) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return 0, false
	}
	return parseChoice(line), true
}

// parseChoice maps a menu line to its numeric option. Anything that does
// not parse as a number counts as option 0, which no menu entry claims.
func parseChoice(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
