package cli

import (
	"bufio"
	"context"
)

// sessionIface defines the command surface the menu loop needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type sessionIface interface {
	ScheduleMeeting(ctx context.Context) error
	ListMeetings(ctx context.Context) error
	ListContacts(ctx context.Context) error
	ChangePlan(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	ExportCalendar(ctx context.Context) error
}

// runMenu drives the logged-in part of the session: print the numbered
// menu, read a choice, dispatch, repeat. The loop exits on input EOF or
// when the user picks Exit. r is the same reader the flows prompt from,
// so the menu never buffers ahead of them.
//
// Non-numeric input parses as option 0 and falls through to "invalid
// option". Errors returned by the handlers are ignored here; each flow
// reports its own outcome to the user. This keeps the loop resilient and
// focused on I/O.
func runMenu(ctx context.Context, s sessionIface, r *bufio.Reader) {
	for {
		printlnFn("\n--- Menu ---")
		printlnFn("1. Schedule meeting")
		printlnFn("2. List meetings")
		printlnFn("3. List contacts")
		printlnFn("4. Change plan")
		printlnFn("5. Change password")
		printlnFn("6. Export calendar")
		printlnFn("7. Exit")
		printlnFn("Select an option:")

		choice, ok := readChoice(r)
		if !ok {
			return
		}

		switch choice {
		case 1:
			_ = s.ScheduleMeeting(ctx)
		case 2:
			_ = s.ListMeetings(ctx)
		case 3:
			_ = s.ListContacts(ctx)
		case 4:
			_ = s.ChangePlan(ctx)
		case 5:
			_ = s.ChangePassword(ctx)
		case 6:
			_ = s.ExportCalendar(ctx)
		case 7:
			printlnFn("Thanks for using Meetly. Goodbye!")
			return
		default:
			printlnFn("Invalid option, try again.")
		}
	}
}
