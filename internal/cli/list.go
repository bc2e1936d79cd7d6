package cli

import "context"

// ListMeetings prints a full field dump of every meeting held by the
// current account in this session.
func (a *App) ListMeetings(ctx context.Context) error {
	printlnFn("Scheduled meetings:")
	for _, m := range a.current.Meetings {
		printlnFn(m.String())
	}
	return nil
}

// ListContacts prints the distinct usernames pooled from the invitee lists
// of the current account's meetings, in first-seen order.
func (a *App) ListContacts(ctx context.Context) error {
	printlnFn("Contacts:")
	for _, contact := range a.current.Contacts() {
		printlnFn(contact)
	}
	return nil
}
