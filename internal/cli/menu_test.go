package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetly/meetly/internal/models"
)

type fakeSession struct {
	calls []string
}

func (f *fakeSession) ScheduleMeeting(ctx context.Context) error {
	f.calls = append(f.calls, "schedule")
	return nil
}
func (f *fakeSession) ListMeetings(ctx context.Context) error {
	f.calls = append(f.calls, "meetings")
	return nil
}
func (f *fakeSession) ListContacts(ctx context.Context) error {
	f.calls = append(f.calls, "contacts")
	return nil
}
func (f *fakeSession) ChangePlan(ctx context.Context) error {
	f.calls = append(f.calls, "plan")
	return nil
}
func (f *fakeSession) ChangePassword(ctx context.Context) error {
	f.calls = append(f.calls, "password")
	return nil
}
func (f *fakeSession) ExportCalendar(ctx context.Context) error {
	f.calls = append(f.calls, "export")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunMenu_DispatchAndExit(t *testing.T) {
	silencePrintln(t)

	input := strings.Join([]string{
		"1", "2", "3", "4", "5", "6", "7",
	}, "\n")

	session := &fakeSession{}
	runMenu(context.Background(), session, bufio.NewReader(strings.NewReader(input)))

	want := []string{"schedule", "meetings", "contacts", "plan", "password", "export"}
	if len(session.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", session.calls, want)
	}
	for i := range want {
		if session.calls[i] != want[i] {
			t.Fatalf("calls order mismatch: got %v, want %v", session.calls, want)
		}
	}
}

func TestRunMenu_InvalidInputLoopsAndRetries(t *testing.T) {
	silencePrintln(t)

	// Garbage parses as option 0, out-of-range numbers hit no entry; the
	// loop keeps going until exit.
	input := strings.Join([]string{"abc", "0", "42", "2", "7"}, "\n")

	session := &fakeSession{}
	runMenu(context.Background(), session, bufio.NewReader(strings.NewReader(input)))

	if len(session.calls) != 1 || session.calls[0] != "meetings" {
		t.Fatalf("unexpected calls: %v", session.calls)
	}
}

func TestRunMenu_EOFStopsLoop(t *testing.T) {
	silencePrintln(t)

	session := &fakeSession{}
	runMenu(context.Background(), session, bufio.NewReader(strings.NewReader("1")))

	if len(session.calls) != 1 {
		t.Fatalf("unexpected calls: %v", session.calls)
	}
}

func TestRunMenu_SharedReaderFeedsFlowPrompts(t *testing.T) {
	silencePrintln(t)
	app := loggedInApp(t, models.PlanBase)

	// Menu choices and flow answers arrive on one piped stream; input
	// buffered ahead of the menu must still reach the schedule prompts.
	input := "1\n2024-05-01\n10:00\nStandup\n15\nn\n7\n"
	app.reader = bufio.NewReader(strings.NewReader(input))

	runMenu(context.Background(), app, app.reader)

	require.Len(t, app.current.Meetings, 1)
	assert.Equal(t, "Standup", app.current.Meetings[0].Title)
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{" 7 ", 7},
		{"abc", 0},
		{"", 0},
		{"3.5", 0},
		{"-2", -2},
	}
	for _, tt := range tests {
		if got := parseChoice(tt.in); got != tt.want {
			t.Fatalf("parseChoice(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
