package models

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status classifies a meeting slot. Only StatusAvailable is ever assigned
// by the current flows; StatusOccupied exists for completeness.
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusOccupied  Status = "OCCUPIED"
)

// Meeting is a scheduled event held by exactly one organizer account.
// Meetings live in memory for the duration of the session only; restarting
// the program discards them.
type Meeting struct {
	ID              uuid.UUID
	Start           time.Time
	Title           string
	PIN             string
	DurationMinutes int
	Notes           string
	Invitees        []string
	Status          Status
}

// NewMeeting builds a meeting starting at start, seeding the organizer's
// username as the first invitee. The access PIN is decorative: random, but
// not checked for collisions against other meetings.
func NewMeeting(start time.Time, title string, durationMinutes int, organizer string) Meeting {
	return Meeting{
		ID:              uuid.New(),
		Start:           start,
		Title:           title,
		PIN:             newPIN(),
		DurationMinutes: durationMinutes,
		Invitees:        []string{organizer},
		Status:          StatusAvailable,
	}
}

func newPIN() string {
	return fmt.Sprintf("PIN-%d", rand.IntN(10001))
}

// SameSlot reports whether both meetings occupy the same date and time.
func (m Meeting) SameSlot(o Meeting) bool {
	return m.Start.Equal(o.Start)
}

// End returns the moment the meeting finishes.
func (m Meeting) End() time.Time {
	return m.Start.Add(time.Duration(m.DurationMinutes) * time.Minute)
}

// String renders the full field dump shown by the meeting listing.
func (m Meeting) String() string {
	notes := m.Notes
	if notes == "" {
		notes = "-"
	}
	return fmt.Sprintf("%s %s  %q  pin=%s  duration=%dm  status=%s  invitees=[%s]  notes=%s",
		m.Start.Format("2006-01-02"), m.Start.Format("15:04"), m.Title, m.PIN,
		m.DurationMinutes, m.Status, strings.Join(m.Invitees, ", "), notes)
}
