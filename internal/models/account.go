// Package models defines the Meetly domain: accounts, meetings, plan tiers
// and the scheduling policy. The package performs no I/O.
package models

import "github.com/meetly/meetly/internal/common"

// Account is a registered user. Username, PasswordDigest and Plan survive
// in the account store; Meetings exist for the current session only.
type Account struct {
	Username       string
	PasswordDigest string
	Plan           Plan
	Meetings       []Meeting
}

// Schedule applies the scheduling policy and, if every check passes,
// appends m to the account's meetings. Checks run in order, first match
// wins:
//
//  1. plan quota — the quota counts every meeting held in the session,
//     not just meetings on m's calendar day,
//  2. date/time conflict with an existing meeting.
func (a *Account) Schedule(m Meeting) error {
	if a.Plan == PlanBase && len(a.Meetings) >= PlanBase.MeetingLimit() {
		return common.ErrBasePlanLimit
	}
	if a.Plan == PlanPremium && len(a.Meetings) >= PlanPremium.MeetingLimit() {
		return common.ErrPremiumPlanLimit
	}
	for _, held := range a.Meetings {
		if held.SameSlot(m) {
			return common.ErrSlotTaken
		}
	}
	a.Meetings = append(a.Meetings, m)
	return nil
}

// Contacts returns the distinct usernames appearing across the invitee
// lists of the account's meetings, in first-seen order. The organizer shows
// up once the first meeting is scheduled, since it is seeded as the first
// invitee of every meeting it creates.
func (a *Account) Contacts() []string {
	seen := make(map[string]struct{})
	var contacts []string
	for _, m := range a.Meetings {
		for _, invitee := range m.Invitees {
			if _, ok := seen[invitee]; ok {
				continue
			}
			seen[invitee] = struct{}{}
			contacts = append(contacts, invitee)
		}
	}
	return contacts
}
