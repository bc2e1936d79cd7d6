package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/meetly/meetly/internal/common"
	"github.com/meetly/meetly/internal/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ScheduleMeeting prompts for the meeting fields, applies the scheduling
// policy and reports the outcome.
//
// Malformed date, time or duration input abandons the operation with a
// generic message and returns control to the menu; the input is not
// retried. Policy rejections print the specific reason and likewise leave
// the account untouched.
func (a *App) ScheduleMeeting(ctx context.Context) error {
	dateText, err := getSimpleText(a.reader, "Enter the meeting date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	date, err := time.Parse(dateLayout, dateText)
	if err != nil {
		printlnFn("Could not schedule the meeting. Make sure the data is valid.")
		return nil
	}

	timeText, err := getSimpleText(a.reader, "Enter the meeting time (HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	timeOfDay, err := time.Parse(timeLayout, timeText)
	if err != nil {
		printlnFn("Could not schedule the meeting. Make sure the data is valid.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter the meeting title", os.Stdout)
	if err != nil {
		return err
	}

	durationText, err := getSimpleText(a.reader, "Enter the duration (in minutes)", os.Stdout)
	if err != nil {
		return err
	}
	duration, err := strconv.Atoi(durationText)
	if err != nil {
		printlnFn("Could not schedule the meeting. Make sure the data is valid.")
		return nil
	}

	start := time.Date(date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0, time.Local)
	meeting := models.NewMeeting(start, title, duration, a.current.Username)

	answer, err := getSimpleText(a.reader, "Add notes to the meeting? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "y") {
		notes, err := GetMultiline(a.reader, "Enter the notes", os.Stdout)
		if err != nil {
			return err
		}
		meeting.Notes = notes
	}

	if err := a.meetings.Schedule(ctx, a.current, meeting); err != nil {
		printlnFn(rejectionMessage(err))
		return nil
	}

	printlnFn(fmt.Sprintf("Meeting scheduled successfully. Access code: %s", meeting.PIN))
	return nil
}

// rejectionMessage maps a scheduling policy rejection to the message shown
// to the user.
func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrBasePlanLimit):
		return "Base plan accounts can only book 2 meetings per day."
	case errors.Is(err, common.ErrPremiumPlanLimit):
		return "Premium plan accounts are limited to 5 meetings per day."
	case errors.Is(err, common.ErrSlotTaken):
		return "It is not possible to schedule more than one meeting at the same date and time."
	default:
		return "Could not schedule the meeting."
	}
}
