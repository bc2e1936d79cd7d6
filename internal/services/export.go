package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/emersion/go-ical"

	"github.com/meetly/meetly/internal/common"
	"github.com/meetly/meetly/internal/logging"
	"github.com/meetly/meetly/internal/models"
)

// ExportService renders an account's session meetings as an iCalendar file.
type ExportService interface {
	Export(ctx context.Context, account *models.Account) (string, error)
}

type exportService struct {
	dir string
	log logging.Logger
}

func NewExportService(dir string, log logging.Logger) ExportService {
	return &exportService{dir: dir, log: log}
}

// Export writes <username>.ics into the export directory, one VEVENT per
// meeting, and returns the path of the written file. An account with no
// meetings yields common.ErrNothingToExport instead of an empty calendar.
func (s *exportService) Export(ctx context.Context, account *models.Account) (string, error) {
	if len(account.Meetings) == 0 {
		return "", common.ErrNothingToExport
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//meetly//EN")

	stamp := time.Now().UTC()
	for _, m := range account.Meetings {
		cal.Children = append(cal.Children, toVEvent(m, stamp))
	}

	path := filepath.Join(s.dir, account.Username+".ics")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating calendar file: %w", err)
	}
	defer file.Close()

	if err := ical.NewEncoder(file).Encode(cal); err != nil {
		return "", fmt.Errorf("encoding calendar: %w", err)
	}

	s.log.Info(ctx, "calendar exported",
		"username", account.Username, "path", path, "meetings", len(account.Meetings))
	return path, nil
}

// toVEvent converts a meeting to a VEVENT component. The meeting PIN rides
// along in the description so an exported invitation keeps the access code.
func toVEvent(m models.Meeting, stamp time.Time) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, m.ID.String())
	ve.Props.SetText(ical.PropSummary, m.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	ve.Props.SetDateTime(ical.PropDateTimeStart, m.Start)
	ve.Props.SetDateTime(ical.PropDateTimeEnd, m.End())

	description := "Access code: " + m.PIN
	if m.Notes != "" {
		description = m.Notes + "\n" + description
	}
	ve.Props.SetText(ical.PropDescription, description)

	for _, invitee := range m.Invitees {
		p := ical.NewProp(ical.PropAttendee)
		p.SetText(invitee)
		ve.Props.Add(p)
	}
	return ve
}
