package services

import (
	"context"

	"github.com/meetly/meetly/internal/logging"
	"github.com/meetly/meetly/internal/models"
	"github.com/meetly/meetly/internal/repositories/accounts"
)

// MeetingService applies the scheduling policy and persists the organizer's
// record when a meeting is accepted.
type MeetingService interface {
	Schedule(ctx context.Context, account *models.Account, meeting models.Meeting) error
}

type meetingService struct {
	store accounts.Store
	log   logging.Logger
}

func NewMeetingService(store accounts.Store, log logging.Logger) MeetingService {
	return &meetingService{store: store, log: log}
}

// Schedule delegates to the domain policy. On acceptance the organizer's
// identity/plan record is upserted; the meeting itself is never persisted
// and vanishes when the process exits. Persistence failures do not undo
// the in-memory acceptance.
func (s *meetingService) Schedule(ctx context.Context, account *models.Account, meeting models.Meeting) error {
	if err := account.Schedule(meeting); err != nil {
		return err
	}
	if err := s.store.Upsert(ctx, account); err != nil {
		s.log.Error(ctx, "persisting organizer record", "username", account.Username, "error", err)
	}
	return nil
}
