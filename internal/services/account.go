package services

import (
	"context"

	"github.com/meetly/meetly/internal/cryptox"
	"github.com/meetly/meetly/internal/logging"
	"github.com/meetly/meetly/internal/models"
	"github.com/meetly/meetly/internal/repositories/accounts"
)

// AccountService mutates account settings. Every mutation is applied to the
// in-memory account first and then persisted; persistence failures are
// logged and the session continues on the in-memory state.
type AccountService interface {
	ChangePlan(ctx context.Context, account *models.Account, plan models.Plan) error
	ChangePassword(ctx context.Context, account *models.Account, password []byte) error
}

type accountService struct {
	store accounts.Store
	log   logging.Logger
}

func NewAccountService(store accounts.Store, log logging.Logger) AccountService {
	return &accountService{store: store, log: log}
}

// ChangePlan switches the account's plan tier and rewrites the whole
// store. A raised quota takes effect immediately for subsequent
// scheduling.
func (s *accountService) ChangePlan(ctx context.Context, account *models.Account, plan models.Plan) error {
	account.Plan = plan
	if err := s.store.Flush(ctx); err != nil {
		s.log.Error(ctx, "persisting plan change", "username", account.Username, "error", err)
	}
	return nil
}

// ChangePassword replaces the account's digest with the hash of the new
// password and persists the account through the single-record upsert path.
func (s *accountService) ChangePassword(ctx context.Context, account *models.Account, password []byte) error {
	account.PasswordDigest = cryptox.HashPassword(password)
	if err := s.store.Upsert(ctx, account); err != nil {
		s.log.Error(ctx, "persisting password change", "username", account.Username, "error", err)
	}
	return nil
}
