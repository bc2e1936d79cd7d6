// Package services contains Meetly's application services. They connect the
// pure domain model to the account store and keep console I/O out of the
// business rules.
package services

import (
	"context"
	"crypto/subtle"

	"github.com/meetly/meetly/internal/common"
	"github.com/meetly/meetly/internal/cryptox"
	"github.com/meetly/meetly/internal/logging"
	"github.com/meetly/meetly/internal/models"
	"github.com/meetly/meetly/internal/repositories/accounts"
)

// AuthService authenticates against the account store and registers new
// accounts.
//
// Contract:
//   - Login: exactly one stored account must carry the username with a
//     digest matching the entered password.
//   - Register: the new account is appended and persisted immediately, but
//     not logged in.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*models.Account, error)
	Register(ctx context.Context, username string, password []byte, plan models.Plan) (*models.Account, error)
}

type authService struct {
	store accounts.Store
	log   logging.Logger
}

func NewAuthService(store accounts.Store, log logging.Logger) AuthService {
	return &authService{store: store, log: log}
}

// Login compares the digest of the entered password against the stored
// digests in constant time. Plaintext passwords are never stored or
// compared. Any failure mode collapses into common.ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, username string, password []byte) (*models.Account, error) {
	digest := []byte(cryptox.HashPassword(password))

	var match *models.Account
	for _, a := range s.store.All() {
		if a.Username != username {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(a.PasswordDigest), digest) == 1 {
			if match != nil {
				return nil, common.ErrInvalidCredentials
			}
			match = a
		}
	}
	if match == nil {
		return nil, common.ErrInvalidCredentials
	}
	return match, nil
}

// Register hashes the password, appends the account to the store and
// rewrites the whole file immediately. Persistence failures are logged and
// swallowed; the account still exists in memory for this session.
func (s *authService) Register(ctx context.Context, username string, password []byte, plan models.Plan) (*models.Account, error) {
	account := &models.Account{
		Username:       username,
		PasswordDigest: cryptox.HashPassword(password),
		Plan:           plan,
	}
	s.store.Add(account)
	if err := s.store.Flush(ctx); err != nil {
		s.log.Error(ctx, "persisting new account", "username", username, "error", err)
	}
	return account, nil
}
