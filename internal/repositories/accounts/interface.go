package accounts

import (
	"context"

	"github.com/meetly/meetly/internal/models"
)

// Store is the persistence boundary for accounts. An implementation owns
// the in-memory account set for the session; meetings are never persisted.
type Store interface {
	// Load reads the backing file into memory. Unknown plan-tier text
	// fails the whole load; the caller must abort startup.
	Load(ctx context.Context) error

	// Flush rewrites the backing file from the in-memory set.
	Flush(ctx context.Context) error

	// Upsert persists a single account, replacing any stored record with
	// the same username.
	Upsert(ctx context.Context, account *models.Account) error

	// All returns the in-memory account set.
	All() []*models.Account

	// Find returns the in-memory account with the given username.
	Find(username string) (*models.Account, bool)

	// Add appends an account to the in-memory set without persisting it.
	Add(account *models.Account)
}
