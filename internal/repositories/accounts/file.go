// Package accounts implements the flat-file account store.
package accounts

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/meetly/meetly/internal/logging"
	"github.com/meetly/meetly/internal/models"
)

// storeFields is the number of comma-separated fields per record:
// username, password digest, plan tier name.
const storeFields = 3

// FileStore keeps accounts in a flat text file, one record per line, fields
// joined by literal commas with no quoting or escaping. Usernames and
// digests therefore must not contain commas. Every save rewrites the whole
// file.
//
// Persistence is best-effort: read and write failures are logged and the
// in-memory set remains the session's source of truth.
type FileStore struct {
	path     string
	log      logging.Logger
	accounts []*models.Account
}

func NewFileStore(path string, log logging.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Load reads the store file into memory. Lines that do not split into
// exactly three fields are skipped. Unknown plan-tier text fails the whole
// load: a corrupt store is not self-healing and startup must abort.
// A missing or unreadable file yields an empty set.
//
// Duplicate usernames collapse last-write-wins, keeping the position of the
// first occurrence.
func (s *FileStore) Load(ctx context.Context) error {
	stored, err := s.readAll(ctx)
	if err != nil {
		return fmt.Errorf("loading account store %s: %w", s.path, err)
	}
	s.accounts = dedupe(stored)
	s.log.Info(ctx, "account store loaded", "path", s.path, "accounts", len(s.accounts))
	return nil
}

// Flush rewrites the whole file from the in-memory set.
func (s *FileStore) Flush(ctx context.Context) error {
	return s.writeAll(ctx, s.accounts)
}

// Upsert persists a single account through a file-level read-modify-write:
// the file is re-read, any record with the same username is dropped, the
// account is appended and the file rewritten. Repeated upserts of the same
// account are idempotent.
func (s *FileStore) Upsert(ctx context.Context, account *models.Account) error {
	stored, err := s.readAll(ctx)
	if err != nil {
		return fmt.Errorf("upserting %s: %w", account.Username, err)
	}

	var kept []*models.Account
	for _, a := range stored {
		if a.Username != account.Username {
			kept = append(kept, a)
		}
	}
	kept = append(kept, account)
	return s.writeAll(ctx, kept)
}

func (s *FileStore) All() []*models.Account {
	return s.accounts
}

func (s *FileStore) Find(username string) (*models.Account, bool) {
	for _, a := range s.accounts {
		if a.Username == username {
			return a, true
		}
	}
	return nil, false
}

func (s *FileStore) Add(account *models.Account) {
	s.accounts = append(s.accounts, account)
}

// readAll parses the backing file. An unreadable file is logged and treated
// as empty; a record with an unknown plan tier aborts the read.
func (s *FileStore) readAll(ctx context.Context) ([]*models.Account, error) {
	file, err := os.Open(s.path)
	if err != nil {
		s.log.Warn(ctx, "account store not readable, treating as empty", "path", s.path, "error", err)
		return nil, nil
	}
	defer file.Close()

	var out []*models.Account
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), ",")
		if len(parts) != storeFields {
			continue
		}
		plan, err := models.ParsePlan(parts[2])
		if err != nil {
			return nil, err
		}
		out = append(out, &models.Account{
			Username:       parts[0],
			PasswordDigest: parts[1],
			Plan:           plan,
		})
	}
	if err := scanner.Err(); err != nil {
		s.log.Error(ctx, "reading account store", "path", s.path, "error", err)
	}
	return out, nil
}

// writeAll rewrites the backing file from scratch. I/O failures are logged
// and returned; callers treat them as best-effort.
func (s *FileStore) writeAll(ctx context.Context, accounts []*models.Account) error {
	file, err := os.Create(s.path)
	if err != nil {
		s.log.Error(ctx, "rewriting account store", "path", s.path, "error", err)
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, a := range accounts {
		if _, err := fmt.Fprintf(w, "%s,%s,%s\n", a.Username, a.PasswordDigest, a.Plan); err != nil {
			s.log.Error(ctx, "writing account record", "username", a.Username, "error", err)
			return err
		}
	}
	if err := w.Flush(); err != nil {
		s.log.Error(ctx, "flushing account store", "path", s.path, "error", err)
		return err
	}
	return nil
}

// dedupe collapses duplicate usernames last-write-wins: a later record
// replaces an earlier one in place, so the set keeps first-seen order.
func dedupe(accounts []*models.Account) []*models.Account {
	index := make(map[string]int, len(accounts))
	var out []*models.Account
	for _, a := range accounts {
		if i, ok := index[a.Username]; ok {
			out[i] = a
			continue
		}
		index[a.Username] = len(out)
		out = append(out, a)
	}
	return out
}
