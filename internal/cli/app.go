// Package cli implements Meetly's interactive terminal session: the
// login/create-account gate and the numbered menu loop dispatching to the
// application services.
package cli

import (
	"bufio"
	"os"

	"github.com/meetly/meetly/internal/config"
	"github.com/meetly/meetly/internal/logging"
	"github.com/meetly/meetly/internal/models"
	"github.com/meetly/meetly/internal/repositories/accounts"
	"github.com/meetly/meetly/internal/services"
)

// App wires the services together and holds the session state: the store
// and, after a successful login, the current account.
type App struct {
	config   *config.Config
	store    accounts.Store
	auth     services.AuthService
	accounts services.AccountService
	meetings services.MeetingService
	export   services.ExportService
	log      logging.Logger
	reader   *bufio.Reader
	current  *models.Account
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	store := accounts.NewFileStore(cfg.StorePath, log)

	return &App{
		config:   cfg,
		store:    store,
		auth:     services.NewAuthService(store, log),
		accounts: services.NewAccountService(store, log),
		meetings: services.NewMeetingService(store, log),
		export:   services.NewExportService(cfg.ExportDir, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}
}
