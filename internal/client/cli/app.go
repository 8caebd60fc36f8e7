package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/scripto/internal/client/client"
	"github.com/dmitrijs2005/scripto/internal/client/config"
	"github.com/dmitrijs2005/scripto/internal/client/models"
	"github.com/dmitrijs2005/scripto/internal/client/services"
	"github.com/dmitrijs2005/scripto/internal/client/storage"
	"github.com/dmitrijs2005/scripto/internal/client/tokenstore"
	"github.com/dmitrijs2005/scripto/internal/logging"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// tokenView is the read side of the token store shown by status and whoami.
type tokenView interface {
	Get() (string, bool)
	SavedAt() (time.Time, bool)
}

type App struct {
	config  *config.Config
	session services.Session
	tokens  tokenView
	log     logging.Logger
	db      *sql.DB

	reader *bufio.Reader
	out    io.Writer

	// note is the working note; nil until "new".
	note *models.Note

	mu   sync.Mutex
	mode Mode
}

// NewApp opens the local database, restores the persisted session token and
// builds the session on top of an HTTP client for c.ServerURL.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	tokens, err := tokenstore.Open(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient, err := client.New(c.ServerURL, c.RequestTimeout, tokens, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:  c,
		session: services.NewSession(apiClient, tokens, log),
		tokens:  tokens,
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if !changed {
		return
	}
	if mode == ModeOffline {
		a.log.Warn(ctx, "backend unreachable, working offline")
	} else {
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil && a.session.State() == services.Authenticated
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// StartOnlineStatusWatcher probes the backend every interval until ctx is
// done. A non-positive interval disables it.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) probe(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if a.session.CheckHealth(pctx) {
		a.setMode(ctx, ModeOnline)
	} else {
		a.setMode(ctx, ModeOffline)
	}
}
