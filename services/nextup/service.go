package nextup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bearhudson/movary-frontend/config"
	"github.com/bearhudson/movary-frontend/models"
	movarysvc "github.com/bearhudson/movary-frontend/services/movary"
)

type movaryClient interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	NewestWatchlistMovie(ctx context.Context, token, userID string) (*models.WatchlistEntry, error)
}

var _ movaryClient = (*movarysvc.Client)(nil)

// Kind tags the result of one authenticate-then-fetch pass.
type Kind int

const (
	// Found means the newest watchlist entry was fetched and carries a movie.
	Found Kind = iota
	// NoToken means authentication did not yield a token; the fetch was skipped.
	NoToken
	// NoEntry means the fetch failed, the list was empty, or the entry had no movie.
	NoEntry
	// Failed means something unexpected broke partway through the pipeline.
	Failed
)

// Outcome is the single tagged result of a lookup, consumed once by the
// page renderer. Entry is set only when Kind is Found; Err only on Failed.
type Outcome struct {
	Kind  Kind
	Entry *models.WatchlistEntry
	Err   error
}

// Service runs the authenticate-then-fetch pipeline against the tracker.
// It holds no per-request state; concurrent lookups are independent.
type Service struct {
	cfg    *config.Settings
	client movaryClient
	logger *slog.Logger
}

// NewService returns a new next-up service. A nil logger falls back to the
// process default.
func NewService(cfg *config.Settings, client movaryClient, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cfg: cfg, client: client, logger: logger}
}

// Lookup authenticates and fetches the newest watchlist entry. Every upstream
// failure is recovered here: bad credentials or transport errors degrade to
// NoToken/NoEntry, and a panic anywhere in the pass degrades to Failed. The
// fetch is attempted only when a token was obtained.
func (s *Service) Lookup(ctx context.Context) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("next-up lookup panicked", "panic", r)
			out = Outcome{Kind: Failed, Err: fmt.Errorf("lookup panic: %v", r)}
		}
	}()

	token, err := s.client.Authenticate(ctx, s.cfg.Email, s.cfg.Password)
	if err != nil {
		s.logger.Warn("movary authentication failed", "error", err)
		return Outcome{Kind: NoToken}
	}

	entry, err := s.client.NewestWatchlistMovie(ctx, token, s.cfg.UserID)
	if err != nil {
		s.logger.Warn("watchlist fetch failed", "error", err)
		return Outcome{Kind: NoEntry}
	}
	if entry == nil || entry.Movie == nil {
		return Outcome{Kind: NoEntry}
	}

	return Outcome{Kind: Found, Entry: entry}
}
