// Package services contains the application services of the ScriptO client.
// This file defines the session: login, registration, logout and the
// authentication state derived from the token store.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/scripto/internal/client/client"
	"github.com/dmitrijs2005/scripto/internal/client/models"
	"github.com/dmitrijs2005/scripto/internal/logging"
)

// State is the authentication state of a session.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// TokenStore is the part of tokenstore.Store the session needs.
type TokenStore interface {
	Get() (string, bool)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Session defines the operations the terminal client drives.
//
// Contract:
//   - Login: exchange credentials for a token and install it.
//   - Register: create an account, then log in with the same credentials.
//   - Logout: forget the token.
//   - SaveNote: create or update a note on the server.
//   - CheckHealth: probe the backend.
//   - State: Authenticated exactly when the token store holds a token, so a
//     401 seen by SaveNote moves the session back to Unauthenticated.
//
// Nothing is retried. All methods honor context cancellation.
type Session interface {
	Login(ctx context.Context, identifier, secret string) (string, error)
	Register(ctx context.Context, identifier, displayName, secret string) (string, error)
	Logout(ctx context.Context) error
	SaveNote(ctx context.Context, note models.Note) (models.Note, error)
	CheckHealth(ctx context.Context) bool
	State() State
}

// session is the Session backed by a remote Client and a token store.
type session struct {
	client client.Client
	tokens TokenStore
	log    logging.Logger
}

// NewSession constructs a Session. The caller owns tokens and passes the same
// store to the client that reads it.
func NewSession(c client.Client, tokens TokenStore, log logging.Logger) Session {
	if log == nil {
		log = logging.Nop()
	}
	return &session{client: c, tokens: tokens, log: log.With("component", "session")}
}

// Login authenticates against the server and stores the issued token. On
// failure the server's message is surfaced as a *client.ServerError when it
// sent one, otherwise client.ErrInvalidCredentials.
func (s *session) Login(ctx context.Context, identifier, secret string) (string, error) {
	if strings.TrimSpace(identifier) == "" || secret == "" {
		return "", fmt.Errorf("login error: empty credentials: %w", client.ErrInvalidRequest)
	}

	res, err := s.client.Login(ctx, identifier, secret)
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}
	if res.TokenType != "" && !strings.EqualFold(res.TokenType, "bearer") {
		s.log.Warn(ctx, "unexpected token type", "token_type", res.TokenType)
	}

	if err := s.tokens.Save(ctx, res.AccessToken); err != nil {
		return "", fmt.Errorf("token saving error: %w", err)
	}
	s.log.Info(ctx, "logged in", "user", identifier)
	return res.AccessToken, nil
}

// Register creates an account and then logs in with the same credentials.
func (s *session) Register(ctx context.Context, identifier, displayName, secret string) (string, error) {
	if strings.TrimSpace(identifier) == "" || secret == "" {
		return "", fmt.Errorf("register error: empty credentials: %w", client.ErrInvalidRequest)
	}

	if err := s.client.Register(ctx, identifier, displayName, secret); err != nil {
		return "", fmt.Errorf("register error: %w", err)
	}
	s.log.Info(ctx, "registered", "user", identifier)

	return s.Login(ctx, identifier, secret)
}

func (s *session) Logout(ctx context.Context) error {
	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("logout error: %w", err)
	}
	return nil
}

func (s *session) CheckHealth(ctx context.Context) bool {
	return s.client.CheckHealth(ctx)
}

func (s *session) State() State {
	if _, ok := s.tokens.Get(); ok {
		return Authenticated
	}
	return Unauthenticated
}
