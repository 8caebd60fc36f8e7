package client

import (
	"context"

	"github.com/dmitrijs2005/scripto/internal/client/models"
)

// Client is the backend API used by the session layer.
type Client interface {
	// CreateOrUpdate stores note on the server and returns the server's view
	// of it. The returned note keeps the local id of the argument.
	CreateOrUpdate(ctx context.Context, note models.Note) (models.Note, error)
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Register(ctx context.Context, email, fullName, password string) error
	// CheckHealth reports whether the backend answers its liveness probe.
	CheckHealth(ctx context.Context) bool
}

// TokenSource supplies the bearer token and forgets it on a 401.
type TokenSource interface {
	Get() (string, bool)
	Clear(ctx context.Context) error
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	AccessToken string
	TokenType   string
}
