package cli

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Status prints the session state, the backend and the working note.
func (a *App) Status(ctx context.Context) error {
	a.printf("Server:  %s\n", a.config.ServerURL)
	a.printf("Session: %s\n", a.session.State())
	if at, ok := a.tokens.SavedAt(); ok && !at.IsZero() {
		a.printf("Token:   stored %s\n", at.Local().Format(time.DateTime))
	}
	if m := a.Mode(); m != ModeUnknown {
		a.printf("Backend: %s\n", m)
	}

	if a.note == nil {
		a.printf("Note:    none\n")
		return nil
	}
	a.printf("Note:    %q, %d elements, %s\n", a.note.Title, len(a.note.Content), a.note.Remote)
	return nil
}

// tokenClaims is what whoami can tell about a token without verifying it.
type tokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// peekClaims decodes the claims of a JWT without checking its signature. The
// backend treats tokens as opaque, so this is informational only and never
// decides whether the session is valid. ok is false for non-JWT tokens.
func peekClaims(token string) (tokenClaims, bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return tokenClaims{}, false
	}

	out := tokenClaims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, true
}

// WhoAmI prints the subject and expiry carried by the session token.
func (a *App) WhoAmI(ctx context.Context) error {
	token, ok := a.tokens.Get()
	if !ok {
		a.printf("Not logged in\n")
		return nil
	}

	claims, ok := peekClaims(token)
	if !ok {
		a.printf("Logged in (opaque token)\n")
		return nil
	}

	subject := claims.Subject
	if subject == "" {
		subject = "unknown"
	}
	a.printf("Logged in as %s\n", subject)
	if !claims.ExpiresAt.IsZero() {
		a.printf("Token expires %s\n", claims.ExpiresAt.Local().Format(time.DateTime))
	}
	return nil
}

// Health probes the backend once and updates the connectivity mode.
func (a *App) Health(ctx context.Context) error {
	a.probe(ctx)
	a.printf("Backend is %s\n", a.Mode())
	return nil
}
