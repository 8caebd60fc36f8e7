package cli

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/scripto/internal/client/models"
	"github.com/dmitrijs2005/scripto/internal/client/services"
	"github.com/dmitrijs2005/scripto/internal/client/tokenstore"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}

func TestPeekClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signedToken(t, jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	c, ok := peekClaims(tok)
	require.True(t, ok)
	require.Equal(t, "alice@example.com", c.Subject)
	require.True(t, exp.Equal(c.ExpiresAt))

	_, ok = peekClaims("opaque-session-token")
	require.False(t, ok)
}

func TestPeekClaims_ExpiredTokenStillReadable(t *testing.T) {
	tok := signedToken(t, jwt.RegisteredClaims{
		Subject:   "bob",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	c, ok := peekClaims(tok)
	require.True(t, ok)
	require.Equal(t, "bob", c.Subject)
}

func TestWhoAmI(t *testing.T) {
	ctx := context.Background()

	a, _, out := newTestApp(t, "")
	require.NoError(t, a.WhoAmI(ctx))
	require.Equal(t, "Not logged in\n", out.String())

	a, _, out = newTestApp(t, "")
	store := tokenstore.NewInMemory()
	a.tokens = store
	require.NoError(t, store.Save(ctx, "opaque"))
	require.NoError(t, a.WhoAmI(ctx))
	require.Equal(t, "Logged in (opaque token)\n", out.String())

	a, _, out = newTestApp(t, "")
	store = tokenstore.NewInMemory()
	a.tokens = store
	require.NoError(t, store.Save(ctx, signedToken(t, jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})))
	require.NoError(t, a.WhoAmI(ctx))
	require.Contains(t, out.String(), "Logged in as alice@example.com\n")
	require.Contains(t, out.String(), "Token expires ")
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	a, sess, out := newTestApp(t, "")

	require.NoError(t, a.Status(ctx))
	require.Contains(t, out.String(), "Server:  http://localhost:8000/api/v1\n")
	require.Contains(t, out.String(), "Session: unauthenticated\n")
	require.Contains(t, out.String(), "Note:    none\n")
	require.NotContains(t, out.String(), "Backend:")

	out.Reset()
	sess.state = services.Authenticated
	a.mode = ModeOffline
	n := models.NewNote("Physics").WithRemote(models.Saved("42"))
	a.note = &n

	require.NoError(t, a.Status(ctx))
	require.Contains(t, out.String(), "Session: authenticated\n")
	require.Contains(t, out.String(), "Backend: offline\n")
	require.Contains(t, out.String(), `Note:    "Physics", 0 elements, saved(42)`)
}

func TestHealth(t *testing.T) {
	a, sess, out := newTestApp(t, "")
	sess.healthy = true
	require.NoError(t, a.Health(context.Background()))
	require.Contains(t, out.String(), "Backend is online")

	sess.healthy = false
	require.NoError(t, a.Health(context.Background()))
	require.Contains(t, out.String(), "Backend is offline")
}
