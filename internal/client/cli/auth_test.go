package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/dmitrijs2005/scripto/internal/client/client"
	"github.com/stretchr/testify/require"
)

// stubInputs answers text prompts from answers in order and returns password
// for the password prompt.
func stubInputs(t *testing.T, password []byte, answers ...string) *[]string {
	t.Helper()
	var prompts []string
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		prompts = append(prompts, prompt)
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
	return &prompts
}

func TestLogin_Success(t *testing.T) {
	pw := []byte("secret")
	stubInputs(t, pw, "alice@example.com")
	a, sess, out := newTestApp(t, "")

	require.NoError(t, a.Login(context.Background()))
	require.Equal(t, "alice@example.com", sess.loginUser)
	require.Equal(t, "secret", sess.loginPass)
	require.Contains(t, out.String(), "Login successful")
	require.Equal(t, make([]byte, len(pw)), pw, "password must be wiped")
	require.True(t, a.isLoggedIn())
}

func TestLogin_ServerMessageIsShown(t *testing.T) {
	stubInputs(t, []byte("pw"), "alice@example.com")
	a, sess, out := newTestApp(t, "")
	sess.loginErr = &client.ServerError{StatusCode: 401, Message: "Incorrect email or password"}

	err := a.Login(context.Background())
	require.Error(t, err)
	require.Contains(t, out.String(), "Error: Incorrect email or password")
	require.False(t, a.isLoggedIn())
}

func TestLogin_InputErrorStopsEarly(t *testing.T) {
	stubInputs(t, nil)
	a, sess, _ := newTestApp(t, "")

	require.ErrorIs(t, a.Login(context.Background()), io.EOF)
	require.Empty(t, sess.loginUser)
}

func TestLogin_PasswordError(t *testing.T) {
	stubInputs(t, nil, "alice@example.com")
	getPassword = func(io.Writer) ([]byte, error) { return nil, errors.New("no tty") }
	a, sess, _ := newTestApp(t, "")

	require.Error(t, a.Login(context.Background()))
	require.Empty(t, sess.loginUser)
}

func TestRegister_PromptsAndLogsIn(t *testing.T) {
	prompts := stubInputs(t, []byte("pw"), "bob@example.com", "Bob Stone")
	a, sess, out := newTestApp(t, "")

	require.NoError(t, a.Register(context.Background()))
	require.Equal(t, []string{"Enter email", "Enter full name"}, *prompts)
	require.Equal(t, "bob@example.com", sess.regUser)
	require.Equal(t, "Bob Stone", sess.regName)
	require.Equal(t, "pw", sess.regPass)
	require.Contains(t, out.String(), "Registered and logged in as bob@example.com")
}

func TestRegister_Failure(t *testing.T) {
	stubInputs(t, []byte("pw"), "bob@example.com", "Bob")
	a, sess, out := newTestApp(t, "")
	sess.regErr = &client.ServerError{StatusCode: 400, Message: "Email already registered"}

	require.Error(t, a.Register(context.Background()))
	require.Contains(t, out.String(), "Error: Email already registered")
}

func TestLogout(t *testing.T) {
	a, sess, out := newTestApp(t, "")
	require.NoError(t, a.Logout(context.Background()))
	require.True(t, sess.logoutCalled)
	require.Contains(t, out.String(), "Logged out")
}

func TestDescribe(t *testing.T) {
	require.Equal(t, "Not logged in or session expired. Please log in again.",
		describe(fmt.Errorf("save note: %w", client.ErrUnauthorized)))
	require.Equal(t, "Error: boom", describe(errors.New("boom")))
}
