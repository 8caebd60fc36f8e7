package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/dmitrijs2005/scripto/internal/client/models"
	"github.com/dmitrijs2005/scripto/internal/client/wire"
	"github.com/dmitrijs2005/scripto/internal/logging"
)

const (
	loginPath    = "/auth/login"
	registerPath = "/users/register"
	notesPath    = "/notes"
	healthPath   = "/health"

	maxResponseBytes = 8 << 20
)

// HTTPClient implements Client over HTTP+JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger

	// maxBody caps how much of a reply is read.
	maxBody int64
}

var _ Client = (*HTTPClient)(nil)

// New returns a client for the backend rooted at baseURL, e.g.
// "http://localhost:8000/api/v1". A zero timeout leaves requests bounded only
// by their context.
func New(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("base url: %w", ErrInvalidRequest)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("base url %q: %w", baseURL, ErrInvalidRequest)
	}
	if log == nil {
		log = logging.Nop()
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		tokens:  tokens,
		log:     log.With("component", "sync_client"),
		maxBody: maxResponseBytes,
	}, nil
}

type response struct {
	status int
	header http.Header
	body   []byte
}

func (r response) ok() bool { return r.status >= 200 && r.status < 300 }

func (c *HTTPClient) send(ctx context.Context, method, path, contentType string, body []byte, token string) (response, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return response{}, fmt.Errorf("build request: %v: %w", err, ErrInvalidRequest)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	op := method + " " + path
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "duration", time.Since(start), "error", err)
		return response{}, c.transportError(op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return response{}, c.transportError(op, err)
	}
	if int64(len(data)) > c.maxBody {
		c.log.Warn(ctx, "reply too large", "method", method, "path", path, "status", resp.StatusCode, "limit", c.maxBody)
		return response{}, fmt.Errorf("%s: reply too large, exceeds %d bytes: %w", op, c.maxBody, ErrMalformedResponse)
	}

	c.log.Debug(ctx, "request", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode == http.StatusTemporaryRedirect {
		c.log.Warn(ctx, "redirect not followed", "method", method, "path", path, "location", resp.Header.Get("Location"))
	}

	return response{status: resp.StatusCode, header: resp.Header, body: data}, nil
}

func (c *HTTPClient) transportError(op string, err error) error {
	return &TransportError{Op: op, Err: err, Refused: errors.Is(err, syscall.ECONNREFUSED)}
}

// CreateOrUpdate posts an unsaved note or puts a saved one.
func (c *HTTPClient) CreateOrUpdate(ctx context.Context, note models.Note) (models.Note, error) {
	token, ok := c.tokens.Get()
	if !ok {
		return models.Note{}, ErrUnauthorized
	}

	body, err := json.Marshal(wire.EncodeNote(note))
	if err != nil {
		return models.Note{}, fmt.Errorf("encode note: %v: %w", err, ErrInvalidRequest)
	}

	method, path := http.MethodPost, notesPath
	if id, saved := note.Remote.ServerID(); saved {
		method, path = http.MethodPut, notesPath+"/"+url.PathEscape(id)
	}

	resp, err := c.send(ctx, method, path, "application/json", body, token)
	if err != nil {
		return models.Note{}, err
	}

	if resp.status == http.StatusUnauthorized {
		if err := c.tokens.Clear(ctx); err != nil {
			c.log.Error(ctx, "failed to clear token", "error", err)
		}
		return models.Note{}, ErrUnauthorized
	}
	if !resp.ok() {
		return models.Note{}, statusError(resp)
	}

	env, err := wire.DecodeEnvelope(resp.body)
	if err != nil {
		return models.Note{}, fmt.Errorf("note reply: %v: %w", err, ErrMalformedResponse)
	}
	if !env.Success {
		return models.Note{}, statusError(resp)
	}

	saved, err := wire.NoteFromValue(env.Data, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("note reply: %v: %w", err, ErrMalformedResponse)
	}
	return saved, nil
}

// Login exchanges credentials for a bearer token. It does not store the
// token anywhere. Only a 200 whose body carries data.access_token succeeds.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (LoginResult, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	resp, err := c.send(ctx, http.MethodPost, loginPath, "application/x-www-form-urlencoded", []byte(form.Encode()), "")
	if err != nil {
		return LoginResult{}, err
	}

	if resp.status != http.StatusOK {
		return LoginResult{}, credentialsError(resp)
	}

	data, err := wire.DecodeLogin(resp.body)
	if err != nil {
		return LoginResult{}, fmt.Errorf("login reply: %v: %w", err, ErrMalformedResponse)
	}
	return LoginResult{AccessToken: data.AccessToken, TokenType: data.TokenType}, nil
}

// Register creates an account. The backend answers 200 or 201; the body of a
// successful reply is ignored. A failure without a readable message is
// ErrMalformedResponse.
func (c *HTTPClient) Register(ctx context.Context, email, fullName, password string) error {
	body, err := json.Marshal(wire.RegisterRequest{Email: email, FullName: fullName, Password: password})
	if err != nil {
		return fmt.Errorf("encode registration: %v: %w", err, ErrInvalidRequest)
	}

	resp, err := c.send(ctx, http.MethodPost, registerPath, "application/json", body, "")
	if err != nil {
		return err
	}

	switch resp.status {
	case http.StatusOK, http.StatusCreated:
		return nil
	}
	return statusError(resp)
}

func (c *HTTPClient) CheckHealth(ctx context.Context) bool {
	resp, err := c.send(ctx, http.MethodGet, healthPath, "", nil, "")
	if err != nil {
		return false
	}
	return resp.ok()
}

// statusError turns a failed reply into a *ServerError when the body carries
// a message.
func statusError(resp response) error {
	if eb, ok := wire.DecodeError(resp.body); ok && eb.Message != "" {
		return &ServerError{StatusCode: resp.status, Message: eb.Message}
	}
	return fmt.Errorf("status %d: %w", resp.status, ErrMalformedResponse)
}

func credentialsError(resp response) error {
	if eb, ok := wire.DecodeError(resp.body); ok && eb.Message != "" {
		return &ServerError{StatusCode: resp.status, Message: eb.Message}
	}
	return ErrInvalidCredentials
}
