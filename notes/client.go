// Package notes is a client for the remote notes API. It keeps the login
// session in the local store so that it survives restarts.
package notes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/notehub/notehub/internal/config"
	"github.com/notehub/notehub/internal/models"
	"github.com/notehub/notehub/store"
)

// Keys used in the auth namespace of the store.
const (
	keyToken = "token"
	keyUser  = "user"
)

const (
	pathRegister = "/users/register"
	pathLogin    = "/users/login"
	pathNotes    = "/notes"
)

// Client talks to the notes API on behalf of the logged in user. It is safe
// for concurrent use.
type Client struct {
	kv      store.KV
	http    *http.Client
	now     func() time.Time
	user    *models.User
	baseURL string
	token   string
	mu      sync.Mutex
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithClock replaces the clock used for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New returns a client for the configured API. A session saved by an earlier
// run is restored.
func New(kv store.KV, cfg config.NotesConfig, opts ...Option) *Client {
	c := &Client{
		kv:      kv,
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.restore()

	return c
}

func (c *Client) restore() {
	token, found, err := c.kv.Get(keyToken)
	if err != nil {
		slog.Warn("reading saved session failed", slog.Any("error", err))
		return
	}

	if !found || token == "" {
		return
	}

	c.token = token

	raw, found, err := c.kv.Get(keyUser)
	if err != nil || !found {
		return
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		slog.Warn("ignoring malformed saved user", slog.Any("error", err))
		return
	}

	c.user = &u
}

// LoggedIn reports whether a session token is held.
func (c *Client) LoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.token != ""
}

// User returns the account of the current session.
func (c *Client) User() (models.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == "" || c.user == nil {
		return models.User{}, false
	}

	return *c.user, true
}

// Register creates an account and logs in with it.
func (c *Client) Register(
	ctx context.Context,
	name, email, password string,
) (models.User, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}

	return c.authenticate(ctx, pathRegister, body, "registration failed")
}

// Login starts a session for the given credentials.
func (c *Client) Login(ctx context.Context, email, password string) (models.User, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	return c.authenticate(ctx, pathLogin, body, "login failed")
}

type authResponse struct {
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
	Message string       `json:"message"`
}

// authenticate posts credentials. Any response carrying a token logs in,
// whatever its status. The user is taken from the "user" field, or from the
// response itself when that is absent.
func (c *Client) authenticate(
	ctx context.Context,
	path string,
	body any,
	fallback string,
) (models.User, error) {
	data, _, err := c.send(ctx, http.MethodPost, path, "", body)
	if err != nil {
		return models.User{}, errRequestFailed.Fmt(fallback + " (network error)").Wrap(err)
	}

	var resp authResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return models.User{}, ErrAuthFailed.Fmt(fallback)
	}

	if resp.Token == "" {
		msg := resp.Message
		if msg == "" {
			msg = fallback
		}

		return models.User{}, ErrAuthFailed.Fmt(msg)
	}

	user := resp.User
	if user == nil {
		user = &models.User{}
		_ = json.Unmarshal(data, user)
	}

	if err := c.saveSession(resp.Token, *user); err != nil {
		return models.User{}, err
	}

	slog.Info("logged in", slog.String("email", user.Email))

	return *user, nil
}

func (c *Client) saveSession(token string, user models.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return errPersistSession.Wrap(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.user = &user

	if err := c.kv.Set(keyToken, token); err != nil {
		return errPersistSession.Wrap(err)
	}

	if err := c.kv.Set(keyUser, string(b)); err != nil {
		return errPersistSession.Wrap(err)
	}

	return nil
}

// Logout forgets the session, locally and in the store.
func (c *Client) Logout() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.user = nil

	var errs []error

	for _, k := range []string{keyToken, keyUser} {
		if err := c.kv.Delete(k); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// sessionToken returns the token to authorize a request with. A token whose
// exp claim is in the past ends the session. Tokens that are not JWTs are
// left for the server to judge.
func (c *Client) sessionToken() (string, error) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	if token == "" {
		return "", ErrNotLoggedIn
	}

	var claims jwt.RegisteredClaims

	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err == nil && claims.ExpiresAt != nil && !claims.ExpiresAt.After(c.now()) {
		slog.Info("session token expired", slog.Time("expired_at", claims.ExpiresAt.Time))
		c.expire()

		return "", ErrSessionExpired
	}

	return token, nil
}

func (c *Client) expire() {
	if err := c.Logout(); err != nil {
		slog.Warn("clearing expired session failed", slog.Any("error", err))
	}
}

// do performs an authorized request and decodes a JSON response into out
// when out is not nil. fallback is the error text used when a failed
// response has no body.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	body, out any,
	fallback string,
) error {
	token, err := c.sessionToken()
	if err != nil {
		return err
	}

	data, status, err := c.send(ctx, method, path, token, body)
	if err != nil {
		return errRequestFailed.Fmt(fallback).Wrap(err)
	}

	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		slog.Info("token rejected, logging out", slog.Int("status", status))
		c.expire()

		return ErrSessionExpired
	case status < 200 || status > 299:
		msg := strings.TrimSpace(string(data))
		if msg == "" {
			msg = fallback
		}

		return errRequestFailed.Fmt(msg)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errUnexpectedResponse.Wrap(err)
	}

	return nil
}

// send issues one request and returns the response body and status.
func (c *Client) send(
	ctx context.Context,
	method, path, token string,
	body any,
) ([]byte, int, error) {
	var reader io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, 0, errEncodeRequest.Wrap(err)
		}

		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}

	requestID := uuid.NewString()

	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Warn(
			"notes request failed",
			slog.String("request_id", requestID),
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return nil, 0, err
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	slog.Debug(
		"notes request",
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(start)),
	)

	return data, resp.StatusCode, nil
}
