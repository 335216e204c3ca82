// Package apiclient is a Go client for the fotostudio API. It wraps the
// HTTP calls, carries the bearer token, and tracks the authenticated user
// through the Session type.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/itlaf/fotostudio/internal/models"
)

// ErrUnauthenticated is returned when no token is stored or the server
// rejected the one we sent. The stored token is cleared before it is returned.
var ErrUnauthenticated = errors.New("apiclient: not authenticated")

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
}

func New(baseURL string, tokens TokenStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
}

// do sends a JSON request. When authed is true the stored token is attached;
// a 401 response clears the stored token and yields ErrUnauthenticated.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, err := c.tokens.Load()
		if err != nil {
			return fmt.Errorf("load token: %w", err)
		}
		if token == "" {
			return ErrUnauthenticated
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.tokens.Clear(); err != nil {
			return fmt.Errorf("clear token: %w", err)
		}
		return ErrUnauthenticated
	}
	if resp.StatusCode >= 400 {
		var envelope struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenEnvelope struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a token and stores it.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var env tokenEnvelope
	err := c.do(ctx, http.MethodPost, "/api/auth/login", credentials{Email: email, Password: password}, &env, false)
	if err != nil {
		return err
	}
	return c.tokens.Save(env.Token)
}

// Register creates an account and stores the returned token.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	var env tokenEnvelope
	err := c.do(ctx, http.MethodPost, "/api/auth/register", registration{Name: name, Email: email, Password: password}, &env, false)
	if err != nil {
		return err
	}
	return c.tokens.Save(env.Token)
}

// Logout discards the stored token. There is no server-side session to end.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// Me fetches the authenticated user.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &u, true); err != nil {
		return nil, err
	}
	return &u, nil
}
