// Package syncclient is the TUI-side counterpart of syncserver: a small
// HTTP client that trades credentials for a token and moves snapshots both
// ways.
package syncclient

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

	"routined/internal/model"
)

var (
	// ErrNoRemoteSnapshot means the account has never pushed; first runs
	// start from the local copy.
	ErrNoRemoteSnapshot = errors.New("syncclient: no remote snapshot")
	// ErrUnauthorized covers a missing, expired, or rejected token.
	ErrUnauthorized = errors.New("syncclient: unauthorized")
	// ErrConflict is returned when the server holds a newer copy; the
	// newer snapshot rides along on Conflict.Server.
	ErrConflict = errors.New("syncclient: server copy is newer")
)

// Conflict wraps ErrConflict with the winning server snapshot.
type Conflict struct {
	Server model.Snapshot
}

func (c *Conflict) Error() string { return ErrConflict.Error() }
func (c *Conflict) Unwrap() error { return ErrConflict }

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Client talks to one sync server. The token set by Signup or Login is kept
// for subsequent snapshot calls.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Authenticated() bool {
	return c.token != ""
}

// SetToken restores a token saved from a previous run.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Token() string {
	return c.token
}

func (c *Client) Signup(ctx context.Context, email, password string) error {
	return c.auth(ctx, "/api/signup", email, password)
}

func (c *Client) Login(ctx context.Context, email, password string) error {
	return c.auth(ctx, "/api/login", email, password)
}

func (c *Client) auth(ctx context.Context, path, email, password string) error {
	resp, err := c.do(ctx, http.MethodPost, path, credentials{Email: email, Password: password})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return remoteError(resp)
	}

	var out authResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("syncclient: decode auth response: %w", err)
	}
	if out.Token == "" {
		return errors.New("syncclient: server returned empty token")
	}
	c.token = out.Token
	return nil
}

// Pull fetches the remote snapshot for the logged-in account.
func (c *Client) Pull(ctx context.Context) (model.Snapshot, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/snapshot", nil)
	if err != nil {
		return model.Snapshot{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return model.Snapshot{}, ErrNoRemoteSnapshot
	case http.StatusUnauthorized:
		return model.Snapshot{}, ErrUnauthorized
	default:
		return model.Snapshot{}, remoteError(resp)
	}

	var snap model.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("syncclient: decode snapshot: %w", err)
	}
	return snap, nil
}

// Push uploads the local snapshot. When the server holds a newer copy the
// returned error wraps ErrConflict and carries that copy.
func (c *Client) Push(ctx context.Context, snap model.Snapshot) error {
	resp, err := c.do(ctx, http.MethodPut, "/api/snapshot", snap)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusConflict:
		var server model.Snapshot
		if err := json.NewDecoder(resp.Body).Decode(&server); err != nil {
			return fmt.Errorf("syncclient: decode conflict body: %w", err)
		}
		return &Conflict{Server: server}
	default:
		return remoteError(resp)
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("syncclient: marshal body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("syncclient: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("syncclient: %s %s: %w", method, path, err)
	}
	return resp, nil
}

func remoteError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("syncclient: server said %d: %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("syncclient: unexpected status %d", resp.StatusCode)
}
