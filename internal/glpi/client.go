// Package glpi is a minimal client for the GLPI legacy REST API
// (apirest.php): session handling and the Computer listing.
package glpi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"glpi-inventory/internal/domain"
	"glpi-inventory/internal/logging"
)

// API endpoints, relative to the base URL
const (
	OpInitSession = "initSession"
	OpComputer    = "Computer"
	OpKillSession = "killSession"
)

const (
	userAgent = "glpi-inventory"

	// maxErrorBody bounds how much of a failed response is kept
	maxErrorBody = 4096
)

// Client talks to one GLPI server
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	log        logrus.FieldLogger
}

// Option configures a Client
type Option func(*Client)

// WithTimeout bounds each request. Zero keeps the HTTP client default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient builds a GLPI client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    sanitizeBaseURL(baseURL),
		httpClient: &http.Client{},
		log:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		c.httpClient.Timeout = c.timeout
	}
	return c
}

// BaseURL returns the normalized API base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Session is an open GLPI API session
type Session struct {
	Token string

	client *Client
	creds  domain.Credentials
}

// InitSession opens a session with the app and user tokens
func (c *Client) InitSession(ctx context.Context, creds domain.Credentials) (*Session, error) {
	var payload struct {
		SessionToken string `json:"session_token"`
	}
	if err := c.get(ctx, OpInitSession, creds, "", &payload); err != nil {
		return nil, err
	}
	if payload.SessionToken == "" {
		return nil, &RemoteError{Op: OpInitSession, Message: "response has no session_token"}
	}

	c.log.WithField("op", OpInitSession).Debug("session opened")
	return &Session{Token: payload.SessionToken, client: c, creds: creds}, nil
}

// computerRecord keeps id and name optional so missing fields can be told
// apart from zero values
type computerRecord struct {
	ID   *int    `json:"id"`
	Name *string `json:"name"`
}

// ListComputers returns the Computer collection in response order
func (s *Session) ListComputers(ctx context.Context) ([]domain.Asset, error) {
	var records []computerRecord
	if err := s.client.get(ctx, OpComputer, s.creds, s.Token, &records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, &RemoteError{Op: OpComputer, Message: "response is not an array"}
	}

	assets := make([]domain.Asset, 0, len(records))
	for i, r := range records {
		var asset domain.Asset
		if r.Name != nil {
			asset.Name = *r.Name
		}
		if r.ID != nil {
			asset.ID = *r.ID
		} else if asset.HasName() {
			return nil, &RemoteError{
				Op:      OpComputer,
				Message: "record " + asset.Name + " has no id",
				Err:     errors.Errorf("missing id at index %d", i),
			}
		}
		assets = append(assets, asset)
	}

	s.client.log.WithFields(logrus.Fields{
		"op":      OpComputer,
		"records": len(assets),
	}).Debug("computers listed")
	return assets, nil
}

// Kill closes the session. The response body is ignored.
func (s *Session) Kill(ctx context.Context) error {
	if err := s.client.get(ctx, OpKillSession, s.creds, s.Token, nil); err != nil {
		return err
	}
	s.client.log.WithField("op", OpKillSession).Debug("session closed")
	return nil
}

// get issues an authenticated GET and decodes a 2xx body into out
func (c *Client) get(ctx context.Context, op string, creds domain.Credentials, sessionToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+op, nil)
	if err != nil {
		return &RemoteError{Op: op, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("App-Token", creds.AppToken)
	req.Header.Set("Authorization", "user_token "+creds.UserToken)
	if sessionToken != "" {
		req.Header.Set("Session-Token", sessionToken)
	}

	c.log.WithFields(logrus.Fields{"op": op, "url": req.URL.Redacted()}).Debug("request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newStatusError(op, resp, body)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(out); err != nil {
		return &RemoteError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        errors.Wrap(err, "decode response"),
		}
	}
	var trailing json.RawMessage
	if err := decoder.Decode(&trailing); err != io.EOF {
		return &RemoteError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    "trailing data after JSON body",
			Err:        err,
		}
	}
	return nil
}

func sanitizeBaseURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	return strings.TrimRight(trimmed, "/")
}
