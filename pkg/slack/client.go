// Package slack is a minimal client for the Slack reminders API. It covers
// the two user-token endpoints the dashboard needs: reminders.list and
// reminders.complete.
package slack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tableflip.dev/moments/pkg/reminder"
)

const (
	// DefaultBaseURL is the Slack Web API root.
	DefaultBaseURL = "https://slack.com/api"

	// DefaultTimeout bounds a single call. Timeouts surface as Unavailable.
	DefaultTimeout = 10 * time.Second
)

// authErrorCodes are the ok:false codes that mean the credential itself was
// rejected, as opposed to the service misbehaving.
var authErrorCodes = map[string]bool{
	"invalid_auth":     true,
	"not_authed":       true,
	"token_revoked":    true,
	"token_expired":    true,
	"account_inactive": true,
	"missing_scope":    true,
}

// Client calls the reminders API. The credential is passed per call so the
// client holds no ambient state and tests can use a throwaway token.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client with the default endpoint and timeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// wire shapes. Slack responds 200 with ok:false for application errors.
type listResponse struct {
	OK        bool           `json:"ok"`
	Error     string         `json:"error"`
	Reminders []wireReminder `json:"reminders"`
}

type wireReminder struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Time       int64  `json:"time"`
	CompleteTS int64  `json:"complete_ts"`
	Recurring  bool   `json:"recurring"`
}

type baseResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// ListReminders performs a single reminders.list call and returns the
// reminders in service order. One outbound call, no retries, no caching.
func (c *Client) ListReminders(ctx context.Context, token string) ([]*reminder.Reminder, error) {
	var resp listResponse
	if err := c.call(ctx, token, "reminders.list", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, apiError(resp.Error)
	}

	out := make([]*reminder.Reminder, 0, len(resp.Reminders))
	for _, w := range resp.Reminders {
		if w.ID == "" {
			return nil, malformed(errors.New("reminder missing id"))
		}
		r := &reminder.Reminder{
			ID:        w.ID,
			Text:      w.Text,
			Complete:  w.CompleteTS > 0,
			Recurring: w.Recurring,
		}
		if w.Time > 0 {
			due := reminder.FromUnix(w.Time)
			r.DueAt = &due
		}
		out = append(out, r)
	}
	return out, nil
}

// CompleteReminder marks one reminder complete. Requires the reminders:write
// scope on the user token.
func (c *Client) CompleteReminder(ctx context.Context, token, id string) error {
	if id == "" {
		return malformed(errors.New("reminder id required"))
	}
	form := url.Values{"reminder": {id}}
	var resp baseResponse
	if err := c.call(ctx, token, "reminders.complete", form, &resp); err != nil {
		return err
	}
	if !resp.OK {
		return apiError(resp.Error)
	}
	return nil
}

func (c *Client) call(ctx context.Context, token, method string, form url.Values, out any) error {
	if strings.TrimSpace(token) == "" {
		return unauthorized("not_authed")
	}

	body := ""
	if form != nil {
		body = form.Encode()
	}
	endpoint := fmt.Sprintf("%s/%s", strings.TrimRight(c.baseURL(), "/"), method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return unavailable("", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return unavailable("", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return unavailable("", err)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return unauthorized(http.StatusText(resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return unavailable(fmt.Sprintf("status %d", resp.StatusCode), nil)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return malformed(err)
	}
	return nil
}

func apiError(code string) error {
	if authErrorCodes[code] {
		return unauthorized(code)
	}
	return unavailable(code, nil)
}

func (c *Client) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.BaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return &http.Client{Timeout: DefaultTimeout}
	}
	return c.HTTPClient
}
