package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const loginPath = "/auth/login"

// HTTPClient is implemented by http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client parla con il backend VICO. Attacca il bearer token dalla
// sessione quando presente; un 401 su una route /auth/ azzera la
// sessione persistita (tranne durante il login stesso).
type Client struct {
	httpClient HTTPClient
	baseURL    string
	sessions   *SessionStore

	// DemoFixtures abilita i fixture dimostrativi (token demo della
	// prenotazione) senza toccare la rete.
	DemoFixtures bool
	fixtureDelay time.Duration
}

// Option configura il Client.
type Option func(*Client)

func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithDemoFixtures(enabled bool) Option {
	return func(c *Client) { c.DemoFixtures = enabled }
}

func WithFixtureDelay(d time.Duration) Option {
	return func(c *Client) { c.fixtureDelay = d }
}

func New(baseURL string, sessions *SessionStore, opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		baseURL:      strings.TrimRight(baseURL, "/"),
		sessions:     sessions,
		fixtureDelay: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Sessions() *SessionStore {
	return c.sessions
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do esegue una richiesta JSON e decodifica il corpo grezzo in out.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachBearer(req)

	return c.send(req, path, out)
}

// doEnvelope decodifica risposte nel formato {status,message,data}.
func (c *Client) doEnvelope(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var env envelope
	if err := c.do(ctx, method, path, body, &env); err != nil {
		return err
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// doForm invia un corpo x-www-form-urlencoded (OAuth2 password flow).
func (c *Client) doForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.attachBearer(req)

	return c.send(req, path, out)
}

func (c *Client) attachBearer(req *http.Request) {
	if c.sessions == nil {
		return
	}
	sess, err := c.sessions.Load()
	if err != nil || sess.Token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+sess.Token)
}

func (c *Client) send(req *http.Request, path string, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(payload) == 0 {
			return nil
		}
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	return c.apiError(resp.StatusCode, path, payload)
}

func (c *Client) apiError(status int, path string, payload []byte) error {
	message := extractMessage(payload)

	// Il redirect-al-login del front-end: un 401 da una route auth
	// invalida la sessione locale. Il login stesso fa eccezione,
	// altrimenti delle credenziali errate azzererebbero una sessione
	// valida.
	if status == http.StatusUnauthorized && strings.Contains(path, "/auth/") && path != loginPath {
		if c.sessions != nil {
			_ = c.sessions.Clear()
		}
		return &APIError{Status: status, Message: message, Err: ErrSessionExpired}
	}

	var sentinel error
	switch status {
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusBadRequest:
		sentinel = ErrValidation
	case http.StatusConflict:
		sentinel = ErrConflict
	}

	return &APIError{Status: status, Message: message, Err: sentinel}
}

func extractMessage(payload []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &env); err == nil && env.Message != "" {
		return env.Message
	}
	body := strings.TrimSpace(string(payload))
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return body
}
