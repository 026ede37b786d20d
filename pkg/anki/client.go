package anki

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"time"
)

const (
	// DefaultBaseURL is where AnkiConnect listens by default.
	DefaultBaseURL = "http://localhost:8765"

	// DefaultVersion is the AnkiConnect protocol version spoken unless the
	// caller configures another one. The version is a configuration input;
	// the client never tries to derive it from the service's version string.
	DefaultVersion = 6
)

// Client is the main entry point for the AnkiConnect client.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	version int

	// Services
	Notes  *NotesService
	Decks  *DecksService
	Models *ModelsService
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// NewClient creates a new AnkiConnect client for the given base URL.
// An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: u,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		version: DefaultVersion,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.initializeServices()

	return c, nil
}

// LocalURL formats the base URL for an AnkiConnect instance on localhost.
func LocalURL(port string) string {
	return "http://localhost:" + port
}

// WithHTTPClient allows providing a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithVersion sets the AnkiConnect protocol version sent in every envelope.
func WithVersion(version int) Option {
	return func(c *Client) {
		c.version = version
	}
}

func (c *Client) initializeServices() {
	c.Notes = &NotesService{client: c}
	c.Decks = &DecksService{client: c}
	c.Models = &ModelsService{client: c}
}

// Version asks the service which protocol version it speaks. The answer is
// advisory; the client keeps using its configured version.
func (c *Client) Version(ctx context.Context) (int, error) {
	var v int
	if err := c.invoke(ctx, "version", nil, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// invoke is the single choke point for every remote call: it wraps params in
// the request envelope, posts it, sanitizes the raw reply, decodes the result
// into out, and maps failures onto the typed errors in this package. A nil
// out discards the result. A nil params is omitted from the wire entirely.
func (c *Client) invoke(ctx context.Context, action string, params, out any) error {
	payload, err := json.Marshal(request{Action: action, Version: c.version, Params: params})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: action, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: action, Err: err}
	}
	if resp.StatusCode >= 400 {
		return &TransportError{Op: action, Err: fmt.Errorf("status %d: %s", resp.StatusCode, body)}
	}

	var env response
	if err := json.Unmarshal(body, &env); err != nil {
		return &DecodeError{Expected: "anki.response", Raw: body, Err: err}
	}
	if env.Error != nil {
		return &ServerError{Message: *env.Error}
	}
	if out == nil {
		return nil
	}

	result := sanitizeResult(env.Result)
	if len(bytes.TrimSpace(result)) == 0 || bytes.Equal(bytes.TrimSpace(result), []byte("null")) {
		// Absent result. Callers that require data enforce non-emptiness
		// themselves.
		return nil
	}
	if err := json.Unmarshal(result, out); err != nil {
		return &DecodeError{Expected: typeName(out), Raw: result, Err: err}
	}
	return nil
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
