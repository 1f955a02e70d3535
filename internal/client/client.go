package client

// client.go implements the shared request plumbing for every resource
// operation: auth posture, request ids, optional rate limiting, and the
// normalization of responses and failures into the error taxonomy.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"bookadmin/internal/session"
)

const defaultTimeout = 10 * time.Second

// Client issues authenticated requests against the BookHub API. It is
// stateless apart from its configuration: it never mutates application state,
// callers own what happens with the returned values.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	session     *session.Session
	rateLimiter *rate.Limiter
}

// New builds a client for the given base endpoint. The session decides the
// auth posture per request: bearer header when a token is stored, the dev
// bypass marker otherwise. Exactly one of the two, never both.
func New(baseURL string, sess *session.Session) *Client {
	return &Client{
		baseURL: baseURL,
		session: sess,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// SetRateLimit paces outgoing requests. Pacing only: failed requests are
// never retried, they surface immediately.
func (c *Client) SetRateLimit(perSecond float64, burst int) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(perSecond), burst)
}

// SetTimeout overrides the default per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// apiResponse is the error envelope the server uses for non-2xx answers.
type apiResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// newRequest builds a request with the auth posture and a request id applied.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Request-ID", uuid.NewString())

	if token, ok := c.session.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		// Development-mode servers accept this in lieu of a credential.
		req.Header.Set("X-Dev-Bypass", "1")
	}
	return req, nil
}

// send performs the request and classifies transport-level failures.
// The caller owns resp.Body.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(req.Context()); err != nil {
			return nil, networkErr(err)
		}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkErr(err)
	}
	return resp, nil
}

// classify turns a non-2xx response into the normalized error value.
// 401/403 are unauthorized no matter what the body says.
func classify(resp *http.Response) *Error {
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return unauthorizedErr(resp.StatusCode)
	}

	var envelope apiResponse
	message := ""
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		message = envelope.Error
		if message == "" {
			message = envelope.Message
		}
	}
	return rejectedErr(resp.StatusCode, message)
}

// doJSON sends a JSON request (body may be nil) and decodes a JSON answer
// into out (out may be nil when the caller only cares about success, e.g.
// deletes answered with 204).
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classify(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return malformedErr(resp.StatusCode, err)
	}
	return nil
}

// doMultipart sends an already-encoded multipart body. Banners and ads use
// this single-request encoding; book covers do not (see books.go), the two
// codepaths match two distinct server endpoint contracts.
func (c *Client) doMultipart(ctx context.Context, method, path string, body *bytes.Buffer, contentType string, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classify(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return malformedErr(resp.StatusCode, err)
	}
	return nil
}
