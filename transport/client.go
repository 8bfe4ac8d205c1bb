package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mygbu/authcore/pkg/idx"
	"github.com/mygbu/authcore/pkg/slogx"
)

// AuthClient is the boundary contract with the authentication backend.
// The session manager depends on this interface; tests substitute stubs.
type AuthClient interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	ValidateToken(ctx context.Context, token string) (*LoginResponse, error)
	RequestPasswordReset(ctx context.Context, req ResetRequest) (*ResetResponse, error)
}

const (
	loginPath    = "/auth/login"
	validatePath = "/auth/validate"
	resetPath    = "/auth/reset-password"
)

// Client performs the JSON-over-HTTPS exchange with the auth backend.
// It is a thin boundary: no retries, no timeout beyond the HTTP
// client's default.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	logger *slog.Logger
}

var _ AuthClient = (*Client)(nil)

// NewClient creates a backend client with a 10 second request timeout.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Login performs the credential exchange.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.postJSON(ctx, loginPath, req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ValidateToken asks the backend to re-validate a stored bearer token.
// The response shape matches Login so a valid token restores a full
// session.
func (c *Client) ValidateToken(ctx context.Context, token string) (*LoginResponse, error) {
	headers := map[string]string{"Authorization": "Bearer " + token}

	var resp LoginResponse
	if err := c.postJSON(ctx, validatePath, struct{}{}, headers, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RequestPasswordReset asks the backend to start its reset flow for the
// identified account. The reset mechanics (mail link, OTP) stay
// server-side.
func (c *Client) RequestPasswordReset(ctx context.Context, req ResetRequest) (*ResetResponse, error) {
	var resp ResetResponse
	if err := c.postJSON(ctx, resetPath, req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// postJSON runs one POST exchange: validate endpoint, encode, send,
// decode. Every failure comes back as a classified *Error.
func (c *Client) postJSON(ctx context.Context, path string, body any, headers map[string]string, target any) error {
	endpoint, err := c.endpoint(path)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return encodingFailure(err)
	}

	// The correlation id rides the context so downstream log lines
	// (and the backend, via the header) all carry it.
	reqID := idx.New()
	ctx = slogx.WithRequestID(slogx.WithContext(ctx, c.logger), reqID.String())
	log := slogx.FromContext(ctx)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return invalidEndpoint(c.BaseURL)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", reqID.String())
	for key, value := range headers {
		httpReq.Header.Set(key, value)
	}

	start := time.Now()
	httpResp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		log.Warn("auth request failed", "path", path, "error", err)
		return networkFailure(err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return networkFailure(err)
	}

	log.Info("auth request",
		"path", path,
		"status", httpResp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	// The backend reports rejection through the success flag in the
	// body, so the body is decoded regardless of status code.
	if err := json.Unmarshal(raw, target); err != nil {
		return decodingFailure(err)
	}

	return nil
}

func (c *Client) endpoint(path string) (string, error) {
	if c.BaseURL == "" {
		return "", invalidEndpoint(c.BaseURL)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", invalidEndpoint(c.BaseURL)
	}

	return c.BaseURL + path, nil
}
