package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const apiPrefix = "/api/v1"

// Client provides a high-level interface to the bureau back-office API.
// All responses arrive wrapped in the bureau's `{success, data, error, meta}`
// envelope; failures surface as *AuthError with a taxonomy kind.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// ClientOptions configures SDK client construction.
type ClientOptions struct {
	HTTPClient *http.Client
	UserAgent  string
	Logger     *zerolog.Logger
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(opts *ClientOptions) {
		opts.UserAgent = ua
	}
}

// WithLogger enables wire-level debug logging.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(opts *ClientOptions) {
		opts.Logger = &logger
	}
}

// NewClient creates a bureau SDK client for the API server at baseURL.
// An http.Client with a sane timeout is created when one is not supplied.
func NewClient(baseURL string, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "mhcc-sdk"
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: opts.HTTPClient,
		userAgent:  opts.UserAgent,
		logger:     logger,
	}
}

// BaseURL returns the configured API server URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is the bureau's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
	Meta    json.RawMessage `json:"meta"`
}

// detailPayload is the shape of bureau error bodies (FastAPI HTTPException).
type detailPayload struct {
	Detail string `json:"detail"`
}

// doJSON performs a request with a JSON body (nil for none) and decodes the
// envelope's data field into out (nil to discard).
func (c *Client) doJSON(ctx context.Context, method, path, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return newAuthError(ErrServer, "cannot encode request body", err)
		}
		reader = strings.NewReader(string(data))
	}
	return c.do(ctx, method, path, token, "application/json", reader, out)
}

// doForm performs a form-encoded POST, as the bureau's token endpoint expects.
func (c *Client) doForm(ctx context.Context, path string, form url.Values, out any) error {
	return c.do(ctx, http.MethodPost, path, "", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), out)
}

func (c *Client) do(ctx context.Context, method, path, token, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return newAuthError(ErrNetwork, "cannot build request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	// The bureau's audit middleware correlates requests by this header.
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return newAuthError(ErrNetwork, "request failed", err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("bureau request")

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return newAuthError(ErrNetwork, "cannot read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return newAuthError(ErrMalformedResponse, "cannot decode response envelope", err)
	}
	if len(env.Data) == 0 {
		return newAuthError(ErrMalformedResponse, "response envelope has no data", nil)
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = env.Data
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return newAuthError(ErrMalformedResponse, "cannot decode response data", err)
	}
	return nil
}

// statusError maps a non-2xx response to the error taxonomy.
func (c *Client) statusError(status int, body []byte) error {
	detail := extractDetail(body)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &AuthError{Kind: ErrAuthorization, Message: detail, Status: status}
	default:
		if detail == "" {
			detail = fmt.Sprintf("bureau returned status %d", status)
		}
		return &AuthError{Kind: ErrServer, Message: detail, Status: status}
	}
}

func extractDetail(body []byte) string {
	var p detailPayload
	if err := json.Unmarshal(body, &p); err == nil && p.Detail != "" {
		return p.Detail
	}
	return ""
}
