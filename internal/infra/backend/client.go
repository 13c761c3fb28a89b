// Package backend talks to the hosted backend-as-a-service over HTTP. Client
// carries the shared transport concerns; AuthClient owns the auth session.
package backend

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

	"todo/config"
	deliverycontext "todo/internal/delivery/context"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"
	"todo/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	headerAPIKey        = "apikey"
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-Id"

	contentTypeJSON = "application/json"

	// maxErrorBody caps how much of an error response is read.
	maxErrorBody = 64 << 10
)

// Request describes one backend call.
type Request struct {
	Operation   string // metric and log label, e.g. "todos.list"
	Method      string
	Path        string // relative to the backend URL, e.g. "/rest/v1/todos"
	Query       url.Values
	Header      http.Header
	Token       string // bearer token; empty means the publishable key
	JSON        any    // encoded as the body when non-nil
	Body        io.Reader
	ContentType string // used with Body
}

// ClientParams holds dependencies for Client, injected by Fx
type ClientParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Metrics    service.MetricsRecorder `optional:"true"`
	HTTPClient *http.Client            `optional:"true"`
}

// Client sends paced, authenticated requests to the backend and turns error
// responses into domainerrors.BackendError.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    service.MetricsRecorder
	logger     *slog.Logger
}

// NewClient creates a Client for the configured backend.
func NewClient(params ClientParams) *Client {
	cfg := params.Config.Backend

	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NoopMetrics{}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     cfg.PublishableKey,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
		metrics:    metrics,
		logger:     params.Logger,
	}
}

// BaseURL returns the backend URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIKey returns the publishable key sent with every call.
func (c *Client) APIKey() string {
	return c.apiKey
}

// Do sends req and decodes a successful JSON response into out when out is
// non-nil. It returns the response header of successful calls.
func (c *Client) Do(ctx context.Context, req Request, out any) (http.Header, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrapf(err, "%s: rate limiter", req.Operation)
	}

	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.RecordBackendRequest(req.Operation, 0, time.Since(start))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.WithStack(ctxErr)
		}
		deliverycontext.GetLoggerOrDefault(ctx, c.logger).Warn("Backend unreachable",
			slog.String("operation", req.Operation),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.NewBackendError(0, "network_error", "Failed to reach the backend"), err.Error())
	}
	defer resp.Body.Close()
	c.metrics.RecordBackendRequest(req.Operation, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)

		return resp.Header, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "%s: decode response", req.Operation)
	}

	return resp.Header, nil
}

func (c *Client) newHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	body := req.Body
	contentType := req.ContentType
	if req.JSON != nil {
		payload, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: encode request", req.Operation)
		}
		body = bytes.NewReader(payload)
		contentType = contentTypeJSON
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: build request", req.Operation)
	}

	for name, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(name, v)
		}
	}

	token := req.Token
	if token == "" {
		token = c.apiKey
	}
	httpReq.Header.Set(headerAPIKey, c.apiKey)
	httpReq.Header.Set(headerAuthorization, "Bearer "+token)
	if contentType != "" {
		httpReq.Header.Set(headerContentType, contentType)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(headerRequestID, requestID)
	}

	return httpReq, nil
}

// errorBody covers the error shapes of the auth, rest and storage APIs.
type errorBody struct {
	Msg              string          `json:"msg"`
	Message          string          `json:"message"`
	ErrorDescription string          `json:"error_description"`
	ErrorName        string          `json:"error"`
	ErrorCode        string          `json:"error_code"`
	Code             json.RawMessage `json:"code"`
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return domainerrors.NewBackendError(resp.StatusCode, "", strings.TrimSpace(string(raw)))
	}

	message := firstNonEmpty(body.Msg, body.Message, body.ErrorDescription, body.ErrorName)
	code := body.ErrorCode
	if code == "" {
		var textCode string
		if json.Unmarshal(body.Code, &textCode) == nil {
			code = textCode
		}
	}
	if code == "" && body.ErrorName != message {
		code = body.ErrorName
	}

	return domainerrors.NewBackendError(resp.StatusCode, code, message)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
