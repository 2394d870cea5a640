package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/neatdog/neatdog/internal/client/codec"
	"github.com/neatdog/neatdog/internal/logging"
)

const tracerName = "github.com/neatdog/neatdog/internal/client/client"

// Doer sends one HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues calls against the neatdog API.
type Client struct {
	baseURL string
	doer    Doer
	creds   CredentialSource
	logger  logging.Logger
	tracer  trace.Tracer
}

type Option func(*Client)

// WithDoer replaces the default *http.Client.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.doer = d }
}

// WithCredentialSource sets where the Authorization token comes from.
func WithCredentialSource(src CredentialSource) Option {
	return func(c *Client) { c.creds = src }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTracerProvider records call spans on tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) { c.tracer = tp.Tracer(tracerName) }
}

// New returns a Client for baseURL, e.g. "http://localhost:8000/api/v1".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q", ErrInvalidEndpoint, baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    &http.Client{},
		creds:   noCredential{},
		logger:  logging.Nop(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the URL every path is resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// WithCredentials returns a copy of c that reads its token from src.
func (c *Client) WithCredentials(src CredentialSource) *Client {
	cp := *c
	cp.creds = src
	return &cp
}

// Call performs one request and decodes a 2xx body into out.
// A nil body sends no payload; a nil out discards the response body.
func (c *Client) Call(ctx context.Context, method, path string, body, out any) (err error) {
	callID := uuid.NewString()
	start := time.Now()

	ctx, span := c.tracer.Start(ctx, "neatdog.api "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			c.logger.Warn(ctx, "api call failed", "call_id", callID, "method", method, "path", path,
				"elapsed", time.Since(start), "error", err)
		}
		span.End()
	}()

	endpoint, err := c.resolve(path)
	if err != nil {
		return err
	}

	payload := io.Reader(http.NoBody)
	if body != nil {
		b, err := codec.Marshal(body)
		if err != nil {
			return &EncodeError{Err: err}
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	var sentWith string
	if tok := c.creds.Credential(); tok != nil && tok.AccessToken != "" {
		sentWith = tok.AccessToken
		req.Header.Set("Authorization", "Bearer "+sentWith)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	if resp == nil || resp.Body == nil {
		return ErrInvalidResponse
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.Debug(ctx, "api call", "call_id", callID, "method", method, "path", path,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		se := statusError(resp.StatusCode, data)
		se.sentWith = sentWith
		return se
	}

	if out == nil {
		return nil
	}
	if err := codec.Unmarshal(data, out); err != nil {
		return &DecodeError{Method: method, Path: path, Err: err}
	}
	return nil
}

// Get is Call with GET and no body.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Call(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Call(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Call(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) resolve(path string) (string, error) {
	raw := c.baseURL + "/" + strings.TrimLeft(path, "/")
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidEndpoint, path)
	}
	return u.String(), nil
}

type errorBody struct {
	Detail string `json:"detail"`
}

// statusError builds the error for a non-2xx response. The detail message
// is best effort: an undecodable body yields an error without one.
func statusError(code int, data []byte) *StatusError {
	se := &StatusError{Code: code}

	var eb errorBody
	if err := codec.Unmarshal(data, &eb); err == nil {
		se.Detail = eb.Detail
		se.HasDetail = true
	}
	return se
}

// WithQuery appends q to path. Empty values are dropped.
func WithQuery(path string, q url.Values) string {
	clean := url.Values{}
	for k, vs := range q {
		for _, v := range vs {
			if v != "" {
				clean.Add(k, v)
			}
		}
	}
	if len(clean) == 0 {
		return path
	}
	return path + "?" + clean.Encode()
}
