// Package rest is the client for the label-inspection backend's REST API.
//
// Every response is expected to use the `{status, data, message}` envelope;
// callers only ever see the inner payload:
//
//	var page models.ProductPage
//	err := client.Get("/products").
//	    Query("skip", "0").Query("limit", "50").
//	    Result(ctx, &page)
//
// The client injects the bearer token on every request, appends a
// cache-busting parameter to reads, maps HTTP error statuses to fixed
// user-facing messages, and fires the session-expired event on HTTP 401.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/labelsight/labelsight/pkg/event"
	"github.com/labelsight/labelsight/pkg/logger"
	"github.com/labelsight/labelsight/pkg/metrics"
	"github.com/labelsight/labelsight/pkg/reqid"
)

// TokenSource supplies the current bearer token; an empty string means
// "no session". The credentials store satisfies this.
type TokenSource func() string

// defaultTransport is the connection-pooled transport used in production.
// Tests swap the whole *http.Client via WithHTTPClient.
var defaultTransport = &http.Transport{
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 20,
	IdleConnTimeout:     90 * time.Second,
}

// Client issues requests against one backend base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   TokenSource
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (tests inject a
// mock-transport client here).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// WithTokenSource sets the bearer-token supplier.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Transport: defaultTransport,
			Timeout:   60 * time.Second,
		},
		token: func() string { return "" },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ------------------- Request -------------------

// FilePart is one file attached to a multipart request.
type FilePart struct {
	Field    string // form field name, e.g. "file"
	Filename string
	Reader   io.Reader
}

// Request is a fluent request builder bound to a Client.
type Request struct {
	c      *Client
	method string
	path   string
	query  url.Values
	body   interface{}
	fields map[string]string // multipart form fields
	files  []FilePart
}

// Get starts a GET request for the given API path.
func (c *Client) Get(path string) *Request { return c.newRequest(http.MethodGet, path) }

// Post starts a POST request.
func (c *Client) Post(path string) *Request { return c.newRequest(http.MethodPost, path) }

// Put starts a PUT request.
func (c *Client) Put(path string) *Request { return c.newRequest(http.MethodPut, path) }

// Delete starts a DELETE request.
func (c *Client) Delete(path string) *Request { return c.newRequest(http.MethodDelete, path) }

func (c *Client) newRequest(method, path string) *Request {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return &Request{
		c:      c,
		method: method,
		path:   path,
		query:  url.Values{},
	}
}

// Query adds a query parameter. Empty values are kept out of the URL so
// optional filters simply disappear when unset.
func (r *Request) Query(key, value string) *Request {
	if value != "" {
		r.query.Set(key, value)
	}
	return r
}

// QueryAlways adds a query parameter even when empty, for endpoints that
// expect their full parameter set on every call.
func (r *Request) QueryAlways(key, value string) *Request {
	r.query.Set(key, value)
	return r
}

// QueryInt adds an integer query parameter (always sent, zero included —
// `skip=0` is meaningful).
func (r *Request) QueryInt(key string, value int) *Request {
	r.query.Set(key, fmt.Sprintf("%d", value))
	return r
}

// Body sets a JSON request body.
func (r *Request) Body(v interface{}) *Request {
	r.body = v
	return r
}

// Field adds a multipart form field. Using Field or File switches the
// request to multipart/form-data encoding.
func (r *Request) Field(key, value string) *Request {
	if r.fields == nil {
		r.fields = map[string]string{}
	}
	r.fields[key] = value
	return r
}

// File attaches a file to a multipart request.
func (r *Request) File(field, filename string, rd io.Reader) *Request {
	r.files = append(r.files, FilePart{Field: field, Filename: filename, Reader: rd})
	return r
}

// ------------------- Execution -------------------

// envelope is the `{status, data, message}` wrapper every backend response
// uses. Data stays raw until the caller's destination type is known.
type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Result executes the request and decodes the envelope's data into dest.
// Pass nil when the payload is irrelevant (deletes).
func (r *Request) Result(ctx context.Context, dest interface{}) error {
	raw, err := r.send(ctx)
	if err != nil {
		return err
	}
	if dest == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("rest: decode payload: %w", err)
	}
	return nil
}

func (r *Request) send(ctx context.Context) (json.RawMessage, error) {
	// Cache-busting parameter on every read, so intermediaries never serve
	// a stale list after a mutation.
	if r.method == http.MethodGet {
		r.query.Set("t", cacheBuster())
	}

	u := r.c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	body, contentType, err := r.buildBody()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("rest: build request: %w", err)
	}

	// Reuse a caller-scoped request ID when one travels in the context.
	reqID := reqid.FromCtx(ctx)
	if reqID == "" {
		reqID = reqid.New()
	}
	req.Header.Set(reqid.Header, reqID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// The Authorization header is always present; an empty bearer value
	// mirrors an anonymous session.
	if token := r.c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Set("Authorization", "")
	}

	log := logger.L.With("request_id", reqID, "method", r.method, "path", r.path)

	metrics.RequestInFlight.Inc()
	start := time.Now()
	resp, err := r.c.httpc.Do(req)
	elapsed := time.Since(start)
	metrics.RequestInFlight.Dec()

	if err != nil {
		metrics.ObserveRequest(r.method, r.path, "transport_error", elapsed)
		log.Warn("backend call failed", "error", err)
		apiErr := &APIError{Message: "Network connection failed", Err: err}
		event.Fire(event.NotifyError, apiErr.Message)
		return nil, apiErr
	}
	defer resp.Body.Close()

	metrics.ObserveRequest(r.method, r.path, fmt.Sprintf("%d", resp.StatusCode), elapsed)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("rest: read body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Session expiry is a global signal, not an inline error: the
		// subscribed surface forces logout and navigation to login.
		metrics.SessionExpirations.Inc()
		log.Warn("session expired")
		event.Fire(event.SessionExpired, nil)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: statusMessage(resp.StatusCode)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := statusMessage(resp.StatusCode)
		if resp.StatusCode == http.StatusBadRequest {
			// A 400 body often carries a precise validation message.
			var env envelope
			if json.Unmarshal(raw, &env) == nil && env.Message != "" {
				msg = env.Message
			}
		}
		log.Warn("backend call rejected", "status", resp.StatusCode, "message", msg)
		event.Fire(event.NotifyError, msg)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("rest: decode envelope: %w", err)
	}

	switch env.Status {
	case "success":
		return env.Data, nil
	case "error":
		msg := env.Message
		if msg == "" {
			msg = "An error occurred"
		}
		log.Warn("backend reported error", "message", msg)
		event.Fire(event.NotifyError, msg)
		return nil, &APIError{Message: msg}
	default:
		log.Warn("response without envelope status", "status", env.Status)
		return env.Data, nil
	}
}

func (r *Request) buildBody() (io.Reader, string, error) {
	if len(r.fields) > 0 || len(r.files) > 0 {
		return r.buildMultipart()
	}
	if r.body == nil {
		return nil, "", nil
	}

	b, err := json.Marshal(r.body)
	if err != nil {
		return nil, "", fmt.Errorf("rest: marshal body: %w", err)
	}
	return bytes.NewReader(b), "application/json", nil
}

func (r *Request) buildMultipart() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, val := range r.fields {
		if err := w.WriteField(key, val); err != nil {
			return nil, "", fmt.Errorf("rest: write field %s: %w", key, err)
		}
	}
	for _, f := range r.files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("rest: create part %s: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, "", fmt.Errorf("rest: copy file %s: %w", f.Filename, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("rest: close multipart: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

// cacheBuster returns a short random token for the `t` query parameter.
func cacheBuster() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
}
