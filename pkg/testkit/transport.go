// Package testkit provides test doubles for the backend API.
//
// MockTransport implements http.RoundTripper: it matches outgoing requests
// against registered stubs and returns synthetic responses instead of making
// real network calls, while recording every call for assertions.
//
//	mt := testkit.NewMockTransport()
//	mt.Stub("GET", "/products", 200, testkit.Success(page))
//	client := rest.New("http://backend", rest.WithHTTPClient(mt.Client()))
//	// ... exercise code ...
//	require.Equal(t, 1, mt.CallCount("GET", "/products"))
package testkit

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Call is one recorded outgoing request.
type Call struct {
	Method string
	Path   string
	Query  map[string]string
	Body   []byte
	Header http.Header
}

// BodyJSON decodes the recorded request body into dest.
func (c Call) BodyJSON(dest interface{}) error {
	return json.Unmarshal(c.Body, dest)
}

type stub struct {
	method     string
	pathPrefix string
	status     int
	body       string
	err        error
	calls      int
}

// MockTransport is a stub-backed http.RoundTripper.
type MockTransport struct {
	mu    sync.Mutex
	stubs []*stub
	calls []Call
}

// NewMockTransport creates an empty MockTransport. Unmatched requests get a
// 404 with a recognizable body, so a missing stub fails loudly in assertions.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// Client returns an *http.Client using this transport.
func (mt *MockTransport) Client() *http.Client {
	return &http.Client{Transport: mt}
}

// Stub registers a synthetic response for requests whose method matches and
// whose URL path starts with pathPrefix. Stubs are matched in registration
// order; the first match answers.
func (mt *MockTransport) Stub(method, pathPrefix string, status int, body string) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.stubs = append(mt.stubs, &stub{method: method, pathPrefix: pathPrefix, status: status, body: body})
}

// StubError makes matching requests fail at the transport level, simulating a
// network failure.
func (mt *MockTransport) StubError(method, pathPrefix string, err error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.stubs = append(mt.stubs, &stub{method: method, pathPrefix: pathPrefix, err: err})
}

// RoundTrip intercepts the outgoing request and returns a synthetic response.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}

	query := map[string]string{}
	for k, vs := range req.URL.Query() {
		if len(vs) > 0 {
			query[k] = vs[0]
		}
	}

	mt.mu.Lock()
	mt.calls = append(mt.calls, Call{
		Method: req.Method,
		Path:   req.URL.Path,
		Query:  query,
		Body:   body,
		Header: req.Header.Clone(),
	})

	var matched *stub
	for _, s := range mt.stubs {
		if s.method == req.Method && strings.HasPrefix(req.URL.Path, s.pathPrefix) {
			matched = s
			break
		}
	}
	if matched != nil {
		matched.calls++
	}
	mt.mu.Unlock()

	if matched == nil {
		return synthetic(req, http.StatusNotFound, `{"status":"error","message":"no stub configured"}`), nil
	}
	if matched.err != nil {
		return nil, matched.err
	}
	return synthetic(req, matched.status, matched.body), nil
}

// Calls returns a copy of every recorded request, in order.
func (mt *MockTransport) Calls() []Call {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	out := make([]Call, len(mt.calls))
	copy(out, mt.calls)
	return out
}

// CallCount reports how many recorded requests match method + path prefix.
func (mt *MockTransport) CallCount(method, pathPrefix string) int {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	n := 0
	for _, c := range mt.calls {
		if c.Method == method && strings.HasPrefix(c.Path, pathPrefix) {
			n++
		}
	}
	return n
}

// LastCall returns the most recent recorded request matching method + path
// prefix, or (zero, false).
func (mt *MockTransport) LastCall(method, pathPrefix string) (Call, bool) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	for i := len(mt.calls) - 1; i >= 0; i-- {
		c := mt.calls[i]
		if c.Method == method && strings.HasPrefix(c.Path, pathPrefix) {
			return c, true
		}
	}
	return Call{}, false
}

// Reset drops recorded calls but keeps stubs.
func (mt *MockTransport) Reset() {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.calls = nil
}

// UncalledStubs lists stubs that were never matched, for end-of-test checks.
func (mt *MockTransport) UncalledStubs() []string {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	var out []string
	for _, s := range mt.stubs {
		if s.calls == 0 {
			out = append(out, fmt.Sprintf("%s %s", s.method, s.pathPrefix))
		}
	}
	return out
}

func synthetic(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Request:    req,
	}
}

// Success wraps v in a success envelope body.
func Success(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("testkit: marshal envelope data: %v", err))
	}
	return fmt.Sprintf(`{"status":"success","data":%s}`, data)
}

// Failure builds an application-level error envelope body.
func Failure(message string) string {
	msg, _ := json.Marshal(message)
	return fmt.Sprintf(`{"status":"error","message":%s}`, msg)
}
