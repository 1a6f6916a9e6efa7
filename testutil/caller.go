package testutil

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/andyle182810/gappwrite/params"
	"github.com/stretchr/testify/require"
)

// RecordedCall is one invocation of Caller.Call.
type RecordedCall struct {
	Method  string
	Path    string
	Headers map[string]string
	Params  *params.Params
}

// Caller is an httpclient.Caller that records every call and answers with a
// canned response.
type Caller struct {
	mu       sync.Mutex
	endpoint string
	calls    []RecordedCall
	status   int
	body     string
	err      error
}

var _ httpclient.Caller = (*Caller)(nil)

func NewCaller(endpoint string) *Caller {
	return &Caller{
		mu:       sync.Mutex{},
		endpoint: endpoint,
		calls:    nil,
		status:   http.StatusOK,
		body:     "{}",
		err:      nil,
	}
}

// Respond sets the canned answer. Statuses of 400 and above are returned as
// *httpclient.Error, the same way the real client reports them.
func (c *Caller) Respond(status int, body string) *Caller {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = status
	c.body = body
	c.err = nil

	return c
}

func (c *Caller) Fail(err error) *Caller {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.err = err

	return c
}

func (c *Caller) Endpoint() string {
	return c.endpoint
}

func (c *Caller) Call(
	_ context.Context,
	method string,
	path string,
	headers map[string]string,
	p *params.Params,
) (*http.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, RecordedCall{
		Method:  method,
		Path:    path,
		Headers: headers,
		Params:  p,
	})

	if c.err != nil {
		return nil, c.err
	}

	if c.status >= http.StatusBadRequest {
		return nil, httpclient.NewServiceError(c.status, c.body, c.body, "")
	}

	return &http.Response{ //nolint:exhaustruct
		StatusCode: c.status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(c.body)),
	}, nil
}

func (c *Caller) Calls() []RecordedCall {
	c.mu.Lock()
	defer c.mu.Unlock()

	calls := make([]RecordedCall, len(c.calls))
	copy(calls, c.calls)

	return calls
}

func (c *Caller) Last(t *testing.T) RecordedCall {
	t.Helper()

	calls := c.Calls()
	require.NotEmpty(t, calls, "no call was recorded")

	return calls[len(calls)-1]
}

// AssertCall checks the most recent call. A nil expected means the call must
// carry no parameters.
func (c *Caller) AssertCall(
	t *testing.T,
	method string,
	path string,
	headers map[string]string,
	expected *params.Params,
) {
	t.Helper()

	call := c.Last(t)

	require.Equal(t, method, call.Method, "method mismatch")
	require.Equal(t, path, call.Path, "path mismatch")
	require.Equal(t, headers, call.Headers, "headers mismatch")

	if expected == nil {
		expected = params.New()
	}

	require.Equal(t, expected.Keys(), call.Params.Keys(), "parameter keys mismatch")
	require.Equal(t, expected, call.Params, "parameters mismatch")
}
