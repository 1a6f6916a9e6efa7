package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Server is an httptest server that records requests and answers every one
// with the same status and JSON body.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	status   int
	body     string
}

func NewServer(t *testing.T, status int, body string) *Server {
	t.Helper()

	srv := &Server{
		Server:   nil,
		mu:       sync.Mutex{},
		requests: nil,
		status:   status,
		body:     body,
	}

	srv.Server = httptest.NewServer(http.HandlerFunc(srv.handle))
	t.Cleanup(srv.Close)

	return srv
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	status, payload := s.status, s.body
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(payload))
}

func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests := make([]RecordedRequest, len(s.requests))
	copy(requests, s.requests)

	return requests
}

func (s *Server) Last(t *testing.T) RecordedRequest {
	t.Helper()

	requests := s.Requests()
	require.NotEmpty(t, requests, "no request was received")

	return requests[len(requests)-1]
}

func AssertRequest(t *testing.T, req RecordedRequest, method, path string) {
	t.Helper()
	assert.Equal(t, method, req.Method, "Request method mismatch")
	assert.Equal(t, path, req.Path, "Request path mismatch")
}

func AssertHeader(t *testing.T, req RecordedRequest, header, expectedValue string) {
	t.Helper()
	assert.Equal(t, expectedValue, req.Header.Get(header), "Header %s mismatch", header)
}

func AssertJSONBody(t *testing.T, req RecordedRequest, expected string) {
	t.Helper()

	require.True(t, json.Valid(req.Body), "Request body should be valid JSON")
	assert.JSONEq(t, expected, string(req.Body), "Request body mismatch")
}
