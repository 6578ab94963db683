package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// CapturedRequest records one request the mock server received, with the body
// decoded into a generic map so tests can assert field-exact payloads.
type CapturedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   map[string]any
}

type scriptedResponse struct {
	status int
	body   string
}

// MeshServer is a scriptable stand-in for the Mesh sequencer. Responses are
// enqueued per path and consumed in FIFO order, which makes multi-poll
// sequences (in_progress, in_progress, finished) trivial to script. Every
// request is captured for later inspection.
type MeshServer struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	queues   map[string][]scriptedResponse
	requests []CapturedRequest
}

// NewMeshServer starts a mock sequencer that shuts down with the test.
func NewMeshServer(t *testing.T) *MeshServer {
	t.Helper()

	s := &MeshServer{
		t:      t,
		queues: map[string][]scriptedResponse{},
	}
	s.server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.server.Close)
	return s
}

// URL returns the base URL tests pass to the client under test.
func (s *MeshServer) URL() string {
	return s.server.URL
}

// Enqueue scripts the next response for path.
func (s *MeshServer) Enqueue(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[path] = append(s.queues[path], scriptedResponse{status: status, body: body})
}

// Requests returns a copy of everything received so far.
func (s *MeshServer) Requests() []CapturedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CapturedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent captured request, failing the test if
// none arrived.
func (s *MeshServer) LastRequest() CapturedRequest {
	s.t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		s.t.Fatal("mesh server received no requests")
	}
	return s.requests[len(s.requests)-1]
}

func (s *MeshServer) handle(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.t.Errorf("reading request body: %v", err)
	}

	captured := CapturedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &captured.Body); err != nil {
			s.t.Errorf("request body is not valid JSON: %v", err)
		}
	}

	s.mu.Lock()
	s.requests = append(s.requests, captured)
	queue := s.queues[r.URL.Path]
	if len(queue) == 0 {
		s.mu.Unlock()
		s.t.Errorf("no scripted response for %s", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	next := queue[0]
	s.queues[r.URL.Path] = queue[1:]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(next.status)
	_, _ = w.Write([]byte(next.body))
}
