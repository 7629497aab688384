// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"slices"
	"sync"
	"testing"
)

// RemoteCall records one call made to a [MockRemote].
type RemoteCall struct {
	Method  string // "create" or "delete"
	MovieID int
}

// MockRemote is a test double for services.Remote.
//
// Set Block to a channel to hold every call until it is closed.
type MockRemote struct {
	mu    sync.Mutex
	calls []RemoteCall
	Err   error
	Block chan struct{}
}

func (m *MockRemote) record(method string, movieID int) error {
	m.mu.Lock()
	m.calls = append(m.calls, RemoteCall{Method: method, MovieID: movieID})
	block := m.Block
	err := m.Err
	m.mu.Unlock()

	if block != nil {
		<-block
	}
	return err
}

func (m *MockRemote) CreateFavorite(ctx context.Context, movieID int) error {
	return m.record("create", movieID)
}

func (m *MockRemote) DeleteFavorite(ctx context.Context, movieID int) error {
	return m.record("delete", movieID)
}

// Calls returns a copy of the recorded calls.
func (m *MockRemote) Calls() []RemoteCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calls)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
