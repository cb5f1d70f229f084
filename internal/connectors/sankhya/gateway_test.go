package sankhya

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeGateway is an in-process stand-in for the Sankhya login and service endpoints.
type fakeGateway struct {
	t      *testing.T
	server *httptest.Server

	logins      atomic.Int32
	loginStatus int
	loginBody   string

	mu       sync.Mutex
	requests []recordedRequest
	service  http.HandlerFunc
}

type recordedRequest struct {
	Service string
	Header  http.Header
	Body    map[string]any
}

func newFakeGateway(t *testing.T) *fakeGateway {
	t.Helper()
	g := &fakeGateway{
		t:           t,
		loginStatus: http.StatusOK,
		loginBody:   `{"bearerToken":"token-1"}`,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		g.logins.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(g.loginStatus)
		_, _ = io.WriteString(w, g.loginBody)
	})
	mux.HandleFunc(servicePath, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			require.NoError(t, json.Unmarshal(raw, &body))
		}

		g.mu.Lock()
		g.requests = append(g.requests, recordedRequest{
			Service: r.URL.Query().Get("serviceName"),
			Header:  r.Header.Clone(),
			Body:    body,
		})
		handler := g.service
		g.mu.Unlock()

		if handler == nil {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"status":"1","responseBody":{}}`)
			return
		}
		handler(w, r)
	})

	g.server = httptest.NewServer(mux)
	t.Cleanup(g.server.Close)
	return g
}

func (g *fakeGateway) respond(status int, body string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.service = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (g *fakeGateway) lastRequest() recordedRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	require.NotEmpty(g.t, g.requests)
	return g.requests[len(g.requests)-1]
}

func (g *fakeGateway) config() Config {
	return Config{
		BaseURL:  g.server.URL,
		Token:    "tok",
		AppKey:   "app",
		Username: "user",
		Password: "pass",
	}
}

func (g *fakeGateway) session() *Session {
	s, err := NewSession(g.config(), nil)
	require.NoError(g.t, err)
	return s
}
