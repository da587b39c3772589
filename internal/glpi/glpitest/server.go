// Package glpitest provides a fake GLPI REST server for tests.
package glpitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// APIPath is where the fake server mounts the REST API
const APIPath = "/apirest.php"

// Default credentials accepted by a new Server
const (
	AppToken     = "app-token"
	UserToken    = "user-token"
	SessionToken = "abc"
)

type failure struct {
	status int
	body   string
}

// Server is a fake GLPI server counting calls per endpoint
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	sessionToken string
	computers    string
	failures     map[string]failure
	calls        map[string]int
	headers      map[string]http.Header
}

// NewServer starts a fake GLPI server closed on test cleanup
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		sessionToken: SessionToken,
		computers:    "[]",
		failures:     make(map[string]failure),
		calls:        make(map[string]int),
		headers:      make(map[string]http.Header),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// APIURL returns the base URL a client should use
func (s *Server) APIURL() string {
	return s.URL + APIPath
}

// SetComputers sets the raw JSON body returned by the Computer endpoint
func (s *Server) SetComputers(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.computers = body
}

// SetSessionToken sets the token handed out by initSession. Empty makes
// initSession answer with an object lacking session_token.
func (s *Server) SetSessionToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionToken = token
}

// Fail makes an endpoint answer with the given status and body
func (s *Server) Fail(op string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = failure{status: status, body: body}
}

// Calls returns how many times an endpoint was hit
func (s *Server) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// TotalCalls returns the number of requests received
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// LastHeaders returns the headers of the last request to an endpoint
func (s *Server) LastHeaders(op string) http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.headers[op]
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	op := strings.TrimPrefix(r.URL.Path, APIPath+"/")

	s.mu.Lock()
	s.calls[op]++
	s.headers[op] = r.Header.Clone()
	fail, failing := s.failures[op]
	sessionToken := s.sessionToken
	computers := s.computers
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if failing {
		w.WriteHeader(fail.status)
		fmt.Fprint(w, fail.body)
		return
	}

	if r.Header.Get("App-Token") != AppToken {
		writeError(w, http.StatusBadRequest, "ERROR_WRONG_APP_TOKEN_PARAMETER", "parameter app_token seems wrong")
		return
	}
	if r.Header.Get("Authorization") != "user_token "+UserToken {
		writeError(w, http.StatusUnauthorized, "ERROR_GLPI_LOGIN_USER_TOKEN", "parameter user_token seems invalid")
		return
	}

	switch op {
	case "initSession":
		if sessionToken == "" {
			fmt.Fprint(w, `{}`)
			return
		}
		fmt.Fprintf(w, `{"session_token":%q}`, sessionToken)
	case "Computer", "killSession":
		if r.Header.Get("Session-Token") != sessionToken {
			writeError(w, http.StatusUnauthorized, "ERROR_SESSION_TOKEN_INVALID", "session_token seems invalid")
			return
		}
		if op == "Computer" {
			fmt.Fprint(w, computers)
		}
	default:
		writeError(w, http.StatusBadRequest, "ERROR_RESOURCE_NOT_FOUND_NOR_COMMONDBTM", "resource not found")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.WriteHeader(status)
	fmt.Fprintf(w, `[%q,%q]`, code, message)
}
