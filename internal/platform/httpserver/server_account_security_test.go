package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	accountservice "inkwell/contexts/identity/account-service"
	blogservice "inkwell/contexts/publishing/blog-service"
)

func newTestServer() *Server {
	return New(
		accountservice.NewInMemoryModule(slog.Default()),
		blogservice.NewInMemoryModule(slog.Default()),
		slog.Default(),
		":0",
	)
}

func registerUser(t *testing.T, server *Server, username string, password string) {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/user_creation", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("register %s: expected 200, got %d body=%s", username, rr.Code, rr.Body.String())
	}
}

func loginUser(t *testing.T, server *Server, username string, password string) string {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d body=%s", username, rr.Code, rr.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("expected token_type bearer, got %q", resp.TokenType)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected a non-empty access token")
	}
	return resp.AccessToken
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	server := newTestServer()
	registerUser(t, server, "alice", "pw1")

	req := httptest.NewRequest(http.MethodPost, "/user_creation", strings.NewReader(`{"username":"alice","password":"pw2"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRegisterRejectsInvalidJSON(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/user_creation", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	server := newTestServer()
	registerUser(t, server, "alice", "pw1")

	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatalf("expected bearer challenge header, got %q", rr.Header().Get("WWW-Authenticate"))
	}
}

// Unknown username and wrong password must produce identical responses so
// the login endpoint cannot be used to enumerate accounts.
func TestLoginFailuresDoNotLeakUsernameExistence(t *testing.T) {
	server := newTestServer()
	registerUser(t, server, "alice", "pw1")

	responses := make([]string, 0, 2)
	for _, form := range []url.Values{
		{"username": {"alice"}, "password": {"wrong"}},
		{"username": {"nobody"}, "password": {"pw1"}},
	} {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		server.mux.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
		}
		responses = append(responses, rr.Body.String())
	}
	if responses[0] != responses[1] {
		t.Fatalf("login failure bodies differ: %s vs %s", responses[0], responses[1])
	}
}

func TestLoginThenAuthenticatedRead(t *testing.T) {
	server := newTestServer()
	registerUser(t, server, "alice", "pw1")
	token := loginUser(t, server, "alice", "pw1")

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestReadRequiresBearerToken(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatalf("expected bearer challenge header, got %q", rr.Header().Get("WWW-Authenticate"))
	}
}

func TestReadRejectsGarbageToken(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCORSPreflightAnswered(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/read", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("expected allow-all origin header, got %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
}
