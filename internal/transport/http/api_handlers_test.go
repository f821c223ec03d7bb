package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

func postJSON(t *testing.T, ts string, path, body string, headers map[string]string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts+path, bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

func TestRegisterEndpoint(t *testing.T) {
	ts, _ := startTestServer(t, nil)

	resp := postJSON(t, ts.URL, "/api/register", `{"username":"alice","password":"password123","name":"Alice Kim","age":27}`, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if authResp.Token == "" {
		t.Fatalf("expected non-empty token")
	}

	// Duplicate username conflicts.
	dup := postJSON(t, ts.URL, "/api/register", `{"username":"alice","password":"password123"}`, nil)
	defer dup.Body.Close()
	if dup.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", dup.StatusCode)
	}

	// Short password is rejected by request binding.
	bad := postJSON(t, ts.URL, "/api/register", `{"username":"bob","password":"12345"}`, nil)
	defer bad.Body.Close()
	if bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", bad.StatusCode)
	}
}

func TestLoginEndpointSetsSessionCookie(t *testing.T) {
	ts, _ := startTestServer(t, nil)

	resp := postJSON(t, ts.URL, "/api/register", `{"username":"alice","password":"password123"}`, nil)
	resp.Body.Close()

	login := postJSON(t, ts.URL, "/api/login", `{"username":"alice","password":"password123"}`, nil)
	defer login.Body.Close()

	if login.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", login.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(login.Body).Decode(&authResp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if authResp.Token == "" {
		t.Fatalf("expected non-empty token")
	}

	var sessionCookie *http.Cookie
	for _, c := range login.Cookies() {
		if c.Name == SessionCookieName {
			sessionCookie = c
		}
	}
	if sessionCookie == nil || sessionCookie.Value != authResp.Token {
		t.Fatalf("expected session cookie carrying the token")
	}

	wrong := postJSON(t, ts.URL, "/api/login", `{"username":"alice","password":"wrong-password"}`, nil)
	defer wrong.Body.Close()
	if wrong.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", wrong.StatusCode)
	}
}

func TestListUsersRequiresAuth(t *testing.T) {
	ts, _ := startTestServer(t, nil)

	resp := postJSON(t, ts.URL, "/api/register", `{"username":"alice","password":"password123"}`, nil)
	defer resp.Body.Close()
	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// Without a token.
	unauth, err := http.Get(ts.URL + "/api/users")
	if err != nil {
		t.Fatalf("get users: %v", err)
	}
	defer unauth.Body.Close()
	if unauth.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", unauth.StatusCode)
	}

	// With a bearer token.
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+authResp.Token)
	authed, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("get users: %v", err)
	}
	defer authed.Body.Close()
	if authed.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", authed.StatusCode)
	}

	var users []UserResponse
	if err := json.NewDecoder(authed.Body).Decode(&users); err != nil {
		t.Fatalf("decode users: %v", err)
	}
	if len(users) != 1 || users[0].Username != "alice" {
		t.Fatalf("unexpected users: %+v", users)
	}

	// With the session cookie instead of a header.
	req, _ = http.NewRequest(http.MethodGet, ts.URL+"/api/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: authResp.Token})
	byCookie, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("get users via cookie: %v", err)
	}
	defer byCookie.Body.Close()
	if byCookie.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 via cookie, got %d", byCookie.StatusCode)
	}
}
