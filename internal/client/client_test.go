package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientNew(t *testing.T) {
	c := New("https://example.com")

	if c.BaseURL != "https://example.com" {
		t.Errorf("expected base URL 'https://example.com', got '%s'", c.BaseURL)
	}

	if c.HTTPClient == nil {
		t.Error("expected non-nil HTTP client")
	}

	if c.IsAuthenticated() {
		t.Error("expected new client to not be authenticated")
	}
}

func TestLoginStoresToken(t *testing.T) {
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["username"] != "root" || body["password"] != "sekret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":      "abc",
			"username":   "root",
			"expires_at": expires,
		})
	}))
	defer ts.Close()

	c := New(ts.URL)
	if err := c.Login(Credentials{Username: "root", Password: "wrong"}); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := c.Login(Credentials{Username: "root", Password: "sekret"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if c.Token != "abc" || c.Username != "root" || !c.TokenExp.Equal(expires) {
		t.Fatalf("unexpected client state: %+v", c)
	}
	if !c.IsAuthenticated() {
		t.Fatal("expected client to be authenticated")
	}
}

func TestRegisterConflict(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"username must be unique"}`))
	}))
	defer ts.Close()

	if _, err := New(ts.URL).Register(Credentials{Username: "root", Password: "sekret"}); err != ErrAlreadyRegistered {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestAuthorizationHeaderSent(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := New(ts.URL)
	c.Token = "tok"
	if err := c.DeleteBlog(7); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}
