package server

import (
	"net/http"
	"testing"

	"github.com/buzzkc/dirt/internal/config"
)

func TestPasscodeGate(t *testing.T) {
	cfg := config.Default()
	cfg.Passcode = "dirtnap"
	ts := newTestServerWithConfig(t, cfg)

	// API requests without credentials are rejected.
	resp := doRequest(t, ts, http.MethodGet, "/api/games", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, resp.StatusCode)
	}
	resp.Body.Close()

	// Health stays open for probes.
	resp = doRequest(t, ts, http.MethodGet, "/api/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	resp.Body.Close()

	// The X-Passcode header passes without a session.
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/games", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("X-Passcode", "dirtnap")
	headerResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	if headerResp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d with header, got %d", http.StatusOK, headerResp.StatusCode)
	}
	headerResp.Body.Close()
}

func TestAuthSession(t *testing.T) {
	cfg := config.Default()
	cfg.Passcode = "dirtnap"
	ts := newTestServerWithConfig(t, cfg)

	resp := doRequest(t, ts, http.MethodPost, "/api/auth", map[string]string{"passcode": "wrong"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status %d for a bad passcode, got %d", http.StatusUnauthorized, resp.StatusCode)
	}
	resp.Body.Close()

	resp = doRequest(t, ts, http.MethodPost, "/api/auth", map[string]string{"passcode": "dirtnap"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	var session *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "dirt_session" {
			session = cookie
		}
	}
	resp.Body.Close()
	if session == nil {
		t.Fatal("expected a dirt_session cookie")
	}

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/games", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.AddCookie(session)
	cookieResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	if cookieResp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d with session cookie, got %d", http.StatusOK, cookieResp.StatusCode)
	}
	cookieResp.Body.Close()
}

func TestUnlockRedirect(t *testing.T) {
	cfg := config.Default()
	cfg.Passcode = "dirtnap"
	ts := newTestServerWithConfig(t, cfg)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("get home: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/unlock" {
		t.Fatalf("expected redirect to /unlock, got %q", loc)
	}
}

func TestNoPasscodeMeansOpen(t *testing.T) {
	ts := newTestServer(t)

	resp := doRequest(t, ts, http.MethodGet, "/api/games", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	resp.Body.Close()
}
