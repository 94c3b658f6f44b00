package server

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	sessionCookie   = "dirt_session"
	sessionLifetime = 30 * 24 * time.Hour
)

// sessionStore tracks passcode sessions in memory. Losing them on restart
// just means re-entering the shared passcode.
type sessionStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

func newSessionStore() *sessionStore {
	return &sessionStore{tokens: make(map[string]time.Time)}
}

func (s *sessionStore) Create() string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = time.Now().Add(sessionLifetime)
	s.mu.Unlock()
	return token
}

func (s *sessionStore) Valid(token string) bool {
	if token == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	return true
}

type authRequest struct {
	Passcode string `json:"passcode"`
}

// handleAuth exchanges the shared passcode for a session cookie. The
// passcode is a trivial shared secret, not a user identity.
func (s *Server) handleAuth(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, validationError("invalid request body"))
		return
	}
	if s.cfg.Passcode == "" || !passcodeMatches(req.Passcode, s.cfg.Passcode) {
		writeError(w, unauthorizedError("invalid passcode"))
		return
	}
	token := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionLifetime / time.Second),
	})
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func passcodeMatches(provided, expected string) bool {
	provided = strings.TrimSpace(provided)
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}

// gated wraps a handler behind the passcode when one is configured. A valid
// session cookie or an X-Passcode header both pass; browser page loads that
// fail are sent to the unlock form instead of a bare 401.
func (s *Server) gated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.Passcode == "" {
			next(w, r)
			return
		}
		if header := r.Header.Get("X-Passcode"); header != "" && passcodeMatches(header, s.cfg.Passcode) {
			next(w, r)
			return
		}
		if cookie, err := r.Cookie(sessionCookie); err == nil && s.sessions.Valid(cookie.Value) {
			next(w, r)
			return
		}
		if strings.HasPrefix(r.URL.Path, "/api/") {
			writeError(w, unauthorizedError("passcode required"))
			return
		}
		http.Redirect(w, r, "/unlock", http.StatusFound)
	}
}
