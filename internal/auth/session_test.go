package auth

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSessionsRoundTrip(t *testing.T) {
	s := NewSessions("test-secret", time.Hour)

	token, err := s.Issue(42)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	uid, err := s.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if uid != 42 {
		t.Errorf("Parse() uid = %d, want 42", uid)
	}
}

func TestSessionsRejects(t *testing.T) {
	s := NewSessions("test-secret", time.Hour)
	good, err := s.Issue(7)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	expired := NewSessions("test-secret", -time.Minute)
	expiredTok, err := expired.Issue(7)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	other := NewSessions("other-secret", time.Hour)
	otherTok, err := other.Issue(7)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"tampered", good + "x"},
		{"expired", expiredTok},
		{"wrong secret", otherTok},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Parse(tt.token); err == nil {
				t.Error("Parse() accepted an invalid token")
			}
		})
	}
}

func TestSessionCookies(t *testing.T) {
	s := NewSessions("test-secret", time.Hour)

	w := httptest.NewRecorder()
	s.SetCookie(w, "tok")
	set := w.Header().Get("Set-Cookie")
	if !strings.Contains(set, CookieName+"=tok") {
		t.Errorf("SetCookie() header = %q, want %s=tok", set, CookieName)
	}
	if !strings.Contains(set, "HttpOnly") {
		t.Errorf("SetCookie() header = %q, want HttpOnly", set)
	}

	w = httptest.NewRecorder()
	s.ClearCookie(w)
	cleared := w.Header().Get("Set-Cookie")
	if !strings.Contains(cleared, "Max-Age=0") {
		t.Errorf("ClearCookie() header = %q, want Max-Age=0", cleared)
	}
}
