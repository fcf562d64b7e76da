package web_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/baharkarakas/blog-backend/internal/auth"
	"github.com/baharkarakas/blog-backend/internal/config"
	"github.com/baharkarakas/blog-backend/internal/repository/repotest"
	"github.com/baharkarakas/blog-backend/internal/services"
	"github.com/baharkarakas/blog-backend/internal/web"
)

type fixture struct {
	ts    *httptest.Server
	users *repotest.Users
	posts *repotest.Posts
}

func setup(t *testing.T) *fixture {
	t.Helper()
	users := repotest.NewUsers()
	posts := repotest.NewPosts(users)

	r := web.NewRouter(web.RouterDeps{
		Cfg:      config.Config{Env: "test", RateRPS: 0},
		Users:    services.NewUserService(users),
		Posts:    services.NewPostService(posts),
		Sessions: auth.NewSessions("test-secret", time.Hour),
	})
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return &fixture{ts: ts, users: users, posts: posts}
}

// client returns an http client with its own cookie jar, i.e. one browser.
func (f *fixture) client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func (f *fixture) postForm(t *testing.T, c *http.Client, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := c.PostForm(f.ts.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func (f *fixture) get(t *testing.T, c *http.Client, path string) *http.Response {
	t.Helper()
	resp, err := c.Get(f.ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func (f *fixture) register(t *testing.T, c *http.Client, username, password string) {
	t.Helper()
	resp := f.postForm(t, c, "/auth/register", url.Values{
		"username": {username}, "password": {password},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register %s: status %d", username, resp.StatusCode)
	}
	resp.Body.Close()
}

func (f *fixture) login(t *testing.T, c *http.Client, username, password string) {
	t.Helper()
	resp := f.postForm(t, c, "/auth/login", url.Values{
		"username": {username}, "password": {password},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", username, resp.StatusCode)
	}
	resp.Body.Close()
}

func TestHealth(t *testing.T) {
	f := setup(t)
	resp := f.get(t, f.client(t), "/health")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("/health status = %d, want 200", resp.StatusCode)
	}
	if got := body(t, resp); got != "ok" {
		t.Errorf("/health body = %q, want ok", got)
	}
}

func TestRegisterLoginCreateUpdateDelete(t *testing.T) {
	f := setup(t)
	alice := f.client(t)
	bob := f.client(t)

	// register + login
	f.register(t, alice, "alice", "pw1")
	if f.users.Count() != 1 {
		t.Fatalf("user count = %d, want 1", f.users.Count())
	}
	f.login(t, alice, "alice", "pw1")

	// index shows the session in the nav
	if got := body(t, f.get(t, alice, "/")); !strings.Contains(got, "alice") {
		t.Error("index does not show the logged-in username")
	}

	// create
	resp := f.postForm(t, alice, "/blog/create", url.Values{
		"title": {"Hello"}, "body": {"World"},
	})
	resp.Body.Close()
	if f.posts.Count() != 1 {
		t.Fatalf("post count after create = %d, want 1", f.posts.Count())
	}
	if got := body(t, f.get(t, alice, "/blog/1")); !strings.Contains(got, "Hello") || !strings.Contains(got, "World") {
		t.Error("post page missing title or body")
	}

	// update by the owner
	resp = f.postForm(t, alice, "/blog/1/update", url.Values{
		"title": {"Bye"}, "body": {"World"},
	})
	resp.Body.Close()
	if got := body(t, f.get(t, alice, "/blog/1")); !strings.Contains(got, "Bye") {
		t.Error("post page missing updated title")
	}

	// delete by another authenticated user is forbidden
	f.register(t, bob, "bob", "pw2")
	f.login(t, bob, "bob", "pw2")
	resp = f.postForm(t, bob, "/blog/1/delete", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("delete by non-owner status = %d, want 403", resp.StatusCode)
	}
	if f.posts.Count() != 1 {
		t.Errorf("post count after forbidden delete = %d, want 1", f.posts.Count())
	}

	// delete by the owner
	resp = f.postForm(t, alice, "/blog/1/delete", nil)
	resp.Body.Close()
	if f.posts.Count() != 0 {
		t.Errorf("post count after delete = %d, want 0", f.posts.Count())
	}
}

func TestRegisterErrors(t *testing.T) {
	f := setup(t)
	c := f.client(t)
	f.register(t, c, "alice", "pw1")

	tests := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantCount  int
	}{
		{"duplicate username", url.Values{"username": {"alice"}, "password": {"pw2"}}, http.StatusConflict, 1},
		{"empty username", url.Values{"username": {""}, "password": {"pw"}}, http.StatusBadRequest, 1},
		{"empty password", url.Values{"username": {"carol"}, "password": {""}}, http.StatusBadRequest, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := f.postForm(t, c, "/auth/register", tt.form)
			resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if f.users.Count() != tt.wantCount {
				t.Errorf("user count = %d, want %d", f.users.Count(), tt.wantCount)
			}
		})
	}
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	f := setup(t)
	c := f.client(t)
	f.register(t, c, "alice", "pw1")

	wrongPw := f.postForm(t, c, "/auth/login", url.Values{
		"username": {"alice"}, "password": {"nope"},
	})
	unknown := f.postForm(t, c, "/auth/login", url.Values{
		"username": {"ghost"}, "password": {"pw1"},
	})
	if wrongPw.StatusCode != http.StatusUnauthorized || unknown.StatusCode != http.StatusUnauthorized {
		t.Fatalf("statuses = %d/%d, want 401/401", wrongPw.StatusCode, unknown.StatusCode)
	}
	msg := "Incorrect username or password."
	if got := body(t, wrongPw); !strings.Contains(got, msg) {
		t.Errorf("wrong-password page missing %q", msg)
	}
	if got := body(t, unknown); !strings.Contains(got, msg) {
		t.Errorf("unknown-user page missing %q", msg)
	}
}

func TestCreateRequiresLogin(t *testing.T) {
	f := setup(t)
	c := f.client(t)

	resp := f.get(t, c, "/blog/create")
	defer resp.Body.Close()
	if resp.Request.URL.Path != "/auth/login" {
		t.Errorf("anonymous /blog/create landed on %q, want /auth/login", resp.Request.URL.Path)
	}
}

func TestCreateEmptyTitle(t *testing.T) {
	f := setup(t)
	c := f.client(t)
	f.register(t, c, "alice", "pw1")
	f.login(t, c, "alice", "pw1")

	resp := f.postForm(t, c, "/blog/create", url.Values{"title": {""}, "body": {"b"}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if got := body(t, resp); !strings.Contains(got, "Title is required.") {
		t.Error("form re-render missing the validation message")
	}
	if f.posts.Count() != 0 {
		t.Errorf("post count = %d, want 0", f.posts.Count())
	}
}

func TestUpdateNonexistent(t *testing.T) {
	f := setup(t)
	c := f.client(t)
	f.register(t, c, "alice", "pw1")
	f.login(t, c, "alice", "pw1")

	resp := f.postForm(t, c, "/blog/99/update", url.Values{"title": {"X"}})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("update nonexistent status = %d, want 404", resp.StatusCode)
	}

	resp = f.get(t, c, "/blog/99")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("view nonexistent status = %d, want 404", resp.StatusCode)
	}
}

func TestLogout(t *testing.T) {
	f := setup(t)
	c := f.client(t)
	f.register(t, c, "alice", "pw1")
	f.login(t, c, "alice", "pw1")

	resp := f.postForm(t, c, "/auth/logout", nil)
	resp.Body.Close()

	// session gone: guarded page redirects to login
	resp = f.get(t, c, "/blog/create")
	defer resp.Body.Close()
	if resp.Request.URL.Path != "/auth/login" {
		t.Errorf("after logout /blog/create landed on %q, want /auth/login", resp.Request.URL.Path)
	}

	// logout again is a no-op
	resp = f.postForm(t, c, "/auth/logout", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("second logout status = %d, want 200 after redirect", resp.StatusCode)
	}
}

func TestIndexNewestFirst(t *testing.T) {
	f := setup(t)
	c := f.client(t)
	f.register(t, c, "alice", "pw1")
	f.login(t, c, "alice", "pw1")

	resp := f.postForm(t, c, "/blog/create", url.Values{"title": {"first-post"}, "body": {""}})
	resp.Body.Close()
	resp = f.postForm(t, c, "/blog/create", url.Values{"title": {"second-post"}, "body": {""}})
	resp.Body.Close()
	f.posts.SetCreated(1, time.Now().Add(-time.Hour))

	got := body(t, f.get(t, c, "/"))
	i, j := strings.Index(got, "second-post"), strings.Index(got, "first-post")
	if i < 0 || j < 0 {
		t.Fatalf("index missing posts: second at %d, first at %d", i, j)
	}
	if i > j {
		t.Error("index lists the older post before the newer one")
	}
}
