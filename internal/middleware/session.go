package middleware

import (
	"context"
	"net/http"

	"github.com/baharkarakas/blog-backend/internal/auth"
	"github.com/baharkarakas/blog-backend/internal/models"
)

type userKey struct{}

// WithUser attaches the current user to the request context.
func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFrom returns the current user, if one was attached by CurrentUser.
func UserFrom(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey{}).(models.User)
	return u, ok
}

type userLoader interface {
	GetByID(ctx context.Context, id int64) (models.User, error)
}

type SessionMiddleware struct {
	sessions *auth.Sessions
	users    userLoader
}

func NewSessionMiddleware(sessions *auth.Sessions, users userLoader) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, users: users}
}

// CurrentUser runs before every request. A valid session cookie loads the
// user into the context; a missing cookie, a bad token, or a user that no
// longer exists all leave the request anonymous. A cookie that names a
// vanished user is cleared so the browser stops sending it.
func (m *SessionMiddleware) CurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(auth.CookieName)
		if err != nil || c.Value == "" {
			next.ServeHTTP(w, r)
			return
		}
		uid, err := m.sessions.Parse(c.Value)
		if err != nil {
			m.sessions.ClearCookie(w)
			next.ServeHTTP(w, r)
			return
		}
		u, err := m.users.GetByID(r.Context(), uid)
		if err != nil {
			m.sessions.ClearCookie(w)
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}

// RequireLogin guards a route: anonymous requests are redirected to the
// login page instead of getting a 401.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFrom(r.Context()); !ok {
			http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
