package middleware

import (
	"net/http"
	"strings"
)

const (
	AdminPrefix   = "/admin"
	LoginPath     = "/admin/login"
	RegisterPath  = "/admin/register"
	AdminHomePath = "/admin"
)

// Decision is the gate's routing verdict for one request.
type Decision struct {
	Forward  bool
	Redirect string
}

var forward = Decision{Forward: true}

// Gate decides routing for a request from its path and whether the session
// cookie is present. It is a pure function: it never consults the store, so
// it stays cheap enough to run on every request. A fabricated cookie gets
// past the redirect, but every mutating handler still validates the token
// (see Session.Authenticate).
func Gate(path string, hasCookie bool) Decision {
	if !isAdminPath(path) {
		return forward
	}

	if path == LoginPath || path == RegisterPath {
		if hasCookie {
			// Already signed in, no reason to see the login form.
			return Decision{Redirect: AdminHomePath}
		}
		return forward
	}

	if hasCookie {
		return forward
	}
	return Decision{Redirect: LoginPath}
}

func isAdminPath(path string) bool {
	return path == AdminPrefix || strings.HasPrefix(path, AdminPrefix+"/")
}

// AdminGate applies Gate in front of the whole router, the same way the
// security-header middleware wraps it.
func AdminGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := r.Cookie(SessionCookie)
		d := Gate(r.URL.Path, err == nil)
		if !d.Forward {
			http.Redirect(w, r, d.Redirect, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
