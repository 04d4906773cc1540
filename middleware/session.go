package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// SessionCookie is the admin session cookie name.
const SessionCookie = "admin-session"

// SessionTTL bounds how long a login lasts.
const SessionTTL = 12 * time.Hour

type ContextKey string

const AccountIDKey ContextKey = "accountId"

// Claims is what the session cookie carries.
type Claims struct {
	Email     string `json:"email"`
	AccountID string `json:"accountId"`
	jwt.RegisteredClaims
}

// Session signs and validates admin session tokens.
type Session struct {
	secret []byte
}

func NewSession(secret string) *Session {
	return &Session{secret: []byte(secret)}
}

// Token issues a signed session token for an account.
func (s *Session) Token(accountID, email string) (string, error) {
	claims := &Claims{
		Email:     email,
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse validates a token string and returns its claims.
func (s *Session) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Authenticate guards mutating admin handlers. The edge gate only checks
// cookie presence; this is where the token signature is actually verified.
func (s *Session) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil {
			http.Error(w, "Missing session", http.StatusUnauthorized)
			return
		}

		claims, err := s.Parse(cookie.Value)
		if err != nil {
			http.Error(w, "Invalid session", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), AccountIDKey, claims.AccountID)
		next(w, r.WithContext(ctx), ps)
	}
}
