package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/verdantgoods/storefront/internal/entities"
)

// SessionCookie names the guest cart session cookie.
const SessionCookie = "cart_session"

// UserHeader carries the authenticated user id, set by the auth gateway
// in front of this service. Not trusted from the open internet.
const UserHeader = "X-User-ID"

type identityKey struct{}

// Session resolves the shopper's identity: a uuid cart session cookie
// (minted on first contact) plus the optional gateway user id header.
// lifetime is the guest cart TTL, so the cookie and the cart row expire
// together.
func Session(lifetime time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := entities.Identity{}

			if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
				identity.SessionToken = cookie.Value
			} else if !identityFromHeader(r).Authenticated() {
				// Guests always get a token; a fresh authenticated request
				// has nothing to merge, so no cookie is needed.
				identity.SessionToken = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    identity.SessionToken,
					Path:     "/",
					MaxAge:   int(lifetime.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			identity.UserID = identityFromHeader(r).UserID

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func identityFromHeader(r *http.Request) entities.Identity {
	var identity entities.Identity
	if v := r.Header.Get(UserHeader); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
			identity.UserID = id
		}
	}
	return identity
}

func IdentityFromContext(ctx context.Context) entities.Identity {
	identity, _ := ctx.Value(identityKey{}).(entities.Identity)
	return identity
}

// ExpireSessionCookie invalidates the guest session token after a merge
// so it can never be merged again.
func ExpireSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
