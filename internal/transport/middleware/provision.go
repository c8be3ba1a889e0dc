package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/greenthumb-backend/pkg/ctxutil"
)

type userProvisioner interface {
	EnsureUser(ctx context.Context, userID uuid.UUID) error
}

// ProvisionUser makes sure the authenticated user has a stored profile before
// the request reaches a handler. Users provisioned by this process are
// remembered in an LRU of at most cacheSize entries and not re-checked.
// Anonymous requests pass through untouched.
func ProvisionUser(p userProvisioner, cacheSize int) Middleware {
	seen, err := lru.New[uuid.UUID, struct{}](max(cacheSize, 1))
	if err != nil {
		panic(err) // size is always positive
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := ctxutil.UserIDFromCtx(r.Context())
			if !ok || seen.Contains(userID) {
				next.ServeHTTP(w, r)
				return
			}
			if err := p.EnsureUser(r.Context(), userID); err != nil {
				writeJSONError(w, http.StatusInternalServerError, "internal error")
				return
			}
			seen.Add(userID, struct{}{})
			next.ServeHTTP(w, r)
		})
	}
}
