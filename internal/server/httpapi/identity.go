package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dpavlenko/bloglist/internal/common"
	"github.com/dpavlenko/bloglist/internal/server/auth"
	"github.com/dpavlenko/bloglist/internal/server/users"
)

type ctxKey string

const userKey ctxKey = "user"

// bearerPrefix is matched case-sensitively; only this exact scheme is
// recognized.
const bearerPrefix = "Bearer "

// UserSource resolves a token subject to a live user record.
// *users.Service satisfies it.
type UserSource interface {
	GetByID(ctx context.Context, id string) (*users.User, error)
}

// Resolver turns an inbound request into a resolved identity. A request
// without a recognizable Authorization header is anonymous, not an error;
// whether anonymity is acceptable is the caller's decision.
type Resolver struct {
	jwtSecret []byte
	users     UserSource
}

func NewResolver(secretKey string, source UserSource) *Resolver {
	return &Resolver{jwtSecret: []byte(secretKey), users: source}
}

// ExtractToken reads the Authorization header and returns the bearer
// token, if any. Absent or differently-shaped headers yield ok=false.
func ExtractToken(h http.Header) (string, bool) {
	value := h.Get("Authorization")
	if !strings.HasPrefix(value, bearerPrefix) {
		return "", false
	}
	token := value[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}

// Resolve verifies the request's token and loads the corresponding user.
// It returns (nil, nil) for anonymous requests, common.ErrInvalidToken
// for a token that does not verify, and common.ErrUserNotFound for a
// verified token whose subject has no user record.
func (rs *Resolver) Resolve(r *http.Request) (*users.User, error) {
	token, ok := ExtractToken(r.Header)
	if !ok {
		return nil, nil
	}

	userID, err := auth.GetUserIDFromToken(token, rs.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := rs.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.ErrInternal
	}

	return user, nil
}

// requireUser guards mutating routes: it rejects anonymous requests and
// bad tokens with 401 and injects the resolved user into the request
// context otherwise. The two rejection causes are logged separately so
// "no credential" and "bad credential" stay distinguishable.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := s.resolver.Resolve(r)
		if err != nil {
			s.logger.Warn(r.Context(), "token rejected", "reason", err.Error(), "path", r.URL.Path)
			writeError(w, err)
			return
		}
		if user == nil {
			s.logger.Warn(r.Context(), "missing credentials", "path", r.URL.Path)
			writeError(w, common.ErrUnauthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userFromContext returns the identity injected by requireUser.
func userFromContext(ctx context.Context) (*users.User, bool) {
	user, ok := ctx.Value(userKey).(*users.User)
	return user, ok
}
