package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okr-tracker-api/internal/policy"
	"github.com/okr-tracker-api/internal/repository"
)

type actorKey struct{}

// Actor middleware разрешает аутентифицированного актора по заголовку
// X-User-ID. Аутентификация выполняется внешним коллаборатором; здесь
// личность только загружается и помещается в контекст запроса.
func Actor(userRepo repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("X-User-ID")
			if header == "" {
				http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
				return
			}

			userID, err := strconv.ParseInt(header, 10, 64)
			if err != nil {
				http.Error(w, `{"error":"invalid user id"}`, http.StatusUnauthorized)
				return
			}

			user, err := userRepo.GetActiveByID(r.Context(), userID)
			if err != nil {
				http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), actorKey{}, policy.ActorFromUser(user))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFrom извлекает актора из контекста запроса
func ActorFrom(ctx context.Context) (policy.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(policy.Actor)
	return actor, ok
}
