package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/aldarwish/Studio-BookingService/internal/api/handlers"
	"github.com/aldarwish/Studio-BookingService/internal/domain"
)

// Заголовки, проставляемые внешним session/auth слоем
const (
	HeaderOperatorName = "X-Operator-Name"
	HeaderOperatorRank = "X-Operator-Rank"
)

type identityCtxKey struct{}

// Identity middleware извлекает личность оператора из заголовков
// и кладет её в context; запросы без личности отклоняются
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.Header.Get(HeaderOperatorName))
		if name == "" {
			handlers.RespondUnauthorized(w, "отсутствует идентификация оператора")
			return
		}

		rank := strings.TrimSpace(r.Header.Get(HeaderOperatorRank))
		if rank == "" {
			rank = domain.RankStaff
		}

		identity := domain.Identity{Name: name, Rank: rank}
		ctx := context.WithValue(r.Context(), identityCtxKey{}, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity возвращает личность оператора из context
func GetIdentity(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(domain.Identity)
	return identity, ok
}
