package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/salary-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if role != jwt.RoleAdmin || !ok {
			response.HandleError(w, auth.ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
