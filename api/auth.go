package api

import (
	"net/http"
	"strings"
)

// requireAdmin guards a route behind a bearer session token. On success
// the decoded claims are attached to the request context.
func (a *API) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			a.writeJSON(w, r, http.StatusUnauthorized, messageBody{Message: "Token não fornecido"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) < 2 {
			a.writeJSON(w, r, http.StatusUnauthorized, messageBody{Message: "Token inválido ou expirado"})
			return
		}

		claims, err := a.signer.Validate(parts[1])
		if err != nil {
			a.writeJSON(w, r, http.StatusUnauthorized, messageBody{Message: "Token inválido ou expirado"})
			return
		}

		next(w, r.WithContext(ctxWithClaims(r.Context(), claims)))
	}
}
