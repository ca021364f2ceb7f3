package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/leadssu-webmaster/internal/usecases/authenticating"
	"github.com/vfg2006/leadssu-webmaster/pkg/apiErrors"
	"github.com/vfg2006/leadssu-webmaster/pkg/log"
	"github.com/vfg2006/leadssu-webmaster/pkg/middleware"
)

type LoginRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(req.ClientID, req.ClientSecret)
		if err != nil {
			logger.WithFields(log.Fields{
				"client_id": req.ClientID,
				"error":     err.Error(),
			}).Warn("auth: login failed")
			handleLoginError(w, err)
			return
		}

		writeJSON(w, logger, map[string]string{
			"token": token,
		})
	}
}

// GetMe devolve as claims do token usado na requisição
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
			return
		}

		writeJSON(w, log.ForContext(r.Context()), map[string]any{
			"client_id":  claims.ClientID,
			"expires_at": claims.ExpiresAt,
		})
	}
}

func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details map[string]any
		if authErr.ClientID != "" {
			details = map[string]any{"client_id": authErr.ClientID}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}
