// internal/user/handler.go
//
// chi handlers for the user endpoints, speaking a small JSON envelope
// {code, message, data}.  DTO constraints are checked here so the service
// only ever sees well-formed input.
package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/yanizio/authd/internal/auth"
)

// Routes mounts register, login, and the authenticated profile endpoint.
func Routes(svc *Service, tokens *auth.TokenService) chi.Router {
	r := chi.NewRouter()
	r.Post("/register", handleRegister(svc))
	r.Post("/login", handleLogin(svc))
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens))
		r.Get("/me", handleProfile(svc))
	})
	return r
}

type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func handleRegister(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		resp, err := svc.Register(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, envelope{
			Code:    http.StatusCreated,
			Message: "registered",
			Data:    resp,
		})
	}
}

func handleLogin(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		resp, err := svc.Login(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, envelope{
			Code:    http.StatusOK,
			Message: "ok",
			Data:    resp,
		})
	}
}

func handleProfile(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.UserID(r.Context())
		if !ok {
			// RequireAuth guarantees the id; reaching here is a wiring bug.
			writeJSON(w, http.StatusUnauthorized, envelope{
				Code:    http.StatusUnauthorized,
				Message: "not authenticated",
			})
			return
		}
		resp, err := svc.Profile(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, envelope{
			Code:    http.StatusOK,
			Message: "ok",
			Data:    resp,
		})
	}
}

// decodeAndValidate parses the body into dst and runs validator tags.
// Writes the error response itself and reports whether to continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{
			Code:    http.StatusBadRequest,
			Message: "malformed request body",
		})
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		msg := "validation failed"
		if errors.As(err, &verrs) && len(verrs) > 0 {
			msg = "validation failed on field " + verrs[0].Field()
		}
		writeJSON(w, http.StatusUnprocessableEntity, envelope{
			Code:    http.StatusUnprocessableEntity,
			Message: msg,
		})
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUserExists):
		writeJSON(w, http.StatusConflict, envelope{
			Code: http.StatusConflict, Message: err.Error(),
		})
	case errors.Is(err, ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, envelope{
			Code: http.StatusUnauthorized, Message: err.Error(),
		})
	case errors.Is(err, ErrUserDisabled):
		writeJSON(w, http.StatusForbidden, envelope{
			Code: http.StatusForbidden, Message: err.Error(),
		})
	default:
		zap.S().Errorw("user handler error", "err", err)
		writeJSON(w, http.StatusInternalServerError, envelope{
			Code: http.StatusInternalServerError, Message: "internal error",
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
