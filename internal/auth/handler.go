package auth

import (
	"encoding/json"
	"net/http"

	"github.com/adisakb/e-sarabun/internal"
	usermodel "github.com/adisakb/e-sarabun/internal/core/datamodel/user"
	"github.com/adisakb/e-sarabun/internal/transport"
	"github.com/adisakb/e-sarabun/internal/user"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (*LoginResponse, error)
	RefreshTokens(refreshToken string) (*AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	UserForToken(tokenString string) (*usermodel.User, error)
}

// Registrar decouples the register endpoint from the user service's
// concrete type.
type Registrar interface {
	Register(dto user.RegisterDTO) (*user.UserResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service   ServiceAPI
	Registrar Registrar
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, registrar Registrar) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		Registrar:   registrar,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Authenticate(dto)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

// Register creates a STAFF account and signs it in, mirroring the original
// registration flow.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto user.RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Registrar.Register(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	resp, err := h.Service.Authenticate(LoginDTO{Username: dto.Username, Password: dto.Password})
	if err != nil {
		h.Logger.Error("post-registration login failed", "error", err, "user_id", created.ID)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusCreated, resp)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var dto RefreshTokenDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens, err := h.Service.RefreshTokens(dto.RefreshToken)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, tokens)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.ExtractTokenFromHeader(r)
	if token == "" {
		h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
		return
	}

	if _, err := h.Service.ValidateAccessToken(token); err != nil {
		h.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AuthMiddleware resolves the bearer token to a user and injects the
// identity into the request context.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		u, err := h.Service.UserForToken(token)
		if err != nil {
			h.WriteAppError(w, err)
			return
		}

		ctx := internal.ContextWithUser(r.Context(), u.ID, u.Name, string(u.Role))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates administrative routes on the role carried in context.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if internal.UserRoleFromContext(r.Context()) != string(usermodel.RoleAdmin) {
			h.WriteError(w, http.StatusForbidden, "administrator access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
