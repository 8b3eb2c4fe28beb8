package user

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/adisakb/e-sarabun/internal"
	"github.com/adisakb/e-sarabun/internal/transport"
)

type ServiceAPI interface {
	List() []UserResponse
	GetByID(id string) (*UserResponse, error)
	Register(dto RegisterDTO) (*UserResponse, error)
	Delete(id string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, UsersResponse{Users: h.Service.List()})
}

func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.WriteError(w, http.StatusUnauthorized, "missing authenticated user")
		return
	}

	u, err := h.Service.GetByID(userID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(chi.URLParam(r, "id")); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
