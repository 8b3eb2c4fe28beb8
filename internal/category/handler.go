package category

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi"

	"github.com/adisakb/e-sarabun/internal/transport"
)

type ServiceAPI interface {
	List() []string
	Add(name string) error
	Delete(name string) error
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

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type CreateCategoryDTO struct {
	Name string `json:"name"`
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, CategoriesResponse{Categories: h.Service.List()})
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var dto CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Add(dto.Name); err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, CategoriesResponse{Categories: h.Service.List()})
}

// DeleteCategory handles DELETE /categories/{name}. Thai category names
// arrive percent-encoded in the path.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	if err := h.Service.Delete(name); err != nil {
		h.WriteAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
