package settings

import (
	"encoding/json"
	"net/http"

	sysconfigmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/sysconfig"
	"github.com/adisakb/e-sarabun/internal/transport"
)

type ServiceAPI interface {
	Get() sysconfigmodel.SystemConfig
	Update(dto UpdateConfigDTO) (sysconfigmodel.SystemConfig, error)
	ResetAll() error
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

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.Get())
}

func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var dto UpdateConfigDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	config, err := h.Service.Update(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, config)
}

// ResetSystem wipes the stores back to seed data. Admin only; the router
// gates it.
func (h *Handler) ResetSystem(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.ResetAll(); err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
