package notification

import (
	"net/http"

	notificationmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/notification"
	"github.com/adisakb/e-sarabun/internal/transport"
)

type ServiceAPI interface {
	List() []notificationmodel.Item
	Count() int
	ClearAll() error
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

type NotificationsResponse struct {
	Notifications []notificationmodel.Item `json:"notifications"`
	Count         int                      `json:"count"`
}

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	items := h.Service.List()
	h.WriteJSON(w, http.StatusOK, NotificationsResponse{
		Notifications: items,
		Count:         len(items),
	})
}

func (h *Handler) GetCount(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, map[string]int{"count": h.Service.Count()})
}

func (h *Handler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.ClearAll(); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
