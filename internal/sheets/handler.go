package sheets

import (
	"net/http"

	"github.com/adisakb/e-sarabun/internal/transport"
)

type ClientAPI interface {
	Enabled() bool
	LastResult() *PushResult
}

type Handler struct {
	*transport.BaseHandler
	Client ClientAPI
}

func NewHandler(baseHandler *transport.BaseHandler, client ClientAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Client:      client,
	}
}

type StatusResponse struct {
	Enabled    bool        `json:"enabled"`
	LastResult *PushResult `json:"last_result,omitempty"`
}

// GetStatus reports the last delivery outcome; this is the service-side
// stand-in for the transient toast the old UI showed after a sync.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, StatusResponse{
		Enabled:    h.Client.Enabled(),
		LastResult: h.Client.LastResult(),
	})
}
