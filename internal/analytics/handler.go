package analytics

import (
	"net/http"

	"github.com/adisakb/e-sarabun/internal/transport"
)

type ServiceAPI interface {
	Summary() Summary
	TimeSeries() TimeSeries
	Insights() Insights
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

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.Summary())
}

func (h *Handler) GetTimeSeries(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.TimeSeries())
}

func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.Insights())
}
