package export

import (
	"net/http"

	documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"
	"github.com/adisakb/e-sarabun/internal/transport"
)

type DocumentSource interface {
	AllDocuments() []documentmodel.Document
}

type Handler struct {
	*transport.BaseHandler
	Documents DocumentSource
}

func NewHandler(baseHandler *transport.BaseHandler, documents DocumentSource) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Documents:   documents,
	}
}

// ExportCSV streams the full registry as a CSV download.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="documents.csv"`)
	w.WriteHeader(http.StatusOK)

	if err := WriteCSV(w, h.Documents.AllDocuments()); err != nil {
		h.Logger.Error("csv export failed", "error", err)
	}
}
