package document

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/adisakb/e-sarabun/internal"
	documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"
	"github.com/adisakb/e-sarabun/internal/transport"
)

type ServiceAPI interface {
	CreateDocument(ctx context.Context, owner string, dto CreateDocumentDTO) (*documentmodel.Document, error)
	ListDocuments(params FilterParams) []documentmodel.Document
	AllDocuments() []documentmodel.Document
	GetByID(id string) (*documentmodel.Document, error)
	UpdateStatus(id string, dto UpdateStatusDTO) error
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

type DocumentsResponse struct {
	Documents []documentmodel.Document `json:"documents"`
	Total     int                      `json:"total"`
}

// ListDocuments handles GET /documents?type=&search=&status=&priority=
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docType := documentmodel.DocType(r.URL.Query().Get("type"))
	if docType == "" {
		docType = documentmodel.TypeInbox
	}
	if !docType.Valid() {
		h.WriteError(w, http.StatusBadRequest, "type must be INBOX or OUTBOX")
		return
	}

	params := FilterParams{
		Type:     docType,
		Search:   r.URL.Query().Get("search"),
		Status:   queryOrAll(r, "status"),
		Priority: queryOrAll(r, "priority"),
	}

	docs := h.Service.ListDocuments(params)
	h.WriteJSON(w, http.StatusOK, DocumentsResponse{Documents: docs, Total: len(docs)})
}

func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var dto CreateDocumentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	owner := internal.UserNameFromContext(r.Context())
	if owner == "" {
		h.WriteError(w, http.StatusUnauthorized, "missing authenticated user")
		return
	}

	doc, err := h.Service.CreateDocument(r.Context(), owner, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, doc)
}

func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Service.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, doc)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var dto UpdateStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.UpdateStatus(chi.URLParam(r, "id"), dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func queryOrAll(r *http.Request, name string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return FilterAll
}
