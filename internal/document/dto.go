package document

import (
	"time"

	"github.com/adisakb/e-sarabun/internal"
	documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"
)

// FilterAll is the sentinel that disables a status or priority filter.
const FilterAll = "ALL"

// FilterParams is one view context over a registry book.
type FilterParams struct {
	Type     documentmodel.DocType
	Search   string
	Status   string
	Priority string
}

type AttachmentDTO struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

type CreateDocumentDTO struct {
	RegisterNo  string          `json:"registerNo"`
	DocNo       string          `json:"docNo"`
	Subject     string          `json:"subject"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Priority    string          `json:"priority"`
	Category    string          `json:"category"`
	Attachments []AttachmentDTO `json:"attachments"`
	Tags        []string        `json:"tags"`
}

// Validate guards the write path; read-side computations assume well-formed
// documents and are never re-validated.
func (dto CreateDocumentDTO) Validate() error {
	if dto.RegisterNo == "" {
		return internal.NewValidationError("registerNo is required", internal.ErrCodeValidationFailed)
	}
	if dto.Subject == "" {
		return internal.NewValidationError("subject is required", internal.ErrCodeValidationFailed)
	}
	if dto.Date == "" {
		return internal.NewValidationError("date is required", internal.ErrCodeValidationFailed)
	}
	if _, err := time.Parse("2006-01-02", dto.Date); err != nil {
		return internal.NewValidationError("date must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	if !documentmodel.DocType(dto.Type).Valid() {
		return internal.NewValidationError("type must be INBOX or OUTBOX", internal.ErrCodeInvalidDocType)
	}
	if dto.Priority != "" && !documentmodel.Priority(dto.Priority).Valid() {
		return internal.NewValidationError("invalid priority", internal.ErrCodeInvalidPriority)
	}
	if dto.Category == "" {
		return internal.NewValidationError("category is required", internal.ErrCodeValidationFailed)
	}
	for _, a := range dto.Attachments {
		t := documentmodel.AttachmentType(a.Type)
		if t != documentmodel.AttachmentPDF && t != documentmodel.AttachmentImage {
			return internal.NewValidationError("attachment type must be PDF or IMAGE", internal.ErrCodeValidationFailed)
		}
	}
	return nil
}

type UpdateStatusDTO struct {
	Status string `json:"status"`
}

func (dto UpdateStatusDTO) Validate() error {
	if !documentmodel.Status(dto.Status).Valid() {
		return internal.NewValidationError("invalid status", internal.ErrCodeInvalidStatus)
	}
	return nil
}
