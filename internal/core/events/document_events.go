package events

import (
	"time"

	"github.com/google/uuid"

	documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"
)

const EventTypeDocumentCreated = "document.created"

// DocumentCreatedEvent carries the full created document so subscribers
// (audit trail, spreadsheet sink) can snapshot fields without a read-back.
type DocumentCreatedEvent struct {
	BaseEvent
	Document documentmodel.Document `json:"document"`
}

func NewDocumentCreatedEvent(doc documentmodel.Document) *DocumentCreatedEvent {
	return &DocumentCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeDocumentCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"document_id": doc.ID,
				"register_no": doc.RegisterNo,
				"doc_type":    string(doc.Type),
				"owner":       doc.Owner,
			},
		},
		Document: doc,
	}
}
