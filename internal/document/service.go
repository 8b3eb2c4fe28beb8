package document

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/adisakb/e-sarabun/internal"
	documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"
	"github.com/adisakb/e-sarabun/internal/core/events"
)

// Repository is the slice of the record store the document service needs.
type Repository interface {
	Documents() []documentmodel.Document
	DocumentByID(id string) (documentmodel.Document, bool)
	PrependDocument(doc documentmodel.Document) error
	UpdateDocumentStatus(id string, status documentmodel.Status) error
	HasCategory(name string) bool
}

type EventPublisher interface {
	PublishSync(ctx context.Context, event events.Event) error
}

type Service struct {
	repo   Repository
	bus    EventPublisher
	logger *slog.Logger
}

func NewService(repo Repository, bus EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

// CreateDocument registers a new document under the given owner. The
// document always starts PENDING; the category must exist at creation time
// (later category deletion leaves the reference dangling, accepted).
// Subscribers to the created event run in lock-step, but their failure never
// rolls back the registration.
func (s *Service) CreateDocument(ctx context.Context, owner string, dto CreateDocumentDTO) (*documentmodel.Document, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("document validation failed", "error", err, "owner", owner)
		return nil, err
	}

	if !s.repo.HasCategory(dto.Category) {
		return nil, internal.NewValidationError("unknown category", internal.ErrCodeUnknownCategory)
	}

	priority := documentmodel.Priority(dto.Priority)
	if dto.Priority == "" {
		priority = documentmodel.PriorityNormal
	}

	attachments := make([]documentmodel.Attachment, 0, len(dto.Attachments))
	for _, a := range dto.Attachments {
		attachments = append(attachments, documentmodel.Attachment{
			ID:   uuid.New().String(),
			Name: a.Name,
			Type: documentmodel.AttachmentType(a.Type),
			URL:  a.URL,
		})
	}

	tags := dto.Tags
	if tags == nil {
		tags = []string{}
	}

	doc := documentmodel.Document{
		ID:          uuid.New().String(),
		RegisterNo:  dto.RegisterNo,
		DocNo:       dto.DocNo,
		Subject:     dto.Subject,
		From:        dto.From,
		To:          dto.To,
		Date:        dto.Date,
		Type:        documentmodel.DocType(dto.Type),
		Status:      documentmodel.StatusPending,
		Priority:    priority,
		Category:    dto.Category,
		Owner:       owner,
		Attachments: attachments,
		Tags:        tags,
	}

	if err := s.repo.PrependDocument(doc); err != nil {
		s.logger.Error("failed to persist document", "error", err, "register_no", doc.RegisterNo)
		return nil, err
	}

	if err := s.bus.PublishSync(ctx, events.NewDocumentCreatedEvent(doc)); err != nil {
		// Side effects are best-effort; the registration already happened.
		s.logger.Warn("created-event handler failed", "error", err, "document_id", doc.ID)
	}

	s.logger.Info("document registered",
		"document_id", doc.ID,
		"register_no", doc.RegisterNo,
		"type", doc.Type,
		"owner", owner)

	return &doc, nil
}

// ListDocuments returns the filtered view for one registry book, preserving
// the canonical newest-first order.
func (s *Service) ListDocuments(params FilterParams) []documentmodel.Document {
	return Filter(s.repo.Documents(), params)
}

// AllDocuments returns the full canonical collection, newest-first.
func (s *Service) AllDocuments() []documentmodel.Document {
	return s.repo.Documents()
}

func (s *Service) GetByID(id string) (*documentmodel.Document, error) {
	doc, ok := s.repo.DocumentByID(id)
	if !ok {
		return nil, internal.ErrDocumentNotFound
	}
	return &doc, nil
}

func (s *Service) UpdateStatus(id string, dto UpdateStatusDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}
	if err := s.repo.UpdateDocumentStatus(id, documentmodel.Status(dto.Status)); err != nil {
		return err
	}

	s.logger.Info("document status updated", "document_id", id, "status", dto.Status)
	return nil
}
