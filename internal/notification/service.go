package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	notificationmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/notification"
	"github.com/adisakb/e-sarabun/internal/core/events"
)

type Repository interface {
	Notifications() []notificationmodel.Item
	NotificationCount() int
	PrependNotification(item notificationmodel.Item) error
	ClearNotifications() error
}

// Service maintains the audit trail: exactly one entry per document
// creation, newest first, unbounded, clearable only in bulk.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// HandleDocumentCreated snapshots the created document into a trail entry.
// It runs synchronously with the creating mutation via the event bus.
func (s *Service) HandleDocumentCreated(ctx context.Context, event events.Event) error {
	created, ok := event.(*events.DocumentCreatedEvent)
	if !ok {
		return fmt.Errorf("expected DocumentCreatedEvent, got %T", event)
	}

	doc := created.Document
	item := notificationmodel.Item{
		ID:        uuid.New().String(),
		CreatedAt: ThaiTimestamp(s.now()),
		Subject:   doc.Subject,
		From:      doc.From,
		To:        doc.To,
		Type:      doc.Type,
		Owner:     doc.Owner,
	}

	if err := s.repo.PrependNotification(item); err != nil {
		s.logger.Error("failed to append audit entry", "error", err, "document_id", doc.ID)
		return err
	}

	s.logger.Info("audit entry recorded", "document_id", doc.ID, "subject", doc.Subject)
	return nil
}

func (s *Service) RegisterEventHandlers(bus *events.EventBus) {
	bus.Subscribe(events.EventTypeDocumentCreated, s.HandleDocumentCreated)
}

func (s *Service) List() []notificationmodel.Item {
	return s.repo.Notifications()
}

// Count backs the unread-style indicator; there is no per-item read state,
// only "trail non-empty".
func (s *Service) Count() int {
	return s.repo.NotificationCount()
}

func (s *Service) ClearAll() error {
	return s.repo.ClearNotifications()
}

// ThaiTimestamp renders the moment in the th-TH short form the registry has
// always shown: day/month/Buddhist-era year and a 24h clock.
func ThaiTimestamp(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d %02d:%02d:%02d",
		t.Day(), int(t.Month()), t.Year()+543,
		t.Hour(), t.Minute(), t.Second())
}
