package category

import (
	"log/slog"
	"strings"

	"github.com/adisakb/e-sarabun/internal"
)

type Repository interface {
	Categories() []string
	HasCategory(name string) bool
	AppendCategory(name string) error
	RemoveCategory(name string) error
}

// Service manages the ordered category set. Names are plain strings, unique
// case-sensitively, kept in insertion order.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) List() []string {
	return s.repo.Categories()
}

func (s *Service) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return internal.NewValidationError("category name is required", internal.ErrCodeValidationFailed)
	}

	if err := s.repo.AppendCategory(name); err != nil {
		s.logger.Warn("category insertion rejected", "name", name, "error", err)
		return err
	}

	s.logger.Info("category added", "name", name)
	return nil
}

// Delete removes the category even when documents still reference it.
// Documents keep the category name they were registered under; the dangling
// reference is an accepted invariant, not cleaned up here.
func (s *Service) Delete(name string) error {
	if err := s.repo.RemoveCategory(name); err != nil {
		return err
	}

	s.logger.Info("category deleted", "name", name)
	return nil
}
