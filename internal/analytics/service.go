package analytics

import (
	"log/slog"

	documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"
)

type Repository interface {
	Documents() []documentmodel.Document
}

// Service recomputes every report from the canonical collection on each
// request. There is no caching and no incremental maintenance; the
// collection is small and the math is one pass.
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

func (s *Service) Summary() Summary {
	return Summarize(s.repo.Documents())
}

func (s *Service) TimeSeries() TimeSeries {
	return BuildTimeSeries(s.repo.Documents())
}

func (s *Service) Insights() Insights {
	return ComputeInsights(s.repo.Documents())
}
