package settings

import (
	"log/slog"
	"strings"

	"github.com/adisakb/e-sarabun/internal"
	sysconfigmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/sysconfig"
)

type Repository interface {
	Config() sysconfigmodel.SystemConfig
	SetConfig(config sysconfigmodel.SystemConfig) error
	Reset() error
}

type UpdateConfigDTO struct {
	OrgName    string `json:"orgName"`
	FiscalYear string `json:"fiscalYear"`
}

func (d UpdateConfigDTO) Validate() error {
	if strings.TrimSpace(d.OrgName) == "" {
		return internal.NewValidationError("organization name is required", internal.ErrCodeValidationFailed)
	}
	if strings.TrimSpace(d.FiscalYear) == "" {
		return internal.NewValidationError("fiscal year is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

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

func (s *Service) Get() sysconfigmodel.SystemConfig {
	return s.repo.Config()
}

func (s *Service) Update(dto UpdateConfigDTO) (sysconfigmodel.SystemConfig, error) {
	if err := dto.Validate(); err != nil {
		return sysconfigmodel.SystemConfig{}, err
	}

	config := sysconfigmodel.SystemConfig{
		OrgName:    strings.TrimSpace(dto.OrgName),
		FiscalYear: strings.TrimSpace(dto.FiscalYear),
	}
	if err := s.repo.SetConfig(config); err != nil {
		return sysconfigmodel.SystemConfig{}, err
	}

	s.logger.Info("system config updated", "org_name", config.OrgName, "fiscal_year", config.FiscalYear)
	return config, nil
}

// ResetAll discards every stored collection and restores the seed data.
func (s *Service) ResetAll() error {
	if err := s.repo.Reset(); err != nil {
		return err
	}

	s.logger.Warn("system data reset to seed state")
	return nil
}
