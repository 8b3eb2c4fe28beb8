package user

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adisakb/e-sarabun/internal"
	usermodel "github.com/adisakb/e-sarabun/internal/core/datamodel/user"
)

type Repository interface {
	Users() []usermodel.User
	UserByID(id string) (usermodel.User, bool)
	AppendUser(u usermodel.User) error
	RemoveUser(id string) error
}

type Service struct {
	repo       Repository
	logger     *slog.Logger
	bcryptCost int
}

func NewService(repo Repository, logger *slog.Logger, bcryptCost int) *Service {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

func (s *Service) List() []UserResponse {
	users := s.repo.Users()
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToResponse(u))
	}
	return out
}

func (s *Service) GetByID(id string) (*UserResponse, error) {
	u, ok := s.repo.UserByID(id)
	if !ok {
		return nil, internal.ErrUserNotFound
	}
	resp := ToResponse(u)
	return &resp, nil
}

// Register creates a STAFF user. The password is stored only as a bcrypt
// hash; duplicate usernames (case-insensitive) are rejected without any
// state change.
func (s *Service) Register(dto RegisterDTO) (*UserResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	u := usermodel.User{
		ID:           uuid.New().String(),
		Name:         dto.Name,
		Username:     strings.TrimSpace(dto.Username),
		PasswordHash: string(hash),
		Role:         usermodel.RoleStaff,
		Department:   dto.Department,
	}

	if err := s.repo.AppendUser(u); err != nil {
		s.logger.Warn("registration rejected", "username", u.Username, "error", err)
		return nil, err
	}

	s.logger.Info("user registered", "user_id", u.ID, "username", u.Username)
	resp := ToResponse(u)
	return &resp, nil
}

// Delete removes a user. ADMIN accounts are undeletable, which protects the
// seed administrator.
func (s *Service) Delete(id string) error {
	if err := s.repo.RemoveUser(id); err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}
