package user

import (
	"github.com/adisakb/e-sarabun/internal"
	usermodel "github.com/adisakb/e-sarabun/internal/core/datamodel/user"
)

type RegisterDTO struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Department string `json:"department"`
}

func (dto RegisterDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	if dto.Username == "" {
		return internal.NewValidationError("username is required", internal.ErrCodeValidationFailed)
	}
	if dto.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// UserResponse is the transport shape; the password hash never leaves the
// service.
type UserResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Username   string         `json:"username"`
	Role       usermodel.Role `json:"role"`
	Department string         `json:"department"`
}

func ToResponse(u usermodel.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		Role:       u.Role,
		Department: u.Department,
	}
}
