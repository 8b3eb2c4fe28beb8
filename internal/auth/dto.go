package auth

import usermodel "github.com/adisakb/e-sarabun/internal/core/datamodel/user"

// LoginDTO is the transport shape used by the HTTP handler to accept login
// requests.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d LoginDTO) Validate() error {
	if d.Username == "" {
		return ValidationError{Msg: "username is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}

func (d RefreshTokenDTO) Validate() error {
	if d.RefreshToken == "" {
		return ValidationError{Msg: "refresh_token is required"}
	}
	return nil
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResponse carries the tokens plus the signed-in identity the sidebar
// shows.
type LoginResponse struct {
	AuthTokens
	UserID     string         `json:"user_id"`
	Name       string         `json:"name"`
	Role       usermodel.Role `json:"role"`
	Department string         `json:"department"`
}
