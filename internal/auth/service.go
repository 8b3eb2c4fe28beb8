package auth

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/adisakb/e-sarabun/internal"
	usermodel "github.com/adisakb/e-sarabun/internal/core/datamodel/user"
)

// UserDirectory is the slice of the record store the auth flow needs.
type UserDirectory interface {
	UserByUsername(username string) (usermodel.User, bool)
	UserByID(id string) (usermodel.User, bool)
}

// CredentialVerifier compares a stored credential against a presented
// password. The registry historically compared plaintext; this capability
// exists so the stored form is always a hash.
type CredentialVerifier interface {
	Verify(storedHash, password string) bool
}

type BcryptVerifier struct{}

func (BcryptVerifier) Verify(storedHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}

type TokenGenerator interface {
	GenerateAccessToken(userID string) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

func NewJWTTokenGenerator(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &JWTTokenGenerator{
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		AccessTokenTTL:     accessTTL,
		RefreshTokenTTL:    refreshTTL,
	}
}

func (j *JWTTokenGenerator) GenerateAccessToken(userID string) (string, error) {
	return j.signed(userID, j.AccessTokenTTL, j.AccessTokenSecret)
}

func (j *JWTTokenGenerator) GenerateRefreshToken(userID string) (string, error) {
	return j.signed(userID, j.RefreshTokenTTL, j.RefreshTokenSecret)
}

func (j *JWTTokenGenerator) signed(userID string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken accepts tokens signed with either secret so a refresh token
// can be validated by the same path. An expired verdict is final: the token
// verified under that secret, so trying the other one would only mask the
// expiry as a signature failure.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	claims, err := j.parse(tokenString, j.AccessTokenSecret)
	if err == nil || errors.Is(err, internal.ErrTokenExpired) {
		return claims, err
	}
	return j.parse(tokenString, j.RefreshTokenSecret)
}

func (j *JWTTokenGenerator) parse(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, internal.ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, internal.ErrInvalidToken
	}
	return claims, nil
}

type Service struct {
	users    UserDirectory
	verifier CredentialVerifier
	tokens   TokenGenerator
	logger   *slog.Logger
}

func NewService(users UserDirectory, verifier CredentialVerifier, tokens TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger,
	}
}

// Authenticate validates credentials and returns tokens. Unknown username
// and wrong password produce the same error: the login page never reveals
// which part failed.
func (s *Service) Authenticate(dto LoginDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, found := s.users.UserByUsername(strings.TrimSpace(dto.Username))
	if !found {
		return nil, internal.ErrInvalidCredentials
	}

	if !s.verifier.Verify(u.PasswordHash, strings.TrimSpace(dto.Password)) {
		return nil, internal.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(u.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user authenticated", "user_id", u.ID, "role", u.Role)
	return &LoginResponse{
		AuthTokens: *tokens,
		UserID:     u.ID,
		Name:       u.Name,
		Role:       u.Role,
		Department: u.Department,
	}, nil
}

func (s *Service) RefreshTokens(refreshToken string) (*AuthTokens, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(claims.UserID)
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateToken(tokenString)
}

func (s *Service) UserForToken(tokenString string) (*usermodel.User, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	u, found := s.users.UserByID(claims.UserID)
	if !found {
		return nil, internal.ErrInvalidToken
	}
	return &u, nil
}

func (s *Service) issueTokens(userID string) (*AuthTokens, error) {
	accessToken, err := s.tokens.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
