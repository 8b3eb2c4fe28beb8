package auth_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/adisakb/e-sarabun/internal"
	"github.com/adisakb/e-sarabun/internal/auth"
	usermodel "github.com/adisakb/e-sarabun/internal/core/datamodel/user"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Service Suite")
}

// MockDirectory implements auth.UserDirectory for testing
type MockDirectory struct {
	users []usermodel.User
}

func (m *MockDirectory) UserByUsername(username string) (usermodel.User, bool) {
	for _, u := range m.users {
		if u.Username == username {
			return u, true
		}
	}
	return usermodel.User{}, false
}

func (m *MockDirectory) UserByID(id string) (usermodel.User, bool) {
	for _, u := range m.users {
		if u.ID == id {
			return u, true
		}
	}
	return usermodel.User{}, false
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

var _ = Describe("Auth Service", func() {
	var (
		directory *MockDirectory
		tokenGen  *auth.JWTTokenGenerator
		service   *auth.Service
	)

	BeforeEach(func() {
		directory = &MockDirectory{
			users: []usermodel.User{
				{
					ID:           "u1",
					Name:         "อดิศักดิ์",
					Username:     "adisak",
					PasswordHash: mustHash("4152"),
					Role:         usermodel.RoleAdmin,
					Department:   "บริหาร",
				},
			},
		}
		tokenGen = auth.NewJWTTokenGenerator("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = auth.NewService(directory, auth.BcryptVerifier{}, tokenGen, logger)
	})

	Describe("Authenticate", func() {
		It("returns tokens and the signed-in identity for valid credentials", func() {
			resp, err := service.Authenticate(auth.LoginDTO{Username: "adisak", Password: "4152"})

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.AccessToken).NotTo(BeEmpty())
			Expect(resp.RefreshToken).NotTo(BeEmpty())
			Expect(resp.UserID).To(Equal("u1"))
			Expect(resp.Name).To(Equal("อดิศักดิ์"))
			Expect(resp.Role).To(Equal(usermodel.RoleAdmin))
		})

		It("trims surrounding whitespace from the credentials", func() {
			_, err := service.Authenticate(auth.LoginDTO{Username: "  adisak  ", Password: " 4152 "})

			Expect(err).NotTo(HaveOccurred())
		})

		It("returns the same generic error for an unknown username", func() {
			_, err := service.Authenticate(auth.LoginDTO{Username: "nobody", Password: "4152"})

			Expect(err).To(MatchError(internal.ErrInvalidCredentials))
		})

		It("returns the same generic error for a wrong password", func() {
			_, err := service.Authenticate(auth.LoginDTO{Username: "adisak", Password: "wrong"})

			Expect(err).To(MatchError(internal.ErrInvalidCredentials))
		})

		It("rejects empty credentials before hitting the directory", func() {
			_, err := service.Authenticate(auth.LoginDTO{})

			Expect(err).To(HaveOccurred())
			Expect(err).NotTo(MatchError(internal.ErrInvalidCredentials))
		})
	})

	Describe("token lifecycle", func() {
		It("round-trips an access token back to its user", func() {
			resp, err := service.Authenticate(auth.LoginDTO{Username: "adisak", Password: "4152"})
			Expect(err).NotTo(HaveOccurred())

			u, err := service.UserForToken(resp.AccessToken)

			Expect(err).NotTo(HaveOccurred())
			Expect(u.ID).To(Equal("u1"))
		})

		It("issues a fresh pair from a refresh token", func() {
			resp, err := service.Authenticate(auth.LoginDTO{Username: "adisak", Password: "4152"})
			Expect(err).NotTo(HaveOccurred())

			tokens, err := service.RefreshTokens(resp.RefreshToken)

			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.AccessToken).NotTo(BeEmpty())
			Expect(tokens.RefreshToken).NotTo(BeEmpty())
		})

		It("rejects garbage tokens", func() {
			_, err := service.ValidateAccessToken("not-a-token")

			Expect(err).To(MatchError(internal.ErrInvalidToken))
		})

		It("rejects an expired token distinctly", func() {
			expiredGen := &auth.JWTTokenGenerator{
				AccessTokenSecret:  []byte("access-secret"),
				RefreshTokenSecret: []byte("refresh-secret"),
				AccessTokenTTL:     -time.Minute,
				RefreshTokenTTL:    -time.Minute,
			}
			token, err := expiredGen.GenerateAccessToken("u1")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)

			Expect(err).To(MatchError(internal.ErrTokenExpired))
		})

		It("rejects a token signed with a different secret", func() {
			otherGen := auth.NewJWTTokenGenerator("other-access", "other-refresh", time.Minute, time.Minute)
			token, err := otherGen.GenerateAccessToken("u1")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)

			Expect(err).To(MatchError(internal.ErrInvalidToken))
		})

		It("rejects a valid token whose user no longer exists", func() {
			token, err := tokenGen.GenerateAccessToken("gone")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.UserForToken(token)

			Expect(err).To(MatchError(internal.ErrInvalidToken))
		})
	})
})
