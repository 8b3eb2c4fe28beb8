package user_test

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/adisakb/e-sarabun/internal"
	usermodel "github.com/adisakb/e-sarabun/internal/core/datamodel/user"
	"github.com/adisakb/e-sarabun/internal/user"
)

func TestUserService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Service Suite")
}

// MockRepository implements user.Repository for testing, mirroring the
// store's duplicate and admin rules.
type MockRepository struct {
	users []usermodel.User
}

func (m *MockRepository) Users() []usermodel.User {
	return m.users
}

func (m *MockRepository) UserByID(id string) (usermodel.User, bool) {
	for _, u := range m.users {
		if u.ID == id {
			return u, true
		}
	}
	return usermodel.User{}, false
}

func (m *MockRepository) AppendUser(u usermodel.User) error {
	for _, existing := range m.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return internal.ErrDuplicateUsername
		}
	}
	m.users = append(m.users, u)
	return nil
}

func (m *MockRepository) RemoveUser(id string) error {
	for i, u := range m.users {
		if u.ID == id {
			if u.Role == usermodel.RoleAdmin {
				return internal.ErrAdminUndeletable
			}
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return internal.ErrUserNotFound
}

var _ = Describe("User Service", func() {
	var (
		mockRepo *MockRepository
		service  *user.Service
	)

	BeforeEach(func() {
		mockRepo = &MockRepository{
			users: []usermodel.User{
				{ID: "u1", Name: "อดิศักดิ์", Username: "adisak", Role: usermodel.RoleAdmin},
				{ID: "u2", Name: "เจ้าหน้าที่", Username: "staff", Role: usermodel.RoleStaff},
			},
		}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = user.NewService(mockRepo, logger, bcrypt.MinCost)
	})

	Describe("Register", func() {
		validDTO := func() user.RegisterDTO {
			return user.RegisterDTO{
				Name:       "คนใหม่",
				Username:   "newcomer",
				Password:   "s3cret",
				Department: "ธุรการ",
			}
		}

		It("creates a STAFF account", func() {
			resp, err := service.Register(validDTO())

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Role).To(Equal(usermodel.RoleStaff))
			Expect(resp.ID).NotTo(BeEmpty())
			Expect(mockRepo.users).To(HaveLen(3))
		})

		It("stores the password only as a verifiable bcrypt hash", func() {
			_, err := service.Register(validDTO())

			Expect(err).NotTo(HaveOccurred())
			stored := mockRepo.users[2]
			Expect(stored.PasswordHash).NotTo(Equal("s3cret"))
			Expect(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret"))).To(Succeed())
		})

		It("rejects a duplicate username regardless of case", func() {
			dto := validDTO()
			dto.Username = "ADISAK"

			_, err := service.Register(dto)

			Expect(err).To(MatchError(internal.ErrDuplicateUsername))
			Expect(mockRepo.users).To(HaveLen(2))
		})

		It("rejects missing required fields", func() {
			dto := validDTO()
			dto.Password = ""

			_, err := service.Register(dto)

			Expect(err).To(HaveOccurred())
			Expect(mockRepo.users).To(HaveLen(2))
		})
	})

	Describe("List", func() {
		It("never exposes password hashes", func() {
			mockRepo.users[0].PasswordHash = "some-hash"

			out := service.List()

			Expect(out).To(HaveLen(2))
			Expect(out[0].Username).To(Equal("adisak"))
			// UserResponse carries no hash field at all; spot-check the shape.
			Expect(out[0]).To(Equal(user.ToResponse(mockRepo.users[0])))
		})
	})

	Describe("Delete", func() {
		It("removes a STAFF account", func() {
			Expect(service.Delete("u2")).To(Succeed())

			Expect(mockRepo.users).To(HaveLen(1))
		})

		It("refuses to delete an ADMIN account", func() {
			err := service.Delete("u1")

			Expect(err).To(MatchError(internal.ErrAdminUndeletable))
			Expect(mockRepo.users).To(HaveLen(2))
		})

		It("returns not-found for an unknown id", func() {
			err := service.Delete("missing")

			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})
	})

	Describe("GetByID", func() {
		It("returns the account when present", func() {
			resp, err := service.GetByID("u1")

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Username).To(Equal("adisak"))
		})

		It("returns not-found otherwise", func() {
			_, err := service.GetByID("missing")

			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})
	})
})
