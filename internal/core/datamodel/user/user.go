package user

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleStaff  Role = "STAFF"
	RoleBoss   Role = "BOSS"
	RoleViewer Role = "VIEWER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleBoss, RoleViewer:
		return true
	}
	return false
}

// User is an identity record. PasswordHash is a bcrypt hash; the cleartext
// password is never stored.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Role         Role   `json:"role"`
	Department   string `json:"department"`
}
