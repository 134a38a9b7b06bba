package types

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// CreatedAtLayout is the layout of User.CreatedAt.
const CreatedAtLayout = "2006-01-02 15:04:05"

// User represents an account in the system.
// It contains identity, role, and audit metadata.
type User struct {
	// ID is the unique identifier of the user.
	ID int64 `json:"id" db:"id"`

	// Username is the unique, case-sensitive login name.
	Username string `json:"username" db:"username"`

	// PasswordHash stores the digest of the user's password.
	// This field is never exposed in listings.
	PasswordHash string `json:"-" db:"password_hash"`

	// Email is the user's optional email address.
	Email *string `json:"email,omitempty" db:"email"`

	// Role is either "admin" or "user".
	Role string `json:"role" db:"role"`

	// CreatedAt is the local creation time formatted with CreatedAtLayout.
	CreatedAt string `json:"created_at" db:"created_at"`
}

// UserInfo is the identity returned by a successful login.
type UserInfo struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Role     string `json:"role" db:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (u UserInfo) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NewUser carries the fields needed to register an account.
type NewUser struct {
	Username string
	Password string
	Email    *string
	Role     string
}
