package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access role of a platform account.
type Role string

const (
	RoleBusiness  Role = "business"
	RoleAdmin     Role = "admin"
	RoleJudge     Role = "judge"
	RoleModerator Role = "moderator"
)

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	UserPending   UserStatus = "pending"
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
	UserRejected  UserStatus = "rejected"
	UserVerified  UserStatus = "verified"
)

// User is a platform account. Verified gates nomination creation for
// business accounts.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      Role
	Status    UserStatus
	Verified  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
