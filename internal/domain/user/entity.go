package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"      // Full access: user management and payroll mutation
	RoleSupervisor Role = "supervisor" // Read-only access to all payroll records
	RoleGuest      Role = "guest"      // Self-service: own records only ("pengguna")
)

// ValidRoles is the closed set accepted on user create/update.
var ValidRoles = []Role{RoleAdmin, RoleSupervisor, RoleGuest}

func IsValidRole(r Role) bool {
	for _, v := range ValidRoles {
		if v == r {
			return true
		}
	}
	return false
}

type User struct {
	ID                 int64
	Name               string
	Email              *string
	PasswordHash       string
	RegistrationNumber string
	Rank               *string
	Role               Role
	ProfilePhoto       *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
