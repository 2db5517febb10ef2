package entity

type UserRole string

const (
	RolePatient   UserRole = "patient"
	RoleDoctor    UserRole = "doctor"
	RoleVolunteer UserRole = "volunteer"
)

// Valid reports whether r is one of the roles accepted at signup.
func (r UserRole) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleVolunteer:
		return true
	}
	return false
}

// User is a registered account. Role is fixed at signup.
type User struct {
	BaseSimple
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
