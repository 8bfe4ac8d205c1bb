package domain

import "fmt"

// UserType discriminates the three account roles. The set is closed: a
// user's type never changes after account creation, role changes mean a
// new account record.
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeFaculty UserType = "faculty"
	UserTypeAdmin   UserType = "admin"
)

// UserTypes lists every valid UserType in a stable order.
var UserTypes = []UserType{UserTypeStudent, UserTypeFaculty, UserTypeAdmin}

// ParseUserType validates and returns a UserType from its wire form.
func ParseUserType(s string) (UserType, error) {
	ut := UserType(s)
	if !ut.Valid() {
		return "", fmt.Errorf("domain: unknown user type %q", s)
	}
	return ut, nil
}

// Valid reports whether ut is one of the closed set of roles.
func (ut UserType) Valid() bool {
	switch ut {
	case UserTypeStudent, UserTypeFaculty, UserTypeAdmin:
		return true
	default:
		return false
	}
}

// DisplayName returns the human-readable role name.
func (ut UserType) DisplayName() string {
	switch ut {
	case UserTypeStudent:
		return "Student"
	case UserTypeFaculty:
		return "Faculty"
	case UserTypeAdmin:
		return "Admin"
	default:
		return string(ut)
	}
}

func (ut UserType) String() string { return string(ut) }
