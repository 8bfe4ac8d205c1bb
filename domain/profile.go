package domain

import (
	"errors"
	"fmt"
)

// ErrSchemaMismatch reports a role payload that disagrees with the
// requested user type, or a payload set that is not exactly one record.
var ErrSchemaMismatch = errors.New("domain: role payload does not match user type")

// Profile is the role-discriminated record accompanying an
// authenticated session. Exactly one variant is populated, matching
// Type. Construct it through ResolveProfile so the invariant holds.
type Profile struct {
	Type    UserType
	Student *Student
	Faculty *Faculty
	Admin   *Admin
}

// ResolveProfile derives the Profile variant for ut from the role
// payloads. It fails with ErrSchemaMismatch unless exactly one payload
// is present, it is the one selected by ut, and its embedded
// User.UserType agrees with ut.
func ResolveProfile(ut UserType, student *Student, faculty *Faculty, admin *Admin) (Profile, error) {
	if !ut.Valid() {
		return Profile{}, fmt.Errorf("%w: unknown user type %q", ErrSchemaMismatch, ut)
	}

	populated := 0
	for _, present := range []bool{student != nil, faculty != nil, admin != nil} {
		if present {
			populated++
		}
	}
	if populated != 1 {
		return Profile{}, fmt.Errorf("%w: %d role payloads present, want exactly 1", ErrSchemaMismatch, populated)
	}

	p := Profile{Type: ut}
	var embedded UserType
	switch ut {
	case UserTypeStudent:
		if student == nil {
			return Profile{}, fmt.Errorf("%w: student payload missing for student user", ErrSchemaMismatch)
		}
		p.Student = student
		embedded = student.User.UserType
	case UserTypeFaculty:
		if faculty == nil {
			return Profile{}, fmt.Errorf("%w: faculty payload missing for faculty user", ErrSchemaMismatch)
		}
		p.Faculty = faculty
		embedded = faculty.User.UserType
	case UserTypeAdmin:
		if admin == nil {
			return Profile{}, fmt.Errorf("%w: admin payload missing for admin user", ErrSchemaMismatch)
		}
		p.Admin = admin
		embedded = admin.User.UserType
	}

	if embedded != ut {
		return Profile{}, fmt.Errorf("%w: payload user type %q, want %q", ErrSchemaMismatch, embedded, ut)
	}

	return p, nil
}

// User returns the base identity embedded in the populated variant.
func (p Profile) User() User {
	switch p.Type {
	case UserTypeStudent:
		if p.Student != nil {
			return p.Student.User
		}
	case UserTypeFaculty:
		if p.Faculty != nil {
			return p.Faculty.User
		}
	case UserTypeAdmin:
		if p.Admin != nil {
			return p.Admin.User
		}
	}
	return User{}
}
