package domain_test

import (
	"testing"
	"time"

	"github.com/mygbu/authcore/domain"
	"github.com/stretchr/testify/require"
)

func testUser(ut domain.UserType) domain.User {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	return domain.User{
		ID:        "usr-001",
		UserType:  ut,
		Email:     "someone@gbu.ac.in",
		FirstName: "Asha",
		LastName:  "Verma",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testStudent(ut domain.UserType) *domain.Student {
	return &domain.Student{
		ID:               "stu-001",
		EnrollmentNumber: "GBU2021001",
		User:             testUser(ut),
		Course:           "B.Tech",
		Branch:           "CSE",
		Semester:         5,
		Year:             3,
		RollNumber:       "2150001",
	}
}

func testFaculty(ut domain.UserType) *domain.Faculty {
	return &domain.Faculty{
		ID:         "fac-001",
		EmployeeID: "EMP042",
		User:       testUser(ut),
		Department: "CSE",
	}
}

func testAdmin(ut domain.UserType) *domain.Admin {
	return &domain.Admin{
		ID:         "adm-001",
		EmployeeID: "EMP007",
		User:       testUser(ut),
		Role:       domain.AdminRoleAcademic,
	}
}

func TestResolveProfile(t *testing.T) {
	t.Parallel()

	t.Run("student", func(t *testing.T) {
		p, err := domain.ResolveProfile(domain.UserTypeStudent, testStudent(domain.UserTypeStudent), nil, nil)
		require.NoError(t, err)
		require.Equal(t, domain.UserTypeStudent, p.Type)
		require.NotNil(t, p.Student)
		require.Nil(t, p.Faculty)
		require.Nil(t, p.Admin)
		require.Equal(t, "usr-001", p.User().ID)
	})

	t.Run("faculty", func(t *testing.T) {
		p, err := domain.ResolveProfile(domain.UserTypeFaculty, nil, testFaculty(domain.UserTypeFaculty), nil)
		require.NoError(t, err)
		require.Equal(t, domain.UserTypeFaculty, p.Type)
		require.NotNil(t, p.Faculty)
	})

	t.Run("admin", func(t *testing.T) {
		p, err := domain.ResolveProfile(domain.UserTypeAdmin, nil, nil, testAdmin(domain.UserTypeAdmin))
		require.NoError(t, err)
		require.Equal(t, domain.UserTypeAdmin, p.Type)
		require.NotNil(t, p.Admin)
	})

	t.Run("no payload", func(t *testing.T) {
		_, err := domain.ResolveProfile(domain.UserTypeStudent, nil, nil, nil)
		require.ErrorIs(t, err, domain.ErrSchemaMismatch)
	})

	t.Run("multiple payloads", func(t *testing.T) {
		_, err := domain.ResolveProfile(
			domain.UserTypeStudent,
			testStudent(domain.UserTypeStudent),
			testFaculty(domain.UserTypeFaculty),
			nil,
		)
		require.ErrorIs(t, err, domain.ErrSchemaMismatch)
	})

	t.Run("wrong variant for type", func(t *testing.T) {
		// Faculty payload supplied for a student login.
		_, err := domain.ResolveProfile(domain.UserTypeStudent, nil, testFaculty(domain.UserTypeFaculty), nil)
		require.ErrorIs(t, err, domain.ErrSchemaMismatch)
	})

	t.Run("embedded user type disagrees", func(t *testing.T) {
		_, err := domain.ResolveProfile(domain.UserTypeStudent, testStudent(domain.UserTypeFaculty), nil, nil)
		require.ErrorIs(t, err, domain.ErrSchemaMismatch)
	})

	t.Run("invalid user type", func(t *testing.T) {
		_, err := domain.ResolveProfile(domain.UserType("staff"), testStudent(domain.UserTypeStudent), nil, nil)
		require.ErrorIs(t, err, domain.ErrSchemaMismatch)
	})
}

func TestParseUserType(t *testing.T) {
	t.Parallel()

	for _, ut := range domain.UserTypes {
		parsed, err := domain.ParseUserType(ut.String())
		require.NoError(t, err)
		require.Equal(t, ut, parsed)
		require.True(t, parsed.Valid())
	}

	_, err := domain.ParseUserType("registrar")
	require.Error(t, err)
	require.False(t, domain.UserType("").Valid())
}

func TestDisplayNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Student", domain.UserTypeStudent.DisplayName())
	require.Equal(t, "Faculty", domain.UserTypeFaculty.DisplayName())
	require.Equal(t, "Admin", domain.UserTypeAdmin.DisplayName())
	require.Equal(t, "Super Admin", domain.AdminRoleSuper.DisplayName())
	require.Equal(t, "Asha Verma", testUser(domain.UserTypeStudent).FullName())
}
