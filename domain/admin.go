package domain

import "time"

// Admin is the role record accompanying an admin session.
type Admin struct {
	ID          string       `json:"id"`
	EmployeeID  string       `json:"employeeId"`
	User        User         `json:"user"`
	Department  string       `json:"department"`
	Role        AdminRole    `json:"role"`
	Permissions []Permission `json:"permissions"`
	JoiningDate time.Time    `json:"joiningDate"`
}

// AdminRole is the administrative tier within the admin role.
type AdminRole string

const (
	AdminRoleSuper    AdminRole = "super_admin"
	AdminRoleAcademic AdminRole = "academic_admin"
	AdminRoleFinance  AdminRole = "finance_admin"
	AdminRoleLibrary  AdminRole = "library_admin"
	AdminRoleHostel   AdminRole = "hostel_admin"
)

// DisplayName returns the human-readable tier name.
func (r AdminRole) DisplayName() string {
	switch r {
	case AdminRoleSuper:
		return "Super Admin"
	case AdminRoleAcademic:
		return "Academic Admin"
	case AdminRoleFinance:
		return "Finance Admin"
	case AdminRoleLibrary:
		return "Library Admin"
	case AdminRoleHostel:
		return "Hostel Admin"
	default:
		return string(r)
	}
}

// Permission grants an admin access to one ERP module action.
type Permission struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Module      string `json:"module"`
}
