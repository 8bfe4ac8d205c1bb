package transport

import (
	"time"

	"github.com/mygbu/authcore/domain"
)

// LoginRequest is the body for POST {base}/auth/login. Exactly one of
// EnrollmentNumber/EmployeeID is populated, chosen by UserType.
type LoginRequest struct {
	EnrollmentNumber *string         `json:"enrollmentNumber,omitempty"`
	EmployeeID       *string         `json:"employeeId,omitempty"`
	Password         string          `json:"password"`
	UserType         domain.UserType `json:"userType"`
}

// NewLoginRequest places identifier into the slot matching ut: the
// enrollment-number slot for students, the employee-id slot otherwise.
func NewLoginRequest(identifier, password string, ut domain.UserType) LoginRequest {
	req := LoginRequest{
		Password: password,
		UserType: ut,
	}
	if ut == domain.UserTypeStudent {
		req.EnrollmentNumber = &identifier
	} else {
		req.EmployeeID = &identifier
	}
	return req
}

// Identifier returns whichever identifier slot is populated.
func (r LoginRequest) Identifier() string {
	if r.EnrollmentNumber != nil {
		return *r.EnrollmentNumber
	}
	if r.EmployeeID != nil {
		return *r.EmployeeID
	}
	return ""
}

// LoginResponse is the body returned by both the login and validate
// endpoints. When Success is true the backend must include User and
// exactly one role record matching the user's type; enforcement of that
// contract lives with the session manager.
type LoginResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Token     *string         `json:"token,omitempty"`
	User      *domain.User    `json:"user,omitempty"`
	Student   *domain.Student `json:"student,omitempty"`
	Faculty   *domain.Faculty `json:"faculty,omitempty"`
	Admin     *domain.Admin   `json:"admin,omitempty"`
	ExpiresAt *time.Time      `json:"expiresAt,omitempty"`
}

// ResetRequest is the body for POST {base}/auth/reset-password. The
// identifier slot rules match LoginRequest.
type ResetRequest struct {
	EnrollmentNumber *string         `json:"enrollmentNumber,omitempty"`
	EmployeeID       *string         `json:"employeeId,omitempty"`
	UserType         domain.UserType `json:"userType"`
}

// NewResetRequest builds a ResetRequest with the identifier in the slot
// matching ut.
func NewResetRequest(identifier string, ut domain.UserType) ResetRequest {
	req := ResetRequest{UserType: ut}
	if ut == domain.UserTypeStudent {
		req.EnrollmentNumber = &identifier
	} else {
		req.EmployeeID = &identifier
	}
	return req
}

// ResetResponse acknowledges a password reset request.
type ResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
