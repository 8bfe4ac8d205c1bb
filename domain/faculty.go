package domain

import "time"

// Faculty is the role record accompanying a faculty session.
type Faculty struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employeeId"`
	User           User      `json:"user"`
	Department     string    `json:"department"`
	Designation    string    `json:"designation"`
	JoiningDate    time.Time `json:"joiningDate"`
	Qualification  []string  `json:"qualification"`
	Specialization []string  `json:"specialization"`
	PhoneNumber    string    `json:"phoneNumber"`
	OfficeLocation *string   `json:"officeLocation,omitempty"`
	Subjects       []Subject `json:"subjects"`
}

// Subject is a course unit taught by a faculty member.
type Subject struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Credits  int    `json:"credits"`
	Semester int    `json:"semester"`
}
