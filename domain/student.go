package domain

import "time"

// Student is the role record accompanying a student session.
type Student struct {
	ID               string       `json:"id"`
	EnrollmentNumber string       `json:"enrollmentNumber"`
	User             User         `json:"user"`
	Course           string       `json:"course"`
	Branch           string       `json:"branch"`
	Semester         int          `json:"semester"`
	Year             int          `json:"year"`
	Section          *string      `json:"section,omitempty"`
	RollNumber       string       `json:"rollNumber"`
	AdmissionDate    time.Time    `json:"admissionDate"`
	DateOfBirth      time.Time    `json:"dateOfBirth"`
	PhoneNumber      string       `json:"phoneNumber"`
	Address          Address      `json:"address"`
	GuardianInfo     GuardianInfo `json:"guardianInfo"`
	AcademicInfo     AcademicInfo `json:"academicInfo"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

type GuardianInfo struct {
	Name         string  `json:"name"`
	Relationship string  `json:"relationship"`
	PhoneNumber  string  `json:"phoneNumber"`
	Email        *string `json:"email,omitempty"`
	Occupation   *string `json:"occupation,omitempty"`
}

// AcademicInfo is the running academic summary for a student. CGPA is
// nil until the first semester results are published.
type AcademicInfo struct {
	CGPA             *float64 `json:"cgpa,omitempty"`
	TotalCredits     int      `json:"totalCredits"`
	CompletedCredits int      `json:"completedCredits"`
	Backlogs         int      `json:"backlogs"`
	Attendance       float64  `json:"attendance"`
}
