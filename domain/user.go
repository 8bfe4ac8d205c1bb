package domain

import "time"

// User is the base identity record shared by every role. ID is stable
// for the lifetime of the account and UserType is fixed post-creation.
type User struct {
	ID              string    `json:"id"`
	UserType        UserType  `json:"userType"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FullName joins the first and last name for display.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
