package model

import "strings"

// Employee is a user record as returned by GET /api/users/all.
type Employee struct {
	ID         Text      `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	MiddleName string    `json:"middleName,omitempty"`
	Email      string    `json:"email"`
	UserType   string    `json:"userType,omitempty"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Status     string    `json:"status"`
	CreatedAt  Timestamp `json:"createdAt,omitempty"`
	UpdatedAt  Timestamp `json:"updatedAt,omitempty"`
}

// FullName joins first and last name with a single space.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// EmployeeID returns the record identifier for row actions.
func EmployeeID(e Employee) string { return string(e.ID) }
