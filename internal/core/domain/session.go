package domain

import "time"

// Session identifies the authenticated administrator on whose behalf a call is made.
// It is built by the auth middleware from the bearer token and handed to services
// explicitly; nothing reads it from global state.
type Session struct {
	UserCPF    string    `json:"cpf"`
	EmployeeID int64     `json:"employeeId"`
	Role       JobRole   `json:"role"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// Actor returns the identifier written to audit fields.
func (s Session) Actor() string {
	return s.UserCPF
}

// IsZero reports whether the session carries no identity.
func (s Session) IsZero() bool {
	return s.UserCPF == ""
}
