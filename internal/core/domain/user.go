package domain

// User is a login account. Users are keyed by CPF and linked to the
// administrator employee holding the same CPF.
type User struct {
	CPF          string `json:"cpf"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuditFields
}
