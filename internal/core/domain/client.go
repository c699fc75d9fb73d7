package domain

// Client is a company that contracts assembly work. Clients are keyed by CNPJ.
type Client struct {
	CNPJ         string  `json:"cnpj"`
	Name         string  `json:"name"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	Email        *string `json:"email,omitempty"`
	AuditFields
}
