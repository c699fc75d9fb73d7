package domain

// Park is a venue owned by a client where the work is done.
type Park struct {
	ParkID     int64   `json:"parkId"`
	Name       string  `json:"name"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	ClientCNPJ string  `json:"clientCnpj"`
	ClientName string  `json:"clientName,omitempty"`
	AuditFields
}
