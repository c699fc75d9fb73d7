package dto

import (
	"time"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
)

// CreateClientRequest defines the data needed to register a client.
type CreateClientRequest struct {
	CNPJ         string  `json:"cnpj" binding:"required,cnpj"`
	Name         string  `json:"name" binding:"required,max=150"`
	ContactPhone *string `json:"contactPhone,omitempty" binding:"omitempty,max=20"`
	Email        *string `json:"email,omitempty" binding:"omitempty,email,max=150"`
}

// UpdateClientRequest defines the fields that can be changed on a client.
type UpdateClientRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=150"`
	ContactPhone *string `json:"contactPhone,omitempty" binding:"omitempty,max=20"`
	Email        *string `json:"email,omitempty" binding:"omitempty,email,max=150"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	CNPJ          string    `json:"cnpj"`
	Name          string    `json:"name"`
	ContactPhone  *string   `json:"contactPhone,omitempty"`
	Email         *string   `json:"email,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		CNPJ:          c.CNPJ,
		Name:          c.Name,
		ContactPhone:  c.ContactPhone,
		Email:         c.Email,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

// ToListClientResponse converts a slice of domain.Client to a slice of ClientResponse DTOs
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
