package dto

import (
	"time"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
)

// CreateParkRequest defines the data needed to register a park.
type CreateParkRequest struct {
	Name       string  `json:"name" binding:"required,max=120"`
	City       *string `json:"city,omitempty" binding:"omitempty,max=80"`
	State      *string `json:"state,omitempty" binding:"omitempty,len=2"`
	ClientCNPJ string  `json:"clientCnpj" binding:"required,cnpj"`
}

// UpdateParkRequest defines the fields that can be changed on a park.
type UpdateParkRequest struct {
	Name       *string `json:"name,omitempty" binding:"omitempty,min=1,max=120"`
	City       *string `json:"city,omitempty" binding:"omitempty,max=80"`
	State      *string `json:"state,omitempty" binding:"omitempty,len=2"`
	ClientCNPJ *string `json:"clientCnpj,omitempty" binding:"omitempty,cnpj"`
}

// ParkResponse defines the data returned for a park.
type ParkResponse struct {
	ParkID        int64     `json:"parkId"`
	Name          string    `json:"name"`
	City          *string   `json:"city,omitempty"`
	State         *string   `json:"state,omitempty"`
	ClientCNPJ    string    `json:"clientCnpj"`
	ClientName    string    `json:"clientName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToParkResponse converts a domain.Park to ParkResponse DTO
func ToParkResponse(p *domain.Park) ParkResponse {
	return ParkResponse{
		ParkID:        p.ParkID,
		Name:          p.Name,
		City:          p.City,
		State:         p.State,
		ClientCNPJ:    p.ClientCNPJ,
		ClientName:    p.ClientName,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListParkResponse converts parks to response DTOs.
func ToListParkResponse(parks []domain.Park) []ParkResponse {
	res := make([]ParkResponse, len(parks))
	for i := range parks {
		res[i] = ToParkResponse(&parks[i])
	}
	return res
}
