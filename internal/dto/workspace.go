package dto

import (
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
)

// UpdateWorkspaceRequest defines the company profile fields a user can change.
// Nil fields are left as they are.
type UpdateWorkspaceRequest struct {
	Name                *string `json:"name" binding:"omitempty,max=255"`
	DefaultCurrencyCode *string `json:"defaultCurrencyCode" binding:"omitempty,currency_code"`
	Email               *string `json:"email" binding:"omitempty,email"`
	Address             *string `json:"address"`
	TaxID               *string `json:"taxID" binding:"omitempty,max=64"`
	LogoURL             *string `json:"logoURL" binding:"omitempty,url"`
}

// WorkspaceResponse defines the data returned for a workspace.
type WorkspaceResponse struct {
	WorkspaceID         string    `json:"workspaceID"`
	Name                string    `json:"name"`
	DefaultCurrencyCode string    `json:"defaultCurrencyCode"`
	Email               string    `json:"email"`
	Address             string    `json:"address"`
	TaxID               string    `json:"taxID"`
	LogoURL             string    `json:"logoURL"`
	CreatedAt           time.Time `json:"createdAt"`
	LastUpdatedAt       time.Time `json:"lastUpdatedAt"`
}

func ToWorkspaceResponse(ws *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		WorkspaceID:         ws.WorkspaceID,
		Name:                ws.Name,
		DefaultCurrencyCode: ws.DefaultCurrencyCode,
		Email:               ws.Email,
		Address:             ws.Address,
		TaxID:               ws.TaxID,
		LogoURL:             ws.LogoURL,
		CreatedAt:           ws.CreatedAt,
		LastUpdatedAt:       ws.LastUpdatedAt,
	}
}
