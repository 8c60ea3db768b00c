package services

import (
	"context"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/fiscly/fiscly_backend/internal/dto"
)

// WorkspaceService manages the caller's company profile.
type WorkspaceService interface {
	// GetOrCreateWorkspace returns the caller's workspace, creating a default one on first access.
	GetOrCreateWorkspace(ctx context.Context, userID string) (*domain.Workspace, error)

	// UpdateWorkspace applies the provided fields to the caller's workspace, creating it if needed.
	UpdateWorkspace(ctx context.Context, userID string, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error)
}
