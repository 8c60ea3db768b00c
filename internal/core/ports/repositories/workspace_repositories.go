package repositories

import (
	"context"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
)

// WorkspaceReader defines read operations for workspace data
type WorkspaceReader interface {
	// FindWorkspaceByID retrieves a workspace by its ID.
	FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)

	// FindWorkspaceByOwner retrieves the workspace owned by a user.
	FindWorkspaceByOwner(ctx context.Context, ownerUserID string) (*domain.Workspace, error)
}

// WorkspaceWriter defines write operations for workspace data
type WorkspaceWriter interface {
	// SaveWorkspace inserts or updates a workspace.
	SaveWorkspace(ctx context.Context, workspace domain.Workspace) error
}

// WorkspaceRepositoryFacade combines all workspace-related repository interfaces
type WorkspaceRepositoryFacade interface {
	WorkspaceReader
	WorkspaceWriter
}
