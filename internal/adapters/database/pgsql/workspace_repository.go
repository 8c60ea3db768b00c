package pgsql

import (
	"context"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	portsrepo "github.com/fiscly/fiscly_backend/internal/core/ports/repositories"
	"github.com/fiscly/fiscly_backend/internal/models"
	"github.com/fiscly/fiscly_backend/internal/utils/mapping"
)

type PgxWorkspaceRepository struct {
	BaseRepository
}

func newPgxWorkspaceRepository(pool DB) *PgxWorkspaceRepository {
	return &PgxWorkspaceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxWorkspaceRepository implements portsrepo.WorkspaceRepositoryFacade
var _ portsrepo.WorkspaceRepositoryFacade = (*PgxWorkspaceRepository)(nil)

const workspaceColumns = `workspace_id, owner_user_id, name, default_currency_code, email, address, tax_id, logo_url,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveWorkspace inserts a workspace, or updates its profile when it already exists.
func (r *PgxWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	m := mapping.ToModelWorkspace(workspace)
	query := `
		INSERT INTO workspaces (` + workspaceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (workspace_id) DO UPDATE SET
			name = EXCLUDED.name,
			default_currency_code = EXCLUDED.default_currency_code,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			tax_id = EXCLUDED.tax_id,
			logo_url = EXCLUDED.logo_url,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.WorkspaceID,
		m.OwnerUserID,
		m.Name,
		m.DefaultCurrencyCode,
		m.Email,
		m.Address,
		m.TaxID,
		m.LogoURL,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "save workspace "+m.WorkspaceID)
	}
	return nil
}

// FindWorkspaceByID retrieves a workspace by its ID.
func (r *PgxWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces WHERE workspace_id = $1;`
	return r.findOne(ctx, query, workspaceID)
}

// FindWorkspaceByOwner retrieves the workspace owned by a user.
func (r *PgxWorkspaceRepository) FindWorkspaceByOwner(ctx context.Context, ownerUserID string) (*domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces WHERE owner_user_id = $1;`
	return r.findOne(ctx, query, ownerUserID)
}

func (r *PgxWorkspaceRepository) findOne(ctx context.Context, query string, arg string) (*domain.Workspace, error) {
	var m models.Workspace
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.WorkspaceID,
		&m.OwnerUserID,
		&m.Name,
		&m.DefaultCurrencyCode,
		&m.Email,
		&m.Address,
		&m.TaxID,
		&m.LogoURL,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err, "find workspace "+arg)
	}
	workspace := mapping.ToDomainWorkspace(m)
	return &workspace, nil
}
