package mongo

import (
	"context"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	portsrepo "github.com/fiscly/fiscly_backend/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type workspaceRepository struct {
	collection *mongo.Collection
}

func newWorkspaceRepository(db *mongo.Database) *workspaceRepository {
	return &workspaceRepository{collection: db.Collection(WorkspacesCollection)}
}

var _ portsrepo.WorkspaceRepositoryFacade = (*workspaceRepository)(nil)

// SaveWorkspace upserts the workspace document.
func (r *workspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	doc := toWorkspaceDocument(workspace)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.WorkspaceID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return translateError(err, "save workspace "+doc.WorkspaceID)
	}
	return nil
}

func (r *workspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	return r.findOne(ctx, bson.M{"_id": workspaceID}, "find workspace "+workspaceID)
}

func (r *workspaceRepository) FindWorkspaceByOwner(ctx context.Context, ownerUserID string) (*domain.Workspace, error) {
	return r.findOne(ctx, bson.M{"ownerUserId": ownerUserID}, "find workspace of user "+ownerUserID)
}

func (r *workspaceRepository) findOne(ctx context.Context, filter bson.M, what string) (*domain.Workspace, error) {
	var doc workspaceDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translateError(err, what)
	}
	workspace := doc.toDomain()
	return &workspace, nil
}
