package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fiscly/fiscly_backend/internal/apperrors"
	"github.com/fiscly/fiscly_backend/internal/core/domain"
	portsrepo "github.com/fiscly/fiscly_backend/internal/core/ports/repositories"
	portssvc "github.com/fiscly/fiscly_backend/internal/core/ports/services"
	"github.com/fiscly/fiscly_backend/internal/dto"
	"github.com/google/uuid"
)

type workspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	now           func() time.Time
}

// WorkspaceServiceOption is a functional option for configuring the workspace service
type WorkspaceServiceOption func(*workspaceService)

// WithWorkspaceClock overrides the source of audit timestamps.
func WithWorkspaceClock(now func() time.Time) WorkspaceServiceOption {
	return func(s *workspaceService) {
		s.now = now
	}
}

func NewWorkspaceService(workspaceRepo portsrepo.WorkspaceRepositoryFacade, options ...WorkspaceServiceOption) portssvc.WorkspaceService {
	svc := &workspaceService{
		BaseService:   BaseService{WorkspaceReader: workspaceRepo},
		workspaceRepo: workspaceRepo,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.WorkspaceService = (*workspaceService)(nil)

func (s *workspaceService) GetOrCreateWorkspace(ctx context.Context, userID string) (*domain.Workspace, error) {
	workspace, err := s.ResolveWorkspace(ctx, userID)
	if err == nil {
		return workspace, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	created := domain.NewDefaultWorkspace(uuid.NewString(), userID, s.now())
	if err := s.workspaceRepo.SaveWorkspace(ctx, created); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Another request created it first
			return s.ResolveWorkspace(ctx, userID)
		}
		s.LogError(ctx, err, "Failed to create workspace", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.LogInfo(ctx, "Workspace created", slog.String("workspace_id", created.WorkspaceID), slog.String("user_id", userID))
	return &created, nil
}

func (s *workspaceService) UpdateWorkspace(ctx context.Context, userID string, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error) {
	workspace, err := s.GetOrCreateWorkspace(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("workspace name must not be blank")
		}
		workspace.Name = name
	}
	if req.DefaultCurrencyCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.DefaultCurrencyCode))
		if !dto.IsCurrencyCode(code) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid currency code %q", *req.DefaultCurrencyCode))
		}
		workspace.DefaultCurrencyCode = code
	}
	if req.Email != nil {
		workspace.Email = strings.TrimSpace(*req.Email)
	}
	if req.Address != nil {
		workspace.Address = *req.Address
	}
	if req.TaxID != nil {
		workspace.TaxID = strings.TrimSpace(*req.TaxID)
	}
	if req.LogoURL != nil {
		workspace.LogoURL = strings.TrimSpace(*req.LogoURL)
	}
	workspace.Touch(userID, s.now())

	if err := s.workspaceRepo.SaveWorkspace(ctx, *workspace); err != nil {
		s.LogError(ctx, err, "Failed to update workspace", slog.String("workspace_id", workspace.WorkspaceID))
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}
	s.LogInfo(ctx, "Workspace updated", slog.String("workspace_id", workspace.WorkspaceID))
	return workspace, nil
}
