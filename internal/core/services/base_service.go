package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fiscly/fiscly_backend/internal/apperrors"
	"github.com/fiscly/fiscly_backend/internal/core/domain"
	portsrepo "github.com/fiscly/fiscly_backend/internal/core/ports/repositories"
	"github.com/fiscly/fiscly_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	WorkspaceReader portsrepo.WorkspaceReader
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// ResolveWorkspace finds the workspace owned by userID.
// Returns an error matching apperrors.ErrNotFound when the user has none.
func (s *BaseService) ResolveWorkspace(ctx context.Context, userID string) (*domain.Workspace, error) {
	if s.WorkspaceReader == nil {
		return nil, fmt.Errorf("workspace reader not configured")
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", apperrors.ErrValidation)
	}
	workspace, err := s.WorkspaceReader.FindWorkspaceByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("workspace not found")
		}
		s.LogError(ctx, err, "Failed to look up workspace", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to look up workspace: %w", err)
	}
	return workspace, nil
}
