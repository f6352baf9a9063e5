// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/resonatefm/resonate-gateway/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
}

// AuditLogRepository defines operations for the gateway audit trail
type AuditLogRepository interface {
	Repository[models.AuditLog, models.AuditLogFilter]
	ListByRelease(ctx context.Context, releaseID string, limit, offset int) ([]*models.AuditLog, error)
	ListByAction(ctx context.Context, action string, limit, offset int) ([]*models.AuditLog, error)
	ListFailedActions(ctx context.Context, limit, offset int) ([]*models.AuditLog, error)
}
