// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/spacefleet/kosmoport/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

// ShipRepository defines operations for ships
type ShipRepository interface {
	ByID(ctx context.Context, id uint) (*models.Ship, error)
	ByFilter(ctx context.Context, filter models.ShipFilter, orderBy string, limit, offset int) ([]*models.Ship, error)
	Count(ctx context.Context, filter models.ShipFilter) (int64, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Save(ctx context.Context, ship *models.Ship) error
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	DeleteByID(ctx context.Context, id uint) error
}
