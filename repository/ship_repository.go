package repository

import (
	"context"

	"github.com/spacefleet/kosmoport/models"
	"gorm.io/gorm"
)

// ShipRepositoryImpl implements the ShipRepository interface
type ShipRepositoryImpl struct {
	*BaseRepository[models.Ship, models.ShipFilter]
}

// NewShipRepository creates a new ship repository
func NewShipRepository(db *gorm.DB) ShipRepository {
	return &ShipRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Ship, models.ShipFilter](db),
	}
}

// ByFilter retrieves ships based on filter criteria
func (r *ShipRepositoryImpl) ByFilter(ctx context.Context, filter models.ShipFilter, orderBy string, limit, offset int) ([]*models.Ship, error) {
	db := r.getDB(ctx)

	var ships []*models.Ship
	query := r.applyFilter(db, filter)

	// Apply ordering
	if orderBy != "" {
		query = query.Order(orderBy)
	}

	// Apply pagination
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&ships).Error
	if err != nil {
		return nil, err
	}

	return ships, nil
}

// Count returns the number of ships matching the filter
func (r *ShipRepositoryImpl) Count(ctx context.Context, filter models.ShipFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	var ship models.Ship
	query := r.applyFilter(db.Model(&ship), filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ExistsByID checks if a ship with the given ID exists
func (r *ShipRepositoryImpl) ExistsByID(ctx context.Context, id uint) (bool, error) {
	db := r.getDB(ctx)

	var count int64
	err := db.Model(&models.Ship{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// UpdateFields writes the given columns for one ship in a single statement.
// An empty field map skips the write entirely.
func (r *ShipRepositoryImpl) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Model(&models.Ship{}).
		Where("id = ?", id).
		Updates(fields).Error

	if err != nil {
		return err
	}

	return nil
}

// DeleteByID removes a ship by its ID
func (r *ShipRepositoryImpl) DeleteByID(ctx context.Context, id uint) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Delete(&models.Ship{}, id).Error
	if err != nil {
		return err
	}

	return nil
}

// applyFilter applies filter conditions to the GORM query
func (r *ShipRepositoryImpl) applyFilter(db *gorm.DB, filter models.ShipFilter) *gorm.DB {
	if filter.Name != nil {
		db = db.Where("name ILIKE ?", "%"+*filter.Name+"%")
	}
	if filter.Planet != nil {
		db = db.Where("planet ILIKE ?", "%"+*filter.Planet+"%")
	}
	if filter.ShipType != nil {
		db = db.Where("ship_type = ?", *filter.ShipType)
	}
	if filter.ProdDateAfter != nil {
		db = db.Where("prod_date >= ?", *filter.ProdDateAfter)
	}
	if filter.ProdDateBefore != nil {
		db = db.Where("prod_date <= ?", *filter.ProdDateBefore)
	}
	if filter.IsUsed != nil {
		db = db.Where("is_used = ?", *filter.IsUsed)
	}
	if filter.MinSpeed != nil {
		db = db.Where("speed >= ?", *filter.MinSpeed)
	}
	if filter.MaxSpeed != nil {
		db = db.Where("speed <= ?", *filter.MaxSpeed)
	}
	if filter.MinCrewSize != nil {
		db = db.Where("crew_size >= ?", *filter.MinCrewSize)
	}
	if filter.MaxCrewSize != nil {
		db = db.Where("crew_size <= ?", *filter.MaxCrewSize)
	}
	if filter.MinRating != nil {
		db = db.Where("rating >= ?", *filter.MinRating)
	}
	if filter.MaxRating != nil {
		db = db.Where("rating <= ?", *filter.MaxRating)
	}

	return db
}
