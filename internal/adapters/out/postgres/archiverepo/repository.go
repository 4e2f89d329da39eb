package archiverepo

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/history"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormArchiveRepository implements ArchiveRepository using GORM.
type GormArchiveRepository struct {
	db *gorm.DB
}

// NewGormArchiveRepository creates a new GORM archive repository.
func NewGormArchiveRepository(db *gorm.DB) *GormArchiveRepository {
	return &GormArchiveRepository{db: db}
}

// Add saves a new archived order record and its children to the database.
// Archived records are immutable; there is no Update.
func (r *GormArchiveRepository) Add(ctx context.Context, aggregate *history.ArchivedOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an archived order record by ID with all children.
func (r *GormArchiveRepository) Get(ctx context.Context, id kernel.UUID) (*history.ArchivedOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ArchivedOrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Preload("StatusLogs").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderHistory", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves an archived order record by its order code.
func (r *GormArchiveRepository) GetByCode(ctx context.Context, code kernel.Code) (*history.ArchivedOrder, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto ArchivedOrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Preload("StatusLogs").
		First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderHistory", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an archived order record and its children. Called only by
// the revert operation, after the copy back to the live table succeeded.
func (r *GormArchiveRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	archiveID := id.Bytes()

	if err := db.Where("order_history_id = ?", archiveID).Delete(&ArchivedItemDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("order_history_id = ?", archiveID).Delete(&ArchivedPaymentDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("order_history_id = ?", archiveID).Delete(&ArchivedStatusLogDTO{}).Error; err != nil {
		return err
	}

	result := db.Delete(&ArchivedOrderDTO{}, "id = ?", archiveID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderHistory", id.String())
	}
	return nil
}

// CodeExists reports whether any archived order carries the given code.
func (r *GormArchiveRepository) CodeExists(ctx context.Context, code kernel.Code) (bool, error) {
	if err := code.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ArchivedOrderDTO{}).
		Where("code = ?", code.String()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
