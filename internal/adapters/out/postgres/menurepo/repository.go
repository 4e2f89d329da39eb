package menurepo

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/menu"
	"pos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Add saves a new menu item to the database.
func (r *GormMenuRepository) Add(ctx context.Context, aggregate *menu.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing menu item to the database.
func (r *GormMenuRepository) Update(ctx context.Context, aggregate *menu.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Get retrieves a menu item by ID.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItem", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// RecountOrderTotals recomputes order_count for the given menu items as the
// number of distinct archived orders referencing each of them, and persists
// only that column.
func (r *GormMenuRepository) RecountOrderTotals(ctx context.Context, menuItemIDs []kernel.UUID) error {
	if len(menuItemIDs) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(menuItemIDs))
	for _, id := range menuItemIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		ids = append(ids, id.Bytes())
	}

	return r.db.WithContext(ctx).Exec(`
		UPDATE menu_items SET order_count = (
			SELECT COUNT(DISTINCT order_history_id)
			FROM order_history_items
			WHERE order_history_items.menu_item_id = menu_items.id
		)
		WHERE id IN ?
	`, ids).Error
}

// RecountAllOrderTotals recomputes order_count for every menu item. Used by
// the periodic reconciliation job to repair drift left by best-effort
// reactive recounts.
func (r *GormMenuRepository) RecountAllOrderTotals(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE menu_items SET order_count = (
			SELECT COUNT(DISTINCT order_history_id)
			FROM order_history_items
			WHERE order_history_items.menu_item_id = menu_items.id
		)
	`).Error
}
