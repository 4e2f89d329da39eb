package orderrepo

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and its children to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order to the database. Child rows removed from the
// aggregate (deleted payments, removed items) are deleted before the save,
// since association saving only upserts.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := deleteOrphans(db, &ItemDTO{}, dto.ID, itemIDs(dto.Items)); err != nil {
		return err
	}
	if err := deleteOrphans(db, &PaymentDTO{}, dto.ID, paymentIDs(dto.Payments)); err != nil {
		return err
	}
	if err := deleteOrphans(db, &StatusLogDTO{}, dto.ID, statusLogIDs(dto.StatusLogs)); err != nil {
		return err
	}

	result := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Get retrieves an order by ID with all children.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order by ID holding a row lock until the
// surrounding transaction ends. The lock clause only applies on postgres;
// other dialects serialize writes on their own.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	db := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "orders"}})
	}
	return r.get(ctx, db, id)
}

func (r *GormOrderRepository) get(_ context.Context, db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.
		Preload("Items").
		Preload("Payments").
		Preload("StatusLogs").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves an order by its 8-digit order code.
func (r *GormOrderRepository) GetByCode(ctx context.Context, code kernel.Code) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Preload("StatusLogs").
		First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order and its children. Children are deleted explicitly
// so the operation does not depend on database-level cascades.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	orderID := id.Bytes()

	if err := db.Where("order_id = ?", orderID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("order_id = ?", orderID).Delete(&PaymentDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("order_id = ?", orderID).Delete(&StatusLogDTO{}).Error; err != nil {
		return err
	}

	result := db.Delete(&OrderDTO{}, "id = ?", orderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

// CodeExists reports whether any live order carries the given code.
func (r *GormOrderRepository) CodeExists(ctx context.Context, code kernel.Code) (bool, error) {
	if err := code.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("code = ?", code.String()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// deleteOrphans removes child rows of the order that are no longer part of
// the aggregate.
func deleteOrphans(db *gorm.DB, model any, orderID uuid.UUID, keep []uuid.UUID) error {
	q := db.Where("order_id = ?", orderID)
	if len(keep) > 0 {
		q = q.Where("id NOT IN ?", keep)
	}
	return q.Delete(model).Error
}

func itemIDs(dtos []ItemDTO) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}
	return ids
}

func paymentIDs(dtos []PaymentDTO) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}
	return ids
}

func statusLogIDs(dtos []StatusLogDTO) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}
	return ids
}
