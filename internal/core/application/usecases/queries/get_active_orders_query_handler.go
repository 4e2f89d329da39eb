package queries

import (
	"context"
	"strings"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the live orders table. It bypasses the
// domain model and repositories on purpose: listings need no invariants, only
// rows.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order listings.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]ActiveOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := strings.Builder{}
	sql.WriteString(`
		SELECT
			o.id,
			o.code,
			o.customer_name,
			o.customer_phone,
			o.order_type,
			o.status,
			o.payment_status,
			o.total_amount,
			o.delivery_charge,
			(SELECT COALESCE(SUM(i.quantity), 0) FROM order_items i WHERE i.order_id = o.id),
			o.special_notes,
			o.created_at,
			o.updated_at
		FROM orders o
		WHERE 1 = 1
	`)

	args := make([]any, 0, 2)
	if query.Status() != order.UnknownStatus {
		sql.WriteString(" AND o.status = ?")
		args = append(args, query.Status().String())
	}
	if query.OrderType() != order.UnknownType {
		sql.WriteString(" AND o.order_type = ?")
		args = append(args, query.OrderType().String())
	}
	sql.WriteString(" ORDER BY o.created_at DESC")

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ActiveOrderResponse, 0)
	for rows.Next() {
		var resp ActiveOrderResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Code,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.OrderType,
			&resp.Status,
			&resp.PaymentStatus,
			&resp.TotalAmount,
			&resp.DeliveryCharge,
			&resp.ItemCount,
			&resp.SpecialNotes,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
