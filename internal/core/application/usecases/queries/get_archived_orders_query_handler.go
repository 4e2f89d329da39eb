package queries

import (
	"context"
	"database/sql"
	"strings"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetArchivedOrdersQueryHandler reads the order history tables.
type GetArchivedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetArchivedOrdersQueryHandler creates a handler for order history listings.
func NewGetArchivedOrdersQueryHandler(db *gorm.DB) GetArchivedOrdersQueryHandler {
	return GetArchivedOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by archival time, newest first.
func (h GetArchivedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetArchivedOrdersQuery,
) ([]ArchivedOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := strings.Builder{}
	sqlText.WriteString(`
		SELECT
			h.id,
			h.code,
			h.customer_name,
			h.order_type,
			h.status,
			h.total_amount,
			h.delivery_charge,
			(SELECT COALESCE(SUM(i.quantity), 0) FROM order_history_items i WHERE i.order_history_id = h.id),
			h.cancellation_reason,
			h.created_at,
			h.archived_at
		FROM order_history h
		WHERE 1 = 1
	`)

	args := make([]any, 0, 5)
	if query.Status() != order.UnknownStatus {
		sqlText.WriteString(" AND h.status = ?")
		args = append(args, query.Status().String())
	}
	if query.From() != nil {
		sqlText.WriteString(" AND h.archived_at >= ?")
		args = append(args, *query.From())
	}
	if query.To() != nil {
		sqlText.WriteString(" AND h.archived_at <= ?")
		args = append(args, *query.To())
	}
	sqlText.WriteString(" ORDER BY h.archived_at DESC LIMIT ? OFFSET ?")
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sqlText.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]ArchivedOrderResponse, 0)
	for rows.Next() {
		var resp ArchivedOrderResponse
		var id uuid.UUID
		var reason sql.NullString

		err = rows.Scan(
			&id,
			&resp.Code,
			&resp.CustomerName,
			&resp.OrderType,
			&resp.Status,
			&resp.TotalAmount,
			&resp.DeliveryCharge,
			&resp.ItemCount,
			&reason,
			&resp.CreatedAt,
			&resp.ArchivedAt,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = recordID
		resp.CancellationReason = reason.String
		records = append(records, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
