package queries

import (
	"context"
	"database/sql"
	"strings"

	"pos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuItemsQueryHandler reads the menu_items table.
type GetMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemsQueryHandler creates a handler for menu listings.
func NewGetMenuItemsQueryHandler(db *gorm.DB) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by category, then name.
func (h GetMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemsQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := strings.Builder{}
	sqlText.WriteString(`
		SELECT
			id,
			name,
			category,
			price,
			available,
			demand_tier,
			order_count,
			last_tier_update
		FROM menu_items
		WHERE 1 = 1
	`)

	args := make([]any, 0, 1)
	if query.Category() != "" {
		sqlText.WriteString(" AND category = ?")
		args = append(args, query.Category())
	}
	if query.AvailableOnly() {
		sqlText.WriteString(" AND available")
	}
	sqlText.WriteString(" ORDER BY category, name")

	rows, err := h.db.WithContext(ctx).Raw(sqlText.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		var resp MenuItemResponse
		var id uuid.UUID
		var tier sql.NullString

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Category,
			&resp.Price,
			&resp.Available,
			&tier,
			&resp.OrderCount,
			&resp.LastTierUpdate,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = itemID
		resp.DemandTier = tier.String
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
