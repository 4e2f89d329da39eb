// Package menurepo provides data transfer objects and mapping functions for
// menu item persistence, including the derived demand statistics recomputed
// from the archived order tables.
package menurepo

import (
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Category       string          `gorm:"type:varchar(64);index"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	// No default tag: gorm drops zero-value fields that carry one on insert,
	// which would turn available=false into the column default.
	Available      bool            `gorm:"not null"`
	DemandTier     string          `gorm:"type:varchar(16)"`
	OrderCount     int             `gorm:"type:int;not null;default:0"`
	LastTierUpdate *time.Time
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	var tier string
	if item.DemandTier() != menu.UnknownTier {
		tier = item.DemandTier().String()
	}

	return MenuItemDTO{
		ID:             item.ID().Bytes(),
		Name:           item.Name(),
		Category:       item.Category(),
		Price:          item.Price(),
		Available:      item.IsAvailable(),
		DemandTier:     tier,
		OrderCount:     item.OrderCount(),
		LastTierUpdate: item.LastTierUpdate(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tier := menu.UnknownTier
	if dto.DemandTier != "" {
		parsed, tierErr := menu.ParseDemandTier(dto.DemandTier)
		if tierErr == nil {
			tier = parsed
		}
	}

	return menu.RestoreMenuItem(
		id,
		dto.Name,
		dto.Category,
		dto.Price,
		dto.Available,
		tier,
		dto.OrderCount,
		dto.LastTierUpdate,
	)
}
