// Package orderrepo provides data transfer objects and mapping functions for
// live order persistence. This package implements the repository pattern for
// the order domain aggregate, handling the conversion between domain entities
// and database representations.
package orderrepo

import (
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting live order
// aggregates. The order code carries a unique index; uniqueness against the
// archived table is enforced at creation time, not by the schema.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code           string          `gorm:"type:varchar(8);uniqueIndex;not null"`
	CustomerName   string          `gorm:"type:varchar(255);not null"`
	CustomerPhone  string          `gorm:"type:varchar(32)"`
	OrderType      string          `gorm:"type:varchar(16);not null"`
	Status         string          `gorm:"type:varchar(32);not null;index"`
	PaymentStatus  string          `gorm:"type:varchar(16);not null"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DeliveryCharge decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	SpecialNotes   string          `gorm:"type:text"`
	TableID        *uuid.UUID      `gorm:"type:uuid;index"`
	Address        AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	CompletedBy    *uuid.UUID      `gorm:"type:uuid"`
	CreatedBy      *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Items      []ItemDTO      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payments   []PaymentDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StatusLogs []StatusLogDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for live order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	Address  string `gorm:"type:varchar(255)"`
	Landmark string `gorm:"type:varchar(255)"`
	Building string `gorm:"type:varchar(255)"`
	Unit     string `gorm:"type:varchar(64)"`
}

// ItemDTO represents one order line.
type ItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"type:int;not null"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// PaymentDTO represents one payment recorded against an order.
type PaymentDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Method        string          `gorm:"type:varchar(32);not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TransactionID string          `gorm:"type:varchar(128)"`
	EditedBy      *uuid.UUID      `gorm:"type:uuid"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "order_payments"
}

// StatusLogDTO represents one status audit trail entry.
type StatusLogDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Previous  string     `gorm:"type:varchar(32)"`
	Next      string     `gorm:"type:varchar(32);not null"`
	ChangedBy *uuid.UUID `gorm:"type:uuid"`
	Timestamp time.Time
}

// TableName specifies the database table name for audit trail entities.
func (StatusLogDTO) TableName() string {
	return "order_status_logs"
}

// fromDomain converts an order domain aggregate to its database
// representation, children included.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    orderID,
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			Price:      item.Price(),
		})
	}

	payments := make([]PaymentDTO, 0, len(o.Payments()))
	for _, p := range o.Payments() {
		payments = append(payments, PaymentDTO{
			ID:            p.ID().Bytes(),
			OrderID:       orderID,
			Method:        p.Method().String(),
			Amount:        p.Amount(),
			TransactionID: p.TransactionID(),
			EditedBy:      optionalUUID(p.EditedBy()),
		})
	}

	statusLogs := make([]StatusLogDTO, 0, len(o.StatusLogs()))
	for _, l := range o.StatusLogs() {
		statusLogs = append(statusLogs, StatusLogDTO{
			ID:        l.ID().Bytes(),
			OrderID:   orderID,
			Previous:  statusString(l.Previous()),
			Next:      l.Next().String(),
			ChangedBy: optionalUUID(l.ChangedBy()),
			Timestamp: l.Timestamp(),
		})
	}

	return OrderDTO{
		ID:             orderID,
		Code:           o.Code().String(),
		CustomerName:   o.CustomerName(),
		CustomerPhone:  o.CustomerPhone(),
		OrderType:      o.OrderType().String(),
		Status:         o.Status().String(),
		PaymentStatus:  o.PaymentStatus().String(),
		TotalAmount:    o.TotalAmount(),
		DeliveryCharge: o.DeliveryCharge(),
		SpecialNotes:   o.SpecialNotes(),
		TableID:        optionalUUID(o.TableID()),
		Address: AddressDTO{
			Address:  o.Address().Address(),
			Landmark: o.Address().Landmark(),
			Building: o.Address().Building(),
			Unit:     o.Address().Unit(),
		},
		CompletedBy: optionalUUID(o.CompletedBy()),
		CreatedBy:   optionalUUID(o.CreatedBy()),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
		Items:       items,
		Payments:    payments,
		StatusLogs:  statusLogs,
	}
}

// toDomain converts a database DTO to an order domain aggregate. An order
// type the parser does not recognize restores as the unknown type; the domain
// treats it permissively instead of stranding the row.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	code, err := kernel.CodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	orderType, err := order.ParseOrderType(dto.OrderType)
	if err != nil {
		orderType = order.UnknownType
	}

	tableID, err := optionalDomainUUID(dto.TableID)
	if err != nil {
		return nil, err
	}
	completedBy, err := optionalDomainUUID(dto.CompletedBy)
	if err != nil {
		return nil, err
	}
	createdBy, err := optionalDomainUUID(dto.CreatedBy)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	payments := make([]*order.Payment, 0, len(dto.Payments))
	for _, paymentDTO := range dto.Payments {
		p, paymentErr := paymentToDomain(paymentDTO)
		if paymentErr != nil {
			return nil, paymentErr
		}
		payments = append(payments, p)
	}

	statusLogs := make([]*order.StatusLog, 0, len(dto.StatusLogs))
	for _, logDTO := range dto.StatusLogs {
		l, logErr := statusLogToDomain(logDTO)
		if logErr != nil {
			return nil, logErr
		}
		statusLogs = append(statusLogs, l)
	}

	address := order.NewDeliveryAddress(
		dto.Address.Address, dto.Address.Landmark, dto.Address.Building, dto.Address.Unit)

	return order.RestoreOrder(
		id,
		code,
		dto.CustomerName,
		dto.CustomerPhone,
		orderType,
		status,
		paymentStatus,
		dto.TotalAmount,
		dto.DeliveryCharge,
		dto.SpecialNotes,
		tableID,
		address,
		completedBy,
		createdBy,
		dto.CreatedAt,
		dto.UpdatedAt,
		items,
		payments,
		statusLogs,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(id, menuItemID, dto.Quantity, dto.Price)
}

func paymentToDomain(dto PaymentDTO) (*order.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	method, err := order.ParsePaymentMethod(dto.Method)
	if err != nil {
		return nil, err
	}
	editedBy, err := optionalDomainUUID(dto.EditedBy)
	if err != nil {
		return nil, err
	}
	return order.RestorePayment(id, method, dto.Amount, dto.TransactionID, editedBy)
}

func statusLogToDomain(dto StatusLogDTO) (*order.StatusLog, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	next, err := order.ParseStatus(dto.Next)
	if err != nil {
		return nil, err
	}
	changedBy, err := optionalDomainUUID(dto.ChangedBy)
	if err != nil {
		return nil, err
	}
	return order.RestoreStatusLog(id, parseStatusOrUnknown(dto.Previous), next, changedBy, dto.Timestamp)
}

// parseStatusOrUnknown tolerates legacy audit rows with an empty or
// unrecognized previous status.
func parseStatusOrUnknown(raw string) order.Status {
	status, err := order.ParseStatus(raw)
	if err != nil {
		return order.UnknownStatus
	}
	return status
}

// statusString renders a status for storage, with the unknown status as an
// empty string.
func statusString(s order.Status) string {
	if s == order.UnknownStatus {
		return ""
	}
	return s.String()
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalDomainUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	domainID, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &domainID, nil
}
