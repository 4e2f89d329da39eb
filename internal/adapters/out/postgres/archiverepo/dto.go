// Package archiverepo provides data transfer objects and mapping functions
// for archived order persistence. Archived orders live in their own set of
// tables, mirroring the live order tables; an order code is present in
// exactly one of the two sets at any time.
package archiverepo

import (
	"time"

	"pos/internal/core/domain/model/history"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ArchivedOrderDTO represents the database structure for persisting archived
// order records.
type ArchivedOrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code               string          `gorm:"type:varchar(8);uniqueIndex;not null"`
	CustomerName       string          `gorm:"type:varchar(255);not null"`
	CustomerPhone      string          `gorm:"type:varchar(32)"`
	OrderType          string          `gorm:"type:varchar(16);not null"`
	Status             string          `gorm:"type:varchar(32);not null;index"`
	PaymentStatus      string          `gorm:"type:varchar(16);not null"`
	TotalAmount        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DeliveryCharge     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	SpecialNotes       string          `gorm:"type:text"`
	TableID            *uuid.UUID      `gorm:"type:uuid"`
	Address            AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	CompletedBy        *uuid.UUID      `gorm:"type:uuid"`
	CancelledBy        *uuid.UUID      `gorm:"type:uuid"`
	CancellationReason string          `gorm:"type:text"`
	CreatedBy          *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	ArchivedAt         time.Time `gorm:"index"`

	Items      []ArchivedItemDTO      `gorm:"foreignKey:OrderHistoryID;constraint:OnDelete:CASCADE"`
	Payments   []ArchivedPaymentDTO   `gorm:"foreignKey:OrderHistoryID;constraint:OnDelete:CASCADE"`
	StatusLogs []ArchivedStatusLogDTO `gorm:"foreignKey:OrderHistoryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for archived order entities.
func (ArchivedOrderDTO) TableName() string {
	return "order_history"
}

// AddressDTO represents the embedded delivery address within the archived
// order table.
type AddressDTO struct {
	Address  string `gorm:"type:varchar(255)"`
	Landmark string `gorm:"type:varchar(255)"`
	Building string `gorm:"type:varchar(255)"`
	Unit     string `gorm:"type:varchar(64)"`
}

// ArchivedItemDTO represents one archived order line. The menu item reference
// drives the derived order_count statistic.
type ArchivedItemDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderHistoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity       int             `gorm:"type:int;not null"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName specifies the database table name for archived order lines.
func (ArchivedItemDTO) TableName() string {
	return "order_history_items"
}

// ArchivedPaymentDTO represents one archived payment.
type ArchivedPaymentDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderHistoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Method         string          `gorm:"type:varchar(32);not null"`
	Amount         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TransactionID  string          `gorm:"type:varchar(128)"`
}

// TableName specifies the database table name for archived payments.
func (ArchivedPaymentDTO) TableName() string {
	return "order_history_payments"
}

// ArchivedStatusLogDTO represents one archived audit trail entry.
type ArchivedStatusLogDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderHistoryID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Previous       string     `gorm:"type:varchar(32)"`
	Next           string     `gorm:"type:varchar(32);not null"`
	ChangedBy      *uuid.UUID `gorm:"type:uuid"`
	Timestamp      time.Time
}

// TableName specifies the database table name for archived audit entries.
func (ArchivedStatusLogDTO) TableName() string {
	return "order_history_status_logs"
}

// fromDomain converts an archived order aggregate to its database
// representation, children included.
func fromDomain(a *history.ArchivedOrder) ArchivedOrderDTO {
	archiveID := a.ID().Bytes()

	items := make([]ArchivedItemDTO, 0, len(a.Items()))
	for _, item := range a.Items() {
		items = append(items, ArchivedItemDTO{
			ID:             item.ID().Bytes(),
			OrderHistoryID: archiveID,
			MenuItemID:     item.MenuItemID().Bytes(),
			Quantity:       item.Quantity(),
			Price:          item.Price(),
		})
	}

	payments := make([]ArchivedPaymentDTO, 0, len(a.Payments()))
	for _, p := range a.Payments() {
		payments = append(payments, ArchivedPaymentDTO{
			ID:             p.ID().Bytes(),
			OrderHistoryID: archiveID,
			Method:         p.Method().String(),
			Amount:         p.Amount(),
			TransactionID:  p.TransactionID(),
		})
	}

	statusLogs := make([]ArchivedStatusLogDTO, 0, len(a.StatusLogs()))
	for _, l := range a.StatusLogs() {
		statusLogs = append(statusLogs, ArchivedStatusLogDTO{
			ID:             l.ID().Bytes(),
			OrderHistoryID: archiveID,
			Previous:       statusString(l.Previous()),
			Next:           l.Next().String(),
			ChangedBy:      optionalUUID(l.ChangedBy()),
			Timestamp:      l.Timestamp(),
		})
	}

	return ArchivedOrderDTO{
		ID:                 archiveID,
		Code:               a.Code().String(),
		CustomerName:       a.CustomerName(),
		CustomerPhone:      a.CustomerPhone(),
		OrderType:          a.OrderType().String(),
		Status:             a.Status().String(),
		PaymentStatus:      a.PaymentStatus().String(),
		TotalAmount:        a.TotalAmount(),
		DeliveryCharge:     a.DeliveryCharge(),
		SpecialNotes:       a.SpecialNotes(),
		TableID:            optionalUUID(a.TableID()),
		Address: AddressDTO{
			Address:  a.Address().Address(),
			Landmark: a.Address().Landmark(),
			Building: a.Address().Building(),
			Unit:     a.Address().Unit(),
		},
		CompletedBy:        optionalUUID(a.CompletedBy()),
		CancelledBy:        optionalUUID(a.CancelledBy()),
		CancellationReason: a.CancellationReason(),
		CreatedBy:          optionalUUID(a.CreatedBy()),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
		ArchivedAt:         a.ArchivedAt(),
		Items:              items,
		Payments:           payments,
		StatusLogs:         statusLogs,
	}
}

// toDomain converts a database DTO to an archived order aggregate.
func toDomain(dto ArchivedOrderDTO) (*history.ArchivedOrder, error) {
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
	cancelledBy, err := optionalDomainUUID(dto.CancelledBy)
	if err != nil {
		return nil, err
	}
	createdBy, err := optionalDomainUUID(dto.CreatedBy)
	if err != nil {
		return nil, err
	}

	items := make([]*history.ArchivedItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	payments := make([]*history.ArchivedPayment, 0, len(dto.Payments))
	for _, paymentDTO := range dto.Payments {
		p, paymentErr := paymentToDomain(paymentDTO)
		if paymentErr != nil {
			return nil, paymentErr
		}
		payments = append(payments, p)
	}

	statusLogs := make([]*history.ArchivedStatusLog, 0, len(dto.StatusLogs))
	for _, logDTO := range dto.StatusLogs {
		l, logErr := statusLogToDomain(logDTO)
		if logErr != nil {
			return nil, logErr
		}
		statusLogs = append(statusLogs, l)
	}

	address := order.NewDeliveryAddress(
		dto.Address.Address, dto.Address.Landmark, dto.Address.Building, dto.Address.Unit)

	return history.RestoreArchivedOrder(
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
		cancelledBy,
		dto.CancellationReason,
		createdBy,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ArchivedAt,
		items,
		payments,
		statusLogs,
	)
}

func itemToDomain(dto ArchivedItemDTO) (*history.ArchivedItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}
	return history.RestoreArchivedItem(id, menuItemID, dto.Quantity, dto.Price)
}

func paymentToDomain(dto ArchivedPaymentDTO) (*history.ArchivedPayment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	method, err := order.ParsePaymentMethod(dto.Method)
	if err != nil {
		return nil, err
	}
	return history.RestoreArchivedPayment(id, method, dto.Amount, dto.TransactionID)
}

func statusLogToDomain(dto ArchivedStatusLogDTO) (*history.ArchivedStatusLog, error) {
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
	return history.RestoreArchivedStatusLog(id, parseStatusOrUnknown(dto.Previous), next, changedBy, dto.Timestamp)
}

func parseStatusOrUnknown(raw string) order.Status {
	status, err := order.ParseStatus(raw)
	if err != nil {
		return order.UnknownStatus
	}
	return status
}

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
