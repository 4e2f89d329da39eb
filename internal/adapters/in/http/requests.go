package http

import (
	"time"

	"pos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// OrderLineRequest is one item line in an order creation request.
type OrderLineRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// AddressRequest carries the delivery destination for delivery orders.
type AddressRequest struct {
	Address  string `json:"address"`
	Landmark string `json:"landmark"`
	Building string `json:"building"`
	Unit     string `json:"unit"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerName   string             `json:"customerName"`
	CustomerPhone  string             `json:"customerPhone"`
	OrderType      string             `json:"orderType"`
	TableID        string             `json:"tableId,omitempty"`
	Address        AddressRequest     `json:"address"`
	DeliveryCharge decimal.Decimal    `json:"deliveryCharge"`
	SpecialNotes   string             `json:"specialNotes"`
	CreatedBy      string             `json:"createdBy,omitempty"`
	Items          []OrderLineRequest `json:"items"`
}

// RecordPaymentRequest is the body of POST /api/v1/orders/:id/payments.
type RecordPaymentRequest struct {
	Method        string          `json:"method"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transactionId"`
	EditedBy      string          `json:"editedBy,omitempty"`
}

// UpdateStatusRequest is the body of PATCH /api/v1/orders/:id/status. The
// status field accepts the legacy aliases (cooking, cook, complete).
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Actor  string `json:"actor,omitempty"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/:id/cancel.
type CancelOrderRequest struct {
	CancelledBy string `json:"cancelledBy,omitempty"`
	Reason      string `json:"reason"`
}

// ArchiveOrderRequest is the body of POST /api/v1/orders/:id/archive.
type ArchiveOrderRequest struct {
	Actor string `json:"actor,omitempty"`
}

// RevertOrderRequest is the body of POST /api/v1/history/:id/revert.
type RevertOrderRequest struct {
	TargetStatus string `json:"targetStatus"`
}

// CreateOrderResponse returns the generated order code.
type CreateOrderResponse struct {
	Code string `json:"code"`
}

// RevertOrderResponse returns the identifier of the restored live order.
type RevertOrderResponse struct {
	OrderID string `json:"orderId"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ActiveOrderItem is one row of the active orders listing response.
type ActiveOrderItem struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	CustomerName   string          `json:"customerName"`
	CustomerPhone  string          `json:"customerPhone"`
	OrderType      string          `json:"orderType"`
	Status         string          `json:"status"`
	PaymentStatus  string          `json:"paymentStatus"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	DeliveryCharge decimal.Decimal `json:"deliveryCharge"`
	ItemCount      int             `json:"itemCount"`
	SpecialNotes   string          `json:"specialNotes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ArchivedOrderItem is one row of the order history listing response.
type ArchivedOrderItem struct {
	ID                 string          `json:"id"`
	Code               string          `json:"code"`
	CustomerName       string          `json:"customerName"`
	OrderType          string          `json:"orderType"`
	Status             string          `json:"status"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	DeliveryCharge     decimal.Decimal `json:"deliveryCharge"`
	ItemCount          int             `json:"itemCount"`
	CancellationReason string          `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	ArchivedAt         time.Time       `json:"archivedAt"`
}

// MenuListItem is one row of the menu listing response.
type MenuListItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	Available      bool            `json:"available"`
	DemandTier     string          `json:"demandTier,omitempty"`
	OrderCount     int             `json:"orderCount"`
	LastTierUpdate *time.Time      `json:"lastTierUpdate,omitempty"`
}

// optionalUUID parses an optional UUID field, treating "" as absent.
func optionalUUID(s string) (*kernel.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
