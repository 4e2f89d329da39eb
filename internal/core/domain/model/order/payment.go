package order

import (
	"fmt"
	"strings"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PaymentStatus marks whether an order has been settled.
type PaymentStatus int

const (
	// UnknownPaymentStatus represents an invalid or undefined payment status.
	UnknownPaymentStatus PaymentStatus = iota

	// Unpaid means recorded payments have not yet been confirmed to cover the order.
	Unpaid

	// Paid is set when the settlement gate passes on completion.
	Paid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		UnknownPaymentStatus: "unknown",
		Unpaid:               "unpaid",
		Paid:                 "paid",
	}
}

// ParsePaymentStatus converts the persisted name of a payment status into its value.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getPaymentStatusStrings() {
		if status != UnknownPaymentStatus && str == name {
			return status, nil
		}
	}
	return UnknownPaymentStatus, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a known payment status", s))
}

// String returns the lowercase name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// PaymentMethod is the instrument a payment was taken with.
type PaymentMethod int

const (
	// UnknownPaymentMethod represents an invalid or undefined payment method.
	UnknownPaymentMethod PaymentMethod = iota

	Cash
	Card
	Fonepay
	Bank
	Khalti
	Esewa
	Imepay
	ConnectIPS
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		UnknownPaymentMethod: "unknown",
		Cash:                 "cash",
		Card:                 "card",
		Fonepay:              "fonepay",
		Bank:                 "bank",
		Khalti:               "khalti",
		Esewa:                "esewa",
		Imepay:               "imepay",
		ConnectIPS:           "connectips",
	}
}

// ParsePaymentMethod converts the persisted/wire name of a payment method into its value.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for method, str := range getPaymentMethodStrings() {
		if method != UnknownPaymentMethod && str == name {
			return method, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a known payment method", s))
}

// String returns the lowercase name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the payment method is one of the known values.
func (m PaymentMethod) Validate() error {
	if m <= UnknownPaymentMethod || m > ConnectIPS {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// Payment is a single amount recorded against an order. Negative amounts are
// allowed so that staff can record corrections; the cancellation guard keys
// on the existence of payment rows, not on their sum.
type Payment struct {
	id            kernel.UUID
	method        PaymentMethod
	amount        decimal.Decimal
	transactionID string
	editedBy      *kernel.UUID
}

// NewPayment creates a validated payment entity.
func NewPayment(
	id kernel.UUID,
	method PaymentMethod,
	amount decimal.Decimal,
	transactionID string,
	editedBy *kernel.UUID,
) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}
	if editedBy != nil {
		if err := editedBy.Validate(); err != nil {
			return nil, err
		}
	}

	return &Payment{
		id:            id,
		method:        method,
		amount:        amount,
		transactionID: transactionID,
		editedBy:      editedBy,
	}, nil
}

// RestorePayment reconstructs a payment entity from persistence.
func RestorePayment(
	id kernel.UUID,
	method PaymentMethod,
	amount decimal.Decimal,
	transactionID string,
	editedBy *kernel.UUID,
) (*Payment, error) {
	return NewPayment(id, method, amount, transactionID, editedBy)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// Method returns the payment instrument.
func (p *Payment) Method() PaymentMethod {
	return p.method
}

// Amount returns the recorded amount.
func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

// TransactionID returns the external transaction reference, if any.
func (p *Payment) TransactionID() string {
	return p.transactionID
}

// EditedBy returns the user who last recorded or edited the payment.
// Returns nil when the payment carries no user reference.
func (p *Payment) EditedBy() *kernel.UUID {
	return p.editedBy
}
