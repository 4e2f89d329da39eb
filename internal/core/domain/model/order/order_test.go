package order_test

import (
	"testing"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, orderType order.OrderType, deliveryCharge decimal.Decimal) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewRandomCode(),
		"Asha Gurung",
		"9841000000",
		orderType,
		nil,
		order.DeliveryAddress{},
		deliveryCharge,
		"",
		nil,
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending unpaid order", func(t *testing.T) {
		o := newTestOrder(t, order.Table, decimal.Zero)

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.Unpaid, o.PaymentStatus())
		assert.True(t, o.TotalAmount().IsZero())
		assert.Empty(t, o.Items())
		assert.Empty(t, o.Payments())
		assert.Empty(t, o.StatusLogs())
	})

	t.Run("requires customer name", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewRandomCode(), "", "",
			order.Table, nil, order.DeliveryAddress{}, decimal.Zero, "", nil, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires valid order type", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewRandomCode(), "Asha Gurung", "",
			order.UnknownType, nil, order.DeliveryAddress{}, decimal.Zero, "", nil, time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("rejects negative delivery charge", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewRandomCode(), "Asha Gurung", "",
			order.Delivery, nil, order.DeliveryAddress{}, decimal.NewFromInt(-1), "", nil, time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("recalculates total from line totals", func(t *testing.T) {
		o := newTestOrder(t, order.Table, decimal.Zero)
		now := time.Now()

		require.NoError(t, o.AddItem(kernel.NewUUID(), 2, decimal.NewFromInt(150), now))
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, decimal.NewFromInt(200), now))

		assert.Len(t, o.Items(), 2)
		assert.True(t, o.TotalAmount().Equal(decimal.NewFromInt(500)),
			"total is %s", o.TotalAmount())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		o := newTestOrder(t, order.Table, decimal.Zero)
		require.Error(t, o.AddItem(kernel.NewUUID(), 0, decimal.NewFromInt(100), time.Now()))
	})
}

func TestOrder_RemoveItem(t *testing.T) {
	o := newTestOrder(t, order.Table, decimal.Zero)
	now := time.Now()
	require.NoError(t, o.AddItem(kernel.NewUUID(), 2, decimal.NewFromInt(150), now))
	itemID := o.Items()[0].ID()

	require.NoError(t, o.RemoveItem(itemID, now))
	assert.Empty(t, o.Items())
	assert.True(t, o.TotalAmount().IsZero())

	require.ErrorIs(t, o.RemoveItem(itemID, now), errs.ErrObjectNotFound)
}

func TestOrder_Settlement(t *testing.T) {
	t.Run("required amount includes delivery charge for delivery orders only", func(t *testing.T) {
		now := time.Now()

		delivery := newTestOrder(t, order.Delivery, decimal.NewFromInt(50))
		require.NoError(t, delivery.AddItem(kernel.NewUUID(), 1, decimal.NewFromInt(500), now))
		assert.True(t, delivery.RequiredAmount().Equal(decimal.NewFromInt(550)))

		// The same stored charge does not count against a table order.
		table := newTestOrder(t, order.Table, decimal.NewFromInt(50))
		require.NoError(t, table.AddItem(kernel.NewUUID(), 1, decimal.NewFromInt(500), now))
		assert.True(t, table.RequiredAmount().Equal(decimal.NewFromInt(500)))
	})

	t.Run("settled amount sums payments exactly", func(t *testing.T) {
		o := newTestOrder(t, order.Table, decimal.Zero)
		now := time.Now()

		assert.True(t, o.SettledAmount().IsZero())

		require.NoError(t, o.RecordPayment(order.Cash, decimal.RequireFromString("0.10"), "", nil, now))
		require.NoError(t, o.RecordPayment(order.Card, decimal.RequireFromString("0.20"), "TXN-1", nil, now))

		assert.True(t, o.SettledAmount().Equal(decimal.RequireFromString("0.30")),
			"settled is %s", o.SettledAmount())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("cooking alias transition appends one audit entry", func(t *testing.T) {
		o := newTestOrder(t, order.Table, decimal.Zero)
		actor := kernel.NewUUID()
		now := time.Now()

		requested, err := order.ParseStatus("cooking")
		require.NoError(t, err)
		require.NoError(t, o.ChangeStatus(requested, &actor, now))

		assert.Equal(t, order.Preparing, o.Status())
		require.Len(t, o.StatusLogs(), 1)
		log := o.StatusLogs()[0]
		assert.Equal(t, order.Pending, log.Previous())
		assert.Equal(t, order.Preparing, log.Next())
		require.NotNil(t, log.ChangedBy())
		assert.True(t, log.ChangedBy().IsEqual(actor))
	})

	t.Run("rejects status outside the order type's set", func(t *testing.T) {
		o := newTestOrder(t, order.Takeaway, decimal.Zero)

		err := o.ChangeStatus(order.Served, nil, time.Now())

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.Takeaway, transitionErr.OrderType)
		assert.Equal(t, order.Served, transitionErr.Requested)
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.StatusLogs())
	})

	t.Run("completion is gated on settlement", func(t *testing.T) {
		// Delivery order: 500 total + 50 delivery charge, one payment of 500.
		o := newTestOrder(t, order.Delivery, decimal.NewFromInt(50))
		actor := kernel.NewUUID()
		now := time.Now()
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, decimal.NewFromInt(500), now))
		require.NoError(t, o.RecordPayment(order.Cash, decimal.NewFromInt(500), "", nil, now))

		err := o.ChangeStatus(order.Completed, &actor, now)

		require.ErrorIs(t, err, order.ErrPaymentsNotSettled)
		var settleErr *order.PaymentsNotSettledError
		require.ErrorAs(t, err, &settleErr)
		assert.True(t, settleErr.Required.Equal(decimal.NewFromInt(550)))
		assert.True(t, settleErr.Settled.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.Unpaid, o.PaymentStatus())

		// The missing 50 settles the order and completion goes through.
		require.NoError(t, o.RecordPayment(order.Cash, decimal.NewFromInt(50), "", nil, now))
		require.NoError(t, o.ChangeStatus(order.Completed, &actor, now))

		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, order.Paid, o.PaymentStatus())
		require.NotNil(t, o.CompletedBy())
		assert.True(t, o.CompletedBy().IsEqual(actor))
	})

	t.Run("overpayment also passes the gate", func(t *testing.T) {
		o := newTestOrder(t, order.Table, decimal.Zero)
		now := time.Now()
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, decimal.NewFromInt(300), now))
		require.NoError(t, o.RecordPayment(order.Cash, decimal.NewFromInt(400), "", nil, now))

		require.NoError(t, o.ChangeStatus(order.Completed, nil, now))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("cancelled is reachable from any state", func(t *testing.T) {
		for _, orderType := range []order.OrderType{order.Table, order.Takeaway, order.Delivery} {
			o := newTestOrder(t, orderType, decimal.Zero)
			require.NoError(t, o.ChangeStatus(order.Cancelled, nil, time.Now()), orderType.String())
			assert.Equal(t, order.Cancelled, o.Status())
		}
	})
}

func TestOrder_PaymentMutations(t *testing.T) {
	t.Run("remove payment clears the way for cancellation", func(t *testing.T) {
		o := newTestOrder(t, order.Table, decimal.Zero)
		now := time.Now()
		require.NoError(t, o.RecordPayment(order.Cash, decimal.NewFromInt(100), "", nil, now))
		require.True(t, o.HasPayments())

		paymentID := o.Payments()[0].ID()
		require.NoError(t, o.RemovePayment(paymentID, now))

		assert.False(t, o.HasPayments())
		require.ErrorIs(t, o.RemovePayment(paymentID, now), errs.ErrObjectNotFound)
	})

	t.Run("terminal orders reject item and payment mutations", func(t *testing.T) {
		o := newTestOrder(t, order.Table, decimal.Zero)
		now := time.Now()
		require.NoError(t, o.ChangeStatus(order.Cancelled, nil, now))

		require.ErrorIs(t, o.AddItem(kernel.NewUUID(), 1, decimal.NewFromInt(10), now), order.ErrOrderIsClosed)
		require.ErrorIs(t, o.RecordPayment(order.Cash, decimal.NewFromInt(10), "", nil, now), order.ErrOrderIsClosed)
	})
}
