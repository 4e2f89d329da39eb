package history_test

import (
	"testing"
	"time"

	"pos/internal/core/domain/model/history"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCompletedOrder builds a fully settled delivery order that went through
// pending -> preparing -> completed.
func newCompletedOrder(t *testing.T, actor kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewRandomCode(),
		"Bibek Shrestha",
		"9851000000",
		order.Delivery,
		nil,
		order.DeliveryAddress{},
		decimal.NewFromInt(50),
		"ring the bell",
		nil,
		time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, o.AddItem(kernel.NewUUID(), 2, decimal.NewFromInt(150), now))
	require.NoError(t, o.AddItem(kernel.NewUUID(), 1, decimal.NewFromInt(200), now))
	require.NoError(t, o.RecordPayment(order.Cash, decimal.NewFromInt(300), "", &actor, now))
	require.NoError(t, o.RecordPayment(order.Fonepay, decimal.NewFromInt(250), "TXN-42", &actor, now))
	require.NoError(t, o.ChangeStatus(order.Preparing, &actor, now))
	require.NoError(t, o.ChangeStatus(order.Completed, &actor, now))
	return o
}

func TestFromCompletedOrder(t *testing.T) {
	t.Run("copies the full record with children", func(t *testing.T) {
		actor := kernel.NewUUID()
		o := newCompletedOrder(t, actor)
		archivedAt := time.Now()

		archived, skipped, err := history.FromCompletedOrder(kernel.NewUUID(), o, &actor, archivedAt)

		require.NoError(t, err)
		assert.Empty(t, skipped)
		assert.True(t, archived.Code().IsEqual(o.Code()))
		assert.Equal(t, order.Completed, archived.Status())
		assert.Equal(t, order.Paid, archived.PaymentStatus())
		assert.True(t, archived.TotalAmount().Equal(decimal.NewFromInt(500)))
		assert.True(t, archived.DeliveryCharge().Equal(decimal.NewFromInt(50)))
		assert.Equal(t, "ring the bell", archived.SpecialNotes())
		require.NotNil(t, archived.CompletedBy())
		assert.True(t, archived.CompletedBy().IsEqual(actor))

		// Live timestamps are preserved verbatim.
		assert.True(t, archived.CreatedAt().Equal(o.CreatedAt()))
		assert.True(t, archived.UpdatedAt().Equal(o.UpdatedAt()))
		assert.True(t, archived.ArchivedAt().Equal(archivedAt))

		require.Len(t, archived.Items(), 2)
		require.Len(t, archived.Payments(), 2)
		require.Len(t, archived.StatusLogs(), 1)
		assert.Equal(t, order.Pending, archived.StatusLogs()[0].Previous())
		assert.Equal(t, order.Preparing, archived.StatusLogs()[0].Next())

		// Archived children get fresh identifiers.
		assert.False(t, archived.Items()[0].ID().IsEqual(o.Items()[0].ID()))
		assert.True(t, archived.Items()[0].MenuItemID().IsEqual(o.Items()[0].MenuItemID()))
	})

	t.Run("zeroes the delivery charge for non-delivery orders", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewRandomCode(), "Bibek Shrestha", "",
			order.Table, nil, order.DeliveryAddress{}, decimal.NewFromInt(50), "", nil, time.Now(),
		)
		require.NoError(t, err)
		require.NoError(t, o.ChangeStatus(order.Completed, nil, time.Now()))

		archived, _, err := history.FromCompletedOrder(kernel.NewUUID(), o, nil, time.Now())

		require.NoError(t, err)
		assert.True(t, archived.DeliveryCharge().IsZero())
	})

	t.Run("rejects a non-completed order", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewRandomCode(), "Bibek Shrestha", "",
			order.Table, nil, order.DeliveryAddress{}, decimal.Zero, "", nil, time.Now(),
		)
		require.NoError(t, err)

		_, _, err = history.FromCompletedOrder(kernel.NewUUID(), o, nil, time.Now())
		require.ErrorIs(t, err, history.ErrOrderIsNotCompleted)
	})

	t.Run("falls back to the order's completed_by when no actor is given", func(t *testing.T) {
		actor := kernel.NewUUID()
		o := newCompletedOrder(t, actor)

		archived, _, err := history.FromCompletedOrder(kernel.NewUUID(), o, nil, time.Now())

		require.NoError(t, err)
		require.NotNil(t, archived.CompletedBy())
		assert.True(t, archived.CompletedBy().IsEqual(actor))
	})
}

func TestFromCancelledOrder(t *testing.T) {
	t.Run("archives with cancelled status and reason", func(t *testing.T) {
		actor := kernel.NewUUID()
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewRandomCode(), "Bibek Shrestha", "",
			order.Takeaway, nil, order.DeliveryAddress{}, decimal.Zero, "", nil, time.Now(),
		)
		require.NoError(t, err)
		now := time.Now()
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, decimal.NewFromInt(120), now))
		require.NoError(t, o.ChangeStatus(order.Cancelled, &actor, now))

		archived, err := history.FromCancelledOrder(kernel.NewUUID(), o, &actor, "customer left", now)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, archived.Status())
		assert.Equal(t, "customer left", archived.CancellationReason())
		require.NotNil(t, archived.CancelledBy())
		assert.True(t, archived.CancelledBy().IsEqual(actor))
		assert.Nil(t, archived.CompletedBy())
		require.Len(t, archived.Items(), 1)
		require.Len(t, archived.StatusLogs(), 1)
	})
}

func TestArchivedOrder_ToOrder(t *testing.T) {
	t.Run("revert resets settlement state and timestamps", func(t *testing.T) {
		actor := kernel.NewUUID()
		o := newCompletedOrder(t, actor)
		archived, _, err := history.FromCompletedOrder(kernel.NewUUID(), o, &actor, time.Now())
		require.NoError(t, err)

		revertedAt := time.Now().Add(time.Minute)
		restored, skipped, err := archived.ToOrder(kernel.NewUUID(), order.Pending, revertedAt)

		require.NoError(t, err)
		assert.Empty(t, skipped)
		assert.True(t, restored.Code().IsEqual(o.Code()))
		assert.Equal(t, order.Pending, restored.Status())
		assert.Equal(t, order.Unpaid, restored.PaymentStatus())
		assert.Nil(t, restored.CompletedBy())
		assert.True(t, restored.CreatedAt().Equal(revertedAt))
		assert.True(t, restored.UpdatedAt().Equal(revertedAt))

		// Items and payments come back; the audit trail does not.
		require.Len(t, restored.Items(), 2)
		require.Len(t, restored.Payments(), 2)
		assert.Empty(t, restored.StatusLogs())
		assert.True(t, restored.TotalAmount().Equal(decimal.NewFromInt(500)))
		for _, p := range restored.Payments() {
			assert.Nil(t, p.EditedBy())
		}

		// The copied payments still settle the order, so it can be
		// completed again without re-entering them.
		assert.True(t, restored.IsSettled())
	})

	t.Run("rejects terminal target statuses", func(t *testing.T) {
		actor := kernel.NewUUID()
		o := newCompletedOrder(t, actor)
		archived, _, err := history.FromCompletedOrder(kernel.NewUUID(), o, &actor, time.Now())
		require.NoError(t, err)

		for _, target := range []order.Status{order.Completed, order.Cancelled} {
			_, _, err := archived.ToOrder(kernel.NewUUID(), target, time.Now())
			require.Error(t, err, target.String())
		}
	})

	t.Run("rejects unknown target status", func(t *testing.T) {
		actor := kernel.NewUUID()
		o := newCompletedOrder(t, actor)
		archived, _, err := history.FromCompletedOrder(kernel.NewUUID(), o, &actor, time.Now())
		require.NoError(t, err)

		_, _, err = archived.ToOrder(kernel.NewUUID(), order.UnknownStatus, time.Now())
		require.Error(t, err)
	})
}

func TestArchivedOrder_Validate(t *testing.T) {
	var a history.ArchivedOrder
	require.ErrorIs(t, a.Validate(), history.ErrArchivedOrderIsNotConstructed)
}
