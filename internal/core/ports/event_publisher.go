package ports

import (
	"context"
	"time"
)

// Order lifecycle event kinds published on the events topic.
const (
	OrderEventStatusChanged = "order.status_changed"
	OrderEventArchived      = "order.archived"
	OrderEventCancelled     = "order.cancelled"
	OrderEventReverted      = "order.reverted"
)

// OrderEvent is the message published after an order lifecycle operation
// commits. Consumers key on OrderCode, the identifier that survives archival.
type OrderEvent struct {
	Kind       string    `json:"kind"`
	OrderID    string    `json:"order_id"`
	OrderCode  string    `json:"order_code"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderEventPublisher publishes order lifecycle events to downstream
// consumers. Publishing happens after commit and is best effort: a publish
// failure is logged, never propagated back to the caller.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
