package order

import (
	"time"

	"pos/internal/core/domain/model/kernel"
)

// StatusLog is one entry of the append-only status audit trail. The previous
// status may be UnknownStatus for legacy rows recorded before the trail
// existed; the new status is always valid.
type StatusLog struct {
	id        kernel.UUID
	previous  Status
	next      Status
	changedBy *kernel.UUID
	timestamp time.Time
}

// NewStatusLog creates a validated audit trail entry.
func NewStatusLog(
	id kernel.UUID,
	previous, next Status,
	changedBy *kernel.UUID,
	timestamp time.Time,
) (*StatusLog, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	if changedBy != nil {
		if err := changedBy.Validate(); err != nil {
			return nil, err
		}
	}

	return &StatusLog{
		id:        id,
		previous:  previous,
		next:      next,
		changedBy: changedBy,
		timestamp: timestamp,
	}, nil
}

// RestoreStatusLog reconstructs an audit trail entry from persistence.
func RestoreStatusLog(
	id kernel.UUID,
	previous, next Status,
	changedBy *kernel.UUID,
	timestamp time.Time,
) (*StatusLog, error) {
	return NewStatusLog(id, previous, next, changedBy, timestamp)
}

// ID returns the entry's unique identifier.
func (l *StatusLog) ID() kernel.UUID {
	return l.id
}

// Previous returns the status the order moved from.
func (l *StatusLog) Previous() Status {
	return l.previous
}

// Next returns the status the order moved to.
func (l *StatusLog) Next() Status {
	return l.next
}

// ChangedBy returns the user who made the transition, or nil.
func (l *StatusLog) ChangedBy() *kernel.UUID {
	return l.changedBy
}

// Timestamp returns when the transition happened.
func (l *StatusLog) Timestamp() time.Time {
	return l.timestamp
}
