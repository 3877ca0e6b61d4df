package queries

import (
	"errors"
	"time"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/guard"
)

var (
	ErrGetStuckOrdersQueryIsNotConstructed = errors.New(
		"GetStuckOrdersQuery must be created via NewGetStuckOrdersQuery constructor",
	)
	ErrThresholdIsInvalid = errors.New("threshold must be greater than 0")
)

// GetStuckOrdersQuery finds orders that entered processing but have not
// reached a terminal state within the threshold. Used by the watchdog job;
// a crashed worker leaves its order observable through this query.
type GetStuckOrdersQuery struct { //nolint:recvcheck //using for validation
	threshold time.Duration

	guard guard.ConstructorGuard
}

// NewGetStuckOrdersQuery creates a query for orders stuck in processing
// longer than the threshold.
func NewGetStuckOrdersQuery(threshold time.Duration) (GetStuckOrdersQuery, error) {
	query := GetStuckOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setThreshold(threshold); err != nil {
		return GetStuckOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStuckOrdersQueryIsNotConstructed if validation fails.
func (q GetStuckOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStuckOrdersQueryIsNotConstructed)
}

// Threshold returns how long an order may stay in processing before it
// counts as stuck.
func (q GetStuckOrdersQuery) Threshold() time.Duration {
	return q.threshold
}

func (q *GetStuckOrdersQuery) setThreshold(threshold time.Duration) error {
	if threshold <= 0 {
		return ErrThresholdIsInvalid
	}

	q.threshold = threshold
	return nil
}

// StuckOrderResponse identifies one order stuck in processing.
type StuckOrderResponse struct {
	ID        kernel.UUID
	OrderID   string
	VendorID  kernel.UUID
	UpdatedAt time.Time
}
