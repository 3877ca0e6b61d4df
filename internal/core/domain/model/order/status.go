package order

import (
	"fmt"

	"orderintake/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as it moves through
// background fulfillment. It implements a state machine with defined
// transitions to ensure orders follow the correct workflow.
//
// State transitions:
//
//	pending ──> processing ──> processed
//	   │            │
//	   └────────────┴──> failed
//
// processed and failed are terminal: no automatic transition ever leaves them.
// Status values are stored as strings in persistence and API responses.
type Status string

const (
	// Pending is the initial status assigned when an order is created.
	// Orders in this status are waiting to be picked up by a fulfillment worker.
	Pending Status = "pending"

	// Processing indicates a fulfillment worker is walking the order through
	// its pipeline stages.
	Processing Status = "processing"

	// Processed indicates the fulfillment pipeline completed successfully.
	// This is a terminal state.
	Processed Status = "processed"

	// Failed indicates fulfillment aborted due to a fault. This is a terminal
	// state; recovery requires out-of-band intervention.
	Failed Status = "failed"
)

// getValidStatuses returns the set of statuses accepted from external sources.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:    {},
		Processing: {},
		Processed:  {},
		Failed:     {},
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Used to guard Status values arriving from persistence or the API.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the lowercase wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further automatic transition can occur.
func (s Status) IsTerminal() bool {
	return s == Processed || s == Failed
}

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - pending -> processing
//
// Returns an error for any other source state, including re-entering
// processing from a terminal state.
func (s Status) StartProcessing() (Status, error) {
	if s != Pending {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start processing", s),
		)
	}
	return Processing, nil
}

// MarkProcessed transitions the status to Processed.
//
// Valid transitions:
//   - processing -> processed
//
// An order must pass through processing; pending orders cannot jump straight
// to processed, and terminal states cannot be re-entered.
func (s Status) MarkProcessed() (Status, error) {
	if s != Processing {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to mark processed", s),
		)
	}
	return Processed, nil
}

// MarkFailed transitions the status to Failed.
//
// Valid transitions:
//   - pending -> failed
//   - processing -> failed
//
// Terminal states cannot fail again.
func (s Status) MarkFailed() (Status, error) {
	if s.IsTerminal() {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is terminal and cannot be marked failed", s),
		)
	}
	if err := s.Validate(); err != nil {
		return "", err
	}
	return Failed, nil
}
