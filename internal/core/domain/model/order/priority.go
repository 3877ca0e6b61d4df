package order

import (
	"fmt"
	"strings"

	"orderintake/internal/pkg/errs"
)

// Priority is the urgency tier of an order. It selects the fulfillment
// pipeline variant (HIGH orders run the expedited pipeline) and drives
// listing order (HIGH before MEDIUM before LOW).
type Priority string

const (
	// PriorityLow is the default tier for orders submitted without a priority.
	PriorityLow Priority = "LOW"

	// PriorityMedium is the middle urgency tier.
	PriorityMedium Priority = "MEDIUM"

	// PriorityHigh marks orders processed by the expedited pipeline.
	PriorityHigh Priority = "HIGH"
)

// ParsePriority converts a string into a Priority, case-insensitively.
// An empty string yields PriorityLow, matching the submission default.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return PriorityLow, nil
	case string(PriorityLow):
		return PriorityLow, nil
	case string(PriorityMedium):
		return PriorityMedium, nil
	case string(PriorityHigh):
		return PriorityHigh, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", s))
	}
}

// Validate checks if the Priority is one of the defined tiers.
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", string(p)))
	}
}

// String returns the uppercase wire representation of the priority.
func (p Priority) String() string {
	return string(p)
}

// Rank returns the sort rank of the priority: HIGH sorts before MEDIUM,
// MEDIUM before LOW. Unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// IsExpedited reports whether orders of this priority run the expedited pipeline.
func (p Priority) IsExpedited() bool {
	return p == PriorityHigh
}
