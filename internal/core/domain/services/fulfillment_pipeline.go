package services

import "time"

// Default per-stage delays for the two pipeline variants. Stages only model
// elapsed time; the delay is the cost of the simulated checkpoint.
const (
	DefaultStandardStageDelay  = 2 * time.Second
	DefaultExpeditedStageDelay = 1 * time.Second
)

// Stage is one named checkpoint in a fulfillment pipeline. Executing a stage
// performs no business logic; it models elapsed time and is logged.
type Stage struct {
	Name  string
	Delay time.Duration
}

// FulfillmentPipeline plans the stage sequence an order walks through during
// background processing. The standard pipeline has six checkpoints; the
// expedited variant used for HIGH-priority orders has seven shorter ones,
// adding a shipping-label generation step.
type FulfillmentPipeline struct {
	standardDelay  time.Duration
	expeditedDelay time.Duration
}

// NewFulfillmentPipeline creates a pipeline planner with the given per-stage
// delays. Non-positive delays fall back to the defaults.
func NewFulfillmentPipeline(standardDelay, expeditedDelay time.Duration) FulfillmentPipeline {
	if standardDelay <= 0 {
		standardDelay = DefaultStandardStageDelay
	}
	if expeditedDelay <= 0 {
		expeditedDelay = DefaultExpeditedStageDelay
	}
	return FulfillmentPipeline{
		standardDelay:  standardDelay,
		expeditedDelay: expeditedDelay,
	}
}

// Plan returns the ordered stage sequence for an order. Expedited orders get
// the seven-stage variant with the shorter delay.
func (p FulfillmentPipeline) Plan(expedited bool) []Stage {
	if expedited {
		return p.stages(p.expeditedDelay,
			"Expedited order validation",
			"Priority inventory allocation",
			"Express shipping calculation",
			"Immediate payment processing",
			"Priority shipping label generation",
			"Urgent customer notification",
			"Status update to processed",
		)
	}

	return p.stages(p.standardDelay,
		"Validating order details and customer information",
		"Checking inventory availability for all items",
		"Calculating shipping costs and delivery time",
		"Processing payment authorization",
		"Sending order confirmation email to customer",
		"Updating order status to processed",
	)
}

func (p FulfillmentPipeline) stages(delay time.Duration, names ...string) []Stage {
	stages := make([]Stage, 0, len(names))
	for _, name := range names {
		stages = append(stages, Stage{Name: name, Delay: delay})
	}
	return stages
}
