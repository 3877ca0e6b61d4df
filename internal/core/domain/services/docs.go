// Package services contains stateless domain services for order fulfillment.
//
// FulfillmentPipeline plans the named stage sequence (and per-stage delay)
// that the background processor walks an order through. Keeping the plan in
// the domain layer makes the pipeline variants testable without any worker
// or persistence machinery.
package services
