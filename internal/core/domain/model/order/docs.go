// Package order provides domain entities and business logic for order intake
// and fulfillment. It implements the Order aggregate root with its lifecycle
// state machine.
//
// The package includes:
//   - Order: The aggregate root owning identity, shipping address, and line items
//   - Status: A state machine enforcing pending -> processing -> processed/failed
//   - Priority: The LOW/MEDIUM/HIGH urgency tier selecting the pipeline variant
//   - Item: An immutable order line with a positive quantity
//   - Address: A validated shipping address value object
//
// Key business rules:
//   - The caller-supplied order ID is unique per vendor, not globally
//   - Orders are created in pending status with at least one item
//   - Only the background fulfillment processor mutates status after creation
//   - processed and failed are terminal states with no further transitions
package order
