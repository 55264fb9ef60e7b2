// Package order provides domain entities and business logic for order management
// in the storefront. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Detail: A line item value object owned entirely by its parent order
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must reference a valid customer and contain at least one line item
//   - Order identifiers are assigned by the database on first insert
//   - Order status follows a defined workflow: Created -> Cancelled
//   - Cancelled is a final state; repeat cancellation is reported distinctly
//   - Line items never exist apart from their order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
