// Package order provides domain entities and business logic for the driver
// order workflow. It implements the Order aggregate root together with the
// status state machine that governs the delivery progression.
//
// The package includes:
//   - Status: the ordered delivery progression with two absorbing failure states
//   - Action: driver actions with display metadata and target statuses
//   - Workflow functions: available actions, transition validation, instructions
//   - Order: the aggregate root enforcing proof-of-completion gates
//   - PickupConfirmation / DeliveryConfirmation: proof value objects
//
// Key business rules:
//   - Status moves strictly forward along the progression, or jumps to a
//     terminal state (Cancelled/Failed) from any non-terminal status
//   - Delivered is only reachable through a delivery confirmation carrying a
//     photo and a bounded-accuracy geolocation
//   - PickedUp is only reachable through a pickup confirmation
//   - Terminal orders accept no further transitions
//
// All workflow functions are pure: they perform no I/O and never mutate
// state, so they are safe to call from any goroutine.
package order
