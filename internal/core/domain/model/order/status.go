package order

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// This is deliberately a minimal guard, not a full fulfillment state machine:
// the only forbidden edge is leaving Cancelled. Every other transition is
// permitted, including ones a stricter workflow would reject (for example
// Delivered back to Pending), and Cancelled to Cancelled is an allowed no-op.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at creation.
	Pending

	// Processing indicates the order is being prepared.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer.
	Delivered

	// Cancelled is the sole terminal-guarded state: once entered it cannot
	// be exited.
	Cancelled

	// Returned indicates the customer sent the order back.
	Returned
)

// getStatusStrings returns a map of Status values to their string
// representations as stored in the database.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
		Returned:   "RETURNED",
	}
}

// getValidStatusStrings returns only the statuses an order may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
		Returned:   "RETURNED",
	}
}

// StatusFromString parses the persisted string form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status holds one of the defined order states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status. It implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// TransitionTo checks the lifecycle guard and returns the new status.
//
// The guard has a single rule: Cancelled cannot be exited. Requesting any
// non-Cancelled status from Cancelled fails with an invalid-state-transition
// error; everything else, including Cancelled -> Cancelled, succeeds.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s == Cancelled && target != Cancelled {
		return Unknown, errs.NewInvalidStateTransitionError(s.String(), target.String())
	}

	return target, nil
}
