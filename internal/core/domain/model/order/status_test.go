package order_test

import (
	"testing"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Pending, order.Processing, order.Shipped,
		order.Delivered, order.Cancelled, order.Returned,
	}
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:    "UNKNOWN",
		order.Pending:    "PENDING",
		order.Processing: "PROCESSING",
		order.Shipped:    "SHIPPED",
		order.Delivered:  "DELIVERED",
		order.Cancelled:  "CANCELLED",
		order.Returned:   "RETURNED",
	}

	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}

	t.Run("out of range values print as unknown", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.Status(99).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips every valid status", func(t *testing.T) {
		for _, status := range allStatuses() {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("REFUNDED")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range allStatuses() {
		require.NoError(t, status.Validate())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("every edge between non-cancelled states is allowed", func(t *testing.T) {
		for _, from := range allStatuses() {
			if from == order.Cancelled {
				continue
			}
			for _, to := range allStatuses() {
				next, err := from.TransitionTo(to)

				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, next)
			}
		}
	})

	t.Run("cancelled cannot be exited", func(t *testing.T) {
		for _, to := range allStatuses() {
			if to == order.Cancelled {
				continue
			}

			_, err := order.Cancelled.TransitionTo(to)

			require.ErrorIs(t, err, errs.ErrInvalidStateTransition, "CANCELLED -> %s", to)
		}
	})

	t.Run("cancelled to cancelled is a permitted no-op", func(t *testing.T) {
		next, err := order.Cancelled.TransitionTo(order.Cancelled)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("invalid target is rejected before the guard", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
