package order_test

import (
	"strings"
	"testing"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func item(t *testing.T, price string, qty int) *order.OrderItem {
	t.Helper()
	i, err := order.NewOrderItem(1, "Widget", money(t, price), qty, "")
	require.NoError(t, err)
	return i
}

func TestNewOrderItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		i, err := order.NewOrderItem(7, "Widget", money(t, "19.99"), 2, "gift wrap")

		require.NoError(t, err)
		require.NoError(t, i.Validate())
		assert.Equal(t, int64(7), i.ProductID())
		assert.Equal(t, "Widget", i.ProductName())
		assert.Equal(t, 2, i.Quantity())
		assert.Equal(t, "gift wrap", i.Notes())
	})

	t.Run("should fail on missing product reference", func(t *testing.T) {
		_, err := order.NewOrderItem(0, "Widget", money(t, "19.99"), 2, "")

		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "validation.orderItem.product.mandatory", vErr.MessageKey)
	})

	t.Run("should fail on non-positive quantity", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			_, err := order.NewOrderItem(7, "Widget", money(t, "19.99"), qty, "")

			var vErr *errs.ValidationError
			require.ErrorAs(t, err, &vErr, "qty %d", qty)
			assert.Equal(t, "validation.orderItem.quantity.positive", vErr.MessageKey)
		}
	})

	t.Run("should fail on non-positive unit price", func(t *testing.T) {
		neg, _ := kernel.NewMoneyFromString("-1")
		for _, price := range []kernel.Money{kernel.ZeroMoney(), neg} {
			_, err := order.NewOrderItem(7, "Widget", price, 1, "")

			var vErr *errs.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "validation.orderItem.price.positive", vErr.MessageKey)
		}
	})

	t.Run("should bound notes length", func(t *testing.T) {
		_, err := order.NewOrderItem(7, "Widget", money(t, "19.99"), 1, strings.Repeat("n", order.MaxItemNotesLen+1))

		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestOrderItem_Subtotal(t *testing.T) {
	t.Run("subtotal is price times quantity, unrounded", func(t *testing.T) {
		i := item(t, "5.005", 3)

		assert.Equal(t, "15.015", i.Subtotal().String())
	})

	t.Run("changing quantity changes subtotal", func(t *testing.T) {
		i := item(t, "19.99", 2)

		require.NoError(t, i.ChangeQuantity(5))
		assert.Equal(t, "99.95", i.Subtotal().String())
	})

	t.Run("quantity change is rejected for non-positive values", func(t *testing.T) {
		i := item(t, "19.99", 2)

		require.Error(t, i.ChangeQuantity(0))
		assert.Equal(t, 2, i.Quantity())
	})
}

func TestOrderItem_Validate(t *testing.T) {
	var nilItem *order.OrderItem
	assert.Equal(t, order.ErrOrderItemIsNotConstructed, nilItem.Validate())

	var zero order.OrderItem
	assert.Equal(t, order.ErrOrderItemIsNotConstructed, zero.Validate())
}

func TestOrderItem_Restore(t *testing.T) {
	i, err := order.RestoreOrderItem(11, 7, "Widget", money(t, "19.99"), 2, "")

	require.NoError(t, err)
	assert.Equal(t, int64(11), i.ID())

	t.Run("restore re-runs validation", func(t *testing.T) {
		_, err := order.RestoreOrderItem(11, 7, "Widget", money(t, "19.99"), 0, "")
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}
