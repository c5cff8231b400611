package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
)

func testMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func testProduct(t *testing.T, id int64, name, sku, price string) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, name, "", sku, testMoney(t, price), 10, "")
	require.NoError(t, err)
	return p
}

// testOrder builds a persisted-looking order with one item, id 1, version 1.
func testOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.RestoreOrderItem(10, 7, "Widget", testMoney(t, "9.99"), 2, "")
	require.NoError(t, err)

	o, err := order.RestoreOrder(1, 5, time.Now().UTC(), order.Pending, "1 Main St", []*order.OrderItem{item}, 1)
	require.NoError(t, err)
	return o
}
