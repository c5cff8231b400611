package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/customer"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"
)

func storedCustomer(t *testing.T, id int64) *customer.Customer {
	t.Helper()
	address, err := customer.NewAddress("1 Main St", "Springfield", "12345", "US")
	require.NoError(t, err)

	c, err := customer.RestoreCustomer(
		id, "CUST-001", "Jane", "Doe", "jane@example.com", "+15550001",
		"$2a$10$hashhashhashhashhashha", address, kernel.ZeroMoney(),
	)
	require.NoError(t, err)
	return c
}

func TestCreateOrderCommandHandler_Handle_SnapshotsProducts(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateOrderCommand(5, "1 Main St", []commands.OrderLine{
		{ProductID: 7, Quantity: 3},
		{ProductID: 9, Quantity: 1},
	})
	require.NoError(t, err)

	products := []*product.Product{
		testProduct(t, 7, "Widget", "WDG-1", "14.995"),
		testProduct(t, 9, "Sprocket", "SPR-1", "4.25"),
	}

	var captured *order.Order
	customerRepo := new(MockCustomerRepository)
	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, int64(5)).Return(storedCustomer(t, 5), nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetMany", mock.Anything, []int64{7, 9}).Return(products, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*order.Order)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, captured)
	require.Len(t, captured.Items(), 2)
	assert.Equal(t, "Widget", captured.Items()[0].ProductName())
	assert.Equal(t, 3, captured.Items()[0].Quantity())
	// 3 x 14.995 + 1 x 4.25 = 49.235, rounded half-up to 49.24.
	assert.Equal(t, "49.24", captured.TotalAmount().StringFixed2())

	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CustomerMissing(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateOrderCommand(5, "1 Main St", []commands.OrderLine{{ProductID: 7, Quantity: 1}})
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, int64(5)).
			Return(nil, errs.NewObjectNotFoundError("customerId", int64(5))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ProductMissing(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateOrderCommand(5, "1 Main St", []commands.OrderLine{{ProductID: 7, Quantity: 1}})
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, int64(5)).Return(storedCustomer(t, 5), nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetMany", mock.Anything, []int64{7}).
			Return(nil, errs.NewObjectNotFoundError("productId", int64(7))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err := h.Handle(context.Background(), commands.CreateOrderCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
