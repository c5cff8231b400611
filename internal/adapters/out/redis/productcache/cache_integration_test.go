package productcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"commerce/internal/adapters/out/redis/productcache"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
)

// ProductCacheIntegrationTestSuite exercises the cache against a real Redis
// container.
type ProductCacheIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	cache     *productcache.ProductCache
}

func (suite *ProductCacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: endpoint})
	suite.Require().NoError(suite.client.Ping(ctx).Err())
}

func (suite *ProductCacheIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
	suite.cache = productcache.NewProductCache(suite.client, time.Minute)
}

func (suite *ProductCacheIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductCacheIntegrationTestSuite) TestGet_EmptyCache_Misses() {
	cached, found, err := suite.cache.Get(context.Background(), 42)
	suite.Require().NoError(err)
	suite.False(found)
	suite.Nil(cached)
}

func (suite *ProductCacheIntegrationTestSuite) TestSetThenGet_RoundTripsProduct() {
	ctx := context.Background()

	original := suite.createTestProduct(42, "WDG-1")
	suite.Require().NoError(suite.cache.Set(ctx, original))

	cached, found, err := suite.cache.Get(ctx, 42)
	suite.Require().NoError(err)
	suite.Require().True(found)

	suite.Equal(original.ID(), cached.ID())
	suite.Equal(original.Name(), cached.Name())
	suite.Equal(original.SKU(), cached.SKU())
	suite.True(cached.Price().IsEqual(original.Price()))
	suite.Equal(original.StockQuantity(), cached.StockQuantity())
}

func (suite *ProductCacheIntegrationTestSuite) TestInvalidate_DropsEntry() {
	ctx := context.Background()

	original := suite.createTestProduct(42, "WDG-1")
	suite.Require().NoError(suite.cache.Set(ctx, original))

	suite.Require().NoError(suite.cache.Invalidate(ctx, 42))

	_, found, err := suite.cache.Get(ctx, 42)
	suite.Require().NoError(err)
	suite.False(found)
}

func (suite *ProductCacheIntegrationTestSuite) TestInvalidate_AbsentKey_IsNotAnError() {
	suite.Require().NoError(suite.cache.Invalidate(context.Background(), 4242))
}

func (suite *ProductCacheIntegrationTestSuite) createTestProduct(id int64, sku string) *product.Product {
	price, err := kernel.NewMoneyFromString("9.99")
	suite.Require().NoError(err)

	p, err := product.RestoreProduct(id, "Widget", "A basic widget", sku, price, 10, "tools")
	suite.Require().NoError(err)
	return p
}

func TestProductCacheIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductCacheIntegrationTestSuite))
}
