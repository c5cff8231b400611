package queries_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"commerce/internal/adapters/out/postgres/productrepo"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"
)

// fakeProductCache is an in-memory stand-in for the Redis cache.
type fakeProductCache struct {
	mu      sync.Mutex
	entries map[int64]*product.Product
	sets    int
}

func newFakeProductCache() *fakeProductCache {
	return &fakeProductCache{entries: make(map[int64]*product.Product)}
}

func (f *fakeProductCache) Get(_ context.Context, id int64) (*product.Product, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.entries[id]
	return p, ok, nil
}

func (f *fakeProductCache) Set(_ context.Context, aggregate *product.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[aggregate.ID()] = aggregate
	f.sets++
	return nil
}

// GetProductQueryHandlerTestSuite exercises the product read model against a
// real PostgreSQL container.
type GetProductQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	cache     *fakeProductCache
	handler   queries.GetProductQueryHandler
}

func (suite *GetProductQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *GetProductQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products RESTART IDENTITY").Error)
	suite.cache = newFakeProductCache()
	suite.handler = queries.NewGetProductQueryHandler(suite.db, suite.cache)
}

func (suite *GetProductQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetProductQueryHandlerTestSuite) seedProduct(sku string) int64 {
	repo := productrepo.NewGormProductRepository(suite.db, noopTracker{})

	price, err := kernel.NewMoneyFromString("9.99")
	suite.Require().NoError(err)
	p, err := product.NewProduct("Widget", "A basic widget", sku, price, 10, "tools")
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Add(context.Background(), p))
	return p.ID()
}

func (suite *GetProductQueryHandlerTestSuite) TestHandle_ExistingProduct_PopulatesCache() {
	ctx := context.Background()
	id := suite.seedProduct("WDG-1")

	query, err := queries.NewGetProductQuery(id, false)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(id, resp.ID)
	suite.Equal("Widget", resp.Name)
	suite.Equal("WDG-1", resp.SKU)
	suite.Equal(10, resp.StockQuantity)
	suite.False(resp.Archived)
	suite.Equal(1, suite.cache.sets)
}

func (suite *GetProductQueryHandlerTestSuite) TestHandle_CacheHit_SkipsDatabase() {
	ctx := context.Background()

	price, err := kernel.NewMoneyFromString("5.00")
	suite.Require().NoError(err)
	cached, err := product.RestoreProduct(4242, "Phantom", "", "PHM-1", price, 1, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.cache.Set(ctx, cached))
	suite.cache.sets = 0

	// No row with this id exists; a hit can only come from the cache.
	query, err := queries.NewGetProductQuery(4242, false)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("Phantom", resp.Name)
	suite.Zero(suite.cache.sets)
}

func (suite *GetProductQueryHandlerTestSuite) TestHandle_MissingProduct_ReturnsNotFoundError() {
	query, err := queries.NewGetProductQuery(424242, false)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetProductQueryHandlerTestSuite) TestHandle_ArchivedProduct_HiddenByDefault() {
	ctx := context.Background()
	id := suite.seedProduct("WDG-1")

	repo := productrepo.NewGormProductRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Delete(ctx, id))

	query, err := queries.NewGetProductQuery(id, false)
	suite.Require().NoError(err)
	_, err = suite.handler.Handle(ctx, query)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetProductQueryHandlerTestSuite) TestHandle_ArchivedProduct_VisibleWithIncludeDeleted() {
	ctx := context.Background()
	id := suite.seedProduct("WDG-1")

	repo := productrepo.NewGormProductRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Delete(ctx, id))

	query, err := queries.NewGetProductQuery(id, true)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(resp.Archived)
	// Archived rows never enter the cache.
	suite.Zero(suite.cache.sets)
}

func TestGetProductQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetProductQueryHandlerTestSuite))
}
