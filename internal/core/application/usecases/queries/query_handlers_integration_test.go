package queries_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/refstore"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker implements the repository's tracker for test purposes.
// It's a no-op implementation since we don't need aggregate tracking in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

// seededCustomer bundles a reference row with its domain identifier.
type seededCustomer struct {
	id    kernel.UUID
	name  string
	email string
	phone string
}

// QueryHandlersIntegrationTestSuite exercises every query handler against a
// real PostgreSQL schema, seeded through the write-side repositories.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository

	customer seededCustomer
	address  kernel.UUID
	item     kernel.UUID
	addon    kernel.UUID
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &orderrepo.OrderAddonDTO{},
		&refstore.CustomerDTO{}, &refstore.AddressDTO{},
		&refstore.ItemDTO{}, &refstore.AddonDTO{},
	))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE customers, addresses, items, addons CASCADE").Error)

	suite.customer = seededCustomer{
		id:    kernel.NewUUID(),
		name:  "Ada Smith",
		email: "ada@example.com",
		phone: "+15550100",
	}
	suite.Require().NoError(suite.db.Create(&refstore.CustomerDTO{
		ID:    suite.customer.id.Bytes(),
		Name:  suite.customer.name,
		Email: suite.customer.email,
		Phone: suite.customer.phone,
	}).Error)

	suite.address = kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&refstore.AddressDTO{
		ID:     suite.address.Bytes(),
		Street: "1 Main St",
		City:   "Springfield",
		Zip:    "12345",
	}).Error)

	suite.item = kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&refstore.ItemDTO{
		ID:         suite.item.Bytes(),
		Name:       "Margherita",
		PriceCents: 1200,
	}).Error)

	suite.addon = kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&refstore.AddonDTO{
		ID:         suite.addon.Bytes(),
		Name:       "Extra cheese",
		PriceCents: 150,
	}).Error)
}

// seedOrder persists a pending order for the suite's customer, created at the
// given instant.
func (suite *QueryHandlersIntegrationTestSuite) seedOrder(createdAt time.Time) *order.Order {
	o, err := order.NewOrder(
		kernel.NewUUID(),
		suite.customer.id,
		suite.address,
		[]kernel.UUID{suite.item},
		[]kernel.UUID{suite.addon},
		createdAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderStatus_ReturnsStatusAndTimestamps() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	o := suite.seedOrder(now)
	suite.Require().NoError(o.ChangeStatus(order.Accepted, "", now.Add(2*time.Minute)))
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))

	query, err := queries.NewGetOrderStatusQuery(o.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetOrderStatusQueryHandler(suite.db)
	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int(order.Accepted), result.Status)
	suite.Equal("ACCEPTED", result.StatusName)
	suite.Len(result.Timestamps, 2)
	suite.WithinDuration(now, result.Timestamps["pending"], time.Second)
	suite.WithinDuration(now.Add(2*time.Minute), result.Timestamps["accepted"], time.Second)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderStatus_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderStatusQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetOrderStatusQueryHandler(suite.db)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrdersByStatus_FiltersAndSortsNewestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	older := suite.seedOrder(base.Add(-time.Hour))
	newer := suite.seedOrder(base)
	delivered := suite.seedOrder(base.Add(-2 * time.Hour))
	suite.Require().NoError(delivered.ChangeStatus(order.Delivered, "", base))
	suite.Require().NoError(suite.orderRepo.Update(ctx, delivered))

	query, err := queries.NewGetOrdersByStatusQuery(int(order.Pending))
	suite.Require().NoError(err)

	handler := queries.NewGetOrdersByStatusQueryHandler(suite.db)
	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal(newer.ID(), result[0].OrderID)
	suite.Equal(older.ID(), result[1].OrderID)
	suite.Equal(suite.customer.name, result[0].Customer.Name)
	suite.Equal(suite.customer.phone, result[0].Customer.Phone)
	suite.Equal("1 Main St", result[0].Address.Street)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrdersByStatus_NoMatches_ReturnsEmptySlice() {
	suite.seedOrder(time.Now().UTC())

	query, err := queries.NewGetOrdersByStatusQuery(int(order.Delivered))
	suite.Require().NoError(err)

	handler := queries.NewGetOrdersByStatusQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrdersByCustomer_ReturnsOnlyThatCustomersOrders() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	mine := suite.seedOrder(base)

	otherCustomer := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&refstore.CustomerDTO{
		ID:    otherCustomer.Bytes(),
		Name:  "Grace Jones",
		Email: "grace@example.com",
		Phone: "+15550199",
	}).Error)
	theirs, err := order.NewOrder(
		kernel.NewUUID(), otherCustomer, suite.address, nil, nil, base)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, theirs))

	query, err := queries.NewGetOrdersByCustomerQuery(suite.customer.id)
	suite.Require().NoError(err)

	handler := queries.NewGetOrdersByCustomerQueryHandler(suite.db)
	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(mine.ID(), result[0].OrderID)
	suite.Equal("Springfield", result[0].Address.City)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetAllOrders_ReturnsAllNewestFirst() {
	base := time.Now().UTC().Truncate(time.Millisecond)

	first := suite.seedOrder(base.Add(-time.Hour))
	second := suite.seedOrder(base)

	handler := queries.NewGetAllOrdersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetAllOrdersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal(second.ID(), result[0].OrderID)
	suite.Equal(first.ID(), result[1].OrderID)
	suite.Equal(suite.customer.email, result[0].Customer.Email)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderByID_ReturnsFullDetail() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	o := suite.seedOrder(now)

	query, err := queries.NewGetOrderByIDQuery(o.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetOrderByIDQueryHandler(suite.db)
	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(o.ID(), result.OrderID)
	suite.Equal(int(order.Pending), result.Status)
	suite.Equal("PENDING", result.StatusName)
	suite.Equal(suite.customer.name, result.Customer.Name)
	suite.Equal("1 Main St", result.Address.Street)

	suite.Require().Len(result.Items, 1)
	suite.Equal("Margherita", result.Items[0].Name)
	suite.Equal(1200, result.Items[0].PriceCents)

	suite.Require().Len(result.Addons, 1)
	suite.Equal("Extra cheese", result.Addons[0].Name)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderByID_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetOrderByIDQueryHandler(suite.db)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetCurrentOrder_ReturnsLatestOrderForPhone() {
	base := time.Now().UTC().Truncate(time.Millisecond)

	suite.seedOrder(base.Add(-time.Hour))
	latest := suite.seedOrder(base)

	query, err := queries.NewGetCurrentOrderQuery(suite.customer.phone)
	suite.Require().NoError(err)

	handler := queries.NewGetCurrentOrderQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(result.Found)
	suite.Equal(latest.ID(), result.Order.OrderID)
	suite.Len(result.Order.Items, 1)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetCurrentOrder_UnknownPhone_ReturnsNotFound() {
	suite.seedOrder(time.Now().UTC())

	query, err := queries.NewGetCurrentOrderQuery("+19999999")
	suite.Require().NoError(err)

	handler := queries.NewGetCurrentOrderQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.False(result.Found)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetCurrentOrder_CustomerWithoutOrders_ReturnsNotFound() {
	query, err := queries.NewGetCurrentOrderQuery(suite.customer.phone)
	suite.Require().NoError(err)

	handler := queries.NewGetCurrentOrderQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.False(result.Found)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
