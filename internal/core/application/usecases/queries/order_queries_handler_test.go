package queries_test

import (
	"context"
	"testing"
	"time"

	"orderintake/internal/adapters/out/postgres/orderrepo"
	"orderintake/internal/core/application/usecases/queries"
	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracker without recording anything.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

// OrderQueriesHandlerTestSuite exercises the order read models against a real
// PostgreSQL instance: listing with filters and pagination, status lookup,
// per-vendor summary, and the stuck-order scan.
type OrderQueriesHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderQueriesHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *OrderQueriesHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
}

// seedOrder persists an order with a controlled status, priority and creation time.
func (suite *OrderQueriesHandlerTestSuite) seedOrder(
	orderID string,
	vendorID kernel.UUID,
	priority order.Priority,
	status order.Status,
	createdAt time.Time,
	quantities ...int,
) *order.Order {
	address, err := order.NewAddress("123 Main St", "Springfield", "IL", "62704")
	suite.Require().NoError(err)

	items := make([]order.Item, 0, len(quantities))
	for _, qty := range quantities {
		item, itemErr := order.NewItem(kernel.NewUUID(), "Widget", qty)
		suite.Require().NoError(itemErr)
		items = append(items, item)
	}

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), orderID, vendorID, priority, status, address, items, createdAt, createdAt)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *OrderQueriesHandlerTestSuite) TestListOrders_SortsByPriorityThenCreation() {
	ctx := context.Background()
	vendorID := kernel.NewUUID()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	suite.seedOrder("ORD-LOW", vendorID, order.PriorityLow, order.Pending, base, 1)
	suite.seedOrder("ORD-MED", vendorID, order.PriorityMedium, order.Pending, base.Add(time.Hour), 1)
	suite.seedOrder("ORD-HIGH-LATE", vendorID, order.PriorityHigh, order.Pending, base.Add(2*time.Hour), 1)
	suite.seedOrder("ORD-HIGH-EARLY", vendorID, order.PriorityHigh, order.Pending, base.Add(time.Hour), 1)

	query, err := queries.NewListOrdersQuery(vendorID, queries.ListOrdersFilter{}, 1, 10)
	suite.Require().NoError(err)

	handler := queries.NewListOrdersQueryHandler(suite.db)
	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 4)

	suite.Equal("ORD-HIGH-EARLY", result[0].OrderID)
	suite.Equal("ORD-HIGH-LATE", result[1].OrderID)
	suite.Equal("ORD-MED", result[2].OrderID)
	suite.Equal("ORD-LOW", result[3].OrderID)
}

func (suite *OrderQueriesHandlerTestSuite) TestListOrders_AttachesItemsInSubmissionOrder() {
	ctx := context.Background()
	vendorID := kernel.NewUUID()

	suite.seedOrder("ORD-001", vendorID, order.PriorityLow, order.Pending,
		time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), 1, 2, 3)

	query, err := queries.NewListOrdersQuery(vendorID, queries.ListOrdersFilter{}, 1, 10)
	suite.Require().NoError(err)

	result, err := queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().Len(result[0].Items, 3)
	suite.Equal(1, result[0].Items[0].Quantity)
	suite.Equal(2, result[0].Items[1].Quantity)
	suite.Equal(3, result[0].Items[2].Quantity)
}

func (suite *OrderQueriesHandlerTestSuite) TestListOrders_FiltersByPriorityAndDateRange() {
	ctx := context.Background()
	vendorID := kernel.NewUUID()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	suite.seedOrder("ORD-IN", vendorID, order.PriorityHigh, order.Pending, base.Add(12*time.Hour), 1)
	suite.seedOrder("ORD-TOO-EARLY", vendorID, order.PriorityHigh, order.Pending, base.Add(-24*time.Hour), 1)
	suite.seedOrder("ORD-WRONG-PRIORITY", vendorID, order.PriorityLow, order.Pending, base.Add(12*time.Hour), 1)

	high := order.PriorityHigh
	end := base.Add(24 * time.Hour)
	query, err := queries.NewListOrdersQuery(vendorID, queries.ListOrdersFilter{
		StartDate: &base,
		EndDate:   &end,
		Priority:  &high,
	}, 1, 10)
	suite.Require().NoError(err)

	result, err := queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("ORD-IN", result[0].OrderID)
}

func (suite *OrderQueriesHandlerTestSuite) TestListOrders_Paginates() {
	ctx := context.Background()
	vendorID := kernel.NewUUID()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	suite.seedOrder("ORD-1", vendorID, order.PriorityLow, order.Pending, base, 1)
	suite.seedOrder("ORD-2", vendorID, order.PriorityLow, order.Pending, base.Add(time.Hour), 1)
	suite.seedOrder("ORD-3", vendorID, order.PriorityLow, order.Pending, base.Add(2*time.Hour), 1)

	handler := queries.NewListOrdersQueryHandler(suite.db)

	firstPage, err := queries.NewListOrdersQuery(vendorID, queries.ListOrdersFilter{}, 1, 2)
	suite.Require().NoError(err)
	result, err := handler.Handle(ctx, firstPage)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("ORD-1", result[0].OrderID)
	suite.Equal("ORD-2", result[1].OrderID)

	secondPage, err := queries.NewListOrdersQuery(vendorID, queries.ListOrdersFilter{}, 2, 2)
	suite.Require().NoError(err)
	result, err = handler.Handle(ctx, secondPage)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("ORD-3", result[0].OrderID)
}

func (suite *OrderQueriesHandlerTestSuite) TestListOrders_NoOrders_ReturnsNotFound() {
	ctx := context.Background()

	query, err := queries.NewListOrdersQuery(kernel.NewUUID(), queries.ListOrdersFilter{}, 1, 10)
	suite.Require().NoError(err)

	result, err := queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Nil(result)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesHandlerTestSuite) TestGetOrderStatus_PicksEarliestCreatedMatch() {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	suite.seedOrder("ORD-SHARED", kernel.NewUUID(), order.PriorityLow, order.Processed, base.Add(time.Hour), 1)
	earliest := suite.seedOrder("ORD-SHARED", kernel.NewUUID(), order.PriorityLow, order.Pending, base, 1)

	query, err := queries.NewGetOrderStatusQuery("ORD-SHARED")
	suite.Require().NoError(err)

	resp, err := queries.NewGetOrderStatusQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("ORD-SHARED", resp.OrderID)
	suite.Equal(earliest.Status().String(), resp.Status)
}

func (suite *OrderQueriesHandlerTestSuite) TestGetOrderStatus_UnknownOrder_ReturnsNotFound() {
	ctx := context.Background()

	query, err := queries.NewGetOrderStatusQuery("ORD-404")
	suite.Require().NoError(err)

	resp, err := queries.NewGetOrderStatusQueryHandler(suite.db).Handle(ctx, query)
	suite.Nil(resp)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesHandlerTestSuite) TestGetOrderSummary_AggregatesVendorOrders() {
	ctx := context.Background()
	vendorID := kernel.NewUUID()
	otherVendor := kernel.NewUUID()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	suite.seedOrder("ORD-1", vendorID, order.PriorityHigh, order.Pending, base, 2, 3)
	suite.seedOrder("ORD-2", vendorID, order.PriorityLow, order.Processed, base.Add(time.Hour), 5)
	suite.seedOrder("ORD-OTHER", otherVendor, order.PriorityHigh, order.Pending, base, 100)

	query, err := queries.NewGetOrderSummaryQuery(vendorID)
	suite.Require().NoError(err)

	resp, err := queries.NewGetOrderSummaryQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(2, resp.TotalOrders)
	suite.Equal(10, resp.TotalItems)
	suite.Equal(1, resp.TotalPriorityOrders)
}

func (suite *OrderQueriesHandlerTestSuite) TestGetOrderSummary_NoOrders_ReturnsNotFound() {
	ctx := context.Background()

	query, err := queries.NewGetOrderSummaryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	resp, err := queries.NewGetOrderSummaryQueryHandler(suite.db).Handle(ctx, query)
	suite.Nil(resp)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesHandlerTestSuite) TestGetStuckOrders_OnlyOldProcessingOrders() {
	ctx := context.Background()
	vendorID := kernel.NewUUID()
	now := time.Now().UTC()

	stale := suite.seedOrder("ORD-STUCK", vendorID, order.PriorityLow, order.Processing,
		now.Add(-time.Hour), 1)
	suite.seedOrder("ORD-FRESH", vendorID, order.PriorityLow, order.Processing, now, 1)
	suite.seedOrder("ORD-DONE", vendorID, order.PriorityLow, order.Processed,
		now.Add(-time.Hour), 1)
	suite.seedOrder("ORD-PENDING", vendorID, order.PriorityLow, order.Pending,
		now.Add(-time.Hour), 1)

	query, err := queries.NewGetStuckOrdersQuery(10 * time.Minute)
	suite.Require().NoError(err)

	stuck, err := queries.NewGetStuckOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(stuck, 1)
	suite.Equal(stale.ID(), stuck[0].ID)
	suite.Equal("ORD-STUCK", stuck[0].OrderID)
	suite.Equal(vendorID, stuck[0].VendorID)
}

func (suite *OrderQueriesHandlerTestSuite) TestGetStuckOrders_NoneStuck_ReturnsEmptySlice() {
	ctx := context.Background()

	query, err := queries.NewGetStuckOrdersQuery(10 * time.Minute)
	suite.Require().NoError(err)

	stuck, err := queries.NewGetStuckOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.NotNil(stuck)
	suite.Empty(stuck)
}

func TestOrderQueriesHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesHandlerTestSuite))
}
