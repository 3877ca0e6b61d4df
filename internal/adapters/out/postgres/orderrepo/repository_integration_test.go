package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orderintake/internal/adapters/out/postgres/orderrepo"
	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError maps unique-index violations to gorm.ErrDuplicatedKey,
	// which the repository relies on for duplicate detection.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-001", kernel.NewUUID())

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderIDSameVendor_ReturnsAlreadyExistsError() {
	ctx := context.Background()

	vendorID := kernel.NewUUID()
	first := suite.createTestOrder("ORD-001", vendorID)
	duplicate := suite.createTestOrder("ORD-001", vendorID)

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)

	var alreadyExistsErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &alreadyExistsErr)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)

	// Only the first order survives
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SameOrderIDDifferentVendors_Success() {
	ctx := context.Background()

	first := suite.createTestOrder("ORD-001", kernel.NewUUID())
	second := suite.createTestOrder("ORD-001", kernel.NewUUID())

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.tracker.On("TrackAggregate", second.ID(), second).Once()

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	suite.assertOrderCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrderWithItemsInSubmissionOrder() {
	ctx := context.Background()

	id := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	address, err := order.NewAddress("123 Main St", "Springfield", "IL", "62704")
	suite.Require().NoError(err)

	items := suite.createTestItems("Widget", "Gadget", "Doohickey")
	originalOrder, err := order.NewOrder(id, "ORD-042", vendorID, order.PriorityHigh, address, items)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrievedOrder.ID())
	suite.Equal("ORD-042", retrievedOrder.OrderID())
	suite.Equal(vendorID, retrievedOrder.VendorID())
	suite.Equal(order.PriorityHigh, retrievedOrder.Priority())
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.Equal("123 Main St", retrievedOrder.Address().Street())
	suite.Equal("62704", retrievedOrder.Address().PostalCode())

	retrievedItems := retrievedOrder.Items()
	suite.Require().Len(retrievedItems, 3)
	suite.Equal("Widget", retrievedItems[0].Name())
	suite.Equal("Gadget", retrievedItems[1].Name())
	suite.Equal("Doohickey", retrievedItems[2].Name())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByOrderID_ScopesToVendor() {
	ctx := context.Background()

	vendorA := kernel.NewUUID()
	vendorB := kernel.NewUUID()
	orderA := suite.createTestOrder("ORD-007", vendorA)
	orderB := suite.createTestOrder("ORD-007", vendorB)

	suite.tracker.On("TrackAggregate", orderA.ID(), orderA).Once()
	suite.tracker.On("TrackAggregate", orderB.ID(), orderB).Once()
	suite.Require().NoError(suite.repository.Add(ctx, orderA))
	suite.Require().NoError(suite.repository.Add(ctx, orderB))

	retrieved, err := suite.repository.GetByOrderID(ctx, "ORD-007", vendorB)
	suite.Require().NoError(err)
	suite.Equal(orderB.ID(), retrieved.ID())
	suite.Equal(vendorB, retrieved.VendorID())

	// Absent pair yields not found
	_, err = suite.repository.GetByOrderID(ctx, "ORD-404", vendorA)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitions_Persisted() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-001", kernel.NewUUID())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.StartProcessing())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, retrieved.Status())

	suite.Require().NoError(testOrder.MarkProcessed())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err = suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processed, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentOrder := suite.createTestOrder("ORD-404", kernel.NewUUID())

	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic pending order with two items.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(
	orderID string, vendorID kernel.UUID,
) *order.Order {
	address, err := order.NewAddress("123 Main St", "Springfield", "IL", "62704")
	suite.Require().NoError(err)

	items := suite.createTestItems("Widget", "Gadget")

	testOrder, err := order.NewOrder(kernel.NewUUID(), orderID, vendorID, order.PriorityLow, address, items)
	suite.Require().NoError(err)
	return testOrder
}

// createTestItems creates one item per name with quantity 1+index.
func (suite *OrderRepositoryIntegrationTestSuite) createTestItems(names ...string) []order.Item {
	items := make([]order.Item, 0, len(names))
	for i, name := range names {
		item, err := order.NewItem(kernel.NewUUID(), name, i+1)
		suite.Require().NoError(err)
		items = append(items, item)
	}
	return items
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertItemCount verifies the number of order items in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
