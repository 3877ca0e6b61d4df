package postgres_test

import (
	"context"
	"testing"
	"time"

	"orderintake/internal/adapters/out/postgres"
	"orderintake/internal/adapters/out/postgres/orderrepo"
	"orderintake/internal/adapters/out/postgres/vendorrepo"
	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries across the
// vendor and order repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgrescontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx,
		"postgres:15-alpine",
		postgrescontainer.WithDatabase("testdb"),
		postgrescontainer.WithUsername("testuser"),
		postgrescontainer.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&vendorrepo.VendorDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vendors, orders, order_items").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsVendorAndOrderAtomically() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testVendor := suite.createTestVendor("Acme Supplies")
	suite.Require().NoError(uow.VendorRepository().Add(ctx, testVendor))

	testOrder := suite.createTestOrder("ORD-001", testVendor.ID())
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	// Nothing visible outside the transaction before commit
	suite.assertCount(&vendorrepo.VendorDTO{}, 0)
	suite.assertCount(&orderrepo.OrderDTO{}, 0)

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount(&vendorrepo.VendorDTO{}, 1)
	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.OrderItemDTO{}, 2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testVendor := suite.createTestVendor("Acme Supplies")
	suite.Require().NoError(uow.VendorRepository().Add(ctx, testVendor))

	testOrder := suite.createTestOrder("ORD-001", testVendor.ID())
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount(&vendorrepo.VendorDTO{}, 0)
	suite.assertCount(&orderrepo.OrderDTO{}, 0)
	suite.assertCount(&orderrepo.OrderItemDTO{}, 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WithoutTransaction_UseMainConnection() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// No Begin: repository writes take effect immediately
	testVendor := suite.createTestVendor("Acme Supplies")
	suite.Require().NoError(uow.VendorRepository().Add(ctx, testVendor))

	suite.assertCount(&vendorrepo.VendorDTO{}, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestVendor(name string) *vendor.Vendor {
	testVendor, err := vendor.NewVendor(kernel.NewUUID(), name, "")
	suite.Require().NoError(err)
	return testVendor
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(
	orderID string, vendorID kernel.UUID,
) *order.Order {
	address, err := order.NewAddress("123 Main St", "Springfield", "IL", "62704")
	suite.Require().NoError(err)

	itemA, err := order.NewItem(kernel.NewUUID(), "Widget", 1)
	suite.Require().NoError(err)
	itemB, err := order.NewItem(kernel.NewUUID(), "Gadget", 2)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), orderID, vendorID, order.PriorityMedium, address, []order.Item{itemA, itemB})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(model any, expected int) {
	var count int64
	err := suite.db.Model(model).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
