package queries_test

import (
	"context"
	"testing"
	"time"

	"pos/internal/adapters/out/postgres/archiverepo"
	"pos/internal/adapters/out/postgres/menurepo"
	"pos/internal/adapters/out/postgres/orderrepo"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/history"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/menu"
	"pos/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	archiveRepo *archiverepo.GormArchiveRepository
	menuRepo    *menurepo.GormMenuRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.PaymentDTO{},
		&orderrepo.StatusLogDTO{},
		&archiverepo.ArchivedOrderDTO{},
		&archiverepo.ArchivedItemDTO{},
		&archiverepo.ArchivedPaymentDTO{},
		&archiverepo.ArchivedStatusLogDTO{},
		&menurepo.MenuItemDTO{},
	)
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db)
	suite.archiveRepo = archiverepo.NewGormArchiveRepository(db)
	suite.menuRepo = menurepo.NewGormMenuRepository(db)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE
		orders, order_items, order_payments, order_status_logs,
		order_history, order_history_items, order_history_payments, order_history_status_logs,
		menu_items`).Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) addOrder(orderType order.OrderType, status order.Status) *order.Order {
	var address order.DeliveryAddress
	charge := decimal.Zero
	if orderType == order.Delivery {
		address = order.NewDeliveryAddress("Patan Dhoka", "", "", "")
		charge = decimal.NewFromInt(80)
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewRandomCode(),
		"Bishal Rai",
		"9841000000",
		orderType,
		nil,
		address,
		charge,
		"",
		nil,
		time.Now(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(kernel.NewUUID(), 1, decimal.NewFromInt(300), time.Now()))

	if status != order.Pending {
		suite.Require().NoError(o.ChangeStatus(status, nil, time.Now()))
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *QueryHandlersTestSuite) addArchivedOrder(archivedAt time.Time, cancelled bool) *history.ArchivedOrder {
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewRandomCode(),
		"Bishal Rai",
		"9841000000",
		order.Takeaway,
		nil,
		order.DeliveryAddress{},
		decimal.Zero,
		"",
		nil,
		archivedAt.Add(-time.Hour),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(kernel.NewUUID(), 1, decimal.NewFromInt(300), time.Now()))

	var archived *history.ArchivedOrder
	if cancelled {
		archived, err = history.FromCancelledOrder(kernel.NewUUID(), o, nil, "changed their mind", archivedAt)
		suite.Require().NoError(err)
	} else {
		suite.Require().NoError(o.RecordPayment(order.Cash, decimal.NewFromInt(300), "", nil, time.Now()))
		suite.Require().NoError(o.ChangeStatus(order.Completed, nil, time.Now()))
		archived, _, err = history.FromCompletedOrder(kernel.NewUUID(), o, nil, archivedAt)
		suite.Require().NoError(err)
	}

	suite.Require().NoError(suite.archiveRepo.Add(context.Background(), archived))
	return archived
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrders_EmptyDatabase() {
	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)
	query, err := queries.NewGetActiveOrdersQuery(order.UnknownStatus, order.UnknownType)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrders_ReturnsAll() {
	suite.addOrder(order.Takeaway, order.Pending)
	suite.addOrder(order.Delivery, order.Preparing)

	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)
	query, err := queries.NewGetActiveOrdersQuery(order.UnknownStatus, order.UnknownType)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	for _, row := range result {
		suite.Equal(1, row.ItemCount)
		suite.True(row.TotalAmount.Equal(decimal.NewFromInt(300)))
	}
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrders_ItemCountSumsQuantities() {
	o := suite.addOrder(order.Takeaway, order.Pending)
	suite.Require().NoError(o.AddItem(kernel.NewUUID(), 3, decimal.NewFromInt(150), time.Now()))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), o))

	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)
	query, err := queries.NewGetActiveOrdersQuery(order.UnknownStatus, order.UnknownType)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(4, result[0].ItemCount, "one line of quantity 1 plus one of quantity 3")
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrders_FiltersByStatusAndType() {
	suite.addOrder(order.Takeaway, order.Pending)
	preparing := suite.addOrder(order.Delivery, order.Preparing)

	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)
	query, err := queries.NewGetActiveOrdersQuery(order.Preparing, order.Delivery)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(preparing.Code().String(), result[0].Code)
	suite.Equal("preparing", result[0].Status)
	suite.Equal("delivery", result[0].OrderType)
	suite.True(result[0].DeliveryCharge.Equal(decimal.NewFromInt(80)))
}

func (suite *QueryHandlersTestSuite) TestGetArchivedOrders_FiltersByStatusAndRange() {
	now := time.Now().Truncate(time.Second)
	suite.addArchivedOrder(now.Add(-48*time.Hour), false)
	recent := suite.addArchivedOrder(now, false)
	cancelled := suite.addArchivedOrder(now, true)

	handler := queries.NewGetArchivedOrdersQueryHandler(suite.db)

	from := now.Add(-time.Hour)
	query, err := queries.NewGetArchivedOrdersQuery(order.UnknownStatus, &from, nil, 0, 0)
	suite.Require().NoError(err)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	query, err = queries.NewGetArchivedOrdersQuery(order.Cancelled, nil, nil, 0, 0)
	suite.Require().NoError(err)
	result, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(cancelled.Code().String(), result[0].Code)
	suite.Equal("changed their mind", result[0].CancellationReason)

	query, err = queries.NewGetArchivedOrdersQuery(order.Completed, nil, nil, 1, 0)
	suite.Require().NoError(err)
	result, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1, "limit caps the page")
	suite.Equal(recent.Code().String(), result[0].Code, "newest archival first")
}

func (suite *QueryHandlersTestSuite) TestGetMenuItems_FiltersAndSorts() {
	ctx := context.Background()

	momo, err := menu.NewMenuItem(kernel.NewUUID(), "Chicken Momo", "snacks", decimal.NewFromInt(450), true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.menuRepo.Add(ctx, momo))

	lassi, err := menu.NewMenuItem(kernel.NewUUID(), "Lassi", "drinks", decimal.NewFromInt(150), false)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.menuRepo.Add(ctx, lassi))

	handler := queries.NewGetMenuItemsQueryHandler(suite.db)

	result, err := handler.Handle(ctx, queries.NewGetMenuItemsQuery("", false))
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Lassi", result[0].Name, "drinks sorts before snacks")

	result, err = handler.Handle(ctx, queries.NewGetMenuItemsQuery("", true))
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Chicken Momo", result[0].Name)

	result, err = handler.Handle(ctx, queries.NewGetMenuItemsQuery("drinks", false))
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Lassi", result[0].Name)
	suite.Equal(0, result[0].OrderCount)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(QueryHandlersTestSuite))
}
