package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/memberrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(int64, any) {}

type GormOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository

	testMember *member.Member
	testBook   *item.Item
}

func (suite *GormOrderRepositoryTestSuite) SetupSuite() {
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
		&memberrepo.MemberDTO{},
		&itemrepo.ItemDTO{},
		&orderrepo.DeliveryDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	suite.Require().NoError(err)

	tracker := &mockAggregateTracker{}
	suite.repo = orderrepo.NewGormOrderRepository(db, tracker)

	address, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "04524")
	suite.Require().NoError(err)
	suite.testMember, err = member.NewMember("kim", address)
	suite.Require().NoError(err)
	err = memberrepo.NewGormMemberRepository(db, tracker).Add(ctx, suite.testMember)
	suite.Require().NoError(err)

	suite.testBook, err = item.NewBook("bookA", 10000, 100, "author", "isbn-a")
	suite.Require().NoError(err)
	err = itemrepo.NewGormItemRepository(db, tracker).Add(ctx, suite.testBook)
	suite.Require().NoError(err)
}

func (suite *GormOrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormOrderRepositoryTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders, deliveries CASCADE").Error)
}

func (suite *GormOrderRepositoryTestSuite) newOrder(counts ...int) *order.Order {
	items := make([]*order.OrderItem, 0, len(counts))
	for _, count := range counts {
		orderItem, err := order.NewOrderItem(suite.testBook.ID(), suite.testBook.Price(), count)
		suite.Require().NoError(err)
		items = append(items, orderItem)
	}

	newOrder, err := order.NewOrder(suite.testMember.ID(), suite.testMember.Address(), items)
	suite.Require().NoError(err)
	return newOrder
}

func (suite *GormOrderRepositoryTestSuite) TestAdd_AssignsIDAndPersistsAggregate() {
	ctx := context.Background()
	newOrder := suite.newOrder(3, 1)

	err := suite.repo.Add(ctx, newOrder)
	suite.Require().NoError(err)
	suite.Positive(newOrder.ID())
	suite.Positive(newOrder.Delivery().ID())

	saved, err := suite.repo.Get(ctx, newOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(newOrder.ID(), saved.ID())
	suite.Equal(newOrder.Number(), saved.Number())
	suite.Equal(suite.testMember.ID(), saved.MemberID())
	suite.Equal(order.Ordered, saved.Status())
	suite.Equal(order.Ready, saved.Delivery().Status())
	suite.True(saved.Delivery().Address().IsEqual(suite.testMember.Address()))
	suite.Require().Len(saved.Items(), 2)
	suite.Equal(newOrder.TotalPrice(), saved.TotalPrice())
	suite.WithinDuration(newOrder.OrderedAt(), saved.OrderedAt(), time.Second)
}

func (suite *GormOrderRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), 99999)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_PersistsDeliveryCompletion() {
	ctx := context.Background()
	newOrder := suite.newOrder(1)
	suite.Require().NoError(suite.repo.Add(ctx, newOrder))

	suite.Require().NoError(newOrder.CompleteDelivery())
	suite.Require().NoError(suite.repo.Update(ctx, newOrder))

	saved, err := suite.repo.Get(ctx, newOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, saved.Delivery().Status())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_UnknownOrder() {
	ctx := context.Background()
	newOrder := suite.newOrder(1)
	suite.Require().NoError(suite.repo.Add(ctx, newOrder))

	suite.Require().NoError(suite.db.Exec("DELETE FROM orders WHERE id = ?", newOrder.ID()).Error)

	err := suite.repo.Update(ctx, newOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestGetAllWithReadyDeliveryBefore() {
	ctx := context.Background()

	oldOrder := suite.newOrder(1)
	suite.Require().NoError(suite.repo.Add(ctx, oldOrder))
	freshOrder := suite.newOrder(2)
	suite.Require().NoError(suite.repo.Add(ctx, freshOrder))
	completedOrder := suite.newOrder(1)
	suite.Require().NoError(suite.repo.Add(ctx, completedOrder))

	backdated := time.Now().Add(-time.Hour)
	for _, id := range []int64{oldOrder.ID(), completedOrder.ID()} {
		suite.Require().NoError(suite.db.Exec("UPDATE orders SET ordered_at = ? WHERE id = ?", backdated, id).Error)
	}

	suite.Require().NoError(completedOrder.CompleteDelivery())
	suite.Require().NoError(suite.repo.Update(ctx, completedOrder))

	pending, err := suite.repo.GetAllWithReadyDeliveryBefore(ctx, time.Now().Add(-time.Minute))
	suite.Require().NoError(err)

	suite.Require().Len(pending, 1)
	suite.Equal(oldOrder.ID(), pending[0].ID())
	suite.Equal(order.Ready, pending[0].Delivery().Status())
}

func (suite *GormOrderRepositoryTestSuite) TestGetAllWithReadyDeliveryBefore_Empty() {
	pending, err := suite.repo.GetAllWithReadyDeliveryBefore(context.Background(), time.Now())

	suite.Require().NoError(err)
	suite.NotNil(pending)
	suite.Empty(pending)
}

func TestGormOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormOrderRepositoryTestSuite))
}
