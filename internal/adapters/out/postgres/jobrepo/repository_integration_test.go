package jobrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/jobrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// StatusJobRepositoryIntegrationTestSuite provides integration tests for the
// scheduled transition table using PostgreSQL containers.
type StatusJobRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *jobrepo.GormStatusJobRepository
}

func (suite *StatusJobRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&jobrepo.StatusJobDTO{}))
}

func (suite *StatusJobRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_status_jobs").Error)
	suite.repository = jobrepo.NewGormStatusJobRepository(suite.db)
}

func (suite *StatusJobRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StatusJobRepositoryIntegrationTestSuite) TestAdd_ThenDueForUpdate_ReturnsDueOldestFirst() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	now := time.Now().UTC()

	transitions := suite.makeTransitions(orderID, now, map[order.Status]time.Duration{
		order.Preparing: -2 * time.Minute,
		order.Accepted:  -5 * time.Minute,
		order.Delivered: 30 * time.Minute,
	})
	suite.Require().NoError(suite.repository.Add(ctx, transitions))

	due, err := suite.repository.DueForUpdate(ctx, now, 100)
	suite.Require().NoError(err)
	suite.Require().Len(due, 2)
	suite.Equal(order.Accepted, due[0].Target())
	suite.Equal(order.Preparing, due[1].Target())
}

func (suite *StatusJobRepositoryIntegrationTestSuite) TestDueForUpdate_RespectsLimit() {
	ctx := context.Background()
	now := time.Now().UTC()

	for range 5 {
		transitions := suite.makeTransitions(kernel.NewUUID(), now, map[order.Status]time.Duration{
			order.Accepted: -time.Minute,
		})
		suite.Require().NoError(suite.repository.Add(ctx, transitions))
	}

	due, err := suite.repository.DueForUpdate(ctx, now, 3)
	suite.Require().NoError(err)
	suite.Len(due, 3)
}

func (suite *StatusJobRepositoryIntegrationTestSuite) TestDueForUpdate_NothingDue_ReturnsEmpty() {
	ctx := context.Background()
	now := time.Now().UTC()

	transitions := suite.makeTransitions(kernel.NewUUID(), now, map[order.Status]time.Duration{
		order.Accepted: 2 * time.Minute,
	})
	suite.Require().NoError(suite.repository.Add(ctx, transitions))

	due, err := suite.repository.DueForUpdate(ctx, now, 100)
	suite.Require().NoError(err)
	suite.Empty(due)
}

func (suite *StatusJobRepositoryIntegrationTestSuite) TestDelete_RemovesOnlyTargetedJob() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	now := time.Now().UTC()

	transitions := suite.makeTransitions(orderID, now, map[order.Status]time.Duration{
		order.Accepted:  2 * time.Minute,
		order.Preparing: 5 * time.Minute,
	})
	suite.Require().NoError(suite.repository.Add(ctx, transitions))

	suite.Require().NoError(suite.repository.Delete(ctx, orderID, order.Accepted))
	suite.assertJobCount(1)

	// Deleting an absent job is a no-op.
	suite.Require().NoError(suite.repository.Delete(ctx, orderID, order.Accepted))
	suite.assertJobCount(1)
}

func (suite *StatusJobRepositoryIntegrationTestSuite) TestDeleteForOrder_RemovesAllJobsForOrder() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	otherID := kernel.NewUUID()
	now := time.Now().UTC()

	suite.Require().NoError(suite.repository.Add(ctx, suite.makeTransitions(orderID, now,
		map[order.Status]time.Duration{order.Accepted: time.Minute, order.Delivered: time.Hour})))
	suite.Require().NoError(suite.repository.Add(ctx, suite.makeTransitions(otherID, now,
		map[order.Status]time.Duration{order.Accepted: time.Minute})))

	suite.Require().NoError(suite.repository.DeleteForOrder(ctx, orderID))

	suite.assertJobCount(1)
	due, err := suite.repository.DueForUpdate(ctx, now.Add(2*time.Hour), 100)
	suite.Require().NoError(err)
	suite.Require().Len(due, 1)
	suite.Equal(otherID, due[0].OrderID())
}

func (suite *StatusJobRepositoryIntegrationTestSuite) TestDeleteThrough_RemovesJobsAtOrBelowStatus() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	now := time.Now().UTC()

	suite.Require().NoError(suite.repository.Add(ctx, suite.makeTransitions(orderID, now,
		map[order.Status]time.Duration{
			order.Accepted:       2 * time.Minute,
			order.Preparing:      5 * time.Minute,
			order.Prepared:       18 * time.Minute,
			order.OutForDelivery: 20 * time.Minute,
			order.Delivered:      40 * time.Minute,
		})))

	suite.Require().NoError(suite.repository.DeleteThrough(ctx, orderID, order.Prepared))

	due, err := suite.repository.DueForUpdate(ctx, now.Add(time.Hour), 100)
	suite.Require().NoError(err)
	suite.Require().Len(due, 2)
	suite.Equal(order.OutForDelivery, due[0].Target())
	suite.Equal(order.Delivered, due[1].Target())
}

func (suite *StatusJobRepositoryIntegrationTestSuite) TestAdd_EmptySlice_NoOp() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, nil))
	suite.assertJobCount(0)
}

func (suite *StatusJobRepositoryIntegrationTestSuite) makeTransitions(
	orderID kernel.UUID,
	base time.Time,
	offsets map[order.Status]time.Duration,
) []order.ScheduledTransition {
	transitions := make([]order.ScheduledTransition, 0, len(offsets))
	for target, offset := range offsets {
		transition, err := order.NewScheduledTransition(orderID, target, base.Add(offset))
		suite.Require().NoError(err)
		transitions = append(transitions, transition)
	}
	return transitions
}

func (suite *StatusJobRepositoryIntegrationTestSuite) assertJobCount(expected int) {
	var count int64
	err := suite.db.Model(&jobrepo.StatusJobDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestStatusJobRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StatusJobRepositoryIntegrationTestSuite))
}
