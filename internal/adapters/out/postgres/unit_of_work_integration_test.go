package postgres_test

import (
	"context"
	"testing"
	"time"

	"shipadmin/internal/adapters/out/postgres"
	"shipadmin/internal/adapters/out/postgres/cityrepo"
	"shipadmin/internal/adapters/out/postgres/govrepo"
	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/location"
	"shipadmin/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics: committed
// work persists, rolled-back work vanishes, and repositories handed out by
// one unit of work share its transaction.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&govrepo.GovernorateDTO{}, &cityrepo.CityDTO{}))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE cities, governorates").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newGovernorate() *location.Governorate {
	governorate, err := location.NewGovernorate(kernel.NewUUID(), "Cairo", "CAI")
	suite.Require().NoError(err)
	return governorate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_Persists() {
	ctx := context.Background()
	governorate := suite.newGovernorate()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.GovernorateRepository().Add(ctx, governorate))
	suite.Require().NoError(uow.Commit(ctx))

	// Visible outside the transaction.
	verifier := suite.factory.Create()
	loaded, err := verifier.GovernorateRepository().Get(ctx, governorate.ID())
	suite.Require().NoError(err)
	suite.Equal("Cairo", loaded.Name())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_Discards() {
	ctx := context.Background()
	governorate := suite.newGovernorate()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.GovernorateRepository().Add(ctx, governorate))
	suite.Require().NoError(uow.Rollback(ctx))

	verifier := suite.factory.Create()
	_, err := verifier.GovernorateRepository().Get(ctx, governorate.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

// Both location repositories from one unit of work see the same uncommitted
// transaction, which is what the city-creation pre-checks rely on.
func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_ShareTransaction() {
	ctx := context.Background()
	governorate := suite.newGovernorate()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.GovernorateRepository().Add(ctx, governorate))

	city, err := location.NewCity(kernel.NewUUID(), "Nasr City", governorate.ID(), 45)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CityRepository().Add(ctx, city))

	count, err := uow.CityRepository().CountByGovernorate(ctx, governorate.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	suite.Require().NoError(uow.Rollback(ctx))

	verifier := suite.factory.Create()
	count, err = verifier.CityRepository().CountByGovernorate(ctx, governorate.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Error(uow.Commit(context.Background()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
