package queries_test

import (
	"context"
	"testing"
	"time"

	"airspeed/internal/adapters/out/postgres/swallowrepo"
	"airspeed/internal/core/application/usecases/queries"
	"airspeed/internal/core/domain/model/kernel"
	"airspeed/internal/core/domain/model/swallow"
	"airspeed/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type SwallowQueryHandlersTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *swallowrepo.GormSwallowRepository
	getHandler queries.GetSwallowQueryHandler
	allHandler queries.GetAllSwallowsQueryHandler
}

func (suite *SwallowQueryHandlersTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&swallowrepo.SwallowDTO{}))

	suite.repository = swallowrepo.NewGormSwallowRepository(db)
	suite.getHandler = queries.NewGetSwallowQueryHandler(db)
	suite.allHandler = queries.NewGetAllSwallowsQueryHandler(db)
}

func (suite *SwallowQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SwallowQueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE swallows").Error)
}

func (suite *SwallowQueryHandlersTestSuite) TestGetAll_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.allHandler.Handle(context.Background(), queries.NewGetAllSwallowsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *SwallowQueryHandlersTestSuite) TestGetAll_OrderedByCargo() {
	heavy := suite.addSwallow("european", 0.45)
	unladen := suite.addSwallow("african", 0)
	light := suite.addSwallow("EUROPEAN", 0.2)

	result, err := suite.allHandler.Handle(context.Background(), queries.NewGetAllSwallowsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.True(result[0].ID.IsEqual(unladen.ID()))
	suite.Equal(swallow.African, result[0].Species)
	suite.InDelta(60.0, result[0].Speed, 1e-9)
	suite.False(result[0].IsMigratory)

	suite.True(result[1].ID.IsEqual(light.ID()))
	suite.InDelta(50.0, result[1].Speed, 1e-9)
	suite.True(result[1].IsMigratory)

	suite.True(result[2].ID.IsEqual(heavy.ID()))
	suite.True(result[2].IsTurningBack)
	suite.Less(result[2].Speed, 0.0)
}

func (suite *SwallowQueryHandlersTestSuite) TestGet_ReturnsFlight() {
	s := suite.addSwallow("european", 0.2)
	query, err := queries.NewGetSwallowQuery(s.ID())
	suite.Require().NoError(err)

	flight, err := suite.getHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(flight.ID.IsEqual(s.ID()))
	suite.Equal(swallow.European, flight.Species)
	suite.InDelta(0.2, flight.CargoWeight, 1e-12)
	suite.InDelta(50.0, flight.Speed, 1e-9)
	suite.True(flight.IsMigratory)
	suite.False(flight.IsTurningBack)
}

func (suite *SwallowQueryHandlersTestSuite) TestGet_Missing_ReturnsNotFound() {
	query, err := queries.NewGetSwallowQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SwallowQueryHandlersTestSuite) TestGet_CorruptSpecies_Fails() {
	id := kernel.NewUUID()
	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO swallows (id, species, cargo_weight) VALUES (?, ?, ?)",
		id.Bytes(), 7, 0.0,
	).Error)
	query, err := queries.NewGetSwallowQuery(id)
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *SwallowQueryHandlersTestSuite) addSwallow(species string, cargoWeight float64) *swallow.Swallow {
	s, err := swallow.NewSwallow(species, cargoWeight)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), s))
	return s
}

func TestSwallowQueryHandlers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(SwallowQueryHandlersTestSuite))
}
