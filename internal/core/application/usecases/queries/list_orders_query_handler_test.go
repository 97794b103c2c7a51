package queries_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "shipadmin/internal/adapters/in/http"
	"shipadmin/internal/adapters/out/postgres"
	"shipadmin/internal/adapters/out/postgres/orderrepo"
	"shipadmin/internal/core/application/usecases/queries"
	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/order"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderQueriesTestSuite covers the order read models: creator join against
// the externally owned users table, status and substring filters, ordering,
// and line-item attachment. The users table is created with raw SQL because
// this module never owns or migrates it.
type OrderQueriesTestSuite struct {
	suite.Suite
	container     *tcpostgres.PostgresContainer
	db            *gorm.DB
	listHandler   queries.ListOrdersQueryHandler
	searchHandler queries.SearchOrdersQueryHandler
	uowFactory    *postgres.GormUnitOfWorkFactory
	adminCaller   kernel.Caller
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ProductDTO{}))
	suite.Require().NoError(db.Exec(`
		CREATE TABLE users (
			id uuid PRIMARY KEY,
			full_name text NOT NULL,
			user_type text NOT NULL
		)
	`).Error)

	suite.listHandler = queries.NewListOrdersQueryHandler(db)
	suite.searchHandler = queries.NewSearchOrdersQueryHandler(db)
	suite.uowFactory = postgres.NewGormUnitOfWorkFactory(db)

	suite.adminCaller, err = kernel.NewCaller(kernel.NewUUID(), kernel.RoleAdmin)
	suite.Require().NoError(err)
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_products, orders, users").Error)
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesTestSuite) seedUser(name, userType string) kernel.UUID {
	id := kernel.NewUUID()
	err := suite.db.Exec(
		"INSERT INTO users (id, full_name, user_type) VALUES (?, ?, ?)",
		id.Bytes(), name, userType,
	).Error
	suite.Require().NoError(err)
	return id
}

func (suite *OrderQueriesTestSuite) seedOrder(customerName, email string, createdBy kernel.UUID, status order.Status) *order.Order {
	product, err := order.NewProduct("Kettle", 1, 1.2)
	suite.Require().NoError(err)

	aggregate, err := order.RestoreOrder(kernel.NewUUID(), order.Details{
		OrderType:      "delivery",
		CustomerName:   customerName,
		CustomerPhone1: "01001234567",
		CustomerEmail:  email,
		Governorate:    "Cairo",
		City:           "Nasr City",
		Street:         "Abbas El Akkad",
		ShippingType:   "standard",
		PaymentType:    "cod",
		Branch:         "downtown",
		OrderCost:      250,
		TotalWeight:    3.5,
	}, []order.Product{product}, status, createdBy)
	suite.Require().NoError(err)

	ctx := context.Background()
	uow := suite.uowFactory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	// Spread creation times so the newest-first ordering is deterministic.
	time.Sleep(10 * time.Millisecond)
	return aggregate
}

func (suite *OrderQueriesTestSuite) TestListOrders_NewestFirstWithCreator() {
	creator := suite.seedUser("Mona Ali", "employee")
	first := suite.seedOrder("Ahmed Hassan", "ahmed@example.com", creator, order.Pending)
	second := suite.seedOrder("Sara Ibrahim", "sara@example.com", creator, order.Shipped)

	query, err := queries.NewListOrdersQuery("", "", suite.adminCaller)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(result[0].ID.IsEqual(second.ID()))
	suite.True(result[1].ID.IsEqual(first.ID()))

	suite.Require().NotNil(result[0].CreatedByName)
	suite.Equal("Mona Ali", *result[0].CreatedByName)
	suite.Require().NotNil(result[0].CreatedByRole)
	suite.Equal("employee", *result[0].CreatedByRole)

	suite.Require().Len(result[0].Products, 1)
	suite.Equal("Kettle", result[0].Products[0].ProductName)
}

// Orders outlive their creator: the join is LEFT and the creator columns
// come back nil.
func (suite *OrderQueriesTestSuite) TestListOrders_MissingCreator() {
	suite.seedOrder("Ahmed Hassan", "ahmed@example.com", kernel.NewUUID(), order.Pending)

	query, err := queries.NewListOrdersQuery("", "", suite.adminCaller)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Nil(result[0].CreatedByName)
	suite.Nil(result[0].CreatedByRole)
}

func (suite *OrderQueriesTestSuite) TestListOrders_StatusFilter() {
	creator := suite.seedUser("Mona Ali", "employee")
	suite.seedOrder("Ahmed Hassan", "ahmed@example.com", creator, order.Pending)
	shipped := suite.seedOrder("Sara Ibrahim", "sara@example.com", creator, order.Shipped)

	query, err := queries.NewListOrdersQuery("Shipped", "", suite.adminCaller)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(shipped.ID()))
	suite.Equal("Shipped", result[0].Status)
}

func (suite *OrderQueriesTestSuite) TestListOrders_SubstringSearchIsCaseInsensitive() {
	creator := suite.seedUser("Mona Ali", "employee")
	match := suite.seedOrder("Ahmed Hassan", "ahmed@example.com", creator, order.Pending)
	suite.seedOrder("Sara Ibrahim", "sara@example.com", creator, order.Pending)

	query, err := queries.NewListOrdersQuery("", "HASS", suite.adminCaller)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(match.ID()))
}

func (suite *OrderQueriesTestSuite) TestListOrders_SearchMatchesEmail() {
	creator := suite.seedUser("Mona Ali", "employee")
	match := suite.seedOrder("Ahmed Hassan", "ahmed@example.com", creator, order.Pending)
	suite.seedOrder("Sara Ibrahim", "sara@example.com", creator, order.Pending)

	query, err := queries.NewListOrdersQuery("", "ahmed@", suite.adminCaller)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(match.ID()))
}

// LIKE metacharacters in the term must match literally, not as wildcards.
func (suite *OrderQueriesTestSuite) TestListOrders_SearchTreatsWildcardsLiterally() {
	creator := suite.seedUser("Mona Ali", "employee")
	match := suite.seedOrder("Discount 100% Ahmed", "ahmed@example.com", creator, order.Pending)
	suite.seedOrder("Code 1004 Sara", "sara@example.com", creator, order.Pending)

	query, err := queries.NewListOrdersQuery("", "100%", suite.adminCaller)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(match.ID()))
}

func (suite *OrderQueriesTestSuite) TestSearchOrders_UnderscoreIsLiteral() {
	creator := suite.seedUser("Mona Ali", "employee")
	match := suite.seedOrder("Ahmed Hassan", "ahmed_h@example.com", creator, order.Pending)
	suite.seedOrder("Sara Ibrahim", "ahmedh@example.com", creator, order.Pending)

	query, err := queries.NewSearchOrdersQuery("ahmed_", suite.adminCaller)
	suite.Require().NoError(err)

	result, err := suite.searchHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(match.ID()))
}

func (suite *OrderQueriesTestSuite) TestSearchOrders_MatchesSubstring() {
	creator := suite.seedUser("Mona Ali", "employee")
	match := suite.seedOrder("Ahmed Hassan", "ahmed@example.com", creator, order.Cancelled)
	suite.seedOrder("Sara Ibrahim", "sara@example.com", creator, order.Pending)

	query, err := queries.NewSearchOrdersQuery("hassan", suite.adminCaller)
	suite.Require().NoError(err)

	result, err := suite.searchHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(match.ID()))
	suite.Equal("Cancelled", result[0].Status)
}

// Full round trip through the router: the free-text filter on the list
// endpoint is the q query param, same as the search endpoint.
func (suite *OrderQueriesTestSuite) TestListOrders_HTTPRouteFreeTextParamIsQ() {
	creator := suite.seedUser("Mona Ali", "employee")
	match := suite.seedOrder("Ahmed Hassan", "ahmed@example.com", creator, order.Pending)
	suite.seedOrder("Sara Ibrahim", "sara@example.com", creator, order.Pending)

	secret := []byte("test-secret")
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &httpadapter.Claims{
		UserID: suite.adminCaller.ID().String(),
		Role:   string(kernel.RoleAdmin),
	}).SignedString(secret)
	suite.Require().NoError(err)

	e := echo.New()
	server := httpadapter.NewServer(httpadapter.Handlers{
		ListOrders:   suite.listHandler,
		SearchOrders: suite.searchHandler,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), false)
	server.RegisterRoutes(e, httpadapter.AuthMiddleware(secret))

	req := httptest.NewRequest(http.MethodGet, "/api/orders?q=HASS", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	suite.Require().Equal(http.StatusOK, rec.Code)

	var payload struct {
		Status  string `json:"status"`
		Results int    `json:"results"`
		Data    struct {
			Orders []struct {
				ID           string `json:"id"`
				CustomerName string `json:"customerName"`
			} `json:"orders"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	suite.Equal("success", payload.Status)
	suite.Equal(1, payload.Results)
	suite.Require().Len(payload.Data.Orders, 1)
	suite.Equal(match.ID().String(), payload.Data.Orders[0].ID)
	suite.Equal("Ahmed Hassan", payload.Data.Orders[0].CustomerName)
}

func (suite *OrderQueriesTestSuite) TestListOrders_EmptyDatabase() {
	query, err := queries.NewListOrdersQuery("", "", suite.adminCaller)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
