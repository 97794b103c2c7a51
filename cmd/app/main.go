package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"shipadmin/cmd"
	httpadapter "shipadmin/internal/adapters/in/http"
	"shipadmin/internal/adapters/out/postgres/cityrepo"
	"shipadmin/internal/adapters/out/postgres/govrepo"
	"shipadmin/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	config := cmd.Config{
		HTTPPort:           mustEnvVariable("HTTP_PORT"),
		DBHost:             mustEnvVariable("DB_HOST"),
		DBPort:             mustEnvVariable("DB_PORT"),
		DBUser:             mustEnvVariable("DB_USER"),
		DBPassword:         mustEnvVariable("DB_PASSWORD"),
		DBName:             mustEnvVariable("DB_NAME"),
		DBSslMode:          mustEnvVariable("DB_SSLMODE"),
		JWTSecret:          mustEnvVariable("JWT_SECRET"),
		DebugErrors:        boolEnvVariable("DEBUG_ERRORS", false),
		StaleOrderAgeHours: intEnvVariable("STALE_ORDER_AGE_HOURS", 24),
	}
	return config
}

func mustEnvVariable(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Missing required environment variable %s", key)
	}
	return value
}

func boolEnvVariable(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Fatalf("Invalid boolean in %s: %v", key, err)
	}
	return parsed
}

func intEnvVariable(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid integer in %s: %v", key, err)
	}
	return parsed
}

// mustConnectDB opens the database and migrates the tables this service
// owns. The users table belongs to the identity service and is never
// migrated here.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey,
	// which the repositories rely on for conflict detection.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&govrepo.GovernorateDTO{},
		&cityrepo.CityDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e, httpadapter.AuthMiddleware([]byte(configs.JWTSecret)))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
