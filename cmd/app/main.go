package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"storefront/cmd"
	_ "storefront/docs"
	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/persistence/auditrepo"
	"storefront/internal/adapters/out/persistence/inventoryrepo"
	"storefront/internal/adapters/out/persistence/orderrepo"
	"storefront/internal/generated/servers"
	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// @title Storefront API
// @version 1.0
// @description Order and inventory management over transactional unit of work scopes.
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key
func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		logger,
	)

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		app.CreatePurgeAuditLogCommandHandler(),
		time.Duration(parsePositiveInt("STALE_ORDER_TTL_MINUTES", configs.StaleOrderTTLMinutes))*time.Minute,
		time.Duration(parsePositiveInt("AUDIT_RETENTION_DAYS", configs.AuditRetentionDays))*24*time.Hour,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBDriver:             goDotEnvVariable("DB_DRIVER"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		SQLitePath:           goDotEnvVariable("SQLITE_PATH"),
		APIKey:               goDotEnvVariable("API_KEY"),
		AdminAPIKey:          goDotEnvVariable("ADMIN_API_KEY"),
		StaleOrderTTLMinutes: goDotEnvVariable("STALE_ORDER_TTL_MINUTES"),
		AuditRetentionDays:   goDotEnvVariable("AUDIT_RETENTION_DAYS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func parsePositiveInt(name string, value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Fatalf("%s must be a positive integer, got %q", name, value)
	}
	return n
}

func openDatabase(configs cmd.Config) *gorm.DB {
	var dialector gorm.Dialector
	switch configs.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		dialector = sqlite.Open(configs.SQLitePath)
	default:
		log.Fatalf("Unknown DB_DRIVER %q (expected sqlite or postgres)", configs.DBDriver)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderDetailDTO{},
		&inventoryrepo.InventoryDTO{},
		&auditrepo.AuditEntryDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating the database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	srv := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRestockProductCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetInventoryQueryHandler(),
		app.CreateGetOrderAuditTrailQueryHandler(),
	)

	e := echo.New()
	e.Validator = httpadapter.NewCustomValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", httpadapter.APIKeyAuth(configs.APIKey, configs.AdminAPIKey))
	servers.RegisterHandlers(api, srv)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
