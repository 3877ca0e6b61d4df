package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"orderintake/cmd"
	httpadapter "orderintake/internal/adapters/in/http"
	"orderintake/internal/adapters/out/postgres/orderrepo"
	"orderintake/internal/adapters/out/postgres/vendorrepo"
	"orderintake/internal/jobs"
	"orderintake/internal/pkg/ratelimit"

	_ "orderintake/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultRateLimit  = 5
	defaultRateWindow = time.Minute

	defaultStuckOrderThreshold = 5 * time.Minute
)

//	@title			Order Intake API
//	@version		1.0
//	@description	Vendor order intake service with background fulfillment.
//	@BasePath		/
func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	pool := app.FulfillmentPool()
	pool.Start()
	defer pool.Stop()

	jobManager := jobs.NewJobManager(
		app.CreateGetStuckOrdersQueryHandler(),
		durationOrDefault(configs.StuckOrderThreshold, defaultStuckOrderThreshold),
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		RateLimit:           goDotEnvVariable("RATE_LIMIT"),
		RateWindow:          goDotEnvVariable("RATE_WINDOW"),
		WorkerCount:         goDotEnvVariable("WORKER_COUNT"),
		QueueCapacity:       goDotEnvVariable("QUEUE_CAPACITY"),
		StandardStageDelay:  goDotEnvVariable("STANDARD_STAGE_DELAY"),
		ExpeditedStageDelay: goDotEnvVariable("EXPEDITED_STAGE_DELAY"),
		StuckOrderThreshold: goDotEnvVariable("STUCK_ORDER_THRESHOLD"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{DSN: dsn}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&vendorrepo.VendorDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Validator = httpadapter.NewRequestValidator()

	store, err := ratelimit.NewSlidingWindow(
		intOrDefault(configs.RateLimit, defaultRateLimit),
		durationOrDefault(configs.RateWindow, defaultRateWindow),
	)
	if err != nil {
		log.Fatalf("Failed to build rate limiter: %v", err)
	}

	server := httpadapter.NewServer(
		app.CreateRegisterVendorCommandHandler(),
		app.CreateSubmitOrderCommandHandler(),
		app.CreateGetAllVendorsQueryHandler(),
		app.CreateGetVendorQueryHandler(),
		app.CreateGetOrderStatusQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetOrderSummaryQueryHandler(),
	)
	server.RegisterRoutes(e, httpadapter.SubmissionRateLimiter(store))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func intOrDefault(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func durationOrDefault(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
