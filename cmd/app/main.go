package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"hydrohub/cmd"
	httpapi "hydrohub/internal/adapters/in/http"
	"hydrohub/internal/adapters/out/postgres/customerrepo"
	"hydrohub/internal/adapters/out/postgres/orderrepo"
	"hydrohub/internal/adapters/out/postgres/staffrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	redisClient := mustConnectRedis(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(parkedRetention(configs), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:            goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:        goDotEnvVariable("REDIS_PASSWORD"),
		ParkedRetentionHours: goDotEnvVariable("PARKED_RETENTION_HOURS"),
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
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &customerrepo.CustomerDTO{}, &staffrepo.StaffDTO{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func mustConnectRedis(configs cmd.Config) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
}

func parkedRetention(configs cmd.Config) time.Duration {
	hours, err := strconv.Atoi(configs.ParkedRetentionHours)
	if err != nil || hours <= 0 {
		log.Fatalf("Invalid PARKED_RETENTION_HOURS: %s", configs.ParkedRetentionHours)
	}
	return time.Duration(hours) * time.Hour
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpapi.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAssignOrderCommandHandler(),
		app.CreateMarkOrderShippedCommandHandler(),
		app.CreateUpdateShippedDeliveryCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateReconcileCompletedOrderCommandHandler(),
		app.CreateParkCartCommandHandler(),
		app.CreateRestoreParkedOrderCommandHandler(),
		app.CreateDiscardParkedOrderCommandHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetParkedOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
