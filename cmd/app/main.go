package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"commerce/cmd"
	httpin "commerce/internal/adapters/in/http"
	"commerce/internal/adapters/out/postgres/customerrepo"
	"commerce/internal/adapters/out/postgres/orderrepo"
	"commerce/internal/adapters/out/postgres/productrepo"
	"commerce/internal/adapters/out/redis/productcache"
	"commerce/internal/jobs"
	"commerce/internal/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	appLogger := logger.New(logger.Options{
		Service: "commerce",
		Env:     configs.AppEnv,
		Level:   configs.LogLevel,
	})

	gormDB := mustOpenDatabase(configs)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(configs.RedisHost, configs.RedisPort),
		Password: configs.RedisPassword,
	})

	productCache := productcache.NewProductCache(redisClient, mustParseDuration(configs.ProductCacheTTL))

	app := cmd.NewCompositionRoot(configs, gormDB, productCache)

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		mustParseDuration(configs.StaleOrderMaxAge),
		configs.StaleOrderSchedule,
		appLogger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(gormDB, redisClient, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		AppEnv:             goDotEnvVariable("APP_ENV"),
		LogLevel:           goDotEnvVariable("LOG_LEVEL"),
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		RedisHost:          goDotEnvVariable("REDIS_HOST"),
		RedisPort:          goDotEnvVariable("REDIS_PORT"),
		RedisPassword:      goDotEnvVariable("REDIS_PASSWORD"),
		ProductCacheTTL:    goDotEnvVariable("PRODUCT_CACHE_TTL"),
		StaleOrderMaxAge:   goDotEnvVariable("STALE_ORDER_MAX_AGE"),
		StaleOrderSchedule: goDotEnvVariable("STALE_ORDER_SCHEDULE"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func mustParseDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration %q: %v", value, err)
	}
	return d
}

func startWebServer(gormDB *gorm.DB, redisClient *redis.Client, port string) {
	e := echo.New()
	httpin.NewServer(gormDB, redisClient).RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
