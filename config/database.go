package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// Pool serves LISTEN/NOTIFY and raw statements such as trigger installation.
	Pool *pgxpool.Pool
	DB   *gorm.DB
)

func InitDB() {
	dsn := DatabaseURL()
	initPgx(dsn)
	initGORM(dsn)
}

// DatabaseURL prefers DB_URL and falls back to the DB_* parts.
func DatabaseURL() string {
	if url := os.Getenv("DB_URL"); url != "" {
		return url
	}
	log.Println("⚠️ DB_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "restaurant"),
	)
}

func initPgx(dsn string) {
	var err error
	Pool, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("❌ Unable to connect to database: %v", err)
	}

	ctx, cancel := WithTimeout()
	defer cancel()
	if err = Pool.Ping(ctx); err != nil {
		log.Fatalf("❌ Database ping failed: %v", err)
	}

	log.Println("✅ Database connected (pgx)")
}

func initGORM(dsn string) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database with GORM: %v", err)
	}
	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Database connected (GORM)")
}

func CloseDB() {
	if Pool != nil {
		Pool.Close()
		log.Println("✅ Database connection closed (pgx)")
	}
	if DB != nil {
		sqlDB, _ := DB.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout for a single store round trip.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnv is getEnv for callers outside config.
func GetEnv(key, defaultValue string) string {
	return getEnv(key, defaultValue)
}
