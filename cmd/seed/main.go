package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/config"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/realtime"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/services"
	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type cli struct {
	Migrate  migrateCmd  `cmd:"" help:"Create or update the customers and orders tables."`
	Triggers triggersCmd `cmd:"" help:"Install the NOTIFY triggers the realtime listener subscribes to."`
	Data     dataCmd     `cmd:"" help:"Load guest and order fixtures from YAML."`
	Token    tokenCmd    `cmd:"" help:"Mint an admin JWT for the dashboard."`
}

type migrateCmd struct{}

type triggersCmd struct{}

type dataCmd struct {
	File  string `type:"existingfile" help:"Fixture YAML file (defaults to the bundled restaurant fixtures)."`
	Reset bool   `help:"Delete existing customers and orders first."`
}

type tokenCmd struct {
	Email string        `required:"" help:"Admin email recorded in the token."`
	Role  string        `default:"admin" enum:"admin,super_admin,viewer" help:"Admin role (admin, super_admin, viewer)."`
	TTL   time.Duration `default:"168h" help:"Token lifetime."`
}

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// Usage: go run ./cmd/seed <migrate|triggers|data|token>
func main() {
	ctx := kong.Parse(&cli{},
		kong.Description("Restaurant CMS database seeder and admin token tool."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

func (cmd *migrateCmd) Run(_ context.Context) error {
	config.InitDB()
	defer config.CloseDB()

	if err := config.DB.AutoMigrate(&models.Customer{}, &models.Order{}); err != nil {
		return fmt.Errorf("seed: migrate: %w", err)
	}
	log.Println("✓ customers and orders tables migrated")
	return nil
}

func (cmd *triggersCmd) Run(_ context.Context) error {
	config.InitDB()
	defer config.CloseDB()

	ctx, cancel := config.WithTimeout()
	defer cancel()
	if err := realtime.InstallTriggers(ctx, config.Pool); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Printf("✓ notify triggers installed channels=%v", realtime.DefaultChannels)
	return nil
}

func (cmd *dataCmd) Run(_ context.Context) error {
	raw := defaultFixtures
	if cmd.File != "" {
		data, err := os.ReadFile(cmd.File)
		if err != nil {
			return fmt.Errorf("seed: read fixtures: %w", err)
		}
		raw = data
	}

	fixtures, err := parseFixtures(raw)
	if err != nil {
		return err
	}
	customers, orders, err := fixtures.build(time.Now().UTC())
	if err != nil {
		return err
	}

	config.InitDB()
	defer config.CloseDB()

	ctx, cancel := config.WithCustomTimeout(time.Minute)
	defer cancel()

	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if cmd.Reset {
			if err := tx.Exec("DELETE FROM orders").Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM customers").Error; err != nil {
				return err
			}
			log.Println("✓ existing customers and orders removed")
		}
		if len(customers) > 0 {
			if err := tx.Create(&customers).Error; err != nil {
				return err
			}
		}
		if len(orders) > 0 {
			if err := tx.Create(&orders).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed: load fixtures: %w", err)
	}

	log.Printf("✓ seeded customers=%d orders=%d", len(customers), len(orders))
	return nil
}

func (cmd *tokenCmd) Run(_ context.Context) error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("seed: JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(secret); err != nil {
		return err
	}

	token, err := services.GetJWTService().GenerateAdminJWT(uuid.Must(uuid.NewV7()).String(), cmd.Email, cmd.Role, cmd.TTL)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	fmt.Println(token)
	return nil
}
