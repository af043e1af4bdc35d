package main

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/config"
	"github.com/Ruidozo/fam-backoffice/entity"
)

func setupDatabase(cfg config.DatabaseConfig) *gorm.DB {

	dsn := fmt.Sprintf(
		"host=%s user=%s password='%s' dbname=%s port=%d sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	// Ensure required extensions for UUID are present (uuid_generate_v4 defaults)
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		log.Println("warning: failed to ensure uuid-ossp extension:", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Customer{},
		&entity.Product{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.OrderStatusHistory{},
		&entity.RecurringPlan{},
		&entity.RecurringPlanItem{},
		&entity.Settings{},
	); err != nil {
		log.Fatal("failed to run migrations:", err)
	}

	// Auto-generated deliveries are unique per plan and date; the partial
	// index backs the idempotency guarantee at the storage level.
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_plan_delivery " +
			"ON orders (recurring_plan_id, delivery_date) WHERE is_auto_generated",
	).Error; err != nil {
		log.Println("warning: failed to ensure plan/delivery unique index:", err)
	}

	return db
}
