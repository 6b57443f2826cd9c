package db

import (
	"fmt"
	"os"

	"app/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and returns *gorm.DB.
func Connect() (*gorm.DB, error) {
	// DATABASE_URL wins when set
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	host := getenv("POSTGRES_HOST", "localhost")
	port := getenv("POSTGRES_PORT", "5432")
	user := getenv("POSTGRES_USER", "postgres")
	pass := getenv("POSTGRES_PASSWORD", "postgres")
	name := getenv("POSTGRES_DB", "app")
	ssl := getenv("POSTGRES_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, ssl,
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate runs AutoMigrate for every model and adds the constraints
// gorm tags cannot express.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Artwork{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.WalletTransaction{},
		&model.Notification{},
		&model.CompletionStep{},
	); err != nil {
		return err
	}

	// One active cart per user. A concurrent get-or-create that loses the
	// race hits this index and refetches the winner's cart.
	return gormDB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_carts_one_active_per_user
		 ON carts (user_id) WHERE status = 'active'`,
	).Error
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
