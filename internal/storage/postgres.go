package storage

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/NhatNguyen1502/ecommerce-services/internal/config"
	"github.com/NhatNguyen1502/ecommerce-services/internal/entity"
)

func Open(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Dbname, cfg.Port, cfg.Sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema and seeds the fixed roles.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Category{},
		&entity.Product{},
		&entity.CartItem{},
		&entity.Review{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for _, role := range []entity.Role{
		{ID: 1, Name: entity.RoleAdmin},
		{ID: 2, Name: entity.RoleCustomer},
	} {
		if err := db.FirstOrCreate(&entity.Role{}, role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", role.Name, err)
		}
	}
	return nil
}
