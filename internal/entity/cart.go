package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem holds one product line in a customer's cart. A customer has at
// most one line per product.
type CartItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_customer_product;not null"`
	Customer   User      `gorm:"foreignKey:CustomerID"`
	ProductID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_customer_product;not null"`
	Product    Product   `gorm:"foreignKey:ProductID"`
	Quantity   int       `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}
