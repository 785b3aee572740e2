package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_review_customer_product;not null"`
	Customer   User      `gorm:"foreignKey:CustomerID"`
	ProductID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_review_customer_product;not null"`
	Product    Product   `gorm:"foreignKey:ProductID"`
	Rating     int       `gorm:"not null"`
	Content    string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
