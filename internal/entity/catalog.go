package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:25;uniqueIndex;not null"`
	IsDeleted bool      `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Category    Category  `gorm:"foreignKey:CategoryID"`
	Name        string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"not null"`
	Price       float64   `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
	IsFeatured  bool      `gorm:"default:false"`
	IsDeleted   bool      `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
