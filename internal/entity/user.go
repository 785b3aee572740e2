package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a registered account. Customers and admins share the same table,
// distinguished by their role.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Password     string    `gorm:"not null"`
	RoleID       int       `gorm:"not null"`
	Role         Role      `gorm:"foreignKey:RoleID"`
	FirstName    string    `gorm:"size:50"`
	LastName     string    `gorm:"size:50"`
	PhoneNumber  string
	Address      string
	IsActive     bool    `gorm:"default:true"`
	IsDeleted    bool    `gorm:"default:false"`
	RefreshToken *string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

type Role struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}
