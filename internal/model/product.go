package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is one catalog entry. The whole product set is replaced on every
// admin save, so rows carry no history beyond CreatedAt of the last save.
//
// ID is the public numeric id (a creation timestamp) and is not unique by
// construction; InternalID is the store key.
type Product struct {
	InternalID          string   `gorm:"column:internal_id;type:varchar(36);primaryKey"`
	ID                  int64    `gorm:"column:id;index;not null"`
	Name                string   `gorm:"not null"`
	Images              []string `gorm:"type:text;serializer:json;not null"`
	Description         string   `gorm:"not null"`
	DetailedDescription string   `gorm:"not null"`
	Features            []string `gorm:"type:text;serializer:json"`
	Category            string   `gorm:"index;not null"`
	// Position keeps the order the admin saved the products in.
	Position  int `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Product) TableName() string { return "products" }

func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.InternalID == "" {
		p.InternalID = uuid.NewString()
	}
	return nil
}
