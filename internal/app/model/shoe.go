package model

import (
	"time"

	"gorm.io/gorm"
)

type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderUnisex Gender = "unisex"
)

// Shoe is a catalog record. Catalog data is reference data: rows are created
// by the importer or the seeder and never mutated by request handlers.
type Shoe struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Rating      float64        `json:"rating"` // 0-5
	Gender      Gender         `gorm:"type:varchar(20)" json:"gender"`
	StyleID     uint           `gorm:"index" json:"style_id"`
	BrandID     uint           `gorm:"index" json:"brand_id"`
	ProductURL  string         `json:"product_url"`
	ImageURL    string         `json:"image_url"` // fallback when no ShoeImage row exists
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Style      Style           `gorm:"foreignKey:StyleID" json:"-"`
	Brand      Brand           `gorm:"foreignKey:BrandID" json:"-"`
	Conditions []ShoeCondition `gorm:"foreignKey:ShoeID" json:"-"`
	Images     []ShoeImage     `gorm:"foreignKey:ShoeID" json:"-"`
}

func (Shoe) TableName() string {
	return "shoes"
}
