package model

import (
	"time"

	"gorm.io/gorm"
)

// ShoeImage holds the primary product image for a shoe. A shoe without a row
// here falls back to its inline image_url column.
type ShoeImage struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	ShoeID    uint           `gorm:"uniqueIndex;not null" json:"shoe_id"`
	URL       string         `gorm:"not null" json:"url"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Shoe Shoe `gorm:"foreignKey:ShoeID" json:"-"`
}

func (ShoeImage) TableName() string {
	return "shoe_images"
}
