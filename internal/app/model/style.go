package model

import (
	"time"

	"gorm.io/gorm"
)

// Style is a shoe silhouette category ("Athletic", "Boots", ...).
type Style struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Style) TableName() string {
	return "styles"
}
