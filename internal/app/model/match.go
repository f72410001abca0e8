package model

import (
	"time"

	"gorm.io/gorm"
)

// Match is a saved "like" relating a caller to a shoe. UserID is the opaque
// caller identity supplied by the identity middleware; the same user may hold
// several matches for the same shoe (saves are not deduplicated).
type Match struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"type:varchar(100);not null;index" json:"user_id"`
	ShoeID    uint           `gorm:"not null;index" json:"shoe_id"`
	CreatedAt time.Time      `json:"saved_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Match) TableName() string {
	return "matches"
}
