package model

import (
	"time"

	"gorm.io/gorm"
)

// Condition is a medical condition the catalog can be filtered by
// (e.g. "Plantar Fasciitis"). The query surface addresses conditions by
// slug; the slug is derived from Name, never stored.
type Condition struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Condition) TableName() string {
	return "conditions"
}

// ShoeCondition links a shoe to a condition it is suitable for.
type ShoeCondition struct {
	ShoeID      uint      `gorm:"primaryKey;index" json:"shoe_id"`
	ConditionID uint      `gorm:"primaryKey;index" json:"condition_id"`
	Shoe        Shoe      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Condition   Condition `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"condition,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ShoeCondition) TableName() string {
	return "shoe_conditions"
}
