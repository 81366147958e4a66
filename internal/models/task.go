package models

import (
	"gorm.io/datatypes"
)

type Task struct {
	BaseModel

	UserID      uint   `gorm:"not null;index"`
	ContactID   uint   `gorm:"not null;index"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:20;not null;default:'pending'"` // "pending", "in_progress", "completed", "cancelled"
	DueDate     *datatypes.Date

	// Relationships
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Contact Contact `gorm:"foreignKey:ContactID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
