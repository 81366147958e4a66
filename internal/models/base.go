package models

import "time"

// BaseModel is shared by all tables. Rows are hard-deleted so that the
// ON DELETE CASCADE constraints actually fire.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
