package models

import "time"

// EmailLog is an append-only audit table. Delivery is stubbed: logging the
// message here is all the "sending" this system does.
type EmailLog struct {
	ID      uint      `gorm:"primarykey"`
	ToEmail string    `gorm:"size:255;not null"`
	Subject string    `gorm:"size:255;not null"`
	Body    string    `gorm:"type:text;not null"`
	SentAt  time.Time `gorm:"not null"`
}
