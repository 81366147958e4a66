package services

import (
	"log"
	"time"

	"github.com/contask-dev/contask/internal/models"
	"gorm.io/gorm"
)

// EmailService records outgoing mail in the email_logs table. Delivery is
// stubbed: the log row is the whole side effect, so a failure to record is
// logged and swallowed rather than failing the caller's request.
type EmailService struct {
	db *gorm.DB
}

func NewEmailService(db *gorm.DB) *EmailService {
	return &EmailService{db: db}
}

func (s *EmailService) Send(toEmail, subject, body string) {
	entry := models.EmailLog{
		ToEmail: toEmail,
		Subject: subject,
		Body:    body,
		SentAt:  time.Now(),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to record email log: %v", err)
	}
}
