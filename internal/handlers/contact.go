package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/contask-dev/contask/internal/models"
	"github.com/contask-dev/contask/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactHandler struct {
	DB *gorm.DB
}

type ContactRequest struct {
	ContactNumber string `json:"contact_number" binding:"required"`
	ContactEmail  string `json:"contact_email" binding:"omitempty,email"`
	Note          string `json:"note"`
}

type ContactResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	ContactNumber string    `json:"contact_number"`
	ContactEmail  string    `json:"contact_email"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func contactResponse(contact models.Contact) ContactResponse {
	return ContactResponse{
		ID:            contact.ID,
		UserID:        contact.UserID,
		ContactNumber: contact.ContactNumber,
		ContactEmail:  contact.ContactEmail,
		Note:          contact.Note,
		CreatedAt:     contact.CreatedAt,
		UpdatedAt:     contact.UpdatedAt,
	}
}

// findOwnedContact scopes the lookup by the authenticated user. A contact
// that exists but belongs to someone else is indistinguishable from one
// that does not exist.
func findOwnedContact(db *gorm.DB, contactID, userID uint) (models.Contact, error) {
	var contact models.Contact
	err := db.Where("id = ? AND user_id = ?", contactID, userID).First(&contact).Error
	return contact, err
}

func (h *ContactHandler) ListContacts(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var contacts []models.Contact

	if err := h.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&contacts).Error; err != nil {
		log.Printf("Failed to list contacts: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]ContactResponse, 0, len(contacts))

	for _, contact := range contacts {
		response = append(response, contactResponse(contact))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ContactHandler) GetContact(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	contactID, err := utils.GetContactID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := findOwnedContact(h.DB, contactID, userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Contact does not belong to this user"})
		} else {
			log.Printf("Failed to fetch contact: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, contactResponse(contact))
}

func (h *ContactHandler) CreateContact(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req ContactRequest

	if !bindJSON(ctx, &req) {
		return
	}

	var existing models.Contact

	err = h.DB.Where("user_id = ? AND contact_number = ?", userID, req.ContactNumber).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": "Contact number already exists for this user"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing contact: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	contact := models.Contact{
		UserID:        userID,
		ContactNumber: req.ContactNumber,
		ContactEmail:  req.ContactEmail,
		Note:          req.Note,
	}

	if err := h.DB.Create(&contact).Error; err != nil {
		log.Printf("Failed to create contact: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":    "Contact created successfully",
		"contact_id": contact.ID,
	})
}

func (h *ContactHandler) UpdateContact(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	contactID, err := utils.GetContactID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req ContactRequest

	if !bindJSON(ctx, &req) {
		return
	}

	contact, err := findOwnedContact(h.DB, contactID, userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Contact does not belong to this user"})
		} else {
			log.Printf("Failed to fetch contact: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if req.ContactNumber != contact.ContactNumber {
		var existing models.Contact

		err = h.DB.Where("user_id = ? AND contact_number = ? AND id <> ?", userID, req.ContactNumber, contact.ID).First(&existing).Error

		if err == nil {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Contact number already exists for this user"})
			return
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Database error when checking existing contact: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	contact.ContactNumber = req.ContactNumber
	contact.ContactEmail = req.ContactEmail
	contact.Note = req.Note

	if err := h.DB.Save(&contact).Error; err != nil {
		log.Printf("Failed to update contact: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Contact updated successfully"})
}

func (h *ContactHandler) DeleteContact(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	contactID, err := utils.GetContactID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := findOwnedContact(h.DB, contactID, userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Contact does not belong to this user"})
		} else {
			log.Printf("Failed to fetch contact: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := h.DB.Delete(&contact).Error; err != nil {
		log.Printf("Failed to delete contact: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}
