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

type AddressHandler struct {
	DB *gorm.DB
}

type AddressRequest struct {
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	Pincode      string `json:"pincode" binding:"required"`
	Country      string `json:"country"`
}

type AddressResponse struct {
	ID           uint      `json:"id"`
	ContactID    uint      `json:"contact_id"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Pincode      string    `json:"pincode"`
	Country      string    `json:"country"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func addressResponse(address models.Address) AddressResponse {
	return AddressResponse{
		ID:           address.ID,
		ContactID:    address.ContactID,
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		City:         address.City,
		State:        address.State,
		Pincode:      address.Pincode,
		Country:      address.Country,
		CreatedAt:    address.CreatedAt,
		UpdatedAt:    address.UpdatedAt,
	}
}

// findOwnedAddress resolves an address through its parent contact, so
// ownership is transitive: the address must hang off a contact owned by
// the caller.
func findOwnedAddress(db *gorm.DB, addressID, contactID, userID uint) (models.Address, error) {
	var address models.Address
	err := db.Joins("JOIN contacts ON contacts.id = addresses.contact_id").
		Where("addresses.id = ? AND addresses.contact_id = ? AND contacts.user_id = ?", addressID, contactID, userID).
		First(&address).Error
	return address, err
}

func (h *AddressHandler) ListAddresses(ctx *gin.Context) {
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

	if _, err := findOwnedContact(h.DB, contactID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Contact does not belong to this user"})
		} else {
			log.Printf("Failed to fetch contact: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var addresses []models.Address

	if err := h.DB.Where("contact_id = ?", contactID).Order("created_at DESC").Find(&addresses).Error; err != nil {
		log.Printf("Failed to list addresses: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]AddressResponse, 0, len(addresses))

	for _, address := range addresses {
		response = append(response, addressResponse(address))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *AddressHandler) CreateAddress(ctx *gin.Context) {
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

	var req AddressRequest

	if !bindJSON(ctx, &req) {
		return
	}

	if _, err := findOwnedContact(h.DB, contactID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Contact does not belong to this user"})
		} else {
			log.Printf("Failed to fetch contact: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if req.Country == "" {
		req.Country = "India"
	}

	address := models.Address{
		ContactID:    contactID,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		Country:      req.Country,
	}

	if err := h.DB.Create(&address).Error; err != nil {
		log.Printf("Failed to create address: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":    "Address created successfully",
		"address_id": address.ID,
	})
}

func (h *AddressHandler) UpdateAddress(ctx *gin.Context) {
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

	addressID, err := utils.GetAddressID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req AddressRequest

	if !bindJSON(ctx, &req) {
		return
	}

	address, err := findOwnedAddress(h.DB, addressID, contactID, userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Address does not belong to this user"})
		} else {
			log.Printf("Failed to fetch address: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if req.Country == "" {
		req.Country = "India"
	}

	address.AddressLine1 = req.AddressLine1
	address.AddressLine2 = req.AddressLine2
	address.City = req.City
	address.State = req.State
	address.Pincode = req.Pincode
	address.Country = req.Country

	if err := h.DB.Save(&address).Error; err != nil {
		log.Printf("Failed to update address: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Address updated successfully"})
}

func (h *AddressHandler) DeleteAddress(ctx *gin.Context) {
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

	addressID, err := utils.GetAddressID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address, err := findOwnedAddress(h.DB, addressID, contactID, userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Address does not belong to this user"})
		} else {
			log.Printf("Failed to fetch address: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := h.DB.Delete(&address).Error; err != nil {
		log.Printf("Failed to delete address: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
}
