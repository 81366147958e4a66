package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/contask-dev/contask/internal/models"
	"github.com/contask-dev/contask/internal/services"
	"github.com/contask-dev/contask/internal/types"
	"github.com/contask-dev/contask/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskHandler struct {
	DB     *gorm.DB
	Emails *services.EmailService
}

type TaskRequest struct {
	ContactID   uint   `json:"contact_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	DueDate     string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type TaskResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	ContactID     uint      `json:"contact_id"`
	ContactNumber string    `json:"contact_number"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	DueDate       *string   `json:"due_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func taskResponse(task models.Task) TaskResponse {
	var dueDate *string

	if task.DueDate != nil {
		formatted := time.Time(*task.DueDate).Format("2006-01-02")
		dueDate = &formatted
	}

	return TaskResponse{
		ID:            task.ID,
		UserID:        task.UserID,
		ContactID:     task.ContactID,
		ContactNumber: task.Contact.ContactNumber,
		Title:         task.Title,
		Description:   task.Description,
		Status:        task.Status,
		DueDate:       dueDate,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}
}

func parseDueDate(raw string) *datatypes.Date {
	if raw == "" {
		return nil
	}

	parsed, err := time.Parse("2006-01-02", raw)

	if err != nil {
		return nil
	}

	date := datatypes.Date(parsed)
	return &date
}

func findOwnedTask(db *gorm.DB, taskID, userID uint) (models.Task, error) {
	var task models.Task
	err := db.Preload("Contact").Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error
	return task, err
}

func (h *TaskHandler) ListTasks(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	query := h.DB.Preload("Contact").Where("user_id = ?", userID)

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var tasks []models.Task

	if err := query.Order("created_at DESC").Find(&tasks).Error; err != nil {
		log.Printf("Failed to list tasks: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		response = append(response, taskResponse(task))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *TaskHandler) GetTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := utils.GetTaskID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := findOwnedTask(h.DB, taskID, userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Task does not belong to this user"})
		} else {
			log.Printf("Failed to fetch task: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, taskResponse(task))
}

func (h *TaskHandler) CreateTask(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req TaskRequest

	if !bindJSON(ctx, &req) {
		return
	}

	// The referenced contact must belong to the caller before anything is
	// written.
	if _, err := findOwnedContact(h.DB, req.ContactID, currentUser.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Contact does not belong to this user"})
		} else {
			log.Printf("Failed to fetch contact: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if req.Status == "" {
		req.Status = types.TaskStatusPending
	}

	task := models.Task{
		UserID:      currentUser.ID,
		ContactID:   req.ContactID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     parseDueDate(req.DueDate),
	}

	if err := h.DB.Create(&task).Error; err != nil {
		log.Printf("Failed to create task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.Emails.Send(
		currentUser.Email,
		fmt.Sprintf("New Task Created: %s", task.Title),
		fmt.Sprintf("A new task titled %q has been assigned to you with status: %s.", task.Title, task.Status),
	)

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task_id": task.ID,
	})
}

func (h *TaskHandler) UpdateTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := utils.GetTaskID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req TaskRequest

	if !bindJSON(ctx, &req) {
		return
	}

	task, err := findOwnedTask(h.DB, taskID, userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Task does not belong to this user"})
		} else {
			log.Printf("Failed to fetch task: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	// Moving the task to another contact re-validates ownership of the
	// destination.
	if req.ContactID != task.ContactID {
		if _, err := findOwnedContact(h.DB, req.ContactID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusForbidden, gin.H{"error": "Contact does not belong to this user"})
			} else {
				log.Printf("Failed to fetch contact: %v", err)
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}
	}

	// An omitted status keeps the stored one; only creation defaults to
	// pending.
	if req.Status == "" {
		req.Status = task.Status
	}

	task.ContactID = req.ContactID
	task.Title = req.Title
	task.Description = req.Description
	task.Status = req.Status
	task.DueDate = parseDueDate(req.DueDate)

	if err := h.DB.Omit(clause.Associations).Save(&task).Error; err != nil {
		log.Printf("Failed to update task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Task updated successfully"})
}

func (h *TaskHandler) DeleteTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := utils.GetTaskID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := findOwnedTask(h.DB, taskID, userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Task does not belong to this user"})
		} else {
			log.Printf("Failed to fetch task: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := h.DB.Delete(&task).Error; err != nil {
		log.Printf("Failed to delete task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
