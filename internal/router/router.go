package router

import (
	"time"

	"github.com/contask-dev/contask/internal/handlers"
	"github.com/contask-dev/contask/internal/middleware"
	"github.com/contask-dev/contask/internal/services"
	"github.com/contask-dev/contask/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Dependencies struct {
	DB        *gorm.DB
	JWTSecret string
}

func New(deps Dependencies) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	emails := services.NewEmailService(deps.DB)

	authHandler := &handlers.AuthHandler{DB: deps.DB, JWTSecret: deps.JWTSecret, Emails: emails}
	contactHandler := &handlers.ContactHandler{DB: deps.DB}
	addressHandler := &handlers.AddressHandler{DB: deps.DB}
	taskHandler := &handlers.TaskHandler{DB: deps.DB, Emails: emails}

	authRequired := middleware.AuthMiddleware(deps.DB, deps.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authRequired, authHandler.Me)
			auth.DELETE("/me", authRequired, authHandler.DeleteAccount)
		}

		contacts := api.Group("/contacts", authRequired)
		{
			contacts.GET("", contactHandler.ListContacts)
			contacts.POST("", contactHandler.CreateContact)
			contacts.GET("/:contact_id", contactHandler.GetContact)
			contacts.PUT("/:contact_id", contactHandler.UpdateContact)
			contacts.DELETE("/:contact_id", contactHandler.DeleteContact)

			// Addresses are nested under their parent contact
			contacts.GET("/:contact_id/addresses", addressHandler.ListAddresses)
			contacts.POST("/:contact_id/addresses", addressHandler.CreateAddress)
			contacts.PUT("/:contact_id/addresses/:address_id", addressHandler.UpdateAddress)
			contacts.DELETE("/:contact_id/addresses/:address_id", addressHandler.DeleteAddress)
		}

		tasks := api.Group("/tasks", authRequired)
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:task_id", taskHandler.GetTask)
			tasks.PUT("/:task_id", taskHandler.UpdateTask)
			tasks.DELETE("/:task_id", taskHandler.DeleteTask)
		}
	}

	return r
}
