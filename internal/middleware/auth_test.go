package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/contask-dev/contask/internal/auth"
	"github.com/contask-dev/contask/internal/database"
	"github.com/contask-dev/contask/internal/middleware"
	"github.com/contask-dev/contask/internal/models"
	"github.com/contask-dev/contask/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const secret = "middleware-test-secret"

func newProtectedRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(db, secret), func(ctx *gin.Context) {
		user, _ := ctx.Get(types.ContextUserKey)
		ctx.JSON(http.StatusOK, user)
	})

	return r, db
}

func get(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	if header != "" {
		req.Header.Set("Authorization", header)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	r, _ := newProtectedRouter(t)
	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	r, _ := newProtectedRouter(t)

	assert.Equal(t, http.StatusUnauthorized, get(r, "just-a-token").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Basic dXNlcjpwYXNz").Code)
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	r, _ := newProtectedRouter(t)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer garbage").Code)
}

func TestAuthMiddlewareRejectsTokenForMissingUser(t *testing.T) {
	r, _ := newProtectedRouter(t)

	token, err := auth.GenerateToken(secret, 12345, "ghost@example.com")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+token).Code)
}

func TestAuthMiddlewarePassesValidToken(t *testing.T) {
	r, db := newProtectedRouter(t)

	user := models.User{
		FirstName:    "Asha",
		LastName:     "Rao",
		FullName:     "Asha Rao",
		Email:        "asha@example.com",
		Phone:        "9000000001",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := auth.GenerateToken(secret, user.ID, user.Email)
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Asha Rao")
	assert.Contains(t, w.Body.String(), "asha@example.com")
}
