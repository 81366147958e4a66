package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/contask-dev/contask/internal/database"
	"github.com/contask-dev/contask/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "handlers-test-secret"

// newTestRouter builds the real router against a throwaway in-memory
// database. Foreign keys are switched on so cascade deletes behave like
// they do against postgres or mysql.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
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

	return router.New(router.Dependencies{DB: db, JWTSecret: testJWTSecret}), db
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func doRequest(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}

func registerUser(t *testing.T, r http.Handler, first, last, email, phone string) {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"first_name": first,
		"last_name":  last,
		"email":      email,
		"phone":      phone,
		"password":   "password1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func loginUser(t *testing.T, r http.Handler, email string) string {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "password1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func createContact(t *testing.T, r http.Handler, token, number string) uint {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/contacts", token, gin.H{
		"contact_number": number,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	id, ok := decodeBody(t, w)["contact_id"].(float64)
	require.True(t, ok)
	return uint(id)
}

func createTask(t *testing.T, r http.Handler, token string, contactID uint, title, status string) uint {
	t.Helper()

	body := gin.H{"contact_id": contactID, "title": title}

	if status != "" {
		body["status"] = status
	}

	w := doRequest(t, r, http.MethodPost, "/api/tasks", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	id, ok := decodeBody(t, w)["task_id"].(float64)
	require.True(t, ok)
	return uint(id)
}
