package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vicosaas/vico-backend/controllers"
	"github.com/vicosaas/vico-backend/models"
	"github.com/vicosaas/vico-backend/utils"
)

func setupTestDBForUsers() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:users_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		panic(err)
	}
	db.Exec("DELETE FROM users")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	db.Create(&models.User{
		Name:     "owner",
		Email:    "owner@vico.com",
		Password: string(hashed),
		Role:     models.RoleOwner,
	})
	return db
}

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	userCtrl := controllers.NewUserController(db)
	router.POST("/auth/login", userCtrl.Login)
	return router
}

func decodeLogin(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestLoginWithJSONBody(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers()
	router := setupUserRouter(db)

	payload, _ := json.Marshal(map[string]string{
		"username": "owner",
		"password": "password123",
	})
	req, err := http.NewRequest("POST", "/auth/login", bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeLogin(t, w)
	assert.NotEmpty(t, response["access_token"])
	assert.Equal(t, "bearer", response["token_type"])
	assert.Equal(t, "owner", response["role"])
}

// Il login accetta anche il form urlencoded dell'OAuth2 password flow,
// con l'email nel campo username.
func TestLoginWithFormBody(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers()
	router := setupUserRouter(db)

	form := url.Values{}
	form.Set("username", "owner@vico.com")
	form.Set("password", "password123")

	req, err := http.NewRequest("POST", "/auth/login", strings.NewReader(form.Encode()))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeLogin(t, w)
	assert.NotEmpty(t, response["access_token"])
	assert.Equal(t, "owner", response["role"])
}

func TestLoginWithWrongPassword(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers()
	router := setupUserRouter(db)

	payload, _ := json.Marshal(map[string]string{
		"username": "owner",
		"password": "sbagliata",
	})
	req, err := http.NewRequest("POST", "/auth/login", bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
