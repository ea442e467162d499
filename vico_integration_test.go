package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vicosaas/vico-backend/models"
	"github.com/vicosaas/vico-backend/router"
	"github.com/vicosaas/vico-backend/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndIntegration copre il flusso principale della piattaforma:
// 0. seed utenti, login admin -> token
// 1. creazione ristorante (con la sala di default)
// 2. login owner, aggiunta tavolo
// 3. prenotazione pubblica -> token di gestione
// 4. self-service: lettura, modifica, cancellazione idempotente
func TestEndToEndIntegration(t *testing.T) {
	db := setupIntegrationDB()
	r := router.SetupRouter(db)

	adminToken := loginTest(t, r, "admin@vico.com", "password123")
	restaurantID := createRestaurantTest(t, r, adminToken)

	ownerToken := loginTest(t, r, "owner@vico.com", "password123")
	roomID := defaultRoomTest(t, r, ownerToken, restaurantID)
	createTableTest(t, r, ownerToken, roomID)

	manageToken := createReservationTest(t, r, restaurantID)
	selfServiceTest(t, r, manageToken)
}

func setupIntegrationDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Room{},
		&models.Table{},
		&models.Reservation{},
		&models.DaySchedule{},
		&models.MenuCategory{},
		&models.MenuItem{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedUser(db, "admin", "admin@vico.com", models.RoleAdmin)
	seedUser(db, "owner", "owner@vico.com", models.RoleOwner)
	return db
}

func seedUser(db *gorm.DB, name, email, role string) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	db.Create(&models.User{Name: name, Email: email, Password: string(hashed), Role: role})
}

func loginTest(t *testing.T, r *gin.Engine, email, password string) string {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(form.Encode()))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		AccessToken string `json:"access_token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.AccessToken)
	return response.AccessToken
}

func createRestaurantTest(t *testing.T, r *gin.Engine, token string) uint {
	payload, _ := json.Marshal(map[string]interface{}{
		"nome":              "Luigi's Pasta",
		"indirizzo":         "Via Roma 1, Milano",
		"telefono":          "+39 02 1234567",
		"p_iva":             "IT01234567890",
		"slot_prenotazione": 90,
	})
	req, err := http.NewRequest("POST", "/api/v1/ristoranti/", bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Data models.Restaurant `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotZero(t, response.Data.ID)
	return response.Data.ID
}

// Ogni ristorante nasce con una sala, che non puo' essere eliminata
// finche' resta l'unica.
func defaultRoomTest(t *testing.T, r *gin.Engine, token string, restaurantID uint) uint {
	reqURL := "/api/v1/ristoranti/" + strconv.Itoa(int(restaurantID)) + "/sale"
	req, err := http.NewRequest("GET", reqURL, nil)
	assert.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []models.Room `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data, 1)
	assert.Equal(t, "Sala Principale", response.Data[0].Nome)

	roomID := response.Data[0].ID

	req, err = http.NewRequest("DELETE", "/api/v1/sale/"+strconv.Itoa(int(roomID)), nil)
	assert.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	return roomID
}

func createTableTest(t *testing.T, r *gin.Engine, token string, roomID uint) {
	payload, _ := json.Marshal(map[string]interface{}{"numero": "T1", "posti": 4})
	reqURL := "/api/v1/sale/" + strconv.Itoa(int(roomID)) + "/tavoli"
	req, err := http.NewRequest("POST", reqURL, bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func createReservationTest(t *testing.T, r *gin.Engine, restaurantID uint) string {
	payload, _ := json.Marshal(map[string]interface{}{
		"ristorante_id":    restaurantID,
		"nome_cliente":     "Mario Rossi",
		"telefono_cliente": "+39 333 1234567",
		"data_ora":         time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"numero_persone":   4,
	})
	req, err := http.NewRequest("POST", "/api/v1/prenotazioni", bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Data struct {
			ManageToken string `json:"manage_token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Data.ManageToken)
	return response.Data.ManageToken
}

func selfServiceTest(t *testing.T, r *gin.Engine, manageToken string) {
	base := "/api/v1/prenotazioni/token/" + manageToken

	// Lettura senza login
	req, err := http.NewRequest("GET", base, nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var reservation models.Reservation
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &reservation))
	assert.Equal(t, "Mario Rossi", reservation.NomeCliente)

	// Modifica dei coperti
	payload, _ := json.Marshal(map[string]interface{}{"numero_persone": 6})
	req, err = http.NewRequest("PUT", base, bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Cancellazione, due volte: la seconda resta un successo
	for i := 0; i < 2; i++ {
		req, err = http.NewRequest("POST", base+"/cancel", nil)
		assert.NoError(t, err)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
