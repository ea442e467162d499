package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vicosaas/vico-backend/controllers"
	"github.com/vicosaas/vico-backend/models"
	"github.com/vicosaas/vico-backend/utils"
)

func setupTestDBForReservations() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:reservations_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.Restaurant{}, &models.Reservation{})
	if err != nil {
		panic(err)
	}
	db.Exec("DELETE FROM prenotazioni")
	db.Exec("DELETE FROM ristoranti")
	return db
}

func setupReservationRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	ctrl := controllers.NewReservationController(db)
	router.POST("/prenotazioni", ctrl.CreateReservation)
	router.GET("/prenotazioni", ctrl.GetReservationsByDay)
	router.GET("/prenotazioni/token/:token", ctrl.GetReservationByToken)
	router.PUT("/prenotazioni/token/:token", ctrl.UpdateReservationByToken)
	router.POST("/prenotazioni/token/:token/cancel", ctrl.CancelReservationByToken)
	return router
}

func seedReservationRestaurant(db *gorm.DB) models.Restaurant {
	restaurant := models.Restaurant{Nome: "Trattoria Test", SlotPrenotazione: 90, IsActive: true}
	db.Create(&restaurant)
	return restaurant
}

func createReservationVia(t *testing.T, router *gin.Engine, ristoranteID uint, dataOra string) (models.Reservation, string) {
	payload := map[string]interface{}{
		"ristorante_id":    ristoranteID,
		"nome_cliente":     "Mario Rossi",
		"telefono_cliente": "+39 333 1234567",
		"data_ora":         dataOra,
		"numero_persone":   4,
	}
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/prenotazioni", bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Data struct {
			Prenotazione models.Reservation `json:"prenotazione"`
			ManageToken  string             `json:"manage_token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Data.ManageToken)
	return response.Data.Prenotazione, response.Data.ManageToken
}

func TestCreateReservationRequiresContact(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations()
	restaurant := seedReservationRestaurant(db)
	router := setupReservationRouter(db)

	payload := map[string]interface{}{
		"ristorante_id":  restaurant.ID,
		"data_ora":       time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"numero_persone": 2,
	}
	body, _ := json.Marshal(payload)
	req, err := http.NewRequest("POST", "/prenotazioni", bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationsByDayUsesSelectedDate(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations()
	restaurant := seedReservationRestaurant(db)
	router := setupReservationRouter(db)

	day := time.Date(2026, 9, 10, 20, 0, 0, 0, time.UTC)
	other := day.AddDate(0, 0, 1)

	created, _ := createReservationVia(t, router, restaurant.ID, day.Format(time.RFC3339))
	createReservationVia(t, router, restaurant.ID, other.Format(time.RFC3339))

	// La prenotazione porta la data del giorno scelto, non quella odierna
	assert.Equal(t, day.Format("2006-01-02"), created.DataOra.UTC().Format("2006-01-02"))

	req, err := http.NewRequest("GET", "/prenotazioni?date=2026-09-10", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []models.Reservation `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data, 1)
	assert.Equal(t, created.ID, response.Data[0].ID)
}

func TestGetReservationByUnknownToken(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations()
	seedReservationRestaurant(db)
	router := setupReservationRouter(db)

	req, err := http.NewRequest("GET", "/prenotazioni/token/sconosciuto", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateByTokenOnTerminalReservation(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations()
	restaurant := seedReservationRestaurant(db)
	router := setupReservationRouter(db)

	dataOra := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	created, token := createReservationVia(t, router, restaurant.ID, dataOra)

	db.Model(&models.Reservation{}).Where("id = ?", created.ID).
		Update("stato", models.ReservationCompleted)

	payload, _ := json.Marshal(map[string]interface{}{"numero_persone": 6})
	req, err := http.NewRequest("PUT", "/prenotazioni/token/"+token, bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelByTokenIsIdempotent(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations()
	restaurant := seedReservationRestaurant(db)
	router := setupReservationRouter(db)

	dataOra := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	created, token := createReservationVia(t, router, restaurant.ID, dataOra)

	cancel := func() *httptest.ResponseRecorder {
		req, err := http.NewRequest("POST", "/prenotazioni/token/"+token+"/cancel", nil)
		assert.NoError(t, err)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, cancel().Code)

	// Seconda cancellazione: nessun errore, stato invariato
	assert.Equal(t, http.StatusOK, cancel().Code)

	var stored models.Reservation
	assert.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, models.ReservationCancelled, stored.Stato)
}

func TestCancelCompletedReservationIsRejected(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations()
	restaurant := seedReservationRestaurant(db)
	router := setupReservationRouter(db)

	dataOra := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	created, token := createReservationVia(t, router, restaurant.ID, dataOra)

	db.Model(&models.Reservation{}).Where("id = ?", created.ID).
		Update("stato", models.ReservationCompleted)

	req, err := http.NewRequest("POST", "/prenotazioni/token/"+token+"/cancel", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}
