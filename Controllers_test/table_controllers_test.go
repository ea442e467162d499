package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vicosaas/vico-backend/controllers"
	"github.com/vicosaas/vico-backend/models"
	"github.com/vicosaas/vico-backend/utils"
)

func setupTestDBForTables() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:tables_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.Restaurant{}, &models.Room{}, &models.Table{})
	if err != nil {
		panic(err)
	}
	db.Exec("DELETE FROM tavoli")
	db.Exec("DELETE FROM sale")
	db.Exec("DELETE FROM ristoranti")
	return db
}

func setupTableRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	tableCtrl := controllers.NewTableController(db)
	router.POST("/sale/:sala_id/tavoli", tableCtrl.CreateTable)
	router.PATCH("/tavoli/:tavolo_id/stato", tableCtrl.UpdateTableStatus)
	router.DELETE("/tavoli/:tavolo_id", tableCtrl.DeleteTable)
	return router
}

func createTableVia(t *testing.T, router *gin.Engine, salaID uint, numero string) models.Table {
	payload := map[string]interface{}{"numero": numero, "posti": 4}
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	url := "/sale/" + strconv.Itoa(int(salaID)) + "/tavoli"
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Data models.Table `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Data
}

// Il contatore dei tavoli e' unico per tutto il locale: il nuovo id e'
// sempre max(id)+1 su tutte le sale, anche dopo una cancellazione.
func TestTableIDIsGlobalMaxPlusOne(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables()
	_, rooms := seedTablesFixture(db)

	router := setupTableRouter(db)

	t1 := createTableVia(t, router, rooms[0].ID, "A1")
	t2 := createTableVia(t, router, rooms[1].ID, "B1")
	assert.Equal(t, t1.ID+1, t2.ID)

	// Cancellare il tavolo piu' alto libera l'id, che viene riusato
	req, err := http.NewRequest("DELETE", "/tavoli/"+strconv.Itoa(int(t2.ID)), nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	t3 := createTableVia(t, router, rooms[0].ID, "A2")
	assert.Equal(t, t2.ID, t3.ID)

	// Con il massimo ancora occupato il contatore avanza
	t4 := createTableVia(t, router, rooms[1].ID, "B2")
	assert.Equal(t, t3.ID+1, t4.ID)
}

func TestCreateTableInInactiveRoom(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables()
	_, rooms := seedTablesFixture(db)

	db.Model(&models.Room{}).Where("id = ?", rooms[0].ID).Update("is_active", false)

	router := setupTableRouter(db)

	payload := map[string]interface{}{"numero": "A1", "posti": 4}
	body, _ := json.Marshal(payload)
	url := "/sale/" + strconv.Itoa(int(rooms[0].ID)) + "/tavoli"
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateTableStatusValidation(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables()
	_, rooms := seedTablesFixture(db)

	router := setupTableRouter(db)
	table := createTableVia(t, router, rooms[0].ID, "A1")

	// Stato valido
	payload, _ := json.Marshal(map[string]string{"stato": models.TableOccupied})
	req, err := http.NewRequest("PATCH", "/tavoli/"+strconv.Itoa(int(table.ID))+"/stato", bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Stato sconosciuto rifiutato
	payload, _ = json.Marshal(map[string]string{"stato": "in-pulizia"})
	req, err = http.NewRequest("PATCH", "/tavoli/"+strconv.Itoa(int(table.ID))+"/stato", bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func seedTablesFixture(db *gorm.DB) (models.Restaurant, []models.Room) {
	restaurant := models.Restaurant{Nome: "Trattoria Test", SlotPrenotazione: 90, IsActive: true}
	db.Create(&restaurant)

	roomA := models.Room{RistoranteID: restaurant.ID, Nome: "Sala A", Capienza: 20, IsActive: true}
	roomB := models.Room{RistoranteID: restaurant.ID, Nome: "Sala B", Capienza: 30, IsActive: true}
	db.Create(&roomA)
	db.Create(&roomB)
	return restaurant, []models.Room{roomA, roomB}
}
