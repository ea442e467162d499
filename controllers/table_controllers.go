package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vicosaas/vico-backend/models"
	"github.com/vicosaas/vico-backend/utils"
	"gorm.io/gorm"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

type tableRequest struct {
	Numero string `json:"numero"`
	Posti  int    `json:"posti"`
	Stato  string `json:"stato"`
}

func validateTableFields(numero string, posti int, stato string) error {
	if strings.TrimSpace(numero) == "" {
		return errors.New("il numero del tavolo e' obbligatorio")
	}
	if posti <= 0 {
		return errors.New("i posti devono essere positivi")
	}
	if stato != "" && !models.ValidTableStatus(stato) {
		return errors.New("stato tavolo non valido")
	}
	return nil
}

// nextTableID assegna l'id come max(id)+1 sull'intera tabella tavoli,
// non per sala: il contatore e' unico come una sequence di database.
func (tc *TableController) nextTableID() (uint, error) {
	var maxID uint
	err := tc.DB.Model(&models.Table{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error
	if err != nil {
		return 0, err
	}
	return maxID + 1, nil
}

// CreateTable -> nuovo tavolo in una sala attiva.
func (tc *TableController) CreateTable(c *gin.Context) {
	roomID := c.Param("sala_id")

	var room models.Room
	if err := tc.DB.First(&room, roomID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !room.IsActive {
		utils.RespondError(c, http.StatusConflict, errors.New("la sala e' disattivata"))
		return
	}

	var req tableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := validateTableFields(req.Numero, req.Posti, req.Stato); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	stato := req.Stato
	if stato == "" {
		stato = models.TableAvailable
	}

	id, err := tc.nextTableID()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	table := models.Table{
		ID:     id,
		SalaID: room.ID,
		Numero: strings.TrimSpace(req.Numero),
		Posti:  req.Posti,
		Stato:  stato,
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %s (room=%d, seats=%d)", table.Numero, table.SalaID, table.Posti)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// UpdateTable -> sostituzione in-place di numero/posti/stato.
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID := c.Param("tavolo_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var room models.Room
	if err := tc.DB.First(&room, table.SalaID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !room.IsActive {
		utils.RespondError(c, http.StatusConflict, errors.New("la sala e' disattivata"))
		return
	}

	var req tableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := validateTableFields(req.Numero, req.Posti, req.Stato); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table.Numero = strings.TrimSpace(req.Numero)
	table.Posti = req.Posti
	if req.Stato != "" {
		table.Stato = req.Stato
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// UpdateTableStatus -> cambia solo l'etichetta di stato.
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	tableID := c.Param("tavolo_id")
	var body struct {
		Stato string `json:"stato" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidTableStatus(body.Stato) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("stato tavolo non valido"))
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	table.Stato = body.Stato
	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d status changed to %s", table.ID, table.Stato)
	utils.RespondJSON(c, http.StatusOK, "Table status updated", table)
}

// DeleteTable -> rimozione di un tavolo.
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := c.Param("tavolo_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{
		"id": table.ID,
	})
}
