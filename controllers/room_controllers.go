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

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

type roomRequest struct {
	Nome        string `json:"nome"`
	Descrizione string `json:"descrizione"`
	Capienza    int    `json:"capienza"`
}

func validateRoomFields(nome string, capienza int) error {
	if strings.TrimSpace(nome) == "" {
		return errors.New("il nome della sala e' obbligatorio")
	}
	if capienza <= 0 {
		return errors.New("la capienza deve essere positiva")
	}
	return nil
}

// GetRooms -> tutte le sale di un ristorante, tavoli inclusi. Le sale
// disattivate restano visibili.
func (rc *RoomController) GetRooms(c *gin.Context) {
	ristoranteID := c.Param("id")

	var rooms []models.Room
	if err := rc.DB.Preload("Tavoli", func(db *gorm.DB) *gorm.DB {
		return db.Order("tavoli.id ASC")
	}).Where("ristorante_id = ?", ristoranteID).Order("id ASC").Find(&rooms).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of rooms", rooms)
}

// CreateRoom -> nuova sala, parte senza tavoli e attiva.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	ristoranteID := c.Param("id")

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, ristoranteID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := validateRoomFields(req.Nome, req.Capienza); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	room := models.Room{
		RistoranteID: restaurant.ID,
		Nome:         strings.TrimSpace(req.Nome),
		Descrizione:  req.Descrizione,
		Capienza:     req.Capienza,
		IsActive:     true,
		Tavoli:       []models.Table{},
	}

	if err := rc.DB.Create(&room).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New room created: %s (restaurant=%d)", room.Nome, room.RistoranteID)
	utils.RespondJSON(c, http.StatusCreated, "Room created successfully", room)
}

// UpdateRoom -> sostituzione in-place dei campi, stessa validazione
// della creazione.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	roomID := c.Param("sala_id")

	var room models.Room
	if err := rc.DB.First(&room, roomID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := validateRoomFields(req.Nome, req.Capienza); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	room.Nome = strings.TrimSpace(req.Nome)
	room.Descrizione = req.Descrizione
	room.Capienza = req.Capienza

	if err := rc.DB.Save(&room).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Room updated", room)
}

// DeleteRoom -> rifiutata se e' l'ultima sala rimasta del ristorante:
// deve sempre esistere almeno una sala.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	roomID := c.Param("sala_id")

	var room models.Room
	if err := rc.DB.First(&room, roomID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var count int64
	if err := rc.DB.Model(&models.Room{}).Where("ristorante_id = ?", room.RistoranteID).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count <= 1 {
		utils.RespondError(c, http.StatusConflict, errors.New("impossibile eliminare l'ultima sala del ristorante"))
		return
	}

	if err := rc.DB.Select("Tavoli").Delete(&room).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Room %d deleted (restaurant=%d)", room.ID, room.RistoranteID)
	utils.RespondJSON(c, http.StatusOK, "Room deleted", gin.H{
		"id": room.ID,
	})
}

// ToggleRoomActive -> le sale inattive restano in lista ma rifiutano
// modifiche ai tavoli.
func (rc *RoomController) ToggleRoomActive(c *gin.Context) {
	roomID := c.Param("sala_id")

	var room models.Room
	if err := rc.DB.First(&room, roomID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	room.IsActive = !room.IsActive
	if err := rc.DB.Save(&room).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Room %d active=%t", room.ID, room.IsActive)
	utils.RespondJSON(c, http.StatusOK, "Room status toggled", room)
}
