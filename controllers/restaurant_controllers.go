package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vicosaas/vico-backend/models"
	"github.com/vicosaas/vico-backend/utils"
	"gorm.io/gorm"
)

type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

type restaurantRequest struct {
	Nome             string `json:"nome" binding:"required"`
	Indirizzo        string `json:"indirizzo" binding:"required"`
	Telefono         string `json:"telefono" binding:"required"`
	PIva             string `json:"p_iva" binding:"required"`
	SlotPrenotazione int    `json:"slot_prenotazione" binding:"required,gt=0"`
}

// GetAllRestaurants -> lista ristoranti della piattaforma
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := rc.DB.Order("created_at DESC").Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

// GetRestaurantByID -> dettaglio singolo ristorante
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	id := c.Param("id")
	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

// CreateRestaurant -> censimento di un nuovo ristorante (admin)
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var req restaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if strings.TrimSpace(req.Nome) == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("il nome del ristorante e' obbligatorio"))
		return
	}

	restaurant := models.Restaurant{
		Nome:             strings.TrimSpace(req.Nome),
		Indirizzo:        req.Indirizzo,
		Telefono:         req.Telefono,
		PIva:             req.PIva,
		SlotPrenotazione: req.SlotPrenotazione,
		IsActive:         true,
	}

	if userID, exists := c.Get("user_id"); exists {
		if uid, ok := userID.(uint); ok {
			restaurant.OwnerID = &uid
		}
	}

	if err := rc.DB.Create(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Ogni ristorante nasce con una sala di default: l'invariante
	// "almeno una sala" vale fin dalla creazione.
	defaultRoom := models.Room{
		RistoranteID: restaurant.ID,
		Nome:         "Sala Principale",
		Capienza:     restaurant.SlotPrenotazione / 2,
		IsActive:     true,
	}
	if defaultRoom.Capienza <= 0 {
		defaultRoom.Capienza = 20
	}
	if err := rc.DB.Create(&defaultRoom).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to create default room for restaurant %d: %v", restaurant.ID, err)
	}

	utils.InfoLogger.Printf("New restaurant created: %s (id=%d)", restaurant.Nome, restaurant.ID)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant created successfully", restaurant)
}

// UpdateRestaurant -> aggiornamento parziale
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	id := c.Param("id")

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var body struct {
		Nome             *string `json:"nome"`
		Indirizzo        *string `json:"indirizzo"`
		Telefono         *string `json:"telefono"`
		PIva             *string `json:"p_iva"`
		SlotPrenotazione *int    `json:"slot_prenotazione"`
		IsActive         *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Nome != nil {
		if strings.TrimSpace(*body.Nome) == "" {
			utils.RespondError(c, http.StatusBadRequest, errors.New("il nome del ristorante e' obbligatorio"))
			return
		}
		restaurant.Nome = strings.TrimSpace(*body.Nome)
	}
	if body.Indirizzo != nil {
		restaurant.Indirizzo = *body.Indirizzo
	}
	if body.Telefono != nil {
		restaurant.Telefono = *body.Telefono
	}
	if body.PIva != nil {
		restaurant.PIva = *body.PIva
	}
	if body.SlotPrenotazione != nil {
		if *body.SlotPrenotazione <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("slot_prenotazione deve essere positivo"))
			return
		}
		restaurant.SlotPrenotazione = *body.SlotPrenotazione
	}
	if body.IsActive != nil {
		restaurant.IsActive = *body.IsActive
	}

	if err := rc.DB.Save(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant updated", restaurant)
}

// DeleteRestaurant -> rimozione esplicita (admin)
func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := rc.DB.Delete(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant %d deleted", restaurant.ID)
	utils.RespondJSON(c, http.StatusOK, "Restaurant deleted", gin.H{
		"id": restaurant.ID,
	})
}
