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

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

type menuItemRequest struct {
	RistoranteID uint    `json:"ristorante_id" binding:"required"`
	CategoriaID  uint    `json:"categoria_id" binding:"required"`
	Nome         string  `json:"nome" binding:"required"`
	Descrizione  string  `json:"descrizione"`
	Prezzo       float64 `json:"prezzo" binding:"required,gt=0"`
}

// GetMenu -> piatti di un ristorante, categoria inclusa. Con
// ?attivi=true filtra i piatti fuori carta.
func (mc *MenuController) GetMenu(c *gin.Context) {
	query := mc.DB.Preload("Categoria")

	if rid := c.Query("ristorante_id"); rid != "" {
		query = query.Where("ristorante_id = ?", rid)
	}
	if c.Query("attivi") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var items []models.MenuItem
	if err := query.Order("categoria_id ASC, nome ASC").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu items", items)
}

// CreateMenuItem
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.MenuCategory
	if err := mc.DB.First(&category, req.CategoriaID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("categoria non trovata"))
		return
	}

	item := models.MenuItem{
		RistoranteID: req.RistoranteID,
		CategoriaID:  req.CategoriaID,
		Nome:         strings.TrimSpace(req.Nome),
		Descrizione:  req.Descrizione,
		Prezzo:       req.Prezzo,
		IsActive:     true,
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New menu item: %s (%s)", item.Nome, utils.FormatEuro(item.Prezzo))
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id := c.Param("piatto_id")

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var body struct {
		CategoriaID *uint    `json:"categoria_id"`
		Nome        *string  `json:"nome"`
		Descrizione *string  `json:"descrizione"`
		Prezzo      *float64 `json:"prezzo"`
		IsActive    *bool    `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Nome != nil {
		if strings.TrimSpace(*body.Nome) == "" {
			utils.RespondError(c, http.StatusBadRequest, errors.New("il nome del piatto e' obbligatorio"))
			return
		}
		item.Nome = strings.TrimSpace(*body.Nome)
	}
	if body.Descrizione != nil {
		item.Descrizione = *body.Descrizione
	}
	if body.Prezzo != nil {
		if *body.Prezzo <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("il prezzo deve essere positivo"))
			return
		}
		item.Prezzo = *body.Prezzo
	}
	if body.CategoriaID != nil {
		var category models.MenuCategory
		if err := mc.DB.First(&category, *body.CategoriaID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, errors.New("categoria non trovata"))
			return
		}
		item.CategoriaID = *body.CategoriaID
	}
	if body.IsActive != nil {
		item.IsActive = *body.IsActive
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id := c.Param("piatto_id")

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := mc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"id": item.ID})
}
