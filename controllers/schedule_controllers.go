package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vicosaas/vico-backend/models"
	"github.com/vicosaas/vico-backend/utils"
	"gorm.io/gorm"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

// GetSchedule -> orario settimanale del ristorante. Se un giorno non e'
// mai stato configurato viene restituito con i default (aperto, turni
// vuoti), indice 0=lunedi .. 6=domenica.
func (sc *ScheduleController) GetSchedule(c *gin.Context) {
	ristoranteID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	var restaurant models.Restaurant
	if err := sc.DB.First(&restaurant, ristoranteID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	week, err := sc.fullWeek(uint(ristoranteID))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Weekly schedule", week)
}

// UpdateSchedule -> upsert dell'intera settimana.
func (sc *ScheduleController) UpdateSchedule(c *gin.Context) {
	ristoranteID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	var restaurant models.Restaurant
	if err := sc.DB.First(&restaurant, ristoranteID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var body []struct {
		Giorno   int    `json:"giorno"`
		Aperto   bool   `json:"aperto"`
		PranzoDa string `json:"pranzo_da"`
		PranzoA  string `json:"pranzo_a"`
		CenaDa   string `json:"cena_da"`
		CenaA    string `json:"cena_a"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	for _, day := range body {
		if day.Giorno < 0 || day.Giorno > 6 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("giorno deve essere tra 0 (lunedi) e 6 (domenica)"))
			return
		}
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		for _, day := range body {
			var existing models.DaySchedule
			res := tx.Where("ristorante_id = ? AND giorno = ?", ristoranteID, day.Giorno).First(&existing)
			if res.Error != nil {
				if !errors.Is(res.Error, gorm.ErrRecordNotFound) {
					return res.Error
				}
				existing = models.DaySchedule{
					RistoranteID: uint(ristoranteID),
					Giorno:       day.Giorno,
				}
			}

			existing.Aperto = day.Aperto
			existing.PranzoDa = day.PranzoDa
			existing.PranzoA = day.PranzoA
			existing.CenaDa = day.CenaDa
			existing.CenaA = day.CenaA

			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	week, err := sc.fullWeek(uint(ristoranteID))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Schedule updated for restaurant %d", ristoranteID)
	utils.RespondJSON(c, http.StatusOK, "Schedule updated", week)
}

// fullWeek ricostruisce i 7 giorni, riempiendo con i default quelli
// mai configurati.
func (sc *ScheduleController) fullWeek(ristoranteID uint) ([]models.DaySchedule, error) {
	var stored []models.DaySchedule
	if err := sc.DB.Where("ristorante_id = ?", ristoranteID).Order("giorno ASC").Find(&stored).Error; err != nil {
		return nil, err
	}

	byDay := make(map[int]models.DaySchedule, len(stored))
	for _, day := range stored {
		byDay[day.Giorno] = day
	}

	week := make([]models.DaySchedule, 7)
	for giorno := 0; giorno < 7; giorno++ {
		if day, ok := byDay[giorno]; ok {
			week[giorno] = day
			continue
		}
		week[giorno] = models.DaySchedule{
			RistoranteID: ristoranteID,
			Giorno:       giorno,
			Aperto:       true,
		}
	}
	return week, nil
}
