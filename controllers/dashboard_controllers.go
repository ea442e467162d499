package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vicosaas/vico-backend/models"
	"github.com/vicosaas/vico-backend/utils"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboardStats -> numeri di sintesi per la dashboard: coperti e
// prenotazioni di oggi, stato delle prenotazioni e dei tavoli.
// Con ?ristorante_id= limita a un singolo locale.
func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.Add(24 * time.Hour)

	rid := c.Query("ristorante_id")

	reservations := func() *gorm.DB {
		q := dc.DB.Model(&models.Reservation{})
		if rid != "" {
			q = q.Where("ristorante_id = ?", rid)
		}
		return q
	}
	tables := func() *gorm.DB {
		q := dc.DB.Model(&models.Table{})
		if rid != "" {
			q = q.Joins("JOIN sale ON sale.id = tavoli.sala_id").Where("sale.ristorante_id = ?", rid)
		}
		return q
	}

	var stats struct {
		PrenotazioniOggi  int64 `json:"prenotazioni_oggi"`
		CopertiOggi       int64 `json:"coperti_oggi"`
		StatoPrenotazioni struct {
			Confermate int64 `json:"confermate"`
			Cancellate int64 `json:"cancellate"`
			Completate int64 `json:"completate"`
		} `json:"stato_prenotazioni"`
		StatoTavoli struct {
			Available int64 `json:"available"`
			Occupied  int64 `json:"occupied"`
			Reserved  int64 `json:"reserved"`
			Total     int64 `json:"total"`
		} `json:"stato_tavoli"`
	}

	reservations().Where("data_ora >= ? AND data_ora < ?", from, to).Count(&stats.PrenotazioniOggi)
	reservations().Where("data_ora >= ? AND data_ora < ? AND stato = ?", from, to, models.ReservationConfirmed).
		Select("COALESCE(SUM(numero_persone), 0)").Scan(&stats.CopertiOggi)

	reservations().Where("stato = ?", models.ReservationConfirmed).Count(&stats.StatoPrenotazioni.Confermate)
	reservations().Where("stato = ?", models.ReservationCancelled).Count(&stats.StatoPrenotazioni.Cancellate)
	reservations().Where("stato = ?", models.ReservationCompleted).Count(&stats.StatoPrenotazioni.Completate)

	tables().Where("tavoli.stato = ?", models.TableAvailable).Count(&stats.StatoTavoli.Available)
	tables().Where("tavoli.stato = ?", models.TableOccupied).Count(&stats.StatoTavoli.Occupied)
	tables().Where("tavoli.stato = ?", models.TableReserved).Count(&stats.StatoTavoli.Reserved)
	stats.StatoTavoli.Total = stats.StatoTavoli.Available + stats.StatoTavoli.Occupied + stats.StatoTavoli.Reserved

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
