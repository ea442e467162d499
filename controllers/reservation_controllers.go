package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vicosaas/vico-backend/models"
	"github.com/vicosaas/vico-backend/utils"
	"gorm.io/gorm"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

type reservationRequest struct {
	RistoranteID    uint   `json:"ristorante_id" binding:"required"`
	TavoloID        *uint  `json:"tavolo_id"`
	NomeCliente     string `json:"nome_cliente"`
	EmailCliente    string `json:"email_cliente"`
	TelefonoCliente string `json:"telefono_cliente"`
	DataOra         string `json:"data_ora" binding:"required"`
	NumeroPersone   int    `json:"numero_persone" binding:"required,gt=0"`
	Note            string `json:"note"`
}

func parseDataOra(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.New("data_ora deve essere in formato RFC3339")
	}
	return t, nil
}

// CreateReservation -> nuova prenotazione (cliente o staff). Il nome e
// il telefono sono obbligatori; il tavolo resta non assegnato se
// omesso. Il token di gestione viene restituito solo qui.
func (pc *ReservationController) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if strings.TrimSpace(req.NomeCliente) == "" || strings.TrimSpace(req.TelefonoCliente) == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("nome e telefono del cliente sono obbligatori"))
		return
	}

	var restaurant models.Restaurant
	if err := pc.DB.First(&restaurant, req.RistoranteID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("ristorante non trovato"))
		return
	}

	dataOra, err := parseDataOra(req.DataOra)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation := models.Reservation{
		RistoranteID:    restaurant.ID,
		TavoloID:        req.TavoloID,
		NomeCliente:     strings.TrimSpace(req.NomeCliente),
		EmailCliente:    req.EmailCliente,
		TelefonoCliente: strings.TrimSpace(req.TelefonoCliente),
		DataOra:         dataOra,
		NumeroPersone:   req.NumeroPersone,
		Note:            req.Note,
		Stato:           models.ReservationConfirmed,
		ManageToken:     strings.ReplaceAll(uuid.NewString(), "-", ""),
	}

	if err := pc.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New reservation %d for %s (restaurant=%d, guests=%d)",
		reservation.ID, reservation.NomeCliente, reservation.RistoranteID, reservation.NumeroPersone)

	utils.RespondJSON(c, http.StatusCreated, "Reservation created successfully", gin.H{
		"prenotazione": reservation,
		"manage_token": reservation.ManageToken,
	})
}

// GetReservationsByDay -> prenotazioni del giorno selezionato
// (?date=YYYY-MM-DD, default oggi; ?ristorante_id= opzionale).
func (pc *ReservationController) GetReservationsByDay(c *gin.Context) {
	dateStr := c.Query("date")
	day := time.Now()
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("date deve essere in formato YYYY-MM-DD"))
			return
		}
		day = parsed
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24 * time.Hour)

	query := pc.DB.Where("data_ora >= ? AND data_ora < ?", from, to)
	if rid := c.Query("ristorante_id"); rid != "" {
		query = query.Where("ristorante_id = ?", rid)
	}

	var reservations []models.Reservation
	if err := query.Order("data_ora ASC").Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservations for day", reservations)
}

// GetReservationByID -> dettaglio per lo staff.
func (pc *ReservationController) GetReservationByID(c *gin.Context) {
	id := c.Param("prenotazione_id")
	var reservation models.Reservation
	if err := pc.DB.First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// UpdateReservation -> modifica staff: tutti i campi, stato compreso.
func (pc *ReservationController) UpdateReservation(c *gin.Context) {
	id := c.Param("prenotazione_id")

	var reservation models.Reservation
	if err := pc.DB.First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var body struct {
		TavoloID        *uint   `json:"tavolo_id"`
		NomeCliente     *string `json:"nome_cliente"`
		EmailCliente    *string `json:"email_cliente"`
		TelefonoCliente *string `json:"telefono_cliente"`
		DataOra         *string `json:"data_ora"`
		NumeroPersone   *int    `json:"numero_persone"`
		Note            *string `json:"note"`
		Stato           *string `json:"stato"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.NomeCliente != nil {
		if strings.TrimSpace(*body.NomeCliente) == "" {
			utils.RespondError(c, http.StatusBadRequest, errors.New("nome_cliente non puo' essere vuoto"))
			return
		}
		reservation.NomeCliente = strings.TrimSpace(*body.NomeCliente)
	}
	if body.TelefonoCliente != nil {
		if strings.TrimSpace(*body.TelefonoCliente) == "" {
			utils.RespondError(c, http.StatusBadRequest, errors.New("telefono_cliente non puo' essere vuoto"))
			return
		}
		reservation.TelefonoCliente = strings.TrimSpace(*body.TelefonoCliente)
	}
	if body.EmailCliente != nil {
		reservation.EmailCliente = *body.EmailCliente
	}
	if body.TavoloID != nil {
		reservation.TavoloID = body.TavoloID
	}
	if body.DataOra != nil {
		dataOra, err := parseDataOra(*body.DataOra)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		reservation.DataOra = dataOra
	}
	if body.NumeroPersone != nil {
		if *body.NumeroPersone <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("numero_persone deve essere positivo"))
			return
		}
		reservation.NumeroPersone = *body.NumeroPersone
	}
	if body.Note != nil {
		reservation.Note = *body.Note
	}
	if body.Stato != nil {
		if !models.ValidReservationStatus(*body.Stato) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("stato prenotazione non valido"))
			return
		}
		reservation.Stato = *body.Stato
	}

	if err := pc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// CompleteReservation -> lo staff marca la prenotazione come evasa.
func (pc *ReservationController) CompleteReservation(c *gin.Context) {
	id := c.Param("prenotazione_id")

	var reservation models.Reservation
	if err := pc.DB.First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	reservation.Stato = models.ReservationCompleted
	if err := pc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation completed", reservation)
}

// DeleteReservation -> rimozione definitiva (staff).
func (pc *ReservationController) DeleteReservation(c *gin.Context) {
	id := c.Param("prenotazione_id")

	var reservation models.Reservation
	if err := pc.DB.First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := pc.DB.Delete(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d deleted", reservation.ID)
	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{
		"id": reservation.ID,
	})
}

// ----------------------------------------------------------------
// Self-service via token: il cliente gestisce la propria prenotazione
// con il solo possesso del link, senza login.
// ----------------------------------------------------------------

func (pc *ReservationController) findByToken(token string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := pc.DB.Where("manage_token = ?", token).First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// GetReservationByToken -> 404 se il token e' sconosciuto o scaduto.
func (pc *ReservationController) GetReservationByToken(c *gin.Context) {
	token := c.Param("token")

	reservation, err := pc.findByToken(token)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("prenotazione non trovata o link scaduto"))
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// UpdateReservationByToken -> il cliente puo' toccare solo data_ora,
// numero_persone e note. Una prenotazione terminale e' in sola lettura.
func (pc *ReservationController) UpdateReservationByToken(c *gin.Context) {
	token := c.Param("token")

	reservation, err := pc.findByToken(token)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("prenotazione non trovata o link scaduto"))
		return
	}

	if reservation.IsTerminal() {
		utils.RespondError(c, http.StatusConflict, errors.New("la prenotazione non e' piu' modificabile"))
		return
	}

	var body struct {
		DataOra       *string `json:"data_ora"`
		NumeroPersone *int    `json:"numero_persone"`
		Note          *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.DataOra != nil {
		dataOra, err := parseDataOra(*body.DataOra)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		reservation.DataOra = dataOra
	}
	if body.NumeroPersone != nil {
		if *body.NumeroPersone <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("numero_persone deve essere positivo"))
			return
		}
		reservation.NumeroPersone = *body.NumeroPersone
	}
	if body.Note != nil {
		reservation.Note = *body.Note
	}

	if err := pc.DB.Save(reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d updated via token", reservation.ID)
	c.JSON(http.StatusOK, reservation)
}

// CancelReservationByToken -> idempotente: cancellare una prenotazione
// gia' cancellata non muta nulla e risponde comunque 200.
func (pc *ReservationController) CancelReservationByToken(c *gin.Context) {
	token := c.Param("token")

	reservation, err := pc.findByToken(token)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("prenotazione non trovata o link scaduto"))
		return
	}

	if reservation.Stato == models.ReservationCancelled {
		utils.RespondJSON(c, http.StatusOK, "Reservation already cancelled", reservation)
		return
	}

	if reservation.Stato == models.ReservationCompleted {
		utils.RespondError(c, http.StatusConflict, errors.New("una prenotazione completata non puo' essere cancellata"))
		return
	}

	reservation.Stato = models.ReservationCancelled
	if err := pc.DB.Save(reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d cancelled via token", reservation.ID)
	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", reservation)
}
