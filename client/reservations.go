package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DemoToken e' il token self-service riconosciuto dai fixture
// dimostrativi, senza passare dalla rete.
const DemoToken = "abc123def456ghi789"

func demoReservation() *Reservation {
	domani := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	return &Reservation{
		ID:              999,
		RistoranteID:    1,
		NomeCliente:     "Mario Rossi",
		EmailCliente:    "mario@example.com",
		TelefonoCliente: "3331234567",
		DataOra:         domani,
		NumeroPersone:   4,
		Note:            "Tavolo vicino alla finestra se possibile",
		Stato:           "confermata",
	}
}

// demoWait simula la latenza di rete dei fixture rispettando il
// context.
func (c *Client) demoWait(ctx context.Context) error {
	select {
	case <-time.After(c.fixtureDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func demoTokenNotFound() error {
	return &APIError{Status: http.StatusNotFound, Message: "prenotazione non trovata o link scaduto", Err: ErrNotFound}
}

// ListReservationsByDay restituisce le prenotazioni del giorno
// (vuoto = oggi lato server).
func (c *Client) ListReservationsByDay(ctx context.Context, date string, ristoranteID uint) ([]Reservation, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	if ristoranteID != 0 {
		q.Set("ristorante_id", fmt.Sprintf("%d", ristoranteID))
	}
	path := "/prenotazioni"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var out []Reservation
	if err := c.doEnvelope(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetReservation(ctx context.Context, id uint) (*Reservation, error) {
	var out Reservation
	path := fmt.Sprintf("/prenotazioni/%d", id)
	if err := c.doEnvelope(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateReservation crea la prenotazione e restituisce anche il token
// di gestione da consegnare al cliente.
func (c *Client) CreateReservation(ctx context.Context, in CreateReservation) (*CreatedReservation, error) {
	var out CreatedReservation
	if err := c.doEnvelope(ctx, http.MethodPost, "/prenotazioni", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateReservation(ctx context.Context, id uint, patch map[string]interface{}) (*Reservation, error) {
	var out Reservation
	path := fmt.Sprintf("/prenotazioni/%d", id)
	if err := c.doEnvelope(ctx, http.MethodPatch, path, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompleteReservation(ctx context.Context, id uint) (*Reservation, error) {
	var out Reservation
	path := fmt.Sprintf("/prenotazioni/%d/complete", id)
	if err := c.doEnvelope(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteReservation(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/prenotazioni/%d", id)
	return c.doEnvelope(ctx, http.MethodDelete, path, nil, nil)
}

// ----------------------------------------------------------------
// Self-service via token: il cliente gestisce la propria
// prenotazione con il solo link, senza login.
// ----------------------------------------------------------------

// GetReservationByToken carica la prenotazione legata al token. Con i
// fixture demo attivi, il token demo risponde con dati preconfezionati
// dopo un breve ritardo che simula la rete; ogni altro token demo
// restituisce ErrNotFound.
func (c *Client) GetReservationByToken(ctx context.Context, token string) (*Reservation, error) {
	if c.DemoFixtures {
		if err := c.demoWait(ctx); err != nil {
			return nil, err
		}
		if token != DemoToken {
			return nil, demoTokenNotFound()
		}
		return demoReservation(), nil
	}

	var out Reservation
	path := "/prenotazioni/token/" + url.PathEscape(token)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateReservationByToken modifica data, coperti o note. Rifiutata
// con ErrConflict quando la prenotazione e' in stato terminale. In
// modalita' demo il token demo risponde con il fixture aggiornato, di
// nuovo dopo il ritardo simulato.
func (c *Client) UpdateReservationByToken(ctx context.Context, token string, in ReservationUpdate) (*Reservation, error) {
	if c.DemoFixtures {
		if err := c.demoWait(ctx); err != nil {
			return nil, err
		}
		if token != DemoToken {
			return nil, demoTokenNotFound()
		}
		res := demoReservation()
		if in.DataOra != nil {
			dataOra, err := time.Parse(time.RFC3339, *in.DataOra)
			if err != nil {
				return nil, &APIError{Status: http.StatusBadRequest, Message: "data_ora non valida", Err: ErrValidation}
			}
			res.DataOra = dataOra
		}
		if in.NumeroPersone != nil && *in.NumeroPersone > 0 {
			res.NumeroPersone = *in.NumeroPersone
		}
		if in.Note != nil {
			res.Note = *in.Note
		}
		return res, nil
	}

	var out Reservation
	path := "/prenotazioni/token/" + url.PathEscape(token)
	if err := c.do(ctx, http.MethodPut, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelReservationByToken e' idempotente: cancellare una prenotazione
// gia' cancellata resta un successo.
func (c *Client) CancelReservationByToken(ctx context.Context, token string) (*Reservation, error) {
	if c.DemoFixtures {
		if err := c.demoWait(ctx); err != nil {
			return nil, err
		}
		if token != DemoToken {
			return nil, demoTokenNotFound()
		}
		res := demoReservation()
		res.Stato = "cancellata"
		return res, nil
	}

	var out Reservation
	path := "/prenotazioni/token/" + url.PathEscape(token) + "/cancel"
	if err := c.doEnvelope(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
