package client

import (
	"context"
	"fmt"
	"net/http"
)

// DashboardStats riassume la giornata del locale.
type DashboardStats struct {
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

func (c *Client) GetDashboardStats(ctx context.Context, ristoranteID uint) (*DashboardStats, error) {
	path := "/dashboard/stats"
	if ristoranteID != 0 {
		path += fmt.Sprintf("?ristorante_id=%d", ristoranteID)
	}
	var out DashboardStats
	if err := c.doEnvelope(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
