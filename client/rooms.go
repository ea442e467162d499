package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListRooms restituisce le sale del ristorante con i tavoli caricati.
func (c *Client) ListRooms(ctx context.Context, ristoranteID uint) ([]Room, error) {
	var out []Room
	path := fmt.Sprintf("/ristoranti/%d/sale", ristoranteID)
	if err := c.doEnvelope(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateRoom(ctx context.Context, ristoranteID uint, in RoomInput) (*Room, error) {
	var out Room
	path := fmt.Sprintf("/ristoranti/%d/sale", ristoranteID)
	if err := c.doEnvelope(ctx, http.MethodPost, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRoom(ctx context.Context, salaID uint, in RoomInput) (*Room, error) {
	var out Room
	path := fmt.Sprintf("/sale/%d", salaID)
	if err := c.doEnvelope(ctx, http.MethodPatch, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRoom fallisce con ErrConflict quando la sala e' l'ultima del
// ristorante.
func (c *Client) DeleteRoom(ctx context.Context, salaID uint) error {
	path := fmt.Sprintf("/sale/%d", salaID)
	return c.doEnvelope(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) ToggleRoomActive(ctx context.Context, salaID uint) (*Room, error) {
	var out Room
	path := fmt.Sprintf("/sale/%d/toggle", salaID)
	if err := c.doEnvelope(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTable(ctx context.Context, salaID uint, in TableInput) (*Table, error) {
	var out Table
	path := fmt.Sprintf("/sale/%d/tavoli", salaID)
	if err := c.doEnvelope(ctx, http.MethodPost, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTable(ctx context.Context, tavoloID uint, in TableInput) (*Table, error) {
	var out Table
	path := fmt.Sprintf("/tavoli/%d", tavoloID)
	if err := c.doEnvelope(ctx, http.MethodPatch, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTableStatus(ctx context.Context, tavoloID uint, stato string) (*Table, error) {
	var out Table
	path := fmt.Sprintf("/tavoli/%d/stato", tavoloID)
	body := map[string]string{"stato": stato}
	if err := c.doEnvelope(ctx, http.MethodPatch, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTable(ctx context.Context, tavoloID uint) error {
	path := fmt.Sprintf("/tavoli/%d", tavoloID)
	return c.doEnvelope(ctx, http.MethodDelete, path, nil, nil)
}

// GetSchedule restituisce sempre i 7 giorni della settimana, con i
// default per i giorni mai configurati.
func (c *Client) GetSchedule(ctx context.Context, ristoranteID uint) ([]DaySchedule, error) {
	var out []DaySchedule
	path := fmt.Sprintf("/ristoranti/%d/orari", ristoranteID)
	if err := c.doEnvelope(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateSchedule(ctx context.Context, ristoranteID uint, days []DaySchedule) ([]DaySchedule, error) {
	var out []DaySchedule
	path := fmt.Sprintf("/ristoranti/%d/orari", ristoranteID)
	if err := c.doEnvelope(ctx, http.MethodPut, path, days, &out); err != nil {
		return nil, err
	}
	return out, nil
}
