package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListRestaurants restituisce tutti i ristoranti visibili.
func (c *Client) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	var out []Restaurant
	if err := c.doEnvelope(ctx, http.MethodGet, "/ristoranti/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRestaurant restituisce un singolo ristorante.
func (c *Client) GetRestaurant(ctx context.Context, id uint) (*Restaurant, error) {
	var out Restaurant
	path := fmt.Sprintf("/ristoranti/%d/", id)
	if err := c.doEnvelope(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRestaurant crea un ristorante (richiede ruolo admin).
func (c *Client) CreateRestaurant(ctx context.Context, in CreateRestaurant) (*Restaurant, error) {
	var out Restaurant
	if err := c.doEnvelope(ctx, http.MethodPost, "/ristoranti/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRestaurant applica una patch parziale al ristorante.
func (c *Client) UpdateRestaurant(ctx context.Context, id uint, in UpdateRestaurant) (*Restaurant, error) {
	var out Restaurant
	path := fmt.Sprintf("/ristoranti/%d/", id)
	if err := c.doEnvelope(ctx, http.MethodPatch, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRestaurant elimina il ristorante e le risorse collegate.
func (c *Client) DeleteRestaurant(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/ristoranti/%d/", id)
	return c.doEnvelope(ctx, http.MethodDelete, path, nil, nil)
}
