package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type MenuCategory struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}

type MenuItem struct {
	ID           uint         `json:"id"`
	RistoranteID uint         `json:"ristorante_id"`
	CategoriaID  uint         `json:"categoria_id"`
	Categoria    MenuCategory `json:"categoria"`
	Nome         string       `json:"nome"`
	Descrizione  string       `json:"descrizione,omitempty"`
	Prezzo       float64      `json:"prezzo"`
	IsActive     bool         `json:"is_active"`
}

type MenuItemInput struct {
	RistoranteID uint    `json:"ristorante_id"`
	CategoriaID  uint    `json:"categoria_id"`
	Nome         string  `json:"nome"`
	Descrizione  string  `json:"descrizione,omitempty"`
	Prezzo       float64 `json:"prezzo"`
}

// GetMenu restituisce i piatti, filtrabili per ristorante.
func (c *Client) GetMenu(ctx context.Context, ristoranteID uint) ([]MenuItem, error) {
	path := "/menu"
	if ristoranteID != 0 {
		q := url.Values{}
		q.Set("ristorante_id", fmt.Sprintf("%d", ristoranteID))
		path += "?" + q.Encode()
	}
	var out []MenuItem
	if err := c.doEnvelope(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]MenuCategory, error) {
	var out []MenuCategory
	if err := c.doEnvelope(ctx, http.MethodGet, "/categorie", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, in MenuItemInput) (*MenuItem, error) {
	var out MenuItem
	if err := c.doEnvelope(ctx, http.MethodPost, "/menu", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id uint) error {
	return c.doEnvelope(ctx, http.MethodDelete, fmt.Sprintf("/menu/%d", id), nil, nil)
}
