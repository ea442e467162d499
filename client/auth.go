package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Login esegue il password flow e persiste token e ruolo in sessione.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var out LoginResponse
	if err := c.doForm(ctx, loginPath, form, &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, fmt.Errorf("login: risposta senza access_token")
	}

	if c.sessions != nil {
		sess, err := c.sessions.Load()
		if err != nil {
			sess = Session{}
		}
		sess.Token = out.AccessToken
		sess.Role = out.Role
		if err := c.sessions.Save(sess); err != nil {
			return nil, fmt.Errorf("persist session: %w", err)
		}
	}
	return &out, nil
}

// Me restituisce il profilo dell'utente autenticato.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.doEnvelope(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalida il token lato server e azzera la sessione locale.
func (c *Client) Logout(ctx context.Context) error {
	err := c.doEnvelope(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if c.sessions != nil {
		_ = c.sessions.Clear()
	}
	return err
}
