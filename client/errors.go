package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: risorsa inesistente o token scaduto.
	ErrNotFound = errors.New("risorsa non trovata")
	// ErrValidation: il backend ha rifiutato i dati inviati.
	ErrValidation = errors.New("dati non validi")
	// ErrSessionExpired: il backend ha risposto 401 su una route auth;
	// la sessione locale e' stata azzerata e serve un nuovo login.
	ErrSessionExpired = errors.New("sessione scaduta, effettua di nuovo il login")
	// ErrConflict: l'operazione viola un invariante (es. ultima sala,
	// prenotazione terminale).
	ErrConflict = errors.New("operazione non consentita")
)

// APIError conserva status e messaggio del backend per la diagnostica.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status=%d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status=%d", e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
