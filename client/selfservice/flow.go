// Package selfservice modella il percorso "gestisci la tua
// prenotazione": il cliente arriva con un link contenente il token e
// puo' consultare, modificare o cancellare la prenotazione senza
// account.
package selfservice

import (
	"context"
	"errors"

	"github.com/vicosaas/vico-backend/client"
)

// State e' lo stato corrente del percorso.
type State string

const (
	StateLoading State = "loading"
	StateViewing State = "viewing"
	StateEditing State = "editing"
	StateErrored State = "errored"
)

// Action e' un'azione proposta al cliente nello stato corrente.
type Action string

const (
	ActionEdit   Action = "modifica"
	ActionCancel Action = "cancella"
)

// ErrConfirmationRequired: la cancellazione va confermata
// esplicitamente, mai eseguita al primo tocco.
var ErrConfirmationRequired = errors.New("la cancellazione richiede conferma esplicita")

// EditForm sono i soli campi modificabili dal cliente.
type EditForm struct {
	DataOra       string
	NumeroPersone int
	Note          string
}

// Flow guida il self-service di una singola prenotazione.
type Flow struct {
	api   *client.Client
	token string

	state       State
	reservation *client.Reservation
	draft       *EditForm
	lastErr     error
}

func NewFlow(api *client.Client, token string) *Flow {
	return &Flow{api: api, token: token, state: StateLoading}
}

func (f *Flow) State() State                     { return f.state }
func (f *Flow) Reservation() *client.Reservation { return f.reservation }
func (f *Flow) Draft() *EditForm                 { return f.draft }
func (f *Flow) Err() error                       { return f.lastErr }

// Load carica la prenotazione legata al token. Un token sconosciuto
// porta il percorso in StateErrored.
func (f *Flow) Load(ctx context.Context) error {
	f.state = StateLoading
	res, err := f.api.GetReservationByToken(ctx, f.token)
	if err != nil {
		f.state = StateErrored
		f.lastErr = err
		return err
	}
	f.reservation = res
	f.state = StateViewing
	f.lastErr = nil
	return nil
}

// Actions elenca le azioni disponibili. Una prenotazione cancellata o
// completata e' sola lettura: nessuna azione.
func (f *Flow) Actions() []Action {
	if f.state != StateViewing || f.reservation == nil {
		return nil
	}
	if f.reservation.IsTerminal() {
		return nil
	}
	return []Action{ActionEdit, ActionCancel}
}

// BeginEdit apre il form precompilato con i valori correnti.
func (f *Flow) BeginEdit() (*EditForm, error) {
	if f.state != StateViewing {
		return nil, errors.New("modifica disponibile solo in consultazione")
	}
	if f.reservation.IsTerminal() {
		return nil, errors.New("la prenotazione non e' piu' modificabile")
	}
	f.draft = &EditForm{
		DataOra:       f.reservation.DataOra.Format("2006-01-02T15:04:05Z07:00"),
		NumeroPersone: f.reservation.NumeroPersone,
		Note:          f.reservation.Note,
	}
	f.state = StateEditing
	return f.draft, nil
}

// SubmitEdit invia le modifiche. In caso di errore il form resta
// aperto con i valori inseriti, per correggere e ritentare.
func (f *Flow) SubmitEdit(ctx context.Context, form EditForm) error {
	if f.state != StateEditing {
		return errors.New("nessuna modifica in corso")
	}
	if form.NumeroPersone <= 0 {
		f.lastErr = errors.New("numero_persone deve essere positivo")
		f.draft = &form
		return f.lastErr
	}

	patch := client.ReservationUpdate{
		DataOra:       &form.DataOra,
		NumeroPersone: &form.NumeroPersone,
		Note:          &form.Note,
	}
	res, err := f.api.UpdateReservationByToken(ctx, f.token, patch)
	if err != nil {
		f.lastErr = err
		f.draft = &form
		return err
	}

	f.reservation = res
	f.draft = nil
	f.state = StateViewing
	f.lastErr = nil
	return nil
}

// AbortEdit chiude il form scartando le modifiche.
func (f *Flow) AbortEdit() {
	if f.state == StateEditing {
		f.draft = nil
		f.state = StateViewing
	}
}

// Cancel annulla la prenotazione. Richiede confirmed=true; la
// cancellazione di una prenotazione gia' cancellata resta un successo.
func (f *Flow) Cancel(ctx context.Context, confirmed bool) error {
	if f.state != StateViewing {
		return errors.New("cancellazione disponibile solo in consultazione")
	}
	if !confirmed {
		return ErrConfirmationRequired
	}

	res, err := f.api.CancelReservationByToken(ctx, f.token)
	if err != nil {
		f.lastErr = err
		return err
	}
	f.reservation = res
	f.lastErr = nil
	return nil
}
