package selfservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vicosaas/vico-backend/client"
)

type fakeBackend struct {
	reservation client.Reservation
	failUpdate  bool
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /prenotazioni/token/tok1", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(f.reservation)
	})
	mux.HandleFunc("PUT /prenotazioni/token/tok1", func(w http.ResponseWriter, r *http.Request) {
		if f.failUpdate {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"status":false,"message":"la prenotazione non e' piu' modificabile"}`))
			return
		}
		var body struct {
			NumeroPersone *int    `json:"numero_persone"`
			Note          *string `json:"note"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.NumeroPersone != nil {
			f.reservation.NumeroPersone = *body.NumeroPersone
		}
		if body.Note != nil {
			f.reservation.Note = *body.Note
		}
		_ = json.NewEncoder(w).Encode(f.reservation)
	})
	mux.HandleFunc("POST /prenotazioni/token/tok1/cancel", func(w http.ResponseWriter, _ *http.Request) {
		f.reservation.Stato = "cancellata"
		payload := map[string]interface{}{
			"status":  true,
			"message": "Reservation cancelled",
			"data":    f.reservation,
		}
		_ = json.NewEncoder(w).Encode(payload)
	})
	return mux
}

func newFlowAgainst(t *testing.T, backend *fakeBackend) *Flow {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	sessions := client.NewSessionStoreAt(filepath.Join(t.TempDir(), "session.yaml"))
	api := client.New(server.URL, sessions)
	return NewFlow(api, "tok1")
}

func confirmedReservation() client.Reservation {
	return client.Reservation{
		ID:              7,
		RistoranteID:    1,
		NomeCliente:     "Mario Rossi",
		TelefonoCliente: "+39 333 1234567",
		DataOra:         time.Now().Add(48 * time.Hour).Truncate(time.Second),
		NumeroPersone:   4,
		Stato:           "confermata",
	}
}

func TestFlowLoadAndActions(t *testing.T) {
	backend := &fakeBackend{reservation: confirmedReservation()}
	flow := newFlowAgainst(t, backend)

	assert.Equal(t, StateLoading, flow.State())
	assert.NoError(t, flow.Load(context.Background()))
	assert.Equal(t, StateViewing, flow.State())
	assert.Equal(t, []Action{ActionEdit, ActionCancel}, flow.Actions())
}

// Una prenotazione cancellata o completata e' sola lettura: nessuna
// azione proposta e il form di modifica non si apre.
func TestFlowTerminalReservationHasNoActions(t *testing.T) {
	for _, stato := range []string{"cancellata", "completata"} {
		res := confirmedReservation()
		res.Stato = stato
		backend := &fakeBackend{reservation: res}
		flow := newFlowAgainst(t, backend)

		assert.NoError(t, flow.Load(context.Background()))
		assert.Empty(t, flow.Actions())

		_, err := flow.BeginEdit()
		assert.Error(t, err)
		assert.Equal(t, StateViewing, flow.State())
	}
}

func TestFlowEditRoundTrip(t *testing.T) {
	backend := &fakeBackend{reservation: confirmedReservation()}
	flow := newFlowAgainst(t, backend)
	assert.NoError(t, flow.Load(context.Background()))

	form, err := flow.BeginEdit()
	assert.NoError(t, err)
	assert.Equal(t, StateEditing, flow.State())
	assert.Equal(t, 4, form.NumeroPersone)

	form.NumeroPersone = 6
	form.Note = "tavolo vicino alla finestra"
	assert.NoError(t, flow.SubmitEdit(context.Background(), *form))

	assert.Equal(t, StateViewing, flow.State())
	assert.Equal(t, 6, flow.Reservation().NumeroPersone)
	assert.Equal(t, "tavolo vicino alla finestra", flow.Reservation().Note)
	assert.Nil(t, flow.Draft())
}

// Un invio fallito lascia il form aperto con i valori inseriti, per
// correggere e ritentare.
func TestFlowFailedEditStaysEditing(t *testing.T) {
	backend := &fakeBackend{reservation: confirmedReservation(), failUpdate: true}
	flow := newFlowAgainst(t, backend)
	assert.NoError(t, flow.Load(context.Background()))

	form, err := flow.BeginEdit()
	assert.NoError(t, err)

	form.NumeroPersone = 6
	err = flow.SubmitEdit(context.Background(), *form)
	assert.ErrorIs(t, err, client.ErrConflict)

	assert.Equal(t, StateEditing, flow.State())
	assert.NotNil(t, flow.Draft())
	assert.Equal(t, 6, flow.Draft().NumeroPersone)
}

func TestFlowCancelNeedsConfirmation(t *testing.T) {
	backend := &fakeBackend{reservation: confirmedReservation()}
	flow := newFlowAgainst(t, backend)
	assert.NoError(t, flow.Load(context.Background()))

	err := flow.Cancel(context.Background(), false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Equal(t, "confermata", flow.Reservation().Stato)

	assert.NoError(t, flow.Cancel(context.Background(), true))
	assert.Equal(t, "cancellata", flow.Reservation().Stato)
	assert.Empty(t, flow.Actions())
}
