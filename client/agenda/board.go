// Package agenda e' la vista giornaliera delle prenotazioni: una
// striscia di sette giorni centrata sul giorno selezionato e l'elenco
// delle prenotazioni di quel giorno.
package agenda

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vicosaas/vico-backend/client"
)

// UnassignedTable marca una prenotazione senza tavolo assegnato.
const UnassignedTable = "Unassigned"

// StripDay e' una casella della striscia settimanale.
type StripDay struct {
	Date       time.Time
	Weekday    int // 0=lunedi .. 6=domenica
	IsSelected bool
	IsToday    bool
}

// Entry e' una prenotazione come appare in agenda, con l'etichetta del
// tavolo gia' risolta.
type Entry struct {
	client.Reservation
	Tavolo string
}

// ReservationForm sono i campi del form di inserimento rapido.
type ReservationForm struct {
	Nome          string
	Telefono      string
	Orario        string // HH:MM
	NumeroPersone int
	Tavolo        string
	Note          string
}

// Board tiene il giorno selezionato e le prenotazioni caricate.
type Board struct {
	RistoranteID uint

	selected time.Time
	now      func() time.Time
	entries  []Entry
}

func NewBoard(ristoranteID uint) *Board {
	return NewBoardAt(ristoranteID, time.Now)
}

// NewBoardAt fissa il clock, per viste deterministiche.
func NewBoardAt(ristoranteID uint, now func() time.Time) *Board {
	b := &Board{RistoranteID: ristoranteID, now: now}
	b.selected = truncateDay(b.now())
	return b
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayIndex riporta il weekday su 0=lunedi .. 6=domenica.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func (b *Board) Selected() time.Time { return b.selected }

// ChangeDay sposta il giorno selezionato di delta giorni.
func (b *Board) ChangeDay(delta int) {
	b.selected = b.selected.AddDate(0, 0, delta)
}

// SetDay seleziona un giorno arbitrario.
func (b *Board) SetDay(t time.Time) {
	b.selected = truncateDay(t)
}

// Strip restituisce sette giorni, dal terzo prima al terzo dopo quello
// selezionato.
func (b *Board) Strip() []StripDay {
	today := truncateDay(b.now())
	days := make([]StripDay, 0, 7)
	for offset := -3; offset <= 3; offset++ {
		d := b.selected.AddDate(0, 0, offset)
		days = append(days, StripDay{
			Date:       d,
			Weekday:    mondayIndex(d),
			IsSelected: offset == 0,
			IsToday:    d.Equal(today),
		})
	}
	return days
}

// Load scarica dal server le prenotazioni del giorno selezionato.
func (b *Board) Load(ctx context.Context, api *client.Client) error {
	date := b.selected.Format("2006-01-02")
	reservations, err := api.ListReservationsByDay(ctx, date, b.RistoranteID)
	if err != nil {
		return err
	}
	b.SetReservations(reservations)
	return nil
}

// SetReservations sostituisce l'elenco, ordinato per orario.
func (b *Board) SetReservations(reservations []client.Reservation) {
	entries := make([]Entry, 0, len(reservations))
	for _, r := range reservations {
		tavolo := UnassignedTable
		if r.TavoloID != nil {
			tavolo = strconv.FormatUint(uint64(*r.TavoloID), 10)
		}
		entries = append(entries, Entry{Reservation: r, Tavolo: tavolo})
	}
	b.entries = entries
	b.sortEntries()
}

func (b *Board) sortEntries() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].DataOra.Before(b.entries[j].DataOra)
	})
}

func (b *Board) Entries() []Entry {
	return b.entries
}

// Add inserisce una prenotazione in agenda per il giorno selezionato.
// L'orario viene dal form, la data e' sempre quella del giorno
// selezionato; un tavolo vuoto resta non assegnato.
func (b *Board) Add(form ReservationForm) (*Entry, error) {
	if strings.TrimSpace(form.Nome) == "" {
		return nil, errors.New("nome obbligatorio")
	}
	if strings.TrimSpace(form.Telefono) == "" {
		return nil, errors.New("telefono obbligatorio")
	}
	orario, err := time.Parse("15:04", form.Orario)
	if err != nil {
		return nil, errors.New("orario non valido, formato atteso HH:MM")
	}
	persone := form.NumeroPersone
	if persone <= 0 {
		persone = 2
	}

	var maxID uint
	for _, e := range b.entries {
		if e.ID > maxID {
			maxID = e.ID
		}
	}

	tavolo := strings.TrimSpace(form.Tavolo)
	if tavolo == "" {
		tavolo = UnassignedTable
	}

	entry := Entry{
		Reservation: client.Reservation{
			ID:              maxID + 1,
			RistoranteID:    b.RistoranteID,
			NomeCliente:     strings.TrimSpace(form.Nome),
			TelefonoCliente: strings.TrimSpace(form.Telefono),
			DataOra: time.Date(b.selected.Year(), b.selected.Month(), b.selected.Day(),
				orario.Hour(), orario.Minute(), 0, 0, b.selected.Location()),
			NumeroPersone: persone,
			Note:          form.Note,
			Stato:         "confermata",
		},
		Tavolo: tavolo,
	}

	b.entries = append(b.entries, entry)
	b.sortEntries()
	return &entry, nil
}
