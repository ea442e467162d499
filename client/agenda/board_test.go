package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vicosaas/vico-backend/client"
)

// 10 settembre 2026 e' un giovedi'.
func fixedClock() time.Time {
	return time.Date(2026, 9, 10, 11, 30, 0, 0, time.UTC)
}

func TestStripIsCenteredOnSelectedDay(t *testing.T) {
	board := NewBoardAt(1, fixedClock)

	strip := board.Strip()
	assert.Len(t, strip, 7)

	// Dal terzo giorno prima al terzo dopo, con il selezionato al centro
	assert.Equal(t, "2026-09-07", strip[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2026-09-13", strip[6].Date.Format("2006-01-02"))
	assert.True(t, strip[3].IsSelected)
	assert.True(t, strip[3].IsToday)
	for i, day := range strip {
		assert.Equal(t, i == 3, day.IsSelected)
	}

	// Indici 0=lunedi .. 6=domenica
	assert.Equal(t, 0, strip[0].Weekday) // lunedi 7/9
	assert.Equal(t, 3, strip[3].Weekday) // giovedi 10/9
	assert.Equal(t, 6, strip[6].Weekday) // domenica 13/9
}

func TestChangeDayMovesSelectionNotToday(t *testing.T) {
	board := NewBoardAt(1, fixedClock)
	board.ChangeDay(1)

	strip := board.Strip()
	assert.Equal(t, "2026-09-11", strip[3].Date.Format("2006-01-02"))
	assert.True(t, strip[3].IsSelected)
	assert.False(t, strip[3].IsToday)

	// Il giorno odierno resta marcato nella nuova finestra
	assert.True(t, strip[2].IsToday)

	board.ChangeDay(-2)
	strip = board.Strip()
	assert.Equal(t, "2026-09-09", strip[3].Date.Format("2006-01-02"))
}

func TestAddStampsSelectedDate(t *testing.T) {
	board := NewBoardAt(1, fixedClock)
	board.ChangeDay(2) // 12 settembre

	entry, err := board.Add(ReservationForm{
		Nome:          "Anna Bianchi",
		Telefono:      "+39 334 7654321",
		Orario:        "20:30",
		NumeroPersone: 3,
	})
	assert.NoError(t, err)

	// La data e' quella del giorno selezionato, non quella odierna
	assert.Equal(t, "2026-09-12", entry.DataOra.Format("2006-01-02"))
	assert.Equal(t, "20:30", entry.DataOra.Format("15:04"))
	assert.Equal(t, UnassignedTable, entry.Tavolo)
	assert.Equal(t, "confermata", entry.Stato)
}

func TestAddAssignsMaxPlusOneID(t *testing.T) {
	board := NewBoardAt(1, fixedClock)
	board.SetReservations([]client.Reservation{
		{ID: 2, DataOra: fixedClock()},
		{ID: 9, DataOra: fixedClock().Add(time.Hour)},
		{ID: 5, DataOra: fixedClock().Add(2 * time.Hour)},
	})

	entry, err := board.Add(ReservationForm{
		Nome:     "Anna Bianchi",
		Telefono: "+39 334 7654321",
		Orario:   "13:00",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(10), entry.ID)

	// Coperti di default quando il form non li specifica
	assert.Equal(t, 2, entry.NumeroPersone)
}

func TestAddValidatesContactAndTime(t *testing.T) {
	board := NewBoardAt(1, fixedClock)

	_, err := board.Add(ReservationForm{Telefono: "+39 334 7654321", Orario: "20:00"})
	assert.Error(t, err)

	_, err = board.Add(ReservationForm{Nome: "Anna", Orario: "20:00"})
	assert.Error(t, err)

	_, err = board.Add(ReservationForm{Nome: "Anna", Telefono: "+39 334 7654321", Orario: "8 di sera"})
	assert.Error(t, err)

	assert.Empty(t, board.Entries())
}

func TestEntriesSortedByTime(t *testing.T) {
	board := NewBoardAt(1, fixedClock)
	board.SetReservations([]client.Reservation{
		{ID: 1, NomeCliente: "Tardi", DataOra: fixedClock().Add(8 * time.Hour)},
		{ID: 2, NomeCliente: "Presto", DataOra: fixedClock().Add(time.Hour)},
	})

	entries := board.Entries()
	assert.Equal(t, "Presto", entries[0].NomeCliente)
	assert.Equal(t, "Tardi", entries[1].NomeCliente)
}
