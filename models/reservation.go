package models

import "time"

const (
	ReservationConfirmed = "confermata"
	ReservationCancelled = "cancellata"
	ReservationCompleted = "completata"
)

type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	RistoranteID    uint      `gorm:"not null;index" json:"ristorante_id"`
	TavoloID        *uint     `gorm:"index" json:"tavolo_id,omitempty"`
	NomeCliente     string    `gorm:"type:varchar(255);not null" json:"nome_cliente"`
	EmailCliente    string    `gorm:"type:varchar(255)" json:"email_cliente,omitempty"`
	TelefonoCliente string    `gorm:"type:varchar(50);not null" json:"telefono_cliente"`
	DataOra         time.Time `gorm:"not null;index" json:"data_ora"`
	NumeroPersone   int       `gorm:"not null" json:"numero_persone"`
	Note            string    `gorm:"type:text" json:"note,omitempty"`
	Stato           string    `gorm:"type:varchar(20);not null;default:'confermata'" json:"stato"`
	// ManageToken consente la gestione self-service senza login.
	// Viene restituito solo alla creazione, mai nelle liste.
	ManageToken string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (Reservation) TableName() string {
	return "prenotazioni"
}

// IsTerminal: una prenotazione cancellata o completata non e' piu'
// modificabile dal cliente.
func (r *Reservation) IsTerminal() bool {
	return r.Stato == ReservationCancelled || r.Stato == ReservationCompleted
}

func ValidReservationStatus(s string) bool {
	return s == ReservationConfirmed || s == ReservationCancelled || s == ReservationCompleted
}
