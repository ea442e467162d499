package models

import "time"

// DaySchedule descrive l'orario settimanale di apertura di un
// ristorante. Giorno segue l'indice ISO: 0=lunedi .. 6=domenica.
type DaySchedule struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RistoranteID uint      `gorm:"not null;uniqueIndex:idx_orari_ristorante_giorno" json:"ristorante_id"`
	Giorno       int       `gorm:"not null;uniqueIndex:idx_orari_ristorante_giorno" json:"giorno"`
	Aperto       bool      `gorm:"not null;default:true" json:"aperto"`
	PranzoDa     string    `gorm:"type:varchar(5)" json:"pranzo_da,omitempty"`
	PranzoA      string    `gorm:"type:varchar(5)" json:"pranzo_a,omitempty"`
	CenaDa       string    `gorm:"type:varchar(5)" json:"cena_da,omitempty"`
	CenaA        string    `gorm:"type:varchar(5)" json:"cena_a,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (DaySchedule) TableName() string {
	return "orari"
}
