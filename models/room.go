package models

import "time"

// Room e' una sala fisica del ristorante. Disattivarla la nasconde
// dalle nuove assegnazioni senza cancellare lo storico.
type Room struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RistoranteID uint      `gorm:"not null;index" json:"ristorante_id"`
	Nome         string    `gorm:"type:varchar(255);not null" json:"nome"`
	Descrizione  string    `gorm:"type:text" json:"descrizione,omitempty"`
	Capienza     int       `gorm:"not null" json:"capienza"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	Tavoli       []Table   `gorm:"foreignKey:SalaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"tavoli"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (Room) TableName() string {
	return "sale"
}
