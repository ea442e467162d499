package models

import "time"

// Stati tavolo: etichette manuali impostate dallo staff, nessuna
// transizione automatica.
const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

type Table struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SalaID    uint      `gorm:"not null;index" json:"sala_id"`
	Numero    string    `gorm:"type:varchar(50);not null" json:"numero"`
	Posti     int       `gorm:"not null" json:"posti"`
	Stato     string    `gorm:"type:varchar(20);not null;default:'available'" json:"stato"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Table) TableName() string {
	return "tavoli"
}

func ValidTableStatus(s string) bool {
	return s == TableAvailable || s == TableOccupied || s == TableReserved
}
