package models

import "time"

type Restaurant struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Nome             string    `gorm:"type:varchar(255);not null" json:"nome"`
	Indirizzo        string    `gorm:"type:varchar(255);not null" json:"indirizzo"`
	Telefono         string    `gorm:"type:varchar(50);not null" json:"telefono"`
	PIva             string    `gorm:"column:p_iva;type:varchar(20);not null" json:"p_iva"`
	SlotPrenotazione int       `gorm:"not null;default:90" json:"slot_prenotazione"`
	IsActive         bool      `gorm:"not null;default:true" json:"is_active"`
	OwnerID          *uint     `gorm:"index" json:"owner_id,omitempty"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

func (Restaurant) TableName() string {
	return "ristoranti"
}
