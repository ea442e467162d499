package models

import "time"

type MenuCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"type:varchar(100);unique;not null" json:"nome"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (MenuCategory) TableName() string {
	return "categorie_menu"
}

type MenuItem struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	RistoranteID uint         `gorm:"not null;index" json:"ristorante_id"`
	CategoriaID  uint         `gorm:"not null" json:"categoria_id"`
	Categoria    MenuCategory `gorm:"foreignKey:CategoriaID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"categoria"`
	Nome         string       `gorm:"type:varchar(255);not null" json:"nome"`
	Descrizione  string       `gorm:"type:text" json:"descrizione,omitempty"`
	Prezzo       float64      `gorm:"type:decimal(10,2);not null" json:"prezzo"`
	IsActive     bool         `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"not null" json:"updated_at"`
}

func (MenuItem) TableName() string {
	return "piatti"
}
