package services

import (
	"time"

	"github.com/vicosaas/vico-backend/models"
	"github.com/vicosaas/vico-backend/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoToken e' il token fisso usato dai materiali demo per il flusso
// self-service (/prenotazioni/gestisci/<token> nel vecchio front-end).
const DemoToken = "abc123def456ghi789"

// SeedDemo popola gli utenti demo (admin/owner con password123) e la
// prenotazione dimostrativa raggiungibile col DemoToken. Va eseguito
// solo con DEMO_MODE=true: sostituisce le credenziali che il vecchio
// front-end confrontava in chiaro.
func SeedDemo(db *gorm.DB) error {
	if err := seedDemoUser(db, "admin", "admin@vico.com", models.RoleAdmin); err != nil {
		return err
	}
	if err := seedDemoUser(db, "owner", "owner@vico.com", models.RoleOwner); err != nil {
		return err
	}
	return seedDemoReservation(db)
}

func seedDemoUser(db *gorm.DB, name, email, role string) error {
	var count int64
	db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Demo user seeded: %s (role=%s)", email, role)
	return nil
}

func seedDemoReservation(db *gorm.DB) error {
	var count int64
	db.Model(&models.Reservation{}).Where("manage_token = ?", DemoToken).Count(&count)
	if count > 0 {
		return nil
	}

	restaurant := models.Restaurant{
		Nome:             "Luigi's Pasta",
		Indirizzo:        "Via Roma 12, Torino",
		Telefono:         "+39 011 555 0101",
		PIva:             "IT01234567890",
		SlotPrenotazione: 90,
		IsActive:         true,
	}
	if err := db.Where("nome = ?", restaurant.Nome).FirstOrCreate(&restaurant).Error; err != nil {
		return err
	}

	reservation := models.Reservation{
		RistoranteID:    restaurant.ID,
		NomeCliente:     "Mario Rossi",
		EmailCliente:    "mario@example.com",
		TelefonoCliente: "3331234567",
		DataOra:         time.Now().Add(24 * time.Hour),
		NumeroPersone:   4,
		Note:            "Tavolo vicino alla finestra se possibile",
		Stato:           models.ReservationConfirmed,
		ManageToken:     DemoToken,
	}
	if err := db.Create(&reservation).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Demo reservation seeded (token=%s)", DemoToken)
	return nil
}
