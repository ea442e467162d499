package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vicosaas/vico-backend/config"
	"github.com/vicosaas/vico-backend/middlewares"
	"github.com/vicosaas/vico-backend/models"
	"github.com/vicosaas/vico-backend/router"
	"github.com/vicosaas/vico-backend/services"
	"github.com/vicosaas/vico-backend/utils"
	"gorm.io/gorm"
)

func init() {
	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if cfg.DemoMode {
		if err := services.SeedDemo(db); err != nil {
			utils.ErrorLogger.Printf("Demo seed failed: %v", err)
		}
	}

	// Pulizia periodica della blacklist dei token di logout.
	go func() {
		for range time.Tick(1 * time.Hour) {
			utils.CleanupBlacklist()
		}
	}()

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db)
	r.Use(rateLimiter.RateLimit())

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Room{},
		&models.Table{},
		&models.Reservation{},
		&models.DaySchedule{},
		&models.MenuCategory{},
		&models.MenuItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
