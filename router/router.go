package router

import (
	"github.com/gin-gonic/gin"
	"github.com/vicosaas/vico-backend/controllers"
	"github.com/vicosaas/vico-backend/middlewares"
	"github.com/vicosaas/vico-backend/models"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	roomCtrl := controllers.NewRoomController(db)
	tableCtrl := controllers.NewTableController(db)
	reservationCtrl := controllers.NewReservationController(db)
	scheduleCtrl := controllers.NewScheduleController(db)
	menuCtrl := controllers.NewMenuController(db)
	categoryCtrl := controllers.NewMenuCategoryController(db)
	dashboardCtrl := controllers.NewDashboardController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api/v1")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------

	// Login con rate limiter stretto
	auth := api.Group("/auth")
	auth.POST("/login", middlewares.NewStrictRateLimiter(), userCtrl.Login)

	// Lettura pubblica di ristoranti e menu
	api.GET("/ristoranti/", restaurantCtrl.GetAllRestaurants)
	api.GET("/ristoranti/:id/", restaurantCtrl.GetRestaurantByID)
	api.GET("/menu", menuCtrl.GetMenu)
	api.GET("/categorie", categoryCtrl.GetAllCategories)

	// Prenotazione pubblica: creazione e self-service via token
	api.POST("/prenotazioni", reservationCtrl.CreateReservation)
	api.GET("/prenotazioni/token/:token", reservationCtrl.GetReservationByToken)
	api.PUT("/prenotazioni/token/:token", reservationCtrl.UpdateReservationByToken)
	api.POST("/prenotazioni/token/:token/cancel", reservationCtrl.CancelReservationByToken)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	authed := api.Group("")
	authed.Use(middlewares.AuthMiddleware())

	authed.GET("/auth/me", userCtrl.GetProfile)
	authed.POST("/auth/logout", userCtrl.Logout)

	// Gestione piattaforma (solo admin)
	admin := authed.Group("")
	admin.Use(middlewares.RequireRole(models.RoleAdmin))
	{
		admin.POST("/auth/register", userCtrl.Register)
		admin.GET("/users", userCtrl.GetAllUsers)
		admin.POST("/ristoranti/", restaurantCtrl.CreateRestaurant)
		admin.PATCH("/ristoranti/:id/", restaurantCtrl.UpdateRestaurant)
		admin.DELETE("/ristoranti/:id/", restaurantCtrl.DeleteRestaurant)
	}

	// Gestione del locale (owner o admin)
	owner := authed.Group("")
	owner.Use(middlewares.RequireRole(models.RoleOwner))
	{
		// SALE
		owner.GET("/ristoranti/:id/sale", roomCtrl.GetRooms)
		owner.POST("/ristoranti/:id/sale", roomCtrl.CreateRoom)
		owner.PATCH("/sale/:sala_id", roomCtrl.UpdateRoom)
		owner.DELETE("/sale/:sala_id", roomCtrl.DeleteRoom)
		owner.POST("/sale/:sala_id/toggle", roomCtrl.ToggleRoomActive)

		// TAVOLI
		owner.POST("/sale/:sala_id/tavoli", tableCtrl.CreateTable)
		owner.PATCH("/tavoli/:tavolo_id", tableCtrl.UpdateTable)
		owner.PATCH("/tavoli/:tavolo_id/stato", tableCtrl.UpdateTableStatus)
		owner.DELETE("/tavoli/:tavolo_id", tableCtrl.DeleteTable)

		// PRENOTAZIONI (vista giorno + CRUD staff; la creazione passa
		// dalla stessa route pubblica)
		owner.GET("/prenotazioni", reservationCtrl.GetReservationsByDay)
		owner.GET("/prenotazioni/:prenotazione_id", reservationCtrl.GetReservationByID)
		owner.PATCH("/prenotazioni/:prenotazione_id", reservationCtrl.UpdateReservation)
		owner.DELETE("/prenotazioni/:prenotazione_id", reservationCtrl.DeleteReservation)
		owner.POST("/prenotazioni/:prenotazione_id/complete", reservationCtrl.CompleteReservation)

		// ORARI
		owner.GET("/ristoranti/:id/orari", scheduleCtrl.GetSchedule)
		owner.PUT("/ristoranti/:id/orari", scheduleCtrl.UpdateSchedule)

		// MENU
		owner.POST("/menu", menuCtrl.CreateMenuItem)
		owner.PATCH("/menu/:piatto_id", menuCtrl.UpdateMenuItem)
		owner.DELETE("/menu/:piatto_id", menuCtrl.DeleteMenuItem)
		owner.POST("/categorie", categoryCtrl.CreateCategory)
		owner.PATCH("/categorie/:cat_id", categoryCtrl.UpdateCategory)
		owner.DELETE("/categorie/:cat_id", categoryCtrl.DeleteCategory)

		// DASHBOARD
		owner.GET("/dashboard/stats", dashboardCtrl.GetDashboardStats)
	}

	return r
}
