package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumispa/salon-api/internal/audit"
	"github.com/lumispa/salon-api/internal/cache"
	"github.com/lumispa/salon-api/internal/config"
	"github.com/lumispa/salon-api/internal/handlers"
	infraRepo "github.com/lumispa/salon-api/internal/infra/repository"
	"github.com/lumispa/salon-api/internal/media"
	"github.com/lumispa/salon-api/internal/middleware"
	ucBooking "github.com/lumispa/salon-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	slotsCache := cache.NewAvailabilityCache(cfg.RedisAddr, cfg.RedisPassword)
	storage := media.NewStorage(cfg)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		slotsCache,
	)

	getAvailabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		slotsCache,
	)

	updateStatusUC := ucBooking.NewUpdateStatus(
		bookingRepo,
		auditDispatcher,
		slotsCache,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(db, createBookingUC, getAvailabilityUC)

	bookingHandler := handlers.NewBookingHandler(db, updateStatusUC)
	serviceHandler := handlers.NewServiceHandler(db)
	serviceCategoryHandler := handlers.NewServiceCategoryHandler(db)
	specialistHandler := handlers.NewSpecialistHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db, slotsCache)
	paymentHandler := handlers.NewPaymentHandler(db, auditDispatcher)
	blogHandler := handlers.NewBlogHandler(db)
	blogCategoryHandler := handlers.NewBlogCategoryHandler(db)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)
	statsHandler := handlers.NewStatsHandler(db)
	uploadHandler := handlers.NewUploadHandler(storage)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/service-categories", publicHandler.ListServiceCategories)
			publicAPI.GET("/specialists", publicHandler.ListSpecialists)
			publicAPI.GET("/specialists/:id", publicHandler.GetSpecialist)
			publicAPI.GET("/specialists/:id/availability", publicHandler.GetAvailability)
			publicAPI.GET("/time-slots", publicHandler.ListTimeSlots)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
			publicAPI.GET("/blogs", publicHandler.ListBlogs)
			publicAPI.GET("/blogs/:id", publicHandler.GetBlog)
			publicAPI.GET("/blog-categories", publicHandler.ListBlogCategories)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CONTA LOGADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
		}

		// ------------------------------
		// BACK-OFFICE (ADMIN)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(middleware.RoleAdmin))
		{
			admin.GET("/bookings", bookingHandler.List)
			admin.GET("/bookings/:id", bookingHandler.Get)
			admin.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Deactivate)

			admin.GET("/service-categories", serviceCategoryHandler.List)
			admin.POST("/service-categories", serviceCategoryHandler.Create)
			admin.PATCH("/service-categories/:id", serviceCategoryHandler.Update)
			admin.DELETE("/service-categories/:id", serviceCategoryHandler.Delete)

			admin.GET("/specialists", specialistHandler.List)
			admin.POST("/specialists", specialistHandler.Create)
			admin.PATCH("/specialists/:id", specialistHandler.Update)
			admin.DELETE("/specialists/:id", specialistHandler.Deactivate)

			admin.GET("/specialists/:id/availability", scheduleHandler.GetWeekly)
			admin.PUT("/specialists/:id/availability", scheduleHandler.UpdateWeekly)
			admin.GET("/schedules", scheduleHandler.ListDateSchedules)
			admin.PUT("/schedules", scheduleHandler.UpsertDateSchedule)
			admin.DELETE("/schedules/:id", scheduleHandler.DeleteDateSchedule)

			admin.GET("/payments", paymentHandler.List)
			admin.POST("/payments", paymentHandler.Record)
			admin.PATCH("/payments/:id/status", paymentHandler.UpdateStatus)

			admin.GET("/blogs", blogHandler.List)
			admin.POST("/blogs", blogHandler.Create)
			admin.PATCH("/blogs/:id", blogHandler.Update)
			admin.PATCH("/blogs/:id/publish", blogHandler.SetPublished)
			admin.DELETE("/blogs/:id", blogHandler.Delete)

			admin.GET("/blog-categories", blogCategoryHandler.List)
			admin.POST("/blog-categories", blogCategoryHandler.Create)
			admin.PATCH("/blog-categories/:id", blogCategoryHandler.Update)
			admin.DELETE("/blog-categories/:id", blogCategoryHandler.Delete)

			admin.GET("/users", userHandler.List)
			admin.PATCH("/users/:id/role", userHandler.ChangeRole)

			admin.GET("/stats", statsHandler.Dashboard)
			admin.POST("/uploads", uploadHandler.UploadImage)
		}
	}
}
