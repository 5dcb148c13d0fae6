package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumispa/salon-api/internal/httperr"
	"github.com/lumispa/salon-api/internal/middleware"
	"github.com/lumispa/salon-api/internal/models"
	usecase "github.com/lumispa/salon-api/internal/usecase/booking"
)

// Vitrine do site: catálogo, especialistas, blog e o fluxo de agendamento
// aberto a visitantes.
type PublicHandler struct {
	db              *gorm.DB
	createBooking   *usecase.CreateBooking
	getAvailability *usecase.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	createBooking *usecase.CreateBooking,
	getAvailability *usecase.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:              db,
		createBooking:   createBooking,
		getAvailability: getAvailability,
	}
}

// --------- Requests ---------

type PublicBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`

	SpecialistID *string `json:"specialist_id"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	ServiceIDs []string `json:"service_ids" binding:"required"`
	Notes      string   `json:"notes"`
}

// --------- Catálogo ---------

func (h *PublicHandler) ListServices(c *gin.Context) {
	categoryID := strings.TrimSpace(c.Query("category_id"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Preload("Category").Where("is_active = true")

	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *PublicHandler) ListServiceCategories(c *gin.Context) {
	var categories []models.ServiceCategory
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *PublicHandler) ListSpecialists(c *gin.Context) {
	var specialists []models.Specialist
	if err := h.db.
		Where("is_active = true").
		Order("name ASC").
		Find(&specialists).Error; err != nil {

		httperr.Internal(c, "failed_to_list_specialists", "Erro ao listar especialistas.")
		return
	}

	c.JSON(http.StatusOK, specialists)
}

func (h *PublicHandler) GetSpecialist(c *gin.Context) {
	id := c.Param("id")

	var specialist models.Specialist
	err := h.db.
		Where("is_active = true").
		First(&specialist, "id = ?", id).Error

	if err != nil {
		httperr.NotFound(c, "specialist_not_found", "Especialista não encontrado.")
		return
	}

	c.JSON(http.StatusOK, specialist)
}

func (h *PublicHandler) ListTimeSlots(c *gin.Context) {
	var slots []models.TimeSlot
	if err := h.db.Order("time ASC").Find(&slots).Error; err != nil {
		httperr.Internal(c, "failed_to_list_time_slots", "Erro ao listar horários.")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// --------- Agendamento ---------

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	specialistID := c.Param("id")
	date := c.Query("date")

	slots, err := h.getAvailability.Execute(c.Request.Context(), specialistID, date)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"specialist_id": specialistID,
		"date":          date,
		"slots":         slots,
	})
}

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// Visitante logado vincula o agendamento à conta; anônimo segue sem.
	var userID *string
	if v, ok := c.Get(middleware.ContextUserID); ok {
		id := v.(string)
		userID = &id
	}

	b, err := h.createBooking.Execute(c.Request.Context(), usecase.CreateBookingInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		SpecialistID:  req.SpecialistID,
		Date:          req.Date,
		Time:          req.Time,
		ServiceIDs:    req.ServiceIDs,
		Notes:         req.Notes,
		UserID:        userID,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// --------- Blog ---------

func (h *PublicHandler) ListBlogs(c *gin.Context) {
	categoryID := strings.TrimSpace(c.Query("category_id"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Preload("Category").Where("is_published = true")

	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var blogs []models.Blog
	if err := q.Order("created_at DESC").Find(&blogs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_blogs", "Erro ao listar posts.")
		return
	}

	c.JSON(http.StatusOK, blogs)
}

func (h *PublicHandler) GetBlog(c *gin.Context) {
	id := c.Param("id")

	var blog models.Blog
	err := h.db.
		Preload("Category").
		Where("is_published = true").
		First(&blog, "id = ?", id).Error

	if err != nil {
		httperr.NotFound(c, "blog_not_found", "Post não encontrado.")
		return
	}

	c.JSON(http.StatusOK, blog)
}

func (h *PublicHandler) ListBlogCategories(c *gin.Context) {
	var categories []models.BlogCategory
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}

	c.JSON(http.StatusOK, categories)
}
