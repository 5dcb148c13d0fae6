package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/lumispa/salon-api/internal/domain/booking"
	"github.com/lumispa/salon-api/internal/dto"
	"github.com/lumispa/salon-api/internal/httperr"
	"github.com/lumispa/salon-api/internal/httpresp"
	"github.com/lumispa/salon-api/internal/middleware"
	"github.com/lumispa/salon-api/internal/models"
	usecase "github.com/lumispa/salon-api/internal/usecase/booking"
)

// Back-office de agendamentos. Toda mudança de status passa pelo use case —
// o handler só traduz HTTP.
type BookingHandler struct {
	db           *gorm.DB
	updateStatus *usecase.UpdateStatus
}

func NewBookingHandler(db *gorm.DB, updateStatus *usecase.UpdateStatus) *BookingHandler {
	return &BookingHandler{db: db, updateStatus: updateStatus}
}

// --------- Requests ---------

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *BookingHandler) List(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	date := strings.TrimSpace(c.Query("date"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Booking{}).
		Preload("Specialist").
		Preload("Services.Service")

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if date != "" {
		q = q.Where("booking_date = ?", date)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(customer_name) LIKE ? OR customer_phone LIKE ? OR LOWER(customer_email) LIKE ?",
			like, like, like,
		)
	}

	var bookings []models.Booking
	if err := q.
		Order("booking_date DESC, booking_time DESC").
		Find(&bookings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	rows := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, toBookingListDTO(b))
	}

	httpresp.List(c, rows)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var b models.Booking
	err := h.db.
		Preload("Specialist").
		Preload("Services.Service").
		First(&b, "id = ?", id).Error

	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.updateStatus.Execute(
		c.Request.Context(),
		id,
		domain.Status(req.Status),
		&actorID,
	)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// --------- Mapping ---------

func toBookingListDTO(b models.Booking) dto.BookingListDTO {
	specialist := ""
	if b.Specialist != nil {
		specialist = b.Specialist.Name
	}

	services := make([]string, 0, len(b.Services))
	for _, line := range b.Services {
		services = append(services, line.Service.Name)
	}

	return dto.BookingListDTO{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		Specialist:    specialist,
		Services:      services,
		Date:          b.BookingDate,
		Time:          b.BookingTime,
		Status:        b.Status,
		TotalPrice:    b.TotalPrice,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
	}
}
