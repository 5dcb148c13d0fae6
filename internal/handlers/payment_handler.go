package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumispa/salon-api/internal/audit"
	"github.com/lumispa/salon-api/internal/dto"
	"github.com/lumispa/salon-api/internal/httperr"
	"github.com/lumispa/salon-api/internal/httpresp"
	"github.com/lumispa/salon-api/internal/middleware"
	"github.com/lumispa/salon-api/internal/models"
)

// Registro manual de pagamentos: sem gateway, o recepcionista lança o valor
// recebido e o status. transaction_id é referência externa livre (pix, maquininha).
type PaymentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPaymentHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *PaymentHandler {
	return &PaymentHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type RecordPaymentRequest struct {
	BookingID     string `json:"booking_id" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,min=1"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	TransactionID string `json:"transaction_id"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed failed refunded"`
}

// --------- Handlers ---------

func (h *PaymentHandler) List(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Payment{}).Preload("Booking")

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var payments []models.Payment
	if err := q.Order("created_at DESC").Find(&payments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Erro ao listar pagamentos.")
		return
	}

	rows := make([]dto.TransactionListDTO, 0, len(payments))
	for _, p := range payments {
		row := dto.TransactionListDTO{
			ID:            p.ID,
			TransactionID: p.TransactionID,
			BookingID:     p.BookingID,
			CustomerName:  p.Booking.CustomerName,
			CustomerPhone: p.Booking.CustomerPhone,
			Amount:        p.Amount,
			Method:        p.PaymentMethod,
			Status:        p.Status,
			CreatedAt:     p.CreatedAt,
		}

		if query != "" &&
			!strings.Contains(strings.ToLower(row.CustomerName), query) &&
			!strings.Contains(row.TransactionID, query) {
			continue
		}

		rows = append(rows, row)
	}

	httpresp.List(c, rows)
}

func (h *PaymentHandler) Record(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var booking models.Booking
	if err := h.db.First(&booking, "id = ?", req.BookingID).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
		return
	}

	payment := models.Payment{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		Status:        "pending",
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	}

	if err := h.db.Create(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_record_payment", "Erro ao registrar pagamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "payment_recorded",
		Entity:   "payment",
		EntityID: &payment.ID,
		Metadata: map[string]string{"booking_id": req.BookingID},
	})

	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var payment models.Payment
	if err := h.db.First(&payment, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "payment_not_found", "Pagamento não encontrado.")
		return
	}

	previous := payment.Status
	payment.Status = req.Status

	if err := h.db.Save(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_update_payment", "Erro ao atualizar pagamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "payment_status_changed",
		Entity:   "payment",
		EntityID: &payment.ID,
		Metadata: map[string]string{"from": previous, "to": req.Status},
	})

	c.JSON(http.StatusOK, payment)
}
