package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumispa/salon-api/internal/httperr"
	"github.com/lumispa/salon-api/internal/models"
	"github.com/lumispa/salon-api/internal/timezone"
)

// Números do dashboard do painel.
type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

type DashboardStats struct {
	BookingsByStatus  map[string]int64 `json:"bookings_by_status"`
	BookingsToday     int64            `json:"bookings_today"`
	Revenue           int64            `json:"revenue"`
	ActiveServices    int64            `json:"active_services"`
	ActiveSpecialists int64            `json:"active_specialists"`
	PublishedPosts    int64            `json:"published_posts"`
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats := DashboardStats{
		BookingsByStatus: map[string]int64{},
	}

	type statusCount struct {
		Status string
		Count  int64
	}

	var byStatus []statusCount
	if err := h.db.Model(&models.Booking{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Erro ao carregar estatísticas.")
		return
	}
	for _, row := range byStatus {
		stats.BookingsByStatus[row.Status] = row.Count
	}

	today := timezone.Today().Format("2006-01-02")
	if err := h.db.Model(&models.Booking{}).
		Where("booking_date = ? AND status <> 'canceled'", today).
		Count(&stats.BookingsToday).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Erro ao carregar estatísticas.")
		return
	}

	// Receita = pagamentos efetivados, não o total_price prometido.
	if err := h.db.Model(&models.Payment{}).
		Where("status = 'completed'").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.Revenue).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Erro ao carregar estatísticas.")
		return
	}

	h.db.Model(&models.Service{}).Where("is_active = true").Count(&stats.ActiveServices)
	h.db.Model(&models.Specialist{}).Where("is_active = true").Count(&stats.ActiveSpecialists)
	h.db.Model(&models.Blog{}).Where("is_published = true").Count(&stats.PublishedPosts)

	c.JSON(http.StatusOK, stats)
}
