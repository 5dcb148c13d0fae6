package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lumispa/salon-api/internal/cache"
	"github.com/lumispa/salon-api/internal/httperr"
	"github.com/lumispa/salon-api/internal/models"
)

// Administra o template semanal e os overrides por data dos especialistas.
type ScheduleHandler struct {
	db    *gorm.DB
	slots *cache.AvailabilityCache
}

func NewScheduleHandler(db *gorm.DB, slots *cache.AvailabilityCache) *ScheduleHandler {
	return &ScheduleHandler{db: db, slots: slots}
}

// --------- Requests ---------

type WeeklyDayConfig struct {
	DayOfWeek   int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type WeeklyUpdateRequest struct {
	Days []WeeklyDayConfig `json:"days" binding:"required"`
}

type DateScheduleRequest struct {
	SpecialistID string   `json:"specialist_id" binding:"required"`
	Date         string   `json:"date" binding:"required"`
	TimeSlots    []string `json:"time_slots" binding:"required"`
}

// --------- Weekly template ---------

func (h *ScheduleHandler) GetWeekly(c *gin.Context) {
	specialistID := c.Param("id")

	var rows []models.SpecialistAvailability
	if err := h.db.
		Where("specialist_id = ?", specialistID).
		Order("day_of_week ASC").
		Find(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_get_availability", "Erro ao buscar disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Substituição completa do template, no mesmo molde do update de horários
// de expediente: apaga e recria dentro de uma transação.
func (h *ScheduleHandler) UpdateWeekly(c *gin.Context) {
	specialistID := c.Param("id")

	var specialist models.Specialist
	if err := h.db.First(&specialist, "id = ?", specialistID).Error; err != nil {
		httperr.NotFound(c, "specialist_not_found", "Especialista não encontrado.")
		return
	}

	var req WeeklyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, d := range req.Days {
		if d.IsAvailable && (!isValidHM(d.StartTime) || !isValidHM(d.EndTime)) {
			httperr.BadRequest(c, "invalid_time_range", "Horário inválido.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("specialist_id = ?", specialistID).
			Delete(&models.SpecialistAvailability{}).Error; err != nil {
			return err
		}

		var toCreate []models.SpecialistAvailability
		for _, d := range req.Days {
			toCreate = append(toCreate, models.SpecialistAvailability{
				SpecialistID: specialistID,
				DayOfWeek:    d.DayOfWeek,
				StartTime:    d.StartTime,
				EndTime:      d.EndTime,
				IsAvailable:  d.IsAvailable,
			})
		}

		if len(toCreate) == 0 {
			return nil
		}
		return tx.Create(&toCreate).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_save_availability", "Erro ao salvar disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Date overrides ---------

func (h *ScheduleHandler) ListDateSchedules(c *gin.Context) {
	var schedules []models.SpecialistSchedule
	if err := h.db.
		Order("date ASC").
		Find(&schedules).Error; err != nil {

		httperr.Internal(c, "failed_to_list_schedules", "Erro ao listar agendas.")
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// Upsert por (especialista, data), igual ao onConflict do painel original.
func (h *ScheduleHandler) UpsertDateSchedule(c *gin.Context) {
	var req DateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	for _, slot := range req.TimeSlots {
		if !isValidHM(slot) {
			httperr.BadRequest(c, "invalid_time_slot", "Horário inválido: "+slot)
			return
		}
	}

	var specialist models.Specialist
	if err := h.db.First(&specialist, "id = ?", req.SpecialistID).Error; err != nil {
		httperr.NotFound(c, "specialist_not_found", "Especialista não encontrado.")
		return
	}

	schedule := models.SpecialistSchedule{
		SpecialistID: req.SpecialistID,
		Date:         req.Date,
		TimeSlots:    req.TimeSlots,
	}

	err := h.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "specialist_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"time_slots", "updated_at"}),
		}).
		Create(&schedule).Error

	if err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar agenda.")
		return
	}

	h.slots.Invalidate(c.Request.Context(), req.SpecialistID, req.Date)

	c.JSON(http.StatusOK, schedule)
}

func (h *ScheduleHandler) DeleteDateSchedule(c *gin.Context) {
	id := c.Param("id")

	var schedule models.SpecialistSchedule
	if err := h.db.First(&schedule, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "schedule_not_found", "Agenda não encontrada.")
		return
	}

	if err := h.db.Delete(&schedule).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_schedule", "Erro ao excluir agenda.")
		return
	}

	h.slots.Invalidate(c.Request.Context(), schedule.SpecialistID, schedule.Date)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func isValidHM(hm string) bool {
	_, err := time.Parse("15:04", hm)
	return err == nil
}
