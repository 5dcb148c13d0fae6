package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumispa/salon-api/internal/httperr"
	"github.com/lumispa/salon-api/internal/models"
)

type SpecialistHandler struct {
	db *gorm.DB
}

func NewSpecialistHandler(db *gorm.DB) *SpecialistHandler {
	return &SpecialistHandler{db: db}
}

// --------- Requests ---------

type CreateSpecialistRequest struct {
	Name       string `json:"name" binding:"required"`
	Role       string `json:"role" binding:"required"`
	Bio        string `json:"bio"`
	Experience string `json:"experience"`
	ImageURL   string `json:"image_url"`
}

type UpdateSpecialistRequest struct {
	Name       *string `json:"name,omitempty"`
	Role       *string `json:"role,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	Experience *string `json:"experience,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *SpecialistHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Specialist{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(role) LIKE ?", like, like)
	}

	var specialists []models.Specialist
	if err := q.Order("created_at DESC").Find(&specialists).Error; err != nil {
		httperr.Internal(c, "failed_to_list_specialists", "Erro ao listar especialistas.")
		return
	}

	c.JSON(http.StatusOK, specialists)
}

func (h *SpecialistHandler) Create(c *gin.Context) {
	var req CreateSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	specialist := models.Specialist{
		Name:       req.Name,
		Role:       req.Role,
		Bio:        req.Bio,
		Experience: req.Experience,
		ImageURL:   req.ImageURL,
		IsActive:   true,
	}

	if err := h.db.Create(&specialist).Error; err != nil {
		httperr.Internal(c, "failed_to_create_specialist", "Erro ao criar especialista.")
		return
	}

	c.JSON(http.StatusCreated, specialist)
}

func (h *SpecialistHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var specialist models.Specialist
	if err := h.db.First(&specialist, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "specialist_not_found", "Especialista não encontrado.")
		return
	}

	var req UpdateSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		specialist.Name = *req.Name
	}
	if req.Role != nil {
		specialist.Role = *req.Role
	}
	if req.Bio != nil {
		specialist.Bio = *req.Bio
	}
	if req.Experience != nil {
		specialist.Experience = *req.Experience
	}
	if req.ImageURL != nil {
		specialist.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		specialist.IsActive = *req.IsActive
	}

	if err := h.db.Save(&specialist).Error; err != nil {
		httperr.Internal(c, "failed_to_update_specialist", "Erro ao atualizar especialista.")
		return
	}

	c.JSON(http.StatusOK, specialist)
}

// Especialistas com histórico nunca somem do banco: desativação apenas.
func (h *SpecialistHandler) Deactivate(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Model(&models.Specialist{}).
		Where("id = ?", id).
		Update("is_active", false)

	if res.Error != nil {
		httperr.Internal(c, "failed_to_deactivate_specialist", "Erro ao desativar especialista.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "specialist_not_found", "Especialista não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
