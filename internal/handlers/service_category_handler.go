package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumispa/salon-api/internal/httperr"
	"github.com/lumispa/salon-api/internal/models"
)

type ServiceCategoryHandler struct {
	db *gorm.DB
}

func NewServiceCategoryHandler(db *gorm.DB) *ServiceCategoryHandler {
	return &ServiceCategoryHandler{db: db}
}

type ServiceCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (h *ServiceCategoryHandler) List(c *gin.Context) {
	var categories []models.ServiceCategory
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *ServiceCategoryHandler) Create(c *gin.Context) {
	var req ServiceCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	category := models.ServiceCategory{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}

	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", "Erro ao criar categoria.")
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *ServiceCategoryHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var category models.ServiceCategory
	if err := h.db.First(&category, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	var req ServiceCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	category.Name = req.Name
	category.Description = req.Description
	category.Icon = req.Icon

	if err := h.db.Save(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_update_category", "Erro ao atualizar categoria.")
		return
	}

	c.JSON(http.StatusOK, category)
}

// Delete recusa enquanto houver serviços na categoria, com o motivo no corpo.
func (h *ServiceCategoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var servicesCount int64
	if err := h.db.Model(&models.Service{}).
		Where("category_id = ?", id).
		Count(&servicesCount).Error; err != nil {
		httperr.Internal(c, "failed_to_check_category", "Erro ao verificar categoria.")
		return
	}

	if servicesCount > 0 {
		httperr.Conflict(c, "category_in_use", "Categoria possui serviços vinculados.")
		return
	}

	res := h.db.Delete(&models.ServiceCategory{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_category", "Erro ao excluir categoria.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
