package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumispa/salon-api/internal/httperr"
	"github.com/lumispa/salon-api/internal/models"
)

type BlogCategoryHandler struct {
	db *gorm.DB
}

func NewBlogCategoryHandler(db *gorm.DB) *BlogCategoryHandler {
	return &BlogCategoryHandler{db: db}
}

type BlogCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *BlogCategoryHandler) List(c *gin.Context) {
	var categories []models.BlogCategory
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *BlogCategoryHandler) Create(c *gin.Context) {
	var req BlogCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	category := models.BlogCategory{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", "Erro ao criar categoria.")
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *BlogCategoryHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var category models.BlogCategory
	if err := h.db.First(&category, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	var req BlogCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	category.Name = req.Name
	category.Description = req.Description

	if err := h.db.Save(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_update_category", "Erro ao atualizar categoria.")
		return
	}

	c.JSON(http.StatusOK, category)
}

// Mesma guarda das categorias de serviço: só apaga categoria vazia.
func (h *BlogCategoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var postsCount int64
	if err := h.db.Model(&models.Blog{}).
		Where("category_id = ?", id).
		Count(&postsCount).Error; err != nil {
		httperr.Internal(c, "failed_to_check_category", "Erro ao verificar categoria.")
		return
	}

	if postsCount > 0 {
		httperr.Conflict(c, "category_in_use", "Categoria possui posts vinculados.")
		return
	}

	res := h.db.Delete(&models.BlogCategory{}, "id = ?", id)
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
