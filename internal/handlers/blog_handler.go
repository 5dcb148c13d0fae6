package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumispa/salon-api/internal/httperr"
	"github.com/lumispa/salon-api/internal/models"
)

type BlogHandler struct {
	db *gorm.DB
}

func NewBlogHandler(db *gorm.DB) *BlogHandler {
	return &BlogHandler{db: db}
}

// --------- Requests ---------

type CreateBlogRequest struct {
	Title       string  `json:"title" binding:"required"`
	Author      string  `json:"author" binding:"required"`
	CategoryID  *string `json:"category_id"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	ImageURL    string  `json:"image_url"`
}

type UpdateBlogRequest struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type PublishBlogRequest struct {
	IsPublished *bool `json:"is_published" binding:"required"`
}

// --------- Handlers ---------

func (h *BlogHandler) List(c *gin.Context) {
	categoryID := strings.TrimSpace(c.Query("category_id"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Preload("Category")

	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", like, like)
	}

	var blogs []models.Blog
	if err := q.Order("created_at DESC").Find(&blogs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_blogs", "Erro ao listar posts.")
		return
	}

	c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	blog := models.Blog{
		Title:       req.Title,
		Author:      req.Author,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		IsPublished: false,
	}

	if err := h.db.Create(&blog).Error; err != nil {
		httperr.Internal(c, "failed_to_create_blog", "Erro ao criar post.")
		return
	}

	c.JSON(http.StatusCreated, blog)
}

func (h *BlogHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var blog models.Blog
	if err := h.db.First(&blog, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "blog_not_found", "Post não encontrado.")
		return
	}

	var req UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Author != nil {
		blog.Author = *req.Author
	}
	if req.CategoryID != nil {
		blog.CategoryID = req.CategoryID
	}
	if req.Description != nil {
		blog.Description = *req.Description
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.ImageURL != nil {
		blog.ImageURL = *req.ImageURL
	}

	if err := h.db.Save(&blog).Error; err != nil {
		httperr.Internal(c, "failed_to_update_blog", "Erro ao atualizar post.")
		return
	}

	c.JSON(http.StatusOK, blog)
}

// Publicar/despublicar é separado do update de conteúdo: o painel alterna o
// toggle sem reenviar o post inteiro.
func (h *BlogHandler) SetPublished(c *gin.Context) {
	id := c.Param("id")

	var req PublishBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res := h.db.Model(&models.Blog{}).
		Where("id = ?", id).
		Update("is_published", *req.IsPublished)

	if res.Error != nil {
		httperr.Internal(c, "failed_to_publish_blog", "Erro ao publicar post.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "blog_not_found", "Post não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Blog{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_blog", "Erro ao excluir post.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "blog_not_found", "Post não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
