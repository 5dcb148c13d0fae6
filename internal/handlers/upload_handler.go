package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumispa/salon-api/internal/httperr"
	"github.com/lumispa/salon-api/internal/media"
)

type UploadHandler struct {
	storage *media.Storage
}

func NewUploadHandler(storage *media.Storage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Recebe multipart "file" e um "folder" opcional (services, specialists,
// blogs). Devolve a URL pública para colar no campo image_url.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if !h.storage.Enabled() {
		httperr.Internal(c, "storage_disabled", "Upload de imagens não está configurado.")
		return
	}

	folder := c.DefaultPostForm("folder", "uploads")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo no campo 'file'.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler arquivo.")
		return
	}
	defer file.Close()

	url, err := h.storage.UploadImage(c.Request.Context(), folder, file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Arquivo não é uma imagem válida.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
