package handler

import (
	"fmt"
	"net/http"
	"path/filepath"

	"taskhub/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 20 MiB upload cap.
const maxUploadSize = 20 << 20

type UploadHandler struct {
	storage *storage.Client
}

func NewUploadHandler(storage *storage.Client) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload stores a multipart file in blob storage and returns its URL, which
// the client then places in a file_upload action payload.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "File storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	key := fmt.Sprintf("attachments/%s%s", uuid.New(), filepath.Ext(fileHeader.Filename))
	url, err := h.storage.Upload(c.Request.Context(), key, file, fileHeader.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url, "key": key})
}
