package handlers

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"skilllink_backend/internal/storage"
	"skilllink_backend/pkg/apperrors"
)

// FileHandler serves uploaded blobs (profile photos, service photos, chat
// attachments) straight from storage.
type FileHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		store:       store,
	}
}

func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/files/*path", h.ServeFile)
}

func (h *FileHandler) ServeFile(c *gin.Context) {
	ctx := c.Request.Context()
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file path"))
		return
	}

	exists, err := h.store.Exists(ctx, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if !exists {
		apperrors.HandleError(c, apperrors.ErrNotFound(nil))
		return
	}

	size, err := h.store.GetSize(ctx, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	reader, err := h.store.Get(ctx, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, size, contentType, reader, nil)
}
