package handlers

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"skilllink_backend/pkg/apperrors"
)

// UploadLimits caps incoming multipart files. Zero values mean "no limit".
type UploadLimits struct {
	MaxSize      int64
	AllowedTypes []string
}

// openUpload pulls the named multipart file out of the request, enforcing the
// size and content-type limits. On failure the error response is already
// written and ok is false.
func (h *BaseHandler) openUpload(c *gin.Context, field string, limits UploadLimits) (filename string, file multipart.File, contentType string, ok bool) {
	header, err := c.FormFile(field)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file in field '"+field+"'"))
		return "", nil, "", false
	}

	if limits.MaxSize > 0 && header.Size > limits.MaxSize {
		apperrors.HandleError(c, apperrors.ErrFileTooLarge)
		return "", nil, "", false
	}

	contentType = header.Header.Get("Content-Type")
	if len(limits.AllowedTypes) > 0 && !typeAllowed(contentType, limits.AllowedTypes) {
		apperrors.HandleError(c, apperrors.ErrInvalidFileType)
		return "", nil, "", false
	}

	f, err := header.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return "", nil, "", false
	}

	return header.Filename, f, contentType, true
}

func typeAllowed(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if t == contentType {
			return true
		}
	}
	return false
}
