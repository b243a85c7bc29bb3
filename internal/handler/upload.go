package handler

import (
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/luxebeaute/storefront/internal/domain"
	"github.com/luxebeaute/storefront/internal/storage"
)

// maxUploadSize bounds product image uploads.
const maxUploadSize = 5 * 1024 * 1024 // 5MB

// UploadHandler stores and removes product images.
type UploadHandler struct {
	storage storage.Storage
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{storage: store}
}

// Upload handles POST /upload with a multipart "file" field.
// Only images up to 5MB are accepted.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.Invalid("upload", "No file provided")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return domain.Invalid("upload", "File must be an image")
	}

	if fileHeader.Size > maxUploadSize {
		return domain.Invalid("upload", "File size must be less than 5MB")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return domain.Internal(err, "upload", "failed to read file")
	}
	defer src.Close()

	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(fileHeader.Filename))

	url, err := h.storage.Put(c.Request().Context(), key, src, contentType)
	if err != nil {
		return domain.Internal(err, "upload", "failed to store file")
	}

	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

// Delete handles DELETE /upload?filename=.
func (h *UploadHandler) Delete(c echo.Context) error {
	filename := c.QueryParam("filename")
	if filename == "" {
		return domain.Invalid("upload.delete", "Filename is required")
	}

	// Reject traversal; stored keys are flat basenames.
	if filename != path.Base(filename) || strings.Contains(filename, "..") {
		return domain.Invalid("upload.delete", "Invalid filename")
	}

	if err := h.storage.Delete(c.Request().Context(), filename); err != nil {
		if storage.IsNotFound(err) {
			return domain.NotFound("upload.delete", "file", filename)
		}
		return domain.Internal(err, "upload.delete", "failed to delete file")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "File deleted successfully"})
}

// sanitizeFilename collapses whitespace to hyphens and strips any path.
func sanitizeFilename(name string) string {
	name = path.Base(name)
	return strings.Join(strings.Fields(name), "-")
}
