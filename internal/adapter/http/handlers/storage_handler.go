package handlers

import (
	"io"
	"log"
	"net/http"
	"path"
	"strings"

	response "distrito_racing/internal/adapter/http/dto/response"
	"distrito_racing/internal/usecase/interfaces"
	"distrito_racing/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadBytes caps event-asset uploads (images, regulation PDFs).
const maxUploadBytes = 10 << 20

// StorageHandler handles uploads of event assets (organizer only).

type StorageHandler struct {
	storage interfaces.IFileStorage
}

func NewStorageHandler(storage interfaces.IFileStorage) *StorageHandler {
	return &StorageHandler{storage: storage}
}

// Upload stores a multipart file under a generated key. An optional "folder"
// form field prefixes the key.
func (h *StorageHandler) Upload(c *gin.Context) {
	if h.storage == nil {
		appErr := pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "File storage not configured", http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "file form field is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if fileHeader.Size > maxUploadBytes {
		appErr := pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "File exceeds the upload limit", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	key := uuid.NewString() + strings.ToLower(path.Ext(fileHeader.Filename))
	if folder := strings.Trim(c.PostForm("folder"), "/"); folder != "" {
		key = folder + "/" + key
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.storage.Upload(c.Request.Context(), key, contentType, body)
	if err != nil {
		log.Printf("[storage][handler] upload failed key=%s err=%v", key, err)
		appErr := pkg.NewDomainError("UPLOAD_FAILED", "Failed to store file", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.UploadResponse{Key: key, URL: url})
}

// Delete removes a stored object by key.
func (h *StorageHandler) Delete(c *gin.Context) {
	if h.storage == nil {
		appErr := pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "File storage not configured", http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "object key is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.storage.Delete(c.Request.Context(), key); err != nil {
		log.Printf("[storage][handler] delete failed key=%s err=%v", key, err)
		appErr := pkg.NewDomainError("DELETE_FAILED", "Failed to delete file", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}
