package photos

import (
	"fmt"
	"net/http"

	"atelier-app/internal/infra/blob"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxPhotoSize = 5 << 20 // 5 MiB

// extByMIME doubles as the allow-list. image/jpg is a non-standard alias
// some browsers still send.
var extByMIME = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// UploadHandler accepts a piece photo and stores it in the blob store.
type UploadHandler struct {
	store blob.Store
	log   *logrus.Logger
}

func NewUploadHandler(store blob.Store, log *logrus.Logger) *UploadHandler {
	return &UploadHandler{store: store, log: log}
}

// UploadPhoto handles POST /upload-photo (multipart field "file").
func (h *UploadHandler) UploadPhoto(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file sent"})
		return
	}
	defer file.Close()

	if header.Size > maxPhotoSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large (max 5 MiB)"})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	ext, ok := extByMIME[mimeType]
	if !ok {
		h.log.WithField("mime_type", mimeType).Warn("rejected photo upload with unsupported type")
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Unsupported file type (jpeg, png or webp only)"})
		return
	}

	key := fmt.Sprintf("pieces/%d-%s.%s", userID, uuid.NewString(), ext)

	url, err := h.store.Put(c.Request.Context(), key, file, header.Size, mimeType)
	if err != nil {
		h.log.WithField("key", key).WithError(err).Error("failed to store photo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
		return
	}

	h.log.WithFields(logrus.Fields{
		"user_id": userID,
		"key":     key,
		"size":    header.Size,
	}).Info("photo uploaded")

	c.JSON(http.StatusOK, gin.H{"url": url})
}
