package api

import (
	"errors"
	"fmt"
	"net/http"

	"gymcoach/platform/internal/domain"
	"gymcoach/platform/internal/service"
	"gymcoach/platform/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// UserHandler serves account creation, listing, the trainer/client
// connect operation and avatar uploads.
type UserHandler struct {
	users service.UserService
	files storage.FileStorage // nil when no bucket is configured
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService, files storage.FileStorage) *UserHandler {
	return &UserHandler{users: users, files: files}
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	user.ID = "" // the store assigns identifiers

	id, err := h.users.CreateUser(c.Request.Context(), &user)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			abortWithError(c, http.StatusBadRequest, "Email already exists")
			return
		}
		if !abortStoreError(c, err) {
			abortInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListUsers handles GET /api/users?role=.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context(), c.Query("role"))
	if err != nil {
		if !abortStoreError(c, err) {
			abortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, users)
}

// Connect handles POST /api/connect?trainer_id=&client_email=.
func (h *UserHandler) Connect(c *gin.Context) {
	trainerID := c.Query("trainer_id")
	clientEmail := c.Query("client_email")
	if trainerID == "" || clientEmail == "" {
		abortWithError(c, http.StatusBadRequest, "trainer_id and client_email are required")
		return
	}

	err := h.users.Connect(c.Request.Context(), trainerID, clientEmail)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrainerNotFound):
			abortWithError(c, http.StatusNotFound, "Trainer not found")
		case errors.Is(err, service.ErrClientNotFound):
			abortWithError(c, http.StatusNotFound, "Client not found")
		default:
			if !abortStoreError(c, err) {
				abortInternal(c, err)
			}
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "connected"})
}

type avatarUploadRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}

// AvatarUploadResponse carries the presigned PUT URL the client must
// upload the image to plus the stable URL stored on the user.
type AvatarUploadResponse struct {
	UploadURL string `json:"upload_url"`
	AvatarURL string `json:"avatar_url"`
	ObjectKey string `json:"object_key"`
}

// UploadAvatar handles POST /api/users/:id/avatar. It issues a
// presigned upload URL and records the resulting public URL on the
// user document.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	if h.files == nil {
		abortWithError(c, http.StatusServiceUnavailable, "File storage not configured")
		return
	}

	var req avatarUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID := c.Param("id")
	user, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
			return
		}
		if !abortStoreError(c, err) {
			abortInternal(c, err)
		}
		return
	}

	objectKey := fmt.Sprintf("avatars/%s/%s", userID, uuid.NewString())
	uploadURL, err := h.files.GeneratePresignedUploadURL(c.Request.Context(), objectKey, req.ContentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		abortWithError(c, http.StatusServiceUnavailable, "Could not prepare upload")
		return
	}

	// Best effort cleanup of the previous avatar object.
	if oldKey, ok := h.files.ObjectKeyFromURL(user.AvatarURL); ok {
		if err := h.files.DeleteObject(c.Request.Context(), oldKey); err != nil {
			log.Warnf("could not delete previous avatar %s: %v", oldKey, err)
		}
	}

	avatarURL := h.files.ObjectURL(objectKey)
	if err := h.users.SetAvatarURL(c.Request.Context(), userID, avatarURL); err != nil {
		if !abortStoreError(c, err) {
			abortInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, AvatarUploadResponse{
		UploadURL: uploadURL,
		AvatarURL: avatarURL,
		ObjectKey: objectKey,
	})
}
