package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "crm-services/internal/domain/file"
	"crm-services/internal/usecase/file"
)

// FileHandler handles HTTP requests for file operations
type FileHandler struct {
	uc  file.Usecase
	log *zap.Logger
}

// NewFileHandler creates a new FileHandler instance
func NewFileHandler(uc file.Usecase, log *zap.Logger) *FileHandler {
	return &FileHandler{
		uc:  uc,
		log: log,
	}
}

// FileResponse represents the HTTP response for file metadata
type FileResponse struct {
	ID        int64     `json:"id"`
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	UserID    *int64    `json:"user_id,omitempty"`
	MimeType  string    `json:"mime_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ListFilesResponse represents the HTTP response for listing files
type ListFilesResponse struct {
	Files []FileResponse `json:"files"`
	Count int            `json:"count"`
}

func toFileResponse(f *domain.File) FileResponse {
	return FileResponse{
		ID:        f.ID,
		Filename:  f.Filename,
		Size:      f.Size,
		UserID:    f.UserID,
		MimeType:  f.MimeType,
		CreatedAt: f.CreatedAt,
	}
}

// Upload handles POST /files/upload. The file arrives as the "file"
// multipart form field; an optional user_id query parameter associates
// it with a user.
func (h *FileHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		h.log.Warn("invalid upload request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "multipart field \"file\" is required",
		})
		return
	}

	var userID *int64
	if s := c.Query("user_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation_error",
				Message: "user_id must be a positive number",
			})
			return
		}
		userID = &id
	}

	src, err := fh.Open()
	if err != nil {
		h.log.Error("failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "failed to read uploaded file",
		})
		return
	}
	defer src.Close()

	f, err := h.uc.Upload(c.Request.Context(), file.UploadFileRequest{
		Filename: fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		UserID:   userID,
		Content:  src,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toFileResponse(f))
}

// GetFile handles GET /files/:id
func (h *FileHandler) GetFile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	f, err := h.uc.GetFile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toFileResponse(f))
}

// Download handles GET /files/:id/download, streaming the stored bytes.
func (h *FileHandler) Download(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	f, rc, err := h.uc.Download(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Filename))
	c.DataFromReader(http.StatusOK, f.Size, "application/octet-stream", rc, nil)
}

// DeleteFile handles DELETE /files/:id
func (h *FileHandler) DeleteFile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.uc.DeleteFile(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}

// ListFiles handles GET /files
func (h *FileHandler) ListFiles(c *gin.Context) {
	limit, offset := parsePage(c)

	var userID *int64
	if s := c.Query("user_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation_error",
				Message: "user_id must be a positive number",
			})
			return
		}
		userID = &id
	}

	files, err := h.uc.ListFiles(c.Request.Context(), file.ListFilesRequest{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]FileResponse, len(files))
	for i := range files {
		out[i] = toFileResponse(&files[i])
	}

	c.JSON(http.StatusOK, ListFilesResponse{Files: out, Count: len(out)})
}
