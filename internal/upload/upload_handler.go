package upload

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"stock-m/internal/shared/apperror"
	"stock-m/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MaxFiles    = 5
	MaxFileSize = 5 << 20
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type Handler struct {
	dir    string
	logger *zap.Logger
}

func NewHandler(logger ...*zap.Logger) *Handler {
	l := zap.L().Named("upload.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = filepath.Join("public", "uploads")
	}
	return &Handler{dir: dir, logger: l}
}

func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid multipart form", nil)
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "No files provided", nil)
		return
	}
	if len(files) > MaxFiles {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			fmt.Sprintf("At most %d files per upload", MaxFiles), nil)
		return
	}

	for _, file := range files {
		if file.Size > MaxFileSize {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
				fmt.Sprintf("%s exceeds the 5MB limit", file.Filename), nil)
			return
		}
		contentType := file.Header.Get("Content-Type")
		if _, ok := allowedTypes[contentType]; !ok {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
				fmt.Sprintf("%s has unsupported type %s", file.Filename, contentType), nil)
			return
		}
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		h.logger.Error("create upload dir failed", zap.String("dir", h.dir), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Upload failed", nil)
		return
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		ext := allowedTypes[file.Header.Get("Content-Type")]
		if orig := strings.ToLower(filepath.Ext(file.Filename)); orig != "" {
			ext = orig
		}
		name := uuid.NewString() + ext

		if err := c.SaveUploadedFile(file, filepath.Join(h.dir, name)); err != nil {
			h.logger.Error("save uploaded file failed",
				zap.String("filename", file.Filename),
				zap.Error(err),
			)
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Upload failed", nil)
			return
		}
		urls = append(urls, "/uploads/"+name)
	}

	response.Success(c, http.StatusCreated, gin.H{"urls": urls}, nil)
}
