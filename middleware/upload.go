package middleware

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadDir is where uploaded images land; main serves it at /uploads.
const UploadDir = "uploads"

// SaveUploadedImage stores a multipart file under UploadDir with a generated
// name and returns the public path ("/uploads/<name>.<ext>").
func SaveUploadedImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload folder: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	filename := uuid.NewString() + ext
	savePath := filepath.Join(UploadDir, filename)

	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return "/uploads/" + filename, nil
}
