// utils/upload.go
package utils

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxUploadBytes caps accepted image files at 2 MiB.
const MaxUploadBytes = 2 * 1024 * 1024

// Storage partitions for uploaded files.
const (
	UploadKindServices = "services"
	UploadKindAvatars  = "avatars"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// ValidateImage checks extension and size. Violations are client errors.
func ValidateImage(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return fmt.Errorf("only .jpg, .jpeg, .png, .gif files are allowed")
	}
	if file.Size > MaxUploadBytes {
		return fmt.Errorf("file too large, max 2MB allowed")
	}
	return nil
}

// SaveImage writes an already-validated upload under uploadDir/kind with a
// collision-free name and returns the public path ("/uploads/<kind>/<name>").
func SaveImage(c *gin.Context, file *multipart.FileHeader, uploadDir, kind string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext

	dir := filepath.Join(uploadDir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}

	return "/uploads/" + kind + "/" + name, nil
}

// AbsoluteURL builds a publicly fetchable URL from the current request's
// scheme and host plus a stored public path. Paths that are already absolute
// are returned untouched.
func AbsoluteURL(c *gin.Context, storedPath string) string {
	if storedPath == "" || strings.HasPrefix(storedPath, "http://") || strings.HasPrefix(storedPath, "https://") {
		return storedPath
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + storedPath
}

// DeleteImage removes a previously stored file, given its stored reference
// (absolute URL or public path). Best effort: failures are logged, never
// propagated, so a missing old file can't block an update.
func DeleteImage(uploadDir, kind, ref string) {
	if ref == "" {
		return
	}

	name := path.Base(ref)
	if u, err := url.Parse(ref); err == nil && u.Path != "" {
		name = path.Base(u.Path)
	}

	target := filepath.Join(uploadDir, kind, name)
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to delete stored file %s: %v", target, err)
	}
}
