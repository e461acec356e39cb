package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxUploadBytes = 5 * 1024 * 1024

var allowedImageTypes = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// UploadHandler stores branding assets under the public uploads directory.
type UploadHandler struct {
	dir string
}

// NewUploadHandler constructs UploadHandler and ensures the directory exists.
func NewUploadHandler(dir string) *UploadHandler {
	_ = os.MkdirAll(dir, 0o755)
	return &UploadHandler{dir: dir}
}

// Upload accepts a single image file under the size ceiling.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	if file.Size > maxUploadBytes {
		return fiber.NewError(fiber.StatusBadRequest, "file exceeds the 5MB limit")
	}

	contentType := file.Header.Get("Content-Type")
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unsupported file type")
	}

	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	if err := c.SaveFile(file, filepath.Join(h.dir, name)); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"filename": name,
			"url":      "/uploads/" + name,
		},
	})
}

// Delete removes an uploaded file. Path traversal names are rejected.
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	name := c.Params("filename")
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing filename")
	}

	if strings.Contains(name, "..") || strings.ContainsAny(name, "/\\") || filepath.Base(name) != name {
		return fiber.NewError(fiber.StatusBadRequest, "invalid filename")
	}

	path := filepath.Join(h.dir, name)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fiber.NewError(fiber.StatusNotFound, "file not found")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
