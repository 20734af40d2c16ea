package handler

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"github.com/lighthouse-program/lighthouse-api/internal/storage"
)

const maxUploadBytes = 10 << 20

type UploadHandler struct {
	uploader storage.Uploader
}

func NewUploadHandler(uploader storage.Uploader) (*UploadHandler, error) {
	if uploader == nil {
		return nil, fmt.Errorf("uploader is required")
	}
	return &UploadHandler{uploader: uploader}, nil
}

func RegisterUploadRoutes(router fiber.Router, uploader storage.Uploader) error {
	h, err := NewUploadHandler(uploader)
	if err != nil {
		return err
	}

	router.Post("/uploads", h.Upload)
	return nil
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return toHTTPError(fmt.Errorf("%w: file is required", domain.ErrValidation))
	}
	if fileHeader.Size > maxUploadBytes {
		return toHTTPError(fmt.Errorf("%w: file exceeds %d bytes", domain.ErrValidation, maxUploadBytes))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > maxUploadBytes {
		return toHTTPError(fmt.Errorf("%w: file exceeds %d bytes", domain.ErrValidation, maxUploadBytes))
	}

	url, err := h.uploader.Upload(c.Context(), fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		return fmt.Errorf("failed to store upload: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
