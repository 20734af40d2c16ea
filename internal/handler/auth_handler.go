package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lighthouse-program/lighthouse-api/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, email string, password string) (*service.LoginResult, error)
	Logout(ctx context.Context, token string) error
}

type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) (*AuthHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("auth service is required")
	}
	return &AuthHandler{service: service}, nil
}

// RegisterLoginRoute mounts the unauthenticated login endpoint.
func RegisterLoginRoute(router fiber.Router, service AuthService) error {
	h, err := NewAuthHandler(service)
	if err != nil {
		return err
	}

	router.Post("/login", h.Login)
	return nil
}

// RegisterLogoutRoute mounts logout behind the session middleware.
func RegisterLogoutRoute(router fiber.Router, service AuthService) error {
	h, err := NewAuthHandler(service)
	if err != nil {
		return err
	}

	router.Post("/logout", h.Logout)
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(loginResponse{
		Token: result.Token,
		Name:  result.Admin.Name,
		Email: result.Admin.Email,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := strings.TrimSpace(strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer "))
	if err := h.service.Logout(c.Context(), token); err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logged out"})
}
