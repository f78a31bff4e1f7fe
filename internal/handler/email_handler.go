package handler

import (
	"github.com/gofiber/fiber/v2"

	"notification-service/internal/domain"
	"notification-service/internal/service"
)

type EmailHandler struct {
	emailService service.EmailService
}

func NewEmailHandler(emailService service.EmailService) *EmailHandler {
	return &EmailHandler{emailService: emailService}
}

func (h *EmailHandler) Send(c *fiber.Ctx) error {
	var input domain.SendEmailInput
	if err := c.BodyParser(&input); err != nil {
		return domain.ValidationError("invalid email body: %v", err)
	}

	if err := h.emailService.Send(c.Context(), input); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"result": "Email sent successfully"})
}
