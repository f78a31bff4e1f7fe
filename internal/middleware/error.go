package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"notification-service/internal/domain"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// ErrorHandler renders every error leaving a handler as the stable
// {code, details} shape. Anything that is not a ServiceError or a fiber
// routing error becomes a 500 without leaking internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var svcErr *domain.ServiceError
	if errors.As(err, &svcErr) {
		return c.Status(svcErr.Status).JSON(ErrorResponse{
			Code:    svcErr.FullCode(),
			Details: svcErr.Details,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := "global.unhandled_exception"
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			code = domain.ErrNotFound.FullCode()
		case fiber.StatusUnprocessableEntity:
			code = "global.validation_error"
		}
		return c.Status(fiberErr.Code).JSON(ErrorResponse{
			Code:    code,
			Details: fiberErr.Message,
		})
	}

	log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(domain.ErrUnhandled.Status).JSON(ErrorResponse{
		Code:    domain.ErrUnhandled.FullCode(),
		Details: domain.ErrUnhandled.Details,
	})
}
