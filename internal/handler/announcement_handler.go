package handler

import (
	"github.com/gofiber/fiber/v2"

	"notification-service/internal/domain"
	"notification-service/internal/repository"
	"notification-service/internal/service"
)

type AnnouncementHandler struct {
	announcementService service.AnnouncementService
}

func NewAnnouncementHandler(announcementService service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	pagination, err := getPagination(c)
	if err != nil {
		return err
	}

	sorting, err := domain.ParseSorting(c.Query("sort_by"), c.Query("sort_order"), "effective_date", "created_at")
	if err != nil {
		return err
	}

	filter := repository.AnnouncementFilter{}
	if username := c.Query("username"); username != "" {
		filter.Username = &username
	}

	result, err := h.announcementService.List(c.Context(), filter, sorting, pagination)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AnnouncementHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	announcement, err := h.announcementService.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(announcement)
}

func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateAnnouncementInput
	if err := c.BodyParser(&input); err != nil {
		return domain.ValidationError("invalid announcement body: %v", err)
	}

	announcement, err := h.announcementService.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(announcement)
}

func (h *AnnouncementHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input domain.UpdateAnnouncementInput
	if err := c.BodyParser(&input); err != nil {
		return domain.ValidationError("invalid announcement body: %v", err)
	}

	announcement, err := h.announcementService.Update(c.Context(), id, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(announcement)
}

func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.announcementService.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AnnouncementHandler) Unsubscribe(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input domain.UnsubscribeInput
	if err := c.BodyParser(&input); err != nil {
		return domain.ValidationError("invalid unsubscription body: %v", err)
	}

	if err := h.announcementService.Unsubscribe(c.Context(), id, input); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
