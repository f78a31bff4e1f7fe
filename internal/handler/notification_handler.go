package handler

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"notification-service/internal/domain"
	"notification-service/internal/repository"
	"notification-service/internal/service"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	pagination, err := getPagination(c)
	if err != nil {
		return err
	}

	sorting, err := domain.ParseSorting(c.Query("sort_by"), c.Query("sort_order"), "created_at")
	if err != nil {
		return err
	}

	filter := repository.NotificationFilter{}

	if raw := c.Query("type"); raw != "" {
		notifType := domain.NotificationType(raw)
		if !notifType.IsValid() {
			return domain.ValidationError("unknown notification type %q", raw)
		}
		filter.Type = &notifType
	}

	// present-but-empty means "rows without a recipient", absent means no
	// recipient predicate at all
	if queryPresent(c, "recipient_username") {
		username := c.Query("recipient_username")
		filter.RecipientUsername = &username
	}

	if raw := c.Query("project_code_any"); raw != "" {
		codes, err := splitCommaList(raw)
		if err != nil {
			return err
		}
		filter.ProjectCodeAny = codes
	}

	if filter.CreatedAtStart, err = parseTimeQuery(c, "created_at_start"); err != nil {
		return err
	}
	if filter.CreatedAtEnd, err = parseTimeQuery(c, "created_at_end"); err != nil {
		return err
	}

	result, err := h.notificationService.List(c.Context(), filter, sorting, pagination)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// ListUser serves "my notifications": everything the visibility rule lets
// the given user see, not a plain field filter.
func (h *NotificationHandler) ListUser(c *fiber.Ctx) error {
	pagination, err := getPagination(c)
	if err != nil {
		return err
	}

	sorting, err := domain.ParseSorting(c.Query("sort_by"), c.Query("sort_order"), "created_at")
	if err != nil {
		return err
	}

	username := c.Query("recipient_username")
	if username == "" {
		return domain.ValidationError("recipient_username is required")
	}

	filter := repository.UserNotificationFilter{RecipientUsername: username}
	if raw := c.Query("project_code_any"); raw != "" {
		codes, err := splitCommaList(raw)
		if err != nil {
			return err
		}
		filter.ProjectCodeAny = codes
	}

	result, err := h.notificationService.ListForUser(c.Context(), filter, sorting, pagination)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// Create accepts either a single notification object or an array of them,
// each discriminated by its type field.
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	body := bytes.TrimSpace(c.Body())

	var entries []json.RawMessage
	if len(body) > 0 && body[0] == '[' {
		if err := json.Unmarshal(body, &entries); err != nil {
			return domain.ValidationError("invalid notification body: %v", err)
		}
	} else {
		entries = []json.RawMessage{body}
	}

	creates := make([]*domain.NotificationCreate, 0, len(entries))
	for _, entry := range entries {
		create, err := domain.ParseNotificationCreate(entry)
		if err != nil {
			return err
		}
		creates = append(creates, create)
	}

	if err := h.notificationService.CreateBatch(c.Context(), creates); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
