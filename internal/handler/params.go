package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"notification-service/internal/domain"
)

// getPagination reads page/page_size with the service defaults. page_size=0
// must be passed explicitly to disable pagination.
func getPagination(c *fiber.Ctx) (domain.Pagination, error) {
	pagination := domain.DefaultPagination()

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return pagination, domain.ValidationError("page must be an integer")
		}
		pagination.Page = page
	}

	if queryPresent(c, "page_size") {
		size, err := strconv.Atoi(c.Query("page_size"))
		if err != nil {
			return pagination, domain.ValidationError("page_size must be an integer")
		}
		pagination.PageSize = size
	}

	return pagination, pagination.Validate()
}

func parseID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, domain.ValidationError("%s must be a valid UUID", param)
	}
	return id, nil
}

func parseTimeQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, domain.ValidationError("%s must be an RFC 3339 timestamp", key)
	}
	return &t, nil
}

// splitCommaList splits a comma-separated query value, rejecting blank items.
func splitCommaList(value string) ([]string, error) {
	parts := strings.Split(value, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			return nil, domain.ValidationError("invalid value in the comma-separated list")
		}
		values = append(values, trimmed)
	}
	return values, nil
}

// queryPresent distinguishes "parameter absent" from "parameter set to an
// empty value" - the two mean different things for filters.
func queryPresent(c *fiber.Ctx, key string) bool {
	return c.Request().URI().QueryArgs().Has(key)
}
