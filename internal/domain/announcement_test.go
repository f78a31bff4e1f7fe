package domain_test

import (
	"strings"
	"testing"
	"time"

	"notification-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCreateAnnouncementInput_Validate(t *testing.T) {
	valid := domain.CreateAnnouncementInput{
		EffectiveDate:   time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC),
		DurationMinutes: 90,
		Message:         "Storage upgrade",
	}
	assert.NoError(t, valid.Validate())

	t.Run("Missing Effective Date", func(t *testing.T) {
		input := valid
		input.EffectiveDate = time.Time{}
		assertValidationError(t, input.Validate())
	})

	t.Run("Non Positive Duration", func(t *testing.T) {
		input := valid
		input.DurationMinutes = 0
		assertValidationError(t, input.Validate())
	})

	t.Run("Message Too Short", func(t *testing.T) {
		input := valid
		input.Message = "hi"
		assertValidationError(t, input.Validate())
	})

	t.Run("Message Too Long", func(t *testing.T) {
		input := valid
		input.Message = strings.Repeat("x", 513)
		assertValidationError(t, input.Validate())
	})
}

func TestUpdateAnnouncementInput_Validate(t *testing.T) {
	t.Run("Empty Patch", func(t *testing.T) {
		input := domain.UpdateAnnouncementInput{}
		assert.True(t, input.IsEmpty())
		assertValidationError(t, input.Validate())
	})

	t.Run("Single Field", func(t *testing.T) {
		duration := 45
		input := domain.UpdateAnnouncementInput{DurationMinutes: &duration}
		assert.NoError(t, input.Validate())
	})

	t.Run("Invalid Provided Field", func(t *testing.T) {
		message := "ab"
		input := domain.UpdateAnnouncementInput{Message: &message}
		assertValidationError(t, input.Validate())
	})
}

func TestUnsubscribeInput_Validate(t *testing.T) {
	assert.NoError(t, domain.UnsubscribeInput{Username: "jdoe"}.Validate())
	assertValidationError(t, domain.UnsubscribeInput{Username: "ab"}.Validate())
	assertValidationError(t, domain.UnsubscribeInput{Username: strings.Repeat("x", 257)}.Validate())
}
