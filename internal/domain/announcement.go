package domain

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a scheduled maintenance announcement. Each announcement
// owns exactly one derived maintenance notification and zero or more
// per-user unsubscriptions.
type Announcement struct {
	ID              uuid.UUID `json:"id" db:"id"`
	EffectiveDate   time.Time `json:"effective_date" db:"effective_date"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	Message         string    `json:"message" db:"message"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

type AnnouncementUnsubscription struct {
	ID             uuid.UUID `json:"id" db:"id"`
	AnnouncementID uuid.UUID `json:"announcement_id" db:"announcement_id"`
	Username       string    `json:"username" db:"username"`
}

type CreateAnnouncementInput struct {
	EffectiveDate   time.Time `json:"effective_date"`
	DurationMinutes int       `json:"duration_minutes"`
	Message         string    `json:"message"`
}

func (i CreateAnnouncementInput) Validate() error {
	if i.EffectiveDate.IsZero() {
		return ValidationError("effective_date is required")
	}
	if i.DurationMinutes < 1 {
		return ValidationError("duration_minutes must be a positive integer")
	}
	return validateAnnouncementMessage(i.Message)
}

// UpdateAnnouncementInput is the patch form of an announcement: only the
// fields explicitly provided are applied.
type UpdateAnnouncementInput struct {
	EffectiveDate   *time.Time `json:"effective_date"`
	DurationMinutes *int       `json:"duration_minutes"`
	Message         *string    `json:"message"`
}

func (i UpdateAnnouncementInput) IsEmpty() bool {
	return i.EffectiveDate == nil && i.DurationMinutes == nil && i.Message == nil
}

func (i UpdateAnnouncementInput) Validate() error {
	if i.IsEmpty() {
		return ValidationError("at least one field must be provided")
	}
	if i.EffectiveDate != nil && i.EffectiveDate.IsZero() {
		return ValidationError("effective_date is required")
	}
	if i.DurationMinutes != nil && *i.DurationMinutes < 1 {
		return ValidationError("duration_minutes must be a positive integer")
	}
	if i.Message != nil {
		return validateAnnouncementMessage(*i.Message)
	}
	return nil
}

type UnsubscribeInput struct {
	Username string `json:"username"`
}

func (i UnsubscribeInput) Validate() error {
	if len(i.Username) < 3 || len(i.Username) > 256 {
		return ValidationError("username must be between 3 and 256 characters")
	}
	return nil
}

func validateAnnouncementMessage(message string) error {
	if len(message) < 3 || len(message) > 512 {
		return ValidationError("message must be between 3 and 512 characters")
	}
	return nil
}
