package domain_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"notification-service/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func locationJSON() string {
	return fmt.Sprintf(`{"id": %q, "path": "/projects/prj001/raw", "zone": 1}`, uuid.New())
}

func targetJSON() string {
	return fmt.Sprintf(`[{"id": %q, "type": "file", "name": "scan.tif"}]`, uuid.New())
}

func TestParseNotificationCreate_Pipeline(t *testing.T) {
	t.Run("Copy With Destination", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"type": "pipeline",
			"recipient_username": "jdoe",
			"project_code": "prj001",
			"involved_as": "initiator",
			"action": "copy",
			"status": "success",
			"initiator_username": "jdoe",
			"source": %s,
			"destination": %s,
			"targets": %s
		}`, locationJSON(), locationJSON(), targetJSON())

		create, err := domain.ParseNotificationCreate(json.RawMessage(body))

		require.NoError(t, err)
		assert.Equal(t, domain.NotifPipeline, create.Type)
		assert.Equal(t, "jdoe", *create.RecipientUsername)
		assert.Equal(t, "prj001", *create.ProjectCode)

		payload, ok := create.Payload.(*domain.PipelineData)
		require.True(t, ok)
		assert.Equal(t, domain.PipelineCopy, payload.Action)
		assert.NotNil(t, payload.Destination)
	})

	t.Run("Delete Without Destination", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"type": "pipeline",
			"recipient_username": "jdoe",
			"project_code": "prj001",
			"involved_as": "owner",
			"action": "delete",
			"status": "failure",
			"initiator_username": "asmith",
			"source": %s,
			"targets": %s
		}`, locationJSON(), targetJSON())

		_, err := domain.ParseNotificationCreate(json.RawMessage(body))
		assert.NoError(t, err)
	})

	t.Run("Copy Requires Destination", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"type": "pipeline",
			"recipient_username": "jdoe",
			"project_code": "prj001",
			"involved_as": "initiator",
			"action": "copy",
			"status": "success",
			"initiator_username": "jdoe",
			"source": %s,
			"targets": %s
		}`, locationJSON(), targetJSON())

		_, err := domain.ParseNotificationCreate(json.RawMessage(body))
		assertValidationError(t, err)
	})

	t.Run("Delete Forbids Destination", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"type": "pipeline",
			"recipient_username": "jdoe",
			"project_code": "prj001",
			"involved_as": "initiator",
			"action": "delete",
			"status": "success",
			"initiator_username": "jdoe",
			"source": %s,
			"destination": %s,
			"targets": %s
		}`, locationJSON(), locationJSON(), targetJSON())

		_, err := domain.ParseNotificationCreate(json.RawMessage(body))
		assertValidationError(t, err)
	})

	t.Run("Missing Recipient", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"type": "pipeline",
			"project_code": "prj001",
			"involved_as": "initiator",
			"action": "delete",
			"status": "success",
			"initiator_username": "jdoe",
			"source": %s,
			"targets": %s
		}`, locationJSON(), targetJSON())

		_, err := domain.ParseNotificationCreate(json.RawMessage(body))
		assertValidationError(t, err)
	})
}

func TestParseNotificationCreate_CopyRequest(t *testing.T) {
	t.Run("Approval Carries Full Context", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"type": "copy-request",
			"recipient_username": "jdoe",
			"project_code": "prj001",
			"action": "approval",
			"initiator_username": "asmith",
			"copy_request_id": %q,
			"source": %s,
			"destination": %s,
			"targets": %s
		}`, uuid.New(), locationJSON(), locationJSON(), targetJSON())

		create, err := domain.ParseNotificationCreate(json.RawMessage(body))

		require.NoError(t, err)
		payload, ok := create.Payload.(*domain.CopyRequestData)
		require.True(t, ok)
		assert.Equal(t, domain.CopyRequestApproval, payload.Action)
	})

	t.Run("Close Carries No Context", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"type": "copy-request",
			"recipient_username": "jdoe",
			"project_code": "prj001",
			"action": "close",
			"initiator_username": "asmith",
			"copy_request_id": %q
		}`, uuid.New())

		_, err := domain.ParseNotificationCreate(json.RawMessage(body))
		assert.NoError(t, err)
	})

	t.Run("Close Forbids Source", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"type": "copy-request",
			"recipient_username": "jdoe",
			"project_code": "prj001",
			"action": "close",
			"initiator_username": "asmith",
			"copy_request_id": %q,
			"source": %s
		}`, uuid.New(), locationJSON())

		_, err := domain.ParseNotificationCreate(json.RawMessage(body))
		assertValidationError(t, err)
	})

	t.Run("Denial Requires Targets", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"type": "copy-request",
			"recipient_username": "jdoe",
			"project_code": "prj001",
			"action": "denial",
			"initiator_username": "asmith",
			"copy_request_id": %q,
			"source": %s,
			"destination": %s
		}`, uuid.New(), locationJSON(), locationJSON())

		_, err := domain.ParseNotificationCreate(json.RawMessage(body))
		assertValidationError(t, err)
	})
}

func TestParseNotificationCreate_Project(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		body := `{
			"type": "project",
			"project_code": "prj001",
			"project_name": "Herbarium Digitisation",
			"announcer_username": "asmith",
			"message": "Ingest finished"
		}`

		create, err := domain.ParseNotificationCreate(json.RawMessage(body))

		require.NoError(t, err)
		assert.Nil(t, create.RecipientUsername)
		assert.Equal(t, "prj001", *create.ProjectCode)
	})

	t.Run("Missing Project Code", func(t *testing.T) {
		body := `{
			"type": "project",
			"project_name": "Herbarium Digitisation",
			"announcer_username": "asmith",
			"message": "Ingest finished"
		}`

		_, err := domain.ParseNotificationCreate(json.RawMessage(body))
		assertValidationError(t, err)
	})
}

func TestParseNotificationCreate_Maintenance(t *testing.T) {
	t.Run("Valid And Unbound", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"type": "maintenance",
			"announcement_id": %q,
			"effective_date": "2024-06-01T22:00:00+02:00",
			"duration_minutes": 90,
			"message": "Storage upgrade"
		}`, uuid.New())

		create, err := domain.ParseNotificationCreate(json.RawMessage(body))

		require.NoError(t, err)
		assert.Nil(t, create.RecipientUsername)
		assert.Nil(t, create.ProjectCode)
	})

	t.Run("Naive Effective Date", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"type": "maintenance",
			"announcement_id": %q,
			"effective_date": "2024-06-01T22:00:00",
			"duration_minutes": 90,
			"message": "Storage upgrade"
		}`, uuid.New())

		_, err := domain.ParseNotificationCreate(json.RawMessage(body))
		assertValidationError(t, err)
	})

	t.Run("Zero Duration", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"type": "maintenance",
			"announcement_id": %q,
			"effective_date": "2024-06-01T22:00:00Z",
			"duration_minutes": 0,
			"message": "Storage upgrade"
		}`, uuid.New())

		_, err := domain.ParseNotificationCreate(json.RawMessage(body))
		assertValidationError(t, err)
	})
}

func TestParseNotificationCreate_UnknownType(t *testing.T) {
	_, err := domain.ParseNotificationCreate(json.RawMessage(`{"type": "telegram"}`))
	assertValidationError(t, err)
}

func TestNotificationCreate_ToNotification(t *testing.T) {
	username := "jdoe"
	projectCode := "prj001"
	create := &domain.NotificationCreate{
		Type:              domain.NotifRoleChange,
		RecipientUsername: &username,
		ProjectCode:       &projectCode,
		Payload: &domain.RoleChangeData{
			InitiatorUsername: "admin",
			Previous:          "viewer",
			Current:           "contributor",
		},
	}

	notif, err := create.ToNotification()
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, notif.ID)
	assert.Equal(t, domain.NotifRoleChange, notif.Type)

	// Promoted columns must not leak back into the payload document.
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(notif.Data, &data))
	assert.NotContains(t, data, "type")
	assert.NotContains(t, data, "recipient_username")
	assert.NotContains(t, data, "project_code")

	payload, err := notif.Payload()
	require.NoError(t, err)
	roleChange, ok := payload.(*domain.RoleChangeData)
	require.True(t, ok)
	assert.Equal(t, "viewer", roleChange.Previous)
	assert.Equal(t, "contributor", roleChange.Current)
}

func TestMaintenanceFromAnnouncement(t *testing.T) {
	announcement := &domain.Announcement{
		ID:              uuid.New(),
		EffectiveDate:   time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC),
		DurationMinutes: 90,
		Message:         "Storage upgrade",
	}

	create := domain.MaintenanceFromAnnouncement(announcement)

	assert.Equal(t, domain.NotifMaintenance, create.Type)
	assert.Nil(t, create.RecipientUsername)
	assert.Nil(t, create.ProjectCode)

	payload, ok := create.Payload.(*domain.MaintenanceData)
	require.True(t, ok)
	assert.Equal(t, announcement.ID, payload.AnnouncementID)
	assert.Equal(t, announcement.EffectiveDate, payload.EffectiveDate)
	assert.Equal(t, announcement.DurationMinutes, payload.DurationMinutes)
	assert.Equal(t, announcement.Message, payload.Message)
	assert.NoError(t, payload.Validate())
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var svcErr *domain.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "global.validation_error", svcErr.FullCode())
}
