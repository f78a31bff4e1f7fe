package repository

import (
	"strings"
	"testing"
	"time"

	"notification-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func applyFilter(f Filter) (string, []interface{}) {
	c := &Conditions{}
	f.Apply(c)
	return c.Where()
}

func TestNotificationFilter_Apply(t *testing.T) {
	t.Run("Empty Filter Is A No-Op", func(t *testing.T) {
		where, args := applyFilter(NotificationFilter{})
		assert.Empty(t, where)
		assert.Nil(t, args)
	})

	t.Run("All Fields", func(t *testing.T) {
		notifType := domain.NotifPipeline
		username := "jdoe"
		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		end := start.Add(24 * time.Hour)

		where, args := applyFilter(NotificationFilter{
			Type:              &notifType,
			RecipientUsername: &username,
			ProjectCodeAny:    []string{"prj001", "prj002"},
			CreatedAtStart:    &start,
			CreatedAtEnd:      &end,
		})

		assert.Contains(t, where, "type = ?")
		assert.Contains(t, where, "recipient_username = ?")
		assert.Contains(t, where, "project_code IN (?, ?)")
		assert.Contains(t, where, "created_at >= ?")
		assert.Contains(t, where, "created_at <= ?")
		assert.Equal(t, strings.Count(where, "?"), len(args))
	})

	t.Run("Empty Username Means No Recipient", func(t *testing.T) {
		username := ""
		where, args := applyFilter(NotificationFilter{RecipientUsername: &username})

		assert.Equal(t, " WHERE recipient_username IS NULL", where)
		assert.Empty(t, args)
	})

	t.Run("Nil Username Leaves Column Unconstrained", func(t *testing.T) {
		where, _ := applyFilter(NotificationFilter{})
		assert.NotContains(t, where, "recipient_username")
	})
}

func TestUserNotificationFilter_Apply(t *testing.T) {
	t.Run("Without Project Codes", func(t *testing.T) {
		where, args := applyFilter(UserNotificationFilter{RecipientUsername: "jdoe"})

		// Direct notifications, any project notice, every maintenance notice.
		assert.Contains(t, where, "type IN (?, ?, ?) AND recipient_username = ?")
		assert.Contains(t, where, "OR type = ? OR type = ?")
		assert.Equal(t, strings.Count(where, "?"), len(args))
		assert.Contains(t, args, interface{}("jdoe"))
		assert.Contains(t, args, interface{}(domain.NotifMaintenance))
	})

	t.Run("With Project Codes", func(t *testing.T) {
		where, args := applyFilter(UserNotificationFilter{
			RecipientUsername: "jdoe",
			ProjectCodeAny:    []string{"prj001", "prj002"},
		})

		assert.Contains(t, where, "(type = ? AND project_code IN (?, ?))")
		assert.Equal(t, strings.Count(where, "?"), len(args))
	})
}

func TestAnnouncementFilter_Apply(t *testing.T) {
	t.Run("No Username", func(t *testing.T) {
		where, args := applyFilter(AnnouncementFilter{})
		assert.Empty(t, where)
		assert.Nil(t, args)
	})

	t.Run("Excludes Unsubscribed", func(t *testing.T) {
		username := "jdoe"
		where, args := applyFilter(AnnouncementFilter{Username: &username})

		assert.Contains(t, where, "id NOT IN (SELECT announcement_id FROM announcement_unsubscriptions WHERE username = ?)")
		assert.Equal(t, []interface{}{"jdoe"}, args)
	})
}

func TestConditions_Where(t *testing.T) {
	c := &Conditions{}
	c.Add("type = ?", domain.NotifProject)
	c.Add("recipient_username IS NULL")

	where, args := c.Where()

	assert.Equal(t, " WHERE type = ? AND recipient_username IS NULL", where)
	assert.Equal(t, []interface{}{domain.NotifProject}, args)
}
