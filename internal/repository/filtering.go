package repository

import (
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"notification-service/internal/domain"
)

// Filter narrows a base query. Implementations append AND-ed predicates to
// the passed Conditions; a filter with no fields set must be a no-op.
type Filter interface {
	Apply(c *Conditions)
}

// Conditions accumulates WHERE predicates with `?` placeholders. The caller
// rebinds the final query to the driver's placeholder style.
type Conditions struct {
	clauses []string
	args    []interface{}
}

func (c *Conditions) Add(clause string, args ...interface{}) {
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
}

func (c *Conditions) Where() (string, []interface{}) {
	if len(c.clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(c.clauses, " AND "), c.args
}

// NotificationFilter narrows the plain notification listing. A non-nil empty
// RecipientUsername matches rows without a recipient, while nil leaves the
// column unconstrained.
type NotificationFilter struct {
	Type              *domain.NotificationType
	RecipientUsername *string
	ProjectCodeAny    []string
	CreatedAtStart    *time.Time
	CreatedAtEnd      *time.Time
}

func (f NotificationFilter) Apply(c *Conditions) {
	if f.Type != nil {
		c.Add("type = ?", *f.Type)
	}

	if f.RecipientUsername != nil {
		if *f.RecipientUsername == "" {
			c.Add("recipient_username IS NULL")
		} else {
			c.Add("recipient_username = ?", *f.RecipientUsername)
		}
	}

	if len(f.ProjectCodeAny) > 0 {
		clause, args, err := sqlx.In("project_code IN (?)", f.ProjectCodeAny)
		if err == nil {
			c.Add(clause, args...)
		}
	}

	if f.CreatedAtStart != nil {
		c.Add("created_at >= ?", *f.CreatedAtStart)
	}
	if f.CreatedAtEnd != nil {
		c.Add("created_at <= ?", *f.CreatedAtEnd)
	}
}

// UserNotificationFilter is the visibility rule for "my notifications":
// direct notifications addressed to the user, project notices for the given
// project codes (or all projects when none are given), and every maintenance
// notice.
type UserNotificationFilter struct {
	RecipientUsername string
	ProjectCodeAny    []string
}

func (f UserNotificationFilter) Apply(c *Conditions) {
	args := []interface{}{
		domain.NotifPipeline, domain.NotifCopyRequest, domain.NotifRoleChange,
		f.RecipientUsername,
	}

	projectClause := "type = ?"
	args = append(args, domain.NotifProject)
	if len(f.ProjectCodeAny) > 0 {
		in, inArgs, err := sqlx.In("project_code IN (?)", f.ProjectCodeAny)
		if err == nil {
			projectClause = "(type = ? AND " + in + ")"
			args = append(args, inArgs...)
		}
	}

	args = append(args, domain.NotifMaintenance)
	c.Add(
		"((type IN (?, ?, ?) AND recipient_username = ?) OR "+projectClause+" OR type = ?)",
		args...,
	)
}

// AnnouncementFilter excludes announcements the given user unsubscribed from.
type AnnouncementFilter struct {
	Username *string
}

func (f AnnouncementFilter) Apply(c *Conditions) {
	if f.Username == nil || *f.Username == "" {
		return
	}
	c.Add(
		"id NOT IN (SELECT announcement_id FROM announcement_unsubscriptions WHERE username = ?)",
		*f.Username,
	)
}
