package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifPipeline    NotificationType = "pipeline"
	NotifCopyRequest NotificationType = "copy-request"
	NotifRoleChange  NotificationType = "role-change"
	NotifProject     NotificationType = "project"
	NotifMaintenance NotificationType = "maintenance"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotifPipeline, NotifCopyRequest, NotifRoleChange, NotifProject, NotifMaintenance:
		return true
	}
	return false
}

type TargetType string

const (
	TargetFile   TargetType = "file"
	TargetFolder TargetType = "folder"
)

func (t TargetType) IsValid() bool {
	return t == TargetFile || t == TargetFolder
}

type InvolvementType string

const (
	InvolvedAsInitiator InvolvementType = "initiator"
	InvolvedAsOwner     InvolvementType = "owner"
	InvolvedAsReceiver  InvolvementType = "receiver"
)

func (t InvolvementType) IsValid() bool {
	switch t {
	case InvolvedAsInitiator, InvolvedAsOwner, InvolvedAsReceiver:
		return true
	}
	return false
}

type PipelineAction string

const (
	PipelineDelete PipelineAction = "delete"
	PipelineCopy   PipelineAction = "copy"
)

func (a PipelineAction) IsValid() bool {
	return a == PipelineDelete || a == PipelineCopy
}

type PipelineStatus string

const (
	PipelineSuccess PipelineStatus = "success"
	PipelineFailure PipelineStatus = "failure"
)

func (s PipelineStatus) IsValid() bool {
	return s == PipelineSuccess || s == PipelineFailure
}

type CopyRequestAction string

const (
	CopyRequestApproval CopyRequestAction = "approval"
	CopyRequestDenial   CopyRequestAction = "denial"
	CopyRequestClose    CopyRequestAction = "close"
)

func (a CopyRequestAction) IsValid() bool {
	switch a {
	case CopyRequestApproval, CopyRequestDenial, CopyRequestClose:
		return true
	}
	return false
}

// Location is a source/destination folder referenced by a notification.
type Location struct {
	ID   uuid.UUID `json:"id"`
	Path string    `json:"path"`
	Zone int       `json:"zone"`
}

// Target is a file or folder a pipeline or copy request acted on.
type Target struct {
	ID   uuid.UUID  `json:"id"`
	Type TargetType `json:"type"`
	Name string     `json:"name"`
}

// Notification is a single row of the polymorphic notifications table.
// Type determines the shape of Data; the promoted columns (type,
// recipient_username, project_code) are never duplicated inside Data.
type Notification struct {
	ID                uuid.UUID        `json:"id" db:"id"`
	Type              NotificationType `json:"type" db:"type"`
	CreatedAt         time.Time        `json:"created_at" db:"created_at"`
	RecipientUsername *string          `json:"recipient_username,omitempty" db:"recipient_username"`
	ProjectCode       *string          `json:"project_code,omitempty" db:"project_code"`
	Data              json.RawMessage  `json:"data" db:"data"`
}

// Payload decodes Data into the concrete variant for this notification's type.
func (n *Notification) Payload() (NotificationPayload, error) {
	var payload NotificationPayload
	switch n.Type {
	case NotifPipeline:
		payload = &PipelineData{}
	case NotifCopyRequest:
		payload = &CopyRequestData{}
	case NotifRoleChange:
		payload = &RoleChangeData{}
	case NotifProject:
		payload = &ProjectData{}
	case NotifMaintenance:
		payload = &MaintenanceData{}
	default:
		return nil, ValidationError("unknown notification type %q", n.Type)
	}

	if err := json.Unmarshal(n.Data, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// NotificationPayload is the kind-specific portion of a notification.
type NotificationPayload interface {
	Validate() error
}

type PipelineData struct {
	InvolvedAs        InvolvementType `json:"involved_as"`
	Action            PipelineAction  `json:"action"`
	Status            PipelineStatus  `json:"status"`
	InitiatorUsername string          `json:"initiator_username"`
	Source            *Location       `json:"source"`
	Destination       *Location       `json:"destination"`
	Targets           []Target        `json:"targets"`
}

func (d *PipelineData) Validate() error {
	if !d.InvolvedAs.IsValid() {
		return ValidationError("invalid involved_as %q", d.InvolvedAs)
	}
	if !d.Action.IsValid() {
		return ValidationError("invalid pipeline action %q", d.Action)
	}
	if !d.Status.IsValid() {
		return ValidationError("invalid pipeline status %q", d.Status)
	}
	if d.InitiatorUsername == "" {
		return ValidationError("initiator_username is required")
	}
	if d.Source == nil {
		return ValidationError("source is required")
	}
	if d.Destination == nil && d.Action == PipelineCopy {
		return ValidationError("invalid destination for copy action")
	}
	if d.Destination != nil && d.Action == PipelineDelete {
		return ValidationError("invalid destination for delete action")
	}
	return validateTargets(d.Targets)
}

type CopyRequestData struct {
	Action            CopyRequestAction `json:"action"`
	InitiatorUsername string            `json:"initiator_username"`
	CopyRequestID     uuid.UUID         `json:"copy_request_id"`
	Source            *Location         `json:"source"`
	Destination       *Location         `json:"destination"`
	Targets           []Target          `json:"targets"`
}

func (d *CopyRequestData) Validate() error {
	if !d.Action.IsValid() {
		return ValidationError("invalid copy request action %q", d.Action)
	}
	if d.InitiatorUsername == "" {
		return ValidationError("initiator_username is required")
	}
	if d.CopyRequestID == uuid.Nil {
		return ValidationError("copy_request_id is required")
	}

	// source, destination and targets must all be present, except for the
	// close action where they must all be absent.
	if d.Action == CopyRequestClose {
		if d.Source != nil {
			return ValidationError("invalid source for close action")
		}
		if d.Destination != nil {
			return ValidationError("invalid destination for close action")
		}
		if d.Targets != nil {
			return ValidationError("invalid targets for close action")
		}
		return nil
	}

	if d.Source == nil {
		return ValidationError("invalid source for %s action", d.Action)
	}
	if d.Destination == nil {
		return ValidationError("invalid destination for %s action", d.Action)
	}
	if d.Targets == nil {
		return ValidationError("invalid targets for %s action", d.Action)
	}
	return validateTargets(d.Targets)
}

type RoleChangeData struct {
	InitiatorUsername string `json:"initiator_username"`
	Previous          string `json:"previous"`
	Current           string `json:"current"`
}

func (d *RoleChangeData) Validate() error {
	if d.InitiatorUsername == "" {
		return ValidationError("initiator_username is required")
	}
	if d.Previous == "" {
		return ValidationError("previous is required")
	}
	if d.Current == "" {
		return ValidationError("current is required")
	}
	return nil
}

type ProjectData struct {
	ProjectName       string `json:"project_name"`
	AnnouncerUsername string `json:"announcer_username"`
	Message           string `json:"message"`
}

func (d *ProjectData) Validate() error {
	if d.ProjectName == "" {
		return ValidationError("project_name is required")
	}
	if d.AnnouncerUsername == "" {
		return ValidationError("announcer_username is required")
	}
	if d.Message == "" {
		return ValidationError("message is required")
	}
	return nil
}

type MaintenanceData struct {
	AnnouncementID  uuid.UUID `json:"announcement_id"`
	EffectiveDate   time.Time `json:"effective_date"`
	DurationMinutes int       `json:"duration_minutes"`
	Message         string    `json:"message"`
}

func (d *MaintenanceData) Validate() error {
	if d.AnnouncementID == uuid.Nil {
		return ValidationError("announcement_id is required")
	}
	if d.EffectiveDate.IsZero() {
		return ValidationError("effective_date is required")
	}
	if d.DurationMinutes < 1 {
		return ValidationError("duration_minutes must be a positive integer")
	}
	if d.Message == "" {
		return ValidationError("message is required")
	}
	return nil
}

func validateTargets(targets []Target) error {
	if len(targets) < 1 {
		return ValidationError("targets must contain at least 1 item")
	}
	for _, target := range targets {
		if target.ID == uuid.Nil {
			return ValidationError("target id is required")
		}
		if !target.Type.IsValid() {
			return ValidationError("invalid target type %q", target.Type)
		}
		if target.Name == "" {
			return ValidationError("target name is required")
		}
	}
	return nil
}

// NotificationCreate is a validated request to create one notification. The
// flat request body is split into promoted columns and the kind-specific
// payload.
type NotificationCreate struct {
	Type              NotificationType
	RecipientUsername *string
	ProjectCode       *string
	Payload           NotificationPayload
}

// ParseNotificationCreate decodes and validates a single flat create body,
// discriminated by its type field.
func ParseNotificationCreate(raw json.RawMessage) (*NotificationCreate, error) {
	var envelope struct {
		Type              NotificationType `json:"type"`
		RecipientUsername *string          `json:"recipient_username"`
		ProjectCode       *string          `json:"project_code"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, ValidationError("invalid notification body: %v", err)
	}

	create := &NotificationCreate{Type: envelope.Type}

	switch envelope.Type {
	case NotifPipeline:
		create.Payload = &PipelineData{}
	case NotifCopyRequest:
		create.Payload = &CopyRequestData{}
	case NotifRoleChange:
		create.Payload = &RoleChangeData{}
	case NotifProject:
		create.Payload = &ProjectData{}
	case NotifMaintenance:
		create.Payload = &MaintenanceData{}
	default:
		return nil, ValidationError("unknown notification type %q", envelope.Type)
	}

	if err := json.Unmarshal(raw, create.Payload); err != nil {
		return nil, ValidationError("invalid %s notification body: %v", envelope.Type, err)
	}

	switch envelope.Type {
	case NotifPipeline, NotifCopyRequest, NotifRoleChange:
		if envelope.RecipientUsername == nil || *envelope.RecipientUsername == "" {
			return nil, ValidationError("recipient_username is required for %s notifications", envelope.Type)
		}
		if len(*envelope.RecipientUsername) > 256 {
			return nil, ValidationError("recipient_username must be at most 256 characters")
		}
		if envelope.ProjectCode == nil || *envelope.ProjectCode == "" {
			return nil, ValidationError("project_code is required for %s notifications", envelope.Type)
		}
		create.RecipientUsername = envelope.RecipientUsername
		create.ProjectCode = envelope.ProjectCode
	case NotifProject:
		if envelope.ProjectCode == nil || *envelope.ProjectCode == "" {
			return nil, ValidationError("project_code is required for project notifications")
		}
		create.ProjectCode = envelope.ProjectCode
	case NotifMaintenance:
		// maintenance notices are global, no recipient or project binding
	}

	if create.ProjectCode != nil && len(*create.ProjectCode) > 32 {
		return nil, ValidationError("project_code must be at most 32 characters")
	}

	if err := create.Payload.Validate(); err != nil {
		return nil, err
	}

	return create, nil
}

// ToNotification materialises the create request into a row ready for insert.
func (c *NotificationCreate) ToNotification() (*Notification, error) {
	data, err := json.Marshal(c.Payload)
	if err != nil {
		return nil, err
	}

	return &Notification{
		ID:                uuid.New(),
		Type:              c.Type,
		RecipientUsername: c.RecipientUsername,
		ProjectCode:       c.ProjectCode,
		Data:              data,
	}, nil
}

// MaintenanceFromAnnouncement derives the single maintenance notification an
// announcement owns.
func MaintenanceFromAnnouncement(a *Announcement) *NotificationCreate {
	return &NotificationCreate{
		Type: NotifMaintenance,
		Payload: &MaintenanceData{
			AnnouncementID:  a.ID,
			EffectiveDate:   a.EffectiveDate,
			DurationMinutes: a.DurationMinutes,
			Message:         a.Message,
		},
	}
}
