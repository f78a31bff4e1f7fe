package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"notification-service/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, create *domain.NotificationCreate) (*domain.Notification, error)
	CreateFromAnnouncement(ctx context.Context, announcement *domain.Announcement) (*domain.Notification, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	List(ctx context.Context) ([]domain.Notification, error)
	Paginate(ctx context.Context, filter Filter, sorting *domain.Sorting, pagination domain.Pagination) (domain.Page[domain.Notification], error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByAnnouncementID(ctx context.Context, announcementID uuid.UUID) (*domain.Notification, error)
	DeleteByAnnouncementID(ctx context.Context, announcementID uuid.UUID) error
}

type notificationRepository struct {
	q Querier
}

func NewNotificationRepository(q Querier) NotificationRepository {
	return &notificationRepository{q: q}
}

func (r *notificationRepository) Create(ctx context.Context, create *domain.NotificationCreate) (*domain.Notification, error) {
	notif, err := create.ToNotification()
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO notifications (id, type, recipient_username, project_code, data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err = r.q.QueryRowxContext(ctx, query,
		notif.ID, notif.Type, notif.RecipientUsername, notif.ProjectCode, string(notif.Data),
	).Scan(&notif.CreatedAt)
	if isUniqueViolation(err) {
		return nil, domain.ErrAlreadyExists
	}
	if err != nil {
		return nil, err
	}
	return notif, nil
}

func (r *notificationRepository) CreateFromAnnouncement(ctx context.Context, announcement *domain.Announcement) (*domain.Notification, error) {
	return r.Create(ctx, domain.MaintenanceFromAnnouncement(announcement))
}

func (r *notificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	return getByID[domain.Notification](ctx, r.q, "notifications", id)
}

func (r *notificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	return listAll[domain.Notification](ctx, r.q, "notifications")
}

func (r *notificationRepository) Paginate(ctx context.Context, filter Filter, sorting *domain.Sorting, pagination domain.Pagination) (domain.Page[domain.Notification], error) {
	return paginate[domain.Notification](ctx, r.q, "notifications", filter, sorting, pagination)
}

func (r *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execAffecting(ctx, r.q, `DELETE FROM notifications WHERE id = $1`, id)
}

// GetByAnnouncementID finds the at-most-one maintenance notification whose
// payload references the announcement.
func (r *notificationRepository) GetByAnnouncementID(ctx context.Context, announcementID uuid.UUID) (*domain.Notification, error) {
	var notif domain.Notification
	query := `SELECT * FROM notifications WHERE data->>'announcement_id' = $1`

	err := r.q.GetContext(ctx, &notif, query, announcementID.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &notif, nil
}

func (r *notificationRepository) DeleteByAnnouncementID(ctx context.Context, announcementID uuid.UUID) error {
	query := `DELETE FROM notifications WHERE data->>'announcement_id' = $1`
	return execAffecting(ctx, r.q, query, announcementID.String())
}
