package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"notification-service/internal/domain"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, input domain.CreateAnnouncementInput) (*domain.Announcement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Announcement, error)
	List(ctx context.Context) ([]domain.Announcement, error)
	Paginate(ctx context.Context, filter Filter, sorting *domain.Sorting, pagination domain.Pagination) (domain.Page[domain.Announcement], error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateAnnouncementInput) (*domain.Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Unsubscribe(ctx context.Context, announcementID uuid.UUID, username string) error
	SubscribeAllUsers(ctx context.Context, announcementID uuid.UUID) error
	ListUnsubscriptions(ctx context.Context, announcementID uuid.UUID) ([]domain.AnnouncementUnsubscription, error)
}

type announcementRepository struct {
	q Querier
}

func NewAnnouncementRepository(q Querier) AnnouncementRepository {
	return &announcementRepository{q: q}
}

func (r *announcementRepository) Create(ctx context.Context, input domain.CreateAnnouncementInput) (*domain.Announcement, error) {
	announcement := &domain.Announcement{
		ID:              uuid.New(),
		EffectiveDate:   input.EffectiveDate,
		DurationMinutes: input.DurationMinutes,
		Message:         input.Message,
	}

	query := `
		INSERT INTO announcements (id, effective_date, duration_minutes, message)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.q.QueryRowxContext(ctx, query,
		announcement.ID, announcement.EffectiveDate, announcement.DurationMinutes, announcement.Message,
	).Scan(&announcement.CreatedAt, &announcement.UpdatedAt)
	if isUniqueViolation(err) {
		return nil, domain.ErrAlreadyExists
	}
	if err != nil {
		return nil, err
	}
	return announcement, nil
}

func (r *announcementRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	return getByID[domain.Announcement](ctx, r.q, "announcements", id)
}

func (r *announcementRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	return listAll[domain.Announcement](ctx, r.q, "announcements")
}

func (r *announcementRepository) Paginate(ctx context.Context, filter Filter, sorting *domain.Sorting, pagination domain.Pagination) (domain.Page[domain.Announcement], error) {
	return paginate[domain.Announcement](ctx, r.q, "announcements", filter, sorting, pagination)
}

// Update applies only the provided fields, then reloads the row so callers
// see the refreshed updated_at.
func (r *announcementRepository) Update(ctx context.Context, id uuid.UUID, input domain.UpdateAnnouncementInput) (*domain.Announcement, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	position := 2

	if input.EffectiveDate != nil {
		sets = append(sets, fmt.Sprintf("effective_date = $%d", position))
		args = append(args, *input.EffectiveDate)
		position++
	}
	if input.DurationMinutes != nil {
		sets = append(sets, fmt.Sprintf("duration_minutes = $%d", position))
		args = append(args, *input.DurationMinutes)
		position++
	}
	if input.Message != nil {
		sets = append(sets, fmt.Sprintf("message = $%d", position))
		args = append(args, *input.Message)
	}

	query := "UPDATE announcements SET " + strings.Join(sets, ", ") + " WHERE id = $1"
	if err := execAffecting(ctx, r.q, query, args...); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Delete removes the announcement; its unsubscriptions go with it through
// the ON DELETE CASCADE on announcement_unsubscriptions.
func (r *announcementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execAffecting(ctx, r.q, `DELETE FROM announcements WHERE id = $1`, id)
}

func (r *announcementRepository) Unsubscribe(ctx context.Context, announcementID uuid.UUID, username string) error {
	query := `
		INSERT INTO announcement_unsubscriptions (id, announcement_id, username)
		VALUES ($1, $2, $3)`

	_, err := r.q.ExecContext(ctx, query, uuid.New(), announcementID, username)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	if isForeignKeyViolation(err) {
		return domain.ErrNotFound
	}
	return err
}

// SubscribeAllUsers drops every unsubscription of the announcement, so a
// changed announcement is visible to everyone again. NotFound when there was
// nothing to drop.
func (r *announcementRepository) SubscribeAllUsers(ctx context.Context, announcementID uuid.UUID) error {
	query := `DELETE FROM announcement_unsubscriptions WHERE announcement_id = $1`
	return execAffecting(ctx, r.q, query, announcementID)
}

func (r *announcementRepository) ListUnsubscriptions(ctx context.Context, announcementID uuid.UUID) ([]domain.AnnouncementUnsubscription, error) {
	var unsubscriptions []domain.AnnouncementUnsubscription
	query := `SELECT * FROM announcement_unsubscriptions WHERE announcement_id = $1`

	if err := r.q.SelectContext(ctx, &unsubscriptions, query, announcementID); err != nil {
		return nil, err
	}
	return unsubscriptions, nil
}
