package service

import (
	"context"

	"github.com/google/uuid"

	"notification-service/internal/domain"
	"notification-service/internal/repository"
)

type AnnouncementService interface {
	List(ctx context.Context, filter repository.AnnouncementFilter, sorting *domain.Sorting, pagination domain.Pagination) (domain.ListResponse[domain.Announcement], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Announcement, error)
	Create(ctx context.Context, input domain.CreateAnnouncementInput) (*domain.Announcement, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateAnnouncementInput) (*domain.Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Unsubscribe(ctx context.Context, id uuid.UUID, input domain.UnsubscribeInput) error
}

type announcementService struct {
	store repository.Store
}

func NewAnnouncementService(store repository.Store) AnnouncementService {
	return &announcementService{store: store}
}

func (s *announcementService) List(ctx context.Context, filter repository.AnnouncementFilter, sorting *domain.Sorting, pagination domain.Pagination) (domain.ListResponse[domain.Announcement], error) {
	if err := pagination.Validate(); err != nil {
		return domain.ListResponse[domain.Announcement]{}, err
	}

	page, err := s.store.Repos().Announcement.Paginate(ctx, filter, sorting, pagination)
	if err != nil {
		return domain.ListResponse[domain.Announcement]{}, err
	}
	return domain.NewListResponse(page), nil
}

func (s *announcementService) Get(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	return s.store.Repos().Announcement.GetByID(ctx, id)
}

// Create stores the announcement and its derived maintenance notification as
// one unit of work: if the notification insert fails the announcement is
// rolled back too.
func (s *announcementService) Create(ctx context.Context, input domain.CreateAnnouncementInput) (*domain.Announcement, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var announcement *domain.Announcement
	err := s.store.WithinTx(ctx, func(r *repository.Repositories) error {
		var err error
		announcement, err = r.Announcement.Create(ctx, input)
		if err != nil {
			return err
		}

		_, err = r.Notification.CreateFromAnnouncement(ctx, announcement)
		return err
	})
	if err != nil {
		return nil, err
	}
	return announcement, nil
}

// Update patches the announcement, re-opens it to every user and fully
// regenerates its maintenance notification. The notification is never
// patched in place because its payload duplicates announcement fields.
// Missing unsubscriptions or a missing old notification are acceptable
// prior states, so NotFound from those cleanup steps is swallowed.
func (s *announcementService) Update(ctx context.Context, id uuid.UUID, input domain.UpdateAnnouncementInput) (*domain.Announcement, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var announcement *domain.Announcement
	err := s.store.WithinTx(ctx, func(r *repository.Repositories) error {
		var err error
		announcement, err = r.Announcement.Update(ctx, id, input)
		if err != nil {
			return err
		}

		if err := r.Announcement.SubscribeAllUsers(ctx, id); err != nil && !domain.IsNotFound(err) {
			return err
		}
		if err := r.Notification.DeleteByAnnouncementID(ctx, id); err != nil && !domain.IsNotFound(err) {
			return err
		}

		_, err = r.Notification.CreateFromAnnouncement(ctx, announcement)
		return err
	})
	if err != nil {
		return nil, err
	}
	return announcement, nil
}

// Delete removes the announcement (unsubscriptions cascade in the store) and
// its maintenance notification, tolerating an already-absent notification.
func (s *announcementService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.WithinTx(ctx, func(r *repository.Repositories) error {
		if err := r.Announcement.Delete(ctx, id); err != nil {
			return err
		}

		if err := r.Notification.DeleteByAnnouncementID(ctx, id); err != nil && !domain.IsNotFound(err) {
			return err
		}
		return nil
	})
}

func (s *announcementService) Unsubscribe(ctx context.Context, id uuid.UUID, input domain.UnsubscribeInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	return s.store.WithinTx(ctx, func(r *repository.Repositories) error {
		return r.Announcement.Unsubscribe(ctx, id, input.Username)
	})
}
