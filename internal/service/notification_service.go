package service

import (
	"context"

	"notification-service/internal/domain"
	"notification-service/internal/repository"
)

type NotificationService interface {
	CreateBatch(ctx context.Context, creates []*domain.NotificationCreate) error
	List(ctx context.Context, filter repository.NotificationFilter, sorting *domain.Sorting, pagination domain.Pagination) (domain.ListResponse[domain.Notification], error)
	ListForUser(ctx context.Context, filter repository.UserNotificationFilter, sorting *domain.Sorting, pagination domain.Pagination) (domain.ListResponse[domain.Notification], error)
}

type notificationService struct {
	store repository.Store
}

func NewNotificationService(store repository.Store) NotificationService {
	return &notificationService{store: store}
}

// CreateBatch inserts all entries in one transaction, so a failing entry
// never leaves a partial batch behind.
func (s *notificationService) CreateBatch(ctx context.Context, creates []*domain.NotificationCreate) error {
	if len(creates) == 0 {
		return domain.ValidationError("at least one notification is required")
	}

	return s.store.WithinTx(ctx, func(r *repository.Repositories) error {
		for _, create := range creates {
			if _, err := r.Notification.Create(ctx, create); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *notificationService) List(ctx context.Context, filter repository.NotificationFilter, sorting *domain.Sorting, pagination domain.Pagination) (domain.ListResponse[domain.Notification], error) {
	return s.paginate(ctx, filter, sorting, pagination)
}

func (s *notificationService) ListForUser(ctx context.Context, filter repository.UserNotificationFilter, sorting *domain.Sorting, pagination domain.Pagination) (domain.ListResponse[domain.Notification], error) {
	return s.paginate(ctx, filter, sorting, pagination)
}

func (s *notificationService) paginate(ctx context.Context, filter repository.Filter, sorting *domain.Sorting, pagination domain.Pagination) (domain.ListResponse[domain.Notification], error) {
	if err := pagination.Validate(); err != nil {
		return domain.ListResponse[domain.Notification]{}, err
	}

	page, err := s.store.Repos().Notification.Paginate(ctx, filter, sorting, pagination)
	if err != nil {
		return domain.ListResponse[domain.Notification]{}, err
	}
	return domain.NewListResponse(page), nil
}
