package mocks

import (
	"context"
	"notification-service/internal/domain"
	"notification-service/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, create *domain.NotificationCreate) (*domain.Notification, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *NotificationRepository) CreateFromAnnouncement(ctx context.Context, announcement *domain.Announcement) (*domain.Notification, error) {
	args := m.Called(ctx, announcement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *NotificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationRepository) Paginate(ctx context.Context, filter repository.Filter, sorting *domain.Sorting, pagination domain.Pagination) (domain.Page[domain.Notification], error) {
	args := m.Called(ctx, filter, sorting, pagination)
	return args.Get(0).(domain.Page[domain.Notification]), args.Error(1)
}

func (m *NotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotificationRepository) GetByAnnouncementID(ctx context.Context, announcementID uuid.UUID) (*domain.Notification, error) {
	args := m.Called(ctx, announcementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *NotificationRepository) DeleteByAnnouncementID(ctx context.Context, announcementID uuid.UUID) error {
	args := m.Called(ctx, announcementID)
	return args.Error(0)
}
