package mocks

import (
	"context"
	"notification-service/internal/domain"
	"notification-service/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AnnouncementRepository struct {
	mock.Mock
}

func (m *AnnouncementRepository) Create(ctx context.Context, input domain.CreateAnnouncementInput) (*domain.Announcement, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Announcement), args.Error(1)
}

func (m *AnnouncementRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Announcement), args.Error(1)
}

func (m *AnnouncementRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Announcement), args.Error(1)
}

func (m *AnnouncementRepository) Paginate(ctx context.Context, filter repository.Filter, sorting *domain.Sorting, pagination domain.Pagination) (domain.Page[domain.Announcement], error) {
	args := m.Called(ctx, filter, sorting, pagination)
	return args.Get(0).(domain.Page[domain.Announcement]), args.Error(1)
}

func (m *AnnouncementRepository) Update(ctx context.Context, id uuid.UUID, input domain.UpdateAnnouncementInput) (*domain.Announcement, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Announcement), args.Error(1)
}

func (m *AnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AnnouncementRepository) Unsubscribe(ctx context.Context, announcementID uuid.UUID, username string) error {
	args := m.Called(ctx, announcementID, username)
	return args.Error(0)
}

func (m *AnnouncementRepository) SubscribeAllUsers(ctx context.Context, announcementID uuid.UUID) error {
	args := m.Called(ctx, announcementID)
	return args.Error(0)
}

func (m *AnnouncementRepository) ListUnsubscriptions(ctx context.Context, announcementID uuid.UUID) ([]domain.AnnouncementUnsubscription, error) {
	args := m.Called(ctx, announcementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnnouncementUnsubscription), args.Error(1)
}
