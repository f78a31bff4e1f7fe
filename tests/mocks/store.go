package mocks

import (
	"context"
	"notification-service/internal/repository"
)

// Store satisfies repository.Store without a database. WithinTx runs the
// callback against the same mock repositories, so expectations set on them
// cover both direct and transactional calls.
type Store struct {
	repos *repository.Repositories
}

func NewStore(notification *NotificationRepository, announcement *AnnouncementRepository) *Store {
	return &Store{
		repos: &repository.Repositories{
			Notification: notification,
			Announcement: announcement,
		},
	}
}

func (s *Store) Repos() *repository.Repositories {
	return s.repos
}

func (s *Store) WithinTx(_ context.Context, fn func(r *repository.Repositories) error) error {
	return fn(s.repos)
}
