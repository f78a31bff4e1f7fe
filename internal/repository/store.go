package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Querier is the subset of sqlx both *sqlx.DB and *sqlx.Tx satisfy, so every
// repository can run either directly against the pool or inside a
// transaction.
type Querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repositories struct {
	Notification NotificationRepository
	Announcement AnnouncementRepository
}

func newRepositories(q Querier) *Repositories {
	return &Repositories{
		Notification: NewNotificationRepository(q),
		Announcement: NewAnnouncementRepository(q),
	}
}

// Store hands out repositories and scopes multi-statement operations to one
// transaction. WithinTx commits only after fn returns nil; any error rolls
// the whole unit of work back.
type Store interface {
	Repos() *Repositories
	WithinTx(ctx context.Context, fn func(r *Repositories) error) error
}

type sqlStore struct {
	db    *sqlx.DB
	repos *Repositories
}

func NewStore(db *sqlx.DB) Store {
	return &sqlStore{
		db:    db,
		repos: newRepositories(db),
	}
}

func (s *sqlStore) Repos() *Repositories {
	return s.repos
}

func (s *sqlStore) WithinTx(ctx context.Context, fn func(r *Repositories) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(newRepositories(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
