package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"notification-service/internal/domain"
)

// Generic retrieve/list/paginate/delete helpers shared by every repository.
// Inserts stay entity-specific because their column lists differ.

func getByID[T any](ctx context.Context, q Querier, table string, id uuid.UUID) (*T, error) {
	var entry T
	err := q.GetContext(ctx, &entry, "SELECT * FROM "+table+" WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func listAll[T any](ctx context.Context, q Querier, table string) ([]T, error) {
	var entries []T
	if err := q.SelectContext(ctx, &entries, "SELECT * FROM "+table); err != nil {
		return nil, err
	}
	return entries, nil
}

// paginate counts the matches under the filter, then fetches one page. With
// pagination disabled (page_size 0) the page size becomes the match count,
// so everything comes back in a single page.
func paginate[T any](
	ctx context.Context,
	q Querier,
	table string,
	filter Filter,
	sorting *domain.Sorting,
	pagination domain.Pagination,
) (domain.Page[T], error) {
	conditions := &Conditions{}
	if filter != nil {
		filter.Apply(conditions)
	}
	where, args := conditions.Where()

	var count int64
	countQuery := q.Rebind("SELECT COUNT(*) FROM " + table + where)
	if err := q.GetContext(ctx, &count, countQuery, args...); err != nil {
		return domain.Page[T]{}, err
	}

	if pagination.IsDisabled() {
		pagination.PageSize = int(count)
	}

	query := "SELECT * FROM " + table + where
	if sorting != nil {
		query += " ORDER BY " + sorting.SortBy + " " + strings.ToUpper(string(sorting.Order))
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, pagination.Limit(), pagination.Offset())

	var entries []T
	if err := q.SelectContext(ctx, &entries, q.Rebind(query), args...); err != nil {
		return domain.Page[T]{}, err
	}

	return domain.Page[T]{Pagination: pagination, Count: count, Entries: entries}, nil
}

// execAffecting runs a statement that must touch at least one row.
func execAffecting(ctx context.Context, q Querier, query string, args ...interface{}) error {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgErrorCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgForeignKeyViolation
}
