package query

import (
	"context"
	"database/sql"
	"fmt"

	"ecommerce/internal/domain"
)

// Querier is the read side of *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Listing describes the table a paginated query reads.
type Listing struct {
	Entity  string
	Table   string
	Columns string
	Sorts   Sorts
}

// Paginate counts the rows matching pred, then fetches one ordered window of them.
// Either query failing aborts the whole call with a domain.StoreError.
func Paginate[T any](ctx context.Context, q Querier, l Listing, pred Predicate, p domain.PageParams, scan func(Scanner) (T, error)) (domain.Page[T], error) {
	p = p.Normalize()
	where, args := pred.Where()

	var total int
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", l.Table, where)
	if err := q.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return domain.Page[T]{}, domain.StoreError{Entity: l.Entity, Operation: "count", Err: err}
	}

	page := domain.Page[T]{
		Data:       []T{},
		Pagination: domain.NewPageMeta(p.Page, p.Limit, total),
	}
	// Pages past the last one are empty; checking before Offset keeps huge
	// page numbers from overflowing into a negative OFFSET.
	if total == 0 || p.Page > page.Pagination.TotalPages {
		return page, nil
	}
	offset := p.Offset()

	listSQL := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT ? OFFSET ?",
		l.Columns, l.Table, where, l.Sorts.OrderBy(p.SortBy, p.SortOrder))
	listArgs := append(append([]any{}, args...), p.Limit, offset)

	rows, err := q.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		return domain.Page[T]{}, domain.StoreError{Entity: l.Entity, Operation: "list", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return domain.Page[T]{}, domain.StoreError{Entity: l.Entity, Operation: "scan", Err: err}
		}
		page.Data = append(page.Data, item)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[T]{}, domain.StoreError{Entity: l.Entity, Operation: "list", Err: err}
	}
	return page, nil
}
