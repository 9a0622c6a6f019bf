package queries

import (
	"context"
	"time"

	"bargain-market/internal/domain/user"
	"bargain-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByBuyerFirstPage(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*OrderListItem, error)
	FindByBuyerKeyset(ctx context.Context, buyerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OrderListItem, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*OrderView, error)
	ListForBuyer(ctx context.Context, buyerID uuid.UUID, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error)
}

type orderQueriesImpl struct {
	repo OrderReadStore
}

func NewOrderQueries(repo OrderReadStore) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*OrderView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if !actorRole.IsAdmin() && view.BuyerID != actorID {
		return nil, errs.WithKind(errs.ErrUnauthorized, "order %s belongs to another buyer", id)
	}
	return view, nil
}

func (q *orderQueriesImpl) ListForBuyer(ctx context.Context, buyerID uuid.UUID, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*OrderListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByBuyerFirstPage(ctx, buyerID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.repo.FindByBuyerKeyset(ctx, buyerID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
