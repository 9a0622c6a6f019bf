package queries

import (
	"context"
	"time"

	"bargain-market/internal/domain/bargain"
	"bargain-market/internal/domain/user"
	"bargain-market/internal/infra"
	"bargain-market/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	ListAsBuyer  = "buyer"
	ListAsSeller = "seller"
)

type BargainReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BargainThreadView, error)
	FindActive(ctx context.Context, buyerID, productID uuid.UUID) (*BargainThreadView, error)
	FindByBuyerFirstPage(ctx context.Context, buyerID uuid.UUID, status *string, limit int32) ([]*BargainThreadListItem, error)
	FindByBuyerKeyset(ctx context.Context, buyerID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BargainThreadListItem, error)
	FindBySellerFirstPage(ctx context.Context, sellerID uuid.UUID, status *string, limit int32) ([]*BargainThreadListItem, error)
	FindBySellerKeyset(ctx context.Context, sellerID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BargainThreadListItem, error)
}

type BargainListFilter struct {
	As     string
	Status *string
}

type BargainQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*BargainThreadView, error)
	FindActive(ctx context.Context, buyerID, productID uuid.UUID) (*BargainThreadView, error)
	ListForUser(ctx context.Context, userID uuid.UUID, filter BargainListFilter, cursor *Cursor, limit int) ([]*BargainThreadListItem, *Cursor, error)
}

type bargainQueriesImpl struct {
	repo BargainReadStore
}

func NewBargainQueries(repo BargainReadStore) BargainQueries {
	return &bargainQueriesImpl{repo: repo}
}

// GetByID is limited to the two participants and admins.
func (q *bargainQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*BargainThreadView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if !actorRole.IsAdmin() && actorID != view.BuyerID && actorID != view.SellerID {
		return nil, errs.WithKind(errs.ErrUnauthorized, "user %s is not a participant of thread %s", actorID, id)
	}
	return view, nil
}

func (q *bargainQueriesImpl) FindActive(ctx context.Context, buyerID, productID uuid.UUID) (*BargainThreadView, error) {
	view, err := q.repo.FindActive(ctx, buyerID, productID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return view, nil
}

func (q *bargainQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID, filter BargainListFilter, cursor *Cursor, limit int) ([]*BargainThreadListItem, *Cursor, error) {
	if filter.As == "" {
		filter.As = ListAsBuyer
	}
	if filter.As != ListAsBuyer && filter.As != ListAsSeller {
		return nil, nil, errs.WithKind(errs.ErrDomainValidation, "unknown list perspective %q", filter.As)
	}
	if filter.Status != nil && !bargain.Status(*filter.Status).IsValid() {
		return nil, nil, errs.WithKind(errs.ErrDomainValidation, "unknown thread status %q", *filter.Status)
	}

	limit = ValidateLimit(limit)
	var rows []*BargainThreadListItem
	var err error
	if cursor == nil || cursor.After == "" {
		if filter.As == ListAsSeller {
			rows, err = q.repo.FindBySellerFirstPage(ctx, userID, filter.Status, int32(limit+1))
		} else {
			rows, err = q.repo.FindByBuyerFirstPage(ctx, userID, filter.Status, int32(limit+1))
		}
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		if filter.As == ListAsSeller {
			rows, err = q.repo.FindBySellerKeyset(ctx, userID, filter.Status, lastCreatedAt, lastID, int32(limit+1))
		} else {
			rows, err = q.repo.FindByBuyerKeyset(ctx, userID, filter.Status, lastCreatedAt, lastID, int32(limit+1))
		}
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

// notFoundOr maps a repository NOT_FOUND to the domain kind.
func notFoundOr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrNotFound)
	}
	return err
}
