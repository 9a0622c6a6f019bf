package readstore

import (
	"context"
	"time"

	"bargain-market/internal/infra"
	sqlc "bargain-market/internal/infra/sqlc/generated"
	"bargain-market/internal/pkg/pgconv"
	"bargain-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderViewQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	ListOrdersByBuyerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByBuyerFirstPageParams) ([]sqlc.Orders, error)
	ListOrdersByBuyerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByBuyerKeysetParams) ([]sqlc.Orders, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by id", err)
	}
	items, err := r.queries.ListOrderItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	view := &queries.OrderView{
		ID:                    row.ID,
		Number:                row.OrderNumber,
		BuyerID:               row.BuyerID,
		LinkedBargainThreadID: pgconv.UUIDPtrFromPgtype(row.LinkedBargainThreadID),
		TotalAmount:           row.TotalAmount,
		PaymentMethod:         row.PaymentMethod,
		Status:                row.Status,
		Items:                 make([]queries.OrderItemView, len(items)),
		CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:             pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	for i, it := range items {
		view.Items[i] = queries.OrderItemView{
			ProductID:           it.ProductID,
			Quantity:            it.Quantity,
			UnitPriceAtPurchase: it.UnitPriceAtPurchase,
			PriceSource:         it.PriceSource,
			LineTotal:           int64(it.Quantity) * it.UnitPriceAtPurchase,
		}
	}
	return view, nil
}

func (r *OrderReadStore) FindByBuyerFirstPage(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.queries.ListOrdersByBuyerFirstPage(ctx, r.db, sqlc.ListOrdersByBuyerFirstPageParams{
		BuyerID: buyerID,
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders first page by buyer", err)
	}
	return mapOrderRows(rows), nil
}

func (r *OrderReadStore) FindByBuyerKeyset(ctx context.Context, buyerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.queries.ListOrdersByBuyerKeyset(ctx, r.db, sqlc.ListOrdersByBuyerKeysetParams{
		BuyerID:   buyerID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders keyset by buyer", err)
	}
	return mapOrderRows(rows), nil
}

func mapOrderRows(rows []sqlc.Orders) []*queries.OrderListItem {
	result := make([]*queries.OrderListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.OrderListItem{
			ID:            row.ID,
			Number:        row.OrderNumber,
			TotalAmount:   row.TotalAmount,
			PaymentMethod: row.PaymentMethod,
			Status:        row.Status,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}
