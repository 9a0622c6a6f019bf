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

type BargainViewQueries interface {
	GetBargainThreadViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBargainThreadViewByIDRow, error)
	GetActiveBargainThreadView(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActiveBargainThreadViewParams) (sqlc.GetActiveBargainThreadViewRow, error)
	ListBargainMessages(ctx context.Context, db sqlc.DBTX, threadID uuid.UUID) ([]sqlc.BargainMessages, error)
	ListBargainThreadsByBuyerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBargainThreadsByBuyerFirstPageParams) ([]sqlc.ListBargainThreadsByBuyerFirstPageRow, error)
	ListBargainThreadsByBuyerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBargainThreadsByBuyerKeysetParams) ([]sqlc.ListBargainThreadsByBuyerKeysetRow, error)
	ListBargainThreadsBySellerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBargainThreadsBySellerFirstPageParams) ([]sqlc.ListBargainThreadsBySellerFirstPageRow, error)
	ListBargainThreadsBySellerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBargainThreadsBySellerKeysetParams) ([]sqlc.ListBargainThreadsBySellerKeysetRow, error)
}

type BargainReadStore struct {
	queries BargainViewQueries
	db      sqlc.DBTX
}

func NewBargainReadStore(queries BargainViewQueries, db sqlc.DBTX) *BargainReadStore {
	return &BargainReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BargainReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BargainThreadView, error) {
	row, err := r.queries.GetBargainThreadViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bargain thread not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get bargain thread view by id", err)
	}
	view := threadViewFromRow(sqlc.BargainThreads{
		ID: row.ID, BuyerID: row.BuyerID, SellerID: row.SellerID, ProductID: row.ProductID,
		CatalogPrice: row.CatalogPrice, CurrentOffer: row.CurrentOffer,
		CounterOffer: row.CounterOffer, AgreedPrice: row.AgreedPrice,
		Status: row.Status, Version: row.Version, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt,
	}, row.ProductName)
	return r.withMessages(ctx, view)
}

// FindActive returns the pending or countered thread for (buyer, product).
func (r *BargainReadStore) FindActive(ctx context.Context, buyerID, productID uuid.UUID) (*queries.BargainThreadView, error) {
	row, err := r.queries.GetActiveBargainThreadView(ctx, r.db, sqlc.GetActiveBargainThreadViewParams{
		BuyerID:   buyerID,
		ProductID: productID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active bargain thread not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get active bargain thread", err)
	}
	view := threadViewFromRow(sqlc.BargainThreads{
		ID: row.ID, BuyerID: row.BuyerID, SellerID: row.SellerID, ProductID: row.ProductID,
		CatalogPrice: row.CatalogPrice, CurrentOffer: row.CurrentOffer,
		CounterOffer: row.CounterOffer, AgreedPrice: row.AgreedPrice,
		Status: row.Status, Version: row.Version, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt,
	}, row.ProductName)
	return r.withMessages(ctx, view)
}

func (r *BargainReadStore) FindByBuyerFirstPage(ctx context.Context, buyerID uuid.UUID, status *string, limit int32) ([]*queries.BargainThreadListItem, error) {
	rows, err := r.queries.ListBargainThreadsByBuyerFirstPage(ctx, r.db, sqlc.ListBargainThreadsByBuyerFirstPageParams{
		BuyerID: buyerID,
		Status:  pgconv.StringPtrToPgtype(status),
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bargain threads first page by buyer", err)
	}
	result := make([]*queries.BargainThreadListItem, len(rows))
	for i, row := range rows {
		result[i] = listItemFromRow(sqlc.BargainThreads{
			ID: row.ID, BuyerID: row.BuyerID, SellerID: row.SellerID, ProductID: row.ProductID,
			CatalogPrice: row.CatalogPrice, CurrentOffer: row.CurrentOffer,
			CounterOffer: row.CounterOffer, AgreedPrice: row.AgreedPrice,
			Status: row.Status, Version: row.Version, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt,
		}, row.ProductName)
	}
	return result, nil
}

func (r *BargainReadStore) FindByBuyerKeyset(ctx context.Context, buyerID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BargainThreadListItem, error) {
	rows, err := r.queries.ListBargainThreadsByBuyerKeyset(ctx, r.db, sqlc.ListBargainThreadsByBuyerKeysetParams{
		BuyerID:   buyerID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Status:    pgconv.StringPtrToPgtype(status),
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bargain threads keyset by buyer", err)
	}
	result := make([]*queries.BargainThreadListItem, len(rows))
	for i, row := range rows {
		result[i] = listItemFromRow(sqlc.BargainThreads{
			ID: row.ID, BuyerID: row.BuyerID, SellerID: row.SellerID, ProductID: row.ProductID,
			CatalogPrice: row.CatalogPrice, CurrentOffer: row.CurrentOffer,
			CounterOffer: row.CounterOffer, AgreedPrice: row.AgreedPrice,
			Status: row.Status, Version: row.Version, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt,
		}, row.ProductName)
	}
	return result, nil
}

func (r *BargainReadStore) FindBySellerFirstPage(ctx context.Context, sellerID uuid.UUID, status *string, limit int32) ([]*queries.BargainThreadListItem, error) {
	rows, err := r.queries.ListBargainThreadsBySellerFirstPage(ctx, r.db, sqlc.ListBargainThreadsBySellerFirstPageParams{
		SellerID: sellerID,
		Status:   pgconv.StringPtrToPgtype(status),
		Limit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bargain threads first page by seller", err)
	}
	result := make([]*queries.BargainThreadListItem, len(rows))
	for i, row := range rows {
		result[i] = listItemFromRow(sqlc.BargainThreads{
			ID: row.ID, BuyerID: row.BuyerID, SellerID: row.SellerID, ProductID: row.ProductID,
			CatalogPrice: row.CatalogPrice, CurrentOffer: row.CurrentOffer,
			CounterOffer: row.CounterOffer, AgreedPrice: row.AgreedPrice,
			Status: row.Status, Version: row.Version, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt,
		}, row.ProductName)
	}
	return result, nil
}

func (r *BargainReadStore) FindBySellerKeyset(ctx context.Context, sellerID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BargainThreadListItem, error) {
	rows, err := r.queries.ListBargainThreadsBySellerKeyset(ctx, r.db, sqlc.ListBargainThreadsBySellerKeysetParams{
		SellerID:  sellerID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Status:    pgconv.StringPtrToPgtype(status),
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bargain threads keyset by seller", err)
	}
	result := make([]*queries.BargainThreadListItem, len(rows))
	for i, row := range rows {
		result[i] = listItemFromRow(sqlc.BargainThreads{
			ID: row.ID, BuyerID: row.BuyerID, SellerID: row.SellerID, ProductID: row.ProductID,
			CatalogPrice: row.CatalogPrice, CurrentOffer: row.CurrentOffer,
			CounterOffer: row.CounterOffer, AgreedPrice: row.AgreedPrice,
			Status: row.Status, Version: row.Version, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt,
		}, row.ProductName)
	}
	return result, nil
}

func (r *BargainReadStore) withMessages(ctx context.Context, view *queries.BargainThreadView) (*queries.BargainThreadView, error) {
	msgs, err := r.queries.ListBargainMessages(ctx, r.db, view.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bargain messages", err)
	}
	view.Messages = make([]queries.BargainMessageView, len(msgs))
	for i, m := range msgs {
		view.Messages[i] = queries.BargainMessageView{
			ID:       m.ID,
			SenderID: m.SenderID,
			Text:     m.Body,
			SentAt:   pgconv.TimeFromPgtype(m.SentAt),
		}
	}
	return view, nil
}

func threadViewFromRow(row sqlc.BargainThreads, productName string) *queries.BargainThreadView {
	return &queries.BargainThreadView{
		ID:           row.ID,
		BuyerID:      row.BuyerID,
		SellerID:     row.SellerID,
		ProductID:    row.ProductID,
		ProductName:  productName,
		CatalogPrice: row.CatalogPrice,
		CurrentOffer: row.CurrentOffer,
		CounterOffer: pgconv.Int64PtrFromPgtype(row.CounterOffer),
		AgreedPrice:  pgconv.Int64PtrFromPgtype(row.AgreedPrice),
		Status:       row.Status,
		Version:      row.Version,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func listItemFromRow(row sqlc.BargainThreads, productName string) *queries.BargainThreadListItem {
	return &queries.BargainThreadListItem{
		ID:           row.ID,
		BuyerID:      row.BuyerID,
		SellerID:     row.SellerID,
		ProductID:    row.ProductID,
		ProductName:  productName,
		CatalogPrice: row.CatalogPrice,
		CurrentOffer: row.CurrentOffer,
		CounterOffer: pgconv.Int64PtrFromPgtype(row.CounterOffer),
		AgreedPrice:  pgconv.Int64PtrFromPgtype(row.AgreedPrice),
		Status:       row.Status,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
