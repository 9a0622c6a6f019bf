package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"bargain-market/internal/domain/bargain"
	"bargain-market/internal/domain/cart"
	"bargain-market/internal/domain/pricing"
	"bargain-market/internal/infra"
	"bargain-market/internal/infra/readstore"
	"bargain-market/internal/infra/repository"
	sqlc "bargain-market/internal/infra/sqlc/generated"
	"bargain-market/internal/pkg/errs"
	"bargain-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
	errRetriesExhausted  = errs.New("transaction retries exhausted")
)

// Serialization failures and deadlocks are replayed up to txRetries times
// with doubling backoff plus up to 20% jitter.
const (
	txRetries     = 3
	txBackoffBase = 100 * time.Millisecond
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q}
}

// ReadCommitted plus row locks; transitions lock the thread row first
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.retry(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// RepeatableRead: ledger, catalog and cart reads all come from one snapshot
func (u *PostgresUoW) WithinSnapshot(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.retry(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead}, fn)
}

func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, &commandReads{uow: u, dbtx: pgxTx}); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

func (u *PostgresUoW) retry(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil || !retryable(err) {
			return err
		}
		if attempt == txRetries {
			slog.ErrorContext(ctx, "transaction retries exhausted", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errRetriesExhausted)
		}

		wait := backoff(attempt)
		slog.WarnContext(ctx, "replaying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// attempt runs one transaction to completion so the rollback defer never
// outlives its connection across retries.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.WarnContext(ctx, "rollback failed", "error", err.Error())
	}
}

// Only raw driver conflicts are replayed here. Domain-level version
// conflicts surface to the caller, which re-reads state before retrying.
func retryable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && infra.Classify(pgErr) == infra.KindVersionConflict
}

func backoff(attempt int) time.Duration {
	d := txBackoffBase << attempt
	return d + rand.N(d/5+1)
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bargainRepo  shared.BargainRepository
	ledgerRepo   shared.LedgerRepository
	cartRepo     shared.CartRepository
	orderRepo    shared.OrderRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bargains() shared.BargainRepository {
	if t.bargainRepo == nil {
		t.bargainRepo = repository.NewBargainRepository(t.uow.q)
	}
	return t.bargainRepo
}

func (t *pgTx) Ledger() shared.LedgerRepository {
	if t.ledgerRepo == nil {
		t.ledgerRepo = repository.NewLedgerRepository(t.uow.q)
	}
	return t.ledgerRepo
}

func (t *pgTx) Carts() shared.CartRepository {
	if t.cartRepo == nil {
		t.cartRepo = repository.NewCartRepository(t.uow.q)
	}
	return t.cartRepo
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository(t.uow.q)
	}
	return t.orderRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	catalogStore *readstore.CatalogReadStore
	bargainStore *readstore.BargainReadStore
	ledgerStore  *readstore.LedgerReadStore
	cartStore    *readstore.CartReadStore
}

func (r *commandReads) catalog() *readstore.CatalogReadStore {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.uow.q, r.dbtx)
	}
	return r.catalogStore
}

func (r *commandReads) bargains() *readstore.BargainReadStore {
	if r.bargainStore == nil {
		r.bargainStore = readstore.NewBargainReadStore(r.uow.q, r.dbtx)
	}
	return r.bargainStore
}

func (r *commandReads) ProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	p, err := r.catalog().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}
	return &shared.ProductSnapshot{
		ID:      p.ID,
		OwnerID: p.OwnerID,
		Name:    p.Name,
		Price:   pricing.MoneyOf(p.PriceAmount),
		Stock:   int(p.Stock),
	}, nil
}

func (r *commandReads) ProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]shared.ProductSnapshot, error) {
	products, err := r.catalog().FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]shared.ProductSnapshot, len(products))
	for _, p := range products {
		out[p.ID] = shared.ProductSnapshot{
			ID:      p.ID,
			OwnerID: p.OwnerID,
			Name:    p.Name,
			Price:   pricing.MoneyOf(p.PriceAmount),
			Stock:   int(p.Stock),
		}
	}
	return out, nil
}

func (r *commandReads) ActiveThreadExists(ctx context.Context, buyerID, productID uuid.UUID) (bool, error) {
	_, err := r.bargains().FindActive(ctx, buyerID, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *commandReads) ThreadByID(ctx context.Context, id uuid.UUID) (*shared.ThreadSnapshot, error) {
	t, err := r.bargains().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}
	return &shared.ThreadSnapshot{
		ID:        t.ID,
		BuyerID:   t.BuyerID,
		SellerID:  t.SellerID,
		ProductID: t.ProductID,
		Status:    bargain.Status(t.Status),
	}, nil
}

func (r *commandReads) LedgerFor(ctx context.Context, buyerID uuid.UUID, productIDs []uuid.UUID) (pricing.Ledger, error) {
	if r.ledgerStore == nil {
		r.ledgerStore = readstore.NewLedgerReadStore(r.uow.q, r.dbtx)
	}
	views, err := r.ledgerStore.FindForProducts(ctx, buyerID, productIDs)
	if err != nil {
		return pricing.Ledger{}, err
	}
	entries := make([]*pricing.ResolvedPrice, len(views))
	for i, v := range views {
		entries[i] = pricing.ReconstructResolvedPrice(v.BuyerID, v.ProductID, pricing.MoneyOf(v.PriceAmount), v.SourceThreadID, v.ResolvedAt)
	}
	return pricing.NewLedger(buyerID, entries), nil
}

func (r *commandReads) CartLines(ctx context.Context, buyerID uuid.UUID) ([]cart.Line, error) {
	if r.cartStore == nil {
		r.cartStore = readstore.NewCartReadStore(r.uow.q, r.dbtx)
	}
	items, err := r.cartStore.Items(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	lines := make([]cart.Line, 0, len(items))
	for _, it := range items {
		line, err := cart.NewLine(it.ProductID, int(it.Quantity))
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
