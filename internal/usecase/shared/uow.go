package shared

import (
	"context"
	"time"

	"bargain-market/internal/domain/bargain"
	"bargain-market/internal/domain/cart"
	"bargain-market/internal/domain/order"
	"bargain-market/internal/domain/pricing"
	sqlc "bargain-market/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Read-committed transaction for row-locked writes, with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSnapshot: Repeatable-read transaction so every read sees one snapshot, with retry logic
	WithinSnapshot(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only repeatable-read transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bargains() BargainRepository
	Ledger() LedgerRepository
	Carts() CartRepository
	Orders() OrderRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// Catalog is the read-only view of the product catalog owned elsewhere.
type Catalog interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	// Missing ids are absent from the result map
	ProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]ProductSnapshot, error)
}

type CommandReads interface {
	Catalog
	ActiveThreadExists(ctx context.Context, buyerID, productID uuid.UUID) (bool, error)
	ThreadByID(ctx context.Context, id uuid.UUID) (*ThreadSnapshot, error)
	LedgerFor(ctx context.Context, buyerID uuid.UUID, productIDs []uuid.UUID) (pricing.Ledger, error)
	CartLines(ctx context.Context, buyerID uuid.UUID) ([]cart.Line, error)
}

type BargainRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *bargain.Thread) error
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*bargain.Thread, error)
	Save(ctx context.Context, tx sqlc.DBTX, t *bargain.Thread) error
	AppendMessage(ctx context.Context, tx sqlc.DBTX, t *bargain.Thread, msg bargain.Message) error
}

type LedgerRepository interface {
	Set(ctx context.Context, tx sqlc.DBTX, rp *pricing.ResolvedPrice) error
	Clear(ctx context.Context, tx sqlc.DBTX, buyerID, productID uuid.UUID) error
}

type CartRepository interface {
	SetQuantity(ctx context.Context, tx sqlc.DBTX, buyerID uuid.UUID, line cart.Line, now time.Time) error
	Remove(ctx context.Context, tx sqlc.DBTX, buyerID, productID uuid.UUID) error
	Clear(ctx context.Context, tx sqlc.DBTX, buyerID uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, o *order.Order, expected order.Status) error
}
