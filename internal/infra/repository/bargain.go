package repository

import (
	"context"

	"bargain-market/internal/domain/bargain"
	"bargain-market/internal/infra"
	"bargain-market/internal/infra/repository/converter"
	sqlc "bargain-market/internal/infra/sqlc/generated"
	"bargain-market/internal/pkg/errs"
	"bargain-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// partial unique index over (buyer_id, product_id) for pending/countered threads
const constraintActiveThread = "uq_bargain_threads_active"

type BargainWriteQueries interface {
	CreateBargainThread(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBargainThreadParams) (uuid.UUID, error)
	GetBargainThreadForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BargainThreads, error)
	ListBargainMessages(ctx context.Context, db sqlc.DBTX, threadID uuid.UUID) ([]sqlc.BargainMessages, error)
	UpdateBargainThread(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBargainThreadParams) (int64, error)
	TouchBargainThread(ctx context.Context, db sqlc.DBTX, arg sqlc.TouchBargainThreadParams) (int64, error)
	InsertBargainMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBargainMessageParams) error
}

type BargainRepository struct {
	queries BargainWriteQueries
}

func NewBargainRepository(queries BargainWriteQueries) *BargainRepository {
	return &BargainRepository{queries: queries}
}

func (r *BargainRepository) Create(ctx context.Context, tx sqlc.DBTX, t *bargain.Thread) error {
	if _, err := r.queries.CreateBargainThread(ctx, tx, converter.BargainThreadToCreateParams(t)); err != nil {
		if infra.ConstraintName(err) == constraintActiveThread {
			return errs.Mark(
				infra.WrapRepoErr("active bargain thread already exists", err, infra.KindDuplicateKey),
				errs.ErrDuplicateActiveThread,
			)
		}
		wrapped := infra.WrapRepoErr("failed to create bargain thread", err)
		if infra.IsKind(wrapped, infra.KindForeignKeyViolated) {
			return errs.Mark(wrapped, errs.ErrNotFound)
		}
		return wrapped
	}
	return nil
}

// LockForUpdate loads the thread and its message log under a row lock held
// until the surrounding transaction ends.
func (r *BargainRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*bargain.Thread, error) {
	row, err := r.queries.GetBargainThreadForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("bargain thread not found", err, infra.KindNotFound), errs.ErrNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock bargain thread", err)
	}

	msgs, err := r.queries.ListBargainMessages(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load bargain messages", err)
	}
	return converter.BargainThreadFromRow(row, msgs), nil
}

// Save writes the full thread state if the stored version still equals t.Version().
func (r *BargainRepository) Save(ctx context.Context, tx sqlc.DBTX, t *bargain.Thread) error {
	affected, err := r.queries.UpdateBargainThread(ctx, tx, converter.BargainThreadToUpdateParams(t))
	if err != nil {
		return infra.WrapRepoErr("failed to update bargain thread", err)
	}
	if affected == 0 {
		return errs.Mark(
			infra.WrapRepoErr("bargain thread version mismatch", nil, infra.KindVersionConflict),
			errs.ErrConcurrentModification,
		)
	}
	return nil
}

func (r *BargainRepository) AppendMessage(ctx context.Context, tx sqlc.DBTX, t *bargain.Thread, msg bargain.Message) error {
	if err := r.queries.InsertBargainMessage(ctx, tx, converter.MessageToInsertParams(msg)); err != nil {
		return infra.WrapRepoErr("failed to insert bargain message", err)
	}

	affected, err := r.queries.TouchBargainThread(ctx, tx, sqlc.TouchBargainThreadParams{
		ID:        t.ID(),
		UpdatedAt: pgconv.TimeToPgtype(t.UpdatedAt()),
		Version:   t.Version(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to touch bargain thread", err)
	}
	if affected == 0 {
		return errs.Mark(
			infra.WrapRepoErr("bargain thread version mismatch", nil, infra.KindVersionConflict),
			errs.ErrConcurrentModification,
		)
	}
	return nil
}
