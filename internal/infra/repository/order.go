package repository

import (
	"context"

	"bargain-market/internal/domain/order"
	"bargain-market/internal/infra"
	"bargain-market/internal/infra/repository/converter"
	sqlc "bargain-market/internal/infra/sqlc/generated"
	"bargain-market/internal/pkg/errs"
	"bargain-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	CreateOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderItemParams) error
	GetOrderForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	UpdateOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	for i, item := range o.Items() {
		if err := r.queries.CreateOrderItem(ctx, tx, converter.OrderItemToCreateParams(o, i+1, item)); err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}
	return nil
}

func (r *OrderRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("order not found", err, infra.KindNotFound), errs.ErrNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	items, err := r.queries.ListOrderItems(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order items", err)
	}
	return converter.OrderFromRow(row, items), nil
}

// UpdateStatus persists o.Status() if the stored status still equals expected.
func (r *OrderRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, o *order.Order, expected order.Status) error {
	affected, err := r.queries.UpdateOrderStatus(ctx, tx, sqlc.UpdateOrderStatusParams{
		NextStatus:     o.Status().String(),
		UpdatedAt:      pgconv.TimeToPgtype(o.UpdatedAt()),
		ID:             o.ID(),
		ExpectedStatus: expected.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if affected == 0 {
		return errs.Mark(
			infra.WrapRepoErr("order status changed concurrently", nil, infra.KindVersionConflict),
			errs.ErrConcurrentModification,
		)
	}
	return nil
}
