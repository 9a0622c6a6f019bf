package converter

import (
	"bargain-market/internal/domain/cart"
	"bargain-market/internal/domain/order"
	"bargain-market/internal/domain/pricing"
	sqlc "bargain-market/internal/infra/sqlc/generated"
	"bargain-market/internal/pkg/pgconv"
)

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	return sqlc.CreateOrderParams{
		ID:                    o.ID(),
		OrderNumber:           o.Number(),
		BuyerID:               o.BuyerID(),
		LinkedBargainThreadID: pgconv.UUIDPtrToPgtype(o.LinkedBargainThreadID()),
		TotalAmount:           o.TotalAmount().Amount(),
		PaymentMethod:         o.PaymentMethod().String(),
		Status:                o.Status().String(),
		CreatedAt:             pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:             pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

// lineNo is 1-based and preserves the order lines were submitted in.
func OrderItemToCreateParams(o *order.Order, lineNo int, item order.Item) sqlc.CreateOrderItemParams {
	return sqlc.CreateOrderItemParams{
		ID:                  item.ID(),
		OrderID:             o.ID(),
		LineNo:              int32(lineNo), // #nosec G115 -- bounded by cart size
		ProductID:           item.ProductID(),
		Quantity:            int32(item.Quantity()), // #nosec G115 -- bounded by cart.MaxQuantity
		UnitPriceAtPurchase: item.UnitPriceAtPurchase().Amount(),
		PriceSource:         item.Source().String(),
	}
}

func OrderFromRow(row sqlc.Orders, itemRows []sqlc.OrderItems) *order.Order {
	items := make([]order.Item, len(itemRows))
	for i, it := range itemRows {
		items[i] = order.ReconstructItem(
			it.ID,
			it.ProductID,
			int(it.Quantity),
			pricing.MoneyOf(it.UnitPriceAtPurchase),
			cart.PriceSource(it.PriceSource),
		)
	}
	return order.ReconstructOrder(
		row.ID,
		row.OrderNumber,
		row.BuyerID,
		items,
		pgconv.UUIDPtrFromPgtype(row.LinkedBargainThreadID),
		pricing.MoneyOf(row.TotalAmount),
		order.PaymentMethod(row.PaymentMethod),
		order.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
