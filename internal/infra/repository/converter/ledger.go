package converter

import (
	"bargain-market/internal/domain/pricing"
	sqlc "bargain-market/internal/infra/sqlc/generated"
	"bargain-market/internal/pkg/pgconv"
)

func ResolvedPriceToUpsertParams(rp *pricing.ResolvedPrice) sqlc.UpsertResolvedPriceParams {
	return sqlc.UpsertResolvedPriceParams{
		BuyerID:        rp.BuyerID(),
		ProductID:      rp.ProductID(),
		PriceAmount:    rp.Price().Amount(),
		SourceThreadID: rp.SourceThreadID(),
		ResolvedAt:     pgconv.TimeToPgtype(rp.ResolvedAt()),
	}
}

func ResolvedPriceFromRow(row sqlc.ResolvedPrices) *pricing.ResolvedPrice {
	return pricing.ReconstructResolvedPrice(
		row.BuyerID,
		row.ProductID,
		pricing.MoneyOf(row.PriceAmount),
		row.SourceThreadID,
		pgconv.TimeFromPgtype(row.ResolvedAt),
	)
}
