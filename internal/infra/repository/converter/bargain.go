package converter

import (
	"bargain-market/internal/domain/bargain"
	"bargain-market/internal/domain/pricing"
	sqlc "bargain-market/internal/infra/sqlc/generated"
	"bargain-market/internal/pkg/pgconv"
)

func BargainThreadToCreateParams(t *bargain.Thread) sqlc.CreateBargainThreadParams {
	return sqlc.CreateBargainThreadParams{
		ID:           t.ID(),
		BuyerID:      t.BuyerID(),
		SellerID:     t.SellerID(),
		ProductID:    t.ProductID(),
		CatalogPrice: t.CatalogPrice().Amount(),
		CurrentOffer: t.CurrentOffer().Amount(),
		Status:       t.Status().String(),
		Version:      t.Version(),
		CreatedAt:    pgconv.TimeToPgtype(t.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

// Version carries the expected (pre-update) version.
func BargainThreadToUpdateParams(t *bargain.Thread) sqlc.UpdateBargainThreadParams {
	return sqlc.UpdateBargainThreadParams{
		ID:           t.ID(),
		CurrentOffer: t.CurrentOffer().Amount(),
		CounterOffer: pgconv.Int64PtrToPgtype(moneyAmountPtr(t.CounterOffer())),
		AgreedPrice:  pgconv.Int64PtrToPgtype(moneyAmountPtr(t.AgreedPrice())),
		Status:       t.Status().String(),
		UpdatedAt:    pgconv.TimeToPgtype(t.UpdatedAt()),
		Version:      t.Version(),
	}
}

func MessageToInsertParams(m bargain.Message) sqlc.InsertBargainMessageParams {
	return sqlc.InsertBargainMessageParams{
		ID:       m.ID(),
		ThreadID: m.ThreadID(),
		SenderID: m.SenderID(),
		Body:     m.Text(),
		SentAt:   pgconv.TimeToPgtype(m.SentAt()),
	}
}

func BargainThreadFromRow(row sqlc.BargainThreads, msgRows []sqlc.BargainMessages) *bargain.Thread {
	messages := make([]bargain.Message, len(msgRows))
	for i, m := range msgRows {
		messages[i] = MessageFromRow(m)
	}
	return bargain.ReconstructThread(
		row.ID, row.BuyerID, row.SellerID, row.ProductID,
		pricing.MoneyOf(row.CatalogPrice), pricing.MoneyOf(row.CurrentOffer),
		moneyPtr(pgconv.Int64PtrFromPgtype(row.CounterOffer)),
		moneyPtr(pgconv.Int64PtrFromPgtype(row.AgreedPrice)),
		bargain.Status(row.Status),
		messages,
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func MessageFromRow(row sqlc.BargainMessages) bargain.Message {
	return bargain.ReconstructMessage(row.ID, row.ThreadID, row.SenderID, row.Body, pgconv.TimeFromPgtype(row.SentAt))
}

func moneyAmountPtr(m *pricing.Money) *int64 {
	if m == nil {
		return nil
	}
	v := m.Amount()
	return &v
}

func moneyPtr(v *int64) *pricing.Money {
	if v == nil {
		return nil
	}
	m := pricing.MoneyOf(*v)
	return &m
}
