//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// CreateTestProduct inserts a catalog product owned by ownerID.
func CreateTestProduct(t *testing.T, db DBLike, ownerID uuid.UUID, name string, price int64, stock int) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO products (id, owner_id, name, price_amount, stock) VALUES ($1, $2, $3, $4, $5)",
		productID, ownerID, name, price, stock)
	require.NoError(t, err)

	return productID
}

func ProductStock(t *testing.T, db DBLike, productID uuid.UUID) int {
	t.Helper()

	var stock int
	err := db.QueryRow(context.Background(), "SELECT stock FROM products WHERE id = $1", productID).Scan(&stock)
	require.NoError(t, err)

	return stock
}

// ResolvedPrice returns the ledger amount, or ok=false when no entry exists.
func ResolvedPrice(t *testing.T, db DBLike, buyerID, productID uuid.UUID) (amount int64, ok bool) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT price_amount FROM resolved_prices WHERE buyer_id = $1 AND product_id = $2",
		buyerID, productID).Scan(&amount)
	if err != nil {
		return 0, false
	}
	return amount, true
}

var (
	truncateOnce sync.Once
	truncateSQL  string
	truncateErr  error
)

// ResetDB truncates every public table. The table list is read once per
// process since migrations do not change during a test run.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	truncateOnce.Do(func() {
		rows, err := db.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		  ORDER BY tablename`)
		if err != nil {
			truncateErr = fmt.Errorf("list tables: %w", err)
			return
		}
		tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			truncateErr = fmt.Errorf("scan tables: %w", err)
			return
		}
		if len(tables) == 0 {
			truncateErr = fmt.Errorf("no tables to truncate; were migrations applied?")
			return
		}
		truncateSQL = "TRUNCATE " + strings.Join(tables, ", ") + " CASCADE"
	})
	if truncateErr != nil {
		return truncateErr
	}
	_, err := db.Exec(ctx, truncateSQL)
	return err
}
