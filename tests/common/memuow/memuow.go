//go:build unit

// Package memuow is an in-memory shared.UnitOfWork for use-case tests.
// Transactions are serialized on one mutex and roll back on error, and
// thread writes check the stored version the same way the SQL does.
// FailNext injects a write failure into the next transaction that reaches it.
package memuow

import (
	"context"
	"sync"
	"time"

	"bargain-market/internal/domain/bargain"
	"bargain-market/internal/domain/cart"
	"bargain-market/internal/domain/order"
	"bargain-market/internal/domain/pricing"
	sqlc "bargain-market/internal/infra/sqlc/generated"
	"bargain-market/internal/pkg/errs"
	"bargain-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type ledgerKey struct {
	buyerID   uuid.UUID
	productID uuid.UUID
}

type state struct {
	products map[uuid.UUID]shared.ProductSnapshot
	threads  map[uuid.UUID]*bargain.Thread
	ledger   map[ledgerKey]*pricing.ResolvedPrice
	carts    map[uuid.UUID][]cart.Line
	orders   map[uuid.UUID]*order.Order
}

func newState() *state {
	return &state{
		products: map[uuid.UUID]shared.ProductSnapshot{},
		threads:  map[uuid.UUID]*bargain.Thread{},
		ledger:   map[ledgerKey]*pricing.ResolvedPrice{},
		carts:    map[uuid.UUID][]cart.Line{},
		orders:   map[uuid.UUID]*order.Order{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.threads {
		c.threads[k] = v
	}
	for k, v := range s.ledger {
		c.ledger[k] = v
	}
	for k, v := range s.carts {
		c.carts[k] = append([]cart.Line(nil), v...)
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	return c
}

// Operations FailNext can target.
const (
	OpBargainCreate = "bargains.create"
	OpBargainSave   = "bargains.save"
	OpBargainAppend = "bargains.append"
	OpLedgerSet     = "ledger.set"
	OpLedgerClear   = "ledger.clear"
	OpCartClear     = "carts.clear"
	OpOrderCreate   = "orders.create"
	OpOrderUpdate   = "orders.update"
)

type Store struct {
	mu     sync.Mutex
	state  *state
	faults map[string]error

	// Commits counts successful write transactions.
	Commits int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{state: newState()}
}

// FailNext makes the next transactional call of op return err. The write it
// would have made is skipped.
func (s *Store) FailNext(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.faults == nil {
		s.faults = map[string]error{}
	}
	s.faults[op] = err
}

// fault runs with s.mu held by run.
func (s *Store) fault(op string) error {
	err, ok := s.faults[op]
	if !ok {
		return nil
	}
	delete(s.faults, op)
	return err
}

func (s *Store) AddProduct(p shared.ProductSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.products[p.ID] = p
}

// AddThread stores a copy of t as if it had been created earlier.
func (s *Store) AddThread(t *bargain.Thread) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.threads[t.ID()] = copyThread(t, t.Version())
}

func (s *Store) AddLedgerEntry(rp *pricing.ResolvedPrice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ledger[ledgerKey{rp.BuyerID(), rp.ProductID()}] = rp
}

func (s *Store) Thread(id uuid.UUID) (*bargain.Thread, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.state.threads[id]
	if !ok {
		return nil, false
	}
	return copyThread(t, t.Version()), true
}

func (s *Store) ThreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.threads)
}

func (s *Store) LedgerEntry(buyerID, productID uuid.UUID) (*pricing.ResolvedPrice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rp, ok := s.state.ledger[ledgerKey{buyerID, productID}]
	return rp, ok
}

func (s *Store) Cart(buyerID uuid.UUID) []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]cart.Line(nil), s.state.carts[buyerID]...)
}

func (s *Store) Order(id uuid.UUID) (*order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.state.orders[id]
	return o, ok
}

func (s *Store) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.orders)
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.run(ctx, fn)
}

func (s *Store) WithinSnapshot(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.run(ctx, fn)
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	s.mu.Lock()
	snapshot := s.state.clone()
	s.mu.Unlock()
	return fn(ctx, &reads{st: snapshot})
}

// CommandReads reads committed state without a transaction.
func (s *Store) CommandReads() shared.CommandReads {
	return &liveReads{store: s}
}

func (s *Store) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.clone()
	if err := fn(ctx, &memTx{st: working, fail: s.fault}); err != nil {
		return err
	}
	s.state = working
	s.Commits++
	return nil
}

type faultFunc func(op string) error

type memTx struct {
	st   *state
	fail faultFunc
}

func (t *memTx) Bargains() shared.BargainRepository { return &bargainRepo{st: t.st, fail: t.fail} }
func (t *memTx) Ledger() shared.LedgerRepository    { return &ledgerRepo{st: t.st, fail: t.fail} }
func (t *memTx) Carts() shared.CartRepository       { return &cartRepo{st: t.st, fail: t.fail} }
func (t *memTx) Orders() shared.OrderRepository     { return &orderRepo{st: t.st, fail: t.fail} }
func (t *memTx) Reads() shared.CommandReads         { return &reads{st: t.st} }
func (t *memTx) DB() sqlc.DBTX                      { return nil }

type bargainRepo struct {
	st   *state
	fail faultFunc
}

func (r *bargainRepo) Create(_ context.Context, _ sqlc.DBTX, t *bargain.Thread) error {
	if err := r.fail(OpBargainCreate); err != nil {
		return err
	}
	for _, existing := range r.st.threads {
		if existing.IsActive() && existing.BuyerID() == t.BuyerID() && existing.ProductID() == t.ProductID() {
			return errs.WithKind(errs.ErrDuplicateActiveThread, "active thread %s already exists", existing.ID())
		}
	}
	if _, ok := r.st.products[t.ProductID()]; !ok {
		return errs.WithKind(errs.ErrNotFound, "product %s not found", t.ProductID())
	}
	r.st.threads[t.ID()] = copyThread(t, t.Version())
	return nil
}

func (r *bargainRepo) LockForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*bargain.Thread, error) {
	t, ok := r.st.threads[id]
	if !ok {
		return nil, errs.WithKind(errs.ErrNotFound, "bargain thread %s not found", id)
	}
	return copyThread(t, t.Version()), nil
}

func (r *bargainRepo) Save(_ context.Context, _ sqlc.DBTX, t *bargain.Thread) error {
	if err := r.fail(OpBargainSave); err != nil {
		return err
	}
	stored, err := r.checkVersion(t)
	if err != nil {
		return err
	}
	r.st.threads[t.ID()] = copyThread(t, stored.Version()+1)
	return nil
}

func (r *bargainRepo) AppendMessage(_ context.Context, _ sqlc.DBTX, t *bargain.Thread, _ bargain.Message) error {
	if err := r.fail(OpBargainAppend); err != nil {
		return err
	}
	stored, err := r.checkVersion(t)
	if err != nil {
		return err
	}
	r.st.threads[t.ID()] = copyThread(t, stored.Version()+1)
	return nil
}

func (r *bargainRepo) checkVersion(t *bargain.Thread) (*bargain.Thread, error) {
	stored, ok := r.st.threads[t.ID()]
	if !ok {
		return nil, errs.WithKind(errs.ErrNotFound, "bargain thread %s not found", t.ID())
	}
	if stored.Version() != t.Version() {
		return nil, errs.WithKind(errs.ErrConcurrentModification, "thread %s: stored version %d, got %d",
			t.ID(), stored.Version(), t.Version())
	}
	return stored, nil
}

type ledgerRepo struct {
	st   *state
	fail faultFunc
}

func (r *ledgerRepo) Set(_ context.Context, _ sqlc.DBTX, rp *pricing.ResolvedPrice) error {
	if err := r.fail(OpLedgerSet); err != nil {
		return err
	}
	r.st.ledger[ledgerKey{rp.BuyerID(), rp.ProductID()}] = rp
	return nil
}

func (r *ledgerRepo) Clear(_ context.Context, _ sqlc.DBTX, buyerID, productID uuid.UUID) error {
	if err := r.fail(OpLedgerClear); err != nil {
		return err
	}
	key := ledgerKey{buyerID, productID}
	if _, ok := r.st.ledger[key]; !ok {
		return errs.WithKind(errs.ErrNotFound, "no resolved price for buyer %s product %s", buyerID, productID)
	}
	delete(r.st.ledger, key)
	return nil
}

type cartRepo struct {
	st   *state
	fail faultFunc
}

func (r *cartRepo) SetQuantity(_ context.Context, _ sqlc.DBTX, buyerID uuid.UUID, line cart.Line, _ time.Time) error {
	lines := r.st.carts[buyerID]
	for i, l := range lines {
		if l.ProductID() == line.ProductID() {
			lines[i] = line
			return nil
		}
	}
	r.st.carts[buyerID] = append(lines, line)
	return nil
}

func (r *cartRepo) Remove(_ context.Context, _ sqlc.DBTX, buyerID, productID uuid.UUID) error {
	lines := r.st.carts[buyerID]
	for i, l := range lines {
		if l.ProductID() == productID {
			r.st.carts[buyerID] = append(lines[:i:i], lines[i+1:]...)
			return nil
		}
	}
	return errs.WithKind(errs.ErrNotFound, "product %s not in cart", productID)
}

func (r *cartRepo) Clear(_ context.Context, _ sqlc.DBTX, buyerID uuid.UUID) error {
	if err := r.fail(OpCartClear); err != nil {
		return err
	}
	delete(r.st.carts, buyerID)
	return nil
}

type orderRepo struct {
	st   *state
	fail faultFunc
}

func (r *orderRepo) Create(_ context.Context, _ sqlc.DBTX, o *order.Order) error {
	if err := r.fail(OpOrderCreate); err != nil {
		return err
	}
	r.st.orders[o.ID()] = copyOrder(o)
	return nil
}

func (r *orderRepo) LockForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	o, ok := r.st.orders[id]
	if !ok {
		return nil, errs.WithKind(errs.ErrNotFound, "order %s not found", id)
	}
	return copyOrder(o), nil
}

func (r *orderRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, o *order.Order, expected order.Status) error {
	if err := r.fail(OpOrderUpdate); err != nil {
		return err
	}
	stored, ok := r.st.orders[o.ID()]
	if !ok {
		return errs.WithKind(errs.ErrNotFound, "order %s not found", o.ID())
	}
	if stored.Status() != expected {
		return errs.WithKind(errs.ErrConcurrentModification, "order %s status moved to %s", o.ID(), stored.Status())
	}
	r.st.orders[o.ID()] = copyOrder(o)
	return nil
}

type reads struct {
	st *state
}

func (r *reads) ProductByID(_ context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	p, ok := r.st.products[id]
	if !ok {
		return nil, errs.WithKind(errs.ErrNotFound, "product %s not found", id)
	}
	return &p, nil
}

func (r *reads) ProductsByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]shared.ProductSnapshot, error) {
	out := make(map[uuid.UUID]shared.ProductSnapshot, len(ids))
	for _, id := range ids {
		if p, ok := r.st.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (r *reads) ActiveThreadExists(_ context.Context, buyerID, productID uuid.UUID) (bool, error) {
	for _, t := range r.st.threads {
		if t.IsActive() && t.BuyerID() == buyerID && t.ProductID() == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *reads) ThreadByID(_ context.Context, id uuid.UUID) (*shared.ThreadSnapshot, error) {
	t, ok := r.st.threads[id]
	if !ok {
		return nil, errs.WithKind(errs.ErrNotFound, "bargain thread %s not found", id)
	}
	return &shared.ThreadSnapshot{
		ID:        t.ID(),
		BuyerID:   t.BuyerID(),
		SellerID:  t.SellerID(),
		ProductID: t.ProductID(),
		Status:    t.Status(),
	}, nil
}

func (r *reads) LedgerFor(_ context.Context, buyerID uuid.UUID, productIDs []uuid.UUID) (pricing.Ledger, error) {
	var entries []*pricing.ResolvedPrice
	for _, id := range productIDs {
		if rp, ok := r.st.ledger[ledgerKey{buyerID, id}]; ok {
			entries = append(entries, rp)
		}
	}
	return pricing.NewLedger(buyerID, entries), nil
}

func (r *reads) CartLines(_ context.Context, buyerID uuid.UUID) ([]cart.Line, error) {
	return append([]cart.Line{}, r.st.carts[buyerID]...), nil
}

type liveReads struct {
	store *Store
}

func (l *liveReads) current() *reads {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	return &reads{st: l.store.state.clone()}
}

func (l *liveReads) ProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	return l.current().ProductByID(ctx, id)
}

func (l *liveReads) ProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]shared.ProductSnapshot, error) {
	return l.current().ProductsByIDs(ctx, ids)
}

func (l *liveReads) ActiveThreadExists(ctx context.Context, buyerID, productID uuid.UUID) (bool, error) {
	return l.current().ActiveThreadExists(ctx, buyerID, productID)
}

func (l *liveReads) ThreadByID(ctx context.Context, id uuid.UUID) (*shared.ThreadSnapshot, error) {
	return l.current().ThreadByID(ctx, id)
}

func (l *liveReads) LedgerFor(ctx context.Context, buyerID uuid.UUID, productIDs []uuid.UUID) (pricing.Ledger, error) {
	return l.current().LedgerFor(ctx, buyerID, productIDs)
}

func (l *liveReads) CartLines(ctx context.Context, buyerID uuid.UUID) ([]cart.Line, error) {
	return l.current().CartLines(ctx, buyerID)
}

func copyThread(t *bargain.Thread, version int64) *bargain.Thread {
	return bargain.ReconstructThread(
		t.ID(), t.BuyerID(), t.SellerID(), t.ProductID(),
		t.CatalogPrice(), t.CurrentOffer(),
		copyMoney(t.CounterOffer()), copyMoney(t.AgreedPrice()),
		t.Status(),
		t.Messages(),
		version,
		t.CreatedAt(), t.UpdatedAt(),
	)
}

func copyMoney(m *pricing.Money) *pricing.Money {
	if m == nil {
		return nil
	}
	v := *m
	return &v
}

func copyOrder(o *order.Order) *order.Order {
	return order.ReconstructOrder(
		o.ID(), o.Number(), o.BuyerID(), o.Items(), o.LinkedBargainThreadID(),
		o.TotalAmount(), o.PaymentMethod(), o.Status(), o.CreatedAt(), o.UpdatedAt(),
	)
}
