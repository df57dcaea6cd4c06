// Package fakestore is an in-memory stand-in for the MySQL schema. It implements every repository
// interface so the real use cases can run concurrently in tests without a database.
//
// Transactions are serialized by one mutex and rolled back by restoring a snapshot of all tables.
// Unique keys and foreign keys that the use cases rely on are enforced with the same MySQL error
// numbers the driver would return.
package fakestore

import (
	"sort"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
)

var (
	errDuplicate = &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	errFKParent  = &mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row: a foreign key constraint fails"}
	errFKChild   = &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row: a foreign key constraint fails"}
)

type levelKey struct {
	variantID   uint64
	warehouseID uint64
}

type tables struct {
	variants     map[uint64]model.Variant
	warehouses   map[uint64]model.Warehouse
	levels       map[levelKey]model.StockLevel
	movements    []model.StockMovement
	reservations map[uint64]model.Reservation
	carts        map[uint64]model.Cart
	items        map[uint64]model.CartItem
	coupons      map[uint64]model.Coupon
	orders       map[uint64]model.Order
	orderItems   []model.OrderItem
	users        map[uint64]model.UserEntity
	seq          map[string]uint64
}

func newTables() tables {
	return tables{
		variants:     make(map[uint64]model.Variant),
		warehouses:   make(map[uint64]model.Warehouse),
		levels:       make(map[levelKey]model.StockLevel),
		reservations: make(map[uint64]model.Reservation),
		carts:        make(map[uint64]model.Cart),
		items:        make(map[uint64]model.CartItem),
		coupons:      make(map[uint64]model.Coupon),
		orders:       make(map[uint64]model.Order),
		users:        make(map[uint64]model.UserEntity),
		seq:          make(map[string]uint64),
	}
}

func (t *tables) clone() tables {
	c := newTables()
	for k, v := range t.variants {
		c.variants[k] = v
	}
	for k, v := range t.warehouses {
		c.warehouses[k] = v
	}
	for k, v := range t.levels {
		c.levels[k] = v
	}
	c.movements = append([]model.StockMovement(nil), t.movements...)
	for k, v := range t.reservations {
		c.reservations[k] = v
	}
	for k, v := range t.carts {
		c.carts[k] = v
	}
	for k, v := range t.items {
		c.items[k] = v
	}
	for k, v := range t.coupons {
		c.coupons[k] = v
	}
	for k, v := range t.orders {
		c.orders[k] = v
	}
	c.orderItems = append([]model.OrderItem(nil), t.orderItems...)
	for k, v := range t.users {
		c.users[k] = v
	}
	for k, v := range t.seq {
		c.seq[k] = v
	}
	return c
}

func (t *tables) next(table string) uint64 {
	t.seq[table]++
	return t.seq[table]
}

// Store holds the tables. The zero value is not usable; call New.
type Store struct {
	// txMu is held for the whole life of a transaction or an autocommit write.
	txMu sync.Mutex
	// mu guards data for the short critical section of each call.
	mu     sync.Mutex
	data   tables
	snap   *tables
	faults map[string][]error
	now    func() time.Time

	commits   int
	rollbacks int
}

func New() *Store {
	return &Store{
		data:   newTables(),
		faults: make(map[string][]error),
		now:    time.Now,
	}
}

// SetClock replaces the time source used for created_at/updated_at columns.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Fail makes the next call of method return err. Methods are named "<repo>.<Method>", for example
// "order.InsertOrderItemsTx" or "tx.CommitTx". Repeated calls queue further failures.
func (s *Store) Fail(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[method] = append(s.faults[method], err)
}

func (s *Store) fault(method string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.faults[method]
	if len(q) == 0 {
		return nil
	}
	s.faults[method] = q[1:]
	return q[0]
}

// read runs fn against the tables. Reads see uncommitted writes of the running transaction, which
// matches what the use cases observe when they read through the same connection.
func (s *Store) read(method string, fn func(t *tables)) error {
	if err := s.fault(method); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
	return nil
}

// write runs fn inside the caller's transaction; txMu is already held.
func (s *Store) write(method string, fn func(t *tables) error) error {
	if err := s.fault(method); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

// autocommit runs fn as its own transaction. It must not be called from inside a transaction.
func (s *Store) autocommit(method string, fn func(t *tables) error) error {
	if err := s.fault(method); err != nil {
		return err
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.data.clone()
	if err := fn(&s.data); err != nil {
		s.data = snap
		return err
	}
	return nil
}

// Seeding and inspection helpers. They bypass the ledger on purpose, so seeded counters show up as
// drift in Reconcile unless they are seeded through the stock use case.

func (s *Store) AddVariant(v model.Variant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.variants[v.ID] = v
}

func (s *Store) AddWarehouse(w model.Warehouse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w.Status == 0 {
		w.Status = constant.WarehouseStatusActive
	}
	s.data.warehouses[w.ID] = w
}

func (s *Store) AddCoupon(c model.Coupon) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = s.data.next("coupon")
	}
	s.data.coupons[c.ID] = c
	return c.ID
}

func (s *Store) AddUser(u model.UserEntity) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.data.next("user")
	}
	s.data.users[u.ID] = u
	return u.ID
}

// SetLevel writes counters directly, without movements.
func (s *Store) SetLevel(variantID, warehouseID uint64, onHand, reserved int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := levelKey{variantID, warehouseID}
	l, ok := s.data.levels[k]
	if !ok {
		l = model.StockLevel{ID: s.data.next("stock_level"), VariantID: variantID, WarehouseID: warehouseID}
	}
	l.OnHand, l.Reserved, l.UpdatedAt = onHand, reserved, s.now()
	s.data.levels[k] = l
}

// SetCartUpdatedAt backdates a cart for idle checks.
func (s *Store) SetCartUpdatedAt(cartID uint64, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.data.carts[cartID]; ok {
		c.UpdatedAt = at
		s.data.carts[cartID] = c
	}
}

func (s *Store) Level(variantID, warehouseID uint64) model.StockLevel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.levels[levelKey{variantID, warehouseID}]
}

// Movements returns the variant's movements oldest first.
func (s *Store) Movements(variantID uint64) []model.StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.StockMovement, 0)
	for _, m := range s.data.movements {
		if m.VariantID == variantID {
			out = append(out, m)
		}
	}
	return out
}

// Held sums stock_reservation quantities for (variant, warehouse).
func (s *Store) Held(variantID, warehouseID uint64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, r := range s.data.reservations {
		if r.VariantID == variantID && r.WarehouseID == warehouseID {
			total += r.Quantity
		}
	}
	return total
}

// ItemHolds returns the reservations of a cart item, oldest first.
func (s *Store) ItemHolds(cartItemID uint64) []model.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Reservation, 0)
	for _, r := range s.data.reservations {
		if r.CartItemID == cartItemID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Cart(cartID uint64) *model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.data.carts[cartID]
	if !ok {
		return nil
	}
	return &c
}

func (s *Store) CartItems(cartID uint64) []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return itemsOf(&s.data, cartID)
}

// PlacedOrders returns every stored order by id.
func (s *Store) PlacedOrders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0, len(s.data.orders))
	for _, o := range s.data.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) OrderItems(orderID uint64) []model.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.OrderItem, 0)
	for _, it := range s.data.orderItems {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out
}

// TxStats reports how many transactions committed and rolled back.
func (s *Store) TxStats() (commits, rollbacks int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits, s.rollbacks
}

func itemsOf(t *tables, cartID uint64) []model.CartItem {
	out := make([]model.CartItem, 0)
	for _, it := range t.items {
		if it.CartID == cartID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func hasHolds(t *tables, cartItemID uint64) bool {
	for _, r := range t.reservations {
		if r.CartItemID == cartItemID {
			return true
		}
	}
	return false
}
