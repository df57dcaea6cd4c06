package fakestore

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	cartrepo "github.com/muhammadheryan/storefront/repository/cart"
	couponrepo "github.com/muhammadheryan/storefront/repository/coupon"
	orderrepo "github.com/muhammadheryan/storefront/repository/order"
	stockrepo "github.com/muhammadheryan/storefront/repository/stock"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	userrepo "github.com/muhammadheryan/storefront/repository/user"
	variantrepo "github.com/muhammadheryan/storefront/repository/variant"
	warehouserepo "github.com/muhammadheryan/storefront/repository/warehouse"
)

func (s *Store) Tx() txrepo.TxRepository { return txRepo{s} }

func (s *Store) Stock() stockrepo.StockRepository { return stockRepo{s} }

func (s *Store) Carts() cartrepo.CartRepository { return cartRepo{s} }

func (s *Store) Variants() variantrepo.VariantRepository { return variantRepo{s} }

func (s *Store) Coupons() couponrepo.CouponRepository { return couponRepo{s} }

func (s *Store) Orders() orderrepo.OrderRepository { return orderRepo{s} }

func (s *Store) Warehouses() warehouserepo.WarehouseRepository { return warehouseRepo{s} }

func (s *Store) Users() userrepo.UserRepository { return userRepo{s} }

// tx

type txRepo struct{ s *Store }

func (r txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	if err := r.s.fault("tx.BeginTx"); err != nil {
		return nil, err
	}
	r.s.txMu.Lock()
	r.s.mu.Lock()
	snap := r.s.data.clone()
	r.s.snap = &snap
	r.s.mu.Unlock()
	return &sqlx.Tx{}, nil
}

func (r txRepo) CommitTx(tx *sqlx.Tx) error {
	if err := r.s.fault("tx.CommitTx"); err != nil {
		return err
	}
	r.s.mu.Lock()
	r.s.snap = nil
	r.s.commits++
	r.s.mu.Unlock()
	r.s.txMu.Unlock()
	return nil
}

func (r txRepo) RollbackTx(tx *sqlx.Tx) error {
	r.s.mu.Lock()
	if r.s.snap != nil {
		r.s.data = *r.s.snap
		r.s.snap = nil
	}
	r.s.rollbacks++
	r.s.mu.Unlock()
	r.s.txMu.Unlock()
	return nil
}

// stock

type stockRepo struct{ s *Store }

func (r stockRepo) LockLevelTx(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64) (*model.StockLevel, error) {
	var out model.StockLevel
	err := r.s.write("stock.LockLevelTx", func(t *tables) error {
		k := levelKey{variantID, warehouseID}
		l, ok := t.levels[k]
		if !ok {
			l = model.StockLevel{ID: t.next("stock_level"), VariantID: variantID, WarehouseID: warehouseID, UpdatedAt: r.s.now()}
			t.levels[k] = l
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r stockRepo) LockActiveLevelsTx(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64) ([]model.StockLevel, error) {
	var out []model.StockLevel
	err := r.s.read("stock.LockActiveLevelsTx", func(t *tables) {
		out = activeLevels(t, variantID, warehouseID)
	})
	return out, err
}

func (r stockRepo) UpdateLevelTx(ctx context.Context, tx *sqlx.Tx, level *model.StockLevel) error {
	return r.s.write("stock.UpdateLevelTx", func(t *tables) error {
		k := levelKey{level.VariantID, level.WarehouseID}
		l := t.levels[k]
		l.OnHand, l.Reserved, l.UpdatedAt = level.OnHand, level.Reserved, r.s.now()
		t.levels[k] = l
		return nil
	})
}

func (r stockRepo) InsertMovementTx(ctx context.Context, tx *sqlx.Tx, m *model.StockMovement) error {
	return r.s.write("stock.InsertMovementTx", func(t *tables) error {
		m.ID = t.next("stock_movement")
		m.CreatedAt = r.s.now()
		t.movements = append(t.movements, *m)
		return nil
	})
}

func (r stockRepo) GetLevel(ctx context.Context, variantID, warehouseID uint64) (*model.StockLevel, error) {
	var out *model.StockLevel
	err := r.s.read("stock.GetLevel", func(t *tables) {
		if l, ok := t.levels[levelKey{variantID, warehouseID}]; ok {
			out = &l
		}
	})
	return out, err
}

func (r stockRepo) ListLevels(ctx context.Context, variantID uint64) ([]model.StockLevel, error) {
	out := make([]model.StockLevel, 0)
	err := r.s.read("stock.ListLevels", func(t *tables) {
		for _, l := range t.levels {
			if l.VariantID == variantID {
				out = append(out, l)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].WarehouseID < out[j].WarehouseID })
	return out, err
}

func (r stockRepo) GetAvailable(ctx context.Context, variantID, warehouseID uint64) (int64, error) {
	var total int64
	err := r.s.read("stock.GetAvailable", func(t *tables) {
		for _, l := range activeLevels(t, variantID, warehouseID) {
			total += l.Available()
		}
	})
	return total, err
}

func (r stockRepo) ListMovements(ctx context.Context, variantID, warehouseID uint64, limit int) ([]model.StockMovement, error) {
	out := make([]model.StockMovement, 0)
	err := r.s.read("stock.ListMovements", func(t *tables) {
		for i := len(t.movements) - 1; i >= 0 && len(out) < limit; i-- {
			m := t.movements[i]
			if m.VariantID == variantID && (warehouseID == 0 || m.WarehouseID == warehouseID) {
				out = append(out, m)
			}
		}
	})
	return out, err
}

func (r stockRepo) SumMovements(ctx context.Context, variantID uint64) ([]model.MovementSum, error) {
	type key struct {
		wh      uint64
		counter constant.StockCounter
	}
	sums := make(map[key]int64)
	err := r.s.read("stock.SumMovements", func(t *tables) {
		for _, m := range t.movements {
			if m.VariantID == variantID {
				sums[key{m.WarehouseID, m.Counter}] += m.Delta
			}
		}
	})
	out := make([]model.MovementSum, 0, len(sums))
	for k, v := range sums {
		out = append(out, model.MovementSum{WarehouseID: k.wh, Counter: k.counter, Total: v})
	}
	return out, err
}

func (r stockRepo) SumReservations(ctx context.Context, variantID uint64) ([]model.MovementSum, error) {
	sums := make(map[uint64]int64)
	err := r.s.read("stock.SumReservations", func(t *tables) {
		for _, rr := range t.reservations {
			if rr.VariantID == variantID {
				sums[rr.WarehouseID] += rr.Quantity
			}
		}
	})
	out := make([]model.MovementSum, 0, len(sums))
	for wh, v := range sums {
		out = append(out, model.MovementSum{WarehouseID: wh, Counter: constant.CounterReserved, Total: v})
	}
	return out, err
}

func (r stockRepo) InsertReservationTx(ctx context.Context, tx *sqlx.Tx, rr *model.Reservation) error {
	return r.s.write("stock.InsertReservationTx", func(t *tables) error {
		if _, ok := t.items[rr.CartItemID]; !ok {
			return errFKChild
		}
		rr.ID = t.next("stock_reservation")
		t.reservations[rr.ID] = *rr
		return nil
	})
}

func (r stockRepo) ListReservationsByItemTx(ctx context.Context, tx *sqlx.Tx, cartItemID uint64) ([]model.Reservation, error) {
	out := make([]model.Reservation, 0)
	err := r.s.read("stock.ListReservationsByItemTx", func(t *tables) {
		for _, rr := range t.reservations {
			if rr.CartItemID == cartItemID {
				out = append(out, rr)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, err
}

func (r stockRepo) UpdateReservationQtyTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64, quantity int64) error {
	return r.s.write("stock.UpdateReservationQtyTx", func(t *tables) error {
		if rr, ok := t.reservations[reservationID]; ok {
			rr.Quantity = quantity
			t.reservations[reservationID] = rr
		}
		return nil
	})
}

func (r stockRepo) DeleteReservationTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64) error {
	return r.s.write("stock.DeleteReservationTx", func(t *tables) error {
		delete(t.reservations, reservationID)
		return nil
	})
}

func (r stockRepo) MoveReservationsTx(ctx context.Context, tx *sqlx.Tx, fromItemID, toItemID uint64) error {
	return r.s.write("stock.MoveReservationsTx", func(t *tables) error {
		if _, ok := t.items[toItemID]; !ok {
			return errFKChild
		}
		for id, rr := range t.reservations {
			if rr.CartItemID == fromItemID {
				rr.CartItemID = toItemID
				t.reservations[id] = rr
			}
		}
		return nil
	})
}

func activeLevels(t *tables, variantID, warehouseID uint64) []model.StockLevel {
	out := make([]model.StockLevel, 0)
	for _, l := range t.levels {
		if l.VariantID != variantID || (warehouseID != 0 && l.WarehouseID != warehouseID) {
			continue
		}
		if w, ok := t.warehouses[l.WarehouseID]; !ok || w.Status != constant.WarehouseStatusActive {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WarehouseID < out[j].WarehouseID })
	return out
}

// cart

type cartRepo struct{ s *Store }

func (r cartRepo) find(method string, match func(c model.Cart) bool) (*model.Cart, error) {
	var out *model.Cart
	err := r.s.read(method, func(t *tables) {
		for _, c := range t.carts {
			if match(c) {
				c := c
				out = &c
				return
			}
		}
	})
	return out, err
}

func (r cartRepo) GetByID(ctx context.Context, cartID uint64) (*model.Cart, error) {
	return r.find("cart.GetByID", func(c model.Cart) bool { return c.ID == cartID })
}

func (r cartRepo) GetByUserID(ctx context.Context, userID uint64) (*model.Cart, error) {
	return r.find("cart.GetByUserID", func(c model.Cart) bool { return c.UserID.Valid && uint64(c.UserID.Int64) == userID })
}

func (r cartRepo) GetByToken(ctx context.Context, token string) (*model.Cart, error) {
	return r.find("cart.GetByToken", func(c model.Cart) bool { return c.Token.Valid && c.Token.String == token })
}

func (r cartRepo) Create(ctx context.Context, cart *model.Cart) (uint64, error) {
	err := r.s.autocommit("cart.Create", func(t *tables) error {
		for _, c := range t.carts {
			if cart.UserID.Valid && c.UserID == cart.UserID {
				return errDuplicate
			}
			if cart.Token.Valid && c.Token == cart.Token {
				return errDuplicate
			}
		}
		cart.ID = t.next("cart")
		cart.CreatedAt, cart.UpdatedAt = r.s.now(), r.s.now()
		t.carts[cart.ID] = *cart
		return nil
	})
	if err != nil {
		return 0, err
	}
	return cart.ID, nil
}

func (r cartRepo) SetCoupon(ctx context.Context, cartID uint64, couponID sql.NullInt64) error {
	return r.s.autocommit("cart.SetCoupon", func(t *tables) error {
		return setCoupon(t, cartID, couponID, r.s.now())
	})
}

func (r cartRepo) ListItems(ctx context.Context, cartID uint64) ([]model.CartItem, error) {
	var out []model.CartItem
	err := r.s.read("cart.ListItems", func(t *tables) { out = itemsOf(t, cartID) })
	return out, err
}

func (r cartRepo) LockTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) (*model.Cart, error) {
	return r.find("cart.LockTx", func(c model.Cart) bool { return c.ID == cartID })
}

func (r cartRepo) TouchTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error {
	return r.s.write("cart.TouchTx", func(t *tables) error {
		if c, ok := t.carts[cartID]; ok {
			c.UpdatedAt = r.s.now()
			t.carts[cartID] = c
		}
		return nil
	})
}

func (r cartRepo) AssignUserTx(ctx context.Context, tx *sqlx.Tx, cartID, userID uint64) error {
	return r.s.write("cart.AssignUserTx", func(t *tables) error {
		for _, c := range t.carts {
			if c.UserID.Valid && uint64(c.UserID.Int64) == userID {
				return errDuplicate
			}
		}
		if c, ok := t.carts[cartID]; ok {
			c.UserID = sql.NullInt64{Int64: int64(userID), Valid: true}
			c.Token = sql.NullString{}
			c.UpdatedAt = r.s.now()
			t.carts[cartID] = c
		}
		return nil
	})
}

func (r cartRepo) SetCouponTx(ctx context.Context, tx *sqlx.Tx, cartID uint64, couponID sql.NullInt64) error {
	return r.s.write("cart.SetCouponTx", func(t *tables) error {
		return setCoupon(t, cartID, couponID, r.s.now())
	})
}

func (r cartRepo) DeleteTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error {
	return r.s.write("cart.DeleteTx", func(t *tables) error {
		if len(itemsOf(t, cartID)) > 0 {
			return errFKParent
		}
		delete(t.carts, cartID)
		return nil
	})
}

func (r cartRepo) ListItemsTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) ([]model.CartItem, error) {
	var out []model.CartItem
	err := r.s.read("cart.ListItemsTx", func(t *tables) { out = itemsOf(t, cartID) })
	return out, err
}

func (r cartRepo) findItem(method string, match func(it model.CartItem) bool) (*model.CartItem, error) {
	var out *model.CartItem
	err := r.s.read(method, func(t *tables) {
		for _, it := range t.items {
			if match(it) {
				it := it
				out = &it
				return
			}
		}
	})
	return out, err
}

func (r cartRepo) GetItemTx(ctx context.Context, tx *sqlx.Tx, cartID, itemID uint64) (*model.CartItem, error) {
	return r.findItem("cart.GetItemTx", func(it model.CartItem) bool { return it.CartID == cartID && it.ID == itemID })
}

func (r cartRepo) GetItemByVariantTx(ctx context.Context, tx *sqlx.Tx, cartID, variantID uint64) (*model.CartItem, error) {
	return r.findItem("cart.GetItemByVariantTx", func(it model.CartItem) bool { return it.CartID == cartID && it.VariantID == variantID })
}

func (r cartRepo) InsertItemTx(ctx context.Context, tx *sqlx.Tx, item *model.CartItem) (uint64, error) {
	err := r.s.write("cart.InsertItemTx", func(t *tables) error {
		if _, ok := t.carts[item.CartID]; !ok {
			return errFKChild
		}
		for _, it := range t.items {
			if it.CartID == item.CartID && it.VariantID == item.VariantID {
				return errDuplicate
			}
		}
		item.ID = t.next("cart_item")
		item.CreatedAt = r.s.now()
		t.items[item.ID] = *item
		return nil
	})
	if err != nil {
		return 0, err
	}
	return item.ID, nil
}

func (r cartRepo) UpdateItemQtyTx(ctx context.Context, tx *sqlx.Tx, itemID uint64, quantity int64) error {
	return r.s.write("cart.UpdateItemQtyTx", func(t *tables) error {
		if it, ok := t.items[itemID]; ok {
			it.Quantity = quantity
			t.items[itemID] = it
		}
		return nil
	})
}

func (r cartRepo) DeleteItemTx(ctx context.Context, tx *sqlx.Tx, itemID uint64) error {
	return r.s.write("cart.DeleteItemTx", func(t *tables) error {
		if hasHolds(t, itemID) {
			return errFKParent
		}
		delete(t.items, itemID)
		return nil
	})
}

func (r cartRepo) DeleteItemsTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error {
	return r.s.write("cart.DeleteItemsTx", func(t *tables) error {
		items := itemsOf(t, cartID)
		for _, it := range items {
			if hasHolds(t, it.ID) {
				return errFKParent
			}
		}
		for _, it := range items {
			delete(t.items, it.ID)
		}
		return nil
	})
}

func (r cartRepo) MoveItemTx(ctx context.Context, tx *sqlx.Tx, itemID, toCartID uint64) error {
	return r.s.write("cart.MoveItemTx", func(t *tables) error {
		it, ok := t.items[itemID]
		if !ok {
			return nil
		}
		for _, other := range t.items {
			if other.CartID == toCartID && other.VariantID == it.VariantID {
				return errDuplicate
			}
		}
		it.CartID = toCartID
		t.items[itemID] = it
		return nil
	})
}

// variant

type variantRepo struct{ s *Store }

func (r variantRepo) List(ctx context.Context, page, perPage int) ([]model.VariantListItem, int64, error) {
	out := make([]model.VariantListItem, 0)
	var total int64
	err := r.s.read("variant.List", func(t *tables) {
		ids := make([]uint64, 0, len(t.variants))
		for id := range t.variants {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		total = int64(len(ids))
		start := (page - 1) * perPage
		for i := start; i >= 0 && i < len(ids) && i < start+perPage; i++ {
			item := model.VariantListItem{Variant: t.variants[ids[i]]}
			for _, l := range activeLevels(t, ids[i], 0) {
				item.AvailableStock += l.Available()
			}
			out = append(out, item)
		}
	})
	return out, total, err
}

func (r variantRepo) GetByID(ctx context.Context, id uint64) (*model.Variant, error) {
	var out *model.Variant
	err := r.s.read("variant.GetByID", func(t *tables) {
		if v, ok := t.variants[id]; ok {
			out = &v
		}
	})
	return out, err
}

func (r variantRepo) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]model.Variant, error) {
	out := make(map[uint64]model.Variant, len(ids))
	err := r.s.read("variant.GetByIDs", func(t *tables) {
		for _, id := range ids {
			if v, ok := t.variants[id]; ok {
				out[id] = v
			}
		}
	})
	return out, err
}

// coupon

type couponRepo struct{ s *Store }

func (r couponRepo) GetActiveByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var out *model.Coupon
	err := r.s.read("coupon.GetActiveByCode", func(t *tables) {
		for _, c := range t.coupons {
			if c.Code == code && c.Active {
				c := c
				out = &c
				return
			}
		}
	})
	return out, err
}

func (r couponRepo) GetByID(ctx context.Context, id uint64) (*model.Coupon, error) {
	var out *model.Coupon
	err := r.s.read("coupon.GetByID", func(t *tables) {
		if c, ok := t.coupons[id]; ok {
			out = &c
		}
	})
	return out, err
}

// order

type orderRepo struct{ s *Store }

func (r orderRepo) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.Order) (uint64, error) {
	err := r.s.write("order.InsertOrderTx", func(t *tables) error {
		order.ID = t.next("order")
		stored := *order
		stored.Items = nil
		t.orders[order.ID] = stored
		return nil
	})
	if err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r orderRepo) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error {
	return r.s.write("order.InsertOrderItemsTx", func(t *tables) error {
		if _, ok := t.orders[orderID]; !ok {
			return errFKChild
		}
		for i := range items {
			items[i].ID = t.next("order_item")
			items[i].OrderID = orderID
			t.orderItems = append(t.orderItems, items[i])
		}
		return nil
	})
}

func (r orderRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Order, error) {
	out := make([]model.Order, 0)
	err := r.s.read("order.ListByUser", func(t *tables) {
		for _, o := range t.orders {
			if o.UserID.Valid && uint64(o.UserID.Int64) == userID {
				out = append(out, o)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, err
}

func (r orderRepo) GetByIDForUser(ctx context.Context, userID, orderID uint64) (*model.Order, error) {
	var out *model.Order
	err := r.s.read("order.GetByIDForUser", func(t *tables) {
		if o, ok := t.orders[orderID]; ok && o.UserID.Valid && uint64(o.UserID.Int64) == userID {
			out = &o
		}
	})
	return out, err
}

func (r orderRepo) ListItems(ctx context.Context, orderID uint64) ([]model.OrderItem, error) {
	out := make([]model.OrderItem, 0)
	err := r.s.read("order.ListItems", func(t *tables) {
		for _, it := range t.orderItems {
			if it.OrderID == orderID {
				out = append(out, it)
			}
		}
	})
	return out, err
}

// warehouse

type warehouseRepo struct{ s *Store }

func (r warehouseRepo) GetWarehouseByID(ctx context.Context, warehouseID uint64) (*model.Warehouse, error) {
	var out *model.Warehouse
	err := r.s.read("warehouse.GetWarehouseByID", func(t *tables) {
		if w, ok := t.warehouses[warehouseID]; ok {
			out = &w
		}
	})
	return out, err
}

func (r warehouseRepo) LockWarehouseTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (*model.Warehouse, error) {
	var out *model.Warehouse
	err := r.s.read("warehouse.LockWarehouseTx", func(t *tables) {
		if w, ok := t.warehouses[warehouseID]; ok {
			out = &w
		}
	})
	return out, err
}

func (r warehouseRepo) UpdateWarehouseStatusTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64, status constant.WarehouseStatus) error {
	return r.s.write("warehouse.UpdateWarehouseStatusTx", func(t *tables) error {
		if w, ok := t.warehouses[warehouseID]; ok {
			w.Status = status
			t.warehouses[warehouseID] = w
		}
		return nil
	})
}

func (r warehouseRepo) CheckReservedStockTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (int64, error) {
	var total int64
	err := r.s.read("warehouse.CheckReservedStockTx", func(t *tables) {
		for _, l := range t.levels {
			if l.WarehouseID == warehouseID {
				total += l.Reserved
			}
		}
	})
	return total, err
}

// user

type userRepo struct{ s *Store }

func (r userRepo) Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error) {
	err := r.s.autocommit("user.Create", func(t *tables) error {
		for _, u := range t.users {
			if u.Email == req.Email || u.Phone == req.Phone {
				return errDuplicate
			}
		}
		req.ID = t.next("user")
		req.CreatedAt = r.s.now()
		t.users[req.ID] = *req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r userRepo) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	var out *model.UserEntity
	err := r.s.read("user.Get", func(t *tables) {
		for _, u := range t.users {
			if (filter.ID != 0 && u.ID == filter.ID) ||
				(filter.Email != "" && u.Email == filter.Email) ||
				(filter.Phone != "" && u.Phone == filter.Phone) {
				u := u
				out = &u
				return
			}
		}
	})
	return out, err
}

func setCoupon(t *tables, cartID uint64, couponID sql.NullInt64, now time.Time) error {
	c, ok := t.carts[cartID]
	if !ok {
		return nil
	}
	c.CouponID = couponID
	c.UpdatedAt = now
	t.carts[cartID] = c
	return nil
}
