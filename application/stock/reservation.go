package stock

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
)

func (s *stockAppImpl) ReserveTx(ctx context.Context, tx *sqlx.Tx, variant *model.Variant, cartItemID uint64, qty, held int64) error {
	if qty <= 0 || !variant.TrackInventory {
		return nil
	}

	levels, err := s.stockRepo.LockActiveLevelsTx(ctx, tx, variant.ID, s.defaultWarehouseID)
	if err != nil {
		return fmt.Errorf("lock active levels: %w", err)
	}

	var available int64
	for _, l := range levels {
		available += l.Available()
	}
	if qty > available {
		s.metrics.IncInsufficientStock("reserve")
		return errors.InsufficientStock(variant.SKU, held+qty, available+held)
	}

	// fill warehouses in id order, the same order the rows were locked in
	remaining := qty
	for _, l := range levels {
		if remaining == 0 {
			break
		}
		take := min(remaining, l.Available())
		if take == 0 {
			continue
		}
		if _, err := s.AdjustTx(ctx, tx, model.AdjustRequest{
			VariantID:     variant.ID,
			WarehouseID:   l.WarehouseID,
			ReservedDelta: take,
			Type:          constant.MovementOrderReservation,
			Reason:        fmt.Sprintf("cart item %d", cartItemID),
		}); err != nil {
			return err
		}
		if err := s.stockRepo.InsertReservationTx(ctx, tx, &model.Reservation{
			CartItemID:  cartItemID,
			VariantID:   variant.ID,
			WarehouseID: l.WarehouseID,
			Quantity:    take,
		}); err != nil {
			return fmt.Errorf("insert reservation: %w", err)
		}
		remaining -= take
	}
	return nil
}

// ReleaseTx gives back up to qty held units, newest allocation first. Items without holds (untracked
// variants) release nothing.
func (s *stockAppImpl) ReleaseTx(ctx context.Context, tx *sqlx.Tx, cartItemID uint64, qty int64) error {
	if qty <= 0 {
		return nil
	}
	return s.release(ctx, tx, cartItemID, qty)
}

func (s *stockAppImpl) ReleaseAllTx(ctx context.Context, tx *sqlx.Tx, cartItemID uint64) error {
	return s.release(ctx, tx, cartItemID, -1)
}

// release drops qty units of holds, or all of them when qty is negative.
func (s *stockAppImpl) release(ctx context.Context, tx *sqlx.Tx, cartItemID uint64, qty int64) error {
	reservations, err := s.stockRepo.ListReservationsByItemTx(ctx, tx, cartItemID)
	if err != nil {
		return fmt.Errorf("list reservations: %w", err)
	}

	remaining := qty
	for _, r := range reservations {
		if remaining == 0 {
			break
		}
		take := r.Quantity
		if remaining > 0 {
			take = min(remaining, r.Quantity)
		}

		if _, err := s.AdjustTx(ctx, tx, model.AdjustRequest{
			VariantID:     r.VariantID,
			WarehouseID:   r.WarehouseID,
			ReservedDelta: -take,
			Type:          constant.MovementOrderRelease,
			Reason:        fmt.Sprintf("cart item %d", cartItemID),
		}); err != nil {
			return err
		}

		if take == r.Quantity {
			err = s.stockRepo.DeleteReservationTx(ctx, tx, r.ID)
		} else {
			err = s.stockRepo.UpdateReservationQtyTx(ctx, tx, r.ID, r.Quantity-take)
		}
		if err != nil {
			return fmt.Errorf("update reservation: %w", err)
		}
		if remaining > 0 {
			remaining -= take
		}
	}
	return nil
}

// MoveHoldsTx re-points holds to another cart item. Counters are untouched.
func (s *stockAppImpl) MoveHoldsTx(ctx context.Context, tx *sqlx.Tx, fromItemID, toItemID uint64) error {
	if err := s.stockRepo.MoveReservationsTx(ctx, tx, fromItemID, toItemID); err != nil {
		return fmt.Errorf("move reservations: %w", err)
	}
	return nil
}

// VerifyCommitTx makes sure the item is fully held and that every warehouse it is held in still has
// the units on hand. A shortfall in holds is topped up first.
func (s *stockAppImpl) VerifyCommitTx(ctx context.Context, tx *sqlx.Tx, variant *model.Variant, item *model.CartItem) error {
	if !variant.TrackInventory {
		return nil
	}

	reservations, err := s.stockRepo.ListReservationsByItemTx(ctx, tx, item.ID)
	if err != nil {
		return fmt.Errorf("list reservations: %w", err)
	}
	var held int64
	for _, r := range reservations {
		held += r.Quantity
	}

	if held < item.Quantity {
		if err := s.ReserveTx(ctx, tx, variant, item.ID, item.Quantity-held, held); err != nil {
			return err
		}
		if reservations, err = s.stockRepo.ListReservationsByItemTx(ctx, tx, item.ID); err != nil {
			return fmt.Errorf("list reservations: %w", err)
		}
	}

	perWarehouse := make(map[uint64]int64)
	order := make([]uint64, 0)
	for _, r := range reservations {
		if _, ok := perWarehouse[r.WarehouseID]; !ok {
			order = append(order, r.WarehouseID)
		}
		perWarehouse[r.WarehouseID] += r.Quantity
	}

	var onHand int64
	short := false
	for _, wh := range order {
		level, err := s.stockRepo.LockLevelTx(ctx, tx, variant.ID, wh)
		if err != nil {
			return fmt.Errorf("lock stock level: %w", err)
		}
		onHand += level.OnHand
		if level.OnHand < perWarehouse[wh] {
			short = true
		}
	}
	if short {
		s.metrics.IncInsufficientStock("checkout")
		return errors.InsufficientStock(variant.SKU, item.Quantity, onHand)
	}
	return nil
}

// FulfilTx turns every hold of the item into a permanent decrement, one ledger call per allocation.
func (s *stockAppImpl) FulfilTx(ctx context.Context, tx *sqlx.Tx, cartItemID uint64, reason string) error {
	reservations, err := s.stockRepo.ListReservationsByItemTx(ctx, tx, cartItemID)
	if err != nil {
		return fmt.Errorf("list reservations: %w", err)
	}

	for _, r := range reservations {
		if _, err := s.AdjustTx(ctx, tx, model.AdjustRequest{
			VariantID:     r.VariantID,
			WarehouseID:   r.WarehouseID,
			OnHandDelta:   -r.Quantity,
			ReservedDelta: -r.Quantity,
			Type:          constant.MovementOrderFulfill,
			Reason:        reason,
		}); err != nil {
			return err
		}
		if err := s.stockRepo.DeleteReservationTx(ctx, tx, r.ID); err != nil {
			return fmt.Errorf("delete reservation: %w", err)
		}
	}
	return nil
}
