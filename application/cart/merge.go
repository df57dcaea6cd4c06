package cart

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// MergeCarts folds source into target and deletes source. Holds travel with the lines, so the ledger
// is not touched and nothing is reserved twice.
func (s *cartAppImpl) MergeCarts(ctx context.Context, targetCartID, sourceCartID uint64) error {
	if targetCartID == sourceCartID {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	err := s.runner.Run(ctx, func(tx *sqlx.Tx) error {
		return s.mergeTx(ctx, tx, targetCartID, sourceCartID)
	})
	if err != nil {
		return errors.Normalize("[MergeCarts]", err)
	}

	s.scheduleExpiry(targetCartID)
	return nil
}

func (s *cartAppImpl) mergeTx(ctx context.Context, tx *sqlx.Tx, targetCartID, sourceCartID uint64) error {
	// lock both carts in id order
	firstID, secondID := targetCartID, sourceCartID
	if firstID > secondID {
		firstID, secondID = secondID, firstID
	}
	first, err := s.lockCart(ctx, tx, firstID)
	if err != nil {
		return err
	}
	second, err := s.lockCart(ctx, tx, secondID)
	if err != nil {
		return err
	}
	target, source := first, second
	if target.ID != targetCartID {
		target, source = second, first
	}

	sourceItems, err := s.cartRepo.ListItemsTx(ctx, tx, source.ID)
	if err != nil {
		return fmt.Errorf("list source items: %w", err)
	}
	targetItems, err := s.cartRepo.ListItemsTx(ctx, tx, target.ID)
	if err != nil {
		return fmt.Errorf("list target items: %w", err)
	}
	byVariant := make(map[uint64]model.CartItem, len(targetItems))
	for _, it := range targetItems {
		byVariant[it.VariantID] = it
	}

	for _, src := range sourceItems {
		dst, ok := byVariant[src.VariantID]
		if !ok {
			// snapshot fields stay as they were captured in the source cart
			if err := s.cartRepo.MoveItemTx(ctx, tx, src.ID, target.ID); err != nil {
				return fmt.Errorf("move item: %w", err)
			}
			continue
		}

		if err := s.cartRepo.UpdateItemQtyTx(ctx, tx, dst.ID, dst.Quantity+src.Quantity); err != nil {
			return fmt.Errorf("update item quantity: %w", err)
		}
		if err := s.reserver.MoveHoldsTx(ctx, tx, src.ID, dst.ID); err != nil {
			return err
		}
		if err := s.cartRepo.DeleteItemTx(ctx, tx, src.ID); err != nil {
			return fmt.Errorf("delete source item: %w", err)
		}
		dst.Quantity += src.Quantity
		byVariant[dst.VariantID] = dst
	}

	if !target.CouponID.Valid && source.CouponID.Valid {
		if err := s.cartRepo.SetCouponTx(ctx, tx, target.ID, source.CouponID); err != nil {
			return fmt.Errorf("carry coupon: %w", err)
		}
	}

	if err := s.cartRepo.DeleteTx(ctx, tx, source.ID); err != nil {
		return fmt.Errorf("delete source cart: %w", err)
	}
	return s.touch(ctx, tx, target.ID)
}

// MergeGuestCart runs right after a successful login. Without a user cart the guest cart is simply
// handed over to the user; otherwise it is merged in.
func (s *cartAppImpl) MergeGuestCart(ctx context.Context, userID uint64, guestToken string) error {
	if userID == 0 || guestToken == "" {
		return nil
	}

	guest, err := s.cartRepo.GetByToken(ctx, guestToken)
	if err != nil {
		logger.Error("[MergeGuestCart] err cartRepo.GetByToken", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if guest == nil || !guest.IsGuest() {
		return nil
	}

	userCart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("[MergeGuestCart] err cartRepo.GetByUserID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if userCart != nil {
		return s.MergeCarts(ctx, userCart.ID, guest.ID)
	}

	err = s.runner.Run(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.lockCart(ctx, tx, guest.ID); err != nil {
			return err
		}
		return s.cartRepo.AssignUserTx(ctx, tx, guest.ID, userID)
	})
	if err == nil {
		s.scheduleExpiry(guest.ID)
		return nil
	}
	if !txrepo.IsDuplicateKey(err) {
		return errors.Normalize("[MergeGuestCart]", err)
	}

	// a user cart appeared in between
	userCart, err = s.cartRepo.GetByUserID(ctx, userID)
	if err != nil || userCart == nil {
		logger.Error("[MergeGuestCart] user cart missing after duplicate assign", zap.Uint64("user_id", userID))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return s.MergeCarts(ctx, userCart.ID, guest.ID)
}
