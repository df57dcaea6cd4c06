package cart

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// ExpireCart releases an idle cart. It reports false when the cart is gone or was touched within
// ExpireAfter; a later expiration message covers the newer activity. Guest carts are deleted, user
// carts are only emptied.
func (s *cartAppImpl) ExpireCart(ctx context.Context, cartID uint64) (bool, error) {
	expired := false
	err := s.runner.Run(ctx, func(tx *sqlx.Tx) error {
		expired = false
		cart, err := s.cartRepo.LockTx(ctx, tx, cartID)
		if err != nil {
			return err
		}
		if cart == nil || s.now().Sub(cart.UpdatedAt) < s.cfg.ExpireAfter {
			return nil
		}

		if err := s.releaseItems(ctx, tx, cart.ID); err != nil {
			return err
		}
		if cart.IsGuest() {
			if err := s.cartRepo.DeleteTx(ctx, tx, cart.ID); err != nil {
				return err
			}
		}
		expired = true
		return nil
	})
	if err != nil {
		return false, errors.Normalize("[ExpireCart]", err)
	}

	if expired {
		logger.Info("[ExpireCart] cart expired", zap.Uint64("cart_id", cartID))
	}
	return expired, nil
}
