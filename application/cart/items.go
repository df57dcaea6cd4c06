package cart

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// AddItem adds qty units of a variant, merging into an existing line. The line write and the hold
// commit together; on InsufficientStock neither the cart nor the ledger changes.
func (s *cartAppImpl) AddItem(ctx context.Context, handle *model.CartHandle, req *model.AddCartItemRequest) (*model.CartItem, error) {
	if req.Quantity <= 0 || req.Quantity > constant.MaxLineQuantity {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	variant, err := s.variantRepo.GetByID(ctx, req.VariantID)
	if err != nil {
		logger.Error("[AddItem] err variantRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if variant == nil {
		return nil, errors.SetCustomError(constant.ErrVariantNotFound)
	}

	var item *model.CartItem
	err = s.runner.Run(ctx, func(tx *sqlx.Tx) error {
		cart, err := s.lockCart(ctx, tx, handle.CartID)
		if err != nil {
			return err
		}
		if cart.Currency != variant.Currency {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}

		item, err = s.cartRepo.GetItemByVariantTx(ctx, tx, cart.ID, variant.ID)
		if err != nil {
			return fmt.Errorf("get item by variant: %w", err)
		}

		var held int64
		if item == nil {
			item = &model.CartItem{
				CartID:         cart.ID,
				VariantID:      variant.ID,
				Quantity:       req.Quantity,
				UnitPriceCents: variant.PriceCents,
				SKU:            variant.SKU,
				Title:          variant.Title,
			}
			if item.ID, err = s.cartRepo.InsertItemTx(ctx, tx, item); err != nil {
				return fmt.Errorf("insert item: %w", err)
			}
		} else {
			if item.Quantity > constant.MaxLineQuantity-req.Quantity {
				return errors.SetCustomError(constant.ErrInvalidRequest)
			}
			held = item.Quantity
			item.Quantity += req.Quantity
			if err := s.cartRepo.UpdateItemQtyTx(ctx, tx, item.ID, item.Quantity); err != nil {
				return fmt.Errorf("update item quantity: %w", err)
			}
		}

		if err := s.reserver.ReserveTx(ctx, tx, variant, item.ID, req.Quantity, held); err != nil {
			return err
		}
		return s.touch(ctx, tx, cart.ID)
	})
	if err != nil {
		return nil, errors.Normalize("[AddItem]", err)
	}

	s.scheduleExpiry(handle.CartID)
	return item, nil
}

// UpdateQuantity sets a line to newQty. Growth is re-checked against stock, shrinkage releases the
// difference, and zero removes the line.
func (s *cartAppImpl) UpdateQuantity(ctx context.Context, handle *model.CartHandle, itemID uint64, newQty int64) error {
	if newQty < 0 || newQty > constant.MaxLineQuantity {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if newQty == 0 {
		return s.RemoveItem(ctx, handle, itemID)
	}

	err := s.runner.Run(ctx, func(tx *sqlx.Tx) error {
		cart, err := s.lockCart(ctx, tx, handle.CartID)
		if err != nil {
			return err
		}
		item, err := s.lockItem(ctx, tx, cart.ID, itemID)
		if err != nil {
			return err
		}

		delta := newQty - item.Quantity
		if delta == 0 {
			return nil
		}
		if err := s.cartRepo.UpdateItemQtyTx(ctx, tx, item.ID, newQty); err != nil {
			return fmt.Errorf("update item quantity: %w", err)
		}

		if delta > 0 {
			variant, err := s.variantRepo.GetByID(ctx, item.VariantID)
			if err != nil {
				return fmt.Errorf("get variant: %w", err)
			}
			if variant == nil {
				return errors.SetCustomError(constant.ErrVariantNotFound)
			}
			if err := s.reserver.ReserveTx(ctx, tx, variant, item.ID, delta, item.Quantity); err != nil {
				return err
			}
		} else if err := s.reserver.ReleaseTx(ctx, tx, item.ID, -delta); err != nil {
			return err
		}
		return s.touch(ctx, tx, cart.ID)
	})
	if err != nil {
		return errors.Normalize("[UpdateQuantity]", err)
	}

	s.scheduleExpiry(handle.CartID)
	return nil
}

func (s *cartAppImpl) RemoveItem(ctx context.Context, handle *model.CartHandle, itemID uint64) error {
	err := s.runner.Run(ctx, func(tx *sqlx.Tx) error {
		cart, err := s.lockCart(ctx, tx, handle.CartID)
		if err != nil {
			return err
		}
		item, err := s.lockItem(ctx, tx, cart.ID, itemID)
		if err != nil {
			return err
		}

		// holds reference the line, so they go first
		if err := s.reserver.ReleaseAllTx(ctx, tx, item.ID); err != nil {
			return err
		}
		if err := s.cartRepo.DeleteItemTx(ctx, tx, item.ID); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		return s.touch(ctx, tx, cart.ID)
	})
	if err != nil {
		return errors.Normalize("[RemoveItem]", err)
	}

	s.scheduleExpiry(handle.CartID)
	return nil
}

func (s *cartAppImpl) ClearCart(ctx context.Context, handle *model.CartHandle) error {
	err := s.runner.Run(ctx, func(tx *sqlx.Tx) error {
		cart, err := s.lockCart(ctx, tx, handle.CartID)
		if err != nil {
			return err
		}
		if err := s.releaseItems(ctx, tx, cart.ID); err != nil {
			return err
		}
		return s.touch(ctx, tx, cart.ID)
	})
	if err != nil {
		return errors.Normalize("[ClearCart]", err)
	}
	return nil
}

// releaseItems drops every line of the cart together with its holds.
func (s *cartAppImpl) releaseItems(ctx context.Context, tx *sqlx.Tx, cartID uint64) error {
	items, err := s.cartRepo.ListItemsTx(ctx, tx, cartID)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	for _, it := range items {
		if err := s.reserver.ReleaseAllTx(ctx, tx, it.ID); err != nil {
			return err
		}
	}
	if err := s.cartRepo.DeleteItemsTx(ctx, tx, cartID); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}
	return nil
}

func (s *cartAppImpl) lockCart(ctx context.Context, tx *sqlx.Tx, cartID uint64) (*model.Cart, error) {
	cart, err := s.cartRepo.LockTx(ctx, tx, cartID)
	if err != nil {
		return nil, fmt.Errorf("lock cart: %w", err)
	}
	if cart == nil {
		return nil, errors.SetCustomError(constant.ErrCartNotFound)
	}
	return cart, nil
}

func (s *cartAppImpl) lockItem(ctx context.Context, tx *sqlx.Tx, cartID, itemID uint64) (*model.CartItem, error) {
	item, err := s.cartRepo.GetItemTx(ctx, tx, cartID, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrCartItemNotFound)
	}
	return item, nil
}

func (s *cartAppImpl) touch(ctx context.Context, tx *sqlx.Tx, cartID uint64) error {
	if err := s.cartRepo.TouchTx(ctx, tx, cartID); err != nil {
		return fmt.Errorf("touch cart: %w", err)
	}
	return nil
}
