package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/verdantgoods/storefront/internal/entities"
	"github.com/verdantgoods/storefront/pkg/trm"
)

type CartRepo interface {
	UpsertUserCart(ctx context.Context, userID int64) (entities.Cart, error)
	UpsertGuestCart(ctx context.Context, sessionID string, expiresAt time.Time) (entities.Cart, error)
	GetGuestCartBySessionID(ctx context.Context, sessionID string) (entities.Cart, error)

	// LockCart serializes concurrent mutations of one cart; must be
	// called inside a transaction before touching its items.
	LockCart(ctx context.Context, cartID int64) error
	TouchCart(ctx context.Context, cartID int64) error

	ListItems(ctx context.Context, cartID int64) ([]entities.CartItem, error)
	AddItemQuantity(ctx context.Context, cartID, productID int64, quantity int) (entities.CartItem, error)
	SetItemQuantity(ctx context.Context, cartID, productID int64, quantity int) (entities.CartItem, error)
	DeleteItem(ctx context.Context, cartID, productID int64) (bool, error)

	DeleteCart(ctx context.Context, cartID int64) error
	DeleteExpiredGuestCarts(ctx context.Context, before time.Time) (int64, error)
}

type ProductRepo interface {
	GetProductByID(ctx context.Context, id int64) (entities.Product, error)
}

type cartService struct {
	logger    *slog.Logger
	txManager trm.Manager
	carts     CartRepo
	products  ProductRepo
	guestTTL  time.Duration
}

func NewCartService(logger *slog.Logger, txManager trm.Manager, carts CartRepo, products ProductRepo, guestTTL time.Duration) *cartService {
	return &cartService{
		logger:    logger.With(slog.String("service", "cart")),
		txManager: txManager,
		carts:     carts,
		products:  products,
		guestTTL:  guestTTL,
	}
}

// GetCurrentCart resolves the shopper's cart, creating it lazily.
//
// For an authenticated shopper the cart is keyed by user id; if the
// request still carries a guest session token from before login, that
// guest cart is merged in and deleted. merged=true tells the caller to
// invalidate the token so the merge can never run twice.
//
// For a guest the cart is keyed by the session token and its expiry
// slides forward on every access.
func (s *cartService) GetCurrentCart(ctx context.Context, identity entities.Identity) (entities.Cart, bool, error) {
	var cart entities.Cart
	var merged bool

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		if identity.Authenticated() {
			cart, err = s.carts.UpsertUserCart(ctx, identity.UserID)
			if err != nil {
				return err
			}
			if identity.SessionToken != "" {
				merged, err = s.mergeGuestCart(ctx, cart, identity.SessionToken)
				if err != nil {
					return err
				}
			}
		} else {
			if identity.SessionToken == "" {
				return entities.ErrCartNotFound
			}
			cart, err = s.carts.UpsertGuestCart(ctx, identity.SessionToken, time.Now().Add(s.guestTTL))
			if err != nil {
				return err
			}
		}

		cart.Items, err = s.carts.ListItems(ctx, cart.ID)
		return err
	})
	if err != nil {
		return entities.Cart{}, false, fmt.Errorf("failed to get current cart: %w", err)
	}

	return cart, merged, nil
}

// mergeGuestCart folds the guest cart's lines into the user's cart and
// deletes the guest cart. Quantities for a product present in both carts
// are summed; the unique line constraint keeps one row per product.
// Idempotent: once the guest cart is gone a rerun finds nothing to do.
func (s *cartService) mergeGuestCart(ctx context.Context, userCart entities.Cart, sessionToken string) (bool, error) {
	guestCart, err := s.carts.GetGuestCartBySessionID(ctx, sessionToken)
	if errors.Is(err, entities.ErrCartNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if guestCart.ID == userCart.ID {
		return false, nil
	}

	// Lock both carts in id order before reading the guest lines; an
	// unlocked guest cart could gain a line between the read and the
	// cascade delete.
	first, second := userCart.ID, guestCart.ID
	if second < first {
		first, second = second, first
	}
	if err := s.carts.LockCart(ctx, first); err != nil {
		return false, err
	}
	if err := s.carts.LockCart(ctx, second); err != nil {
		return false, err
	}

	guestItems, err := s.carts.ListItems(ctx, guestCart.ID)
	if err != nil {
		return false, err
	}
	for _, item := range guestItems {
		if _, err := s.carts.AddItemQuantity(ctx, userCart.ID, item.ProductID, item.Quantity); err != nil {
			return false, err
		}
	}

	if err := s.carts.DeleteCart(ctx, guestCart.ID); err != nil {
		return false, err
	}

	s.logger.InfoContext(ctx, "merged guest cart",
		slog.Int64("guest_cart_id", guestCart.ID),
		slog.Int64("user_cart_id", userCart.ID),
		slog.Int("items", len(guestItems)),
	)
	return true, nil
}

// AddItem adds quantity of a product to the cart, accumulating onto an
// existing line.
func (s *cartService) AddItem(ctx context.Context, cartID, productID int64, quantity int) (entities.CartItem, error) {
	if quantity < 1 {
		return entities.CartItem{}, entities.ErrInvalidQuantity
	}

	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return entities.CartItem{}, err
	}

	var item entities.CartItem
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.carts.LockCart(ctx, cartID); err != nil {
			return err
		}
		item, err = s.carts.AddItemQuantity(ctx, cartID, productID, quantity)
		if err != nil {
			return err
		}
		return s.carts.TouchCart(ctx, cartID)
	})
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to add item: %w", err)
	}

	item.Product = &product
	cartItemsAdded.Add(float64(quantity))
	return item, nil
}

// UpdateItem overwrites the line's quantity. Zero deletes the line and
// reports removed=true; negative quantities are rejected.
func (s *cartService) UpdateItem(ctx context.Context, cartID, productID int64, quantity int) (entities.CartItem, bool, error) {
	if quantity < 0 {
		return entities.CartItem{}, false, entities.ErrInvalidQuantity
	}

	var item entities.CartItem
	var removed bool
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.carts.LockCart(ctx, cartID); err != nil {
			return err
		}

		if quantity == 0 {
			if _, err := s.carts.DeleteItem(ctx, cartID, productID); err != nil {
				return err
			}
			removed = true
		} else {
			var err error
			item, err = s.carts.SetItemQuantity(ctx, cartID, productID, quantity)
			if err != nil {
				return err
			}
		}
		return s.carts.TouchCart(ctx, cartID)
	})
	if err != nil {
		if errors.Is(err, entities.ErrCartItemNotFound) {
			return entities.CartItem{}, false, entities.ErrCartItemNotFound
		}
		return entities.CartItem{}, false, fmt.Errorf("failed to update item: %w", err)
	}

	return item, removed, nil
}

// RemoveItem deletes the line; removing an absent line is a no-op.
func (s *cartService) RemoveItem(ctx context.Context, cartID, productID int64) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.carts.LockCart(ctx, cartID); err != nil {
			return err
		}
		if _, err := s.carts.DeleteItem(ctx, cartID, productID); err != nil {
			return err
		}
		return s.carts.TouchCart(ctx, cartID)
	})
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	return nil
}

// CleanupExpiredCarts deletes abandoned guest carts. A cart touched
// after the sweep started simply survives to the next run.
func (s *cartService) CleanupExpiredCarts(ctx context.Context) (int64, error) {
	count, err := s.carts.DeleteExpiredGuestCarts(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired carts: %w", err)
	}
	return count, nil
}
