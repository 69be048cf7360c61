package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/verdantgoods/storefront/internal/entities"
	"github.com/verdantgoods/storefront/pkg/trm"
)

const cartColumns = "id, user_id, session_id, expires_at, updated_at"

type cartsRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewCartsRepo(db *sqlx.DB) *cartsRepo {
	return &cartsRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// UpsertUserCart finds or creates the single cart owned by the user.
func (r *cartsRepo) UpsertUserCart(ctx context.Context, userID int64) (entities.Cart, error) {
	query, args := r.qb.Insert("carts").
		Columns("user_id").
		Values(userID).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET updated_at = now()").
		Suffix("RETURNING " + cartColumns).
		MustSql()

	var cart Cart
	if err := r.getContext(ctx, &cart, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to upsert user cart: %w", err)
	}
	return CartToEntity(cart), nil
}

// UpsertGuestCart finds or creates the guest cart for the session token
// and slides its expiry forward in the same statement.
func (r *cartsRepo) UpsertGuestCart(ctx context.Context, sessionID string, expiresAt time.Time) (entities.Cart, error) {
	query, args := r.qb.Insert("carts").
		Columns("session_id", "expires_at").
		Values(sessionID, expiresAt).
		Suffix("ON CONFLICT (session_id) DO UPDATE SET expires_at = EXCLUDED.expires_at, updated_at = now()").
		Suffix("RETURNING " + cartColumns).
		MustSql()

	var cart Cart
	if err := r.getContext(ctx, &cart, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to upsert guest cart: %w", err)
	}
	return CartToEntity(cart), nil
}

func (r *cartsRepo) GetGuestCartBySessionID(ctx context.Context, sessionID string) (entities.Cart, error) {
	query, args := r.qb.Select("id", "user_id", "session_id", "expires_at", "updated_at").
		From("carts").
		Where(sq.Eq{"session_id": sessionID, "user_id": nil}).
		MustSql()

	var cart Cart
	err := r.getContext(ctx, &cart, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{}, entities.ErrCartNotFound
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get guest cart: %w", err)
	}
	return CartToEntity(cart), nil
}

// LockCart takes the row lock that serializes all mutations of one cart.
// Must run inside a transaction.
func (r *cartsRepo) LockCart(ctx context.Context, cartID int64) error {
	query, args := r.qb.Select("id").
		From("carts").
		Where(sq.Eq{"id": cartID}).
		Suffix("FOR UPDATE").
		MustSql()

	var id int64
	err := r.getContext(ctx, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrCartNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock cart: %w", err)
	}
	return nil
}

// TouchCart bumps updated_at so an active cart is not reaped.
func (r *cartsRepo) TouchCart(ctx context.Context, cartID int64) error {
	query, args := r.qb.Update("carts").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": cartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to touch cart: %w", err)
	}
	return nil
}

func (r *cartsRepo) ListItems(ctx context.Context, cartID int64) ([]entities.CartItem, error) {
	query, args := r.qb.Select(
		"ci.id", "ci.cart_id", "ci.product_id", "ci.quantity",
		"p.name AS product_name", "p.mpn AS product_mpn", "p.status AS product_status",
		"p.cost AS product_cost", "p.stock_qty AS product_stock").
		From("cart_items ci").
		LeftJoin("products p ON p.id = ci.product_id").
		Where(sq.Eq{"ci.cart_id": cartID}).
		OrderBy("ci.id").
		MustSql()

	var items []CartItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	result := make([]entities.CartItem, 0, len(items))
	for _, item := range items {
		result = append(result, CartItemToEntity(item))
	}
	return result, nil
}

// AddItemQuantity adds quantity to the cart's line for the product,
// creating the line when it does not exist. The unique (cart_id,
// product_id) constraint guarantees a single row per product.
func (r *cartsRepo) AddItemQuantity(ctx context.Context, cartID, productID int64, quantity int) (entities.CartItem, error) {
	query, args := r.qb.Insert("cart_items").
		Columns("cart_id", "product_id", "quantity").
		Values(cartID, productID, quantity).
		Suffix("ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = now()").
		Suffix("RETURNING id, cart_id, product_id, quantity").
		MustSql()

	var item struct {
		ID        int64 `db:"id"`
		CartID    int64 `db:"cart_id"`
		ProductID int64 `db:"product_id"`
		Quantity  int   `db:"quantity"`
	}
	if err := r.getContext(ctx, &item, query, args...); err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to add cart item: %w", err)
	}
	return entities.CartItem{
		ID:        item.ID,
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}, nil
}

// SetItemQuantity overwrites the line's quantity. Returns
// ErrCartItemNotFound when no such line exists.
func (r *cartsRepo) SetItemQuantity(ctx context.Context, cartID, productID int64, quantity int) (entities.CartItem, error) {
	query, args := r.qb.Update("cart_items").
		Set("quantity", quantity).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"cart_id": cartID, "product_id": productID}).
		Suffix("RETURNING id, cart_id, product_id, quantity").
		MustSql()

	var item struct {
		ID        int64 `db:"id"`
		CartID    int64 `db:"cart_id"`
		ProductID int64 `db:"product_id"`
		Quantity  int   `db:"quantity"`
	}
	err := r.getContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CartItem{}, entities.ErrCartItemNotFound
	}
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to update cart item: %w", err)
	}
	return entities.CartItem{
		ID:        item.ID,
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}, nil
}

// DeleteItem removes the line if present, reporting whether a row was
// deleted. Absence is not an error.
func (r *cartsRepo) DeleteItem(ctx context.Context, cartID, productID int64) (bool, error) {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_id": cartID, "product_id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete cart item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

// DeleteCart removes the cart; its items go with it via ON DELETE CASCADE.
func (r *cartsRepo) DeleteCart(ctx context.Context, cartID int64) error {
	query, args := r.qb.Delete("carts").
		Where(sq.Eq{"id": cartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

// DeleteExpiredGuestCarts sweeps guest carts whose expiry has passed.
func (r *cartsRepo) DeleteExpiredGuestCarts(ctx context.Context, before time.Time) (int64, error) {
	query, args := r.qb.Delete("carts").
		Where(sq.Eq{"user_id": nil}).
		Where(sq.Lt{"expires_at": before}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired carts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

func (r *cartsRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *cartsRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *cartsRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
