package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/verdantgoods/storefront/internal/entities"
	"github.com/verdantgoods/storefront/pkg/trm"
)

const pqUniqueViolation = "23505"

var orderColumns = []string{
	"id", "user_id", "payment_intent_id", "payment_type",
	"first_name", "last_name", "email", "telephone",
	"cost_total", "shipping_total", "tax_total", "grand_total",
	"billing_line_1", "billing_line_2", "billing_city", "billing_county", "billing_postcode", "billing_country",
	"shipping_line_1", "shipping_line_2", "shipping_city", "shipping_county", "shipping_postcode", "shipping_country",
	"status", "created_at",
}

type ordersRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateOrder inserts the order snapshot. A second insert for the same
// payment intent hits the unique index and comes back as
// ErrOrderAlreadyExists so the caller can resolve the existing order.
func (r *ordersRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns(
			"user_id", "payment_intent_id", "payment_type",
			"first_name", "last_name", "email", "telephone",
			"cost_total", "shipping_total", "tax_total", "grand_total",
			"billing_line_1", "billing_line_2", "billing_city", "billing_county", "billing_postcode", "billing_country",
			"shipping_line_1", "shipping_line_2", "shipping_city", "shipping_county", "shipping_postcode", "shipping_country",
			"status",
		).
		Values(
			nullInt64(o.UserID), o.PaymentIntentID, o.PaymentType,
			o.FirstName, o.LastName, o.Email, nullString(o.Telephone),
			o.CostTotal, o.ShippingTotal, o.TaxTotal, o.GrandTotal,
			o.Billing.Line1, nullString(o.Billing.Line2), o.Billing.City, nullString(o.Billing.County), o.Billing.Postcode, o.Billing.Country,
			o.Shipping.Line1, nullString(o.Shipping.Line2), o.Shipping.City, nullString(o.Shipping.County), o.Shipping.Postcode, o.Shipping.Country,
			string(o.Status),
		).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		MustSql()

	var row Order
	err := r.getContext(ctx, &row, query, args...)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return entities.Order{}, entities.ErrOrderAlreadyExists
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	return OrderToEntity(row, nil), nil
}

func (r *ordersRepo) CreateOrderItems(ctx context.Context, orderID int64, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity", "product_cost", "product_total")

	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.Quantity, it.ProductCost, it.ProductTotal)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create order items: %w", err)
	}
	return nil
}

func (r *ordersRepo) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.listItems(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(row, items), nil
}

func (r *ordersRepo) GetOrderByPaymentIntentID(ctx context.Context, intentID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"payment_intent_id": intentID}).
		MustSql()

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order by intent: %w", err)
	}

	items, err := r.listItems(ctx, row.ID)
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(row, items), nil
}

func (r *ordersRepo) ListOrdersByUserID(ctx context.Context, userID int64) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, OrderToEntity(row, nil))
	}
	return orders, nil
}

func (r *ordersRepo) listItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	query, args := r.qb.Select("id", "order_id", "product_id", "quantity", "product_cost", "product_total").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	return items, nil
}

func (r *ordersRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *ordersRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *ordersRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
