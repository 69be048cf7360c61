package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "checkout",
			Name:      "orders_created_total",
			Help:      "Total number of orders created from confirmed payments",
		},
	)

	checkoutFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "checkout",
			Name:      "failures_total",
			Help:      "Total number of failed checkout attempts by reason",
		},
		[]string{"reason"},
	)

	cartItemsAdded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "cart",
			Name:      "items_added_total",
			Help:      "Total quantity of items added to carts",
		},
	)

	cartsReaped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "cart",
			Name:      "expired_carts_deleted_total",
			Help:      "Total number of expired guest carts deleted by the reaper",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		checkoutFailures,
		cartItemsAdded,
		cartsReaped,
	)
}
