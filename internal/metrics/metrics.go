// Package metrics собирает Prometheus-метрики бота.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// UpdatesTotal считает входящие обновления Telegram по типу.
	UpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boketto_updates_total",
			Help: "Total number of Telegram updates handled",
		},
		[]string{"kind"},
	)

	// CartOperationsTotal считает операции с корзиной.
	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boketto_cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation"},
	)

	// WizardTransitionsTotal считает переходы мастера.
	WizardTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boketto_wizard_transitions_total",
			Help: "Total number of wizard step transitions",
		},
		[]string{"from", "to"},
	)

	// OrdersPlacedTotal считает оформленные заказы.
	OrdersPlacedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boketto_orders_placed_total",
			Help: "Total number of placed orders",
		},
	)

	// OrderValue: распределение сумм заказов в рупиях.
	OrderValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "boketto_order_value_rupees",
			Help:    "Order value in rupees",
			Buckets: []float64{100, 250, 500, 750, 1000, 1500, 2500},
		},
	)

	// RecommendationsTotal считает запросы рекомендаций по результату.
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boketto_recommendations_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"result"},
	)
)

// Handler отдаёт метрики для /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
