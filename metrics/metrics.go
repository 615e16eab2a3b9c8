package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Ledger metrics
var (
	GamblesPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGamblesPlaced,
			Help: HelpTextGamblesPlaced,
		},
	)

	GamblesSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGamblesSettled,
			Help: HelpTextGamblesSettled,
		},
		[]string{LabelResult},
	)

	GamblesCanceled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGamblesCanceled,
			Help: HelpTextGamblesCanceled,
		},
	)

	GambleStake = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameGambleStake,
			Help:    HelpTextGambleStake,
			Buckets: StakeBuckets,
		},
	)

	ItemsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
	)

	SaleRewards = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSaleRewards,
			Help: HelpTextSaleRewards,
		},
	)

	BalanceChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBalanceChanges,
			Help: HelpTextBalanceChanges,
		},
		[]string{LabelReason},
	)
)

// Command metrics
var (
	CommandsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsHandled,
			Help: HelpTextCommandsHandled,
		},
		[]string{LabelCommand, LabelStatus},
	)

	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCommandDuration,
			Help:    HelpTextCommandDuration,
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelCommand},
	)

	NameLookupErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNameLookupErrors,
			Help: HelpTextNameLookupErrors,
		},
	)
)

// ObserveCommand records a handled chat command
func ObserveCommand(command, status string, elapsed time.Duration) {
	CommandsHandled.WithLabelValues(command, status).Inc()
	CommandDuration.WithLabelValues(command).Observe(elapsed.Seconds())
}
