package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ledger operation metrics.
var (
	DepositsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ravenpay_deposits_created_total",
		Help: "Total number of deposits recorded",
	})

	WithdrawalsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ravenpay_withdrawals_created_total",
		Help: "Total number of withdrawals recorded",
	})

	InsufficientBalanceRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ravenpay_insufficient_balance_total",
		Help: "Total number of withdrawals rejected for insufficient balance",
	})

	LedgerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ravenpay_ledger_errors_total",
			Help: "Total number of ledger errors by kind",
		},
		[]string{"kind"},
	)

	MovementAmount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ravenpay_movement_amount",
			Help:    "Deposit and withdrawal amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		},
		[]string{"direction"},
	)

	AccountsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ravenpay_accounts_created_total",
		Help: "Total number of accounts created",
	})

	StoreRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ravenpay_store_retries_total",
		Help: "Total number of retried store operations",
	})
)
