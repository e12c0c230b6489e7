package monitoring

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/skylar-games/case-opener/internal/domain/entity"
	"github.com/skylar-games/case-opener/internal/domain/usecase/draw"
)

var (
	// CaseOpenings counts committed spins by multiplier
	CaseOpenings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "case_openings_total",
			Help: "Total case openings committed, by multiplier",
		},
		[]string{"multiplier"},
	)

	// RewardOutcomes counts drawn tiers
	RewardOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reward_outcomes_total",
			Help: "Total reward outcomes drawn, by tier",
		},
		[]string{"tier"},
	)

	// WageredCoins accumulates debited wagers
	WageredCoins = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wagered_coins_total",
			Help: "Total coins wagered on case openings",
		},
	)

	// PaidOutCoins accumulates credited payouts
	PaidOutCoins = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "paid_out_coins_total",
			Help: "Total coins paid out by settled spins",
		},
	)

	// HTTPRequests counts handled requests by route and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		CaseOpenings,
		RewardOutcomes,
		WageredCoins,
		PaidOutCoins,
		HTTPRequests,
	)
}

// ObserveSpin records a committed spin's wager and outcomes. The payout is
// not counted here; it is only owed once the spin settles.
func ObserveSpin(spin *draw.Spin) {
	CaseOpenings.WithLabelValues(strconv.Itoa(spin.Multiplier)).Inc()
	for _, outcome := range spin.Outcomes {
		RewardOutcomes.WithLabelValues(outcome.Name).Inc()
	}
	WageredCoins.Add(entity.TenthsToCoins(spin.Cost))
}

// ObserveSettlement records a settled spin's credited payout
func ObserveSettlement(spin *draw.Spin) {
	PaidOutCoins.Add(entity.TenthsToCoins(spin.Payout))
}
