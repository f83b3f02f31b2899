package metrics

import (
	"time"

	"launchpad/pkg/money"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "launchpad"

var (
	referralCodesGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "referral",
		Name:      "codes_generated_total",
		Help:      "Count of referral codes issued.",
	})

	referralCodeCollisionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "referral",
		Name:      "code_collisions_total",
		Help:      "Count of generated codes discarded because they were taken.",
	})

	referralAppliedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "referral",
		Name:      "applied_total",
		Help:      "Count of referral codes applied to new users.",
	})

	referralEarningsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "referral",
		Name:      "earnings_lamports_total",
		Help:      "Referrer earnings accrued, in lamports.",
	}, []string{"operation"})

	referralClaimsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "referral",
		Name:      "claims_total",
		Help:      "Count of claims by outcome.",
	}, []string{"outcome"})

	referralClaimedLamportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "referral",
		Name:      "claimed_lamports_total",
		Help:      "Lamports paid out by successful claims.",
	})

	referralClaimDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "referral",
		Name:      "claim_duration_seconds",
		Help:      "Duration of claim processing, transfer included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
)

// Referral records referral engine activity.
type Referral struct{}

func NewReferral() Referral { return Referral{} }

func (Referral) CodeGenerated(collisions int) {
	referralCodesGeneratedTotal.Inc()
	if collisions > 0 {
		referralCodeCollisionsTotal.Add(float64(collisions))
	}
}

func (Referral) ReferralApplied() {
	referralAppliedTotal.Inc()
}

func (Referral) EarningsAccrued(operation string, amount money.Lamports) {
	if operation == "" {
		operation = "unknown"
	}
	referralEarningsTotal.WithLabelValues(operation).Add(float64(amount))
}

func (Referral) ClaimFinished(outcome string, amount money.Lamports, started time.Time) {
	referralClaimsTotal.WithLabelValues(outcome).Inc()
	referralClaimDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
	if amount > 0 {
		referralClaimedLamportsTotal.Add(float64(amount))
	}
}
