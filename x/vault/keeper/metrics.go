package keeper

import (
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"

	utilmetrics "pkg.ptvault.dev/node/util/metrics"
	types "pkg.ptvault.dev/node/x/vault/types"
)

const (
	opDeposit      = "deposit"
	opClaim        = "claim"
	opSettleMarket = "settle_market"
	opClaimSettled = "claim_settled"
)

type metrics struct {
	operations *prometheus.CounterVec
	volume     *prometheus.CounterVec
	latency    *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: types.ModuleName,
			Name:      "operations_total",
			Help:      "vault entry point invocations by result",
		}, []string{"op", "result"}),
		volume: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: types.ModuleName,
			Name:      "volume_total",
			Help:      "principal token volume moved through the vault",
		}, []string{"op", "market"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: types.ModuleName,
			Name:      "operation_duration_microseconds",
			Help:      "vault entry point latency",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
		}, []string{"op"}),
	}

	if reg != nil {
		reg.MustRegister(m.operations, m.volume, m.latency)
	}

	return m
}

// observe records the outcome of an entry point. Precondition and timing rejections are not failures.
func (m *metrics) observe(op string, startAt time.Time, err error) {
	utilmetrics.IncCounterVecWithLabelValuesFiltered(m.operations, op, err,
		types.ErrAmountBelowMinimum,
		types.ErrMarketMatured,
		types.ErrMarketNotMatured,
		types.ErrSlippage,
		types.ErrDepositLimitExceeded,
		types.ErrReentrantCall,
	)
	utilmetrics.ObserveSince(startAt, m.latency.WithLabelValues(op))
}

func (m *metrics) addVolume(op, market string, amount sdkmath.Int) {
	f, _ := amount.ToLegacyDec().Float64()
	m.volume.WithLabelValues(op, market).Add(f)
}
