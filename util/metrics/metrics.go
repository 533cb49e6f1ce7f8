package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const SuccessLabel = "success"
const FailLabel = "fail"
const RejectLabel = "reject"

func IncCounterVecWithLabelValues(counter *prometheus.CounterVec, name string, err error) {
	label := SuccessLabel
	if err != nil {
		label = FailLabel
	}
	counter.WithLabelValues(name, label).Inc()
}

// IncCounterVecWithLabelValuesFiltered labels errors matching any of the given targets as rejections
// instead of failures
func IncCounterVecWithLabelValuesFiltered(counter *prometheus.CounterVec, name string, err error, targets ...error) {
	label := SuccessLabel
	if err != nil {
		label = FailLabel
		for _, target := range targets {
			if errors.Is(err, target) {
				label = RejectLabel
				break
			}
		}
	}
	counter.WithLabelValues(name, label).Inc()
}

// ObserveSince records the time elapsed since startAt in microseconds
func ObserveSince(startAt time.Time, observer prometheus.Observer) {
	observer.Observe(float64(time.Since(startAt).Microseconds()))
}
