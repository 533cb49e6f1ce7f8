package types

import (
	"time"

	sdkmath "cosmossdk.io/math"
)

// PendingChange is a queued governance value that becomes executable at ETA
type PendingChange[T any] struct {
	Value T         `json:"value"`
	ETA   time.Time `json:"eta"`
}

// Ready reports whether the change may be executed at the given block time
func (p PendingChange[T]) Ready(now time.Time) bool {
	return !now.Before(p.ETA)
}

// PendingMarket is a market queued for onboarding
type PendingMarket struct {
	Market       string        `json:"market"`
	TwapDuration time.Duration `json:"twap_duration"`
	ETA          time.Time     `json:"eta"`
	Underlying   string        `json:"underlying"`
	YieldDenom   string        `json:"yield_denom"`
}

// Ready reports whether the market may be approved at the given block time
func (p PendingMarket) Ready(now time.Time) bool {
	return !now.Before(p.ETA)
}

// FeeChange is the queued value of a fee update for an underlying
type FeeChange = PendingChange[uint32]

// LimitChange is the queued value of a deposit limit update for a market
type LimitChange = PendingChange[sdkmath.Int]

// UnderlyingApproval is the queued value of an underlying approval, carrying its initial fee
type UnderlyingApproval = PendingChange[uint32]
