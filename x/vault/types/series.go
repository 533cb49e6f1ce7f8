package types

import (
	"time"

	sdkmath "cosmossdk.io/math"
)

// SeriesInfo is the immutable record of an approved market.
// It is handed out by value and never mutated after approval.
type SeriesInfo struct {
	Market         string        `json:"market"`
	Approved       bool          `json:"approved"`
	TwapDuration   time.Duration `json:"twap_duration"`
	FeeBps         uint32        `json:"fee_bps"`
	Expiry         time.Time     `json:"expiry"`
	PrincipalDenom string        `json:"principal_denom"`
	YieldDenom     string        `json:"yield_denom"`
	WrapperDenom   string        `json:"wrapper_denom"`
	Underlying     string        `json:"underlying"`
	ApprovedAt     time.Time     `json:"approved_at"`
}

// IsMatured reports whether the market reached its expiry at the given block time
func (s SeriesInfo) IsMatured(now time.Time) bool {
	return !now.Before(s.Expiry)
}

// MarketDeposits tracks the principal tokens held in custody for a market
type MarketDeposits struct {
	Market         string      `json:"market"`
	TotalDeposited sdkmath.Int `json:"total_deposited"`
	// DepositLimit of zero disables the limit
	DepositLimit sdkmath.Int `json:"deposit_limit"`
	Settled      bool        `json:"settled"`
}

func NewMarketDeposits(market string) MarketDeposits {
	return MarketDeposits{
		Market:         market,
		TotalDeposited: sdkmath.ZeroInt(),
		DepositLimit:   sdkmath.ZeroInt(),
	}
}

// Headroom returns how much more can be deposited, and false when the market is unlimited
func (d MarketDeposits) Headroom() (sdkmath.Int, bool) {
	if d.DepositLimit.IsZero() {
		return sdkmath.Int{}, false
	}
	if d.TotalDeposited.GTE(d.DepositLimit) {
		return sdkmath.ZeroInt(), true
	}
	return d.DepositLimit.Sub(d.TotalDeposited), true
}

func (d MarketDeposits) Validate() error {
	if d.Market == "" {
		return ErrInvalidDenom.Wrap("market deposits: empty market")
	}
	if d.TotalDeposited.IsNil() || d.TotalDeposited.IsNegative() {
		return ErrInvalidAmount.Wrapf("market %s: negative total deposited", d.Market)
	}
	if d.DepositLimit.IsNil() || d.DepositLimit.IsNegative() {
		return ErrInvalidAmount.Wrapf("market %s: negative deposit limit", d.Market)
	}
	if !d.DepositLimit.IsZero() && d.TotalDeposited.GT(d.DepositLimit) {
		return ErrDepositLimitExceeded.Wrapf("market %s: %s > %s", d.Market, d.TotalDeposited, d.DepositLimit)
	}
	return nil
}
