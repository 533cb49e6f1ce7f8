package types

import (
	sdkmath "cosmossdk.io/math"
)

// UnderlyingInfo holds the approval state and fee configuration of a canonical underlying
type UnderlyingInfo struct {
	Denom    string `json:"denom"`
	Approved bool   `json:"approved"`
	// WrapperDenom is empty until the underlying is approved for the first time
	WrapperDenom string `json:"wrapper_denom"`
	FeeBps       uint32 `json:"fee_bps"`
}

// Alias binds a token denom to its canonical underlying
type Alias struct {
	Token      string `json:"token"`
	Underlying string `json:"underlying"`
}

// RedemptionPool holds the underlying obtained by settling matured markets
type RedemptionPool struct {
	Underlying   string      `json:"underlying"`
	SettledAsset sdkmath.Int `json:"settled_asset"`
	TotalClaimed sdkmath.Int `json:"total_claimed"`
}

func NewRedemptionPool(underlying string) RedemptionPool {
	return RedemptionPool{
		Underlying:   underlying,
		SettledAsset: sdkmath.ZeroInt(),
		TotalClaimed: sdkmath.ZeroInt(),
	}
}

// Claimable returns the part of the pool not yet claimed
func (p RedemptionPool) Claimable() sdkmath.Int {
	return p.SettledAsset.Sub(p.TotalClaimed)
}

func (p RedemptionPool) Validate() error {
	if p.Underlying == "" {
		return ErrInvalidDenom.Wrap("redemption pool: empty underlying")
	}
	if p.SettledAsset.IsNil() || p.TotalClaimed.IsNil() {
		return ErrInvalidAmount.Wrapf("redemption pool %s: missing amounts", p.Underlying)
	}
	if p.TotalClaimed.IsNegative() || p.TotalClaimed.GT(p.SettledAsset) {
		return ErrInsufficientPool.Wrapf("redemption pool %s: claimed %s of %s", p.Underlying, p.TotalClaimed, p.SettledAsset)
	}
	return nil
}
