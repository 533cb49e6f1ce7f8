package keeper

import (
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	types "pkg.ptvault.dev/node/x/vault/types"
)

// Governor is the only holder of write access to the registry.
// Every change other than aliases passes through the timelock.
type Governor struct {
	k *keeper
}

// Governor returns the governance capability when authority matches the module authority
func (k *keeper) Governor(authority string) (*Governor, error) {
	if authority != k.authority {
		return nil, govtypes.ErrInvalidSigner.Wrapf("invalid authority; expected %s, got %s", k.authority, authority)
	}
	return &Governor{k: k}, nil
}

// UpdateParams replaces the module params
func (g *Governor) UpdateParams(sctx sdk.Context, params types.Params) error {
	return g.k.guarded(sctx, func(sctx sdk.Context) error {
		if err := g.k.SetParams(sctx, params); err != nil {
			return err
		}

		g.k.Logger(sctx).Info("params updated", "params", params.String())
		return nil
	})
}

func (g *Governor) QueueSetTimelockDelay(sctx sdk.Context, delay time.Duration) (change types.PendingChange[time.Duration], err error) {
	err = g.k.guarded(sctx, func(sctx sdk.Context) error {
		params, err := g.k.GetParams(sctx)
		if err != nil {
			return err
		}
		if err := params.ValidateDelay(delay); err != nil {
			return err
		}

		change, err = queueChange(sctx, g.k, "timelock delay", g.k.pendingDelay, delay)
		if err != nil {
			return err
		}

		sctx.EventManager().EmitEvent(types.NewEventDelayQueued(change).ToSDKEvent())
		return nil
	})

	return change, err
}

func (g *Governor) ExecuteSetTimelockDelay(sctx sdk.Context) (delay time.Duration, err error) {
	err = g.k.guarded(sctx, func(sctx sdk.Context) error {
		delay, err = executeChange[time.Duration](sctx, "timelock delay", g.k.pendingDelay)
		if err != nil {
			return err
		}

		if err := g.k.setTimelockDelay(sctx, delay); err != nil {
			return err
		}

		g.k.Logger(sctx).Info("timelock delay updated", "delay", delay)
		sctx.EventManager().EmitEvent(types.NewEventDelayExecuted(delay).ToSDKEvent())
		return nil
	})

	return delay, err
}

func (g *Governor) QueueAddMarket(sctx sdk.Context, market string, twap time.Duration) (pending types.PendingMarket, err error) {
	err = g.k.guarded(sctx, func(sctx sdk.Context) error {
		pending, err = g.k.queueAddMarket(sctx, market, twap)
		return err
	})

	return pending, err
}

func (g *Governor) ExecuteAddMarket(sctx sdk.Context, market string) (series types.SeriesInfo, err error) {
	err = g.k.guarded(sctx, func(sctx sdk.Context) error {
		series, err = g.k.executeAddMarket(sctx, market)
		return err
	})

	return series, err
}

func (g *Governor) QueueApproveUnderlying(sctx sdk.Context, underlying string, feeBps uint32) (change types.UnderlyingApproval, err error) {
	err = g.k.guarded(sctx, func(sctx sdk.Context) error {
		params, err := g.k.GetParams(sctx)
		if err != nil {
			return err
		}
		if err := params.ValidateFee(feeBps); err != nil {
			return err
		}

		approved, err := g.k.isApprovedUnderlying(sctx, underlying)
		if err != nil {
			return err
		}
		if approved {
			return types.ErrUnderlyingAlreadyApproved.Wrap(underlying)
		}

		if _, found, err := g.k.ResolveAlias(sctx, underlying); err != nil {
			return err
		} else if found {
			return types.ErrAliasConflict.Wrapf("%s is an alias", underlying)
		}

		change, err = queueChange(sctx, g.k, "approve underlying "+underlying, slotOf(g.k.pendingUnderlyings, underlying), feeBps)
		if err != nil {
			return err
		}

		sctx.EventManager().EmitEvent(types.NewEventUnderlyingQueued(underlying, change).ToSDKEvent())
		return nil
	})

	return change, err
}

func (g *Governor) ExecuteApproveUnderlying(sctx sdk.Context, underlying string) (info types.UnderlyingInfo, err error) {
	err = g.k.guarded(sctx, func(sctx sdk.Context) error {
		feeBps, err := executeChange[uint32](sctx, "approve underlying "+underlying, slotOf(g.k.pendingUnderlyings, underlying))
		if err != nil {
			return err
		}

		info, _, err = g.k.GetUnderlying(sctx, underlying)
		if err != nil {
			return err
		}
		if info.Approved {
			return types.ErrUnderlyingAlreadyApproved.Wrap(underlying)
		}

		// an alias set while the approval was pending keeps the token non canonical
		if target, found, err := g.k.ResolveAlias(sctx, underlying); err != nil {
			return err
		} else if found {
			return types.ErrAliasConflict.Wrapf("%s is an alias of %s", underlying, target)
		}

		if info.WrapperDenom == "" {
			info.WrapperDenom = g.k.createWrapper(sctx, underlying)
		}
		info.Approved = true
		info.FeeBps = feeBps

		if err := g.k.underlyings.Set(sctx, underlying, info); err != nil {
			return err
		}

		g.k.Logger(sctx).Info("underlying approved", "underlying", underlying, "wrapper", info.WrapperDenom, "fee_bps", feeBps)
		sctx.EventManager().EmitEvent(types.NewEventUnderlyingApproved(info).ToSDKEvent())
		return nil
	})

	return info, err
}

// createWrapper registers the wrapper token of an underlying with the bank module
func (k *keeper) createWrapper(sctx sdk.Context, underlying string) string {
	denom := types.WrapperDenom(underlying)

	if !k.bankKeeper.HasDenomMetaData(sctx, denom) {
		k.bankKeeper.SetDenomMetaData(sctx, banktypes.Metadata{
			Description: fmt.Sprintf("principal vault wrapper of %s", underlying),
			DenomUnits: []*banktypes.DenomUnit{
				{Denom: denom, Exponent: 0},
			},
			Base:    denom,
			Display: denom,
			Name:    fmt.Sprintf("Wrapped principal %s", underlying),
			Symbol:  "w" + underlying,
		})
	}

	return denom
}

// SetAlias binds token to underlying without delay. Aliases are append only.
func (g *Governor) SetAlias(sctx sdk.Context, token, underlying string) error {
	return g.k.guarded(sctx, func(sctx sdk.Context) error {
		return g.k.setAlias(sctx, token, underlying)
	})
}

func (g *Governor) QueueSetFee(sctx sdk.Context, underlying string, feeBps uint32) (change types.FeeChange, err error) {
	err = g.k.guarded(sctx, func(sctx sdk.Context) error {
		params, err := g.k.GetParams(sctx)
		if err != nil {
			return err
		}
		if err := params.ValidateFee(feeBps); err != nil {
			return err
		}

		approved, err := g.k.isApprovedUnderlying(sctx, underlying)
		if err != nil {
			return err
		}
		if !approved {
			return types.ErrUnderlyingNotApproved.Wrap(underlying)
		}

		change, err = queueChange(sctx, g.k, "fee "+underlying, slotOf(g.k.pendingFees, underlying), feeBps)
		if err != nil {
			return err
		}

		sctx.EventManager().EmitEvent(types.NewEventFeeQueued(underlying, change).ToSDKEvent())
		return nil
	})

	return change, err
}

func (g *Governor) ExecuteSetFee(sctx sdk.Context, underlying string) (feeBps uint32, err error) {
	err = g.k.guarded(sctx, func(sctx sdk.Context) error {
		feeBps, err = executeChange[uint32](sctx, "fee "+underlying, slotOf(g.k.pendingFees, underlying))
		if err != nil {
			return err
		}

		info, found, err := g.k.GetUnderlying(sctx, underlying)
		if err != nil {
			return err
		}
		if !found || !info.Approved {
			return types.ErrUnderlyingNotApproved.Wrap(underlying)
		}

		info.FeeBps = feeBps
		if err := g.k.underlyings.Set(sctx, underlying, info); err != nil {
			return err
		}

		g.k.Logger(sctx).Info("fee updated", "underlying", underlying, "fee_bps", feeBps)
		sctx.EventManager().EmitEvent(types.NewEventFeeUpdated(underlying, feeBps).ToSDKEvent())
		return nil
	})

	return feeBps, err
}

func (g *Governor) QueueSetDepositLimit(sctx sdk.Context, market string, limit sdkmath.Int) (change types.LimitChange, err error) {
	err = g.k.guarded(sctx, func(sctx sdk.Context) error {
		if limit.IsNil() || limit.IsNegative() {
			return types.ErrInvalidAmount.Wrap("deposit limit must not be negative")
		}

		if _, err := g.k.approvedSeries(sctx, market); err != nil {
			return err
		}

		if err := g.k.checkLimit(sctx, market, limit); err != nil {
			return err
		}

		change, err = queueChange(sctx, g.k, "deposit limit "+market, slotOf(g.k.pendingLimits, market), limit)
		if err != nil {
			return err
		}

		sctx.EventManager().EmitEvent(types.NewEventDepositLimitQueued(market, change).ToSDKEvent())
		return nil
	})

	return change, err
}

func (g *Governor) ExecuteSetDepositLimit(sctx sdk.Context, market string) (limit sdkmath.Int, err error) {
	err = g.k.guarded(sctx, func(sctx sdk.Context) error {
		limit, err = executeChange[sdkmath.Int](sctx, "deposit limit "+market, slotOf(g.k.pendingLimits, market))
		if err != nil {
			return err
		}

		if _, err := g.k.approvedSeries(sctx, market); err != nil {
			return err
		}

		if err := g.k.checkLimit(sctx, market, limit); err != nil {
			return err
		}

		deposits, err := g.k.GetMarketDeposits(sctx, market)
		if err != nil {
			return err
		}

		deposits.DepositLimit = limit
		if err := g.k.deposits.Set(sctx, market, deposits); err != nil {
			return err
		}

		g.k.Logger(sctx).Info("deposit limit set", "market", market, "limit", limit)
		sctx.EventManager().EmitEvent(types.NewEventDepositLimitSet(market, limit).ToSDKEvent())
		return nil
	})

	return limit, err
}

// checkLimit rejects nonzero limits below what the market already holds
func (k *keeper) checkLimit(sctx sdk.Context, market string, limit sdkmath.Int) error {
	if limit.IsZero() {
		return nil
	}

	deposits, err := k.GetMarketDeposits(sctx, market)
	if err != nil {
		return err
	}
	if deposits.TotalDeposited.GT(limit) {
		return types.ErrDepositLimitExceeded.Wrapf("market %s holds %s above limit %s", market, deposits.TotalDeposited, limit)
	}

	return nil
}

func (g *Governor) QueueSetMinDeposit(sctx sdk.Context, amount sdkmath.Int) (change types.PendingChange[sdkmath.Int], err error) {
	err = g.k.guarded(sctx, func(sctx sdk.Context) error {
		if amount.IsNil() || !amount.IsPositive() {
			return types.ErrInvalidAmount.Wrap("min deposit must be positive")
		}

		change, err = queueChange(sctx, g.k, "min deposit", g.k.pendingMinDeposit, amount)
		if err != nil {
			return err
		}

		sctx.EventManager().EmitEvent(types.NewEventMinDepositQueued(change).ToSDKEvent())
		return nil
	})

	return change, err
}

func (g *Governor) ExecuteSetMinDeposit(sctx sdk.Context) (amount sdkmath.Int, err error) {
	err = g.k.guarded(sctx, func(sctx sdk.Context) error {
		amount, err = executeChange[sdkmath.Int](sctx, "min deposit", g.k.pendingMinDeposit)
		if err != nil {
			return err
		}

		if err := g.k.minDeposit.Set(sctx, amount); err != nil {
			return err
		}

		g.k.Logger(sctx).Info("min deposit updated", "amount", amount)
		sctx.EventManager().EmitEvent(types.NewEventMinDepositUpdated(amount).ToSDKEvent())
		return nil
	})

	return amount, err
}
