package keeper

import (
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	types "pkg.ptvault.dev/node/x/vault/types"
)

// burnWrapper takes amount of the wrapper token from owner and destroys it
func (k *keeper) burnWrapper(sctx sdk.Context, owner sdk.AccAddress, wrapper sdk.Coin) error {
	coins := sdk.NewCoins(wrapper)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(sctx, owner, types.ModuleName, coins); err != nil {
		return err
	}
	return k.bankKeeper.BurnCoins(sctx, types.ModuleName, coins)
}

// Claim exchanges wrapper tokens 1:1 for the principal tokens of a matured market held in custody
func (k *keeper) Claim(sctx sdk.Context, sender sdk.AccAddress, ptDenom string, amount sdkmath.Int) (err error) {
	startAt := time.Now()
	defer telemetry.ModuleMeasureSince(types.ModuleName, startAt, opClaim)
	defer func() {
		k.metrics.observe(opClaim, startAt, err)
	}()

	var market string

	err = k.guarded(sctx, func(sctx sdk.Context) error {
		if amount.IsNil() || !amount.IsPositive() {
			return types.ErrInvalidAmount.Wrap("claim amount must be positive")
		}

		var err error
		market, err = k.marketOfPrincipal(sctx, ptDenom)
		if err != nil {
			return err
		}

		series, err := k.approvedSeries(sctx, market)
		if err != nil {
			return err
		}

		if !series.IsMatured(sctx.BlockTime()) {
			return types.ErrMarketNotMatured.Wrapf("market %s matures at %s", market, series.Expiry)
		}

		deposits, err := k.GetMarketDeposits(sctx, market)
		if err != nil {
			return err
		}
		if deposits.Settled {
			return types.ErrMarketSettled.Wrapf("market %s, claim from the %s redemption pool", market, series.Underlying)
		}

		reserve := k.bankKeeper.GetBalance(sctx, k.moduleAddress(), ptDenom)
		if amount.GT(reserve.Amount) {
			return types.ErrInsufficientReserve.Wrapf("%s > %s", amount, reserve.Amount)
		}
		if amount.GT(deposits.TotalDeposited) {
			return types.ErrAccountingMismatch.Wrapf("market %s: %s > %s", market, amount, deposits.TotalDeposited)
		}

		deposits.TotalDeposited = deposits.TotalDeposited.Sub(amount)
		if err := k.deposits.Set(sctx, market, deposits); err != nil {
			return err
		}

		if err := k.burnWrapper(sctx, sender, sdk.NewCoin(series.WrapperDenom, amount)); err != nil {
			return err
		}

		if err := k.bankKeeper.SendCoinsFromModuleToAccount(sctx, types.ModuleName, sender, sdk.NewCoins(sdk.NewCoin(ptDenom, amount))); err != nil {
			return err
		}

		k.Logger(sctx).Debug("claim", "market", market, "sender", sender.String(), "amount", amount)
		sctx.EventManager().EmitEvent(types.NewEventClaim(sender, market, amount).ToSDKEvent())

		return nil
	})
	if err != nil {
		return err
	}

	k.metrics.addVolume(opClaim, market, amount)

	return nil
}

// SettleMarket redeems the principal tokens held for a matured market into its canonical underlying
// and credits them to the redemption pool of that underlying. Anyone may settle.
func (k *keeper) SettleMarket(sctx sdk.Context, market string) (out sdk.Coin, err error) {
	startAt := time.Now()
	defer telemetry.ModuleMeasureSince(types.ModuleName, startAt, opSettleMarket)
	defer func() {
		k.metrics.observe(opSettleMarket, startAt, err)
	}()

	err = k.guarded(sctx, func(sctx sdk.Context) error {
		series, found, err := k.GetSeries(sctx, market)
		if err != nil {
			return err
		}
		if !found {
			return types.ErrMarketNotFound.Wrapf("market %s", market)
		}
		if !series.Approved {
			return types.ErrMarketNotApproved.Wrapf("market %s", market)
		}

		if !series.IsMatured(sctx.BlockTime()) {
			return types.ErrMarketNotMatured.Wrapf("market %s matures at %s", market, series.Expiry)
		}

		deposits, err := k.GetMarketDeposits(sctx, market)
		if err != nil {
			return err
		}
		if deposits.Settled {
			return types.ErrMarketSettled.Wrapf("market %s", market)
		}

		moduleAddr := k.moduleAddress()

		reserve := k.bankKeeper.GetBalance(sctx, moduleAddr, series.PrincipalDenom)
		if !reserve.IsPositive() {
			return types.ErrInsufficientReserve.Wrapf("market %s holds no %s", market, series.PrincipalDenom)
		}

		out, err = k.yieldKeeper.Redeem(sctx, moduleAddr, series.YieldDenom, reserve, series.Underlying, sdkmath.ZeroInt())
		if err != nil {
			return types.ErrRedemptionFailed.Wrapf("market %s: %s", market, err)
		}
		if out.Denom != series.Underlying {
			return types.ErrRedemptionFailed.Wrapf("market %s redeemed into %s, expected %s", market, out.Denom, series.Underlying)
		}

		pool, err := k.GetRedemptionPool(sctx, series.Underlying)
		if err != nil {
			return err
		}
		pool.SettledAsset = pool.SettledAsset.Add(out.Amount)
		if err := k.pools.Set(sctx, series.Underlying, pool); err != nil {
			return err
		}

		deposits.Settled = true
		if err := k.deposits.Set(sctx, market, deposits); err != nil {
			return err
		}

		k.Logger(sctx).Info("market settled", "market", market, "reserve", reserve, "out", out)
		sctx.EventManager().EmitEvent(types.NewEventMarketSettled(market, series.Underlying, reserve.Amount, out.Amount).ToSDKEvent())

		return nil
	})
	if err != nil {
		return sdk.Coin{}, err
	}

	return out, nil
}

// ClaimSettled exchanges wrapper tokens 1:1 for underlying held in the redemption pool
func (k *keeper) ClaimSettled(sctx sdk.Context, sender sdk.AccAddress, underlying string, amount sdkmath.Int) (err error) {
	startAt := time.Now()
	defer telemetry.ModuleMeasureSince(types.ModuleName, startAt, opClaimSettled)
	defer func() {
		k.metrics.observe(opClaimSettled, startAt, err)
	}()

	return k.guarded(sctx, func(sctx sdk.Context) error {
		if amount.IsNil() || !amount.IsPositive() {
			return types.ErrInvalidAmount.Wrap("claim amount must be positive")
		}

		info, found, err := k.GetUnderlying(sctx, underlying)
		if err != nil {
			return err
		}
		if !found || info.WrapperDenom == "" {
			return types.ErrWrapperNotFound.Wrapf("underlying %s", underlying)
		}

		pool, err := k.GetRedemptionPool(sctx, underlying)
		if err != nil {
			return err
		}
		if amount.GT(pool.Claimable()) {
			return types.ErrInsufficientPool.Wrapf("%s > %s", amount, pool.Claimable())
		}

		if err := k.burnWrapper(sctx, sender, sdk.NewCoin(info.WrapperDenom, amount)); err != nil {
			return err
		}

		if err := k.bankKeeper.SendCoinsFromModuleToAccount(sctx, types.ModuleName, sender, sdk.NewCoins(sdk.NewCoin(underlying, amount))); err != nil {
			return err
		}

		pool.TotalClaimed = pool.TotalClaimed.Add(amount)
		if err := k.pools.Set(sctx, underlying, pool); err != nil {
			return err
		}

		k.Logger(sctx).Debug("settled claim", "underlying", underlying, "sender", sender.String(), "amount", amount)
		sctx.EventManager().EmitEvent(types.NewEventClaimSettled(sender, underlying, amount).ToSDKEvent())

		return nil
	})
}
