package keeper

import (
	"errors"
	"time"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"pkg.ptvault.dev/node/x/vault/imports"
	types "pkg.ptvault.dev/node/x/vault/types"
)

// resolveUnderlying finds the canonical underlying of a yield token. The alias of the yield token wins,
// then its yield asset, then the first of its redeemable assets that is aliased or approved.
func (k *keeper) resolveUnderlying(sctx sdk.Context, sy string) (string, error) {
	underlying, found, err := k.ResolveAlias(sctx, sy)
	if err != nil {
		return "", err
	}
	if found {
		return underlying, nil
	}

	if asset, ok := k.yieldKeeper.UnderlyingYieldAsset(sctx, sy); ok && asset != "" {
		underlying, found, err = k.canonicalOf(sctx, asset)
		if err != nil {
			return "", err
		}
		if found {
			return underlying, nil
		}
	}

	if assets, ok := k.yieldKeeper.RedeemableAssets(sctx, sy); ok {
		for _, asset := range assets {
			underlying, found, err = k.canonicalOf(sctx, asset)
			if err != nil {
				return "", err
			}
			if found {
				return underlying, nil
			}
		}
	}

	return "", types.ErrUnderlyingNotResolved.Wrapf("yield token %s", sy)
}

func (k *keeper) oracleState(sctx sdk.Context, market string, twap time.Duration) (imports.OracleState, error) {
	state, err := k.oracleKeeper.GetOracleState(sctx, market, twap)
	if err != nil {
		return state, types.ErrOracleQuery.Wrapf("market %s: %s", market, err)
	}
	return state, nil
}

func (k *keeper) queueAddMarket(sctx sdk.Context, market string, twap time.Duration) (types.PendingMarket, error) {
	var pending types.PendingMarket

	params, err := k.GetParams(sctx)
	if err != nil {
		return pending, err
	}

	if err := params.ValidateTwapDuration(twap); err != nil {
		return pending, err
	}

	queued, err := k.pendingMarkets.Has(sctx, market)
	if err != nil {
		return pending, err
	}
	if queued {
		return pending, types.ErrAlreadyQueued.Wrapf("market %s", market)
	}

	if _, found, err := k.GetSeries(sctx, market); err != nil {
		return pending, err
	} else if found {
		return pending, types.ErrMarketAlreadyApproved.Wrapf("market %s", market)
	}

	tokens, err := k.marketKeeper.ReadTokens(sctx, market)
	if err != nil {
		return pending, types.ErrMarketNotFound.Wrapf("market %s: %s", market, err)
	}

	underlying, err := k.resolveUnderlying(sctx, tokens.SY)
	if err != nil {
		return pending, err
	}

	approved, err := k.isApprovedUnderlying(sctx, underlying)
	if err != nil {
		return pending, err
	}
	if !approved {
		return pending, types.ErrUnderlyingNotApproved.Wrapf("market %s resolves to %s", market, underlying)
	}

	if err := k.setAlias(sctx, tokens.SY, underlying); err != nil {
		return pending, err
	}

	state, err := k.oracleState(sctx, market, twap)
	if err != nil {
		return pending, err
	}
	if state.IncreaseCardinalityRequired {
		if err := k.marketKeeper.IncreaseObservationCapacity(sctx, market, state.CardinalityRequired); err != nil {
			return pending, types.ErrObservationCapacity.Wrapf("market %s to %d: %s", market, state.CardinalityRequired, err)
		}
	}

	bootstrap, err := k.bootstrapping(sctx)
	if err != nil {
		return pending, err
	}

	eta := sctx.BlockTime()
	if bootstrap {
		if err := k.setTimelockDelay(sctx, params.MinTimelockDelay); err != nil {
			return pending, err
		}
		k.Logger(sctx).Info("timelock bootstrapped", "market", market, "delay", params.MinTimelockDelay)
	} else {
		delay, err := k.GetTimelockDelay(sctx)
		if err != nil {
			return pending, err
		}
		eta = eta.Add(delay)
	}

	pending = types.PendingMarket{
		Market:       market,
		TwapDuration: twap,
		ETA:          eta,
		Underlying:   underlying,
		YieldDenom:   tokens.SY,
	}

	if err := k.pendingMarkets.Set(sctx, market, pending); err != nil {
		return pending, err
	}

	k.Logger(sctx).Info("market queued", "market", market, "underlying", underlying, "eta", eta)
	sctx.EventManager().EmitEvent(types.NewEventMarketQueued(pending).ToSDKEvent())

	return pending, nil
}

func (k *keeper) executeAddMarket(sctx sdk.Context, market string) (types.SeriesInfo, error) {
	var series types.SeriesInfo

	pending, err := k.pendingMarkets.Get(sctx, market)
	if errors.Is(err, collections.ErrNotFound) {
		return series, types.ErrNotQueued.Wrapf("market %s", market)
	}
	if err != nil {
		return series, err
	}

	now := sctx.BlockTime()
	if !pending.Ready(now) {
		return series, types.ErrTimelockNotElapsed.Wrapf("market %s executable at %s", market, pending.ETA)
	}

	state, err := k.oracleState(sctx, market, pending.TwapDuration)
	if err != nil {
		return series, err
	}
	if !state.Ready() {
		if state.IncreaseCardinalityRequired {
			return series, types.ErrOracleNotReady.Wrapf("market %s requires cardinality %d", market, state.CardinalityRequired)
		}
		return series, types.ErrOracleNotReady.Wrapf("market %s lacks %s of observations", market, pending.TwapDuration)
	}

	if _, found, err := k.GetSeries(sctx, market); err != nil {
		return series, err
	} else if found {
		return series, types.ErrMarketAlreadyApproved.Wrapf("market %s", market)
	}

	expiry, err := k.marketKeeper.Expiry(sctx, market)
	if err != nil {
		return series, types.ErrMarketNotFound.Wrapf("market %s: %s", market, err)
	}
	if !now.Before(expiry) {
		return series, types.ErrMarketMatured.Wrapf("market %s expired at %s", market, expiry)
	}

	tokens, err := k.marketKeeper.ReadTokens(sctx, market)
	if err != nil {
		return series, types.ErrMarketNotFound.Wrapf("market %s: %s", market, err)
	}

	if has, err := k.principalIndex.Has(sctx, tokens.PT); err != nil {
		return series, err
	} else if has {
		return series, types.ErrMarketAlreadyApproved.Wrapf("principal token %s already bound", tokens.PT)
	}

	info, found, err := k.GetUnderlying(sctx, pending.Underlying)
	if err != nil {
		return series, err
	}
	if !found || info.WrapperDenom == "" {
		return series, types.ErrWrapperNotFound.Wrapf("underlying %s", pending.Underlying)
	}

	series = types.SeriesInfo{
		Market:         market,
		Approved:       true,
		TwapDuration:   pending.TwapDuration,
		FeeBps:         info.FeeBps,
		Expiry:         expiry.UTC(),
		PrincipalDenom: tokens.PT,
		YieldDenom:     pending.YieldDenom,
		WrapperDenom:   info.WrapperDenom,
		Underlying:     pending.Underlying,
		ApprovedAt:     now.UTC(),
	}

	if err := k.storeSeries(sctx, series); err != nil {
		return series, err
	}

	if err := k.pendingMarkets.Remove(sctx, market); err != nil {
		return series, err
	}

	k.Logger(sctx).Info("market approved", "market", market, "principal", tokens.PT, "wrapper", info.WrapperDenom, "expiry", expiry)
	sctx.EventManager().EmitEvent(types.NewEventMarketApproved(series).ToSDKEvent())

	return series, nil
}
