package keeper

import (
	"errors"
	"time"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	types "pkg.ptvault.dev/node/x/vault/types"
)

// maxAliasHops bounds alias resolution
const maxAliasHops = 8

func (k *keeper) GetTimelockDelay(sctx sdk.Context) (time.Duration, error) {
	d, err := k.delay.Get(sctx)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, nil
	}
	return time.Duration(d), err
}

func (k *keeper) setTimelockDelay(sctx sdk.Context, d time.Duration) error {
	return k.delay.Set(sctx, int64(d))
}

func (k *keeper) GetMinDeposit(sctx sdk.Context) (sdkmath.Int, error) {
	amount, err := k.minDeposit.Get(sctx)
	if errors.Is(err, collections.ErrNotFound) {
		params, err := k.GetParams(sctx)
		if err != nil {
			return sdkmath.Int{}, err
		}
		return params.InitialMinDeposit, nil
	}
	return amount, err
}

// GetSeries returns the series of an approved market by value
func (k *keeper) GetSeries(sctx sdk.Context, market string) (types.SeriesInfo, bool, error) {
	series, err := k.series.Get(sctx, market)
	if errors.Is(err, collections.ErrNotFound) {
		return types.SeriesInfo{}, false, nil
	}
	if err != nil {
		return types.SeriesInfo{}, false, err
	}
	return series, true, nil
}

func (k *keeper) approvedSeries(sctx sdk.Context, market string) (types.SeriesInfo, error) {
	series, found, err := k.GetSeries(sctx, market)
	if err != nil {
		return series, err
	}
	if !found || !series.Approved {
		return series, types.ErrMarketNotApproved.Wrapf("market %s", market)
	}
	return series, nil
}

// GetMarketDeposits returns the deposit counters of a market, zero valued when none were recorded
func (k *keeper) GetMarketDeposits(sctx sdk.Context, market string) (types.MarketDeposits, error) {
	deposits, err := k.deposits.Get(sctx, market)
	if errors.Is(err, collections.ErrNotFound) {
		return types.NewMarketDeposits(market), nil
	}
	return deposits, err
}

func (k *keeper) GetUnderlying(sctx sdk.Context, denom string) (types.UnderlyingInfo, bool, error) {
	info, err := k.underlyings.Get(sctx, denom)
	if errors.Is(err, collections.ErrNotFound) {
		return types.UnderlyingInfo{Denom: denom}, false, nil
	}
	if err != nil {
		return info, false, err
	}
	return info, true, nil
}

func (k *keeper) isApprovedUnderlying(sctx sdk.Context, denom string) (bool, error) {
	info, found, err := k.GetUnderlying(sctx, denom)
	if err != nil {
		return false, err
	}
	return found && info.Approved, nil
}

// GetRedemptionPool returns the redemption pool of an underlying, empty when nothing was settled yet
func (k *keeper) GetRedemptionPool(sctx sdk.Context, underlying string) (types.RedemptionPool, error) {
	pool, err := k.pools.Get(sctx, underlying)
	if errors.Is(err, collections.ErrNotFound) {
		return types.NewRedemptionPool(underlying), nil
	}
	return pool, err
}

// ResolveAlias follows the alias chain of token and returns the canonical underlying it ends at
func (k *keeper) ResolveAlias(sctx sdk.Context, token string) (string, bool, error) {
	current := token
	found := false

	for i := 0; i < maxAliasHops; i++ {
		next, err := k.aliases.Get(sctx, current)
		if errors.Is(err, collections.ErrNotFound) {
			return current, found, nil
		}
		if err != nil {
			return "", false, err
		}
		if next == token {
			return "", false, types.ErrAliasConflict.Wrapf("alias cycle through %s", token)
		}
		current = next
		found = true
	}

	return "", false, types.ErrAliasConflict.Wrapf("alias chain of %s exceeds %d hops", token, maxAliasHops)
}

// canonicalOf resolves token to an underlying either through its aliases or because it is an
// approved underlying itself
func (k *keeper) canonicalOf(sctx sdk.Context, token string) (string, bool, error) {
	underlying, found, err := k.ResolveAlias(sctx, token)
	if err != nil || found {
		return underlying, found, err
	}

	approved, err := k.isApprovedUnderlying(sctx, token)
	if err != nil {
		return "", false, err
	}

	return token, approved, nil
}

// setAlias binds token to underlying. Binding a token to the underlying it already resolves to is a
// no-op, binding it to a different one fails.
func (k *keeper) setAlias(sctx sdk.Context, token, underlying string) error {
	if token == "" || underlying == "" {
		return types.ErrInvalidDenom.Wrap("alias: empty token or underlying")
	}

	target, _, err := k.ResolveAlias(sctx, underlying)
	if err != nil {
		return err
	}
	if target == token {
		return types.ErrAliasConflict.Wrapf("aliasing %s to %s creates a cycle", token, underlying)
	}

	existing, err := k.aliases.Get(sctx, token)
	switch {
	case err == nil:
		current, _, err := k.ResolveAlias(sctx, existing)
		if err != nil {
			return err
		}
		if current != target {
			return types.ErrAliasConflict.Wrapf("%s already resolves to %s, not %s", token, current, target)
		}
		return nil
	case !errors.Is(err, collections.ErrNotFound):
		return err
	}

	approved, err := k.isApprovedUnderlying(sctx, token)
	if err != nil {
		return err
	}
	if approved {
		return types.ErrAliasConflict.Wrapf("%s is an approved underlying", token)
	}

	if err := k.aliases.Set(sctx, token, target); err != nil {
		return err
	}

	k.Logger(sctx).Info("alias set", "token", token, "underlying", target)
	sctx.EventManager().EmitEvent(types.NewEventAliasSet(token, target).ToSDKEvent())

	return nil
}

// ApprovedMarkets lists approved markets in approval order
func (k *keeper) ApprovedMarkets(sctx sdk.Context) ([]string, error) {
	var res []string

	err := k.approved.Walk(sctx, nil, func(_ uint64, market string) (bool, error) {
		res = append(res, market)
		return false, nil
	})

	return res, err
}

func (k *keeper) approvedCount(sctx sdk.Context) (uint64, error) {
	return k.approvedSeq.Peek(sctx)
}

func (k *keeper) marketOfPrincipal(sctx sdk.Context, denom string) (string, error) {
	market, err := k.principalIndex.Get(sctx, denom)
	if errors.Is(err, collections.ErrNotFound) {
		return "", types.ErrMarketNotFound.Wrapf("principal token %s", denom)
	}
	return market, err
}

// storeSeries records a newly approved market and appends it to the approved list
func (k *keeper) storeSeries(sctx sdk.Context, series types.SeriesInfo) error {
	if err := k.series.Set(sctx, series.Market, series); err != nil {
		return err
	}
	if err := k.principalIndex.Set(sctx, series.PrincipalDenom, series.Market); err != nil {
		return err
	}

	has, err := k.deposits.Has(sctx, series.Market)
	if err != nil {
		return err
	}
	if !has {
		if err := k.deposits.Set(sctx, series.Market, types.NewMarketDeposits(series.Market)); err != nil {
			return err
		}
	}

	idx, err := k.approvedSeq.Next(sctx)
	if err != nil {
		return err
	}

	return k.approved.Set(sctx, idx, series.Market)
}
