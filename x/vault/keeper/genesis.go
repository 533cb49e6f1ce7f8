package keeper

import (
	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	types "pkg.ptvault.dev/node/x/vault/types"
)

// InitGenesis loads the complete registry. Series are re-appended in their exported order.
func (k *keeper) InitGenesis(sctx sdk.Context, data *types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return err
	}

	if err := k.SetParams(sctx, data.Params); err != nil {
		return err
	}
	if err := k.setTimelockDelay(sctx, data.TimelockDelay); err != nil {
		return err
	}
	if err := k.minDeposit.Set(sctx, data.MinDeposit); err != nil {
		return err
	}

	for _, u := range data.Underlyings {
		if err := k.underlyings.Set(sctx, u.Denom, u); err != nil {
			return err
		}
	}

	for _, a := range data.Aliases {
		if err := k.aliases.Set(sctx, a.Token, a.Underlying); err != nil {
			return err
		}
	}

	for _, s := range data.Series {
		if err := k.storeSeries(sctx, s); err != nil {
			return err
		}
	}

	for _, m := range data.Markets {
		if err := k.deposits.Set(sctx, m.Market, m); err != nil {
			return err
		}
	}

	for _, p := range data.Pools {
		if err := k.pools.Set(sctx, p.Underlying, p); err != nil {
			return err
		}
	}

	for _, s := range data.Streams {
		if err := k.recordStream(sctx, s); err != nil {
			return err
		}
	}

	for _, p := range data.PendingMarkets {
		if err := k.pendingMarkets.Set(sctx, p.Market, p); err != nil {
			return err
		}
	}

	if data.PendingDelay != nil {
		if err := k.pendingDelay.Set(sctx, *data.PendingDelay); err != nil {
			return err
		}
	}

	if data.PendingMinDeposit != nil {
		if err := k.pendingMinDeposit.Set(sctx, *data.PendingMinDeposit); err != nil {
			return err
		}
	}

	if err := importKeyed(sctx, k.pendingFees, data.PendingFees); err != nil {
		return err
	}
	if err := importKeyed(sctx, k.pendingLimits, data.PendingLimits); err != nil {
		return err
	}

	return importKeyed(sctx, k.pendingUnderlyings, data.PendingUnderlyings)
}

// ExportGenesis returns the complete registry
func (k *keeper) ExportGenesis(sctx sdk.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(sctx)
	if err != nil {
		return nil, err
	}

	delay, err := k.GetTimelockDelay(sctx)
	if err != nil {
		return nil, err
	}

	minDeposit, err := k.GetMinDeposit(sctx)
	if err != nil {
		return nil, err
	}

	gs := &types.GenesisState{
		Params:        params,
		TimelockDelay: delay,
		MinDeposit:    minDeposit,
	}

	if gs.Underlyings, err = values(sctx, k.underlyings); err != nil {
		return nil, err
	}

	err = k.aliases.Walk(sctx, nil, func(token, underlying string) (bool, error) {
		gs.Aliases = append(gs.Aliases, types.Alias{Token: token, Underlying: underlying})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.approved.Walk(sctx, nil, func(_ uint64, market string) (bool, error) {
		series, err := k.series.Get(sctx, market)
		if err != nil {
			return true, err
		}
		gs.Series = append(gs.Series, series)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	if gs.Markets, err = values(sctx, k.deposits); err != nil {
		return nil, err
	}
	if gs.Pools, err = values(sctx, k.pools); err != nil {
		return nil, err
	}
	if gs.Streams, err = values(sctx, k.streams); err != nil {
		return nil, err
	}
	if gs.PendingMarkets, err = values(sctx, k.pendingMarkets); err != nil {
		return nil, err
	}

	if gs.PendingDelay, err = optional(sctx, k.pendingDelay); err != nil {
		return nil, err
	}
	if gs.PendingMinDeposit, err = optional(sctx, k.pendingMinDeposit); err != nil {
		return nil, err
	}

	if gs.PendingFees, err = exportKeyed(sctx, k.pendingFees); err != nil {
		return nil, err
	}
	if gs.PendingLimits, err = exportKeyed(sctx, k.pendingLimits); err != nil {
		return nil, err
	}
	if gs.PendingUnderlyings, err = exportKeyed(sctx, k.pendingUnderlyings); err != nil {
		return nil, err
	}

	return gs, nil
}

func values[K, V any](sctx sdk.Context, m collections.Map[K, V]) ([]V, error) {
	var res []V

	err := m.Walk(sctx, nil, func(_ K, value V) (bool, error) {
		res = append(res, value)
		return false, nil
	})

	return res, err
}

func optional[V any](sctx sdk.Context, item collections.Item[V]) (*V, error) {
	has, err := item.Has(sctx)
	if err != nil || !has {
		return nil, err
	}

	value, err := item.Get(sctx)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func exportKeyed[T any](sctx sdk.Context, m collections.Map[string, types.PendingChange[T]]) ([]types.KeyedChange[T], error) {
	var res []types.KeyedChange[T]

	err := m.Walk(sctx, nil, func(key string, change types.PendingChange[T]) (bool, error) {
		res = append(res, types.KeyedChange[T]{Key: key, Change: change})
		return false, nil
	})

	return res, err
}

func importKeyed[T any](sctx sdk.Context, m collections.Map[string, types.PendingChange[T]], changes []types.KeyedChange[T]) error {
	for _, c := range changes {
		if err := m.Set(sctx, c.Key, c.Change); err != nil {
			return err
		}
	}
	return nil
}
