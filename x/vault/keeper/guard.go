package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	types "pkg.ptvault.dev/node/x/vault/types"
)

// guarded runs fn holding the reentrancy lock on a cache wrapped context.
// State and events are committed only when fn succeeds.
func (k *keeper) guarded(sctx sdk.Context, fn func(sdk.Context) error) error {
	if !k.mtx.TryLock() {
		return types.ErrReentrantCall
	}
	defer k.mtx.Unlock()

	cctx, writeFn := sctx.CacheContext()
	if err := fn(cctx); err != nil {
		return err
	}

	writeFn()

	return nil
}
