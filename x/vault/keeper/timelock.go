package keeper

import (
	"context"
	"errors"
	"time"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	types "pkg.ptvault.dev/node/x/vault/types"
)

// pendingSlot is the storage of a single governed value awaiting execution.
// collections.Item satisfies it directly, map entries through mapSlot.
type pendingSlot[T any] interface {
	Has(ctx context.Context) (bool, error)
	Get(ctx context.Context) (types.PendingChange[T], error)
	Set(ctx context.Context, change types.PendingChange[T]) error
	Remove(ctx context.Context) error
}

type mapSlot[T any] struct {
	m   collections.Map[string, types.PendingChange[T]]
	key string
}

func slotOf[T any](m collections.Map[string, types.PendingChange[T]], key string) mapSlot[T] {
	return mapSlot[T]{m: m, key: key}
}

func (s mapSlot[T]) Has(ctx context.Context) (bool, error) {
	return s.m.Has(ctx, s.key)
}

func (s mapSlot[T]) Get(ctx context.Context) (types.PendingChange[T], error) {
	return s.m.Get(ctx, s.key)
}

func (s mapSlot[T]) Set(ctx context.Context, change types.PendingChange[T]) error {
	return s.m.Set(ctx, s.key, change)
}

func (s mapSlot[T]) Remove(ctx context.Context) error {
	return s.m.Remove(ctx, s.key)
}

// queueChange records value in slot, executable once the current timelock delay has elapsed
func queueChange[T any](sctx sdk.Context, k *keeper, name string, slot pendingSlot[T], value T) (types.PendingChange[T], error) {
	var change types.PendingChange[T]

	queued, err := slot.Has(sctx)
	if err != nil {
		return change, err
	}
	if queued {
		return change, types.ErrAlreadyQueued.Wrap(name)
	}

	delay, err := k.GetTimelockDelay(sctx)
	if err != nil {
		return change, err
	}

	change = types.PendingChange[T]{
		Value: value,
		ETA:   sctx.BlockTime().Add(delay),
	}

	if err := slot.Set(sctx, change); err != nil {
		return change, err
	}

	k.Logger(sctx).Info("change queued", "item", name, "eta", change.ETA)

	return change, nil
}

// executeChange consumes the change queued in slot once its ETA has passed
func executeChange[T any](sctx sdk.Context, name string, slot pendingSlot[T]) (T, error) {
	var zero T

	change, err := slot.Get(sctx)
	if errors.Is(err, collections.ErrNotFound) {
		return zero, types.ErrNotQueued.Wrap(name)
	}
	if err != nil {
		return zero, err
	}

	if !change.Ready(sctx.BlockTime()) {
		return zero, types.ErrTimelockNotElapsed.Wrapf("%s executable at %s", name, change.ETA)
	}

	if err := slot.Remove(sctx); err != nil {
		return zero, err
	}

	return change.Value, nil
}

// bootstrapping reports whether no timelock delay was ever configured and no market was approved yet
func (k *keeper) bootstrapping(sctx sdk.Context) (bool, error) {
	delay, err := k.GetTimelockDelay(sctx)
	if err != nil || delay != 0 {
		return false, err
	}

	count, err := k.approvedCount(sctx)
	if err != nil {
		return false, err
	}

	return count == 0, nil
}
