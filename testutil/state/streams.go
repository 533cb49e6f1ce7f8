package state

import (
	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"pkg.ptvault.dev/node/util/collcodec"
	"pkg.ptvault.dev/node/x/vault/imports"
)

// StreamEscrowModule holds the funds of every stream created through Streams
const StreamEscrowModule = "streams"

// Streams is a store backed streaming protocol. Creating a stream moves its
// amount from the sender into the escrow module account.
type Streams struct {
	bank    *Bank
	seq     collections.Sequence
	streams collections.Map[uint64, imports.LinearStream]

	// OnCreate runs before a stream is recorded. A non nil error aborts the creation.
	OnCreate func(sdk.Context, imports.LinearStream) error
}

var _ imports.StreamKeeper = (*Streams)(nil)

func NewStreams(ssvc store.KVStoreService, bank *Bank) *Streams {
	sb := collections.NewSchemaBuilder(ssvc)

	s := &Streams{
		bank:    bank,
		seq:     collections.NewSequence(sb, StreamSequencePrefix, "stream_sequence"),
		streams: collections.NewMap(sb, StreamsPrefix, "streams", collections.Uint64Key, collcodec.JSONValue[imports.LinearStream]()),
	}

	if _, err := sb.Build(); err != nil {
		panic(err)
	}

	return s
}

func (s *Streams) CreateLinearStream(ctx sdk.Context, stream imports.LinearStream) (uint64, error) {
	if s.OnCreate != nil {
		if err := s.OnCreate(ctx, stream); err != nil {
			return 0, err
		}
	}

	if !stream.Amount.IsPositive() {
		return 0, sdkerrors.ErrInvalidCoins.Wrapf("stream amount %s", stream.Amount)
	}
	if stream.Duration <= 0 {
		return 0, sdkerrors.ErrInvalidRequest.Wrapf("stream duration %s", stream.Duration)
	}

	if err := s.bank.SendCoins(ctx, stream.Sender, authtypes.NewModuleAddress(StreamEscrowModule), sdk.NewCoins(stream.Amount)); err != nil {
		return 0, err
	}

	// ids start at 1
	id, err := s.seq.Next(ctx)
	if err != nil {
		return 0, err
	}
	id++

	if err := s.streams.Set(ctx, id, stream); err != nil {
		return 0, err
	}

	return id, nil
}

// Get returns the stream with the given id
func (s *Streams) Get(ctx sdk.Context, id uint64) (imports.LinearStream, bool) {
	stream, err := s.streams.Get(ctx, id)
	if err != nil {
		return imports.LinearStream{}, false
	}
	return stream, true
}

// Escrowed returns the balance held for all streams in denom
func (s *Streams) Escrowed(ctx sdk.Context, denom string) sdk.Coin {
	return s.bank.GetBalance(ctx, authtypes.NewModuleAddress(StreamEscrowModule), denom)
}

// Redeemer returns a redeem implementation of a yield token paying rate units of
// assetOut per share. Shares are burned from the receiver.
func Redeemer(bank *Bank, rate sdkmath.LegacyDec) func(sdk.Context, sdk.AccAddress, string, sdk.Coin, string, sdkmath.Int) (sdk.Coin, error) {
	return func(ctx sdk.Context, receiver sdk.AccAddress, _ string, shares sdk.Coin, assetOut string, minOut sdkmath.Int) (sdk.Coin, error) {
		if err := bank.sub(ctx, receiver, shares); err != nil {
			return sdk.Coin{}, err
		}

		out := sdk.NewCoin(assetOut, rate.MulInt(shares.Amount).TruncateInt())
		if out.Amount.LT(minOut) {
			return sdk.Coin{}, sdkerrors.ErrInvalidRequest.Wrapf("redeemed %s below minimum %s", out, minOut)
		}

		if err := bank.add(ctx, receiver, out); err != nil {
			return sdk.Coin{}, err
		}

		return out, nil
	}
}
