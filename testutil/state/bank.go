package state

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"pkg.ptvault.dev/node/util/collcodec"
	"pkg.ptvault.dev/node/x/vault/imports"
)

// test keepers share the store of the module under test, under prefixes it never uses
var (
	BalancesPrefix       = collections.NewPrefix([]byte{0xf0, 0x00})
	DenomMetadataPrefix  = collections.NewPrefix([]byte{0xf0, 0x01})
	StreamSequencePrefix = collections.NewPrefix([]byte{0xf1, 0x00})
	StreamsPrefix        = collections.NewPrefix([]byte{0xf1, 0x01})
)

// Bank is a store backed bank keeper tracking balances and denom metadata.
// Module accounts are addressed with authtypes.NewModuleAddress.
type Bank struct {
	balances collections.Map[collections.Pair[sdk.AccAddress, string], sdkmath.Int]
	metadata collections.Map[string, banktypes.Metadata]
}

var _ imports.BankKeeper = (*Bank)(nil)

func NewBank(ssvc store.KVStoreService) *Bank {
	sb := collections.NewSchemaBuilder(ssvc)

	b := &Bank{
		balances: collections.NewMap(sb, BalancesPrefix, "balances", collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey), sdk.IntValue),
		metadata: collections.NewMap(sb, DenomMetadataPrefix, "denom_metadata", collections.StringKey, collcodec.JSONValue[banktypes.Metadata]()),
	}

	if _, err := sb.Build(); err != nil {
		panic(err)
	}

	return b
}

// Fund credits coins to addr out of thin air
func (b *Bank) Fund(ctx context.Context, addr sdk.AccAddress, coins sdk.Coins) error {
	for _, coin := range coins {
		if err := b.add(ctx, addr, coin); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bank) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	amount, err := b.balances.Get(ctx, collections.Join(addr, denom))
	if err != nil {
		amount = sdkmath.ZeroInt()
	}
	return sdk.NewCoin(denom, amount)
}

func (b *Bank) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	for _, coin := range amt {
		if err := b.sub(ctx, fromAddr, coin); err != nil {
			return err
		}
		if err := b.add(ctx, toAddr, coin); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bank) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.SendCoins(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (b *Bank) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.SendCoins(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (b *Bank) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	return b.Fund(ctx, authtypes.NewModuleAddress(moduleName), amt)
}

func (b *Bank) BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	addr := authtypes.NewModuleAddress(moduleName)
	for _, coin := range amt {
		if err := b.sub(ctx, addr, coin); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bank) HasDenomMetaData(ctx context.Context, denom string) bool {
	has, err := b.metadata.Has(ctx, denom)
	return err == nil && has
}

func (b *Bank) SetDenomMetaData(ctx context.Context, denomMetaData banktypes.Metadata) {
	if err := b.metadata.Set(ctx, denomMetaData.Base, denomMetaData); err != nil {
		panic(err)
	}
}

// GetDenomMetaData returns the metadata registered for denom
func (b *Bank) GetDenomMetaData(ctx context.Context, denom string) (banktypes.Metadata, bool) {
	md, err := b.metadata.Get(ctx, denom)
	if err != nil {
		return banktypes.Metadata{}, false
	}
	return md, true
}

func (b *Bank) add(ctx context.Context, addr sdk.AccAddress, coin sdk.Coin) error {
	if coin.IsNegative() {
		return sdkerrors.ErrInvalidCoins.Wrap(coin.String())
	}

	balance := b.GetBalance(ctx, addr, coin.Denom)
	return b.balances.Set(ctx, collections.Join(addr, coin.Denom), balance.Amount.Add(coin.Amount))
}

func (b *Bank) sub(ctx context.Context, addr sdk.AccAddress, coin sdk.Coin) error {
	if coin.IsNegative() {
		return sdkerrors.ErrInvalidCoins.Wrap(coin.String())
	}

	balance := b.GetBalance(ctx, addr, coin.Denom)
	if balance.Amount.LT(coin.Amount) {
		return sdkerrors.ErrInsufficientFunds.Wrapf("spendable balance %s is smaller than %s", balance, coin)
	}

	return b.balances.Set(ctx, collections.Join(addr, coin.Denom), balance.Amount.Sub(coin.Amount))
}

// ModuleAccounts resolves module names to their deterministic addresses
type ModuleAccounts struct{}

var _ imports.AccountKeeper = ModuleAccounts{}

func (ModuleAccounts) GetModuleAddress(moduleName string) sdk.AccAddress {
	return authtypes.NewModuleAddress(moduleName)
}
