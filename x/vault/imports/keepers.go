package imports

import (
	"context"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	HasDenomMetaData(ctx context.Context, denom string) bool
	SetDenomMetaData(ctx context.Context, denomMetaData banktypes.Metadata)
}

type AccountKeeper interface {
	GetModuleAddress(moduleName string) sdk.AccAddress
}

// OracleState reports whether the oracle of a market can serve a TWAP of the requested window
type OracleState struct {
	IncreaseCardinalityRequired bool
	CardinalityRequired         uint16
	OldestObservationSatisfied  bool
}

// Ready reports whether the oracle can produce the requested average without further action
func (s OracleState) Ready() bool {
	return !s.IncreaseCardinalityRequired && s.OldestObservationSatisfied
}

type OracleKeeper interface {
	// GetPtToAssetRate returns the TWAP of the principal token priced in the underlying asset,
	// where one equals par
	GetPtToAssetRate(ctx sdk.Context, market string, twap time.Duration) (math.LegacyDec, error)
	GetOracleState(ctx sdk.Context, market string, twap time.Duration) (OracleState, error)
}

// MarketTokens are the denoms a market is built on
type MarketTokens struct {
	SY string
	PT string
	YT string
}

type MarketKeeper interface {
	Expiry(ctx sdk.Context, market string) (time.Time, error)
	ReadTokens(ctx sdk.Context, market string) (MarketTokens, error)
	IncreaseObservationCapacity(ctx sdk.Context, market string, cardinality uint16) error
}

type YieldTokenKeeper interface {
	// RedeemableAssets returns false when the yield token does not expose its output assets
	RedeemableAssets(ctx sdk.Context, sy string) ([]string, bool)
	// UnderlyingYieldAsset returns false when the yield token does not expose its yield asset
	UnderlyingYieldAsset(ctx sdk.Context, sy string) (string, bool)
	// Redeem burns shares held by the receiver and pays out assetOut
	Redeem(ctx sdk.Context, receiver sdk.AccAddress, sy string, shares sdk.Coin, assetOut string, minOut math.Int) (sdk.Coin, error)
}

// LinearStream configures a linear vesting stream
type LinearStream struct {
	Sender       sdk.AccAddress
	Recipient    sdk.AccAddress
	Amount       sdk.Coin
	Cliff        time.Duration
	Duration     time.Duration
	Cancelable   bool
	Transferable bool
}

type StreamKeeper interface {
	CreateLinearStream(ctx sdk.Context, stream LinearStream) (uint64, error)
}
