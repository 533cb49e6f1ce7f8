package keeper

import (
	"sync"
	"time"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus"

	"pkg.ptvault.dev/node/util/collcodec"
	"pkg.ptvault.dev/node/x/vault/imports"
	types "pkg.ptvault.dev/node/x/vault/types"
)

type Keeper interface {
	StoreKey() storetypes.StoreKey
	GetAuthority() string
	NewQuerier() Querier
	Schema() collections.Schema

	GetParams(sdk.Context) (types.Params, error)
	SetParams(sdk.Context, types.Params) error
	GetTimelockDelay(sdk.Context) (time.Duration, error)
	GetMinDeposit(sdk.Context) (sdkmath.Int, error)

	// Governor returns the capability that mutates the registry through the timelock
	Governor(authority string) (*Governor, error)

	GetSeries(sdk.Context, string) (types.SeriesInfo, bool, error)
	GetMarketDeposits(sdk.Context, string) (types.MarketDeposits, error)
	GetUnderlying(sdk.Context, string) (types.UnderlyingInfo, bool, error)
	GetRedemptionPool(sdk.Context, string) (types.RedemptionPool, error)
	ResolveAlias(sdk.Context, string) (string, bool, error)
	ApprovedMarkets(sdk.Context) ([]string, error)

	PreviewDeposit(sdk.Context, string, sdkmath.Int) (types.DepositResult, error)
	Deposit(sdk.Context, sdk.AccAddress, string, sdkmath.Int, sdkmath.Int) (types.DepositResult, error)
	Claim(sdk.Context, sdk.AccAddress, string, sdkmath.Int) error
	SettleMarket(sdk.Context, string) (sdk.Coin, error)
	ClaimSettled(sdk.Context, sdk.AccAddress, string, sdkmath.Int) error

	InitGenesis(sdk.Context, *types.GenesisState) error
	ExportGenesis(sdk.Context) (*types.GenesisState, error)
}

// keeper
//
//	the vault holds principal tokens of approved markets in custody and mints one wrapper token per
//	canonical underlying against them. Governance state (underlyings, aliases, series, pending changes)
//	is only written through the Governor capability, accounting state (deposits, pools, streams)
//	only through the deposit and claim entry points.
type keeper struct {
	skey *storetypes.KVStoreKey
	ssvc store.KVStoreService

	authority string

	// guards every state mutating entry point against reentrance from collaborators
	mtx sync.Mutex

	schema collections.Schema
	Params collections.Item[types.Params]

	underlyings    collections.Map[string, types.UnderlyingInfo]
	aliases        collections.Map[string, string]
	series         collections.Map[string, types.SeriesInfo]
	principalIndex collections.Map[string, string]
	approvedSeq    collections.Sequence
	approved       collections.Map[uint64, string]

	deposits           collections.Map[string, types.MarketDeposits]
	pools              collections.Map[string, types.RedemptionPool]
	streams            collections.Map[uint64, types.StreamRecord]
	streamsByRecipient collections.KeySet[collections.Pair[sdk.AccAddress, uint64]]

	delay      collections.Item[int64]
	minDeposit collections.Item[sdkmath.Int]

	pendingDelay       collections.Item[types.PendingChange[time.Duration]]
	pendingMinDeposit  collections.Item[types.PendingChange[sdkmath.Int]]
	pendingMarkets     collections.Map[string, types.PendingMarket]
	pendingFees        collections.Map[string, types.FeeChange]
	pendingLimits      collections.Map[string, types.LimitChange]
	pendingUnderlyings collections.Map[string, types.UnderlyingApproval]

	accKeeper    imports.AccountKeeper
	bankKeeper   imports.BankKeeper
	oracleKeeper imports.OracleKeeper
	marketKeeper imports.MarketKeeper
	yieldKeeper  imports.YieldTokenKeeper
	streamKeeper imports.StreamKeeper

	metrics *metrics
}

func NewKeeper(
	skey *storetypes.KVStoreKey,
	authority string,
	accKeeper imports.AccountKeeper,
	bankKeeper imports.BankKeeper,
	oracleKeeper imports.OracleKeeper,
	marketKeeper imports.MarketKeeper,
	yieldKeeper imports.YieldTokenKeeper,
	streamKeeper imports.StreamKeeper,
	reg prometheus.Registerer,
) Keeper {
	ssvc := runtime.NewKVStoreService(skey)
	sb := collections.NewSchemaBuilder(ssvc)

	k := &keeper{
		skey:         skey,
		ssvc:         ssvc,
		authority:    authority,
		accKeeper:    accKeeper,
		bankKeeper:   bankKeeper,
		oracleKeeper: oracleKeeper,
		marketKeeper: marketKeeper,
		yieldKeeper:  yieldKeeper,
		streamKeeper: streamKeeper,
		metrics:      newMetrics(reg),
		Params:       collections.NewItem(sb, ParamsKey, "params", collcodec.JSONValue[types.Params]()),

		underlyings:    collections.NewMap(sb, UnderlyingsKey, "underlyings", collections.StringKey, collcodec.JSONValue[types.UnderlyingInfo]()),
		aliases:        collections.NewMap(sb, AliasesKey, "aliases", collections.StringKey, collections.StringValue),
		series:         collections.NewMap(sb, SeriesKey, "series", collections.StringKey, collcodec.JSONValue[types.SeriesInfo]()),
		principalIndex: collections.NewMap(sb, PrincipalIndexKey, "principal_index", collections.StringKey, collections.StringValue),
		approvedSeq:    collections.NewSequence(sb, ApprovedSequenceKey, "approved_sequence"),
		approved:       collections.NewMap(sb, ApprovedMarketsKey, "approved_markets", collections.Uint64Key, collections.StringValue),

		deposits:           collections.NewMap(sb, MarketDepositsKey, "market_deposits", collections.StringKey, collcodec.JSONValue[types.MarketDeposits]()),
		pools:              collections.NewMap(sb, RedemptionPoolsKey, "redemption_pools", collections.StringKey, collcodec.JSONValue[types.RedemptionPool]()),
		streams:            collections.NewMap(sb, StreamsKey, "streams", collections.Uint64Key, collcodec.JSONValue[types.StreamRecord]()),
		streamsByRecipient: collections.NewKeySet(sb, StreamsByRecipientKey, "streams_by_recipient", collections.PairKeyCodec(sdk.AccAddressKey, collections.Uint64Key)),

		delay:      collections.NewItem(sb, TimelockDelayKey, "timelock_delay", collections.Int64Value),
		minDeposit: collections.NewItem(sb, MinDepositKey, "min_deposit", sdk.IntValue),

		pendingDelay:       collections.NewItem(sb, PendingDelayKey, "pending_delay", collcodec.JSONValue[types.PendingChange[time.Duration]]()),
		pendingMinDeposit:  collections.NewItem(sb, PendingMinDepositKey, "pending_min_deposit", collcodec.JSONValue[types.PendingChange[sdkmath.Int]]()),
		pendingMarkets:     collections.NewMap(sb, PendingMarketsKey, "pending_markets", collections.StringKey, collcodec.JSONValue[types.PendingMarket]()),
		pendingFees:        collections.NewMap(sb, PendingFeesKey, "pending_fees", collections.StringKey, collcodec.JSONValue[types.FeeChange]()),
		pendingLimits:      collections.NewMap(sb, PendingLimitsKey, "pending_limits", collections.StringKey, collcodec.JSONValue[types.LimitChange]()),
		pendingUnderlyings: collections.NewMap(sb, PendingUnderlyingsKey, "pending_underlyings", collections.StringKey, collcodec.JSONValue[types.UnderlyingApproval]()),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.schema = schema

	return k
}

// StoreKey returns store key
func (k *keeper) StoreKey() storetypes.StoreKey {
	return k.skey
}

// Schema returns the collections schema of the vault store
func (k *keeper) Schema() collections.Schema {
	return k.schema
}

func (k *keeper) NewQuerier() Querier {
	return Querier{k}
}

func (k *keeper) GetAuthority() string {
	return k.authority
}

func (k *keeper) Logger(sctx sdk.Context) log.Logger {
	return sctx.Logger().With("module", "x/"+types.ModuleName)
}

func (k *keeper) GetParams(ctx sdk.Context) (types.Params, error) {
	return k.Params.Get(ctx)
}

func (k *keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.Params.Set(ctx, params)
}

func (k *keeper) moduleAddress() sdk.AccAddress {
	return k.accKeeper.GetModuleAddress(types.ModuleName)
}
