package state

import (
	"testing"
	"time"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdktestutil "github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"pkg.ptvault.dev/node/testutil"
	emocks "pkg.ptvault.dev/node/testutil/cosmos/mocks"
	oracletestutil "pkg.ptvault.dev/node/testutil/oracle"
)

// GenesisTime is the block time every suite starts at
var GenesisTime = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// TestSuite encapsulates an in-memory store together with the keepers
// the vault depends on, for ephemeral testing.
type TestSuite struct {
	t       testing.TB
	ctx     sdk.Context
	skey    *storetypes.KVStoreKey
	keepers Keepers
}

type Keepers struct {
	Account     ModuleAccounts
	Bank        *Bank
	Streams     *Streams
	PriceFeeder *oracletestutil.PriceFeeder
	Market      *emocks.MarketKeeper
	Yield       *emocks.YieldTokenKeeper
}

// SetupTestSuite provides toolkit for accessing stores and keepers
// for complex data interactions.
func SetupTestSuite(t testing.TB, storeKey string) *TestSuite {
	return SetupTestSuiteWithKeepers(t, storeKey, Keepers{})
}

func SetupTestSuiteWithKeepers(t testing.TB, storeKey string, keepers Keepers) *TestSuite {
	t.Helper()

	skey := storetypes.NewKVStoreKey(storeKey)
	tkey := storetypes.NewTransientStoreKey("transient_test")

	ctx := sdktestutil.DefaultContextWithDB(t, skey, tkey).Ctx.
		WithBlockHeight(1).
		WithBlockTime(GenesisTime).
		WithLogger(testutil.Logger(t))

	ssvc := runtime.NewKVStoreService(skey)

	if keepers.Bank == nil {
		keepers.Bank = NewBank(ssvc)
	}

	if keepers.Streams == nil {
		keepers.Streams = NewStreams(ssvc, keepers.Bank)
	}

	if keepers.PriceFeeder == nil {
		keepers.PriceFeeder = oracletestutil.NewPriceFeeder()
	}

	if keepers.Market == nil {
		// no expectations are set during setup, each test sets the markets it uses
		keepers.Market = &emocks.MarketKeeper{}
	}

	if keepers.Yield == nil {
		keepers.Yield = &emocks.YieldTokenKeeper{}
	}

	return &TestSuite{
		t:       t,
		ctx:     ctx,
		skey:    skey,
		keepers: keepers,
	}
}

func (ts *TestSuite) PrepareMocks(fn func(ts *TestSuite)) {
	fn(ts)
}

// StoreKey of the module under test
func (ts *TestSuite) StoreKey() *storetypes.KVStoreKey {
	return ts.skey
}

// Context of the current block
func (ts *TestSuite) Context() sdk.Context {
	return ts.ctx
}

// SetBlockHeight provides arbitrarily setting the chain's block height.
func (ts *TestSuite) SetBlockHeight(height int64) {
	ts.ctx = ts.ctx.WithBlockHeight(height)
}

// AdvanceTime moves the block time forward by d and starts a new block
func (ts *TestSuite) AdvanceTime(d time.Duration) {
	ts.ctx = ts.ctx.
		WithBlockHeight(ts.ctx.BlockHeight() + 1).
		WithBlockTime(ts.ctx.BlockTime().Add(d)).
		WithEventManager(sdk.NewEventManager())
}

// SetBlockTime sets the block time and starts a new block
func (ts *TestSuite) SetBlockTime(at time.Time) {
	ts.AdvanceTime(at.Sub(ts.ctx.BlockTime()))
}

// AccountKeeper resolves module accounts
func (ts *TestSuite) AccountKeeper() ModuleAccounts {
	return ts.keepers.Account
}

// BankKeeper key store
func (ts *TestSuite) BankKeeper() *Bank {
	return ts.keepers.Bank
}

// StreamKeeper key store
func (ts *TestSuite) StreamKeeper() *Streams {
	return ts.keepers.Streams
}

// PriceFeeder returns the oracle price feeder for testing
func (ts *TestSuite) PriceFeeder() *oracletestutil.PriceFeeder {
	return ts.keepers.PriceFeeder
}

// MarketKeeper mock
func (ts *TestSuite) MarketKeeper() *emocks.MarketKeeper {
	return ts.keepers.Market
}

// YieldKeeper mock
func (ts *TestSuite) YieldKeeper() *emocks.YieldTokenKeeper {
	return ts.keepers.Yield
}
