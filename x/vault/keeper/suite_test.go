package keeper

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pkg.ptvault.dev/node/testutil"
	"pkg.ptvault.dev/node/testutil/state"
	"pkg.ptvault.dev/node/x/vault/imports"
	types "pkg.ptvault.dev/node/x/vault/types"
)

const (
	testUnderlying = "uusdc"
	testMarket     = "market-usdc-dec26"
	testSY         = "syusdc"
	testPT         = "ptusdc-dec26"
	testYT         = "ytusdc-dec26"
	testFeeBps     = uint32(300)
	testTwap       = 30 * time.Minute
)

var testTokens = imports.MarketTokens{SY: testSY, PT: testPT, YT: testYT}

type testSuite struct {
	*state.TestSuite
	keeper    *keeper
	authority string
}

func setupKeeper(t testing.TB) *testSuite {
	t.Helper()

	ssuite := state.SetupTestSuite(t, types.StoreKey)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()

	k := NewKeeper(
		ssuite.StoreKey(),
		authority,
		ssuite.AccountKeeper(),
		ssuite.BankKeeper(),
		ssuite.PriceFeeder(),
		ssuite.MarketKeeper(),
		ssuite.YieldKeeper(),
		ssuite.StreamKeeper(),
		nil,
	).(*keeper)

	require.NoError(t, k.InitGenesis(ssuite.Context(), types.DefaultGenesisState()))

	return &testSuite{
		TestSuite: ssuite,
		keeper:    k,
		authority: authority,
	}
}

func (s *testSuite) governor(t testing.TB) *Governor {
	t.Helper()

	gov, err := s.keeper.Governor(s.authority)
	require.NoError(t, err)

	return gov
}

// elapse moves the block time to at when it lies in the future
func (s *testSuite) elapse(at time.Time) {
	if at.After(s.Context().BlockTime()) {
		s.SetBlockTime(at)
	}
}

func (s *testSuite) mockMarket(market string, tokens imports.MarketTokens, expiry time.Time) {
	s.MarketKeeper().On("ReadTokens", mock.Anything, market).Return(tokens, nil).Maybe()
	s.MarketKeeper().On("Expiry", mock.Anything, market).Return(expiry, nil).Maybe()
}

func (s *testSuite) mockYieldToken(sy, asset string, redeemable []string) {
	s.YieldKeeper().On("UnderlyingYieldAsset", mock.Anything, sy).Return(asset, asset != "").Maybe()
	s.YieldKeeper().On("RedeemableAssets", mock.Anything, sy).Return(redeemable, redeemable != nil).Maybe()
}

func (s *testSuite) approveUnderlying(t testing.TB, denom string, feeBps uint32) types.UnderlyingInfo {
	t.Helper()

	gov := s.governor(t)

	change, err := gov.QueueApproveUnderlying(s.Context(), denom, feeBps)
	require.NoError(t, err)

	s.elapse(change.ETA)

	info, err := gov.ExecuteApproveUnderlying(s.Context(), denom)
	require.NoError(t, err)

	return info
}

func (s *testSuite) addMarket(t testing.TB, market string, twap time.Duration) types.SeriesInfo {
	t.Helper()

	gov := s.governor(t)

	pending, err := gov.QueueAddMarket(s.Context(), market, twap)
	require.NoError(t, err)

	s.elapse(pending.ETA)

	series, err := gov.ExecuteAddMarket(s.Context(), market)
	require.NoError(t, err)

	return series
}

// onboard approves the test underlying and the test market, which expires in 180 days
// and trades at 0.95
func (s *testSuite) onboard(t testing.TB) types.SeriesInfo {
	t.Helper()

	s.approveUnderlying(t, testUnderlying, testFeeBps)
	s.mockMarket(testMarket, testTokens, s.Context().BlockTime().Add(180*24*time.Hour))
	s.mockYieldToken(testSY, testUnderlying, nil)
	s.PriceFeeder().SetRate(testMarket, testutil.Dec(t, "0.95"))

	return s.addMarket(t, testMarket, testTwap)
}

// fund credits an account with principal and underlying tokens
func (s *testSuite) fund(t testing.TB, addr sdk.AccAddress, pt, underlying sdkmath.Int) {
	t.Helper()

	coins := sdk.NewCoins(sdk.NewCoin(testPT, pt), sdk.NewCoin(testUnderlying, underlying))
	require.NoError(t, s.BankKeeper().Fund(s.Context(), addr, coins))
}

func (s *testSuite) balance(addr sdk.AccAddress, denom string) sdkmath.Int {
	return s.BankKeeper().GetBalance(s.Context(), addr, denom).Amount
}

func (s *testSuite) moduleBalance(denom string) sdkmath.Int {
	return s.balance(authtypes.NewModuleAddress(types.ModuleName), denom)
}

func (s *testSuite) totalDeposited(t testing.TB, market string) sdkmath.Int {
	t.Helper()

	deposits, err := s.keeper.GetMarketDeposits(s.Context(), market)
	require.NoError(t, err)

	return deposits.TotalDeposited
}

func requireInt(t testing.TB, expected, actual sdkmath.Int) {
	t.Helper()
	require.True(t, expected.Equal(actual), "expected %s, got %s", expected, actual)
}
