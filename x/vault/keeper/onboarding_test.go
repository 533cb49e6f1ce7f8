package keeper

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pkg.ptvault.dev/node/x/vault/imports"
	types "pkg.ptvault.dev/node/x/vault/types"
)

func TestAddMarketBootstrap(t *testing.T) {
	s := setupKeeper(t)
	s.approveUnderlying(t, testUnderlying, testFeeBps)

	expiry := s.Context().BlockTime().Add(90 * 24 * time.Hour)
	s.mockMarket(testMarket, testTokens, expiry)
	s.mockYieldToken(testSY, testUnderlying, nil)

	gov := s.governor(t)

	pending, err := gov.QueueAddMarket(s.Context(), testMarket, testTwap)
	require.NoError(t, err)
	require.Equal(t, s.Context().BlockTime(), pending.ETA)
	require.Equal(t, testUnderlying, pending.Underlying)

	delay, err := s.keeper.GetTimelockDelay(s.Context())
	require.NoError(t, err)
	require.Equal(t, types.DefaultMinTimelockDelay, delay)

	series, err := gov.ExecuteAddMarket(s.Context(), testMarket)
	require.NoError(t, err)

	assert.True(t, series.Approved)
	assert.Equal(t, testTwap, series.TwapDuration)
	assert.Equal(t, testFeeBps, series.FeeBps)
	assert.Equal(t, expiry, series.Expiry)
	assert.Equal(t, testPT, series.PrincipalDenom)
	assert.Equal(t, testSY, series.YieldDenom)
	assert.Equal(t, types.WrapperDenom(testUnderlying), series.WrapperDenom)
	assert.Equal(t, testUnderlying, series.Underlying)

	markets, err := s.keeper.ApprovedMarkets(s.Context())
	require.NoError(t, err)
	require.Equal(t, []string{testMarket}, markets)

	underlying, found, err := s.keeper.ResolveAlias(s.Context(), testSY)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, testUnderlying, underlying)

	// approving twice fails
	_, err = gov.QueueAddMarket(s.Context(), testMarket, testTwap)
	require.ErrorIs(t, err, types.ErrMarketAlreadyApproved)

	_, err = gov.ExecuteAddMarket(s.Context(), testMarket)
	require.ErrorIs(t, err, types.ErrNotQueued)
}

func TestAddMarketTimelocked(t *testing.T) {
	s := setupKeeper(t)
	s.onboard(t)
	gov := s.governor(t)

	const market = "market-usdc-jun27"
	s.mockMarket(market, imports.MarketTokens{SY: testSY, PT: "ptusdc-jun27", YT: "ytusdc-jun27"}, s.Context().BlockTime().Add(365*24*time.Hour))

	_, err := gov.QueueAddMarket(s.Context(), market, 10*time.Minute)
	require.ErrorIs(t, err, types.ErrInvalidTwapDuration)

	pending, err := gov.QueueAddMarket(s.Context(), market, time.Hour)
	require.NoError(t, err)
	require.Equal(t, s.Context().BlockTime().Add(time.Hour), pending.ETA)

	_, err = gov.QueueAddMarket(s.Context(), market, time.Hour)
	require.ErrorIs(t, err, types.ErrAlreadyQueued)

	_, err = gov.ExecuteAddMarket(s.Context(), market)
	require.ErrorIs(t, err, types.ErrTimelockNotElapsed)

	s.elapse(pending.ETA)

	series, err := gov.ExecuteAddMarket(s.Context(), market)
	require.NoError(t, err)
	require.Equal(t, time.Hour, series.TwapDuration)

	markets, err := s.keeper.ApprovedMarkets(s.Context())
	require.NoError(t, err)
	require.Equal(t, []string{testMarket, market}, markets)
}

func TestResolveUnderlying(t *testing.T) {
	s := setupKeeper(t)
	s.approveUnderlying(t, testUnderlying, testFeeBps)
	s.approveUnderlying(t, "udai", testFeeBps)
	gov := s.governor(t)

	require.NoError(t, gov.SetAlias(s.Context(), "ausdc", testUnderlying))
	require.NoError(t, gov.SetAlias(s.Context(), "sydai", "udai"))

	s.mockYieldToken("sydai", testUnderlying, []string{testUnderlying})
	s.mockYieldToken("syausdc", "ausdc", nil)
	s.mockYieldToken("symulti", "", []string{"ufoo", "ausdc", "udai"})
	s.mockYieldToken("syfoo", "ufoo", []string{"ufoo"})
	s.mockYieldToken("syopaque", "", nil)

	tests := []struct {
		sy       string
		expected string
		err      error
	}{
		// the alias of the yield token wins over everything it reports
		{sy: "sydai", expected: "udai"},
		// the yield asset resolves through its alias
		{sy: "syausdc", expected: testUnderlying},
		// the first resolvable redeemable asset
		{sy: "symulti", expected: testUnderlying},
		{sy: "syfoo", err: types.ErrUnderlyingNotResolved},
		{sy: "syopaque", err: types.ErrUnderlyingNotResolved},
	}

	for _, tc := range tests {
		t.Run(tc.sy, func(t *testing.T) {
			underlying, err := s.keeper.resolveUnderlying(s.Context(), tc.sy)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, underlying)
		})
	}
}

func TestAddMarketUnderlyingNotApproved(t *testing.T) {
	s := setupKeeper(t)
	s.approveUnderlying(t, testUnderlying, testFeeBps)
	gov := s.governor(t)

	require.NoError(t, gov.SetAlias(s.Context(), "weth", "ueth"))

	const market = "market-eth-dec26"
	s.mockMarket(market, imports.MarketTokens{SY: "syeth", PT: "pteth-dec26", YT: "yteth-dec26"}, s.Context().BlockTime().Add(time.Hour*24*30))
	s.mockYieldToken("syeth", "weth", nil)

	_, err := gov.QueueAddMarket(s.Context(), market, testTwap)
	require.ErrorIs(t, err, types.ErrUnderlyingNotApproved)
}

func TestAddMarketUnknown(t *testing.T) {
	s := setupKeeper(t)
	s.approveUnderlying(t, testUnderlying, testFeeBps)

	s.MarketKeeper().On("ReadTokens", mock.Anything, "market-missing").Return(imports.MarketTokens{}, errors.New("not found"))

	_, err := s.governor(t).QueueAddMarket(s.Context(), "market-missing", testTwap)
	require.ErrorIs(t, err, types.ErrMarketNotFound)
}

func TestObservationCapacity(t *testing.T) {
	s := setupKeeper(t)
	s.approveUnderlying(t, testUnderlying, testFeeBps)
	s.AdvanceTime(time.Second)

	s.mockMarket(testMarket, testTokens, s.Context().BlockTime().Add(30*24*time.Hour))
	s.mockYieldToken(testSY, testUnderlying, nil)
	s.PriceFeeder().SetState(testMarket, imports.OracleState{
		IncreaseCardinalityRequired: true,
		CardinalityRequired:         50,
	})

	gov := s.governor(t)

	t.Run("increase fails", func(t *testing.T) {
		s.MarketKeeper().On("IncreaseObservationCapacity", mock.Anything, testMarket, uint16(50)).Return(errors.New("out of gas")).Once()

		_, err := gov.QueueAddMarket(s.Context(), testMarket, testTwap)
		require.ErrorIs(t, err, types.ErrObservationCapacity)

		res, err := s.keeper.NewQuerier().PendingMarkets(s.Context(), &types.QueryPendingMarketsRequest{})
		require.NoError(t, err)
		require.Empty(t, res.Markets)

		_, found, err := s.keeper.ResolveAlias(s.Context(), testSY)
		require.NoError(t, err)
		require.False(t, found)

		delay, err := s.keeper.GetTimelockDelay(s.Context())
		require.NoError(t, err)
		require.Zero(t, delay)

		require.Empty(t, s.Context().EventManager().Events())
	})

	t.Run("increase succeeds", func(t *testing.T) {
		s.MarketKeeper().On("IncreaseObservationCapacity", mock.Anything, testMarket, uint16(50)).Return(nil).Once()

		pending, err := gov.QueueAddMarket(s.Context(), testMarket, testTwap)
		require.NoError(t, err)

		// observations are still being collected
		_, err = gov.ExecuteAddMarket(s.Context(), testMarket)
		require.ErrorIs(t, err, types.ErrOracleNotReady)

		s.PriceFeeder().SetState(testMarket, imports.OracleState{})
		_, err = gov.ExecuteAddMarket(s.Context(), testMarket)
		require.ErrorIs(t, err, types.ErrOracleNotReady)

		s.PriceFeeder().SetReady(testMarket)
		s.elapse(pending.ETA)

		_, err = gov.ExecuteAddMarket(s.Context(), testMarket)
		require.NoError(t, err)
	})
}

func TestExecuteMaturedMarket(t *testing.T) {
	s := setupKeeper(t)
	s.onboard(t)
	gov := s.governor(t)

	const market = "market-usdc-short"
	s.mockMarket(market, imports.MarketTokens{SY: testSY, PT: "ptusdc-short", YT: "ytusdc-short"}, s.Context().BlockTime().Add(30*time.Minute))

	pending, err := gov.QueueAddMarket(s.Context(), market, testTwap)
	require.NoError(t, err)

	s.elapse(pending.ETA)

	_, err = gov.ExecuteAddMarket(s.Context(), market)
	require.ErrorIs(t, err, types.ErrMarketMatured)
}

func TestExecutePrincipalBound(t *testing.T) {
	s := setupKeeper(t)
	s.onboard(t)
	gov := s.governor(t)

	const market = "market-usdc-clone"
	s.mockMarket(market, testTokens, s.Context().BlockTime().Add(30*24*time.Hour))

	pending, err := gov.QueueAddMarket(s.Context(), market, testTwap)
	require.NoError(t, err)

	s.elapse(pending.ETA)

	_, err = gov.ExecuteAddMarket(s.Context(), market)
	require.ErrorIs(t, err, types.ErrMarketAlreadyApproved)
}
