package keeper

import (
	"errors"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.ptvault.dev/node/testutil"
	"pkg.ptvault.dev/node/x/vault/imports"
	types "pkg.ptvault.dev/node/x/vault/types"
)

func TestDepositSplit(t *testing.T) {
	s := setupKeeper(t)
	series := s.onboard(t)
	s.AdvanceTime(time.Minute)

	user := testutil.AccAddress(t)
	s.fund(t, user, testutil.Units(10), testutil.Units(1))

	res, err := s.keeper.Deposit(s.Context(), user, testMarket, testutil.Units(10), sdkmath.ZeroInt())
	require.NoError(t, err)

	toUser := testutil.Units(95).QuoRaw(10)
	toStream := testutil.Units(5).QuoRaw(10)
	fee := testutil.Units(285).QuoRaw(1000)

	require.True(t, res.Rate.Equal(testutil.Dec(t, "0.95")))
	requireInt(t, toUser, res.ToUser)
	requireInt(t, toStream, res.ToStream)
	requireInt(t, fee, res.Fee)
	require.Equal(t, testUnderlying, res.FeeDenom)
	require.Equal(t, uint64(1), res.StreamID)

	// the oracle is read at the window frozen at approval
	require.Equal(t, testTwap, s.PriceFeeder().LastWindow(testMarket))

	requireInt(t, sdkmath.ZeroInt(), s.balance(user, testPT))
	requireInt(t, toUser, s.balance(user, series.WrapperDenom))
	requireInt(t, testutil.Units(1).Sub(fee), s.balance(user, testUnderlying))

	requireInt(t, testutil.Units(10), s.moduleBalance(testPT))
	requireInt(t, sdkmath.ZeroInt(), s.moduleBalance(testUnderlying))
	requireInt(t, fee, s.balance(authtypes.NewModuleAddress(authtypes.FeeCollectorName), testUnderlying))
	requireInt(t, sdkmath.ZeroInt(), s.moduleBalance(series.WrapperDenom))
	requireInt(t, toStream, s.StreamKeeper().Escrowed(s.Context(), series.WrapperDenom).Amount)

	stream, found := s.StreamKeeper().Get(s.Context(), res.StreamID)
	require.True(t, found)
	assert.Equal(t, authtypes.NewModuleAddress(types.ModuleName), stream.Sender)
	assert.Equal(t, user, stream.Recipient)
	assert.Equal(t, series.WrapperDenom, stream.Amount.Denom)
	requireInt(t, toStream, stream.Amount.Amount)
	assert.Zero(t, stream.Cliff)
	assert.Equal(t, series.Expiry.Sub(s.Context().BlockTime()), stream.Duration)
	assert.False(t, stream.Cancelable)
	assert.True(t, stream.Transferable)

	requireInt(t, testutil.Units(10), s.totalDeposited(t, testMarket))

	ev := testutil.ParseVaultEvent(t, s.Context().EventManager().Events(), 1)
	dev, ok := ev.(types.EventDeposit)
	require.True(t, ok)
	assert.Equal(t, user, dev.Sender)
	assert.Equal(t, testMarket, dev.Market)
	requireInt(t, toUser, dev.ToUser)
	assert.Equal(t, res.StreamID, dev.StreamID)

	streams, err := s.keeper.NewQuerier().Streams(s.Context(), &types.QueryStreamsRequest{Recipient: user.String()})
	require.NoError(t, err)
	require.Len(t, streams.Streams, 1)
	assert.Equal(t, testMarket, streams.Streams[0].Market)
	assert.Equal(t, series.Expiry, streams.Streams[0].EndTime)
}

func TestDepositPreviewMatches(t *testing.T) {
	s := setupKeeper(t)
	s.onboard(t)

	user := testutil.AccAddress(t)
	s.fund(t, user, testutil.Units(3), testutil.Units(1))

	preview, err := s.keeper.PreviewDeposit(s.Context(), testMarket, testutil.Units(3))
	require.NoError(t, err)

	res, err := s.keeper.Deposit(s.Context(), user, testMarket, testutil.Units(3), preview.ToUser)
	require.NoError(t, err)

	requireInt(t, preview.ToUser, res.ToUser)
	requireInt(t, preview.ToStream, res.ToStream)
	requireInt(t, preview.Fee, res.Fee)
}

func TestDepositTreasury(t *testing.T) {
	s := setupKeeper(t)
	s.onboard(t)

	treasury := testutil.AccAddress(t)
	params, err := s.keeper.GetParams(s.Context())
	require.NoError(t, err)
	params.Treasury = treasury.String()
	require.NoError(t, s.keeper.SetParams(s.Context(), params))

	user := testutil.AccAddress(t)
	s.fund(t, user, testutil.Units(10), testutil.Units(1))

	res, err := s.keeper.Deposit(s.Context(), user, testMarket, testutil.Units(10), sdkmath.ZeroInt())
	require.NoError(t, err)

	requireInt(t, res.Fee, s.balance(treasury, testUnderlying))
	requireInt(t, sdkmath.ZeroInt(), s.moduleBalance(testUnderlying))
	requireInt(t, sdkmath.ZeroInt(), s.balance(authtypes.NewModuleAddress(authtypes.FeeCollectorName), testUnderlying))
}

func TestDepositRejections(t *testing.T) {
	tests := []struct {
		name      string
		prepare   func(t *testing.T, s *testSuite, user sdk.AccAddress)
		market    string
		amount    sdkmath.Int
		minToUser sdkmath.Int
		err       error
	}{
		{
			name:   "zero amount",
			amount: sdkmath.ZeroInt(),
			err:    types.ErrInvalidAmount,
		},
		{
			name:   "unknown market",
			market: "market-unknown",
			amount: testutil.Units(1),
			err:    types.ErrMarketNotApproved,
		},
		{
			name:   "below minimum",
			amount: sdkmath.NewInt(999),
			err:    types.ErrAmountBelowMinimum,
		},
		{
			name:      "slippage",
			amount:    testutil.Units(10),
			minToUser: testutil.Units(96).QuoRaw(10),
			err:       types.ErrSlippage,
		},
		{
			name: "at par nothing streams",
			prepare: func(t *testing.T, s *testSuite, user sdk.AccAddress) {
				s.PriceFeeder().SetRate(testMarket, sdkmath.LegacyOneDec())
			},
			amount: testutil.Units(10),
			err:    types.ErrZeroStream,
		},
		{
			name: "rate above par",
			prepare: func(t *testing.T, s *testSuite, user sdk.AccAddress) {
				s.PriceFeeder().SetRate(testMarket, testutil.Dec(t, "1.01"))
			},
			amount: testutil.Units(10),
			err:    types.ErrInvalidRate,
		},
		{
			name: "rate below floor",
			prepare: func(t *testing.T, s *testSuite, user sdk.AccAddress) {
				s.PriceFeeder().SetRate(testMarket, testutil.Dec(t, "0.4"))
			},
			amount: testutil.Units(10),
			err:    types.ErrInvalidRate,
		},
		{
			name: "zero rate without floor",
			prepare: func(t *testing.T, s *testSuite, user sdk.AccAddress) {
				params, err := s.keeper.GetParams(s.Context())
				require.NoError(t, err)
				params.MinRate = sdkmath.LegacyZeroDec()
				require.NoError(t, s.keeper.SetParams(s.Context(), params))
				s.PriceFeeder().SetRate(testMarket, sdkmath.LegacyZeroDec())
			},
			amount: testutil.Units(10),
			err:    types.ErrInvalidRate,
		},
		{
			name: "negative rate",
			prepare: func(t *testing.T, s *testSuite, user sdk.AccAddress) {
				s.PriceFeeder().SetRate(testMarket, testutil.Dec(t, "-0.5"))
			},
			amount: testutil.Units(10),
			err:    types.ErrInvalidRate,
		},
		{
			name: "oracle failure",
			prepare: func(t *testing.T, s *testSuite, user sdk.AccAddress) {
				s.PriceFeeder().SetError(testMarket, errors.New("stale"))
			},
			amount: testutil.Units(10),
			err:    types.ErrOracleQuery,
		},
		{
			name: "matured",
			prepare: func(t *testing.T, s *testSuite, user sdk.AccAddress) {
				s.AdvanceTime(180 * 24 * time.Hour)
			},
			amount: testutil.Units(10),
			err:    types.ErrMarketMatured,
		},
		{
			name: "stream failure",
			prepare: func(t *testing.T, s *testSuite, user sdk.AccAddress) {
				s.StreamKeeper().OnCreate = func(sdk.Context, imports.LinearStream) error {
					return errors.New("paused")
				}
			},
			amount: testutil.Units(10),
			err:    types.ErrStreamFailed,
		},
		{
			name: "fee not covered",
			prepare: func(t *testing.T, s *testSuite, user sdk.AccAddress) {
				require.NoError(t, s.BankKeeper().SendCoins(s.Context(), user, testutil.AccAddress(t), testutil.Coins(t, testUnderlying, 1)))
			},
			amount: testutil.Units(10),
			err:    sdkerrors.ErrInsufficientFunds,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := setupKeeper(t)
			series := s.onboard(t)

			user := testutil.AccAddress(t)
			s.fund(t, user, testutil.Units(10), sdkmath.NewInt(285).Mul(sdkmath.NewIntWithDecimal(1, 15)))

			if tc.prepare != nil {
				tc.prepare(t, s, user)
			}
			s.AdvanceTime(time.Second)

			market := tc.market
			if market == "" {
				market = testMarket
			}
			minToUser := tc.minToUser
			if minToUser.IsNil() {
				minToUser = sdkmath.ZeroInt()
			}

			underlyingBefore := s.balance(user, testUnderlying)

			_, err := s.keeper.Deposit(s.Context(), user, market, tc.amount, minToUser)
			require.ErrorIs(t, err, tc.err)

			// nothing moved
			requireInt(t, testutil.Units(10), s.balance(user, testPT))
			requireInt(t, underlyingBefore, s.balance(user, testUnderlying))
			requireInt(t, sdkmath.ZeroInt(), s.balance(user, series.WrapperDenom))
			requireInt(t, sdkmath.ZeroInt(), s.moduleBalance(testPT))
			requireInt(t, sdkmath.ZeroInt(), s.totalDeposited(t, testMarket))
			require.Empty(t, s.Context().EventManager().Events())
		})
	}
}

func TestDepositLimit(t *testing.T) {
	s := setupKeeper(t)
	s.onboard(t)
	gov := s.governor(t)

	user := testutil.AccAddress(t)
	s.fund(t, user, testutil.Units(30), testutil.Units(3))

	change, err := gov.QueueSetDepositLimit(s.Context(), testMarket, testutil.Units(15))
	require.NoError(t, err)
	s.elapse(change.ETA)
	_, err = gov.ExecuteSetDepositLimit(s.Context(), testMarket)
	require.NoError(t, err)

	_, err = s.keeper.Deposit(s.Context(), user, testMarket, testutil.Units(10), sdkmath.ZeroInt())
	require.NoError(t, err)

	_, err = s.keeper.Deposit(s.Context(), user, testMarket, testutil.Units(6), sdkmath.ZeroInt())
	require.ErrorIs(t, err, types.ErrDepositLimitExceeded)

	_, err = s.keeper.PreviewDeposit(s.Context(), testMarket, testutil.Units(6))
	require.ErrorIs(t, err, types.ErrDepositLimitExceeded)

	_, err = s.keeper.Deposit(s.Context(), user, testMarket, testutil.Units(5), sdkmath.ZeroInt())
	require.NoError(t, err)

	requireInt(t, testutil.Units(15), s.totalDeposited(t, testMarket))

	// a limit below what the market holds is rejected
	_, err = gov.QueueSetDepositLimit(s.Context(), testMarket, testutil.Units(5))
	require.ErrorIs(t, err, types.ErrDepositLimitExceeded)

	// zero lifts the limit
	change, err = gov.QueueSetDepositLimit(s.Context(), testMarket, sdkmath.ZeroInt())
	require.NoError(t, err)
	s.elapse(change.ETA)
	_, err = gov.ExecuteSetDepositLimit(s.Context(), testMarket)
	require.NoError(t, err)

	_, err = s.keeper.Deposit(s.Context(), user, testMarket, testutil.Units(15), sdkmath.ZeroInt())
	require.NoError(t, err)
	requireInt(t, testutil.Units(30), s.totalDeposited(t, testMarket))
}

func TestDepositReentrancy(t *testing.T) {
	s := setupKeeper(t)
	s.onboard(t)

	user := testutil.AccAddress(t)
	s.fund(t, user, testutil.Units(20), testutil.Units(2))

	var inner error
	s.StreamKeeper().OnCreate = func(ctx sdk.Context, _ imports.LinearStream) error {
		_, inner = s.keeper.Deposit(ctx, user, testMarket, testutil.Units(10), sdkmath.ZeroInt())
		return nil
	}

	_, err := s.keeper.Deposit(s.Context(), user, testMarket, testutil.Units(10), sdkmath.ZeroInt())
	require.NoError(t, err)
	require.ErrorIs(t, inner, types.ErrReentrantCall)

	requireInt(t, testutil.Units(10), s.totalDeposited(t, testMarket))
	requireInt(t, testutil.Units(10), s.balance(user, testPT))

	// the lock is released once the outer call returns
	s.StreamKeeper().OnCreate = nil
	_, err = s.keeper.Deposit(s.Context(), user, testMarket, testutil.Units(10), sdkmath.ZeroInt())
	require.NoError(t, err)
}

func TestDepositMultipleUsers(t *testing.T) {
	s := setupKeeper(t)
	s.onboard(t)

	users := []sdk.AccAddress{testutil.AccAddress(t), testutil.AccAddress(t)}
	for _, user := range users {
		s.fund(t, user, testutil.Units(10), testutil.Units(1))

		_, err := s.keeper.Deposit(s.Context(), user, testMarket, testutil.Units(10), sdkmath.ZeroInt())
		require.NoError(t, err)
	}

	requireInt(t, testutil.Units(20), s.totalDeposited(t, testMarket))
	requireInt(t, s.totalDeposited(t, testMarket), s.moduleBalance(testPT))

	for i, user := range users {
		res, err := s.keeper.NewQuerier().Streams(s.Context(), &types.QueryStreamsRequest{Recipient: user.String()})
		require.NoError(t, err)
		require.Len(t, res.Streams, 1)
		assert.Equal(t, uint64(i+1), res.Streams[0].ID)
	}
}
