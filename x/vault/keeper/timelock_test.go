package keeper

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.ptvault.dev/node/testutil"
	types "pkg.ptvault.dev/node/x/vault/types"
)

func TestGovernorRejectsForeignAuthority(t *testing.T) {
	s := setupKeeper(t)

	_, err := s.keeper.Governor(testutil.AccAddress(t).String())
	require.ErrorIs(t, err, govtypes.ErrInvalidSigner)
}

func TestUpdateParams(t *testing.T) {
	s := setupKeeper(t)
	gov := s.governor(t)

	params := types.DefaultParams()
	params.MinTimelockDelay = 2 * time.Hour
	require.NoError(t, gov.UpdateParams(s.Context(), params))

	_, err := gov.QueueSetTimelockDelay(s.Context(), time.Hour)
	require.ErrorIs(t, err, types.ErrInvalidDelay)

	params.MaxTimelockDelay = time.Hour
	require.ErrorIs(t, gov.UpdateParams(s.Context(), params), types.ErrInvalidParams)

	current, err := s.keeper.GetParams(s.Context())
	require.NoError(t, err)
	require.Equal(t, 2*time.Hour, current.MinTimelockDelay)
	require.Equal(t, types.DefaultMaxTimelockDelay, current.MaxTimelockDelay)
}

func TestTimelockDelayChange(t *testing.T) {
	s := setupKeeper(t)
	gov := s.governor(t)

	// nothing configured yet, the first change is executable immediately
	change, err := gov.QueueSetTimelockDelay(s.Context(), 2*time.Hour)
	require.NoError(t, err)
	require.Equal(t, s.Context().BlockTime(), change.ETA)

	delay, err := gov.ExecuteSetTimelockDelay(s.Context())
	require.NoError(t, err)
	require.Equal(t, 2*time.Hour, delay)

	start := s.Context().BlockTime()

	change, err = gov.QueueSetTimelockDelay(s.Context(), 3*time.Hour)
	require.NoError(t, err)
	require.Equal(t, start.Add(2*time.Hour), change.ETA)

	_, err = gov.ExecuteSetTimelockDelay(s.Context())
	require.ErrorIs(t, err, types.ErrTimelockNotElapsed)

	s.AdvanceTime(2*time.Hour - time.Second)
	_, err = gov.ExecuteSetTimelockDelay(s.Context())
	require.ErrorIs(t, err, types.ErrTimelockNotElapsed)

	s.AdvanceTime(time.Second)
	delay, err = gov.ExecuteSetTimelockDelay(s.Context())
	require.NoError(t, err)
	require.Equal(t, 3*time.Hour, delay)

	current, err := s.keeper.GetTimelockDelay(s.Context())
	require.NoError(t, err)
	require.Equal(t, 3*time.Hour, current)

	// the change is consumed
	_, err = gov.ExecuteSetTimelockDelay(s.Context())
	require.ErrorIs(t, err, types.ErrNotQueued)

	evs := testutil.VaultEvents(t, s.Context().EventManager().Events())
	require.Len(t, evs, 1)
	require.Equal(t, types.NewEventDelayExecuted(3*time.Hour), evs[0])
}

func TestTimelockDelayBounds(t *testing.T) {
	s := setupKeeper(t)
	gov := s.governor(t)

	_, err := gov.QueueSetTimelockDelay(s.Context(), 30*time.Minute)
	require.ErrorIs(t, err, types.ErrInvalidDelay)

	_, err = gov.QueueSetTimelockDelay(s.Context(), 49*time.Hour)
	require.ErrorIs(t, err, types.ErrInvalidDelay)

	_, err = gov.QueueSetTimelockDelay(s.Context(), time.Hour)
	require.NoError(t, err)

	_, err = gov.QueueSetTimelockDelay(s.Context(), 2*time.Hour)
	require.ErrorIs(t, err, types.ErrAlreadyQueued)
}

func TestMinDepositChange(t *testing.T) {
	s := setupKeeper(t)
	gov := s.governor(t)

	initial, err := s.keeper.GetMinDeposit(s.Context())
	require.NoError(t, err)
	require.Equal(t, types.DefaultInitialMinDeposit, initial)

	_, err = gov.QueueSetMinDeposit(s.Context(), sdkmath.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = gov.ExecuteSetMinDeposit(s.Context())
	require.ErrorIs(t, err, types.ErrNotQueued)

	_, err = gov.QueueSetMinDeposit(s.Context(), sdkmath.NewInt(5000))
	require.NoError(t, err)

	amount, err := gov.ExecuteSetMinDeposit(s.Context())
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(5000), amount)

	current, err := s.keeper.GetMinDeposit(s.Context())
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(5000), current)
}

func TestFeeChange(t *testing.T) {
	s := setupKeeper(t)
	s.onboard(t)
	gov := s.governor(t)

	_, err := gov.QueueSetFee(s.Context(), "uatom", 100)
	require.ErrorIs(t, err, types.ErrUnderlyingNotApproved)

	_, err = gov.QueueSetFee(s.Context(), testUnderlying, 1001)
	require.ErrorIs(t, err, types.ErrInvalidFee)

	change, err := gov.QueueSetFee(s.Context(), testUnderlying, 50)
	require.NoError(t, err)
	require.Equal(t, s.Context().BlockTime().Add(time.Hour), change.ETA)

	_, err = gov.ExecuteSetFee(s.Context(), testUnderlying)
	require.ErrorIs(t, err, types.ErrTimelockNotElapsed)

	s.elapse(change.ETA)

	fee, err := gov.ExecuteSetFee(s.Context(), testUnderlying)
	require.NoError(t, err)
	require.Equal(t, uint32(50), fee)

	info, found, err := s.keeper.GetUnderlying(s.Context(), testUnderlying)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint32(50), info.FeeBps)

	// deposits use the live fee
	res, err := s.keeper.PreviewDeposit(s.Context(), testMarket, testutil.Units(10))
	require.NoError(t, err)
	assert.Equal(t, types.ComputeFee(res.ToUser, 50), res.Fee)
}

func TestUnderlyingApproval(t *testing.T) {
	s := setupKeeper(t)
	gov := s.governor(t)

	_, err := gov.QueueApproveUnderlying(s.Context(), testUnderlying, 1001)
	require.ErrorIs(t, err, types.ErrInvalidFee)

	info := s.approveUnderlying(t, testUnderlying, testFeeBps)
	assert.True(t, info.Approved)
	assert.Equal(t, types.WrapperDenom(testUnderlying), info.WrapperDenom)
	assert.Equal(t, testFeeBps, info.FeeBps)

	md, found := s.BankKeeper().GetDenomMetaData(s.Context(), info.WrapperDenom)
	require.True(t, found)
	assert.Equal(t, info.WrapperDenom, md.Base)

	// approving twice fails
	_, err = gov.QueueApproveUnderlying(s.Context(), testUnderlying, testFeeBps)
	require.ErrorIs(t, err, types.ErrUnderlyingAlreadyApproved)

	// aliases cannot be approved as underlyings
	require.NoError(t, gov.SetAlias(s.Context(), "ausdc", testUnderlying))
	_, err = gov.QueueApproveUnderlying(s.Context(), "ausdc", testFeeBps)
	require.ErrorIs(t, err, types.ErrAliasConflict)
}

func TestUnderlyingApprovalAliasedWhilePending(t *testing.T) {
	s := setupKeeper(t)
	s.approveUnderlying(t, testUnderlying, testFeeBps)
	gov := s.governor(t)

	change, err := gov.QueueApproveUnderlying(s.Context(), "udai", testFeeBps)
	require.NoError(t, err)

	require.NoError(t, gov.SetAlias(s.Context(), "udai", testUnderlying))

	s.elapse(change.ETA)

	_, err = gov.ExecuteApproveUnderlying(s.Context(), "udai")
	require.ErrorIs(t, err, types.ErrAliasConflict)

	info, _, err := s.keeper.GetUnderlying(s.Context(), "udai")
	require.NoError(t, err)
	assert.False(t, info.Approved)
	assert.Empty(t, info.WrapperDenom)
	assert.False(t, s.BankKeeper().HasDenomMetaData(s.Context(), types.WrapperDenom("udai")))

	underlying, found, err := s.keeper.ResolveAlias(s.Context(), "udai")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, testUnderlying, underlying)
}

func TestAlias(t *testing.T) {
	s := setupKeeper(t)
	s.approveUnderlying(t, testUnderlying, testFeeBps)
	s.approveUnderlying(t, "udai", testFeeBps)
	gov := s.governor(t)

	require.NoError(t, gov.SetAlias(s.Context(), "ausdc", testUnderlying))

	// chains flatten to the canonical underlying
	require.NoError(t, gov.SetAlias(s.Context(), "sausdc", "ausdc"))
	underlying, found, err := s.keeper.ResolveAlias(s.Context(), "sausdc")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, testUnderlying, underlying)

	// re-aliasing to the same resolution is a no-op
	s.AdvanceTime(time.Second)
	require.NoError(t, gov.SetAlias(s.Context(), "sausdc", testUnderlying))
	assert.Empty(t, s.Context().EventManager().Events())

	// re-aliasing elsewhere conflicts
	err = gov.SetAlias(s.Context(), "ausdc", "udai")
	require.ErrorIs(t, err, types.ErrAliasConflict)

	// approved underlyings are canonical
	err = gov.SetAlias(s.Context(), "udai", testUnderlying)
	require.ErrorIs(t, err, types.ErrAliasConflict)

	// cycles are rejected
	require.NoError(t, gov.SetAlias(s.Context(), "x1", "x2"))
	err = gov.SetAlias(s.Context(), "x2", "x1")
	require.ErrorIs(t, err, types.ErrAliasConflict)

	_, found, err = s.keeper.ResolveAlias(s.Context(), "unknown")
	require.NoError(t, err)
	require.False(t, found)
}

func TestDepositLimitChange(t *testing.T) {
	s := setupKeeper(t)
	s.onboard(t)
	gov := s.governor(t)

	_, err := gov.QueueSetDepositLimit(s.Context(), "market-unknown", sdkmath.NewInt(1))
	require.ErrorIs(t, err, types.ErrMarketNotApproved)

	_, err = gov.QueueSetDepositLimit(s.Context(), testMarket, sdkmath.NewInt(-1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	change, err := gov.QueueSetDepositLimit(s.Context(), testMarket, testutil.Units(15))
	require.NoError(t, err)

	s.elapse(change.ETA)

	limit, err := gov.ExecuteSetDepositLimit(s.Context(), testMarket)
	require.NoError(t, err)
	require.Equal(t, testutil.Units(15), limit)

	deposits, err := s.keeper.GetMarketDeposits(s.Context(), testMarket)
	require.NoError(t, err)
	assert.Equal(t, testutil.Units(15), deposits.DepositLimit)
}

func TestQueueIsAtomic(t *testing.T) {
	s := setupKeeper(t)
	s.approveUnderlying(t, testUnderlying, testFeeBps)
	s.AdvanceTime(time.Second)
	gov := s.governor(t)

	// resolution succeeds and aliases the yield token, then the oracle fails
	s.mockMarket(testMarket, testTokens, s.Context().BlockTime().Add(time.Hour*24))
	s.mockYieldToken(testSY, testUnderlying, nil)
	s.PriceFeeder().SetError(testMarket, assert.AnError)

	_, err := gov.QueueAddMarket(s.Context(), testMarket, testTwap)
	require.ErrorIs(t, err, types.ErrOracleQuery)

	_, found, err := s.keeper.ResolveAlias(s.Context(), testSY)
	require.NoError(t, err)
	require.False(t, found)
	assert.Empty(t, s.Context().EventManager().Events())
}
