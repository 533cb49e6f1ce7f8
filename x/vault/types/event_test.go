package types_test

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	abci "github.com/cometbft/cometbft/abci/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"pkg.ptvault.dev/node/sdkutil"
	"pkg.ptvault.dev/node/testutil"
	"pkg.ptvault.dev/node/x/vault/types"
)

func TestEventsRoundTrip(t *testing.T) {
	sender := testutil.AccAddress(t)
	eta := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	expiry := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	amount := sdkmath.NewInt(10_000_000)

	series := types.SeriesInfo{
		Market:         "market-usdc-dec26",
		Expiry:         expiry,
		PrincipalDenom: "ptusdc-dec26",
		WrapperDenom:   types.WrapperDenom("uusdc"),
		Underlying:     "uusdc",
	}

	events := []sdkutil.ModuleEvent{
		types.NewEventMarketQueued(types.PendingMarket{Market: series.Market, Underlying: "uusdc", TwapDuration: 30 * time.Minute, ETA: eta}),
		types.NewEventMarketApproved(series),
		types.NewEventUnderlyingQueued("uusdc", types.UnderlyingApproval{Value: 300, ETA: eta}),
		types.NewEventUnderlyingApproved(types.UnderlyingInfo{Denom: "uusdc", Approved: true, WrapperDenom: types.WrapperDenom("uusdc"), FeeBps: 300}),
		types.NewEventAliasSet("ausdc", "uusdc"),
		types.NewEventFeeQueued("uusdc", types.FeeChange{Value: 50, ETA: eta}),
		types.NewEventFeeUpdated("uusdc", 50),
		types.NewEventDelayQueued(types.PendingChange[time.Duration]{Value: 2 * time.Hour, ETA: eta}),
		types.NewEventDelayExecuted(2 * time.Hour),
		types.NewEventMinDepositQueued(types.PendingChange[sdkmath.Int]{Value: sdkmath.NewInt(5000), ETA: eta}),
		types.NewEventMinDepositUpdated(sdkmath.NewInt(5000)),
		types.NewEventDepositLimitQueued(series.Market, types.LimitChange{Value: amount, ETA: eta}),
		types.NewEventDepositLimitSet(series.Market, amount),
		types.NewEventDeposit(sender, series.Market, amount, types.DepositResult{
			ToUser:   sdkmath.NewInt(9_500_000),
			ToStream: sdkmath.NewInt(500_000),
			Fee:      sdkmath.NewInt(285_000),
			StreamID: 7,
		}),
		types.NewEventClaim(sender, series.Market, amount),
		types.NewEventMarketSettled(series.Market, "uusdc", amount, sdkmath.NewInt(10_200_000)),
		types.NewEventClaimSettled(sender, "uusdc", amount),
	}

	for _, expected := range events {
		sev := expected.ToSDKEvent()

		t.Run(sev.Type+"/"+actionOf(t, sev), func(t *testing.T) {
			ev, err := sdkutil.ParseEvent(sdk.StringifyEvent(abci.Event(sev)))
			require.NoError(t, err)

			actual, err := types.ParseEvent(ev)
			require.NoError(t, err)
			require.IsType(t, expected, actual)

			require.Equal(t, sev, actual.ToSDKEvent())
		})
	}
}

func TestParseEventRejects(t *testing.T) {
	valid := types.NewEventAliasSet("ausdc", "uusdc").ToSDKEvent()

	ev, err := sdkutil.ParseEvent(sdk.StringifyEvent(abci.Event(valid)))
	require.NoError(t, err)

	wrongType := ev
	wrongType.Type = "akash.v1"
	_, err = types.ParseEvent(wrongType)
	require.ErrorIs(t, err, sdkutil.ErrUnknownType)

	wrongModule := ev
	wrongModule.Module = "bank"
	_, err = types.ParseEvent(wrongModule)
	require.ErrorIs(t, err, sdkutil.ErrUnknownModule)

	wrongAction := ev
	wrongAction.Action = "burn"
	_, err = types.ParseEvent(wrongAction)
	require.ErrorIs(t, err, sdkutil.ErrUnknownAction)

	missing, err := sdkutil.ParseEvent(sdk.StringifyEvent(abci.Event(sdk.NewEvent(sdkutil.EventTypeMessage,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(sdk.AttributeKeyAction, "claim"),
	))))
	require.NoError(t, err)
	_, err = types.ParseEvent(missing)
	require.ErrorIs(t, err, sdkutil.ErrNotFound)
}

func actionOf(t *testing.T, ev sdk.Event) string {
	t.Helper()

	for _, attr := range ev.Attributes {
		if attr.Key == sdk.AttributeKeyAction {
			return attr.Value
		}
	}

	t.Fatalf("event %s has no action", ev.Type)
	return ""
}
