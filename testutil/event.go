package testutil

import (
	"testing"

	abci "github.com/cometbft/cometbft/abci/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"pkg.ptvault.dev/node/sdkutil"
	vtypes "pkg.ptvault.dev/node/x/vault/types"
)

func ParseEvent(t testing.TB, events sdk.Events, expectedLen int) sdkutil.Event {
	t.Helper()

	require.Equal(t, expectedLen, len(events))

	sev := sdk.StringifyEvent(events.ToABCIEvents()[expectedLen-1])
	ev, err := sdkutil.ParseEvent(sev)

	require.NoError(t, err)

	return ev
}

func ParseVaultEvent(t testing.TB, events sdk.Events, expectedLen int) sdkutil.ModuleEvent {
	t.Helper()

	uev := ParseEvent(t, events, expectedLen)

	iev, err := vtypes.ParseEvent(uev)
	require.NoError(t, err)

	return iev
}

// VaultEvents parses every event in emission order
func VaultEvents(t testing.TB, events sdk.Events) []sdkutil.ModuleEvent {
	t.Helper()

	res := make([]sdkutil.ModuleEvent, 0, len(events))
	for _, ev := range events {
		uev, err := sdkutil.ParseEvent(sdk.StringifyEvent(abci.Event(ev)))
		require.NoError(t, err)

		iev, err := vtypes.ParseEvent(uev)
		require.NoError(t, err)

		res = append(res, iev)
	}

	return res
}
