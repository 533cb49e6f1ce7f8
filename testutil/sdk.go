package testutil

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Coin provides simple interface to the sdk.Coin type.
func Coin(t testing.TB, denom string, amount int64) sdk.Coin {
	t.Helper()
	return sdk.NewCoin(denom, sdkmath.NewInt(amount))
}

// Coins provides a single denom sdk.Coins.
func Coins(t testing.TB, denom string, amount int64) sdk.Coins {
	t.Helper()
	return sdk.NewCoins(Coin(t, denom, amount))
}

// Dec parses a decimal, failing the test on malformed input
func Dec(t testing.TB, s string) sdkmath.LegacyDec {
	t.Helper()
	d, err := sdkmath.LegacyNewDecFromStr(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// Units returns amount scaled by 10^18
func Units(amount int64) sdkmath.Int {
	return sdkmath.NewInt(amount).Mul(sdkmath.NewIntWithDecimal(1, 18))
}
