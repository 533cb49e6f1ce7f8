package testutil

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cometbft/cometbft/crypto/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccAddress provides an Account's Address bytes from a ed25519 generated
// private key.
func AccAddress(t testing.TB) sdk.AccAddress {
	t.Helper()
	privKey := ed25519.GenPrivKey()
	return sdk.AccAddress(privKey.PubKey().Address())
}

func Key(t testing.TB) ed25519.PrivKey {
	t.Helper()
	return ed25519.GenPrivKey()
}

// Denom generates a random valid denom with the given prefix
func Denom(t testing.TB, prefix string) string {
	t.Helper()
	return fmt.Sprintf("%s%d", prefix, rand.Uint32()) // nolint: gosec
}

// Market generates a random market identifier
func Market(t testing.TB) string {
	t.Helper()
	return fmt.Sprintf("market-%d", rand.Uint32()) // nolint: gosec
}
