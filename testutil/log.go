package testutil

import (
	"testing"

	"cosmossdk.io/log"
)

// Logger returns a logger writing through t, so output is attached to the failing test
func Logger(t testing.TB) log.Logger {
	return log.NewTestLogger(t)
}
