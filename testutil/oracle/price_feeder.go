package oracle

import (
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"pkg.ptvault.dev/node/x/vault/imports"
)

// PriceFeeder is a test oracle serving principal token rates per market.
// It implements imports.OracleKeeper.
type PriceFeeder struct {
	rates  map[string]sdkmath.LegacyDec // market -> PT priced in underlying
	states map[string]imports.OracleState
	errs   map[string]error
	twaps  map[string]time.Duration // market -> last window requested
}

var _ imports.OracleKeeper = (*PriceFeeder)(nil)

// NewPriceFeeder creates a feeder where every market is ready and trades at par
func NewPriceFeeder() *PriceFeeder {
	return &PriceFeeder{
		rates:  make(map[string]sdkmath.LegacyDec),
		states: make(map[string]imports.OracleState),
		errs:   make(map[string]error),
		twaps:  make(map[string]time.Duration),
	}
}

// SetRate sets the rate served for market
func (pf *PriceFeeder) SetRate(market string, rate sdkmath.LegacyDec) {
	pf.rates[market] = rate
}

// SetState sets the observation state reported for market
func (pf *PriceFeeder) SetState(market string, state imports.OracleState) {
	pf.states[market] = state
}

// SetReady marks the oracle of market as able to serve any window
func (pf *PriceFeeder) SetReady(market string) {
	pf.states[market] = imports.OracleState{OldestObservationSatisfied: true}
}

// SetError makes every query for market fail with err. A nil err clears it.
func (pf *PriceFeeder) SetError(market string, err error) {
	if err == nil {
		delete(pf.errs, market)
		return
	}
	pf.errs[market] = err
}

// LastWindow returns the TWAP window of the latest rate query for market
func (pf *PriceFeeder) LastWindow(market string) time.Duration {
	return pf.twaps[market]
}

func (pf *PriceFeeder) GetPtToAssetRate(_ sdk.Context, market string, twap time.Duration) (sdkmath.LegacyDec, error) {
	if err, exists := pf.errs[market]; exists {
		return sdkmath.LegacyDec{}, err
	}
	if twap == 0 {
		return sdkmath.LegacyDec{}, fmt.Errorf("market %s: zero twap window", market)
	}

	pf.twaps[market] = twap

	rate, exists := pf.rates[market]
	if !exists {
		rate = sdkmath.LegacyOneDec()
	}

	return rate, nil
}

func (pf *PriceFeeder) GetOracleState(_ sdk.Context, market string, _ time.Duration) (imports.OracleState, error) {
	if err, exists := pf.errs[market]; exists {
		return imports.OracleState{}, err
	}

	state, exists := pf.states[market]
	if !exists {
		state = imports.OracleState{OldestObservationSatisfied: true}
	}

	return state, nil
}
