package types

import (
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	DefaultMinTimelockDelay = time.Hour
	DefaultMaxTimelockDelay = 48 * time.Hour
	DefaultMinTwapDuration  = 15 * time.Minute
	DefaultMaxTwapDuration  = 24 * time.Hour
	DefaultMaxFeeBps        = uint32(1000)
)

var (
	// DefaultMinRate rejects oracle rates that imply more than a 50% discount to par
	DefaultMinRate = sdkmath.LegacyNewDecWithPrec(5, 1)

	// DefaultInitialMinDeposit is the minimum deposit used until governance changes it
	DefaultInitialMinDeposit = sdkmath.NewInt(1000)
)

// Params bounds every governed value of the vault
type Params struct {
	MinTimelockDelay  time.Duration     `json:"min_timelock_delay"`
	MaxTimelockDelay  time.Duration     `json:"max_timelock_delay"`
	MinTwapDuration   time.Duration     `json:"min_twap_duration"`
	MaxTwapDuration   time.Duration     `json:"max_twap_duration"`
	MaxFeeBps         uint32            `json:"max_fee_bps"`
	MinRate           sdkmath.LegacyDec `json:"min_rate"`
	Treasury          string            `json:"treasury"`
	InitialMinDeposit sdkmath.Int       `json:"initial_min_deposit"`
}

func DefaultParams() Params {
	return Params{
		MinTimelockDelay:  DefaultMinTimelockDelay,
		MaxTimelockDelay:  DefaultMaxTimelockDelay,
		MinTwapDuration:   DefaultMinTwapDuration,
		MaxTwapDuration:   DefaultMaxTwapDuration,
		MaxFeeBps:         DefaultMaxFeeBps,
		MinRate:           DefaultMinRate,
		InitialMinDeposit: DefaultInitialMinDeposit,
	}
}

func (p Params) Validate() error {
	if p.MinTimelockDelay <= 0 {
		return ErrInvalidParams.Wrap("min timelock delay must be positive")
	}
	if p.MaxTimelockDelay < p.MinTimelockDelay {
		return ErrInvalidParams.Wrapf("max timelock delay %s below min %s", p.MaxTimelockDelay, p.MinTimelockDelay)
	}
	if p.MinTwapDuration <= 0 {
		return ErrInvalidParams.Wrap("min twap duration must be positive")
	}
	if p.MaxTwapDuration < p.MinTwapDuration {
		return ErrInvalidParams.Wrapf("max twap duration %s below min %s", p.MaxTwapDuration, p.MinTwapDuration)
	}
	if p.MaxFeeBps > BasisPointsDenominator {
		return ErrInvalidParams.Wrapf("max fee %d exceeds %d basis points", p.MaxFeeBps, BasisPointsDenominator)
	}
	if p.MinRate.IsNil() || p.MinRate.IsNegative() || p.MinRate.GT(sdkmath.LegacyOneDec()) {
		return ErrInvalidParams.Wrapf("min rate must be within [0, 1]")
	}
	if p.InitialMinDeposit.IsNil() || !p.InitialMinDeposit.IsPositive() {
		return ErrInvalidParams.Wrap("initial min deposit must be positive")
	}
	if p.Treasury != "" {
		if _, err := sdk.AccAddressFromBech32(p.Treasury); err != nil {
			return ErrInvalidParams.Wrapf("treasury: %s", err)
		}
	}

	return nil
}

// ValidateDelay checks a timelock delay against the configured bounds
func (p Params) ValidateDelay(d time.Duration) error {
	if d < p.MinTimelockDelay || d > p.MaxTimelockDelay {
		return ErrInvalidDelay.Wrapf("%s not within [%s, %s]", d, p.MinTimelockDelay, p.MaxTimelockDelay)
	}
	return nil
}

// ValidateTwapDuration checks a TWAP window against the configured bounds
func (p Params) ValidateTwapDuration(d time.Duration) error {
	if d < p.MinTwapDuration || d > p.MaxTwapDuration {
		return ErrInvalidTwapDuration.Wrapf("%s not within [%s, %s]", d, p.MinTwapDuration, p.MaxTwapDuration)
	}
	return nil
}

// ValidateFee checks a fee in basis points against the configured maximum
func (p Params) ValidateFee(bps uint32) error {
	if bps > p.MaxFeeBps {
		return ErrInvalidFee.Wrapf("%d bps exceeds max %d bps", bps, p.MaxFeeBps)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("delay=[%s,%s] twap=[%s,%s] max_fee_bps=%d min_rate=%s treasury=%s min_deposit=%s",
		p.MinTimelockDelay, p.MaxTimelockDelay, p.MinTwapDuration, p.MaxTwapDuration,
		p.MaxFeeBps, p.MinRate, p.Treasury, p.InitialMinDeposit)
}
