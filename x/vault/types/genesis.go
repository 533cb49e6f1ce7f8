package types

import (
	"time"

	sdkmath "cosmossdk.io/math"
)

// KeyedChange is a pending change exported together with the key it is queued under
type KeyedChange[T any] struct {
	Key    string           `json:"key"`
	Change PendingChange[T] `json:"change"`
}

// GenesisState carries the complete vault registry
type GenesisState struct {
	Params        Params           `json:"params"`
	TimelockDelay time.Duration    `json:"timelock_delay"`
	MinDeposit    sdkmath.Int      `json:"min_deposit"`
	Underlyings   []UnderlyingInfo `json:"underlyings"`
	Aliases       []Alias          `json:"aliases"`
	// Series are listed in approval order
	Series  []SeriesInfo     `json:"series"`
	Markets []MarketDeposits `json:"markets"`
	Pools   []RedemptionPool `json:"pools"`
	Streams []StreamRecord   `json:"streams"`

	PendingMarkets     []PendingMarket               `json:"pending_markets"`
	PendingDelay       *PendingChange[time.Duration] `json:"pending_delay,omitempty"`
	PendingMinDeposit  *PendingChange[sdkmath.Int]   `json:"pending_min_deposit,omitempty"`
	PendingFees        []KeyedChange[uint32]         `json:"pending_fees"`
	PendingLimits      []KeyedChange[sdkmath.Int]    `json:"pending_limits"`
	PendingUnderlyings []KeyedChange[uint32]         `json:"pending_underlyings"`
}

func DefaultGenesisState() *GenesisState {
	params := DefaultParams()

	return &GenesisState{
		Params:     params,
		MinDeposit: params.InitialMinDeposit,
	}
}

// Validate performs basic genesis state validation returning an error upon any failure.
func (gs *GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.TimelockDelay != 0 {
		if err := gs.Params.ValidateDelay(gs.TimelockDelay); err != nil {
			return err
		}
	}

	if err := validatePositive(gs.MinDeposit, "min deposit"); err != nil {
		return err
	}

	underlyings := make(map[string]UnderlyingInfo, len(gs.Underlyings))
	for _, u := range gs.Underlyings {
		if err := validateDenom(u.Denom, "underlying"); err != nil {
			return err
		}
		if _, exists := underlyings[u.Denom]; exists {
			return ErrInvalidParams.Wrapf("duplicate underlying %s", u.Denom)
		}
		if err := gs.Params.ValidateFee(u.FeeBps); err != nil {
			return err
		}
		if u.Approved && u.WrapperDenom == "" {
			return ErrWrapperNotFound.Wrapf("approved underlying %s", u.Denom)
		}
		underlyings[u.Denom] = u
	}

	aliases := make(map[string]struct{}, len(gs.Aliases))
	for _, a := range gs.Aliases {
		if a.Token == "" || a.Underlying == "" {
			return ErrInvalidDenom.Wrap("alias: empty token or underlying")
		}
		if _, exists := aliases[a.Token]; exists {
			return ErrAliasConflict.Wrapf("duplicate alias for %s", a.Token)
		}
		aliases[a.Token] = struct{}{}
	}

	series := make(map[string]struct{}, len(gs.Series))
	tokens := make(map[string]struct{}, len(gs.Series))
	for _, s := range gs.Series {
		if err := validateMarket(s.Market); err != nil {
			return err
		}
		if !s.Approved {
			return ErrMarketNotApproved.Wrapf("series %s", s.Market)
		}
		if _, exists := series[s.Market]; exists {
			return ErrMarketAlreadyApproved.Wrapf("duplicate series %s", s.Market)
		}
		if _, exists := tokens[s.PrincipalDenom]; exists {
			return ErrMarketAlreadyApproved.Wrapf("principal token %s bound twice", s.PrincipalDenom)
		}
		if u, ok := underlyings[s.Underlying]; !ok || u.WrapperDenom != s.WrapperDenom {
			return ErrWrapperNotFound.Wrapf("series %s underlying %s", s.Market, s.Underlying)
		}
		series[s.Market] = struct{}{}
		tokens[s.PrincipalDenom] = struct{}{}
	}

	for _, m := range gs.Markets {
		if _, ok := series[m.Market]; !ok {
			return ErrMarketNotFound.Wrapf("deposits for unknown market %s", m.Market)
		}
		if err := m.Validate(); err != nil {
			return err
		}
	}

	for _, p := range gs.Pools {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	for _, s := range gs.Streams {
		if _, ok := series[s.Market]; !ok {
			return ErrMarketNotFound.Wrapf("stream %d for unknown market %s", s.ID, s.Market)
		}
	}

	for _, p := range gs.PendingMarkets {
		if _, ok := series[p.Market]; ok {
			return ErrMarketAlreadyApproved.Wrapf("pending market %s", p.Market)
		}
		if err := gs.Params.ValidateTwapDuration(p.TwapDuration); err != nil {
			return err
		}
	}

	if gs.PendingDelay != nil {
		if err := gs.Params.ValidateDelay(gs.PendingDelay.Value); err != nil {
			return err
		}
	}

	if gs.PendingMinDeposit != nil {
		if err := validatePositive(gs.PendingMinDeposit.Value, "pending min deposit"); err != nil {
			return err
		}
	}

	for _, f := range gs.PendingFees {
		if err := gs.Params.ValidateFee(f.Change.Value); err != nil {
			return err
		}
	}

	for _, l := range gs.PendingLimits {
		if l.Change.Value.IsNil() || l.Change.Value.IsNegative() {
			return ErrInvalidAmount.Wrapf("pending limit for %s", l.Key)
		}
	}

	for _, u := range gs.PendingUnderlyings {
		if err := gs.Params.ValidateFee(u.Change.Value); err != nil {
			return err
		}
	}

	return nil
}
