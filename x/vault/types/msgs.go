package types

import (
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgQueueResponse is returned by every queue message
type MsgQueueResponse struct {
	ETA time.Time `json:"eta"`
}

// MsgExecuteResponse is returned by every execute message and by messages without a result
type MsgExecuteResponse struct{}

type MsgDepositResponse struct {
	Result DepositResult `json:"result"`
}

type MsgSettleMarketResponse struct {
	Redeemed sdk.Coin `json:"redeemed"`
}

func validateAddress(addr, field string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid %s address: %s", field, err)
	}
	return nil
}

func validateDenom(denom, field string) error {
	if err := sdk.ValidateDenom(denom); err != nil {
		return ErrInvalidDenom.Wrapf("%s: %s", field, err)
	}
	return nil
}

func validateMarket(market string) error {
	if market == "" {
		return ErrInvalidDenom.Wrap("market: empty identifier")
	}
	return nil
}

func validatePositive(amount sdkmath.Int, field string) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount.Wrapf("%s must be positive", field)
	}
	return nil
}

// MsgUpdateParams replaces the module params. It does not pass through the timelock.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

func (m MsgUpdateParams) ValidateBasic() error {
	if err := m.Params.Validate(); err != nil {
		return err
	}
	return validateAddress(m.Authority, "authority")
}

type MsgUpdateParamsResponse struct{}

// MsgQueueSetTimelockDelay queues a change of the timelock delay
type MsgQueueSetTimelockDelay struct {
	Authority string        `json:"authority"`
	Delay     time.Duration `json:"delay"`
}

func (m MsgQueueSetTimelockDelay) ValidateBasic() error {
	if m.Delay <= 0 {
		return ErrInvalidDelay.Wrap("delay must be positive")
	}
	return validateAddress(m.Authority, "authority")
}

// MsgExecuteSetTimelockDelay applies the queued timelock delay
type MsgExecuteSetTimelockDelay struct {
	Authority string `json:"authority"`
}

func (m MsgExecuteSetTimelockDelay) ValidateBasic() error {
	return validateAddress(m.Authority, "authority")
}

// MsgQueueAddMarket queues a market for onboarding
type MsgQueueAddMarket struct {
	Authority    string        `json:"authority"`
	Market       string        `json:"market"`
	TwapDuration time.Duration `json:"twap_duration"`
}

func (m MsgQueueAddMarket) ValidateBasic() error {
	if err := validateMarket(m.Market); err != nil {
		return err
	}
	if m.TwapDuration <= 0 {
		return ErrInvalidTwapDuration.Wrap("twap duration must be positive")
	}
	return validateAddress(m.Authority, "authority")
}

// MsgExecuteAddMarket approves a queued market
type MsgExecuteAddMarket struct {
	Authority string `json:"authority"`
	Market    string `json:"market"`
}

func (m MsgExecuteAddMarket) ValidateBasic() error {
	if err := validateMarket(m.Market); err != nil {
		return err
	}
	return validateAddress(m.Authority, "authority")
}

// MsgQueueApproveUnderlying queues the approval of a canonical underlying
type MsgQueueApproveUnderlying struct {
	Authority  string `json:"authority"`
	Underlying string `json:"underlying"`
	FeeBps     uint32 `json:"fee_bps"`
}

func (m MsgQueueApproveUnderlying) ValidateBasic() error {
	if err := validateDenom(m.Underlying, "underlying"); err != nil {
		return err
	}
	if m.FeeBps > BasisPointsDenominator {
		return ErrInvalidFee.Wrapf("%d bps", m.FeeBps)
	}
	return validateAddress(m.Authority, "authority")
}

// MsgExecuteApproveUnderlying applies a queued underlying approval
type MsgExecuteApproveUnderlying struct {
	Authority  string `json:"authority"`
	Underlying string `json:"underlying"`
}

func (m MsgExecuteApproveUnderlying) ValidateBasic() error {
	if err := validateDenom(m.Underlying, "underlying"); err != nil {
		return err
	}
	return validateAddress(m.Authority, "authority")
}

// MsgSetAlias binds a token to a canonical underlying
type MsgSetAlias struct {
	Authority  string `json:"authority"`
	Token      string `json:"token"`
	Underlying string `json:"underlying"`
}

func (m MsgSetAlias) ValidateBasic() error {
	if err := validateDenom(m.Token, "token"); err != nil {
		return err
	}
	if err := validateDenom(m.Underlying, "underlying"); err != nil {
		return err
	}
	return validateAddress(m.Authority, "authority")
}

// MsgQueueSetFee queues a fee update for an approved underlying
type MsgQueueSetFee struct {
	Authority  string `json:"authority"`
	Underlying string `json:"underlying"`
	FeeBps     uint32 `json:"fee_bps"`
}

func (m MsgQueueSetFee) ValidateBasic() error {
	if err := validateDenom(m.Underlying, "underlying"); err != nil {
		return err
	}
	if m.FeeBps > BasisPointsDenominator {
		return ErrInvalidFee.Wrapf("%d bps", m.FeeBps)
	}
	return validateAddress(m.Authority, "authority")
}

// MsgExecuteSetFee applies a queued fee update
type MsgExecuteSetFee struct {
	Authority  string `json:"authority"`
	Underlying string `json:"underlying"`
}

func (m MsgExecuteSetFee) ValidateBasic() error {
	if err := validateDenom(m.Underlying, "underlying"); err != nil {
		return err
	}
	return validateAddress(m.Authority, "authority")
}

// MsgQueueSetDepositLimit queues a deposit limit for an approved market
type MsgQueueSetDepositLimit struct {
	Authority string      `json:"authority"`
	Market    string      `json:"market"`
	Limit     sdkmath.Int `json:"limit"`
}

func (m MsgQueueSetDepositLimit) ValidateBasic() error {
	if err := validateMarket(m.Market); err != nil {
		return err
	}
	if m.Limit.IsNil() || m.Limit.IsNegative() {
		return ErrInvalidAmount.Wrap("limit must not be negative")
	}
	return validateAddress(m.Authority, "authority")
}

// MsgExecuteSetDepositLimit applies a queued deposit limit
type MsgExecuteSetDepositLimit struct {
	Authority string `json:"authority"`
	Market    string `json:"market"`
}

func (m MsgExecuteSetDepositLimit) ValidateBasic() error {
	if err := validateMarket(m.Market); err != nil {
		return err
	}
	return validateAddress(m.Authority, "authority")
}

// MsgQueueSetMinDeposit queues a change of the minimum deposit
type MsgQueueSetMinDeposit struct {
	Authority string      `json:"authority"`
	Amount    sdkmath.Int `json:"amount"`
}

func (m MsgQueueSetMinDeposit) ValidateBasic() error {
	if err := validatePositive(m.Amount, "min deposit"); err != nil {
		return err
	}
	return validateAddress(m.Authority, "authority")
}

// MsgExecuteSetMinDeposit applies the queued minimum deposit
type MsgExecuteSetMinDeposit struct {
	Authority string `json:"authority"`
}

func (m MsgExecuteSetMinDeposit) ValidateBasic() error {
	return validateAddress(m.Authority, "authority")
}

// MsgDeposit deposits principal tokens of an approved market
type MsgDeposit struct {
	Sender string      `json:"sender"`
	Market string      `json:"market"`
	Amount sdkmath.Int `json:"amount"`
	// MinToUser is optional, nil or zero disables the check
	MinToUser sdkmath.Int `json:"min_to_user"`
}

func (m MsgDeposit) ValidateBasic() error {
	if err := validateMarket(m.Market); err != nil {
		return err
	}
	if err := validatePositive(m.Amount, "amount"); err != nil {
		return err
	}
	if !m.MinToUser.IsNil() && m.MinToUser.IsNegative() {
		return ErrInvalidAmount.Wrap("min to user must not be negative")
	}
	return validateAddress(m.Sender, "sender")
}

// MsgClaim exchanges wrapper tokens for reserve principal tokens after maturity
type MsgClaim struct {
	Sender string      `json:"sender"`
	Token  string      `json:"token"`
	Amount sdkmath.Int `json:"amount"`
}

func (m MsgClaim) ValidateBasic() error {
	if err := validateDenom(m.Token, "token"); err != nil {
		return err
	}
	if err := validatePositive(m.Amount, "amount"); err != nil {
		return err
	}
	return validateAddress(m.Sender, "sender")
}

// MsgSettleMarket redeems the reserve of a matured market into its redemption pool
type MsgSettleMarket struct {
	Sender string `json:"sender"`
	Market string `json:"market"`
}

func (m MsgSettleMarket) ValidateBasic() error {
	if err := validateMarket(m.Market); err != nil {
		return err
	}
	return validateAddress(m.Sender, "sender")
}

// MsgClaimSettled exchanges wrapper tokens against a redemption pool
type MsgClaimSettled struct {
	Sender     string      `json:"sender"`
	Underlying string      `json:"underlying"`
	Amount     sdkmath.Int `json:"amount"`
}

func (m MsgClaimSettled) ValidateBasic() error {
	if err := validateDenom(m.Underlying, "underlying"); err != nil {
		return err
	}
	if err := validatePositive(m.Amount, "amount"); err != nil {
		return err
	}
	return validateAddress(m.Sender, "sender")
}
