package types

import (
	errorsmod "cosmossdk.io/errors"
)

const (
	errInvalidParams uint32 = iota + 2
	errInvalidDelay
	errInvalidTwapDuration
	errInvalidFee
	errInvalidAmount
	errInvalidDenom
	errAmountBelowMinimum
	errAlreadyQueued
	errNotQueued
	errTimelockNotElapsed
	errMarketAlreadyApproved
	errMarketNotApproved
	errMarketNotFound
	errMarketMatured
	errMarketNotMatured
	errMarketSettled
	errUnderlyingNotResolved
	errUnderlyingNotApproved
	errUnderlyingAlreadyApproved
	errWrapperNotFound
	errAliasConflict
	errOracleQuery
	errOracleNotReady
	errObservationCapacity
	errInvalidRate
	errZeroStream
	errSlippage
	errDepositLimitExceeded
	errStreamFailed
	errRedemptionFailed
	errInsufficientReserve
	errAccountingMismatch
	errInsufficientPool
	errReentrantCall
)

// Precondition violations
var (
	// ErrInvalidParams is returned when module parameters fail validation
	ErrInvalidParams = errorsmod.Register(ModuleName, errInvalidParams, "invalid params")
	// ErrInvalidDelay is returned when a timelock delay is outside of the configured bounds
	ErrInvalidDelay = errorsmod.Register(ModuleName, errInvalidDelay, "timelock delay out of bounds")
	// ErrInvalidTwapDuration is returned when a TWAP duration is outside of the configured bounds
	ErrInvalidTwapDuration = errorsmod.Register(ModuleName, errInvalidTwapDuration, "twap duration out of bounds")
	// ErrInvalidFee is returned when a fee exceeds the maximum basis points
	ErrInvalidFee = errorsmod.Register(ModuleName, errInvalidFee, "fee exceeds maximum")
	// ErrInvalidAmount is returned for zero or negative amounts
	ErrInvalidAmount = errorsmod.Register(ModuleName, errInvalidAmount, "invalid amount")
	// ErrInvalidDenom is returned for empty or malformed token identifiers
	ErrInvalidDenom = errorsmod.Register(ModuleName, errInvalidDenom, "invalid denom")
	// ErrAmountBelowMinimum is returned when a deposit is below the minimum deposit amount
	ErrAmountBelowMinimum = errorsmod.Register(ModuleName, errAmountBelowMinimum, "amount below minimum deposit")
)

// State conflicts
var (
	ErrAlreadyQueued             = errorsmod.Register(ModuleName, errAlreadyQueued, "change already queued")
	ErrNotQueued                 = errorsmod.Register(ModuleName, errNotQueued, "nothing queued")
	ErrMarketAlreadyApproved     = errorsmod.Register(ModuleName, errMarketAlreadyApproved, "market already approved")
	ErrMarketNotApproved         = errorsmod.Register(ModuleName, errMarketNotApproved, "market not approved")
	ErrMarketNotFound            = errorsmod.Register(ModuleName, errMarketNotFound, "market not found")
	ErrMarketSettled             = errorsmod.Register(ModuleName, errMarketSettled, "market already settled")
	ErrUnderlyingNotResolved     = errorsmod.Register(ModuleName, errUnderlyingNotResolved, "underlying could not be resolved")
	ErrUnderlyingNotApproved     = errorsmod.Register(ModuleName, errUnderlyingNotApproved, "underlying not approved")
	ErrUnderlyingAlreadyApproved = errorsmod.Register(ModuleName, errUnderlyingAlreadyApproved, "underlying already approved")
	ErrWrapperNotFound           = errorsmod.Register(ModuleName, errWrapperNotFound, "wrapper token not found")
	ErrAliasConflict             = errorsmod.Register(ModuleName, errAliasConflict, "alias already set to a different underlying")
	ErrReentrantCall             = errorsmod.Register(ModuleName, errReentrantCall, "reentrant call")
)

// Timing errors
var (
	ErrTimelockNotElapsed = errorsmod.Register(ModuleName, errTimelockNotElapsed, "timelock not elapsed")
	ErrMarketMatured      = errorsmod.Register(ModuleName, errMarketMatured, "market matured")
	ErrMarketNotMatured   = errorsmod.Register(ModuleName, errMarketNotMatured, "market not matured")
)

// External dependency failures
var (
	ErrOracleQuery         = errorsmod.Register(ModuleName, errOracleQuery, "oracle query failed")
	ErrOracleNotReady      = errorsmod.Register(ModuleName, errOracleNotReady, "oracle not ready")
	ErrObservationCapacity = errorsmod.Register(ModuleName, errObservationCapacity, "observation capacity increase failed")
	ErrInvalidRate         = errorsmod.Register(ModuleName, errInvalidRate, "oracle rate out of range")
	ErrStreamFailed        = errorsmod.Register(ModuleName, errStreamFailed, "stream creation failed")
	ErrRedemptionFailed    = errorsmod.Register(ModuleName, errRedemptionFailed, "yield token redemption failed")
)

// Deposit guards and accounting consistency
var (
	ErrZeroStream           = errorsmod.Register(ModuleName, errZeroStream, "deposit creates no stream")
	ErrSlippage             = errorsmod.Register(ModuleName, errSlippage, "immediate payout below minimum")
	ErrDepositLimitExceeded = errorsmod.Register(ModuleName, errDepositLimitExceeded, "deposit limit exceeded")
	ErrInsufficientReserve  = errorsmod.Register(ModuleName, errInsufficientReserve, "insufficient principal token reserve")
	ErrAccountingMismatch   = errorsmod.Register(ModuleName, errAccountingMismatch, "amount exceeds tracked deposits")
	ErrInsufficientPool     = errorsmod.Register(ModuleName, errInsufficientPool, "amount exceeds claimable redemption pool")
)
