package types

import (
	sdkmath "cosmossdk.io/math"
)

// DepositResult describes how a deposit of principal tokens was paid out
type DepositResult struct {
	Rate     sdkmath.LegacyDec `json:"rate"`
	ToUser   sdkmath.Int       `json:"to_user"`
	ToStream sdkmath.Int       `json:"to_stream"`
	Fee      sdkmath.Int       `json:"fee"`
	FeeDenom string            `json:"fee_denom"`
	StreamID uint64            `json:"stream_id"`
}

// SplitDeposit divides ptAmount into the immediate and streamed parts at the given rate.
// The immediate part rounds down and never exceeds ptAmount.
func SplitDeposit(ptAmount sdkmath.Int, rate sdkmath.LegacyDec) (toUser, toStream sdkmath.Int) {
	toUser = rate.MulInt(ptAmount).TruncateInt()
	if toUser.GT(ptAmount) {
		toUser = ptAmount
	}
	if toUser.IsNegative() {
		toUser = sdkmath.ZeroInt()
	}

	return toUser, ptAmount.Sub(toUser)
}

// ComputeFee returns the fee charged on the immediate payout, rounding down
func ComputeFee(toUser sdkmath.Int, feeBps uint32) sdkmath.Int {
	if feeBps == 0 {
		return sdkmath.ZeroInt()
	}
	return toUser.MulRaw(int64(feeBps)).QuoRaw(BasisPointsDenominator)
}
