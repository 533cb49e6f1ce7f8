package keeper

import (
	"cosmossdk.io/collections"
)

var (
	UnderlyingsKey        = collections.NewPrefix([]byte{0x01, 0x00})
	AliasesKey            = collections.NewPrefix([]byte{0x01, 0x01})
	SeriesKey             = collections.NewPrefix([]byte{0x02, 0x00})
	PrincipalIndexKey     = collections.NewPrefix([]byte{0x02, 0x01})
	ApprovedSequenceKey   = collections.NewPrefix([]byte{0x02, 0x02})
	ApprovedMarketsKey    = collections.NewPrefix([]byte{0x02, 0x03})
	MarketDepositsKey     = collections.NewPrefix([]byte{0x03, 0x00})
	RedemptionPoolsKey    = collections.NewPrefix([]byte{0x03, 0x01})
	StreamsKey            = collections.NewPrefix([]byte{0x04, 0x00})
	StreamsByRecipientKey = collections.NewPrefix([]byte{0x04, 0x01})
	TimelockDelayKey      = collections.NewPrefix([]byte{0x05, 0x00})
	MinDepositKey         = collections.NewPrefix([]byte{0x05, 0x01})
	PendingDelayKey       = collections.NewPrefix([]byte{0x06, 0x00})
	PendingMinDepositKey  = collections.NewPrefix([]byte{0x06, 0x01})
	PendingMarketsKey     = collections.NewPrefix([]byte{0x06, 0x02})
	PendingFeesKey        = collections.NewPrefix([]byte{0x06, 0x03})
	PendingLimitsKey      = collections.NewPrefix([]byte{0x06, 0x04})
	PendingUnderlyingsKey = collections.NewPrefix([]byte{0x06, 0x05})
	ParamsKey             = collections.NewPrefix([]byte{0x09, 0x00}) // key for vault module params
)
