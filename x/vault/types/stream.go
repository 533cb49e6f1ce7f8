package types

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// StreamRecord indexes a linear stream opened for the streamed part of a deposit
type StreamRecord struct {
	ID        uint64    `json:"id"`
	Market    string    `json:"market"`
	Recipient string    `json:"recipient"`
	Amount    sdk.Coin  `json:"amount"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Duration returns the vesting period of the stream
func (r StreamRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
