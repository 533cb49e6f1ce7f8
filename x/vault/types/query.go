package types

import (
	"time"

	sdkmath "cosmossdk.io/math"
	sdkquery "github.com/cosmos/cosmos-sdk/types/query"
)

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryTimelockRequest struct{}

type QueryTimelockResponse struct {
	Delay             time.Duration                 `json:"delay"`
	MinDeposit        sdkmath.Int                   `json:"min_deposit"`
	PendingDelay      *PendingChange[time.Duration] `json:"pending_delay,omitempty"`
	PendingMinDeposit *PendingChange[sdkmath.Int]   `json:"pending_min_deposit,omitempty"`
}

type QuerySeriesRequest struct {
	Market string `json:"market"`
}

type QuerySeriesResponse struct {
	Series   SeriesInfo     `json:"series"`
	Deposits MarketDeposits `json:"deposits"`
	// PendingLimit is set while a deposit limit change is queued
	PendingLimit *LimitChange `json:"pending_limit,omitempty"`
}

type QueryAllSeriesRequest struct {
	Pagination *sdkquery.PageRequest `json:"pagination,omitempty"`
}

type QueryAllSeriesResponse struct {
	Series     []SeriesInfo           `json:"series"`
	Pagination *sdkquery.PageResponse `json:"pagination,omitempty"`
}

type QueryPendingMarketsRequest struct {
	Pagination *sdkquery.PageRequest `json:"pagination,omitempty"`
}

type QueryPendingMarketsResponse struct {
	Markets    []PendingMarket        `json:"markets"`
	Pagination *sdkquery.PageResponse `json:"pagination,omitempty"`
}

type QueryUnderlyingRequest struct {
	Denom string `json:"denom"`
}

type QueryUnderlyingResponse struct {
	Underlying      UnderlyingInfo      `json:"underlying"`
	Pool            RedemptionPool      `json:"pool"`
	PendingFee      *FeeChange          `json:"pending_fee,omitempty"`
	PendingApproval *UnderlyingApproval `json:"pending_approval,omitempty"`
}

type QueryAliasRequest struct {
	Token string `json:"token"`
}

type QueryAliasResponse struct {
	Underlying string `json:"underlying"`
}

type QueryStreamsRequest struct {
	Recipient  string                `json:"recipient"`
	Pagination *sdkquery.PageRequest `json:"pagination,omitempty"`
}

type QueryStreamsResponse struct {
	Streams    []StreamRecord         `json:"streams"`
	Pagination *sdkquery.PageResponse `json:"pagination,omitempty"`
}

type QueryPreviewDepositRequest struct {
	Market string      `json:"market"`
	Amount sdkmath.Int `json:"amount"`
}

type QueryPreviewDepositResponse struct {
	Result DepositResult `json:"result"`
}
