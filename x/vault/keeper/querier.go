package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkquery "github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	types "pkg.ptvault.dev/node/x/vault/types"
)

type Querier struct {
	*keeper
}

func (qs Querier) Params(ctx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	sctx := sdk.UnwrapSDKContext(ctx)

	params, err := qs.GetParams(sctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

func (qs Querier) Timelock(ctx context.Context, _ *types.QueryTimelockRequest) (*types.QueryTimelockResponse, error) {
	sctx := sdk.UnwrapSDKContext(ctx)

	delay, err := qs.GetTimelockDelay(sctx)
	if err != nil {
		return nil, err
	}

	minDeposit, err := qs.GetMinDeposit(sctx)
	if err != nil {
		return nil, err
	}

	res := &types.QueryTimelockResponse{
		Delay:      delay,
		MinDeposit: minDeposit,
	}

	if res.PendingDelay, err = optional(sctx, qs.pendingDelay); err != nil {
		return nil, err
	}
	if res.PendingMinDeposit, err = optional(sctx, qs.pendingMinDeposit); err != nil {
		return nil, err
	}

	return res, nil
}

func (qs Querier) Series(ctx context.Context, req *types.QuerySeriesRequest) (*types.QuerySeriesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	sctx := sdk.UnwrapSDKContext(ctx)

	series, found, err := qs.GetSeries(sctx, req.Market)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "market %s not approved", req.Market)
	}

	deposits, err := qs.GetMarketDeposits(sctx, req.Market)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	res := &types.QuerySeriesResponse{
		Series:   series,
		Deposits: deposits,
	}

	if res.PendingLimit, err = pendingEntry(sctx, qs.pendingLimits, req.Market); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return res, nil
}

func (qs Querier) AllSeries(ctx context.Context, req *types.QueryAllSeriesRequest) (*types.QueryAllSeriesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	sctx := sdk.UnwrapSDKContext(ctx)

	series, pageRes, err := sdkquery.CollectionPaginate(sctx, qs.approved, req.Pagination, func(_ uint64, market string) (types.SeriesInfo, error) {
		return qs.series.Get(sctx, market)
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryAllSeriesResponse{
		Series:     series,
		Pagination: pageRes,
	}, nil
}

func (qs Querier) PendingMarkets(ctx context.Context, req *types.QueryPendingMarketsRequest) (*types.QueryPendingMarketsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	sctx := sdk.UnwrapSDKContext(ctx)

	markets, pageRes, err := sdkquery.CollectionPaginate(sctx, qs.pendingMarkets, req.Pagination, func(_ string, pending types.PendingMarket) (types.PendingMarket, error) {
		return pending, nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryPendingMarketsResponse{
		Markets:    markets,
		Pagination: pageRes,
	}, nil
}

func (qs Querier) Underlying(ctx context.Context, req *types.QueryUnderlyingRequest) (*types.QueryUnderlyingResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	sctx := sdk.UnwrapSDKContext(ctx)

	info, found, err := qs.GetUnderlying(sctx, req.Denom)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	res := &types.QueryUnderlyingResponse{Underlying: info}

	if res.PendingApproval, err = pendingEntry(sctx, qs.pendingUnderlyings, req.Denom); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !found && res.PendingApproval == nil {
		return nil, status.Errorf(codes.NotFound, "underlying %s not registered", req.Denom)
	}

	if res.Pool, err = qs.GetRedemptionPool(sctx, req.Denom); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if res.PendingFee, err = pendingEntry(sctx, qs.pendingFees, req.Denom); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return res, nil
}

func (qs Querier) Alias(ctx context.Context, req *types.QueryAliasRequest) (*types.QueryAliasResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	sctx := sdk.UnwrapSDKContext(ctx)

	underlying, found, err := qs.ResolveAlias(sctx, req.Token)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "no alias for %s", req.Token)
	}

	return &types.QueryAliasResponse{Underlying: underlying}, nil
}

func (qs Querier) Streams(ctx context.Context, req *types.QueryStreamsRequest) (*types.QueryStreamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	recipient, err := sdk.AccAddressFromBech32(req.Recipient)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	sctx := sdk.UnwrapSDKContext(ctx)

	streams, pageRes, err := sdkquery.CollectionPaginate(sctx, qs.streamsByRecipient, req.Pagination,
		func(key collections.Pair[sdk.AccAddress, uint64], _ collections.NoValue) (types.StreamRecord, error) {
			return qs.streams.Get(sctx, key.K2())
		},
		sdkquery.WithCollectionPaginationPairPrefix[sdk.AccAddress, uint64](recipient),
	)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryStreamsResponse{
		Streams:    streams,
		Pagination: pageRes,
	}, nil
}

func (qs Querier) PreviewDeposit(ctx context.Context, req *types.QueryPreviewDepositRequest) (*types.QueryPreviewDepositResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	sctx := sdk.UnwrapSDKContext(ctx)

	res, err := qs.keeper.PreviewDeposit(sctx, req.Market, req.Amount)
	if err != nil {
		return nil, err
	}

	return &types.QueryPreviewDepositResponse{Result: res}, nil
}

func pendingEntry[T any](sctx sdk.Context, m collections.Map[string, types.PendingChange[T]], key string) (*types.PendingChange[T], error) {
	change, err := m.Get(sctx, key)
	if errors.Is(err, collections.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &change, nil
}
