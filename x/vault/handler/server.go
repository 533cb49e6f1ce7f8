package handler

import (
	"context"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"pkg.ptvault.dev/node/x/vault/keeper"
	types "pkg.ptvault.dev/node/x/vault/types"
)

type msgServer struct {
	vault keeper.Keeper
}

// NewMsgServerImpl returns the message server of the vault module for the provided keeper
func NewMsgServerImpl(k keeper.Keeper) MsgServer {
	return &msgServer{
		vault: k,
	}
}

var _ MsgServer = msgServer{}

func (ms msgServer) governor(msg interface{ ValidateBasic() error }, authority string) (*keeper.Governor, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return ms.vault.Governor(authority)
}

func (ms msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	gov, err := ms.governor(msg, msg.Authority)
	if err != nil {
		return nil, err
	}

	if err := gov.UpdateParams(sdk.UnwrapSDKContext(ctx), msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}

func (ms msgServer) QueueSetTimelockDelay(ctx context.Context, msg *types.MsgQueueSetTimelockDelay) (*types.MsgQueueResponse, error) {
	gov, err := ms.governor(msg, msg.Authority)
	if err != nil {
		return nil, err
	}

	change, err := gov.QueueSetTimelockDelay(sdk.UnwrapSDKContext(ctx), msg.Delay)
	if err != nil {
		return nil, err
	}

	return &types.MsgQueueResponse{ETA: change.ETA}, nil
}

func (ms msgServer) ExecuteSetTimelockDelay(ctx context.Context, msg *types.MsgExecuteSetTimelockDelay) (*types.MsgExecuteResponse, error) {
	gov, err := ms.governor(msg, msg.Authority)
	if err != nil {
		return nil, err
	}

	if _, err := gov.ExecuteSetTimelockDelay(sdk.UnwrapSDKContext(ctx)); err != nil {
		return nil, err
	}

	return &types.MsgExecuteResponse{}, nil
}

func (ms msgServer) QueueAddMarket(ctx context.Context, msg *types.MsgQueueAddMarket) (*types.MsgQueueResponse, error) {
	gov, err := ms.governor(msg, msg.Authority)
	if err != nil {
		return nil, err
	}

	pending, err := gov.QueueAddMarket(sdk.UnwrapSDKContext(ctx), msg.Market, msg.TwapDuration)
	if err != nil {
		return nil, err
	}

	return &types.MsgQueueResponse{ETA: pending.ETA}, nil
}

func (ms msgServer) ExecuteAddMarket(ctx context.Context, msg *types.MsgExecuteAddMarket) (*types.MsgExecuteResponse, error) {
	gov, err := ms.governor(msg, msg.Authority)
	if err != nil {
		return nil, err
	}

	if _, err := gov.ExecuteAddMarket(sdk.UnwrapSDKContext(ctx), msg.Market); err != nil {
		return nil, err
	}

	return &types.MsgExecuteResponse{}, nil
}

func (ms msgServer) QueueApproveUnderlying(ctx context.Context, msg *types.MsgQueueApproveUnderlying) (*types.MsgQueueResponse, error) {
	gov, err := ms.governor(msg, msg.Authority)
	if err != nil {
		return nil, err
	}

	change, err := gov.QueueApproveUnderlying(sdk.UnwrapSDKContext(ctx), msg.Underlying, msg.FeeBps)
	if err != nil {
		return nil, err
	}

	return &types.MsgQueueResponse{ETA: change.ETA}, nil
}

func (ms msgServer) ExecuteApproveUnderlying(ctx context.Context, msg *types.MsgExecuteApproveUnderlying) (*types.MsgExecuteResponse, error) {
	gov, err := ms.governor(msg, msg.Authority)
	if err != nil {
		return nil, err
	}

	if _, err := gov.ExecuteApproveUnderlying(sdk.UnwrapSDKContext(ctx), msg.Underlying); err != nil {
		return nil, err
	}

	return &types.MsgExecuteResponse{}, nil
}

func (ms msgServer) SetAlias(ctx context.Context, msg *types.MsgSetAlias) (*types.MsgExecuteResponse, error) {
	gov, err := ms.governor(msg, msg.Authority)
	if err != nil {
		return nil, err
	}

	if err := gov.SetAlias(sdk.UnwrapSDKContext(ctx), msg.Token, msg.Underlying); err != nil {
		return nil, err
	}

	return &types.MsgExecuteResponse{}, nil
}

func (ms msgServer) QueueSetFee(ctx context.Context, msg *types.MsgQueueSetFee) (*types.MsgQueueResponse, error) {
	gov, err := ms.governor(msg, msg.Authority)
	if err != nil {
		return nil, err
	}

	change, err := gov.QueueSetFee(sdk.UnwrapSDKContext(ctx), msg.Underlying, msg.FeeBps)
	if err != nil {
		return nil, err
	}

	return &types.MsgQueueResponse{ETA: change.ETA}, nil
}

func (ms msgServer) ExecuteSetFee(ctx context.Context, msg *types.MsgExecuteSetFee) (*types.MsgExecuteResponse, error) {
	gov, err := ms.governor(msg, msg.Authority)
	if err != nil {
		return nil, err
	}

	if _, err := gov.ExecuteSetFee(sdk.UnwrapSDKContext(ctx), msg.Underlying); err != nil {
		return nil, err
	}

	return &types.MsgExecuteResponse{}, nil
}

func (ms msgServer) QueueSetDepositLimit(ctx context.Context, msg *types.MsgQueueSetDepositLimit) (*types.MsgQueueResponse, error) {
	gov, err := ms.governor(msg, msg.Authority)
	if err != nil {
		return nil, err
	}

	change, err := gov.QueueSetDepositLimit(sdk.UnwrapSDKContext(ctx), msg.Market, msg.Limit)
	if err != nil {
		return nil, err
	}

	return &types.MsgQueueResponse{ETA: change.ETA}, nil
}

func (ms msgServer) ExecuteSetDepositLimit(ctx context.Context, msg *types.MsgExecuteSetDepositLimit) (*types.MsgExecuteResponse, error) {
	gov, err := ms.governor(msg, msg.Authority)
	if err != nil {
		return nil, err
	}

	if _, err := gov.ExecuteSetDepositLimit(sdk.UnwrapSDKContext(ctx), msg.Market); err != nil {
		return nil, err
	}

	return &types.MsgExecuteResponse{}, nil
}

func (ms msgServer) QueueSetMinDeposit(ctx context.Context, msg *types.MsgQueueSetMinDeposit) (*types.MsgQueueResponse, error) {
	gov, err := ms.governor(msg, msg.Authority)
	if err != nil {
		return nil, err
	}

	change, err := gov.QueueSetMinDeposit(sdk.UnwrapSDKContext(ctx), msg.Amount)
	if err != nil {
		return nil, err
	}

	return &types.MsgQueueResponse{ETA: change.ETA}, nil
}

func (ms msgServer) ExecuteSetMinDeposit(ctx context.Context, msg *types.MsgExecuteSetMinDeposit) (*types.MsgExecuteResponse, error) {
	gov, err := ms.governor(msg, msg.Authority)
	if err != nil {
		return nil, err
	}

	if _, err := gov.ExecuteSetMinDeposit(sdk.UnwrapSDKContext(ctx)); err != nil {
		return nil, err
	}

	return &types.MsgExecuteResponse{}, nil
}

func (ms msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}

	res, err := ms.vault.Deposit(sdk.UnwrapSDKContext(ctx), sender, msg.Market, msg.Amount, msg.MinToUser)
	if err != nil {
		return nil, err
	}

	return &types.MsgDepositResponse{Result: res}, nil
}

func (ms msgServer) Claim(ctx context.Context, msg *types.MsgClaim) (*types.MsgExecuteResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if err := ms.vault.Claim(sdk.UnwrapSDKContext(ctx), sender, msg.Token, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgExecuteResponse{}, nil
}

func (ms msgServer) SettleMarket(ctx context.Context, msg *types.MsgSettleMarket) (*types.MsgSettleMarketResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	out, err := ms.vault.SettleMarket(sdk.UnwrapSDKContext(ctx), msg.Market)
	if err != nil {
		return nil, err
	}

	return &types.MsgSettleMarketResponse{Redeemed: out}, nil
}

func (ms msgServer) ClaimSettled(ctx context.Context, msg *types.MsgClaimSettled) (*types.MsgExecuteResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if err := ms.vault.ClaimSettled(sdk.UnwrapSDKContext(ctx), sender, msg.Underlying, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgExecuteResponse{}, nil
}
