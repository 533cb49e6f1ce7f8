package handler

import (
	"context"
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"pkg.ptvault.dev/node/x/vault/keeper"
	types "pkg.ptvault.dev/node/x/vault/types"
)

// MsgServer is the message service of the vault module
type MsgServer interface {
	UpdateParams(context.Context, *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error)
	QueueSetTimelockDelay(context.Context, *types.MsgQueueSetTimelockDelay) (*types.MsgQueueResponse, error)
	ExecuteSetTimelockDelay(context.Context, *types.MsgExecuteSetTimelockDelay) (*types.MsgExecuteResponse, error)
	QueueAddMarket(context.Context, *types.MsgQueueAddMarket) (*types.MsgQueueResponse, error)
	ExecuteAddMarket(context.Context, *types.MsgExecuteAddMarket) (*types.MsgExecuteResponse, error)
	QueueApproveUnderlying(context.Context, *types.MsgQueueApproveUnderlying) (*types.MsgQueueResponse, error)
	ExecuteApproveUnderlying(context.Context, *types.MsgExecuteApproveUnderlying) (*types.MsgExecuteResponse, error)
	SetAlias(context.Context, *types.MsgSetAlias) (*types.MsgExecuteResponse, error)
	QueueSetFee(context.Context, *types.MsgQueueSetFee) (*types.MsgQueueResponse, error)
	ExecuteSetFee(context.Context, *types.MsgExecuteSetFee) (*types.MsgExecuteResponse, error)
	QueueSetDepositLimit(context.Context, *types.MsgQueueSetDepositLimit) (*types.MsgQueueResponse, error)
	ExecuteSetDepositLimit(context.Context, *types.MsgExecuteSetDepositLimit) (*types.MsgExecuteResponse, error)
	QueueSetMinDeposit(context.Context, *types.MsgQueueSetMinDeposit) (*types.MsgQueueResponse, error)
	ExecuteSetMinDeposit(context.Context, *types.MsgExecuteSetMinDeposit) (*types.MsgExecuteResponse, error)
	Deposit(context.Context, *types.MsgDeposit) (*types.MsgDepositResponse, error)
	Claim(context.Context, *types.MsgClaim) (*types.MsgExecuteResponse, error)
	SettleMarket(context.Context, *types.MsgSettleMarket) (*types.MsgSettleMarketResponse, error)
	ClaimSettled(context.Context, *types.MsgClaimSettled) (*types.MsgExecuteResponse, error)
}

// Handler routes a vault message to its msg server method
type Handler func(ctx sdk.Context, msg any) (*sdk.Result, error)

// NewHandler returns a handler for "vault" type messages.
func NewHandler(k keeper.Keeper) Handler {
	ms := NewMsgServerImpl(k)

	return func(ctx sdk.Context, msg any) (*sdk.Result, error) {
		switch msg := msg.(type) {
		case *types.MsgUpdateParams:
			res, err := ms.UpdateParams(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgQueueSetTimelockDelay:
			res, err := ms.QueueSetTimelockDelay(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgExecuteSetTimelockDelay:
			res, err := ms.ExecuteSetTimelockDelay(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgQueueAddMarket:
			res, err := ms.QueueAddMarket(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgExecuteAddMarket:
			res, err := ms.ExecuteAddMarket(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgQueueApproveUnderlying:
			res, err := ms.QueueApproveUnderlying(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgExecuteApproveUnderlying:
			res, err := ms.ExecuteApproveUnderlying(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgSetAlias:
			res, err := ms.SetAlias(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgQueueSetFee:
			res, err := ms.QueueSetFee(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgExecuteSetFee:
			res, err := ms.ExecuteSetFee(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgQueueSetDepositLimit:
			res, err := ms.QueueSetDepositLimit(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgExecuteSetDepositLimit:
			res, err := ms.ExecuteSetDepositLimit(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgQueueSetMinDeposit:
			res, err := ms.QueueSetMinDeposit(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgExecuteSetMinDeposit:
			res, err := ms.ExecuteSetMinDeposit(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgDeposit:
			res, err := ms.Deposit(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgClaim:
			res, err := ms.Claim(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgSettleMarket:
			res, err := ms.SettleMarket(ctx, msg)
			return result(ctx, res, err)
		case *types.MsgClaimSettled:
			res, err := ms.ClaimSettled(ctx, msg)
			return result(ctx, res, err)
		default:
			return nil, sdkerrors.ErrUnknownRequest.Wrapf("unrecognized vault message type: %T", msg)
		}
	}
}

func result[R any](ctx sdk.Context, res *R, err error) (*sdk.Result, error) {
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(res)
	if err != nil {
		return nil, sdkerrors.ErrJSONMarshal.Wrap(err.Error())
	}

	return &sdk.Result{
		Data:   data,
		Events: ctx.EventManager().ABCIEvents(),
	}, nil
}
