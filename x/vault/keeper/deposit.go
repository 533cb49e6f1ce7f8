package keeper

import (
	"time"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"pkg.ptvault.dev/node/x/vault/imports"
	types "pkg.ptvault.dev/node/x/vault/types"
)

type depositQuote struct {
	series   types.SeriesInfo
	deposits types.MarketDeposits
	params   types.Params
	result   types.DepositResult
}

// rate returns the oracle rate of a market at its frozen TWAP window, bounded to [MinRate, 1]
func (k *keeper) rate(sctx sdk.Context, series types.SeriesInfo, params types.Params) (sdkmath.LegacyDec, error) {
	rate, err := k.oracleKeeper.GetPtToAssetRate(sctx, series.Market, series.TwapDuration)
	if err != nil {
		return sdkmath.LegacyDec{}, types.ErrOracleQuery.Wrapf("market %s: %s", series.Market, err)
	}

	if rate.IsNil() {
		return sdkmath.LegacyDec{}, types.ErrInvalidRate.Wrapf("market %s: oracle returned no rate", series.Market)
	}
	if !rate.IsPositive() {
		return sdkmath.LegacyDec{}, types.ErrInvalidRate.Wrapf("market %s rate %s not positive", series.Market, rate)
	}
	if rate.GT(sdkmath.LegacyOneDec()) {
		return sdkmath.LegacyDec{}, types.ErrInvalidRate.Wrapf("market %s rate %s above par", series.Market, rate)
	}
	if !params.MinRate.IsZero() && rate.LT(params.MinRate) {
		return sdkmath.LegacyDec{}, types.ErrInvalidRate.Wrapf("market %s rate %s below floor %s", series.Market, rate, params.MinRate)
	}

	return rate, nil
}

// quote runs every check of a deposit and computes its split without moving funds
func (k *keeper) quote(sctx sdk.Context, market string, ptAmount sdkmath.Int) (depositQuote, error) {
	var q depositQuote

	if ptAmount.IsNil() || !ptAmount.IsPositive() {
		return q, types.ErrInvalidAmount.Wrap("deposit amount must be positive")
	}

	series, err := k.approvedSeries(sctx, market)
	if err != nil {
		return q, err
	}

	minDeposit, err := k.GetMinDeposit(sctx)
	if err != nil {
		return q, err
	}
	if ptAmount.LT(minDeposit) {
		return q, types.ErrAmountBelowMinimum.Wrapf("%s < %s", ptAmount, minDeposit)
	}

	if series.IsMatured(sctx.BlockTime()) {
		return q, types.ErrMarketMatured.Wrapf("market %s expired at %s", market, series.Expiry)
	}

	deposits, err := k.GetMarketDeposits(sctx, market)
	if err != nil {
		return q, err
	}
	if headroom, limited := deposits.Headroom(); limited && ptAmount.GT(headroom) {
		return q, types.ErrDepositLimitExceeded.Wrapf("market %s: %s + %s > %s", market, deposits.TotalDeposited, ptAmount, deposits.DepositLimit)
	}

	params, err := k.GetParams(sctx)
	if err != nil {
		return q, err
	}

	rate, err := k.rate(sctx, series, params)
	if err != nil {
		return q, err
	}

	toUser, toStream := types.SplitDeposit(ptAmount, rate)
	if !toStream.IsPositive() {
		return q, types.ErrZeroStream.Wrapf("market %s rate %s", market, rate)
	}

	info, found, err := k.GetUnderlying(sctx, series.Underlying)
	if err != nil {
		return q, err
	}
	if !found || !info.Approved {
		return q, types.ErrUnderlyingNotApproved.Wrap(series.Underlying)
	}

	q = depositQuote{
		series:   series,
		deposits: deposits,
		params:   params,
		result: types.DepositResult{
			Rate:     rate,
			ToUser:   toUser,
			ToStream: toStream,
			Fee:      types.ComputeFee(toUser, info.FeeBps),
			FeeDenom: series.Underlying,
		},
	}

	return q, nil
}

// PreviewDeposit returns the payout a deposit would produce at the current oracle rate
func (k *keeper) PreviewDeposit(sctx sdk.Context, market string, ptAmount sdkmath.Int) (types.DepositResult, error) {
	q, err := k.quote(sctx, market, ptAmount)
	return q.result, err
}

// Deposit takes ptAmount of the principal token of market into custody, pays the immediate part in
// wrapper tokens and streams the remainder to the sender until maturity
func (k *keeper) Deposit(sctx sdk.Context, sender sdk.AccAddress, market string, ptAmount, minToUser sdkmath.Int) (res types.DepositResult, err error) {
	startAt := time.Now()
	defer telemetry.ModuleMeasureSince(types.ModuleName, startAt, opDeposit)
	defer func() {
		k.metrics.observe(opDeposit, startAt, err)
	}()

	err = k.guarded(sctx, func(sctx sdk.Context) error {
		q, err := k.quote(sctx, market, ptAmount)
		if err != nil {
			return err
		}

		if !minToUser.IsNil() && q.result.ToUser.LT(minToUser) {
			return types.ErrSlippage.Wrapf("%s < %s", q.result.ToUser, minToUser)
		}

		res, err = k.executeDeposit(sctx, sender, ptAmount, q)
		return err
	})
	if err != nil {
		return types.DepositResult{}, err
	}

	k.metrics.addVolume(opDeposit, market, ptAmount)

	return res, nil
}

func (k *keeper) executeDeposit(sctx sdk.Context, sender sdk.AccAddress, ptAmount sdkmath.Int, q depositQuote) (types.DepositResult, error) {
	series := q.series
	res := q.result
	now := sctx.BlockTime()

	pt := sdk.NewCoin(series.PrincipalDenom, ptAmount)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(sctx, sender, types.ModuleName, sdk.NewCoins(pt)); err != nil {
		return res, err
	}

	if res.Fee.IsPositive() {
		if err := k.collectFee(sctx, sender, q.params, sdk.NewCoin(res.FeeDenom, res.Fee)); err != nil {
			return res, err
		}
	}

	if err := k.bankKeeper.MintCoins(sctx, types.ModuleName, sdk.NewCoins(sdk.NewCoin(series.WrapperDenom, ptAmount))); err != nil {
		return res, err
	}

	if res.ToUser.IsPositive() {
		payout := sdk.NewCoins(sdk.NewCoin(series.WrapperDenom, res.ToUser))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(sctx, types.ModuleName, sender, payout); err != nil {
			return res, err
		}
	}

	streamed := sdk.NewCoin(series.WrapperDenom, res.ToStream)
	duration := series.Expiry.Sub(now)

	id, err := k.streamKeeper.CreateLinearStream(sctx, imports.LinearStream{
		Sender:       k.moduleAddress(),
		Recipient:    sender,
		Amount:       streamed,
		Cliff:        0,
		Duration:     duration,
		Cancelable:   false,
		Transferable: true,
	})
	if err != nil {
		return res, types.ErrStreamFailed.Wrapf("market %s: %s", series.Market, err)
	}
	res.StreamID = id

	if err := k.recordStream(sctx, types.StreamRecord{
		ID:        id,
		Market:    series.Market,
		Recipient: sender.String(),
		Amount:    streamed,
		StartTime: now.UTC(),
		EndTime:   now.Add(duration).UTC(),
	}); err != nil {
		return res, err
	}

	deposits := q.deposits
	deposits.TotalDeposited = deposits.TotalDeposited.Add(ptAmount)
	if err := k.deposits.Set(sctx, series.Market, deposits); err != nil {
		return res, err
	}

	k.Logger(sctx).Debug("deposit",
		"market", series.Market,
		"sender", sender.String(),
		"amount", ptAmount,
		"to_user", res.ToUser,
		"to_stream", res.ToStream,
		"fee", res.Fee,
		"stream", id,
	)
	sctx.EventManager().EmitEvent(types.NewEventDeposit(sender, series.Market, ptAmount, res).ToSDKEvent())

	return res, nil
}

// collectFee pays the deposit fee to the treasury, or to the fee collector when no treasury is set.
// Fees never land in the vault account.
func (k *keeper) collectFee(sctx sdk.Context, sender sdk.AccAddress, params types.Params, fee sdk.Coin) error {
	if params.Treasury == "" {
		return k.bankKeeper.SendCoinsFromAccountToModule(sctx, sender, authtypes.FeeCollectorName, sdk.NewCoins(fee))
	}

	treasury, err := sdk.AccAddressFromBech32(params.Treasury)
	if err != nil {
		return err
	}

	return k.bankKeeper.SendCoins(sctx, sender, treasury, sdk.NewCoins(fee))
}

func (k *keeper) recordStream(sctx sdk.Context, record types.StreamRecord) error {
	recipient, err := sdk.AccAddressFromBech32(record.Recipient)
	if err != nil {
		return err
	}

	if err := k.streams.Set(sctx, record.ID, record); err != nil {
		return err
	}

	return k.streamsByRecipient.Set(sctx, collections.Join(recipient, record.ID))
}
