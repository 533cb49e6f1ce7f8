package types

import (
	"strconv"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"pkg.ptvault.dev/node/sdkutil"
)

const (
	evActionMarketQueued       = "market-queued"
	evActionMarketApproved     = "market-approved"
	evActionUnderlyingQueued   = "underlying-queued"
	evActionUnderlyingApproved = "underlying-approved"
	evActionAliasSet           = "alias-set"
	evActionFeeQueued          = "fee-queued"
	evActionFeeUpdated         = "fee-updated"
	evActionDelayQueued        = "delay-queued"
	evActionDelayExecuted      = "delay-executed"
	evActionMinDepositQueued   = "min-deposit-queued"
	evActionMinDepositUpdated  = "min-deposit-updated"
	evActionLimitQueued        = "deposit-limit-queued"
	evActionLimitSet           = "deposit-limit-set"
	evActionDeposit            = "deposit"
	evActionClaim              = "claim"
	evActionMarketSettled      = "market-settled"
	evActionClaimSettled       = "claim-settled"

	evMarketKey     = "market"
	evUnderlyingKey = "underlying"
	evTokenKey      = "token"
	evWrapperKey    = "wrapper"
	evTwapKey       = "twap"
	evETAKey        = "eta"
	evExpiryKey     = "expiry"
	evFeeBpsKey     = "fee-bps"
	evDelayKey      = "delay"
	evAmountKey     = "amount"
	evLimitKey      = "limit"
	evSenderKey     = "sender"
	evToUserKey     = "to-user"
	evToStreamKey   = "to-stream"
	evFeeKey        = "fee"
	evStreamIDKey   = "stream-id"
	evAssetOutKey   = "asset-out"
)

func newModuleEvent(action string, attrs ...sdk.Attribute) sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append([]sdk.Attribute{
			sdk.NewAttribute(sdk.AttributeKeyModule, ModuleName),
			sdk.NewAttribute(sdk.AttributeKeyAction, action),
		}, attrs...)...,
	)
}

func baseEvent(action string) sdkutil.BaseModuleEvent {
	return sdkutil.BaseModuleEvent{
		Module: ModuleName,
		Action: action,
	}
}

func timeAttr(key string, t time.Time) sdk.Attribute {
	return sdk.NewAttribute(key, t.UTC().Format(time.RFC3339Nano))
}

func parseTime(attrs []sdk.Attribute, key string) (time.Time, error) {
	val, err := sdkutil.GetString(attrs, key)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339Nano, val)
}

func parseDuration(attrs []sdk.Attribute, key string) (time.Duration, error) {
	val, err := sdkutil.GetString(attrs, key)
	if err != nil {
		return 0, err
	}
	return time.ParseDuration(val)
}

func parseBps(attrs []sdk.Attribute, key string) (uint32, error) {
	val, err := sdkutil.GetUint64(attrs, key)
	if err != nil {
		return 0, err
	}
	if val > BasisPointsDenominator {
		return 0, strconv.ErrRange
	}
	return uint32(val), nil
}

// EventMarketQueued is emitted when a market is queued for onboarding
type EventMarketQueued struct {
	Context    sdkutil.BaseModuleEvent `json:"context"`
	Market     string                  `json:"market"`
	Underlying string                  `json:"underlying"`
	Twap       time.Duration           `json:"twap"`
	ETA        time.Time               `json:"eta"`
}

func NewEventMarketQueued(pending PendingMarket) EventMarketQueued {
	return EventMarketQueued{
		Context:    baseEvent(evActionMarketQueued),
		Market:     pending.Market,
		Underlying: pending.Underlying,
		Twap:       pending.TwapDuration,
		ETA:        pending.ETA,
	}
}

// ToSDKEvent method creates new sdk event for EventMarketQueued struct
func (ev EventMarketQueued) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionMarketQueued,
		sdk.NewAttribute(evMarketKey, ev.Market),
		sdk.NewAttribute(evUnderlyingKey, ev.Underlying),
		sdk.NewAttribute(evTwapKey, ev.Twap.String()),
		timeAttr(evETAKey, ev.ETA),
	)
}

// EventMarketApproved is emitted when a queued market is approved
type EventMarketApproved struct {
	Context    sdkutil.BaseModuleEvent `json:"context"`
	Market     string                  `json:"market"`
	Token      string                  `json:"token"`
	Wrapper    string                  `json:"wrapper"`
	Underlying string                  `json:"underlying"`
	Expiry     time.Time               `json:"expiry"`
}

func NewEventMarketApproved(series SeriesInfo) EventMarketApproved {
	return EventMarketApproved{
		Context:    baseEvent(evActionMarketApproved),
		Market:     series.Market,
		Token:      series.PrincipalDenom,
		Wrapper:    series.WrapperDenom,
		Underlying: series.Underlying,
		Expiry:     series.Expiry,
	}
}

// ToSDKEvent method creates new sdk event for EventMarketApproved struct
func (ev EventMarketApproved) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionMarketApproved,
		sdk.NewAttribute(evMarketKey, ev.Market),
		sdk.NewAttribute(evTokenKey, ev.Token),
		sdk.NewAttribute(evWrapperKey, ev.Wrapper),
		sdk.NewAttribute(evUnderlyingKey, ev.Underlying),
		timeAttr(evExpiryKey, ev.Expiry),
	)
}

// EventUnderlyingQueued is emitted when an underlying approval is queued
type EventUnderlyingQueued struct {
	Context    sdkutil.BaseModuleEvent `json:"context"`
	Underlying string                  `json:"underlying"`
	FeeBps     uint32                  `json:"fee_bps"`
	ETA        time.Time               `json:"eta"`
}

func NewEventUnderlyingQueued(underlying string, change UnderlyingApproval) EventUnderlyingQueued {
	return EventUnderlyingQueued{
		Context:    baseEvent(evActionUnderlyingQueued),
		Underlying: underlying,
		FeeBps:     change.Value,
		ETA:        change.ETA,
	}
}

// ToSDKEvent method creates new sdk event for EventUnderlyingQueued struct
func (ev EventUnderlyingQueued) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionUnderlyingQueued,
		sdk.NewAttribute(evUnderlyingKey, ev.Underlying),
		sdk.NewAttribute(evFeeBpsKey, strconv.FormatUint(uint64(ev.FeeBps), 10)),
		timeAttr(evETAKey, ev.ETA),
	)
}

// EventUnderlyingApproved is emitted when an underlying becomes approved
type EventUnderlyingApproved struct {
	Context    sdkutil.BaseModuleEvent `json:"context"`
	Underlying string                  `json:"underlying"`
	Wrapper    string                  `json:"wrapper"`
	FeeBps     uint32                  `json:"fee_bps"`
}

func NewEventUnderlyingApproved(info UnderlyingInfo) EventUnderlyingApproved {
	return EventUnderlyingApproved{
		Context:    baseEvent(evActionUnderlyingApproved),
		Underlying: info.Denom,
		Wrapper:    info.WrapperDenom,
		FeeBps:     info.FeeBps,
	}
}

// ToSDKEvent method creates new sdk event for EventUnderlyingApproved struct
func (ev EventUnderlyingApproved) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionUnderlyingApproved,
		sdk.NewAttribute(evUnderlyingKey, ev.Underlying),
		sdk.NewAttribute(evWrapperKey, ev.Wrapper),
		sdk.NewAttribute(evFeeBpsKey, strconv.FormatUint(uint64(ev.FeeBps), 10)),
	)
}

// EventAliasSet is emitted the first time a token is bound to an underlying
type EventAliasSet struct {
	Context    sdkutil.BaseModuleEvent `json:"context"`
	Token      string                  `json:"token"`
	Underlying string                  `json:"underlying"`
}

func NewEventAliasSet(token, underlying string) EventAliasSet {
	return EventAliasSet{
		Context:    baseEvent(evActionAliasSet),
		Token:      token,
		Underlying: underlying,
	}
}

// ToSDKEvent method creates new sdk event for EventAliasSet struct
func (ev EventAliasSet) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionAliasSet,
		sdk.NewAttribute(evTokenKey, ev.Token),
		sdk.NewAttribute(evUnderlyingKey, ev.Underlying),
	)
}

// EventFeeQueued is emitted when a fee update is queued
type EventFeeQueued struct {
	Context    sdkutil.BaseModuleEvent `json:"context"`
	Underlying string                  `json:"underlying"`
	FeeBps     uint32                  `json:"fee_bps"`
	ETA        time.Time               `json:"eta"`
}

func NewEventFeeQueued(underlying string, change FeeChange) EventFeeQueued {
	return EventFeeQueued{
		Context:    baseEvent(evActionFeeQueued),
		Underlying: underlying,
		FeeBps:     change.Value,
		ETA:        change.ETA,
	}
}

// ToSDKEvent method creates new sdk event for EventFeeQueued struct
func (ev EventFeeQueued) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionFeeQueued,
		sdk.NewAttribute(evUnderlyingKey, ev.Underlying),
		sdk.NewAttribute(evFeeBpsKey, strconv.FormatUint(uint64(ev.FeeBps), 10)),
		timeAttr(evETAKey, ev.ETA),
	)
}

// EventFeeUpdated is emitted when a queued fee update is applied
type EventFeeUpdated struct {
	Context    sdkutil.BaseModuleEvent `json:"context"`
	Underlying string                  `json:"underlying"`
	FeeBps     uint32                  `json:"fee_bps"`
}

func NewEventFeeUpdated(underlying string, bps uint32) EventFeeUpdated {
	return EventFeeUpdated{
		Context:    baseEvent(evActionFeeUpdated),
		Underlying: underlying,
		FeeBps:     bps,
	}
}

// ToSDKEvent method creates new sdk event for EventFeeUpdated struct
func (ev EventFeeUpdated) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionFeeUpdated,
		sdk.NewAttribute(evUnderlyingKey, ev.Underlying),
		sdk.NewAttribute(evFeeBpsKey, strconv.FormatUint(uint64(ev.FeeBps), 10)),
	)
}

// EventDelayQueued is emitted when a timelock delay change is queued
type EventDelayQueued struct {
	Context sdkutil.BaseModuleEvent `json:"context"`
	Delay   time.Duration           `json:"delay"`
	ETA     time.Time               `json:"eta"`
}

func NewEventDelayQueued(change PendingChange[time.Duration]) EventDelayQueued {
	return EventDelayQueued{
		Context: baseEvent(evActionDelayQueued),
		Delay:   change.Value,
		ETA:     change.ETA,
	}
}

// ToSDKEvent method creates new sdk event for EventDelayQueued struct
func (ev EventDelayQueued) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionDelayQueued,
		sdk.NewAttribute(evDelayKey, ev.Delay.String()),
		timeAttr(evETAKey, ev.ETA),
	)
}

// EventDelayExecuted is emitted when a queued timelock delay takes effect
type EventDelayExecuted struct {
	Context sdkutil.BaseModuleEvent `json:"context"`
	Delay   time.Duration           `json:"delay"`
}

func NewEventDelayExecuted(delay time.Duration) EventDelayExecuted {
	return EventDelayExecuted{
		Context: baseEvent(evActionDelayExecuted),
		Delay:   delay,
	}
}

// ToSDKEvent method creates new sdk event for EventDelayExecuted struct
func (ev EventDelayExecuted) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionDelayExecuted,
		sdk.NewAttribute(evDelayKey, ev.Delay.String()),
	)
}

// EventMinDepositQueued is emitted when a minimum deposit change is queued
type EventMinDepositQueued struct {
	Context sdkutil.BaseModuleEvent `json:"context"`
	Amount  sdkmath.Int             `json:"amount"`
	ETA     time.Time               `json:"eta"`
}

func NewEventMinDepositQueued(change PendingChange[sdkmath.Int]) EventMinDepositQueued {
	return EventMinDepositQueued{
		Context: baseEvent(evActionMinDepositQueued),
		Amount:  change.Value,
		ETA:     change.ETA,
	}
}

// ToSDKEvent method creates new sdk event for EventMinDepositQueued struct
func (ev EventMinDepositQueued) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionMinDepositQueued,
		sdk.NewAttribute(evAmountKey, ev.Amount.String()),
		timeAttr(evETAKey, ev.ETA),
	)
}

// EventMinDepositUpdated is emitted when a queued minimum deposit takes effect
type EventMinDepositUpdated struct {
	Context sdkutil.BaseModuleEvent `json:"context"`
	Amount  sdkmath.Int             `json:"amount"`
}

func NewEventMinDepositUpdated(amount sdkmath.Int) EventMinDepositUpdated {
	return EventMinDepositUpdated{
		Context: baseEvent(evActionMinDepositUpdated),
		Amount:  amount,
	}
}

// ToSDKEvent method creates new sdk event for EventMinDepositUpdated struct
func (ev EventMinDepositUpdated) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionMinDepositUpdated,
		sdk.NewAttribute(evAmountKey, ev.Amount.String()),
	)
}

// EventDepositLimitQueued is emitted when a deposit limit change is queued
type EventDepositLimitQueued struct {
	Context sdkutil.BaseModuleEvent `json:"context"`
	Market  string                  `json:"market"`
	Limit   sdkmath.Int             `json:"limit"`
	ETA     time.Time               `json:"eta"`
}

func NewEventDepositLimitQueued(market string, change LimitChange) EventDepositLimitQueued {
	return EventDepositLimitQueued{
		Context: baseEvent(evActionLimitQueued),
		Market:  market,
		Limit:   change.Value,
		ETA:     change.ETA,
	}
}

// ToSDKEvent method creates new sdk event for EventDepositLimitQueued struct
func (ev EventDepositLimitQueued) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionLimitQueued,
		sdk.NewAttribute(evMarketKey, ev.Market),
		sdk.NewAttribute(evLimitKey, ev.Limit.String()),
		timeAttr(evETAKey, ev.ETA),
	)
}

// EventDepositLimitSet is emitted when a queued deposit limit takes effect
type EventDepositLimitSet struct {
	Context sdkutil.BaseModuleEvent `json:"context"`
	Market  string                  `json:"market"`
	Limit   sdkmath.Int             `json:"limit"`
}

func NewEventDepositLimitSet(market string, limit sdkmath.Int) EventDepositLimitSet {
	return EventDepositLimitSet{
		Context: baseEvent(evActionLimitSet),
		Market:  market,
		Limit:   limit,
	}
}

// ToSDKEvent method creates new sdk event for EventDepositLimitSet struct
func (ev EventDepositLimitSet) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionLimitSet,
		sdk.NewAttribute(evMarketKey, ev.Market),
		sdk.NewAttribute(evLimitKey, ev.Limit.String()),
	)
}

// EventDeposit is emitted for every completed deposit
type EventDeposit struct {
	Context  sdkutil.BaseModuleEvent `json:"context"`
	Sender   sdk.AccAddress          `json:"sender"`
	Market   string                  `json:"market"`
	Amount   sdkmath.Int             `json:"amount"`
	ToUser   sdkmath.Int             `json:"to_user"`
	ToStream sdkmath.Int             `json:"to_stream"`
	Fee      sdkmath.Int             `json:"fee"`
	StreamID uint64                  `json:"stream_id"`
}

func NewEventDeposit(sender sdk.AccAddress, market string, amount sdkmath.Int, res DepositResult) EventDeposit {
	return EventDeposit{
		Context:  baseEvent(evActionDeposit),
		Sender:   sender,
		Market:   market,
		Amount:   amount,
		ToUser:   res.ToUser,
		ToStream: res.ToStream,
		Fee:      res.Fee,
		StreamID: res.StreamID,
	}
}

// ToSDKEvent method creates new sdk event for EventDeposit struct
func (ev EventDeposit) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionDeposit,
		sdk.NewAttribute(evSenderKey, ev.Sender.String()),
		sdk.NewAttribute(evMarketKey, ev.Market),
		sdk.NewAttribute(evAmountKey, ev.Amount.String()),
		sdk.NewAttribute(evToUserKey, ev.ToUser.String()),
		sdk.NewAttribute(evToStreamKey, ev.ToStream.String()),
		sdk.NewAttribute(evFeeKey, ev.Fee.String()),
		sdk.NewAttribute(evStreamIDKey, strconv.FormatUint(ev.StreamID, 10)),
	)
}

// EventClaim is emitted when wrapper tokens are exchanged for reserve principal tokens
type EventClaim struct {
	Context sdkutil.BaseModuleEvent `json:"context"`
	Sender  sdk.AccAddress          `json:"sender"`
	Market  string                  `json:"market"`
	Amount  sdkmath.Int             `json:"amount"`
}

func NewEventClaim(sender sdk.AccAddress, market string, amount sdkmath.Int) EventClaim {
	return EventClaim{
		Context: baseEvent(evActionClaim),
		Sender:  sender,
		Market:  market,
		Amount:  amount,
	}
}

// ToSDKEvent method creates new sdk event for EventClaim struct
func (ev EventClaim) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionClaim,
		sdk.NewAttribute(evSenderKey, ev.Sender.String()),
		sdk.NewAttribute(evMarketKey, ev.Market),
		sdk.NewAttribute(evAmountKey, ev.Amount.String()),
	)
}

// EventMarketSettled is emitted when the reserve of a matured market is redeemed into the pool
type EventMarketSettled struct {
	Context    sdkutil.BaseModuleEvent `json:"context"`
	Market     string                  `json:"market"`
	Underlying string                  `json:"underlying"`
	Amount     sdkmath.Int             `json:"amount"`
	AssetOut   sdkmath.Int             `json:"asset_out"`
}

func NewEventMarketSettled(market, underlying string, amount, assetOut sdkmath.Int) EventMarketSettled {
	return EventMarketSettled{
		Context:    baseEvent(evActionMarketSettled),
		Market:     market,
		Underlying: underlying,
		Amount:     amount,
		AssetOut:   assetOut,
	}
}

// ToSDKEvent method creates new sdk event for EventMarketSettled struct
func (ev EventMarketSettled) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionMarketSettled,
		sdk.NewAttribute(evMarketKey, ev.Market),
		sdk.NewAttribute(evUnderlyingKey, ev.Underlying),
		sdk.NewAttribute(evAmountKey, ev.Amount.String()),
		sdk.NewAttribute(evAssetOutKey, ev.AssetOut.String()),
	)
}

// EventClaimSettled is emitted when wrapper tokens are exchanged against a redemption pool
type EventClaimSettled struct {
	Context    sdkutil.BaseModuleEvent `json:"context"`
	Sender     sdk.AccAddress          `json:"sender"`
	Underlying string                  `json:"underlying"`
	Amount     sdkmath.Int             `json:"amount"`
}

func NewEventClaimSettled(sender sdk.AccAddress, underlying string, amount sdkmath.Int) EventClaimSettled {
	return EventClaimSettled{
		Context:    baseEvent(evActionClaimSettled),
		Sender:     sender,
		Underlying: underlying,
		Amount:     amount,
	}
}

// ToSDKEvent method creates new sdk event for EventClaimSettled struct
func (ev EventClaimSettled) ToSDKEvent() sdk.Event {
	return newModuleEvent(evActionClaimSettled,
		sdk.NewAttribute(evSenderKey, ev.Sender.String()),
		sdk.NewAttribute(evUnderlyingKey, ev.Underlying),
		sdk.NewAttribute(evAmountKey, ev.Amount.String()),
	)
}

type attrReader struct {
	attrs []sdk.Attribute
	err   error
}

func (r *attrReader) str(key string) string {
	if r.err != nil {
		return ""
	}
	var val string
	val, r.err = sdkutil.GetString(r.attrs, key)
	return val
}

func (r *attrReader) integer(key string) sdkmath.Int {
	if r.err != nil {
		return sdkmath.Int{}
	}
	var val sdkmath.Int
	val, r.err = sdkutil.GetInt(r.attrs, key)
	return val
}

func (r *attrReader) u64(key string) uint64 {
	if r.err != nil {
		return 0
	}
	var val uint64
	val, r.err = sdkutil.GetUint64(r.attrs, key)
	return val
}

func (r *attrReader) bps(key string) uint32 {
	if r.err != nil {
		return 0
	}
	var val uint32
	val, r.err = parseBps(r.attrs, key)
	return val
}

func (r *attrReader) timestamp(key string) time.Time {
	if r.err != nil {
		return time.Time{}
	}
	var val time.Time
	val, r.err = parseTime(r.attrs, key)
	return val
}

func (r *attrReader) duration(key string) time.Duration {
	if r.err != nil {
		return 0
	}
	var val time.Duration
	val, r.err = parseDuration(r.attrs, key)
	return val
}

func (r *attrReader) address(key string) sdk.AccAddress {
	if r.err != nil {
		return nil
	}
	var val sdk.AccAddress
	val, r.err = sdkutil.GetAccAddress(r.attrs, key)
	return val
}

// ParseEvent parses event and returns details of event and error if occurred
func ParseEvent(ev sdkutil.Event) (sdkutil.ModuleEvent, error) {
	if ev.Type != sdkutil.EventTypeMessage {
		return nil, sdkutil.ErrUnknownType
	}
	if ev.Module != ModuleName {
		return nil, sdkutil.ErrUnknownModule
	}

	r := &attrReader{attrs: ev.Attributes}
	var res sdkutil.ModuleEvent

	switch ev.Action {
	case evActionMarketQueued:
		res = NewEventMarketQueued(PendingMarket{
			Market:       r.str(evMarketKey),
			Underlying:   r.str(evUnderlyingKey),
			TwapDuration: r.duration(evTwapKey),
			ETA:          r.timestamp(evETAKey),
		})
	case evActionMarketApproved:
		res = NewEventMarketApproved(SeriesInfo{
			Market:         r.str(evMarketKey),
			PrincipalDenom: r.str(evTokenKey),
			WrapperDenom:   r.str(evWrapperKey),
			Underlying:     r.str(evUnderlyingKey),
			Expiry:         r.timestamp(evExpiryKey),
		})
	case evActionUnderlyingQueued:
		res = NewEventUnderlyingQueued(r.str(evUnderlyingKey), UnderlyingApproval{
			Value: r.bps(evFeeBpsKey),
			ETA:   r.timestamp(evETAKey),
		})
	case evActionUnderlyingApproved:
		res = NewEventUnderlyingApproved(UnderlyingInfo{
			Denom:        r.str(evUnderlyingKey),
			Approved:     true,
			WrapperDenom: r.str(evWrapperKey),
			FeeBps:       r.bps(evFeeBpsKey),
		})
	case evActionAliasSet:
		res = NewEventAliasSet(r.str(evTokenKey), r.str(evUnderlyingKey))
	case evActionFeeQueued:
		res = NewEventFeeQueued(r.str(evUnderlyingKey), FeeChange{
			Value: r.bps(evFeeBpsKey),
			ETA:   r.timestamp(evETAKey),
		})
	case evActionFeeUpdated:
		res = NewEventFeeUpdated(r.str(evUnderlyingKey), r.bps(evFeeBpsKey))
	case evActionDelayQueued:
		res = NewEventDelayQueued(PendingChange[time.Duration]{
			Value: r.duration(evDelayKey),
			ETA:   r.timestamp(evETAKey),
		})
	case evActionDelayExecuted:
		res = NewEventDelayExecuted(r.duration(evDelayKey))
	case evActionMinDepositQueued:
		res = NewEventMinDepositQueued(PendingChange[sdkmath.Int]{
			Value: r.integer(evAmountKey),
			ETA:   r.timestamp(evETAKey),
		})
	case evActionMinDepositUpdated:
		res = NewEventMinDepositUpdated(r.integer(evAmountKey))
	case evActionLimitQueued:
		res = NewEventDepositLimitQueued(r.str(evMarketKey), LimitChange{
			Value: r.integer(evLimitKey),
			ETA:   r.timestamp(evETAKey),
		})
	case evActionLimitSet:
		res = NewEventDepositLimitSet(r.str(evMarketKey), r.integer(evLimitKey))
	case evActionDeposit:
		sender := r.address(evSenderKey)
		market := r.str(evMarketKey)
		amount := r.integer(evAmountKey)
		res = NewEventDeposit(sender, market, amount, DepositResult{
			ToUser:   r.integer(evToUserKey),
			ToStream: r.integer(evToStreamKey),
			Fee:      r.integer(evFeeKey),
			StreamID: r.u64(evStreamIDKey),
		})
	case evActionClaim:
		res = NewEventClaim(r.address(evSenderKey), r.str(evMarketKey), r.integer(evAmountKey))
	case evActionMarketSettled:
		res = NewEventMarketSettled(r.str(evMarketKey), r.str(evUnderlyingKey), r.integer(evAmountKey), r.integer(evAssetOutKey))
	case evActionClaimSettled:
		res = NewEventClaimSettled(r.address(evSenderKey), r.str(evUnderlyingKey), r.integer(evAmountKey))
	default:
		return nil, sdkutil.ErrUnknownAction
	}

	if r.err != nil {
		return nil, r.err
	}

	return res, nil
}
