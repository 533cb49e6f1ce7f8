package sdkutil

import (
	"errors"
	"strconv"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	vaultEventMessageV1 = "ptvault.v1"

	// EventTypeMessage defines the vault message event type
	EventTypeMessage = vaultEventMessageV1
)

// errors returned while decoding vault events
var (
	ErrNotFound      = errors.New("event attribute not found")
	ErrUnknownType   = errors.New("unknown event type")
	ErrUnknownModule = errors.New("unknown event module")
	ErrUnknownAction = errors.New("unknown event action")
)

type BaseModuleEvent struct {
	Module string `json:"module"`
	Action string `json:"action"`
}

type ModuleEvent interface {
	ToSDKEvent() sdk.Event
}

// Event stores type, module, action and attributes list of sdk
type Event struct {
	Type       string
	Module     string
	Action     string
	Attributes []sdk.Attribute
}

// ParseEvent parses string to event
func ParseEvent(sev sdk.StringEvent) (Event, error) {
	ev := Event{Type: sev.Type, Attributes: sev.Attributes}
	var err error

	if ev.Module, err = GetString(sev.Attributes, sdk.AttributeKeyModule); err != nil {
		return ev, err
	}

	if ev.Action, err = GetString(sev.Attributes, sdk.AttributeKeyAction); err != nil {
		return ev, err
	}

	return ev, nil
}

// GetUint64 take sdk attributes, key and returns uint64 value. Returns error incase of failure.
func GetUint64(attrs []sdk.Attribute, key string) (uint64, error) {
	sval, err := GetString(attrs, key)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseUint(sval, 10, 64)
	return val, err
}

// GetInt take sdk attributes, key and returns an integer amount. Returns error incase of failure.
func GetInt(attrs []sdk.Attribute, key string) (sdkmath.Int, error) {
	sval, err := GetString(attrs, key)
	if err != nil {
		return sdkmath.Int{}, err
	}

	val, ok := sdkmath.NewIntFromString(sval)
	if !ok {
		return sdkmath.Int{}, strconv.ErrSyntax
	}

	return val, nil
}

// GetAccAddress take sdk attributes, key and returns account address. Returns error incase of failure.
func GetAccAddress(attrs []sdk.Attribute, key string) (sdk.AccAddress, error) {
	sval, err := GetString(attrs, key)
	if err != nil {
		return nil, err
	}
	val, err := sdk.AccAddressFromBech32(sval)
	return val, err
}

// GetString take sdk attributes, key and returns key value. Returns error incase of failure.
func GetString(attrs []sdk.Attribute, key string) (string, error) {
	for _, attr := range attrs {
		if attr.Key == key {
			return attr.Value, nil
		}
	}
	return "", ErrNotFound
}
