package collcodec

import (
	"encoding/json"
	"fmt"
	"reflect"

	"cosmossdk.io/collections/codec"
)

type jsonValueCodec[T any] struct{}

// JSONValue returns a collections value codec storing T as its JSON encoding.
// It is meant for plain Go state types that carry no protobuf definition.
func JSONValue[T any]() codec.ValueCodec[T] {
	return jsonValueCodec[T]{}
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return value, fmt.Errorf("%s: %w", c.ValueType(), err)
	}

	return value, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(data)
}

func (c jsonValueCodec[T]) ValueType() string {
	var value T
	return "json/" + reflect.TypeOf(&value).Elem().String()
}
