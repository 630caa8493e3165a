package cmds

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/reusee/tedn/vars"
)

var (
	errorType = reflect.TypeFor[error]()

	errNoArgument = errors.New("expecting argument, got nothing")
)

type argParser func(str string, target reflect.Value) error

var argParsers = map[reflect.Kind]argParser{
	reflect.Bool:    parseBoolArg,
	reflect.Int:     parseIntArg,
	reflect.Int8:    parseIntArg,
	reflect.Int16:   parseIntArg,
	reflect.Int32:   parseIntArg,
	reflect.Int64:   parseIntArg,
	reflect.Uint:    parseUintArg,
	reflect.Uint8:   parseUintArg,
	reflect.Uint16:  parseUintArg,
	reflect.Uint32:  parseUintArg,
	reflect.Uint64:  parseUintArg,
	reflect.Float32: parseFloatArg,
	reflect.Float64: parseFloatArg,
	reflect.String: func(str string, target reflect.Value) error {
		target.SetString(str)
		return nil
	},
}

// parseArg converts args[0] to t. Pointer parameters are optional:
// with no words left they receive a pointer to the zero value.
func parseArg(t reflect.Type, args []string) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			return reflect.New(t.Elem()), nil
		}
		elem, err := parseArg(t.Elem(), args)
		if err != nil {
			return reflect.Value{}, err
		}
		return elem.Addr(), nil
	}
	if len(args) == 0 {
		return reflect.Value{}, errNoArgument
	}

	str := args[0]
	ptr := reflect.New(t)

	if unmarshaler, ok := ptr.Interface().(encoding.TextUnmarshaler); ok {
		if err := unmarshaler.UnmarshalText([]byte(str)); err != nil {
			return reflect.Value{}, fmt.Errorf("parse %s: %w", str, err)
		}
		return ptr.Elem(), nil
	}

	parse, ok := argParsers[t.Kind()]
	if !ok {
		return reflect.Value{}, fmt.Errorf("unsupported type: %v", t)
	}
	if err := parse(str, ptr.Elem()); err != nil {
		return reflect.Value{}, err
	}
	return ptr.Elem(), nil
}

func parseBoolArg(str string, target reflect.Value) error {
	v, err := vars.ParseBool(str)
	if err != nil {
		return err
	}
	target.SetBool(v)
	return nil
}

func parseIntArg(str string, target reflect.Value) error {
	v, err := strconv.ParseInt(str, 10, target.Type().Bits())
	if err != nil {
		return fmt.Errorf("convert %s to int: %w", str, err)
	}
	target.SetInt(v)
	return nil
}

func parseUintArg(str string, target reflect.Value) error {
	v, err := strconv.ParseUint(str, 10, target.Type().Bits())
	if err != nil {
		return fmt.Errorf("convert %s to unsigned int: %w", str, err)
	}
	target.SetUint(v)
	return nil
}

func parseFloatArg(str string, target reflect.Value) error {
	v, err := strconv.ParseFloat(str, target.Type().Bits())
	if err != nil {
		return fmt.Errorf("convert %s to float: %w", str, err)
	}
	target.SetFloat(v)
	return nil
}
