package derive

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"reflect"
	"slices"
	"unsafe"
)

// ErrInvalidTag is returned by generated tag converters when the raw value
// matches none of the constants declared for the enumeration.
var ErrInvalidTag = errors.New("derive: invalid tag")

// Swapper is implemented by values that can produce a copy of themselves
// with the byte order of every component reversed.
//
// derive-gen emits a Swapper implementation for each type annotated with
// //derive:swapendian.
type Swapper[T any] interface {
	SwapEndian() T
}

// SwapEndian returns v with its byte order reversed.
//
// Values implementing Swapper[T] are delegated to. Fixed-width numeric
// values have their bytes reversed; bool and one byte values are returned
// as is. Named numeric types are handled by kind, and arrays element by
// element. SwapEndian panics for any other kind of value.
func SwapEndian[T any](v T) T {
	if s, ok := any(v).(Swapper[T]); ok {
		return s.SwapEndian()
	}
	switch x := any(v).(type) {
	case bool, int8, uint8:
		return v
	case int16:
		return any(int16(bits.ReverseBytes16(uint16(x)))).(T)
	case uint16:
		return any(bits.ReverseBytes16(x)).(T)
	case int32:
		return any(int32(bits.ReverseBytes32(uint32(x)))).(T)
	case uint32:
		return any(bits.ReverseBytes32(x)).(T)
	case int64:
		return any(int64(bits.ReverseBytes64(uint64(x)))).(T)
	case uint64:
		return any(bits.ReverseBytes64(x)).(T)
	case float32:
		return any(math.Float32frombits(bits.ReverseBytes32(math.Float32bits(x)))).(T)
	case float64:
		return any(math.Float64frombits(bits.ReverseBytes64(math.Float64bits(x)))).(T)
	}
	swapValue(reflect.ValueOf(&v).Elem())
	return v
}

// swapValue reverses rv in place. rv must be addressable.
func swapValue(rv reflect.Value) {
	if m, ok := swapMethod(rv); ok {
		rv.Set(m.Call(nil)[0])
		return
	}
	switch rv.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
	case reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int,
		reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		slices.Reverse(rawBytes(rv))
	case reflect.Complex64, reflect.Complex128:
		b := rawBytes(rv)
		half := len(b) / 2
		slices.Reverse(b[:half])
		slices.Reverse(b[half:])
	case reflect.Array:
		for i := range rv.Len() {
			swapValue(rv.Index(i))
		}
	default:
		panic(fmt.Sprintf("derive: cannot swap byte order of %s", rv.Type()))
	}
}

// swapMethod finds a SwapEndian method on rv returning rv's own type.
func swapMethod(rv reflect.Value) (reflect.Value, bool) {
	if rv.Kind() == reflect.Interface || !rv.CanInterface() {
		return reflect.Value{}, false
	}
	m := rv.MethodByName("SwapEndian")
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || mt.Out(0) != rv.Type() {
		return reflect.Value{}, false
	}
	return m, true
}

// rawBytes views the memory of the addressable scalar rv as a byte slice.
// Going through memory keeps float32 payloads, NaN bits included, intact.
func rawBytes(rv reflect.Value) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(rv.UnsafeAddr())), rv.Type().Size())
}
