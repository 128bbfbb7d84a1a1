package hashset

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps an element to a hash. Only the low bits of the result select
// the starting slot, so equal elements must hash equally.
type Hasher[T comparable] func(T) uint64

// DefaultHasher returns the hasher used when no WithHasher option is given.
//
// Integers hash to their own value, so neighbouring integers land in
// neighbouring slots. Strings go through xxhash. Pointers and channels hash
// by address. Structs, arrays and interfaces are hashed field by field
// through reflect, which is slow but agrees with == for every comparable
// type.
func DefaultHasher[T comparable]() Hasher[T] {
	var zero T
	switch any(zero).(type) {
	case string:
		return func(e T) uint64 { return xxhash.Sum64String(any(e).(string)) }
	case int:
		return func(e T) uint64 { return uint64(any(e).(int)) }
	case int64:
		return func(e T) uint64 { return uint64(any(e).(int64)) }
	case int32:
		return func(e T) uint64 { return uint64(any(e).(int32)) }
	case uint64:
		return func(e T) uint64 { return any(e).(uint64) }
	case uint32:
		return func(e T) uint64 { return uint64(any(e).(uint32)) }
	case uint:
		return func(e T) uint64 { return uint64(any(e).(uint)) }
	}
	return func(e T) uint64 { return hashAny(e) }
}

// hashAny hashes a value by its dynamic type. It also serves interface
// element types, where the static switch in DefaultHasher sees a nil zero
// value.
func hashAny(v any) uint64 {
	switch x := v.(type) {
	case nil:
		return 0
	case string:
		return xxhash.Sum64String(x)
	case int:
		return uint64(x)
	case int8:
		return uint64(x)
	case int16:
		return uint64(x)
	case int32:
		return uint64(x)
	case int64:
		return uint64(x)
	case uint:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case uintptr:
		return uint64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case float32:
		return hashFloat(float64(x))
	case float64:
		return hashFloat(x)
	}
	d := xxhash.New()
	hashValue(d, reflect.ValueOf(v))
	return d.Sum64()
}

// hashValue feeds v into d field by field so that values equal under ==
// produce equal input. Pointers and channels contribute their address.
// Kinds that are not comparable never reach here.
func hashValue(d *xxhash.Digest, v reflect.Value) {
	var buf [8]byte
	put := func(x uint64) {
		binary.LittleEndian.PutUint64(buf[:], x)
		_, _ = d.Write(buf[:])
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			put(1)
		} else {
			put(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		put(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		put(v.Uint())
	case reflect.Float32, reflect.Float64:
		put(floatBits(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		put(floatBits(real(c)))
		put(floatBits(imag(c)))
	case reflect.String:
		str := v.String()
		put(uint64(len(str)))
		_, _ = d.WriteString(str)
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		put(uint64(v.Pointer()))
	case reflect.Interface:
		if v.IsNil() {
			put(0)
			return
		}
		e := v.Elem()
		_, _ = d.WriteString(e.Type().String())
		hashValue(d, e)
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			hashValue(d, v.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			hashValue(d, v.Field(i))
		}
	}
}

// floatBits maps -0 onto +0, which == treats as equal.
func floatBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}

func hashFloat(f float64) uint64 {
	b := floatBits(f)
	return b ^ b>>32
}
