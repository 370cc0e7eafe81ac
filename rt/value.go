package rt

import (
	"math"
	"strconv"
	"unsafe"
)

// ---------------------------------------------------------------------------
// Value Representation
// ---------------------------------------------------------------------------

// Kind discriminates how a Value's payload word is interpreted. The ordinal
// values are part of the binary contract with compiled callers and must
// never change.
type Kind int32

const (
	KindNull    Kind = 0
	KindInteger Kind = 1
	KindFloat   Kind = 2
	KindBoolean Kind = 3
	KindString  Kind = 4
)

// String returns the kind's name as it appears in diagnostics and in the
// ABI manifest.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the runtime representation of a Rush datum: a kind discriminant
// plus one payload word. The payload is reused per kind: as a signed
// integer, as the raw bits of an IEEE-754 double, as a 0/1 boolean flag, or
// as the address of caller-owned NUL-terminated bytes. Its layout matches
// the record compiled callers pass by value: 4-byte kind at offset 0,
// 8-byte payload at offset 8.
//
// Values are immutable and copied by value; none owns heap memory. The zero
// Value is the null sentinel.
type Value struct {
	kind    Kind
	payload int64
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// FromInt64 returns an Integer Value holding n.
func FromInt64(n int64) Value {
	return Value{kind: KindInteger, payload: n}
}

// FromFloat64 returns a Float Value. The payload is the double's raw bit
// pattern, not a numeric conversion; Float64 reverses it bit-exactly.
func FromFloat64(f float64) Value {
	return Value{kind: KindFloat, payload: int64(math.Float64bits(f))}
}

// FromBool returns a Boolean Value with payload 1 for true and 0 for false.
func FromBool(b bool) Value {
	if b {
		return Value{kind: KindBoolean, payload: 1}
	}
	return Value{kind: KindBoolean, payload: 0}
}

// FromStringPtr returns a String Value referencing the NUL-terminated bytes
// at p. The Value does not own the bytes and carries no length: p must stay
// valid, terminated, and unmoved for as long as the Value is in use. The
// cstr package allocates buffers that satisfy this contract.
func FromStringPtr(p unsafe.Pointer) Value {
	return Value{kind: KindString, payload: int64(uintptr(p))}
}

// Null returns the null sentinel. It equals the zero Value.
func Null() Value {
	return Value{}
}

// FromRaw assembles a Value from a discriminant and payload word exactly as
// received from a compiled caller. No validation is performed; an
// unrecognized kind renders as null and is rejected by arithmetic, per the
// silent-failure contract.
func FromRaw(kind Kind, payload int64) Value {
	return Value{kind: kind, payload: payload}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Kind returns the discriminant.
func (v Value) Kind() Kind { return v.kind }

// Payload returns the raw payload word without interpreting it.
func (v Value) Payload() int64 { return v.payload }

func (v Value) IsNull() bool    { return v.kind == KindNull }
func (v Value) IsInteger() bool { return v.kind == KindInteger }
func (v Value) IsFloat() bool   { return v.kind == KindFloat }
func (v Value) IsBoolean() bool { return v.kind == KindBoolean }
func (v Value) IsString() bool  { return v.kind == KindString }

// Int64 returns the integer payload. Panics if the Value is not an Integer.
func (v Value) Int64() int64 {
	if v.kind != KindInteger {
		panic("value is not an integer")
	}
	return v.payload
}

// Float64 reinterprets the payload bits as a double. Panics if the Value is
// not a Float.
func (v Value) Float64() float64 {
	if v.kind != KindFloat {
		panic("value is not a float")
	}
	return math.Float64frombits(uint64(v.payload))
}

// Bool returns the boolean payload; any nonzero payload reads as true.
// Panics if the Value is not a Boolean.
func (v Value) Bool() bool {
	if v.kind != KindBoolean {
		panic("value is not a boolean")
	}
	return v.payload != 0
}

// StringPtr returns the payload as the string's address. Panics if the
// Value is not a String.
func (v Value) StringPtr() unsafe.Pointer {
	if v.kind != KindString {
		panic("value is not a string")
	}
	return unsafe.Pointer(uintptr(v.payload))
}

// ---------------------------------------------------------------------------
// Truthiness
// ---------------------------------------------------------------------------

// IsTruthy reports how conditionals treat the Value: null and boolean false
// are falsy, everything else is truthy, including integer zero and the
// empty string.
func (v Value) IsTruthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBoolean:
		return v.payload != 0
	default:
		return true
	}
}

// IsFalsy is the negation of IsTruthy.
func (v Value) IsFalsy() bool {
	return !v.IsTruthy()
}
