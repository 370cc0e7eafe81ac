package abi

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/zhubert/rush-runtime/rt"
)

func TestRecordGolden(t *testing.T) {
	// FromInt64(1) as a compiled caller sees it: kind word 1, four padding
	// bytes, payload word 1, all little-endian.
	want := []byte{
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	rec := EncodeValue(rt.FromInt64(1))
	if !bytes.Equal(rec[:], want) {
		t.Errorf("record = % x, want % x", rec[:], want)
	}
}

func TestFloatRecordIsBitPattern(t *testing.T) {
	rec := EncodeValue(rt.FromFloat64(0.1))
	got := binary.LittleEndian.Uint64(rec[PayloadOffset:])
	if want := math.Float64bits(0.1); got != want {
		t.Errorf("payload field = %#x, want %#x", got, want)
	}
	if kind := binary.LittleEndian.Uint32(rec[KindOffset:]); kind != uint32(rt.KindFloat) {
		t.Errorf("kind field = %d, want %d", kind, rt.KindFloat)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []rt.Value{
		rt.Null(),
		rt.FromInt64(-12345),
		rt.FromInt64(math.MinInt64),
		rt.FromFloat64(2.75),
		rt.FromFloat64(math.Inf(-1)),
		rt.FromBool(true),
		rt.FromBool(false),
		rt.FromRaw(rt.KindString, 0x1000), // address payloads pass through as words
	}
	for _, v := range cases {
		got, err := DecodeValue(AppendValue(nil, v))
		if err != nil {
			t.Fatalf("DecodeValue(%v record): %v", v.Kind(), err)
		}
		if got != v {
			t.Errorf("round trip of %v record: kind %v payload %d, want payload %d",
				v.Kind(), got.Kind(), got.Payload(), v.Payload())
		}
	}
}

func TestAppendValueChains(t *testing.T) {
	b := AppendValue(nil, rt.FromInt64(1))
	b = AppendValue(b, rt.FromBool(true))
	if len(b) != 2*RecordSize {
		t.Fatalf("chained append length = %d, want %d", len(b), 2*RecordSize)
	}
	second, err := DecodeValue(b[RecordSize:])
	if err != nil {
		t.Fatal(err)
	}
	if second != rt.FromBool(true) {
		t.Errorf("second record = kind %v payload %d", second.Kind(), second.Payload())
	}
}

func TestDecodeShortBuffer(t *testing.T) {
	if _, err := DecodeValue(make([]byte, RecordSize-1)); err == nil {
		t.Error("DecodeValue accepted a short record")
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	rec := EncodeValue(rt.FromRaw(rt.Kind(9), 0))
	if _, err := DecodeValue(rec[:]); err == nil {
		t.Error("DecodeValue accepted kind 9")
	}
}

func TestDecodeNormalizesBoolean(t *testing.T) {
	rec := EncodeValue(rt.FromRaw(rt.KindBoolean, 7))
	v, err := DecodeValue(rec[:])
	if err != nil {
		t.Fatal(err)
	}
	if v.Payload() != 1 {
		t.Errorf("boolean payload = %d, want 1", v.Payload())
	}
	if !v.Bool() {
		t.Error("normalized boolean reads false")
	}
}
