package abi

import (
	"encoding/binary"
	"fmt"

	"github.com/zhubert/rush-runtime/rt"
)

// Record layout of a Value as compiled callers pass it: a 4-byte kind
// discriminant, 4 bytes of alignment padding, then the 8-byte payload word.
// Little-endian on every supported target.
const (
	RecordSize    = 16
	KindOffset    = 0
	KindSize      = 4
	PayloadOffset = 8
	PayloadSize   = 8
)

// EncodeValue returns v's record image. Encoding is faithful: an
// out-of-contract kind or payload is written as-is, mirroring the runtime
// side's tolerance.
func EncodeValue(v rt.Value) [RecordSize]byte {
	var rec [RecordSize]byte
	binary.LittleEndian.PutUint32(rec[KindOffset:], uint32(v.Kind()))
	binary.LittleEndian.PutUint64(rec[PayloadOffset:], uint64(v.Payload()))
	return rec
}

// AppendValue appends v's record image to dst.
func AppendValue(dst []byte, v rt.Value) []byte {
	rec := EncodeValue(v)
	return append(dst, rec[:]...)
}

// DecodeValue reads one record from the front of b. Unlike the runtime
// side, decoding is strict: a short buffer or an unknown kind is an error,
// and an out-of-contract Boolean payload is normalized to 1.
func DecodeValue(b []byte) (rt.Value, error) {
	if len(b) < RecordSize {
		return rt.Value{}, fmt.Errorf("abi: short value record: %d bytes, need %d", len(b), RecordSize)
	}
	kind := rt.Kind(int32(binary.LittleEndian.Uint32(b[KindOffset:])))
	payload := int64(binary.LittleEndian.Uint64(b[PayloadOffset:]))
	switch kind {
	case rt.KindNull, rt.KindInteger, rt.KindFloat, rt.KindString:
	case rt.KindBoolean:
		if payload != 0 {
			payload = 1
		}
	default:
		return rt.Value{}, fmt.Errorf("abi: unknown value kind %d", int32(kind))
	}
	return rt.FromRaw(kind, payload), nil
}
