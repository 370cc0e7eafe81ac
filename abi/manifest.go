package abi

import (
	"crypto/sha256"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/zhubert/rush-runtime/rt"
)

// ManifestVersion is the current manifest format version.
//
// Version history:
//
//	1 - initial format: record layout, kind table, symbol table.
const ManifestVersion uint32 = 1

// encMode is the canonical encoding used for manifests. Canonical form keeps
// the encoding deterministic, which Digest depends on.
var encMode cbor.EncMode

func init() {
	m, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic("abi: cbor encode mode: " + err.Error())
	}
	encMode = m
}

// Manifest is the machine-readable statement of the runtime's binary
// contract for one target: the record layout, the kind ordinals, and the
// symbols compiled callers link against.
type Manifest struct {
	Version uint32       `cbor:"1,keyasint"`
	Target  string       `cbor:"2,keyasint"`
	Layout  RecordLayout `cbor:"3,keyasint"`
	Kinds   []KindInfo   `cbor:"4,keyasint"`
	Symbols []Symbol     `cbor:"5,keyasint"`
}

// RecordLayout fixes the byte layout of the Value record.
type RecordLayout struct {
	Size          uint32 `cbor:"1,keyasint"`
	KindOffset    uint32 `cbor:"2,keyasint"`
	KindSize      uint32 `cbor:"3,keyasint"`
	PayloadOffset uint32 `cbor:"4,keyasint"`
	PayloadSize   uint32 `cbor:"5,keyasint"`
}

// KindInfo names one kind ordinal.
type KindInfo struct {
	Name    string `cbor:"1,keyasint"`
	Ordinal int32  `cbor:"2,keyasint"`
}

// Symbol is one linkable entry point of the runtime library.
type Symbol struct {
	Name      string `cbor:"1,keyasint"`
	Signature string `cbor:"2,keyasint"`
	Component string `cbor:"3,keyasint"`
}

// component groups the symbols that ship together. required decides, per
// profile, whether the group is linked at all.
type component struct {
	name     string
	required func(Profile) bool
	symbols  []Symbol
}

func always(Profile) bool { return true }

// components lists the runtime's symbol groups in link order. Constructors
// and arithmetic are unconditional; a minimal runtime omits the printers,
// leaving programs that never print without a stdout dependency.
func components() []component {
	return []component{
		{
			name:     "values",
			required: always,
			symbols: []Symbol{
				{Name: "rush_make_integer", Signature: "(i64) -> value"},
				{Name: "rush_make_float", Signature: "(f64) -> value"},
				{Name: "rush_make_boolean", Signature: "(i32) -> value"},
				{Name: "rush_make_string", Signature: "(ptr) -> value"},
				{Name: "rush_make_null", Signature: "() -> value"},
			},
		},
		{
			name:     "arithmetic",
			required: always,
			symbols: []Symbol{
				{Name: "rush_add", Signature: "(value, value) -> value"},
				{Name: "rush_subtract", Signature: "(value, value) -> value"},
				{Name: "rush_multiply", Signature: "(value, value) -> value"},
				{Name: "rush_divide", Signature: "(value, value) -> value"},
			},
		},
		{
			name:     "printers",
			required: func(p Profile) bool { return !p.MinimalRuntime },
			symbols: []Symbol{
				{Name: "rush_print", Signature: "(ptr, u64) -> void"},
				{Name: "rush_print_line", Signature: "(ptr, u64) -> void"},
				{Name: "rush_print_object", Signature: "(value) -> void"},
				{Name: "rush_println", Signature: "(value) -> void"},
			},
		},
	}
}

// BuildManifest assembles the manifest for a profile.
func BuildManifest(p Profile) (*Manifest, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m := &Manifest{
		Version: ManifestVersion,
		Target:  p.Target,
		Layout: RecordLayout{
			Size:          RecordSize,
			KindOffset:    KindOffset,
			KindSize:      KindSize,
			PayloadOffset: PayloadOffset,
			PayloadSize:   PayloadSize,
		},
		Kinds: []KindInfo{
			{Name: rt.KindNull.String(), Ordinal: int32(rt.KindNull)},
			{Name: rt.KindInteger.String(), Ordinal: int32(rt.KindInteger)},
			{Name: rt.KindFloat.String(), Ordinal: int32(rt.KindFloat)},
			{Name: rt.KindBoolean.String(), Ordinal: int32(rt.KindBoolean)},
			{Name: rt.KindString.String(), Ordinal: int32(rt.KindString)},
		},
	}
	for _, c := range components() {
		if !c.required(p) {
			continue
		}
		for _, s := range c.symbols {
			s.Component = c.name
			m.Symbols = append(m.Symbols, s)
		}
	}
	return m, nil
}

// Encode returns the canonical CBOR encoding of the manifest.
func (m *Manifest) Encode() ([]byte, error) {
	data, err := encMode.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("abi: encode manifest: %w", err)
	}
	return data, nil
}

// DecodeManifest parses an encoded manifest and checks its version.
func DecodeManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := cbor.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("abi: decode manifest: %w", err)
	}
	if m.Version != ManifestVersion {
		return nil, fmt.Errorf("abi: unsupported manifest version %d", m.Version)
	}
	return &m, nil
}

// Digest returns the sha256 of the canonical encoding. Two manifests with
// the same digest describe the same binary contract.
func (m *Manifest) Digest() ([sha256.Size]byte, error) {
	data, err := m.Encode()
	if err != nil {
		return [sha256.Size]byte{}, err
	}
	return sha256.Sum256(data), nil
}
