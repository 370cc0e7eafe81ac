// Package cstr manages the NUL-terminated byte buffers behind String
// Values.
//
// A String Value carries only an address: no length, no ownership. Buffers
// created by New are pinned in a registry so the garbage collector keeps
// them alive while only a Value's integer payload refers to them; buffers
// from any other source are the caller's responsibility for the Value's
// whole lifetime. Together with the two pointer-facing functions of package
// rt, this package is the module's only raw-address code.
package cstr

import (
	"sync"
	"unsafe"
)

// pins holds every buffer handed out by New, keyed by the address of its
// first byte. The collector cannot see addresses stored as Value payloads,
// so a buffer stays reachable through this map until Free.
var pins = struct {
	sync.RWMutex
	bufs map[*byte][]byte
}{bufs: make(map[*byte][]byte)}

// New copies s into a fresh NUL-terminated buffer, pins it, and returns its
// address, suitable for rt.FromStringPtr. Bytes after an interior NUL in s
// are stored but unreachable through the terminator convention.
func New(s string) unsafe.Pointer {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	p := &buf[0]
	pins.Lock()
	pins.bufs[p] = buf
	pins.Unlock()
	return unsafe.Pointer(p)
}

// Free unpins a buffer returned by New; the address must not be used
// afterward. Freeing nil, or an address New did not return, is a no-op.
func Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	pins.Lock()
	delete(pins.bufs, (*byte)(p))
	pins.Unlock()
}

// GoString copies the bytes at p up to, not including, the first NUL into a
// Go string. p must address a NUL-terminated buffer; nil reads as the empty
// string.
func GoString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// Live reports how many buffers are currently pinned.
func Live() int {
	pins.RLock()
	defer pins.RUnlock()
	return len(pins.bufs)
}
