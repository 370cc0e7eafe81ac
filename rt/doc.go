// Package rt is the runtime support layer linked into compiled Rush
// programs. It defines the tagged Value every caller shares, the
// constructors that build Values from native data, the printers, and the
// four arithmetic operations that need run-time type dispatch.
//
// The engine keeps no state: every operation is a pure function or a direct
// synchronous write to standard output, and the only failure signal any
// operation produces is the null Value.
package rt
