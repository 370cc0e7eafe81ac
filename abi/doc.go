// Package abi describes the binary contract between the Rush runtime and
// independently compiled code: the 16-byte Value record, the kind ordinals,
// and the linkable symbol set. Toolchains emit or compare its canonical
// manifest to confirm they were built against the same contract.
package abi
