package rt

import (
	"io"
	"os"
	"strconv"

	"github.com/zhubert/rush-runtime/cstr"
)

// ---------------------------------------------------------------------------
// Printers
// ---------------------------------------------------------------------------

// stdout is the stream every printer writes to. Only the package's own
// tests replace it.
var stdout io.Writer = os.Stdout

var newline = []byte{'\n'}

// Print writes b verbatim to standard output. No terminator is assumed or
// appended; interior NUL bytes pass through. Write errors are not surfaced.
func Print(b []byte) {
	stdout.Write(b)
}

// PrintLine writes b verbatim, then a single newline byte.
func PrintLine(b []byte) {
	stdout.Write(b)
	stdout.Write(newline)
}

// PrintValue renders v according to its kind and writes the text to
// standard output.
func PrintValue(v Value) {
	io.WriteString(stdout, v.String())
}

// Println renders v like PrintValue and appends a single newline byte.
func Println(v Value) {
	io.WriteString(stdout, v.String())
	stdout.Write(newline)
}

// String renders the Value the way the printers emit it:
//
//	Integer  decimal, signed
//	Float    shortest round-trippable form
//	Boolean  "true" for any nonzero payload, else "false"
//	String   the NUL-terminated bytes at the payload address
//	Null     "null", as does any unrecognized kind
//
// A String Value with a zero address renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.payload, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case KindBoolean:
		if v.payload != 0 {
			return "true"
		}
		return "false"
	case KindString:
		return cstr.GoString(v.StringPtr())
	default:
		return "null"
	}
}
