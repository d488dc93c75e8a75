//go:build nbt_debug

package nbt

/*
trc_on.go is compiled only under the nbt_debug build tag. It provides
the real tracer implementation; trc_off.go provides a zero-cost stub
pair compiled the rest of the time, the same split the teacher repo
uses for its own asn1plus_debug tag.
*/

import (
	"fmt"
	"os"
)

/*
EnvDebugVar is the environment variable that enables trace output
when this package is built with the nbt_debug tag, even if EnableDebug
is never called explicitly.
*/
const EnvDebugVar = "GONBT_DEBUG"

var tracingEnabled bool

func init() {
	if v := os.Getenv(EnvDebugVar); v != "" && v != "0" {
		tracingEnabled = true
	}
}

func EnableDebug()  { tracingEnabled = true }
func DisableDebug() { tracingEnabled = false }

func debugEnter(fn string, args ...any) {
	if !tracingEnabled {
		return
	}
	fmt.Fprintf(os.Stderr, "nbt: enter %s%v\n", fn, args)
}

func debugExit(fn string, err error) {
	if !tracingEnabled {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "nbt: exit  %s error=%v\n", fn, err)
		return
	}
	fmt.Fprintf(os.Stderr, "nbt: exit  %s\n", fn)
}

func debugInfo(format string, args ...any) {
	if !tracingEnabled {
		return
	}
	fmt.Fprintf(os.Stderr, "nbt: info  "+format+"\n", args...)
}
