//go:build !nbt_debug

package nbt

/*
trc_off.go is the no-op counterpart to trc_on.go, compiled by default.
The debugEnter/debugExit/debugInfo call sites throughout this package
cost nothing in a normal build: the compiler inlines these away.
*/

func EnableDebug()  {}
func DisableDebug() {}

func debugEnter(fn string, args ...any)  {}
func debugExit(fn string, err error)     {}
func debugInfo(format string, args ...any) {}
