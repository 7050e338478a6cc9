//go:build !debug
// +build !debug

package tweezers

func DebugLog(format string, args ...interface{}) {}

func DebugLogOnce(format string, args ...interface{}) {}
