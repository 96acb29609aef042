//go:build !windows
// +build !windows

package cli

// EnableANSI is a no-op outside Windows; every other supported terminal
// speaks the escape codes natively.
func EnableANSI() {}
