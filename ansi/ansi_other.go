//go:build !windows

package ansi

// EnableStdout is a no-op outside Windows, where ANSI processing needs no
// opt-in.
func EnableStdout() error { return nil }

// EnableStderr is a no-op outside Windows.
func EnableStderr() error { return nil }
