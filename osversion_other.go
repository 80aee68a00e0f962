//go:build !windows

package supportscolor

func windowsVersionNumbers() (major, minor, build int) {
	return 0, 0, 0
}
