//go:build windows

package supportscolor

import "golang.org/x/sys/windows"

func windowsVersionNumbers() (major, minor, build int) {
	majorVersion, minorVersion, buildNumber := windows.RtlGetNtVersionNumbers()
	return int(majorVersion), int(minorVersion), int(buildNumber)
}
