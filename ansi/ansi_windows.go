//go:build windows

package ansi

import (
	"sync"

	"golang.org/x/sys/windows"
)

var (
	stdoutErr  error
	stdoutOnce sync.Once
	stderrErr  error
	stderrOnce sync.Once
)

// EnableStdout turns on ENABLE_VIRTUAL_TERMINAL_PROCESSING for the stdout
// console handle, so that ANSI sequences at the detected color level are
// actually rendered instead of printed literally.
// See https://docs.microsoft.com/en-us/windows/console/console-virtual-terminal-sequences
func EnableStdout() error {
	stdoutOnce.Do(func() {
		stdoutErr = windowsSetMode(windows.STD_OUTPUT_HANDLE, windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	})
	return stdoutErr
}

// EnableStderr is EnableStdout for the stderr console handle.
func EnableStderr() error {
	stderrOnce.Do(func() {
		stderrErr = windowsSetMode(windows.STD_ERROR_HANDLE, windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	})
	return stderrErr
}

func windowsSetMode(stdhandle uint32, modeFlag uint32) (err error) {
	handle, err := windows.GetStdHandle(stdhandle)
	if err != nil {
		return err
	}

	var mode uint32
	err = windows.GetConsoleMode(handle, &mode)
	if err != nil {
		return err
	}

	// Enable the mode if it is not currently set
	if mode&modeFlag != modeFlag {
		mode = mode | modeFlag
		err = windows.SetConsoleMode(handle, mode)
		if err != nil {
			return err
		}
	}

	return nil
}
