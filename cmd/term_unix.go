//go:build linux || darwin

package cmd

import (
	"golang.org/x/sys/unix"
)

// terminalWidth returns the column count of the terminal on fd.
func terminalWidth(fd int) int {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return defaultWidth
	}
	return int(ws.Col)
}
