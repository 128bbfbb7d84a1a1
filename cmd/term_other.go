//go:build !linux && !darwin

package cmd

func terminalWidth(int) int {
	return defaultWidth
}
