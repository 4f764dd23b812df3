package domain

import "fmt"

// FormatClock renders whole seconds as HH:MM:SS
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}

// FormatCompact renders whole seconds as M:SS, with minutes unbounded
func FormatCompact(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
