// Package timeutil provides utility functions for converting and formatting
// durations the way the timer counts them.
package timeutil

import (
	"fmt"
	"time"
)

const (
	secondsInAMinute = 60
	minutesInAnHour  = 60
)

// FloorSeconds returns the whole number of seconds in d. Negative durations
// yield zero.
func FloorSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	return int(d / time.Second)
}

// FloorMinutes returns the whole number of minutes in d. Negative durations
// yield zero.
func FloorMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	return int(d / time.Minute)
}

// SecsToMinsAndSecs splits a seconds value into minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	return val / secondsInAMinute, val % secondsInAMinute
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	return val / minutesInAnHour, val % minutesInAnHour
}

// Clock formats a seconds value as MM:SS.
func Clock(secs int) string {
	if secs < 0 {
		secs = 0
	}

	m, s := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}
