// Package fields decomposes a millisecond countdown duration into the
// days/hours/minutes/seconds view rendered on each frame.
package fields

import "fmt"

const (
	msPerSecond int64 = 1000
	msPerMinute       = 60 * msPerSecond
	msPerHour         = 60 * msPerMinute
	msPerDay          = 24 * msPerHour
)

// Set holds the decomposed remainders of a duration. Each field excludes the
// contribution of all higher units: hours never exceeds 23, minutes and
// seconds never exceed 59, and days is unbounded.
type Set struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Decompose splits a non-negative millisecond duration into field remainders.
// Negative inputs decompose as zero.
func Decompose(ms int64) Set {
	if ms < 0 {
		ms = 0
	}
	days := ms / msPerDay
	hours := ms/msPerHour - days*24
	minutes := ms/msPerMinute - days*24*60 - hours*60
	seconds := ms/msPerSecond - days*86400 - hours*3600 - minutes*60
	return Set{
		Days:    int(days),
		Hours:   int(hours),
		Minutes: int(minutes),
		Seconds: int(seconds),
	}
}

// Decrement subtracts whole seconds from a millisecond duration. The
// subtraction is exact integer arithmetic, so repeated single-second
// decrements never drift from one direct subtraction.
func Decrement(ms int64, seconds int) int64 {
	return ms - int64(seconds)*msPerSecond
}

// Strings returns each field zero-padded to at least two digits. Values of
// 100 or more render at full width.
func (s Set) Strings() (days, hours, minutes, seconds string) {
	return pad(s.Days), pad(s.Hours), pad(s.Minutes), pad(s.Seconds)
}

// String renders the set in the session log format, e.g. "01d 10h 03m 59s".
func (s Set) String() string {
	d, h, m, sec := s.Strings()
	return d + "d " + h + "h " + m + "m " + sec + "s"
}

func pad(value int) string {
	return fmt.Sprintf("%02d", value)
}
