package timeutil

import (
	"fmt"
	"time"
)

// UTC offset bounds in minutes, per the IANA list of assigned offsets
// (UTC-12:00 through UTC+14:00).
const (
	MinUTCOffsetMinutes = -12 * 60
	MaxUTCOffsetMinutes = 14 * 60
)

// ValidUTCOffset reports whether an offset in minutes falls inside the
// assigned UTC offset range.
func ValidUTCOffset(minutes int) bool {
	return minutes >= MinUTCOffsetMinutes && minutes <= MaxUTCOffsetMinutes
}

// TimestampDescription renders a wall-clock time with explicit UTC offset
// and DST markers, for logs describing a device's local clock:
//
//	2026-08-23 14:05:09 (UTC+02:00) (DST: ON)
//
// Offsets outside the assigned range fall back to a raw-minutes form
// instead of failing; a display string is still more useful than an error
// here.
func TimestampDescription(t time.Time, utcOffsetMinutes int, dst bool) string {
	base := t.Format("2006-01-02 15:04:05")
	dstStatus := "OFF"
	if dst {
		dstStatus = "ON"
	}

	if !ValidUTCOffset(utcOffsetMinutes) {
		return fmt.Sprintf("%s (UTC Offset minutes: %d) (DST: %s)", base, utcOffsetMinutes, dstStatus)
	}

	sign := "+"
	offset := utcOffsetMinutes
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s (UTC%s%02d:%02d) (DST: %s)", base, sign, offset/60, offset%60, dstStatus)
}

// TimestampFilename renders the same information in a filesystem-safe
// form, suitable for log or capture file names:
//
//	20260823_140509_0200_DST-ON
//	20260823_140509_neg0330_DST-OFF
//
// Unlike TimestampDescription, an out-of-range offset is an error: a bad
// offset would silently produce a misleading filename.
func TimestampFilename(t time.Time, utcOffsetMinutes int, dst bool) (string, error) {
	if !ValidUTCOffset(utcOffsetMinutes) {
		return "", &InvalidUTCOffsetError{Minutes: utcOffsetMinutes}
	}

	signPrefix := ""
	offset := utcOffsetMinutes
	if offset < 0 {
		signPrefix = "neg"
		offset = -offset
	}
	dstStatus := "DST-OFF"
	if dst {
		dstStatus = "DST-ON"
	}

	return fmt.Sprintf("%s_%s%02d%02d_%s",
		t.Format("20060102_150405"), signPrefix, offset/60, offset%60, dstStatus), nil
}

// LocalTime returns the current time in the named IANA timezone
// (e.g. "America/New_York").
func LocalTime(timezone string) (time.Time, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: unknown timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}
