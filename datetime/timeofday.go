// Copyright 2023 The Datetime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import "fmt"

// Nanosecond conversion factors.
const (
	nanosPerSecond = int64(1_000_000_000)
	nanosPerMinute = 60 * nanosPerSecond
	nanosPerHour   = 60 * nanosPerMinute

	// NanosPerDay is the length of every civil day in nanoseconds.
	NanosPerDay = 24 * nanosPerHour
)

// A TimeOfDay is a sub-day offset, a nanosecond count in
// [0, NanosPerDay). The zero value is midnight.
//
// TimeOfDay arithmetic never reaches into CivilDate: crossing a day
// boundary yields a whole-day carry that the caller must fold into the
// date (see Instant and the duration arithmetic).
type TimeOfDay struct {
	nanos int64 // [0, NanosPerDay)
}

// Midnight is the start of the civil day, 00:00:00.
var Midnight = TimeOfDay{}

// MakeTime returns the time of day denoted by the clock reading
// (hour, min, sec, nsec). It fails with ErrInvalidTime if hour > 23,
// min > 59, sec > 60, or nsec >= 1e9.
//
// sec == 60 is tolerated so that a textual leap second can be accepted;
// the value is normalized down to 59.999999999 (leap seconds are never
// tracked as elapsed time).
func MakeTime(hour, min, sec, nsec int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range [0, 23]: %w", hour, ErrInvalidTime)
	}
	if min < 0 || min > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range [0, 59]: %w", min, ErrInvalidTime)
	}
	if sec < 0 || sec > 60 {
		return TimeOfDay{}, fmt.Errorf("second %d out of range [0, 60]: %w", sec, ErrInvalidTime)
	}
	if nsec < 0 || int64(nsec) >= nanosPerSecond {
		return TimeOfDay{}, fmt.Errorf("nanosecond %d out of range [0, 1e9): %w", nsec, ErrInvalidTime)
	}
	if sec == 60 {
		sec, nsec = 59, int(nanosPerSecond-1)
	}
	return TimeOfDay{
		int64(hour)*nanosPerHour + int64(min)*nanosPerMinute + int64(sec)*nanosPerSecond + int64(nsec),
	}, nil
}

// MustTime is like MakeTime but panics on error.
func MustTime(hour, min, sec, nsec int) TimeOfDay {
	t, err := MakeTime(hour, min, sec, nsec)
	if err != nil {
		panic(err)
	}
	return t
}

// Hour returns the hour within the day, in [0, 23].
func (t TimeOfDay) Hour() int { return int(t.nanos / nanosPerHour) }

// Minute returns the minute within the hour, in [0, 59].
func (t TimeOfDay) Minute() int { return int(t.nanos % nanosPerHour / nanosPerMinute) }

// Second returns the second within the minute, in [0, 59].
func (t TimeOfDay) Second() int { return int(t.nanos % nanosPerMinute / nanosPerSecond) }

// Nanosecond returns the sub-second offset, in [0, 1e9).
func (t TimeOfDay) Nanosecond() int { return int(t.nanos % nanosPerSecond) }

// Nanos returns the offset since midnight in nanoseconds.
func (t TimeOfDay) Nanos() int64 { return t.nanos }

// AddNanos adds n nanoseconds (n may be negative) and returns the
// wrapped time of day together with the number of whole days carried
// across midnight. The carry must be applied to the accompanying
// CivilDate by the caller; it is never discarded here.
func (t TimeOfDay) AddNanos(n int64) (TimeOfDay, int64) {
	carry := floorDiv(n, NanosPerDay)
	sum := t.nanos + floorMod(n, NanosPerDay) // < 2*NanosPerDay, no overflow
	if sum >= NanosPerDay {
		sum -= NanosPerDay
		carry++
	}
	return TimeOfDay{sum}, carry
}

// String returns the time in canonical HH:MM:SS[.fffffffff] form with
// trailing fractional zeros trimmed.
func (t TimeOfDay) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	if ns := t.Nanosecond(); ns != 0 {
		frac := fmt.Sprintf("%09d", ns)
		for frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
		s += "." + frac
	}
	return s
}
