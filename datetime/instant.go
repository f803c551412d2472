// Copyright 2023 The Datetime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import "fmt"

// An Instant is a fully normalized point in time: a CivilDate plus a
// TimeOfDay, optionally qualified by a UTC offset in minutes. The pair
// is always mutually normalized; no instant carries a pending day
// carry. The zero value is the unzoned midnight of the zero CivilDate
// and is not a valid instant.
//
// Instants are comparable with ==, which is structural: two instants
// are == only if date, time and offset state all match. Temporal order
// is defined by Compare and CompareUTC.
type Instant struct {
	date   CivilDate
	time   TimeOfDay
	offset int  // minutes east of UTC; meaningful only when zoned
	zoned  bool
}

// MakeInstant composes a date and a time of day into an unzoned instant.
func MakeInstant(d CivilDate, t TimeOfDay) Instant {
	return Instant{date: d, time: t}
}

// MakeZoned composes a date, a time of day and a UTC offset in minutes
// east of UTC into a zoned instant. The offset is a plain value; it
// carries no reference to a timezone database.
func MakeZoned(d CivilDate, t TimeOfDay, offsetMinutes int) Instant {
	return Instant{date: d, time: t, offset: offsetMinutes, zoned: true}
}

// Date returns the civil date of the instant.
func (x Instant) Date() CivilDate { return x.date }

// Time returns the time of day of the instant.
func (x Instant) Time() TimeOfDay { return x.time }

// Offset returns the UTC offset in minutes east of UTC, and whether the
// instant is zoned at all.
func (x Instant) Offset() (minutes int, zoned bool) {
	return x.offset, x.zoned
}

// String returns the canonical text form of the instant; see package iso.
func (x Instant) String() string {
	s := x.date.String()
	if !x.zoned && x.time == Midnight {
		return s
	}
	s += "T" + x.time.String()
	if !x.zoned {
		return s
	}
	if x.offset == 0 {
		return s + "Z"
	}
	sign, off := "+", x.offset
	if off < 0 {
		sign, off = "-", -off
	}
	return s + fmt.Sprintf("%s%02d:%02d", sign, off/60, off%60)
}

// normalize folds a whole-day carry produced by TimeOfDay arithmetic
// into the date via its day-count round trip. It fails with ErrOverflow
// if the resulting day count leaves the representable range.
func normalize(d CivilDate, t TimeOfDay, dayCarry int64) (CivilDate, TimeOfDay, error) {
	if dayCarry == 0 {
		return d, t, nil
	}
	nd, err := FromDays(DayCount(int64(d.Days()) + dayCarry))
	if err != nil {
		return CivilDate{}, TimeOfDay{}, err
	}
	return nd, t, nil
}

// utcDayNanos returns the instant's position on the linear timeline as
// a (day count, nanos within day) pair shifted to UTC. Unzoned instants
// are taken at face value. The pair may lie outside the representable
// CivilDate range; it is used only for ordering and epoch math.
func (x Instant) utcDayNanos() (int64, int64) {
	if !x.zoned || x.offset == 0 {
		return int64(x.date.Days()), x.time.Nanos()
	}
	t, carry := x.time.AddNanos(-int64(x.offset) * nanosPerMinute)
	return int64(x.date.Days()) + carry, t.Nanos()
}

// Compare returns -1, 0, or +1 ordering x before, equal to, or after y.
// The order is total: first by day count, then by nanoseconds within
// the day.
//
// Comparing instants whose offset states differ (different offsets, or
// zoned against unzoned) fails with ErrMixedOffsetComparison rather
// than guessing; use CompareUTC to order such instants relative to UTC.
func (x Instant) Compare(y Instant) (int, error) {
	if x.zoned != y.zoned || (x.zoned && x.offset != y.offset) {
		return 0, fmt.Errorf("%s vs %s: %w", x, y, ErrMixedOffsetComparison)
	}
	return CompareUTC(x, y), nil
}

// CompareUTC orders x and y after shifting both to UTC. Unzoned
// instants are taken as already being in UTC. It never fails.
func CompareUTC(x, y Instant) int {
	xd, xn := x.utcDayNanos()
	yd, yn := y.utcDayNanos()
	switch {
	case xd < yd || (xd == yd && xn < yn):
		return -1
	case xd == yd && xn == yn:
		return 0
	}
	return +1
}

// UTC returns the instant shifted to offset zero. Unzoned instants are
// stamped as UTC without shifting. It fails with ErrOverflow if the
// shifted date leaves the representable range.
func (x Instant) UTC() (Instant, error) {
	if !x.zoned || x.offset == 0 {
		return MakeZoned(x.date, x.time, 0), nil
	}
	t, carry := x.time.AddNanos(-int64(x.offset) * nanosPerMinute)
	d, t, err := normalize(x.date, t, carry)
	if err != nil {
		return Instant{}, fmt.Errorf("%s to UTC: %w", x, err)
	}
	return MakeZoned(d, t, 0), nil
}

// Unix returns the number of whole seconds elapsed since the Unix
// epoch, 1970-01-01T00:00:00Z, rounding toward negative infinity.
func (x Instant) Unix() int64 {
	days, nanos := x.utcDayNanos()
	return days*86_400 + nanos/nanosPerSecond
}

// UnixMilli returns the number of whole milliseconds elapsed since the
// Unix epoch, rounding toward negative infinity.
func (x Instant) UnixMilli() int64 {
	days, nanos := x.utcDayNanos()
	return days*86_400_000 + nanos/1_000_000
}

// FromUnixMilli returns the UTC instant at the given number of
// milliseconds since the Unix epoch. It fails with ErrOverflow if the
// instant is not representable.
func FromUnixMilli(msec int64) (Instant, error) {
	d, err := FromDays(DayCount(floorDiv(msec, 86_400_000)))
	if err != nil {
		return Instant{}, err
	}
	return MakeZoned(d, TimeOfDay{floorMod(msec, 86_400_000) * 1_000_000}, 0), nil
}
