// Copyright 2023 The Datetime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"math"
	"math/bits"
	"time"
)

// A Duration is a span of time of one of exactly two kinds: an
// ExactDuration (elapsed nanoseconds, independent of the calendar) or a
// CalendarDuration (years/months/days, whose effect depends on the
// instant it is applied to). The two kinds have genuinely different
// algebra and are never substitutable for each other, so the interface
// is sealed and the arithmetic matches exhaustively.
type Duration interface {
	// Negated returns the duration with its sign flipped, as a Duration
	// of the same kind. Subtraction is addition of a negated duration.
	Negated() Duration

	duration() // sealed
}

func (ExactDuration) duration()    {}
func (CalendarDuration) duration() {}

// An ExactDuration is a signed 128-bit count of elapsed nanoseconds.
// It is time-invariant: adding it to an instant moves the instant by
// exactly that much elapsed time, making it the only arithmetic mode
// safe for measuring wall-clock spans. The zero value is zero duration.
type ExactDuration struct {
	hi int64  // upper limb, carries the sign
	lo uint64 // lower limb
}

// Nanoseconds returns the exact duration of n nanoseconds.
func Nanoseconds(n int64) ExactDuration {
	var hi int64
	if n < 0 {
		hi = -1
	}
	return ExactDuration{hi, uint64(n)}
}

// Seconds returns the exact duration of n seconds.
func Seconds(n int64) ExactDuration {
	return mul64(n, nanosPerSecond)
}

// Days returns the exact duration of n civil days of elapsed time.
// Note that this is an elapsed-time span; to move a date by calendar
// days use CalendarDuration.
func Days(n int64) ExactDuration {
	return mul64(n, NanosPerDay)
}

// FromDuration converts a time.Duration to an ExactDuration.
func FromDuration(d time.Duration) ExactDuration {
	return Nanoseconds(int64(d))
}

// mul64 returns the full 128-bit product a*b.
func mul64(a, b int64) ExactDuration {
	neg := false
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		neg, ua = !neg, uint64(-a)
	}
	if b < 0 {
		neg, ub = !neg, uint64(-b)
	}
	hi, lo := bits.Mul64(ua, ub)
	d := ExactDuration{int64(hi), lo}
	if neg {
		d = d.Neg()
	}
	return d
}

// Neg returns the duration with its sign flipped.
func (d ExactDuration) Neg() ExactDuration {
	lo := -d.lo
	hi := ^d.hi
	if lo == 0 {
		hi++
	}
	return ExactDuration{hi, lo}
}

// Negated implements the Duration interface.
func (d ExactDuration) Negated() Duration { return d.Neg() }

// Sign returns -1, 0, or +1 according to the sign of d.
func (d ExactDuration) Sign() int {
	switch {
	case d.hi < 0:
		return -1
	case d.hi == 0 && d.lo == 0:
		return 0
	}
	return +1
}

// Cmp returns -1, 0, or +1 ordering d against e.
func (d ExactDuration) Cmp(e ExactDuration) int {
	if d == e {
		return 0
	}
	if d.hi < e.hi || (d.hi == e.hi && d.lo < e.lo) {
		return -1
	}
	return +1
}

// Add returns d+e, failing with ErrOverflow if the 128-bit sum wraps.
func (d ExactDuration) Add(e ExactDuration) (ExactDuration, error) {
	sum, ok := d.add(e)
	if !ok {
		return ExactDuration{}, fmt.Errorf("duration sum: %w", ErrOverflow)
	}
	return sum, nil
}

func (d ExactDuration) add(e ExactDuration) (ExactDuration, bool) {
	lo, carry := bits.Add64(d.lo, e.lo, 0)
	hi, _ := bits.Add64(uint64(d.hi), uint64(e.hi), carry)
	sum := ExactDuration{int64(hi), lo}
	// Signed overflow: operands of equal sign, sum of the other one.
	if (d.hi < 0) == (e.hi < 0) && (sum.hi < 0) != (d.hi < 0) {
		return ExactDuration{}, false
	}
	return sum, true
}

// Nanos returns the duration as an int64 nanosecond count.
// ok is false if the value does not fit.
func (d ExactDuration) Nanos() (n int64, ok bool) {
	if d.hi == 0 && d.lo <= math.MaxInt64 {
		return int64(d.lo), true
	}
	if d.hi == -1 && d.lo > math.MaxInt64 {
		return int64(d.lo), true
	}
	return 0, false
}

// String renders the duration in time.Duration notation when it fits in
// 64 bits, and as a raw nanosecond count otherwise.
func (d ExactDuration) String() string {
	if n, ok := d.Nanos(); ok {
		return time.Duration(n).String()
	}
	// Decimal rendering of the 128-bit magnitude.
	m := d
	sign := ""
	if d.Sign() < 0 {
		m, sign = d.Neg(), "-"
	}
	var buf [40]byte
	i := len(buf)
	hi, lo := uint64(m.hi), m.lo
	for hi != 0 || lo != 0 {
		var rem uint64
		hiq := hi / 10
		rem = hi % 10
		loq, r := bits.Div64(rem, lo, 10)
		hi, lo, rem = hiq, loq, r
		i--
		buf[i] = byte('0' + rem)
	}
	return sign + string(buf[i:]) + "ns"
}

// divModDay splits the duration into whole days (floored) and a
// nonnegative remainder of nanoseconds within the day. ok is false if
// the day count does not fit in an int64.
func (d ExactDuration) divModDay() (days, nanos int64, ok bool) {
	neg := d.hi < 0
	m := d
	if neg {
		m = d.Neg()
		if m.hi < 0 { // d was the minimum value; magnitude not representable
			return 0, 0, false
		}
	}
	const day = uint64(NanosPerDay)
	qhi := uint64(m.hi) / day
	rhi := uint64(m.hi) % day
	qlo, rem := bits.Div64(rhi, m.lo, day)
	if qhi != 0 || qlo > math.MaxInt64 {
		return 0, 0, false
	}
	days, nanos = int64(qlo), int64(rem)
	if neg {
		days = -days
		if nanos != 0 {
			days--
			nanos = NanosPerDay - nanos
		}
	}
	return days, nanos, true
}

// A CalendarDuration is a span in calendar units. Its effect depends on
// the instant it is applied to: adding a month to Jan 31 lands on the
// clamped end of February. Fields may be negative and are applied in
// the fixed order years, months, days (see AddCalendar).
type CalendarDuration struct {
	Years  int
	Months int
	Days   int
}

// Calendar returns the calendar duration of the given years, months
// and days.
func Calendar(years, months, days int) CalendarDuration {
	return CalendarDuration{Years: years, Months: months, Days: days}
}

// Neg returns the duration with every component negated.
func (d CalendarDuration) Neg() CalendarDuration {
	return CalendarDuration{-d.Years, -d.Months, -d.Days}
}

// Negated implements the Duration interface.
func (d CalendarDuration) Negated() Duration { return d.Neg() }

// String renders the duration in compact "1y2mo3d" notation.
func (d CalendarDuration) String() string {
	if d == (CalendarDuration{}) {
		return "0d"
	}
	s := ""
	if d.Years != 0 {
		s += fmt.Sprintf("%dy", d.Years)
	}
	if d.Months != 0 {
		s += fmt.Sprintf("%dmo", d.Months)
	}
	if d.Days != 0 {
		s += fmt.Sprintf("%dd", d.Days)
	}
	return s
}

// AddExact adds an elapsed-time duration to an instant: the instant is
// flattened to a 128-bit nanosecond count since the epoch, the duration
// is added, and the date and time are reconstructed from the result.
// The instant's offset state is preserved unchanged.
//
// AddExact is associative and commutative with other exact durations.
// It fails with ErrOverflow, never wrapping, if the resulting day count
// leaves [MinDays, MaxDays].
func AddExact(x Instant, d ExactDuration) (Instant, error) {
	total, ok := Days(int64(x.date.Days())).add(ExactDuration{0, uint64(x.time.Nanos())})
	if !ok {
		return Instant{}, fmt.Errorf("add %s to %s: %w", d, x, ErrOverflow)
	}
	total, ok = total.add(d)
	if !ok {
		return Instant{}, fmt.Errorf("add %s to %s: %w", d, x, ErrOverflow)
	}
	days, nanos, ok := total.divModDay()
	if !ok {
		return Instant{}, fmt.Errorf("add %s to %s: %w", d, x, ErrOverflow)
	}
	nd, err := FromDays(DayCount(days))
	if err != nil {
		return Instant{}, fmt.Errorf("add %s to %s: %w", d, x, err)
	}
	return Instant{date: nd, time: TimeOfDay{nanos}, offset: x.offset, zoned: x.zoned}, nil
}

// AddCalendar adds a calendar-relative duration to an instant. The
// components are applied in the fixed order years, then months, then
// days; the order is observable ("+1 month, +1 day" differs from
// "+1 day, +1 month" at month boundaries). Each of the year and month
// steps clamps the day of month down to the length of the resulting
// month when needed (Jan 31 + 1 month is the end of February, not a
// roll-over into March, and not an error). The day step then moves
// along the exact day-count line. The time of day is never touched.
//
// It fails with ErrOverflow, never wrapping, if any step leaves the
// representable range.
func AddCalendar(x Instant, d CalendarDuration) (Instant, error) {
	date, err := addMonthsClamped(x.date, int64(d.Years)*12)
	if err != nil {
		return Instant{}, fmt.Errorf("add %s to %s: %w", d, x, err)
	}
	date, err = addMonthsClamped(date, int64(d.Months))
	if err != nil {
		return Instant{}, fmt.Errorf("add %s to %s: %w", d, x, err)
	}
	if d.Days != 0 {
		date, err = FromDays(DayCount(int64(date.Days()) + int64(d.Days)))
		if err != nil {
			return Instant{}, fmt.Errorf("add %s to %s: %w", d, x, err)
		}
	}
	return Instant{date: date, time: x.time, offset: x.offset, zoned: x.zoned}, nil
}

// addMonthsClamped moves a date by whole months, carrying into the year
// modulo 12 and clamping the day to the target month's length.
func addMonthsClamped(d CivilDate, months int64) (CivilDate, error) {
	if months == 0 {
		return d, nil
	}
	total := int64(d.year)*12 + int64(d.month-1) + months
	y := floorDiv(total, 12)
	m := int(floorMod(total, 12)) + 1
	if y < MinYear || y > MaxYear {
		return CivilDate{}, fmt.Errorf("year %d out of range [%d, %d]: %w", y, MinYear, MaxYear, ErrOverflow)
	}
	day := d.day
	if n := DaysInMonth(int(y), m); day > n {
		day = n
	}
	return CivilDate{int(y), m, day}, nil
}

// Add applies a duration of either kind to an instant, dispatching
// exhaustively over the closed set of kinds.
func Add(x Instant, d Duration) (Instant, error) {
	switch d := d.(type) {
	case ExactDuration:
		return AddExact(x, d)
	case CalendarDuration:
		return AddCalendar(x, d)
	}
	panic(fmt.Sprintf("unexpected duration type %T", d))
}

// Sub subtracts a duration of either kind from an instant; it is
// exactly Add with the duration negated.
func Sub(x Instant, d Duration) (Instant, error) {
	return Add(x, d.Negated())
}
