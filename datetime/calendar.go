// Copyright 2023 The Datetime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datetime implements a civil date/time model on the proleptic
// Gregorian calendar: dates, times of day, normalized instants, and
// exact and calendar-relative duration arithmetic.
//
// All types in this package are immutable values. Operations are pure
// functions returning new values, so any value may be used freely from
// concurrent goroutines without synchronization. No operation performs
// I/O, reads a clock, or consults a timezone database; a UTC offset, if
// present, is a plain number of minutes supplied by the caller.
package datetime // import "go.datetime.net/datetime"

import "fmt"

// A DayCount is a linear count of civil days.
// Day 0 is the Unix epoch, 1970-01-01.
// It is the calendar's canonical interchange form: DayCount and
// CivilDate are bijective over the representable range.
type DayCount int64

// The representable year range. The bounds give every date a
// fixed-width canonical text form and make overflow checkable.
const (
	MinYear = -9999
	MaxYear = 9999
)

var (
	minDays = daysFromCivil(MinYear, 1, 1)
	maxDays = daysFromCivil(MaxYear, 12, 31)
)

// MinDays returns the smallest representable DayCount (MinYear-01-01).
func MinDays() DayCount { return DayCount(minDays) }

// MaxDays returns the largest representable DayCount (MaxYear-12-31).
func MaxDays() DayCount { return DayCount(maxDays) }

// A CivilDate is a (year, month, day) triple on the proleptic Gregorian
// calendar. It is always normalized: month is in [1, 12] and day never
// exceeds the length of the month. The zero value is 0000-00-00, which
// is not a valid date; obtain values from MakeDate or FromDays.
type CivilDate struct {
	year  int
	month int // 1..12
	day   int // 1..DaysInMonth(year, month)
}

// MakeDate returns the civil date denoted by year, month and day.
// It fails with ErrInvalidDate if the triple does not denote a real
// date in the representable range; it never normalizes its arguments.
func MakeDate(year, month, day int) (CivilDate, error) {
	if year < MinYear || year > MaxYear {
		return CivilDate{}, fmt.Errorf("year %d out of range [%d, %d]: %w", year, MinYear, MaxYear, ErrInvalidDate)
	}
	if month < 1 || month > 12 {
		return CivilDate{}, fmt.Errorf("month %d out of range [1, 12]: %w", month, ErrInvalidDate)
	}
	if n := DaysInMonth(year, month); day < 1 || day > n {
		return CivilDate{}, fmt.Errorf("day %d out of range [1, %d] for %04d-%02d: %w", day, n, year, month, ErrInvalidDate)
	}
	return CivilDate{year, month, day}, nil
}

// MustDate is like MakeDate but panics on error.
// It simplifies the initialization of test and example data.
func MustDate(year, month, day int) CivilDate {
	d, err := MakeDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromDays returns the civil date at the given day count.
// It fails with ErrOverflow if n is outside [MinDays, MaxDays].
func FromDays(n DayCount) (CivilDate, error) {
	if int64(n) < minDays || int64(n) > maxDays {
		return CivilDate{}, fmt.Errorf("day count %d out of range [%d, %d]: %w", n, minDays, maxDays, ErrOverflow)
	}
	y, m, d := civilFromDays(int64(n))
	return CivilDate{y, m, d}, nil
}

// Year returns the year, in [MinYear, MaxYear].
func (d CivilDate) Year() int { return d.year }

// Month returns the month, in [1, 12].
func (d CivilDate) Month() int { return d.month }

// Day returns the day of the month, in [1, 31].
func (d CivilDate) Day() int { return d.day }

// Days returns the day count of the date.
// FromDays(d.Days()) == d for every valid date.
func (d CivilDate) Days() DayCount {
	return DayCount(daysFromCivil(d.year, d.month, d.day))
}

// Weekday returns the day of the week, where 0 is Sunday and 6 is
// Saturday. Day 0 (1970-01-01) is a Thursday.
func (d CivilDate) Weekday() int {
	return int(floorMod(int64(d.Days())+4, 7))
}

// YearDay returns the ordinal day within the year, in [1, 366].
func (d CivilDate) YearDay() int {
	return daysBeforeMonth[leapIndex(d.year)][d.month-1] + d.day
}

// String returns the date in canonical YYYY-MM-DD form.
func (d CivilDate) String() string {
	if d.year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.year, d.month, d.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// IsLeapYear reports whether year is a leap year under the proleptic
// Gregorian rule: divisible by 4, except century years not divisible
// by 400. The rule applies uniformly to all years, including those
// before year 1.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the
// given year, in [28, 31]. Month must be in [1, 12].
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month-1]
}

var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Cumulative day counts preceding each month, for normal and leap years.
var daysBeforeMonth = [2][13]int{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366},
}

func leapIndex(year int) int {
	if IsLeapYear(year) {
		return 1
	}
	return 0
}

// daysFromCivil converts a civil triple to a day count relative to
// 1970-01-01 using 400-year eras, which makes the conversion exact and
// loop-free over the whole proleptic range.
func daysFromCivil(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	var mp int64      // March-based month index [0, 11]
	if month > 2 {
		mp = int64(month) - 3
	} else {
		mp = int64(month) + 9
	}
	doy := (153*mp+2)/5 + int64(day) - 1          // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy        // [0, 146096]
	return era*146097 + doe - 719468              // shift epoch to 1970-01-01
}

// civilFromDays is the exact inverse of daysFromCivil.
func civilFromDays(n int64) (year, month, day int) {
	z := n + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097                                        // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365       // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)                     // [0, 365]
	mp := (5*doy + 2) / 153                                      // [0, 11]
	d := doy - (153*mp+2)/5 + 1                                  // [1, 31]
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}

// floorDiv returns the quotient of x/y rounded toward negative infinity.
func floorDiv(x, y int64) int64 {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

// floorMod returns the remainder of floorDiv; it is always in [0, y).
func floorMod(x, y int64) int64 {
	return x - floorDiv(x, y)*y
}
