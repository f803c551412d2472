// Copyright 2023 The Datetime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso

import "go.datetime.net/datetime"

// Format renders an instant in canonical form, the structural inverse
// of Parse: fixed-width zero-padded fields, a fraction only when
// nonzero with trailing zeros trimmed, "Z" for a zero offset and
// "+HH:MM"/"-HH:MM" otherwise. An unzoned instant at exactly midnight
// renders as a bare date.
//
// Parse(Format(i)) == i for every constructible instant.
func Format(x datetime.Instant) string {
	return string(Append(nil, x))
}

// Append appends the canonical form of x to b and returns the extended
// buffer.
func Append(b []byte, x datetime.Instant) []byte {
	d := x.Date()
	year := d.Year()
	if year < 0 {
		b = append(b, '-')
		year = -year
	}
	b = pad(b, year, 4)
	b = append(b, '-')
	b = pad(b, d.Month(), 2)
	b = append(b, '-')
	b = pad(b, d.Day(), 2)

	t := x.Time()
	offset, zoned := x.Offset()
	if !zoned && t == datetime.Midnight {
		return b
	}

	b = append(b, 'T')
	b = pad(b, t.Hour(), 2)
	b = append(b, ':')
	b = pad(b, t.Minute(), 2)
	b = append(b, ':')
	b = pad(b, t.Second(), 2)
	if ns := t.Nanosecond(); ns != 0 {
		b = append(b, '.')
		b = pad(b, ns, 9)
		for b[len(b)-1] == '0' {
			b = b[:len(b)-1]
		}
	}

	if !zoned {
		return b
	}
	if offset == 0 {
		return append(b, 'Z')
	}
	sign := byte('+')
	if offset < 0 {
		sign, offset = '-', -offset
	}
	b = append(b, sign)
	b = pad(b, offset/60, 2)
	b = append(b, ':')
	return pad(b, offset%60, 2)
}

// pad appends v in decimal, zero-padded to the given width.
func pad(b []byte, v, width int) []byte {
	var digits [10]byte
	i := len(digits)
	for v > 0 {
		i--
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	for n := len(digits) - i; n < width; n++ {
		b = append(b, '0')
	}
	return append(b, digits[i:]...)
}
