// Copyright 2023 The Datetime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import "errors"

// The error taxonomy of the core. Every fallible operation returns one
// of these sentinels, usually wrapped with additional context; callers
// discriminate with errors.Is. No operation panics on bad input and no
// error kind is ever translated into another while propagating.
var (
	// ErrInvalidDate reports a (year, month, day) triple that does not
	// denote a real proleptic-Gregorian date in the representable range.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime reports a (hour, minute, second, nanosecond) tuple
	// outside the bounds of a civil day.
	ErrInvalidTime = errors.New("invalid time")

	// ErrOverflow reports an arithmetic result whose day count falls
	// outside [MinDays, MaxDays]. Arithmetic never wraps silently.
	ErrOverflow = errors.New("result out of range")

	// ErrMixedOffsetComparison reports an attempt to order two instants
	// whose UTC offset states differ. Use CompareUTC to order them
	// relative to a common reference offset.
	ErrMixedOffsetComparison = errors.New("cannot compare instants with different UTC offsets")
)
