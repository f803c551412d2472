// Copyright 2023 The Datetime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"
	"testing"
)

func TestCompare(t *testing.T) {
	a := MakeInstant(MustDate(2023, 1, 1), MustTime(12, 0, 0, 0))
	b := MakeInstant(MustDate(2023, 1, 1), MustTime(12, 0, 0, 1))
	c := MakeInstant(MustDate(2023, 1, 2), Midnight)
	for _, test := range []struct {
		x, y Instant
		want int
	}{
		{a, a, 0},
		{a, b, -1},
		{b, a, +1},
		{b, c, -1},
		{a, c, -1},
	} {
		got, err := test.x.Compare(test.y)
		if err != nil {
			t.Fatalf("Compare(%s, %s): %v", test.x, test.y, err)
		}
		if got != test.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", test.x, test.y, got, test.want)
		}
	}
}

// The order is total: for instants of identical offset state, exactly
// one of x<y, x==y, x>y holds.
func TestCompareTrichotomy(t *testing.T) {
	instants := []Instant{
		MakeInstant(MustDate(2023, 1, 1), Midnight),
		MakeInstant(MustDate(2023, 1, 1), MustTime(0, 0, 0, 1)),
		MakeInstant(MustDate(2023, 1, 1), MustTime(23, 59, 59, 999_999_999)),
		MakeInstant(MustDate(2022, 12, 31), MustTime(23, 59, 59, 999_999_999)),
		MakeInstant(MustDate(-44, 3, 15), MustTime(12, 0, 0, 0)),
	}
	for _, x := range instants {
		for _, y := range instants {
			cmp, err := x.Compare(y)
			if err != nil {
				t.Fatalf("Compare(%s, %s): %v", x, y, err)
			}
			rev, err := y.Compare(x)
			if err != nil {
				t.Fatalf("Compare(%s, %s): %v", y, x, err)
			}
			if cmp != -rev {
				t.Errorf("Compare(%s, %s) = %d but Compare(%s, %s) = %d", x, y, cmp, y, x, rev)
			}
			if (cmp == 0) != (x == y) {
				t.Errorf("Compare(%s, %s) = %d, but == is %v", x, y, cmp, x == y)
			}
		}
	}
}

func TestCompareMixedOffsets(t *testing.T) {
	base := MustDate(2023, 1, 1)
	noon := MustTime(12, 0, 0, 0)
	for _, test := range []struct{ x, y Instant }{
		{MakeZoned(base, noon, 0), MakeZoned(base, noon, 60)},
		{MakeInstant(base, noon), MakeZoned(base, noon, 0)},
		{MakeZoned(base, noon, -90), MakeInstant(base, noon)},
	} {
		if _, err := test.x.Compare(test.y); !errors.Is(err, ErrMixedOffsetComparison) {
			t.Errorf("Compare(%s, %s) error = %v, want ErrMixedOffsetComparison", test.x, test.y, err)
		}
		// The same pair is always ordered by CompareUTC.
		CompareUTC(test.x, test.y)
	}
}

func TestCompareUTC(t *testing.T) {
	base := MustDate(2023, 1, 1)
	for _, test := range []struct {
		x, y Instant
		want int
	}{
		// 12:00+02:00 is 10:00Z.
		{MakeZoned(base, MustTime(12, 0, 0, 0), 120), MakeZoned(base, MustTime(10, 0, 0, 0), 0), 0},
		// An unzoned instant is taken as UTC.
		{MakeInstant(base, MustTime(10, 0, 0, 0)), MakeZoned(base, MustTime(10, 0, 0, 0), 0), 0},
		// Crossing midnight while shifting.
		{MakeZoned(base, MustTime(1, 0, 0, 0), 120), MakeZoned(MustDate(2022, 12, 31), MustTime(23, 0, 0, 0), 0), 0},
		{MakeZoned(base, MustTime(12, 0, 0, 0), 120), MakeZoned(base, MustTime(10, 0, 0, 1), 0), -1},
		{MakeZoned(base, MustTime(12, 0, 0, 0), 60), MakeZoned(base, MustTime(12, 0, 0, 0), 120), +1},
	} {
		if got := CompareUTC(test.x, test.y); got != test.want {
			t.Errorf("CompareUTC(%s, %s) = %d, want %d", test.x, test.y, got, test.want)
		}
	}
}

func TestUTC(t *testing.T) {
	got, err := MakeZoned(MustDate(2023, 1, 1), MustTime(1, 0, 0, 0), 120).UTC()
	if err != nil {
		t.Fatal(err)
	}
	want := MakeZoned(MustDate(2022, 12, 31), MustTime(23, 0, 0, 0), 0)
	if got != want {
		t.Errorf("UTC() = %s, want %s", got, want)
	}

	// An unzoned instant is stamped UTC without shifting.
	got, err = MakeInstant(MustDate(2023, 1, 1), Midnight).UTC()
	if err != nil {
		t.Fatal(err)
	}
	if want := MakeZoned(MustDate(2023, 1, 1), Midnight, 0); got != want {
		t.Errorf("UTC() = %s, want %s", got, want)
	}

	// Shifting off the end of the representable range overflows.
	_, err = MakeZoned(MustDate(MaxYear, 12, 31), MustTime(23, 59, 0, 0), -60).UTC()
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("UTC() at range edge: error = %v, want ErrOverflow", err)
	}
}

func TestUnix(t *testing.T) {
	epoch := MakeZoned(MustDate(1970, 1, 1), Midnight, 0)
	if got := epoch.Unix(); got != 0 {
		t.Errorf("epoch.Unix() = %d", got)
	}
	if got := epoch.UnixMilli(); got != 0 {
		t.Errorf("epoch.UnixMilli() = %d", got)
	}

	// Offsets shift the epoch reading.
	if got := MakeZoned(MustDate(1970, 1, 1), MustTime(1, 0, 0, 0), 60).Unix(); got != 0 {
		t.Errorf("01:00+01:00 Unix() = %d, want 0", got)
	}

	// Before the epoch, values are negative and floored.
	before := MakeZoned(MustDate(1969, 12, 31), MustTime(23, 59, 59, 999_000_000), 0)
	if got := before.Unix(); got != -1 {
		t.Errorf("Unix() = %d, want -1", got)
	}
	if got := before.UnixMilli(); got != -1 {
		t.Errorf("UnixMilli() = %d, want -1", got)
	}
}

// The 433166421023 vector pins FromUnixMilli against an independently
// known decomposition: 1983-09-23T12:00:21.023Z, a Friday.
func TestFromUnixMilli(t *testing.T) {
	got, err := FromUnixMilli(433_166_421_023)
	if err != nil {
		t.Fatal(err)
	}
	want := MakeZoned(MustDate(1983, 9, 23), MustTime(12, 0, 21, 23_000_000), 0)
	if got != want {
		t.Errorf("FromUnixMilli(433166421023) = %s, want %s", got, want)
	}
	if wd := got.Date().Weekday(); wd != 5 {
		t.Errorf("Weekday() = %d, want 5 (Friday)", wd)
	}
	if ms := got.UnixMilli(); ms != 433_166_421_023 {
		t.Errorf("UnixMilli() = %d", ms)
	}

	back, err := FromUnixMilli(-1)
	if err != nil {
		t.Fatal(err)
	}
	if want := MakeZoned(MustDate(1969, 12, 31), MustTime(23, 59, 59, 999_000_000), 0); back != want {
		t.Errorf("FromUnixMilli(-1) = %s, want %s", back, want)
	}
}

func TestInstantString(t *testing.T) {
	for _, test := range []struct {
		x    Instant
		want string
	}{
		{MakeInstant(MustDate(2023, 7, 9), Midnight), "2023-07-09"},
		{MakeInstant(MustDate(2023, 7, 9), MustTime(1, 2, 3, 0)), "2023-07-09T01:02:03"},
		{MakeZoned(MustDate(2023, 7, 9), Midnight, 0), "2023-07-09T00:00:00Z"},
		{MakeZoned(MustDate(2023, 7, 9), MustTime(1, 2, 3, 500_000_000), 330), "2023-07-09T01:02:03.5+05:30"},
		{MakeZoned(MustDate(2023, 7, 9), MustTime(1, 2, 3, 0), -90), "2023-07-09T01:02:03-01:30"},
	} {
		if got := test.x.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}
