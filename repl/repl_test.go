// Copyright 2023 The Datetime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repl

import (
	"errors"
	"testing"

	"go.datetime.net/datetime"
)

func TestEvalLine(t *testing.T) {
	for _, test := range []struct {
		expr, want string
	}{
		{"2023-07-09", "2023-07-09"},
		{"2023-01-31 + 1mo", "2023-02-28"},
		{"2023-01-01 + 1y2mo3d", "2024-03-04"},
		{"2023-12-31T23:59:59 + 1s", "2024-01-01"},
		{"2023-01-01 + 90m", "2023-01-01T01:30:00"},
		{"2023-01-01 - 1ns", "2022-12-31T23:59:59.999999999"},
		{"2023-03-31 - 1mo + 1d", "2023-03-01"},
		{"utc(2023-01-01T14:00:00+02:00)", "2023-01-01T12:00:00Z"},
		{"2023-01-01T00:00:00Z < 2023-01-01T00:00:01Z", "true"},
		{"2023-01-01T00:00:01Z <= 2023-01-01T00:00:00Z", "false"},
		{"2023-01-01T12:00:00Z == utc(2023-01-01T14:00:00+02:00)", "true"},
		{"2023-01-01 != 2023-01-02", "true"},
		{"2023-01-31 + 1mo > 2023-02-27", "true"},
	} {
		got, err := EvalLine(test.expr)
		if err != nil {
			t.Errorf("EvalLine(%q): %v", test.expr, err)
			continue
		}
		if got != test.want {
			t.Errorf("EvalLine(%q) = %q, want %q", test.expr, got, test.want)
		}
	}
}

func TestEvalLineErrors(t *testing.T) {
	for _, expr := range []string{
		"",
		"yesterday",
		"2023-02-30",
		"2023-01-01 +",
		"2023-01-01 + nonsense",
		"2023-01-01 1d",
		"9999-12-31 + 1d",
		"< 2023-01-01",
	} {
		if out, err := EvalLine(expr); err == nil {
			t.Errorf("EvalLine(%q) = %q, want error", expr, out)
		}
	}

	// Mixed-offset comparisons surface the core error unchanged.
	_, err := EvalLine("2023-01-01T00:00:00Z == 2023-01-01T00:00:00+01:00")
	if !errors.Is(err, datetime.ErrMixedOffsetComparison) {
		t.Errorf("mixed-offset comparison error = %v, want ErrMixedOffsetComparison", err)
	}

	// Range overflow is reported, not wrapped around.
	_, err = EvalLine("9999-12-31T23:59:59 + 1s")
	if !errors.Is(err, datetime.ErrOverflow) {
		t.Errorf("overflow error = %v, want ErrOverflow", err)
	}
}

func TestParseCalendarDuration(t *testing.T) {
	for _, test := range []struct {
		in   string
		want datetime.CalendarDuration
		ok   bool
	}{
		{"1y", datetime.Calendar(1, 0, 0), true},
		{"6mo", datetime.Calendar(0, 6, 0), true},
		{"3d", datetime.Calendar(0, 0, 3), true},
		{"1y2mo3d", datetime.Calendar(1, 2, 3), true},
		{"-1y1d", datetime.Calendar(-1, 0, -1), true},
		{"90m", datetime.CalendarDuration{}, false}, // minutes are exact, not calendar
		{"1h30m", datetime.CalendarDuration{}, false},
		{"mo", datetime.CalendarDuration{}, false},
		{"", datetime.CalendarDuration{}, false},
		{"-", datetime.CalendarDuration{}, false},
	} {
		got, ok := parseCalendar(test.in)
		if ok != test.ok || (ok && got != test.want) {
			t.Errorf("parseCalendar(%q) = %v, %v; want %v, %v", test.in, got, ok, test.want, test.ok)
		}
	}
}
