// Copyright 2023 The Datetime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl provides a read/eval/print loop for date/time
// expressions.
//
// It supports readline-style command editing, and interrupts through
// Control-C.
//
// Each input line is one expression:
//
//	expr     = chain [relop chain]
//	chain    = term {("+"|"-") duration}
//	term     = instant | "utc(" instant ")"
//	relop    = "<" | "<=" | "==" | "!=" | ">=" | ">"
//
// where instant uses the canonical text grammar of package iso, and
// duration is either Go time.ParseDuration notation ("1h30m", exact
// elapsed time) or calendar units ("1y", "6mo", "1y2mo3d"). Tokens are
// separated by spaces. A chain evaluates to an instant and prints its
// canonical form; a comparison prints true or false.
package repl // import "go.datetime.net/repl"

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"go.datetime.net/datetime"
	"go.datetime.net/iso"
)

// REPL executes a read, eval, print loop.
func REPL() {
	rl, err := readline.New("> ")
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()
	for {
		if err := rep(rl); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// rep reads, evaluates, and prints one expression.
//
// It returns an error (possibly readline.ErrInterrupt)
// only if readline failed. Evaluation errors are printed.
func rep(rl *readline.Instance) error {
	line, err := rl.Readline()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return err
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}
	out, err := EvalLine(line)
	if err != nil {
		PrintError(err)
		return nil
	}
	fmt.Println(out)
	return nil
}

// PrintError prints the error to stderr.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, err)
}

// EvalLine evaluates a single expression line and returns its printed
// form: the canonical text of the resulting instant, or "true"/"false"
// for a comparison.
func EvalLine(line string) (string, error) {
	fields := strings.Fields(line)
	for i, f := range fields {
		switch f {
		case "<", "<=", "==", "!=", ">=", ">":
			x, err := evalChain(fields[:i])
			if err != nil {
				return "", err
			}
			y, err := evalChain(fields[i+1:])
			if err != nil {
				return "", err
			}
			cmp, err := x.Compare(y)
			if err != nil {
				return "", err
			}
			return strconv.FormatBool(threeway(f, cmp)), nil
		}
	}
	x, err := evalChain(fields)
	if err != nil {
		return "", err
	}
	return iso.Format(x), nil
}

// evalChain evaluates term {("+"|"-") duration}.
func evalChain(fields []string) (datetime.Instant, error) {
	if len(fields) == 0 {
		return datetime.Instant{}, fmt.Errorf("want an instant")
	}
	x, err := parseTerm(fields[0])
	if err != nil {
		return datetime.Instant{}, err
	}
	for i := 1; i < len(fields); i += 2 {
		op := fields[i]
		if op != "+" && op != "-" {
			return datetime.Instant{}, fmt.Errorf("want \"+\" or \"-\", got %q", op)
		}
		if i+1 == len(fields) {
			return datetime.Instant{}, fmt.Errorf("%q: want a duration", op)
		}
		d, err := parseDuration(fields[i+1])
		if err != nil {
			return datetime.Instant{}, err
		}
		if op == "-" {
			d = d.Negated()
		}
		x, err = datetime.Add(x, d)
		if err != nil {
			return datetime.Instant{}, err
		}
	}
	return x, nil
}

// parseTerm parses an instant literal, optionally wrapped in utc(...).
func parseTerm(s string) (datetime.Instant, error) {
	if inner, ok := cutWrap(s, "utc(", ")"); ok {
		x, err := iso.ParseString(inner)
		if err != nil {
			return datetime.Instant{}, fmt.Errorf("%q: %w", inner, err)
		}
		return x.UTC()
	}
	x, err := iso.ParseString(s)
	if err != nil {
		return datetime.Instant{}, fmt.Errorf("%q: %w", s, err)
	}
	return x, nil
}

func cutWrap(s, prefix, suffix string) (string, bool) {
	if strings.HasPrefix(s, prefix) && strings.HasSuffix(s, suffix) && len(s) >= len(prefix)+len(suffix) {
		return s[len(prefix) : len(s)-len(suffix)], true
	}
	return "", false
}

// parseDuration parses either calendar units ("1y2mo3d") or Go
// time.ParseDuration notation ("1h30m"). Calendar syntax is tried
// first; "1m" is one minute, "1mo" one month.
func parseDuration(s string) (datetime.Duration, error) {
	if cd, ok := parseCalendar(s); ok {
		return cd, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return nil, fmt.Errorf("%q: want a duration like 1h30m or 1y2mo3d", s)
	}
	return datetime.FromDuration(d), nil
}

// parseCalendar parses "NyNmoNd" with any subset of the units present.
func parseCalendar(s string) (datetime.CalendarDuration, bool) {
	var cd datetime.CalendarDuration
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if s == "" {
		return cd, false
	}
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i {
			return cd, false
		}
		n, err := strconv.Atoi(s[i:j])
		if err != nil {
			return cd, false
		}
		switch {
		case strings.HasPrefix(s[j:], "mo"):
			cd.Months += n
			i = j + 2
		case j < len(s) && s[j] == 'y':
			cd.Years += n
			i = j + 1
		case j < len(s) && s[j] == 'd':
			cd.Days += n
			i = j + 1
		default:
			return cd, false
		}
	}
	if neg {
		cd = cd.Neg()
	}
	return cd, true
}

// threeway interprets a three-way comparison value cmp (-1, 0, +1)
// as a boolean comparison (e.g. x < y).
func threeway(op string, cmp int) bool {
	switch op {
	case "==":
		return cmp == 0
	case "!=":
		return cmp != 0
	case "<=":
		return cmp <= 0
	case "<":
		return cmp < 0
	case ">=":
		return cmp >= 0
	case ">":
		return cmp > 0
	}
	panic(op)
}
