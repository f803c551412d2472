// Copyright 2023 The Datetime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iso converts between datetime.Instant values and the
// canonical ISO-8601-like text grammar:
//
//	date      = ["-"] year "-" month "-" day
//	time      = hour ":" minute ":" second ["." fraction]
//	offset    = "Z" | ("+"|"-") hour ":" minute
//	datetime  = date ["T" time [offset]]
//
// All numeric fields are fixed-width and zero-padded. The grammar is
// the library's only wire format, so Parse and Format must agree
// byte-for-byte across implementations: Format(Parse(s)) is the
// canonical form of any valid s, and Parse(Format(i)) == i for every
// constructible instant.
package iso // import "go.datetime.net/iso"

import (
	"fmt"

	"go.datetime.net/datetime"
)

// A Kind discriminates the ways a parse can fail.
type Kind int

const (
	// Syntax reports input that does not match the grammar.
	Syntax Kind = iota
	// InvalidDate reports a well-formed date whose fields do not denote
	// a real date, such as 2023-02-30.
	InvalidDate
	// InvalidTime reports a well-formed time whose fields are out of
	// range, such as 24:00:00.
	InvalidTime
	// InvalidOffset reports a well-formed offset whose hour or minute
	// field is out of range, such as +24:00.
	InvalidOffset
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "syntax error"
	case InvalidDate:
		return "invalid date"
	case InvalidTime:
		return "invalid time"
	case InvalidOffset:
		return "invalid offset"
	}
	panic(k)
}

// A ParseError describes a failure to parse an instant. Off is the byte
// offset of the offending token within the input; it is precise and
// stable, and conformance tests assert on exact offsets.
type ParseError struct {
	Off  int    // byte offset of the failing token
	Kind Kind   // what went wrong
	Msg  string // human-readable detail for syntax errors
	Err  error  // underlying constructor error, if any; never rewritten
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("offset %d: %v", e.Off, e.Err)
	}
	return fmt.Sprintf("offset %d: %s: %s", e.Off, e.Kind, e.Msg)
}

// Unwrap exposes the constructor error (datetime.ErrInvalidDate,
// datetime.ErrInvalidTime) that the parser annotated with an offset,
// so errors.Is sees the original kind.
func (e *ParseError) Unwrap() error { return e.Err }

// ParseString is Parse on a string.
func ParseString(s string) (datetime.Instant, error) {
	return Parse([]byte(s))
}

// Parse parses the canonical text form of an instant in a single
// left-to-right scan with no backtracking. Each component is validated
// as soon as it is read, so a syntactically well-formed but impossible
// date fails with InvalidDate at the offset of the day field, not with
// a grammar error. On failure the returned error is a *ParseError.
func Parse(input []byte) (datetime.Instant, error) {
	s := &scanner{input: input}

	date, perr := s.date()
	if perr != nil {
		return datetime.Instant{}, perr
	}
	if s.eof() {
		return datetime.MakeInstant(date, datetime.Midnight), nil
	}
	if perr := s.expect('T'); perr != nil {
		return datetime.Instant{}, perr
	}
	tod, perr := s.time()
	if perr != nil {
		return datetime.Instant{}, perr
	}
	if s.eof() {
		return datetime.MakeInstant(date, tod), nil
	}
	offset, perr := s.offset()
	if perr != nil {
		return datetime.Instant{}, perr
	}
	if !s.eof() {
		return datetime.Instant{}, s.syntaxf("unexpected trailing input")
	}
	return datetime.MakeZoned(date, tod, offset), nil
}

type scanner struct {
	input []byte
	pos   int
}

func (s *scanner) eof() bool { return s.pos == len(s.input) }

func (s *scanner) syntaxf(format string, args ...interface{}) *ParseError {
	return &ParseError{Off: s.pos, Kind: Syntax, Msg: fmt.Sprintf(format, args...)}
}

// expect consumes the single byte b.
func (s *scanner) expect(b byte) *ParseError {
	if s.pos >= len(s.input) || s.input[s.pos] != b {
		return s.syntaxf("want %q", b)
	}
	s.pos++
	return nil
}

// field consumes exactly width digits naming the given field.
func (s *scanner) field(width int, name string) (int, *ParseError) {
	v := 0
	for i := 0; i < width; i++ {
		if s.pos >= len(s.input) || s.input[s.pos] < '0' || s.input[s.pos] > '9' {
			return 0, s.syntaxf("want %d-digit %s", width, name)
		}
		v = v*10 + int(s.input[s.pos]-'0')
		s.pos++
	}
	return v, nil
}

// date = ["-"] year "-" month "-" day
func (s *scanner) date() (datetime.CivilDate, *ParseError) {
	sign := 1
	if !s.eof() && s.input[s.pos] == '-' {
		sign = -1
		s.pos++
	}
	year, perr := s.field(4, "year")
	if perr != nil {
		return datetime.CivilDate{}, perr
	}
	if perr := s.expect('-'); perr != nil {
		return datetime.CivilDate{}, perr
	}
	monthOff := s.pos
	month, perr := s.field(2, "month")
	if perr != nil {
		return datetime.CivilDate{}, perr
	}
	if perr := s.expect('-'); perr != nil {
		return datetime.CivilDate{}, perr
	}
	dayOff := s.pos
	day, perr := s.field(2, "day")
	if perr != nil {
		return datetime.CivilDate{}, perr
	}
	date, err := datetime.MakeDate(sign*year, month, day)
	if err != nil {
		// Attribute the failure to the field that caused it.
		off := dayOff
		if month < 1 || month > 12 {
			off = monthOff
		}
		return datetime.CivilDate{}, &ParseError{Off: off, Kind: InvalidDate, Err: err}
	}
	return date, nil
}

// time = hour ":" minute ":" second ["." fraction]
func (s *scanner) time() (datetime.TimeOfDay, *ParseError) {
	hourOff := s.pos
	hour, perr := s.field(2, "hour")
	if perr != nil {
		return datetime.TimeOfDay{}, perr
	}
	if perr := s.expect(':'); perr != nil {
		return datetime.TimeOfDay{}, perr
	}
	minOff := s.pos
	min, perr := s.field(2, "minute")
	if perr != nil {
		return datetime.TimeOfDay{}, perr
	}
	if perr := s.expect(':'); perr != nil {
		return datetime.TimeOfDay{}, perr
	}
	secOff := s.pos
	sec, perr := s.field(2, "second")
	if perr != nil {
		return datetime.TimeOfDay{}, perr
	}
	nsec := 0
	if !s.eof() && s.input[s.pos] == '.' {
		s.pos++
		start := s.pos
		scale := int(1_000_000_000)
		for !s.eof() && s.input[s.pos] >= '0' && s.input[s.pos] <= '9' {
			if s.pos-start == 9 {
				return datetime.TimeOfDay{}, s.syntaxf("fraction exceeds nanosecond precision")
			}
			scale /= 10
			nsec = nsec*10 + int(s.input[s.pos]-'0')
			s.pos++
		}
		if s.pos == start {
			return datetime.TimeOfDay{}, s.syntaxf("want fraction digit")
		}
		nsec *= scale
	}
	tod, err := datetime.MakeTime(hour, min, sec, nsec)
	if err != nil {
		off := secOff
		switch {
		case hour > 23:
			off = hourOff
		case min > 59:
			off = minOff
		}
		return datetime.TimeOfDay{}, &ParseError{Off: off, Kind: InvalidTime, Err: err}
	}
	return tod, nil
}

// offset = "Z" | ("+"|"-") hour ":" minute
func (s *scanner) offset() (int, *ParseError) {
	switch s.input[s.pos] {
	case 'Z':
		s.pos++
		return 0, nil
	case '+', '-':
	default:
		return 0, s.syntaxf(`want "Z", "+" or "-"`)
	}
	sign := 1
	if s.input[s.pos] == '-' {
		sign = -1
	}
	s.pos++
	hourOff := s.pos
	hour, perr := s.field(2, "offset hour")
	if perr != nil {
		return 0, perr
	}
	if perr := s.expect(':'); perr != nil {
		return 0, perr
	}
	minOff := s.pos
	min, perr := s.field(2, "offset minute")
	if perr != nil {
		return 0, perr
	}
	if hour > 23 {
		return 0, &ParseError{Off: hourOff, Kind: InvalidOffset, Msg: fmt.Sprintf("offset hour %d out of range [0, 23]", hour)}
	}
	if min > 59 {
		return 0, &ParseError{Off: minOff, Kind: InvalidOffset, Msg: fmt.Sprintf("offset minute %d out of range [0, 59]", min)}
	}
	return sign * (hour*60 + min), nil
}
