// Copyright 2023 The Datetime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package casefile provides utilities for testing that parse errors are
// reported at the appropriate byte offsets.
//
// A case file holds one input per line. A line containing "###" is an
// expectation of failure: the text following it is a Go string literal
// denoting a regular expression that should match the error message.
// Lines without "###" must parse without error. Blank lines are
// skipped.
//
// Example:
//
//	2023-02-28
//	2023-02-30 ### "offset 8: .*invalid date"
//
// A client test feeds each case's input into the parser under test,
// then calls c.GotError for the error that actually occurred (if any)
// and c.Done once finished. Any discrepancy between the actual and
// expected errors is reported through the client's reporter, which is
// typically a testing.T.
package casefile // import "go.datetime.net/internal/casefile"

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// A Case is one input line together with its expectation.
type Case struct {
	Input    string
	Line     int
	filename string
	report   Reporter
	wantErr  *regexp.Regexp // nil means the input must succeed
	matched  bool
}

// Reporter is implemented by *testing.T.
type Reporter interface {
	Errorf(format string, args ...interface{})
}

// Read parses a case file and returns its cases.
// It reports malformed expectations using the reporter.
func Read(filename string, report Reporter) (cases []*Case) {
	data, err := os.ReadFile(filename)
	if err != nil {
		report.Errorf("%s", err)
		return
	}
	for i, line := range strings.Split(string(data), "\n") {
		linenum := i + 1
		input := line
		var wantErr *regexp.Regexp
		if hashes := strings.Index(line, "###"); hashes >= 0 {
			input = strings.TrimRight(line[:hashes], " \t")
			rest := strings.TrimSpace(line[hashes+len("###"):])
			pattern, err := strconv.Unquote(rest)
			if err != nil {
				report.Errorf("\n%s:%d: not a quoted regexp: %s", filename, linenum, rest)
				continue
			}
			rx, err := regexp.Compile(pattern)
			if err != nil {
				report.Errorf("\n%s:%d: %v", filename, linenum, err)
				continue
			}
			wantErr = rx
		}
		if input == "" && wantErr == nil {
			continue // blank line
		}
		cases = append(cases, &Case{
			Input:    input,
			Line:     linenum,
			filename: filename,
			report:   report,
			wantErr:  wantErr,
		})
	}
	return cases
}

// Name returns a short identifier for use as a subtest name.
func (c *Case) Name() string {
	return fmt.Sprintf("line%d", c.Line)
}

// GotError should be called by the client to report the error the input
// actually produced. Unexpected errors are reported to the reporter.
func (c *Case) GotError(msg string) {
	if c.wantErr == nil {
		c.report.Errorf("\n%s:%d: %q: unexpected error: %s", c.filename, c.Line, c.Input, msg)
		return
	}
	c.matched = true
	if !c.wantErr.MatchString(msg) {
		c.report.Errorf("\n%s:%d: %q: error %q does not match pattern %q", c.filename, c.Line, c.Input, msg, c.wantErr)
	}
}

// Done should be called by the client once the input has been
// processed. It reports an expected error that did not occur.
func (c *Case) Done() {
	if c.wantErr != nil && !c.matched {
		c.report.Errorf("\n%s:%d: %q: expected error matching %q", c.filename, c.Line, c.Input, c.wantErr)
	}
}
