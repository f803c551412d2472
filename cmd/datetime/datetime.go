// Copyright 2023 The Datetime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The datetime command evaluates date/time expressions (see package
// repl for the expression language).
//
// With an argument, it evaluates each line of the named file. With no
// arguments, it starts a read-eval-print loop (REPL) when standard
// input is a terminal, and otherwise evaluates each line of standard
// input.
package main // import "go.datetime.net/cmd/datetime"

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"golang.org/x/term"

	"go.datetime.net/repl"
)

// flags
var (
	cpuprofile = flag.String("cpuprofile", "", "gather Go CPU profile in this file")
	memprofile = flag.String("memprofile", "", "gather Go memory profile in this file")
	execexpr   = flag.String("c", "", "evaluate expression `expr`")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("datetime: ")
	log.SetFlags(0)
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		check(err)
		err = pprof.StartCPUProfile(f)
		check(err)
		defer func() {
			pprof.StopCPUProfile()
			err := f.Close()
			check(err)
		}()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		check(err)
		defer func() {
			runtime.GC()
			err := pprof.Lookup("heap").WriteTo(f, 0)
			check(err)
			err = f.Close()
			check(err)
		}()
	}

	switch {
	case *execexpr != "":
		out, err := repl.EvalLine(*execexpr)
		if err != nil {
			repl.PrintError(err)
			return 1
		}
		fmt.Println(out)
	case flag.NArg() == 1:
		f, err := os.Open(flag.Arg(0))
		check(err)
		defer f.Close()
		return evalLines(f.Name(), f)
	case flag.NArg() == 0:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Println("Welcome to datetime (go.datetime.net)")
			repl.REPL()
			return 0
		}
		return evalLines("<stdin>", os.Stdin)
	default:
		log.Print("want at most one file name")
		return 64 // EX_USAGE
	}
	return 0
}

// evalLines evaluates each nonblank line of r, printing one result per
// line. Lines beginning with "#" are skipped. It keeps going past
// failed lines and reports failure if any line failed.
func evalLines(name string, r *os.File) int {
	code := 0
	in := bufio.NewScanner(r)
	for linenum := 1; in.Scan(); linenum++ {
		line := strings.TrimSpace(in.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out, err := repl.EvalLine(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s:%d: %v\n", name, linenum, err)
			code = 1
			continue
		}
		fmt.Println(out)
	}
	check(in.Err())
	return code
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
