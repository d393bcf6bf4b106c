package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/munchlex/munch/calc"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The munch authors

*/

// main() starts an interactive CLI where users may enter arithmetic terms.
// Terms are evaluated with the calc example grammar and the result is
// printed out. Remember that the grammar is flat: "5 * 6 + 2" evaluates
// as 5 * (6 + 2).
//
// An initial term may be given as command line arguments.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to the munch calculator")
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().Debugf("calc lexer fingerprint is %s", calc.Lexer().Fingerprint())
	//
	// evaluate the command line argument, if any
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		evalAndPrint(input)
	}
	//
	// set up REPL
	repl, err := readline.New("calc> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		evalAndPrint(line)
	}
	println("Good bye!")
}

func evalAndPrint(input string) {
	val, err := calc.Eval(input)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println(fmt.Sprintf("= %g", val))
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
