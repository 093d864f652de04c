package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/retree/relang"
	"github.com/npillmayer/retree/tree"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() parses a regular expression, given as the single command-line
// argument, and prints its derivation tree to stdout. The synthetic root
// node of the tree is not part of the derivation and will not be printed.
//
// Input which is not part of the language is answered with "Syntax error";
// this is a regular outcome and not reflected in the exit status.
func main() {
	// set up logging
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	if flag.NArg() != 1 {
		fmt.Printf("Wrong number of command-line arguments: ")
		fmt.Printf("%d arguments found, %d expected\n", flag.NArg(), 1)
		os.Exit(1)
	}
	//
	input := flag.Arg(0)
	tracer().Infof("Input argument is \"%s\"", input)
	accepted, root, err := relang.Parse(input)
	if err != nil {
		tracer().Errorf("parse aborted: %v", err)
		os.Exit(3)
	}
	if !accepted {
		fmt.Println("Syntax error")
		return
	}
	if err := tree.Fprint(os.Stdout, root.Child(0)); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
}
