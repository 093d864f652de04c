/*
Package reparse/main provides a command line tool for parsing regular
expressions. It accepts a single expression as its argument and prints
the derivation tree of the expression, with one node per line and nested
nodes indented by dashes:

   reparse "(a)"

   RE
   -(
   -RE
   --a
   -)

Input which is not part of the language is answered with a syntax error
message.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'retree.lang'
func tracer() tracing.Trace {
	return tracing.Select("retree.lang")
}
