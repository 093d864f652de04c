/*
Package retrepl/main provides an interactive command line tool (RE.T.REPL)
for regular expressions. Users enter an expression and receive its
derivation tree, rendered to the terminal, or a syntax diagnosis for
input not in the language. RE.T.REPL serves as a sandbox for exploring
how the backtracking parser derives its input, including the node
bookkeeping of the tree store.

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
