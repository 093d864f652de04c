/*
Package relang provides a parser for a small language of regular expressions.

The language consists of single-character symbols, the empty-word marker '#',
grouping with parentheses, and the operators '+' (alternation) and '*'
(repetition). Parsing an expression yields a derivation tree which explains
every character of the input in terms of the grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package relang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'retree.lang'
func tracer() tracing.Trace {
	return tracing.Select("retree.lang")
}
