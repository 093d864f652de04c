/*
Package retree is a recognizer and derivation-tree builder for a small
regular-expression grammar.

retree validates that a regular-expression text (symbols, concatenation,
alternation '+', Kleene star '*', parentheses, and '#' as an explicit
empty-string marker) is syntactically well formed, and records the grammar
derivation as a tree. It is not a matching engine: no automaton is compiled
and no subject strings are matched against a pattern. Package structure is
as follows:

■ grammar: Package grammar holds the grammar representation (symbols, rules,
a builder) together with grammar analysis (FIRST sets, left-recursion
detection).

■ tree: Package tree is the store for derivation-tree nodes, including the
rollback discipline used by backtracking, and tree traversal.

■ rd: Package rd implements the backtracking recursive-descent engine that
drives terminal recognition and alternative selection.

■ relang: Package relang binds engine, grammar and scanner together into the
concrete regular-expression language, and contains the command-line tools.

The base package contains data types which are used throughout all the other
packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package retree
