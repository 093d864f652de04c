package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/retree/grammar"
	"github.com/npillmayer/retree/relang"
	"github.com/npillmayer/retree/tree"
	"github.com/pterm/pterm"
	"golang.org/x/tools/container/intsets"

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

// main() starts an interactive CLI ("RE.T.REPL"), where users may enter
// regular expressions over single-character symbols. RE.T.REPL will parse
// each expression and render the derivation tree the parser built, making
// it easy to experiment with the grammar's greedy alternative selection.
//
// Please refer to packages "relang" and "rd".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to RE.T.REPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up the language
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	relang.Grammar().Dump()                     // only visible in debug mode
	input := strings.Join(flag.Args(), " ")
	input = strings.TrimSpace(input)
	tracer().Infof("Input argument is \"%s\"", input)
	//
	// set up REPL
	repl, err := readline.New("retree> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		lastInput: input,
		store:     tree.NewStore(),
		repl:      repl,
	}
	if input != "" {
		intp.Eval(input)
	}
	//
	// load an init file and start receiving commands / expressions
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
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

// Intp is our interpreter object
type Intp struct {
	lastInput string
	lastTree  *tree.Node
	store     *tree.Store
	repl      *readline.Instance
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		_, err := intp.dispatch(line)
		if err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.dispatch(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// dispatch hands a line over to command execution or expression parsing.
// Commands start with a colon.
func (intp *Intp) dispatch(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.Execute(line)
	}
	return intp.Eval(line)
}

// Execute runs a REPL command, given on a line starting with a colon.
func (intp *Intp) Execute(line string) (bool, error) {
	args := strings.Split(line, " ")
	cmd := args[0]
	arg := strings.TrimSpace(strings.TrimPrefix(line, cmd))
	switch cmd {
	case ":quit":
		return true, nil
	case ":help":
		pterm.Println(":grammar       list the grammar rules and FIRST sets")
		pterm.Println(":tokens  ⟨re⟩  tokenize an expression")
		pterm.Println(":tree          re-display the last derivation tree")
		pterm.Println(":trace   ⟨lvl⟩ set the trace level")
		pterm.Println(":quit          leave RE.T.REPL")
	case ":grammar":
		g := relang.Grammar()
		for i := 0; i < g.Size(); i++ {
			pterm.Println(g.Rule(i).String())
		}
		pterm.Printf("fingerprint %s\n", g.Fingerprint())
		ga := grammar.Analysis(g)
		g.EachNonTerminal(func(A *grammar.Symbol) interface{} {
			pterm.Printf("FIRST(%s) = %s\n", A.Name, firstSyms(g, ga.First(A)))
			return nil
		})
	case ":tokens":
		toks, err := relang.Tokens(arg)
		if err != nil {
			pterm.Error.Println(err.Error())
		}
		for _, tok := range toks {
			pterm.Printf(" %4d | %s\n", tok.TokType(), tok.Lexeme())
		}
	case ":tree":
		if intp.lastTree == nil {
			pterm.Error.Println("no tree parsed yet")
			break
		}
		intp.printTree(intp.lastTree)
	case ":trace":
		tracer().SetTraceLevel(traceLevel(arg))
	default:
		pterm.Error.Println("unknown command: " + cmd)
	}
	return false, nil
}

// Eval parses a regular expression, given on a line by itself, and renders
// the derivation tree.
//
func (intp *Intp) Eval(line string) (bool, error) {
	tracer().Infof("----------------------- Parse ------------------------------------")
	accepted, root, err := relang.ParseWith(intp.store, line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	if !accepted {
		_, msg := relang.Diagnose(line)
		pterm.Error.Println(msg)
		return false, nil
	}
	if intp.lastTree != nil { // drop the previous derivation tree
		intp.store.ReleaseSubtree(intp.lastTree)
	}
	intp.lastTree = root
	intp.lastInput = line
	intp.printTree(root)
	return false, nil
}

// printTree renders a derivation tree to the terminal. The synthetic root
// node is not part of the derivation and will not be rendered.
func (intp *Intp) printTree(root *tree.Node) {
	ll := treeAsLeveledList(root.Child(0))
	tn := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(tn).Render()
	pterm.Printf("%d nodes in the tree store, %d released\n",
		intp.store.Live(), intp.store.Released())
}

// --- Tree rendering --------------------------------------------------------

// levelLister collects tree nodes into a pterm.LeveledList during a tree walk.
type levelLister struct {
	ll pterm.LeveledList
}

func (l *levelLister) EnterNode(n *tree.Node, _ []*tree.VisitNode, ctxt tree.NodeCtxt) bool {
	l.ll = append(l.ll, pterm.LeveledListItem{Level: ctxt.Level, Text: n.Label()})
	return true
}

func (l *levelLister) ExitNode(*tree.Node, []*tree.VisitNode, tree.NodeCtxt) interface{} {
	return nil
}

func (l *levelLister) Leaf(n *tree.Node, ctxt tree.NodeCtxt) interface{} {
	l.ll = append(l.ll, pterm.LeveledListItem{Level: ctxt.Level, Text: n.Label()})
	return nil
}

func treeAsLeveledList(root *tree.Node) pterm.LeveledList {
	lister := &levelLister{}
	tree.NewCursor(root).TopDown(lister, tree.LtoR, tree.Continue)
	return lister.ll
}

// firstSyms renders a FIRST set with terminal names instead of raw token
// values.
func firstSyms(g *grammar.Grammar, first *intsets.Sparse) string {
	var set intsets.Sparse
	set.Copy(first)
	names := make([]string, 0, set.Len())
	var tokval int
	for set.TakeMin(&tokval) {
		if t := g.Terminal(tokval); t != nil {
			names = append(names, t.Name)
		} else {
			names = append(names, "ε")
		}
	}
	return "{ " + strings.Join(names, " ") + " }"
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
