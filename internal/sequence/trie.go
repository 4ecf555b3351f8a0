// Package sequence implements a prefix-matching automaton over the
// terminfo input capability strings, disambiguating multi-byte escape
// sequences as they are typed.
package sequence

import (
	"fmt"
	"strings"

	"nanorl/internal/terminfo"
)

// ByteSource pulls the next input byte on demand, standing in for the C
// original's next_char() function pointer (spec.md §9's capability-
// abstraction redesign note).
type ByteSource func() byte

// node is one edge of the trie. A node with no children is a leaf and
// carries an accept value; an internal node carries its children instead.
// Siblings need not be sorted — linear search over at most six children
// (the number of registered input capabilities) is cheap.
type node struct {
	edge     byte
	children []*node
	accept   terminfo.Input
	isLeaf   bool
}

// Automaton is a rooted trie built from the loaded input capability
// strings. The zero value is an empty automaton: Parse always reports no
// match without pulling any bytes.
type Automaton struct {
	root node
}

// Build inserts every non-empty input capability string from db into the
// trie. If the database registers one string as a proper prefix of another,
// the shorter one wins and the longer is unreachable — this is a property
// of the source data, not an error, and is left undocumented at runtime by
// design (spec.md §3).
func Build(db *terminfo.Database) *Automaton {
	a := &Automaton{}
	for id := terminfo.Input(0); int(id) < terminfo.InputCount; id++ {
		seq := db.LookupInput(id)
		if len(seq) > 0 {
			a.insert(seq, id)
		}
	}
	return a
}

func (a *Automaton) insert(seq []byte, accept terminfo.Input) {
	cur := &a.root
	for _, b := range seq {
		var next *node
		for _, child := range cur.children {
			if child.edge == b {
				next = child
				break
			}
		}
		if next == nil {
			next = &node{edge: b}
			cur.children = append(cur.children, next)
		}
		cur = next
	}
	cur.isLeaf = true
	cur.accept = accept
}

// Parse pulls bytes from next one at a time, walking the trie. It returns
// the matched input capability and true on a successful accept, or false if
// the bytes pulled so far are not a registered sequence (and are not a
// prefix of one). The caller is responsible for cursor discipline: the
// source passed in must advance a speculative cursor, not a committed one,
// so the caller can roll the read position back to just after the single
// byte that was actually consumed on a no-match (spec.md §4.2).
func (a *Automaton) Parse(next ByteSource) (terminfo.Input, bool) {
	if len(a.root.children) == 0 {
		return 0, false
	}

	cur := &a.root
	for {
		b := next()
		var matched *node
		for _, child := range cur.children {
			if child.edge == b {
				matched = child
				break
			}
		}
		if matched == nil {
			return 0, false
		}
		if matched.isLeaf {
			return matched.accept, true
		}
		cur = matched
	}
}

// String renders the trie for debugging, the Go analogue of
// original_source/src/dfa.c's DFA_DEBUG-gated nrl_dfa_print.
func (a *Automaton) String() string {
	var b strings.Builder
	printNode(&b, &a.root, 0)
	return b.String()
}

func printNode(b *strings.Builder, n *node, indent int) {
	fmt.Fprint(b, strings.Repeat("    ", indent))
	switch {
	case indent == 0:
		fmt.Fprintln(b, "Root")
	case n.edge < 0x20:
		fmt.Fprintf(b, "^%c\n", n.edge+0x40)
	default:
		fmt.Fprintf(b, "%c\n", n.edge)
	}
	for _, child := range n.children {
		printNode(b, child, indent+1)
	}
}
