package sequence

import (
	"strings"
	"testing"

	"nanorl/internal/terminfo"
)

// buildFromPairs builds an automaton directly from capability/sequence
// pairs, without going through a loaded terminfo.Database.
func buildFromPairs(pairs map[terminfo.Input]string) *Automaton {
	a := &Automaton{}
	for id, seq := range pairs {
		if seq != "" {
			a.insert([]byte(seq), id)
		}
	}
	return a
}

func source(s string) ByteSource {
	i := 0
	return func() byte {
		if i >= len(s) {
			return 0
		}
		b := s[i]
		i++
		return b
	}
}

func TestEmptyAutomatonNeverMatches(t *testing.T) {
	a := &Automaton{}
	if _, ok := a.Parse(source("\x1bOD")); ok {
		t.Fatalf("expected no match on empty automaton")
	}
}

func TestExactSequenceMatches(t *testing.T) {
	a := buildFromPairs(map[terminfo.Input]string{
		terminfo.KeyLeft:  "\x1bOD",
		terminfo.KeyRight: "\x1bOC",
	})
	id, ok := a.Parse(source("\x1bOD"))
	if !ok || id != terminfo.KeyLeft {
		t.Fatalf("got (%v, %v), want (KeyLeft, true)", id, ok)
	}
}

func TestDisjointSequencesDisambiguate(t *testing.T) {
	a := buildFromPairs(map[terminfo.Input]string{
		terminfo.KeyLeft:  "\x1bOD",
		terminfo.KeyRight: "\x1bOC",
	})
	id, ok := a.Parse(source("\x1bOC"))
	if !ok || id != terminfo.KeyRight {
		t.Fatalf("got (%v, %v), want (KeyRight, true)", id, ok)
	}
}

func TestNonPrefixByteStringFailsFast(t *testing.T) {
	a := buildFromPairs(map[terminfo.Input]string{
		terminfo.KeyLeft: "\x1bOD",
	})
	if _, ok := a.Parse(source("a")); ok {
		t.Fatalf("expected no match for an unrelated byte")
	}
}

func TestSharedPrefixDivergesOnLaterByte(t *testing.T) {
	// \x1bOD (KeyLeft) and \x1bOH (KeyHome) share a two-byte prefix.
	a := buildFromPairs(map[terminfo.Input]string{
		terminfo.KeyLeft: "\x1bOD",
		terminfo.KeyHome: "\x1bOH",
	})
	id, ok := a.Parse(source("\x1bOH"))
	if !ok || id != terminfo.KeyHome {
		t.Fatalf("got (%v, %v), want (KeyHome, true)", id, ok)
	}
}

func TestShorterProperPrefixWinsOnInsert(t *testing.T) {
	// If one registered sequence is a proper prefix of another, the
	// shorter accepts first; the data shape, not an error.
	a := &Automaton{}
	a.insert([]byte("\x1bO"), terminfo.KeyLeft)
	a.insert([]byte("\x1bOD"), terminfo.KeyRight)

	id, ok := a.Parse(source("\x1bO"))
	if !ok || id != terminfo.KeyLeft {
		t.Fatalf("got (%v, %v), want (KeyLeft, true)", id, ok)
	}
}

func TestBuildFromDatabaseSkipsAbsentCapabilities(t *testing.T) {
	var db terminfo.Database
	// An unloaded database has no capability strings registered; Build
	// must produce a trie that never matches anything.
	a := Build(&db)
	if _, ok := a.Parse(source("\x1bOD")); ok {
		t.Fatalf("expected no match when the database has no capabilities loaded")
	}
}

func TestStringRendersRoot(t *testing.T) {
	a := buildFromPairs(map[terminfo.Input]string{
		terminfo.KeyLeft: "\x1bOD",
	})
	if got := a.String(); !strings.HasPrefix(got, "Root\n") {
		t.Fatalf("got %q, want debug rendering starting with the root line", got)
	}
}
