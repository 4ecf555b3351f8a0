package terminfo

import (
	"os"
	"strings"
)

// sysdbPaths lists the compile-time default terminfo database locations, in
// search order, after $TERMINFO, $HOME/.terminfo and $TERMINFO_DIRS have all
// been tried and failed. Reference: term(5).
var sysdbPaths = []string{
	"/etc/terminfo",
	"/lib/terminfo",
	"/usr/share/etc/terminfo",
	"/usr/share/misc/terminfo",
	"/usr/share/terminfo",
}

// Database holds the capability strings discovered for one terminal. It is
// populated at most once by Load; later calls return the cached outcome.
type Database struct {
	attempted bool
	loaded    bool

	inputs  [inputCount][]byte
	outputs [outputCount][]byte
}

// Load resolves $TERM, searches the standard terminfo locations, and parses
// the entry it finds. It is idempotent: once an attempt has been made
// (successful or not) subsequent calls just replay the cached result.
func (db *Database) Load() bool {
	if db.attempted {
		return db.loaded
	}
	db.attempted = true

	term := os.Getenv("TERM")
	if term == "" {
		return false
	}

	if strings.Contains(term, "xterm") {
		// Fastpath: avoid a disk read for the common case. A later
		// successful parse overrides any slot this leaves unset; a
		// failed parse leaves these entries intact.
		applyFastpath(term, &db.inputs, &db.outputs)
	}

	data, ok := findEntry(term)
	if !ok {
		return false
	}

	db.loaded = parse(data, &db.inputs, &db.outputs)
	return db.loaded
}

// LookupInput returns the escape sequence bytes for id, or nil if absent.
// Valid only after a successful Load.
func (db *Database) LookupInput(id Input) []byte {
	return db.inputs[id]
}

// LookupOutput returns the escape sequence bytes for id, or nil if absent.
// Valid only after a successful Load.
func (db *Database) LookupOutput(id Output) []byte {
	return db.outputs[id]
}

// findEntry searches the discovery locations of term(5) in order and returns
// the raw bytes of the first terminfo entry found.
func findEntry(term string) ([]byte, bool) {
	if dir := os.Getenv("TERMINFO"); dir != "" {
		if data, ok := tryOpen(dir, term); ok {
			return data, true
		}
	}

	if home := os.Getenv("HOME"); home != "" {
		if data, ok := tryOpen(home+"/.terminfo", term); ok {
			return data, true
		}
	}

	if dirs := os.Getenv("TERMINFO_DIRS"); dirs != "" {
		for _, dir := range strings.Split(dirs, ":") {
			if data, ok := tryOpen(dir, term); ok {
				return data, true
			}
		}
	}

	for _, dir := range sysdbPaths {
		if data, ok := tryOpen(dir, term); ok {
			return data, true
		}
	}

	return nil, false
}

// tryOpen reads the terminfo entry for term from the "FIRST_LETTER/name"
// layout beneath dir.
func tryOpen(dir, term string) ([]byte, bool) {
	if dir == "" || term == "" {
		return nil, false
	}
	path := dir + "/" + term[0:1] + "/" + term
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}
