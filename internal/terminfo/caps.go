// Package terminfo locates and parses the compiled terminfo(5) entry for the
// active terminal, extracting only the handful of capability strings nanorl
// needs for cursor movement and keypad mode switching.
package terminfo

// Input identifies one of the input key sequences nanorl recognizes.
type Input int

// Input capability identifiers, in the fixed order spec.md assigns them.
const (
	KeyLeft Input = iota
	KeyRight
	KeyBackspace
	KeyHome
	KeyEnd
	KeyDelete

	inputCount
)

// InputCount is the number of registered input capability identifiers.
const InputCount = int(inputCount)

// Output identifies one of the output control sequences nanorl emits.
type Output int

// Output capability identifiers, in the fixed order spec.md assigns them.
const (
	CursorLeft Output = iota
	CursorRight
	KeypadLocal
	KeypadXmit

	outputCount
)

// inputIndices maps each Input to its column in a terminfo entry's strings
// table. Reference: ncurses include/Caps.
var inputIndices = [inputCount]uint16{
	KeyLeft:      79,
	KeyRight:     83,
	KeyBackspace: 55,
	KeyHome:      76,
	KeyEnd:       164,
	KeyDelete:    59,
}

// outputIndices maps each Output to its column in a terminfo entry's strings
// table. Reference: ncurses include/Caps.
var outputIndices = [outputCount]uint16{
	CursorLeft:  14,
	CursorRight: 17,
	KeypadLocal: 88,
	KeypadXmit:  89,
}
