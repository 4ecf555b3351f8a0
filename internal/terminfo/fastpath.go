package terminfo

// applyFastpath installs a built-in xterm capability table, short-circuiting
// the disk read in the common case. A subsequent successful parse overrides
// any slot left unset here; a failed parse leaves these entries intact.
// Grounded on original_source/src/fastload.c's nrl_fl_xterm stub table.
func applyFastpath(term string, inputs *[inputCount][]byte, outputs *[outputCount][]byte) {
	_ = term // matched by substring before this is called; kept for symmetry with the C original's signature

	inputs[KeyLeft] = []byte("\x1bOD")
	inputs[KeyRight] = []byte("\x1bOC")
	inputs[KeyBackspace] = []byte("\x7f")
	inputs[KeyHome] = []byte("\x1bOH")
	inputs[KeyEnd] = []byte("\x1bOF")
	inputs[KeyDelete] = []byte("\x1b[3~")

	outputs[CursorLeft] = []byte("\b")
	outputs[CursorRight] = []byte("\x1b[C")
	outputs[KeypadLocal] = []byte("\x1b[?1l\x1b>")
	outputs[KeypadXmit] = []byte("\x1b[?1h\x1b=")
}
