package terminfo

import (
	"bytes"
	"encoding/binary"
)

// Legacy vs. extended-number terminfo format, per term(5).
const (
	magicInt16 = 0o432  // 16-bit numbers section
	magicInt32 = 0o1036 // 32-bit numbers section
)

// header is the fixed 12-byte terminfo entry header. Field order and sizes
// are byte-exact per term(5); decoding follows the same per-field
// binary.Read-over-a-bytes.Reader shape as the SSH pty-req payload decode in
// the teacher's ptyreq.go, just little-endian and 16-bit throughout.
type header struct {
	Magic        uint16
	NamesSize    uint16
	BoolsSize    uint16
	NumbersCount uint16
	StringsCount uint16
	TableSize    uint16
}

// parse decodes a compiled terminfo entry and fills in the input/output
// capability slots this loader cares about. Any short read fails the parse.
func parse(data []byte, inputs *[inputCount][]byte, outputs *[outputCount][]byte) bool {
	r := bytes.NewReader(data)

	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return false
	}

	var numberSize int64
	switch h.Magic {
	case magicInt16:
		numberSize = 2
	case magicInt32:
		numberSize = 4
	default:
		return false
	}

	skip := int64(h.NamesSize) + int64(h.BoolsSize)
	if skip%2 != 0 {
		skip++ // alignment padding before the numbers section
	}
	skip += numberSize * int64(h.NumbersCount)
	if _, err := r.Seek(skip, 1); err != nil {
		return false
	}

	offsets := make([]int16, h.StringsCount)
	if err := binary.Read(r, binary.LittleEndian, &offsets); err != nil {
		return false
	}

	table := make([]byte, h.TableSize)
	if err := binary.Read(r, binary.LittleEndian, &table); err != nil {
		return false
	}

	for i, col := range inputIndices {
		inputs[i] = lookupString(offsets, table, col)
	}
	for i, col := range outputIndices {
		outputs[i] = lookupString(offsets, table, col)
	}

	return true
}

// lookupString resolves the null-terminated string at the given strings-table
// column, returning nil if the column is out of range, its offset is
// negative, or the string is empty.
func lookupString(offsets []int16, table []byte, col uint16) []byte {
	if int(col) >= len(offsets) {
		return nil
	}
	off := offsets[col]
	if off < 0 || int(off) >= len(table) {
		return nil
	}
	end := int(off)
	for end < len(table) && table[end] != 0 {
		end++
	}
	if end == int(off) {
		return nil
	}
	s := make([]byte, end-int(off))
	copy(s, table[off:end])
	return s
}
