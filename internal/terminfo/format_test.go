package terminfo

import "testing"

// buildEntry assembles a minimal, well-formed terminfo entry with a single
// string capability (at strings-table column targetCol) set to value.
func buildEntry(namesSize, boolsSize int, numbersCount int, targetCol uint16, value string) []byte {
	stringsCount := int(targetCol) + 1
	table := []byte(value + "\x00")

	buf := []byte{}
	put16 := func(v uint16) {
		buf = append(buf, byte(v), byte(v>>8))
	}

	put16(magicInt16)
	put16(uint16(namesSize))
	put16(uint16(boolsSize))
	put16(uint16(numbersCount))
	put16(uint16(stringsCount))
	put16(uint16(len(table)))

	buf = append(buf, make([]byte, namesSize)...)
	buf = append(buf, make([]byte, boolsSize)...)
	if (namesSize+boolsSize)%2 != 0 {
		buf = append(buf, 0)
	}
	buf = append(buf, make([]byte, numbersCount*2)...)

	offsets := make([]byte, stringsCount*2)
	for i := 0; i < stringsCount; i++ {
		offsets[2*i], offsets[2*i+1] = 0xff, 0xff // -1: absent
	}
	offsets[2*int(targetCol)], offsets[2*int(targetCol)+1] = 0, 0 // offset 0 into table
	buf = append(buf, offsets...)
	buf = append(buf, table...)

	return buf
}

func TestHeaderMagicLittleEndian16Bit(t *testing.T) {
	// L1: the exact 12 header bytes from spec.md §8.
	raw := []byte{0x1A, 0x01, 0x02, 0x00, 0x02, 0x00, 0x04, 0x00, 0x01, 0x00, 0x03, 0x00}
	var inputs [inputCount][]byte
	var outputs [outputCount][]byte
	// Not enough data to complete a full parse, but the header decode
	// itself must recognize the magic before failing on the short body.
	if ok := parse(raw, &inputs, &outputs); ok {
		t.Fatalf("expected parse to fail on truncated body")
	}

	h := header{}
	h.Magic = uint16(raw[0]) | uint16(raw[1])<<8
	if h.Magic != magicInt16 {
		t.Fatalf("magic = 0o%o, want 0o432", h.Magic)
	}
}

func TestHeaderUnknownMagicFails(t *testing.T) {
	// L2
	raw := []byte{0xFF, 0xFF, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	var inputs [inputCount][]byte
	var outputs [outputCount][]byte
	if parse(raw, &inputs, &outputs) {
		t.Fatalf("expected parse to fail on unrecognized magic")
	}
}

func TestOddNamesBoolsSizeAddsPaddingByte(t *testing.T) {
	// L3: names_size + bools_size odd must consume one extra byte before
	// the numbers section (verified indirectly by a successful full parse).
	entry := buildEntry(3, 2, 0, uint16(inputIndices[KeyLeft]), "\x1bOD")
	var inputs [inputCount][]byte
	var outputs [outputCount][]byte
	if !parse(entry, &inputs, &outputs) {
		t.Fatalf("expected parse to succeed")
	}
	if string(inputs[KeyLeft]) != "\x1bOD" {
		t.Fatalf("KeyLeft = %q, want %q", inputs[KeyLeft], "\x1bOD")
	}
}

func TestEmptyStringTreatedAsAbsent(t *testing.T) {
	entry := buildEntry(4, 2, 0, uint16(inputIndices[KeyLeft]), "")
	var inputs [inputCount][]byte
	var outputs [outputCount][]byte
	if !parse(entry, &inputs, &outputs) {
		t.Fatalf("expected parse to succeed")
	}
	if inputs[KeyLeft] != nil {
		t.Fatalf("KeyLeft = %q, want absent", inputs[KeyLeft])
	}
}

func TestFastpathXtermTable(t *testing.T) {
	var inputs [inputCount][]byte
	var outputs [outputCount][]byte
	applyFastpath("xterm-256color", &inputs, &outputs)
	if string(inputs[KeyBackspace]) != "\x7f" {
		t.Fatalf("KeyBackspace = %q, want DEL", inputs[KeyBackspace])
	}
	if string(outputs[KeypadXmit]) != "\x1b[?1h\x1b=" {
		t.Fatalf("KeypadXmit = %q", outputs[KeypadXmit])
	}
}
