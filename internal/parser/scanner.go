package parser

// scanner is a positioned cursor over the input buffer. All productions
// use peek for lookahead; nothing is ever pushed back.
type scanner struct {
	data []byte
	off  int
}

func newScanner(data []byte) *scanner {
	return &scanner{data: data}
}

// peek returns the byte at the cursor without consuming it. The second
// result is false at end of input.
func (s *scanner) peek() (byte, bool) {
	if s.off >= len(s.data) {
		return 0, false
	}
	return s.data[s.off], true
}

// next consumes and returns the byte at the cursor.
func (s *scanner) next() (byte, bool) {
	if s.off >= len(s.data) {
		return 0, false
	}
	c := s.data[s.off]
	s.off++
	return c, true
}

// skipSpace advances the cursor past any run of whitespace.
func (s *scanner) skipSpace() {
	for s.off < len(s.data) && isSpace(s.data[s.off]) {
		s.off++
	}
}

// isSpace matches the six ASCII whitespace characters, a wider set than
// JSON's four so that inputs using \v or \f still parse.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// position converts a byte offset into a 1-based line and column, both
// counted in bytes.
func (s *scanner) position(off int) (line, col int) {
	if off > len(s.data) {
		off = len(s.data)
	}
	line = 1
	last := -1
	for i := 0; i < off; i++ {
		if s.data[i] == '\n' {
			line++
			last = i
		}
	}
	return line, off - last
}
