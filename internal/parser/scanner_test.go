package parser

import "testing"

func TestScanner_PeekAndNext(t *testing.T) {
	s := newScanner([]byte("ab"))

	c, ok := s.peek()
	if !ok || c != 'a' {
		t.Fatalf("peek() = %q, %v, want 'a', true", c, ok)
	}
	// peek must not consume
	c, ok = s.peek()
	if !ok || c != 'a' {
		t.Fatalf("second peek() = %q, %v, want 'a', true", c, ok)
	}

	c, ok = s.next()
	if !ok || c != 'a' {
		t.Fatalf("next() = %q, %v, want 'a', true", c, ok)
	}
	c, ok = s.next()
	if !ok || c != 'b' {
		t.Fatalf("next() = %q, %v, want 'b', true", c, ok)
	}

	if _, ok = s.next(); ok {
		t.Errorf("next() past end ok = true, want false")
	}
	if _, ok = s.peek(); ok {
		t.Errorf("peek() past end ok = true, want false")
	}
}

func TestScanner_SkipSpace(t *testing.T) {
	s := newScanner([]byte(" \t\n\r\v\fx"))
	s.skipSpace()

	c, ok := s.peek()
	if !ok || c != 'x' {
		t.Errorf("after skipSpace() peek() = %q, %v, want 'x', true", c, ok)
	}

	// skipSpace at end of input is a no-op
	s.next()
	s.skipSpace()
	if _, ok := s.peek(); ok {
		t.Errorf("peek() after skipping at end ok = true, want false")
	}
}

func TestScanner_Position(t *testing.T) {
	//          0123 456 78
	s := newScanner([]byte("ab\ncd\nef"))

	tests := []struct {
		off  int
		line int
		col  int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline itself
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
		{8, 3, 3}, // end of input
		{99, 3, 3},
	}

	for _, tt := range tests {
		line, col := s.position(tt.off)
		if line != tt.line || col != tt.col {
			t.Errorf("position(%d) = line %d, col %d, want line %d, col %d",
				tt.off, line, col, tt.line, tt.col)
		}
	}
}
