// Package encoder renders a value tree as pretty-printed JSON. Output
// is deterministic: object members appear in sorted key order and
// nesting is indented by a fixed unit per level.
package encoder

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/mcncl/jsonfmt/internal/errors"
	"github.com/mcncl/jsonfmt/internal/value"
)

// DefaultIndent is the indent unit applied per nesting level.
const DefaultIndent = "  "

// Encoder writes values to an underlying writer. The zero depth starts
// at the left margin; the depth is threaded through the recursive
// write calls, never stored on the writer. Write errors are sticky:
// the first one aborts the rest of the walk and is returned by Encode.
type Encoder struct {
	w       *bufio.Writer
	indent  string
	palette *Palette
	err     error
}

// NewEncoder returns an encoder writing to w with the default indent
// and no coloring.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:      bufio.NewWriter(w),
		indent: DefaultIndent,
	}
}

// SetIndent changes the indent unit written per nesting level.
func (e *Encoder) SetIndent(indent string) {
	e.indent = indent
}

// SetPalette enables colored output. A nil palette disables it.
func (e *Encoder) SetPalette(p *Palette) {
	e.palette = p
}

// Encode writes v as formatted JSON. No trailing newline is appended
// after the top-level value.
func (e *Encoder) Encode(v value.Value) error {
	if v == nil {
		return errors.NewEncodeError("cannot encode a nil value", nil)
	}
	e.writeValue(v, 0)
	if e.err != nil {
		return errors.NewEncodeError("failed to write output", e.err)
	}
	if err := e.w.Flush(); err != nil {
		return errors.NewEncodeError("failed to write output", err)
	}
	return nil
}

func (e *Encoder) writeValue(v value.Value, depth int) {
	switch tv := v.(type) {
	case value.Object:
		e.writeObject(tv, depth)
	case value.Array:
		e.writeArray(tv, depth)
	case value.String:
		e.write(e.palette.str(quote(string(tv))))
	case value.Number:
		e.write(e.palette.num(strconv.FormatFloat(float64(tv), 'g', -1, 64)))
	case value.Bool:
		e.write(e.palette.boolean(strconv.FormatBool(bool(tv))))
	case value.Null:
		e.write(e.palette.null("null"))
	}
}

// writeObject emits the open bracket, one member per line at the next
// depth in sorted key order, and the close bracket back at the current
// depth. An empty object still spans three lines.
func (e *Encoder) writeObject(obj value.Object, depth int) {
	e.write(e.palette.punct("{"))
	e.write("\n")
	for i, k := range obj.Keys() {
		if i > 0 {
			e.write(",\n")
		}
		e.writeIndent(depth + 1)
		e.write(e.palette.key(quote(k)))
		e.write(": ")
		e.writeValue(obj[k], depth+1)
	}
	e.write("\n")
	e.writeIndent(depth)
	e.write(e.palette.punct("}"))
}

func (e *Encoder) writeArray(arr value.Array, depth int) {
	e.write(e.palette.punct("["))
	e.write("\n")
	for i, el := range arr {
		if i > 0 {
			e.write(",\n")
		}
		e.writeIndent(depth + 1)
		e.writeValue(el, depth+1)
	}
	e.write("\n")
	e.writeIndent(depth)
	e.write(e.palette.punct("]"))
}

func (e *Encoder) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		e.write(e.indent)
	}
}

func (e *Encoder) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.WriteString(s)
}

// quote wraps s in double quotes, escaping the eight characters of the
// escape table. Everything else, including multi-byte sequences and
// control characters outside the table, passes through unchanged.
func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '/':
			sb.WriteString(`\/`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// Format renders v to a string using the given indent unit.
func Format(v value.Value, indent string) (string, error) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
